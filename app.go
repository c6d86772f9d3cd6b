// Package storefront composes the application: it owns the channel store and
// wires the repositories, the auth orchestrator and the order lifecycle into
// one explicit context object. Callers create an App on startup and pass it
// around instead of reaching for ambient global state.
package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/smarttech/storefront/auth"
	"github.com/smarttech/storefront/biometric"
	"github.com/smarttech/storefront/capture"
	"github.com/smarttech/storefront/config"
	"github.com/smarttech/storefront/logging"
	ordersvc "github.com/smarttech/storefront/orders"
	cartrepo "github.com/smarttech/storefront/repositories/cart"
	ordersrepo "github.com/smarttech/storefront/repositories/orders"
	productsrepo "github.com/smarttech/storefront/repositories/products"
	usersrepo "github.com/smarttech/storefront/repositories/users"
	"github.com/smarttech/storefront/store"

	_ "modernc.org/sqlite"
)

// App is the composition root of the storefront core.
type App struct {
	Config *config.Config
	Log    logging.Logger
	Store  *store.SQLiteStore

	Users    usersrepo.Repository
	Products productsrepo.Repository
	Cart     cartrepo.Repository
	Orders   ordersrepo.Repository

	Auth     *auth.Service
	Checkout *ordersvc.Service
}

// NewApp opens the channel store at cfg.StorePath, runs migrations, and wires
// every service. The returned App must be Closed when the session ends.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	st, err := store.Open(ctx, cfg.StorePath, logger)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	users := usersrepo.NewStoreRepository(st)
	products := productsrepo.NewStoreRepository(st, logger)
	cart := cartrepo.NewStoreRepository(st)
	orders := ordersrepo.NewStoreRepository(st)

	return &App{
		Config:   cfg,
		Log:      logger,
		Store:    st,
		Users:    users,
		Products: products,
		Cart:     cart,
		Orders:   orders,
		Auth:     auth.NewService(users, st, cfg, logger),
		Checkout: ordersvc.NewService(orders, cart, cfg, logger),
	}, nil
}

// CaptureSession builds a biometric capture flow bound to the given camera
// and extractor capabilities. The presentation layer supplies both.
func (a *App) CaptureSession(cam capture.Camera, ext biometric.Extractor) *capture.Session {
	return capture.NewSession(cam, ext, capture.Constraints{Width: 640, Height: 480}, a.Log)
}

// Reset wipes every channel of the store. This is the only way user accounts
// are ever deleted.
func (a *App) Reset(ctx context.Context) error {
	return a.Store.Reset(ctx)
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}
