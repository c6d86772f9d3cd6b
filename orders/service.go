// Package orders drives the order lifecycle: checkout from the session cart
// and the Processing -> Accepted/Rejected state machine.
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smarttech/storefront/common"
	"github.com/smarttech/storefront/config"
	"github.com/smarttech/storefront/logging"
	"github.com/smarttech/storefront/models"
	"github.com/smarttech/storefront/repositories/cart"
	ordersrepo "github.com/smarttech/storefront/repositories/orders"
)

// Service is the order lifecycle manager. Place is the only creation path
// for an order.
type Service struct {
	orders      ordersrepo.Repository
	cart        cart.Repository
	shippingFee decimal.Decimal
	log         logging.Logger
	now         func() time.Time
}

func NewService(repo ordersrepo.Repository, cartRepo cart.Repository, cfg *config.Config, log logging.Logger) *Service {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Service{
		orders:      repo,
		cart:        cartRepo,
		shippingFee: cfg.ShippingFee,
		log:         log,
		now:         time.Now,
	}
}

// Place creates an order from the current cart for the given user: total is
// the cart total plus the fixed shipping fee, status starts at Processing,
// and the cart is cleared. An empty cart returns common.ErrEmptyCart with no
// state change.
func (s *Service) Place(ctx context.Context, user *models.User, address models.Address) (*models.Order, error) {
	lines, err := s.cart.Lines(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(lines) == 0 {
		return nil, common.ErrEmptyCart
	}

	subtotal, err := s.cart.Total(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to total cart: %w", err)
	}

	id, err := common.MakeOrderID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order id: %w", err)
	}

	order := &models.Order{
		ID:        id,
		UserID:    user.ID,
		UserName:  user.Name,
		Items:     lines,
		Total:     subtotal.Add(s.shippingFee),
		Address:   address,
		Timestamp: s.now(),
		Status:    models.OrderStatusProcessing,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	if err := s.cart.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	s.log.Info(ctx, "order placed", "order", order.ID, "user", user.ID, "total", order.Total.String())
	return order, nil
}

// UpdateStatus applies an admin decision to an order. Transitions from a
// terminal status, and targets outside Accepted/Rejected, are rejected as a
// no-op with common.ErrInvalidTransition.
func (s *Service) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		s.log.Warn(ctx, "order status update rejected", "order", id, "status", string(status), "error", err)
		return err
	}
	s.log.Info(ctx, "order status updated", "order", id, "status", string(status))
	return nil
}
