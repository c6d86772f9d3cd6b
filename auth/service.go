// Package auth contains the session orchestrator: registration (with or
// without biometric enrollment), password and biometric login, logout, and
// restoring the persisted session.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/smarttech/storefront/biometric"
	"github.com/smarttech/storefront/common"
	"github.com/smarttech/storefront/config"
	"github.com/smarttech/storefront/logging"
	"github.com/smarttech/storefront/models"
	"github.com/smarttech/storefront/repositories/users"
	"github.com/smarttech/storefront/store"
)

// IdentityError reports a failed biometric match. BestDistance is the closest
// distance seen across all enrolled candidates, kept for diagnostics.
type IdentityError struct {
	BestDistance float64
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("identity not recognized (closest distance %.4f)", e.BestDistance)
}

// Session is the persisted current-user slot: the authenticated user plus a
// signed stamp that is validated when the session is restored.
type Session struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// RegisterParams are the registration inputs. Descriptor may be nil: password
// accounts cannot use biometric login, and callers are expected to warn the
// operator about that before submitting. AdminCode is an optional invite code
// granting the admin role.
type RegisterParams struct {
	Name       string
	Email      string
	Secret     string
	Descriptor biometric.Descriptor
	AdminCode  string
}

// Service coordinates registration and login against the user repository,
// the matcher and the session slot.
type Service struct {
	users      users.Repository
	store      store.Store
	log        logging.Logger
	secret     []byte
	sessionTTL time.Duration
	adminCode  string
	threshold  float64
}

func NewService(repo users.Repository, st store.Store, cfg *config.Config, log logging.Logger) *Service {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Service{
		users:      repo,
		store:      st,
		log:        log,
		secret:     []byte(cfg.SessionSecret),
		sessionTTL: cfg.SessionTTL,
		adminCode:  cfg.AdminCode,
		threshold:  cfg.MatchThreshold,
	}
}

// Register creates the account and authenticates the session. The first
// registrant ever becomes admin; later registrants only through the
// configured admin code. Returns common.ErrDuplicateEmail when the email is
// taken; nothing is persisted in that case.
func (s *Service) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p.Secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash secret: %w", err)
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	user := &models.User{
		ID:             uuid.NewString(),
		Name:           p.Name,
		Email:          p.Email,
		PasswordHash:   string(hash),
		FaceDescriptor: p.Descriptor,
		IsAdmin:        count == 0 || (p.AdminCode != "" && p.AdminCode == s.adminCode),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user registered",
		"email", user.Email, "admin", user.IsAdmin, "biometrics", user.HasBiometrics())

	if err := s.startSession(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginWithPassword authenticates by email and password secret. A miss on
// either returns common.ErrInvalidCredentials.
func (s *Service) LoginWithPassword(ctx context.Context, email, secret string) (*models.User, error) {
	user, err := s.users.FindByCredentials(ctx, email, secret)
	if err != nil {
		return nil, err
	}
	if err := s.startSession(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginWithBiometric matches the live descriptor against every enrolled user.
// Returns common.ErrNoEnrollments when nobody has enrolled yet, and an
// *IdentityError carrying the closest distance when no candidate passes the
// threshold.
func (s *Service) LoginWithBiometric(ctx context.Context, live biometric.Descriptor) (*models.User, error) {
	enrolled, err := s.users.ListWithBiometrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	if len(enrolled) == 0 {
		return nil, common.ErrNoEnrollments
	}

	candidates := make([]biometric.Candidate, len(enrolled))
	for i, u := range enrolled {
		candidates[i] = biometric.Candidate{UserID: u.ID, Descriptor: u.FaceDescriptor}
	}

	result, err := biometric.BestMatch(live, candidates, s.threshold)
	if err != nil {
		return nil, err
	}
	if !result.Matched {
		s.log.Warn(ctx, "biometric login rejected",
			"candidates", len(candidates), "best_distance", result.BestDistance)
		return nil, &IdentityError{BestDistance: result.BestDistance}
	}

	var user *models.User
	for i := range enrolled {
		if enrolled[i].ID == result.UserID {
			user = &enrolled[i]
			break
		}
	}
	if user == nil {
		return nil, common.ErrNotFound
	}

	s.log.Info(ctx, "biometric login accepted",
		"user", user.ID, "distance", result.BestDistance)

	if err := s.startSession(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the session slot. It always succeeds.
func (s *Service) Logout(ctx context.Context) {
	s.store.Remove(ctx, store.KeyCurrentUser)
}

// Current restores the session from the persisted slot. An empty slot means
// an anonymous session (nil, nil); an invalid or expired stamp clears the
// slot and is also reported as anonymous.
func (s *Service) Current(ctx context.Context) (*models.User, error) {
	var session Session
	if !s.store.Get(ctx, store.KeyCurrentUser, &session) {
		return nil, nil
	}

	userID, err := GetUserIDFromToken(session.Token, s.secret)
	if err != nil || userID != session.User.ID {
		s.log.Info(ctx, "persisted session stamp invalid, clearing slot")
		s.store.Remove(ctx, store.KeyCurrentUser)
		return nil, nil
	}
	return &session.User, nil
}

func (s *Service) startSession(ctx context.Context, user *models.User) error {
	token, err := GenerateToken(user.ID, s.secret, s.sessionTTL)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}
	s.store.Set(ctx, store.KeyCurrentUser, Session{User: *user, Token: token})
	return nil
}
