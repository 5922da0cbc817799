package user

import (
	"context"
	"errors"
	"sync"

	"fuel-sense/internal/config"
	domainCargo "fuel-sense/internal/domain/cargo"
	domainNotification "fuel-sense/internal/domain/notification"
	domainSession "fuel-sense/internal/domain/session"
	domainUser "fuel-sense/internal/domain/user"
	"fuel-sense/internal/logger"
	"fuel-sense/internal/validator"
	appErrors "fuel-sense/pkg/errors"
	"fuel-sense/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements user and session use cases. It owns the persisted
// session subset: current user, selected cargo and the notification list.
type Service struct {
	userRepo    domainUser.Repository
	cargoRepo   domainCargo.Repository
	notifRepo   domainNotification.Repository
	sessionRepo domainSession.Repository
	config      *config.Config

	mu            sync.RWMutex
	currentUser   *domainUser.User
	selectedCargo *uuid.UUID
}

func NewService(
	userRepo domainUser.Repository,
	cargoRepo domainCargo.Repository,
	notifRepo domainNotification.Repository,
	sessionRepo domainSession.Repository,
	cfg *config.Config,
) *Service {
	return &Service{
		userRepo:    userRepo,
		cargoRepo:   cargoRepo,
		notifRepo:   notifRepo,
		sessionRepo: sessionRepo,
		config:      cfg,
	}
}

// Login authenticates a user and makes them the current session user.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, domainUser.ErrUserInactive
	}

	if !utils.CheckPassword(u.PasswordHashed, req.Password) {
		logger.Warn("Login attempt with wrong password",
			zap.String("email", req.Email),
			zap.String("event", "login_failed"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	tokens, err := utils.GenerateTokenPair(
		u.ID, u.Email, string(u.Role),
		s.config.JWT.Secret,
		s.config.JWT.ExpiryHours,
		s.config.JWT.RefreshExpiryHours,
	)
	if err != nil {
		return nil, err
	}

	if err := s.SetCurrentUser(ctx, u.ID); err != nil {
		return nil, err
	}

	logger.Info("User logged in",
		zap.String("user_id", u.ID.String()),
		zap.String("role", string(u.Role)),
		zap.String("event", "login_succeeded"),
	)

	return &AuthResponse{User: u, Tokens: tokens}, nil
}

// RefreshToken validates a refresh token and issues a fresh pair. Tokens are
// stateless, so the user record is re-checked to keep a deactivated account
// from refreshing its way back in.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*utils.TokenPair, error) {
	claims, err := utils.ValidateToken(refreshToken, s.config.JWT.Secret)
	if err != nil {
		logger.Warn("Token refresh attempt with invalid token",
			zap.String("event", "token_refresh_failed"),
			zap.Error(err),
		)
		return nil, appErrors.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}
	if !u.IsActive {
		return nil, domainUser.ErrUserInactive
	}

	tokens, err := utils.GenerateTokenPair(
		u.ID, u.Email, string(u.Role),
		s.config.JWT.Secret,
		s.config.JWT.ExpiryHours,
		s.config.JWT.RefreshExpiryHours,
	)
	if err != nil {
		return nil, err
	}

	logger.Info("Token refreshed",
		zap.String("user_id", u.ID.String()),
		zap.String("event", "token_refresh_succeeded"),
	)
	return tokens, nil
}

// SetCurrentUser replaces the session user and drops every notification not
// addressed to the new user's role. The discard is destructive on purpose:
// the notification list always reflects a single role's view.
func (s *Service) SetCurrentUser(ctx context.Context, userID uuid.UUID) error {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.currentUser = u
	s.mu.Unlock()

	if err := s.notifRepo.RetainRole(ctx, u.Role); err != nil {
		return err
	}

	return s.Persist(ctx)
}

// SelectCargo records which cargo the current user is working with.
func (s *Service) SelectCargo(ctx context.Context, cargoID uuid.UUID) error {
	if _, err := s.cargoRepo.GetByID(ctx, cargoID); err != nil {
		return err
	}

	s.mu.Lock()
	s.selectedCargo = &cargoID
	s.mu.Unlock()

	return s.Persist(ctx)
}

func (s *Service) CurrentUser() *domainUser.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return nil
	}
	cp := *s.currentUser
	return &cp
}

func (s *Service) SelectedCargo() *uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedCargo == nil {
		return nil
	}
	id := *s.selectedCargo
	return &id
}

func (s *Service) GetByID(ctx context.Context, userID uuid.UUID) (*domainUser.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// Persist writes the session subset to the snapshot store.
func (s *Service) Persist(ctx context.Context) error {
	notifications, err := s.notifRepo.List(ctx)
	if err != nil {
		return err
	}

	s.mu.RLock()
	snap := &domainSession.Snapshot{
		CurrentUser:   s.currentUser,
		SelectedCargo: s.selectedCargo,
		Notifications: notifications,
	}
	s.mu.RUnlock()

	return s.sessionRepo.Save(ctx, snap)
}

// Hydrate restores the persisted session subset at startup. A missing
// snapshot is not an error; anything outside the subset keeps its fixture
// defaults.
func (s *Service) Hydrate(ctx context.Context) error {
	snap, err := s.sessionRepo.Load(ctx)
	if err != nil {
		if errors.Is(err, domainSession.ErrSessionNotFound) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	s.currentUser = snap.CurrentUser
	s.selectedCargo = snap.SelectedCargo
	s.mu.Unlock()

	if snap.Notifications != nil {
		if err := s.notifRepo.ReplaceAll(ctx, snap.Notifications); err != nil {
			return err
		}
	}

	logger.Info("Session hydrated",
		zap.Bool("has_user", snap.CurrentUser != nil),
		zap.Int("notifications", len(snap.Notifications)),
	)
	return nil
}
