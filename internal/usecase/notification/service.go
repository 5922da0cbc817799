package notification

import (
	"context"

	"fuel-sense/internal/domain/notification"
	"fuel-sense/internal/domain/user"
	"fuel-sense/internal/events"
	"fuel-sense/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionSaver mirrors the persisted session subset after a notification
// change. Wired after construction to avoid a dependency cycle with the
// user service; a nil saver means notifications are not persisted.
type SessionSaver interface {
	Persist(ctx context.Context) error
}

// Service implements notification use cases and fans changes out to live
// subscribers.
type Service struct {
	repo  notification.Repository
	bus   *events.Bus
	saver SessionSaver
}

func NewService(repo notification.Repository, bus *events.Bus) *Service {
	return &Service{
		repo: repo,
		bus:  bus,
	}
}

func (s *Service) SetSessionSaver(saver SessionSaver) {
	s.saver = saver
}

// Add prepends a notification and publishes it to subscribers.
func (s *Service) Add(ctx context.Context, n *notification.Notification) error {
	if !n.Type.Valid() {
		return notification.ErrInvalidType
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	logger.Info("Notification added",
		zap.String("notification_id", n.ID.String()),
		zap.String("type", string(n.Type)),
		zap.String("role", string(n.Role)),
		zap.String("title", n.Title),
	)

	if s.bus != nil {
		s.bus.Publish(events.Event{Type: events.EventNotification, Payload: n})
	}

	s.persist(ctx)
	return nil
}

// Notify builds and adds a notification in one call.
func (s *Service) Notify(ctx context.Context, nType notification.Type, role user.Role, title, message string, actionRequired bool, actionURL string) error {
	return s.Add(ctx, &notification.Notification{
		Type:           nType,
		Title:          title,
		Message:        message,
		Role:           role,
		ActionRequired: actionRequired,
		ActionURL:      actionURL,
	})
}

func (s *Service) List(ctx context.Context) ([]*notification.Notification, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListForRole(ctx context.Context, role user.Role) ([]*notification.Notification, error) {
	return s.repo.ListByRole(ctx, role)
}

func (s *Service) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		return err
	}
	s.persist(ctx)
	return nil
}

func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.repo.ClearAll(ctx); err != nil {
		return err
	}
	s.persist(ctx)
	return nil
}

func (s *Service) persist(ctx context.Context) {
	if s.saver == nil {
		return
	}
	if err := s.saver.Persist(ctx); err != nil {
		logger.Warn("Failed to persist session after notification change", zap.Error(err))
	}
}
