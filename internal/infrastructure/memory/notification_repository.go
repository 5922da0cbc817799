package memory

import (
	"context"
	"sync"
	"time"

	"fuel-sense/internal/domain/notification"
	"fuel-sense/internal/domain/user"

	"github.com/google/uuid"
)

// NotificationRepository provides in-memory notification storage.
// Entries are kept newest-first; Create prepends.
type NotificationRepository struct {
	mu            sync.RWMutex
	notifications []*notification.Notification
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// Verify interface compliance
var _ notification.Repository = (*NotificationRepository)(nil)

func (r *NotificationRepository) Create(_ context.Context, n *notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	cp := *n
	r.notifications = append([]*notification.Notification{&cp}, r.notifications...)
	return nil
}

func (r *NotificationRepository) GetByID(_ context.Context, id uuid.UUID) (*notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.notifications {
		if n.ID == id {
			cp := *n
			return &cp, nil
		}
	}
	return nil, notification.ErrNotificationNotFound
}

func (r *NotificationRepository) List(_ context.Context) ([]*notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*notification.Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		cp := *n
		out = append(out, &cp)
	}
	return out, nil
}

func (r *NotificationRepository) ListByRole(_ context.Context, role user.Role) ([]*notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*notification.Notification
	for _, n := range r.notifications {
		if n.Role == role {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *NotificationRepository) MarkAsRead(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

func (r *NotificationRepository) ClearAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = nil
	return nil
}

func (r *NotificationRepository) RetainRole(_ context.Context, role user.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	retained := r.notifications[:0]
	for _, n := range r.notifications {
		if n.Role == role {
			retained = append(retained, n)
		}
	}
	r.notifications = retained
	return nil
}

func (r *NotificationRepository) ReplaceAll(_ context.Context, notifications []*notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := make([]*notification.Notification, 0, len(notifications))
	for _, n := range notifications {
		cp := *n
		replaced = append(replaced, &cp)
	}
	r.notifications = replaced
	return nil
}
