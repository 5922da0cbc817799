package notification

import (
	"context"

	"fuel-sense/internal/domain/user"

	"github.com/google/uuid"
)

// Repository defines the interface for notification storage. Create prepends,
// so List returns newest first.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	List(ctx context.Context) ([]*Notification, error)
	ListByRole(ctx context.Context, role user.Role) ([]*Notification, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	ClearAll(ctx context.Context) error

	// RetainRole drops every notification not addressed to the given role.
	// Used when the current user changes; the discard is intentional.
	RetainRole(ctx context.Context, role user.Role) error

	// ReplaceAll swaps the entire list, used for session rehydration.
	ReplaceAll(ctx context.Context, notifications []*Notification) error
}
