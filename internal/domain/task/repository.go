package task

import (
	"context"
	"errors"

	"fuel-sense/internal/domain/user"

	"github.com/google/uuid"
)

var ErrTaskNotFound = errors.New("pending task not found")

// Repository defines the interface for pending task storage.
type Repository interface {
	Create(ctx context.Context, t *PendingTask) error
	ListByRole(ctx context.Context, role user.Role) ([]*PendingTask, error)
	Remove(ctx context.Context, taskID uuid.UUID) error
}
