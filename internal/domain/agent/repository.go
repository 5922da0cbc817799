package agent

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for analysis run storage.
type Repository interface {
	Create(ctx context.Context, r *Run) error
	GetByID(ctx context.Context, runID uuid.UUID) (*Run, error)
	Update(ctx context.Context, r *Run) error
	List(ctx context.Context) ([]*Run, error)
	ListByCargo(ctx context.Context, cargoID uuid.UUID) ([]*Run, error)
}
