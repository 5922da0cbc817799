package plan

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for bunker plan storage.
type Repository interface {
	Create(ctx context.Context, p *BunkerPlan) error
	GetByID(ctx context.Context, planID uuid.UUID) (*BunkerPlan, error)
	Update(ctx context.Context, p *BunkerPlan) error
	List(ctx context.Context) ([]*BunkerPlan, error)
	ListByCargo(ctx context.Context, cargoID uuid.UUID) ([]*BunkerPlan, error)
	ListByStatus(ctx context.Context, status Status) ([]*BunkerPlan, error)
}
