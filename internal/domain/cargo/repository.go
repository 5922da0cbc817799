package cargo

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for cargo storage.
type Repository interface {
	Create(ctx context.Context, c *Cargo) error
	GetByID(ctx context.Context, cargoID uuid.UUID) (*Cargo, error)
	Update(ctx context.Context, c *Cargo) error
	List(ctx context.Context) ([]*Cargo, error)
	ListByStatus(ctx context.Context, status Status) ([]*Cargo, error)
}
