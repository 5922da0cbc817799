package memory

import (
	"context"
	"sync"
	"time"

	"fuel-sense/internal/domain/cargo"

	"github.com/google/uuid"
)

// CargoRepository provides in-memory cargo storage.
type CargoRepository struct {
	mu      sync.RWMutex
	cargoes []*cargo.Cargo
}

func NewCargoRepository() *CargoRepository {
	return &CargoRepository{}
}

// Verify interface compliance
var _ cargo.Repository = (*CargoRepository)(nil)

func (r *CargoRepository) Create(_ context.Context, c *cargo.Cargo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	r.cargoes = append(r.cargoes, cloneCargo(c))
	return nil
}

func (r *CargoRepository) GetByID(_ context.Context, cargoID uuid.UUID) (*cargo.Cargo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.cargoes {
		if c.ID == cargoID {
			return cloneCargo(c), nil
		}
	}
	return nil, cargo.ErrCargoNotFound
}

func (r *CargoRepository) Update(_ context.Context, c *cargo.Cargo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.cargoes {
		if existing.ID == c.ID {
			updated := cloneCargo(c)
			updated.CreatedAt = existing.CreatedAt
			updated.UpdatedAt = time.Now()
			r.cargoes[i] = updated
			return nil
		}
	}
	return cargo.ErrCargoNotFound
}

func (r *CargoRepository) List(_ context.Context) ([]*cargo.Cargo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*cargo.Cargo, 0, len(r.cargoes))
	for _, c := range r.cargoes {
		out = append(out, cloneCargo(c))
	}
	return out, nil
}

func (r *CargoRepository) ListByStatus(_ context.Context, status cargo.Status) ([]*cargo.Cargo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*cargo.Cargo
	for _, c := range r.cargoes {
		if c.Status == status {
			out = append(out, cloneCargo(c))
		}
	}
	return out, nil
}

func cloneCargo(c *cargo.Cargo) *cargo.Cargo {
	cp := *c
	cp.BunkerPorts = append([]cargo.BunkerPort(nil), c.BunkerPorts...)
	cp.Reasoning = append([]string(nil), c.Reasoning...)
	return &cp
}
