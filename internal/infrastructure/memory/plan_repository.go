package memory

import (
	"context"
	"sync"
	"time"

	"fuel-sense/internal/domain/plan"

	"github.com/google/uuid"
)

// PlanRepository provides in-memory bunker plan storage.
type PlanRepository struct {
	mu    sync.RWMutex
	plans []*plan.BunkerPlan
}

func NewPlanRepository() *PlanRepository {
	return &PlanRepository{}
}

// Verify interface compliance
var _ plan.Repository = (*PlanRepository)(nil)

func (r *PlanRepository) Create(_ context.Context, p *plan.BunkerPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	r.plans = append(r.plans, clonePlan(p))
	return nil
}

func (r *PlanRepository) GetByID(_ context.Context, planID uuid.UUID) (*plan.BunkerPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.plans {
		if p.ID == planID {
			return clonePlan(p), nil
		}
	}
	return nil, plan.ErrPlanNotFound
}

func (r *PlanRepository) Update(_ context.Context, p *plan.BunkerPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.plans {
		if existing.ID == p.ID {
			updated := clonePlan(p)
			updated.CreatedAt = existing.CreatedAt
			updated.UpdatedAt = time.Now()
			r.plans[i] = updated
			return nil
		}
	}
	return plan.ErrPlanNotFound
}

func (r *PlanRepository) List(_ context.Context) ([]*plan.BunkerPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*plan.BunkerPlan, 0, len(r.plans))
	for _, p := range r.plans {
		out = append(out, clonePlan(p))
	}
	return out, nil
}

func (r *PlanRepository) ListByCargo(_ context.Context, cargoID uuid.UUID) ([]*plan.BunkerPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*plan.BunkerPlan
	for _, p := range r.plans {
		if p.CargoID == cargoID {
			out = append(out, clonePlan(p))
		}
	}
	return out, nil
}

func (r *PlanRepository) ListByStatus(_ context.Context, status plan.Status) ([]*plan.BunkerPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*plan.BunkerPlan
	for _, p := range r.plans {
		if p.Status == status {
			out = append(out, clonePlan(p))
		}
	}
	return out, nil
}

func clonePlan(p *plan.BunkerPlan) *plan.BunkerPlan {
	cp := *p
	cp.Alternatives = append([]plan.Offer(nil), p.Alternatives...)
	if p.ApprovedBy != nil {
		v := *p.ApprovedBy
		cp.ApprovedBy = &v
	}
	if p.ApprovedAt != nil {
		v := *p.ApprovedAt
		cp.ApprovedAt = &v
	}
	if p.RejectionReason != nil {
		v := *p.RejectionReason
		cp.RejectionReason = &v
	}
	return &cp
}
