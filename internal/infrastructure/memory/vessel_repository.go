package memory

import (
	"context"
	"sync"
	"time"

	"fuel-sense/internal/domain/vessel"
)

// VesselRepository provides in-memory fleet storage keyed by IMO.
type VesselRepository struct {
	mu      sync.RWMutex
	vessels []*vessel.Vessel
}

func NewVesselRepository() *VesselRepository {
	return &VesselRepository{}
}

// Verify interface compliance
var _ vessel.Repository = (*VesselRepository)(nil)

func (r *VesselRepository) Create(_ context.Context, v *vessel.Vessel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	v.UpdatedAt = now

	r.vessels = append(r.vessels, cloneVessel(v))
	return nil
}

func (r *VesselRepository) GetByIMO(_ context.Context, imo string) (*vessel.Vessel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.vessels {
		if v.IMO == imo {
			return cloneVessel(v), nil
		}
	}
	return nil, vessel.ErrVesselNotFound
}

func (r *VesselRepository) Update(_ context.Context, v *vessel.Vessel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.vessels {
		if existing.IMO == v.IMO {
			updated := cloneVessel(v)
			updated.CreatedAt = existing.CreatedAt
			updated.UpdatedAt = time.Now()
			r.vessels[i] = updated
			return nil
		}
	}
	return vessel.ErrVesselNotFound
}

func (r *VesselRepository) List(_ context.Context) ([]*vessel.Vessel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*vessel.Vessel, 0, len(r.vessels))
	for _, v := range r.vessels {
		out = append(out, cloneVessel(v))
	}
	return out, nil
}

func cloneVessel(v *vessel.Vessel) *vessel.Vessel {
	cp := *v
	cp.CurrentROB = cloneGrades(v.CurrentROB)
	cp.EstimatedConsumption = cloneGrades(v.EstimatedConsumption)
	cp.ActualConsumption = cloneGrades(v.ActualConsumption)
	if v.CargoID != nil {
		id := *v.CargoID
		cp.CargoID = &id
	}
	if v.PlanID != nil {
		id := *v.PlanID
		cp.PlanID = &id
	}
	return &cp
}

func cloneGrades(m map[vessel.FuelGrade]float64) map[vessel.FuelGrade]float64 {
	if m == nil {
		return nil
	}
	out := make(map[vessel.FuelGrade]float64, len(m))
	for grade, qty := range m {
		out[grade] = qty
	}
	return out
}
