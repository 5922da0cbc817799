package memory

import (
	"context"
	"sync"
	"time"

	"fuel-sense/internal/domain/agent"

	"github.com/google/uuid"
)

// AgentRepository provides in-memory analysis run storage.
type AgentRepository struct {
	mu   sync.RWMutex
	runs []*agent.Run
}

func NewAgentRepository() *AgentRepository {
	return &AgentRepository{}
}

// Verify interface compliance
var _ agent.Repository = (*AgentRepository)(nil)

func (r *AgentRepository) Create(_ context.Context, run *agent.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	r.runs = append(r.runs, cloneRun(run))
	return nil
}

func (r *AgentRepository) GetByID(_ context.Context, runID uuid.UUID) (*agent.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, run := range r.runs {
		if run.ID == runID {
			return cloneRun(run), nil
		}
	}
	return nil, agent.ErrRunNotFound
}

func (r *AgentRepository) Update(_ context.Context, run *agent.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.runs {
		if existing.ID == run.ID {
			r.runs[i] = cloneRun(run)
			return nil
		}
	}
	return agent.ErrRunNotFound
}

func (r *AgentRepository) List(_ context.Context) ([]*agent.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*agent.Run, 0, len(r.runs))
	for _, run := range r.runs {
		out = append(out, cloneRun(run))
	}
	return out, nil
}

func (r *AgentRepository) ListByCargo(_ context.Context, cargoID uuid.UUID) ([]*agent.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*agent.Run
	for _, run := range r.runs {
		if run.CargoID == cargoID {
			out = append(out, cloneRun(run))
		}
	}
	return out, nil
}

func cloneRun(run *agent.Run) *agent.Run {
	cp := *run
	if run.CompletedAt != nil {
		v := *run.CompletedAt
		cp.CompletedAt = &v
	}
	if run.Output != nil {
		out := *run.Output
		out.Findings = append([]agent.Finding(nil), run.Output.Findings...)
		cp.Output = &out
	}
	return &cp
}
