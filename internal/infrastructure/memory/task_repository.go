package memory

import (
	"context"
	"sync"

	"fuel-sense/internal/domain/task"
	"fuel-sense/internal/domain/user"

	"github.com/google/uuid"
)

// TaskRepository provides in-memory pending task storage.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks []*task.PendingTask
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

// Verify interface compliance
var _ task.Repository = (*TaskRepository)(nil)

func (r *TaskRepository) Create(_ context.Context, t *task.PendingTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	cp := *t
	r.tasks = append(r.tasks, &cp)
	return nil
}

func (r *TaskRepository) ListByRole(_ context.Context, role user.Role) ([]*task.PendingTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*task.PendingTask
	for _, t := range r.tasks {
		if t.Role == role {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *TaskRepository) Remove(_ context.Context, taskID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID == taskID {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return task.ErrTaskNotFound
}
