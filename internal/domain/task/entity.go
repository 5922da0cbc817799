package task

import (
	"time"

	"fuel-sense/internal/domain/user"

	"github.com/google/uuid"
)

// Priority grades how urgently a pending task needs attention.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// PendingTask is a role-scoped work item shown on a dashboard. Tasks are
// seeded read-only; completing one removes it from the role's list.
type PendingTask struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Role        user.Role `json:"role"`
	Priority    Priority  `json:"priority"`
	DueAt       time.Time `json:"due_at"`
	Count       int       `json:"count"`
	ActionURL   string    `json:"action_url,omitempty"`
	Kind        string    `json:"kind"`
}
