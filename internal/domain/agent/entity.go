package agent

import (
	"time"

	"github.com/google/uuid"
)

// Status tracks an analysis run lifecycle.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Finding is a single observation produced by an analysis run.
type Finding struct {
	Label  string `json:"label"`
	Detail string `json:"detail"`
}

// Output is the payload attached to a completed run.
type Output struct {
	RecommendedPort     string    `json:"recommended_port"`
	RecommendedSupplier string    `json:"recommended_supplier"`
	Viable              bool      `json:"viable"`
	Findings            []Finding `json:"findings,omitempty"`
}

// Run represents one bunker analysis execution for a cargo.
type Run struct {
	ID          uuid.UUID     `json:"id"`
	AgentName   string        `json:"agent_name"`
	CargoID     uuid.UUID     `json:"cargo_id"`
	Status      Status        `json:"status"`
	Confidence  int           `json:"confidence"`
	Execution   time.Duration `json:"execution"`
	Output      *Output       `json:"output,omitempty"`
	DataQuality string        `json:"data_quality,omitempty"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}
