package notification

import (
	"time"

	"fuel-sense/internal/domain/user"

	"github.com/google/uuid"
)

// Type classifies how loudly a notification should be surfaced.
type Type string

const (
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
	TypeUrgent  Type = "urgent"
)

func (t Type) Valid() bool {
	switch t {
	case TypeInfo, TypeWarning, TypeUrgent:
		return true
	}
	return false
}

// Notification is a role-addressed message produced by store actions,
// the simulator or telemetry ingestion. Newest entries sort first.
type Notification struct {
	ID             uuid.UUID `json:"id"`
	Type           Type      `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Role           user.Role `json:"role"`
	Read           bool      `json:"read"`
	ActionRequired bool      `json:"action_required"`
	ActionURL      string    `json:"action_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
