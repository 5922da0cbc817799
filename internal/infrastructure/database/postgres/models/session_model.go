package models

import (
	"time"
)

// SessionModel stores the serialized session snapshot. A single row per
// deployment; the payload is the raw JSON snapshot with no schema
// versioning, matching the hydration contract.
type SessionModel struct {
	ID        uint      `gorm:"primary_key"`
	Payload   []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (SessionModel) TableName() string {
	return "sessions"
}
