package session

import (
	"context"
	"errors"
)

var ErrSessionNotFound = errors.New("session not found")

// Repository persists the session snapshot. Save overwrites on every
// qualifying state change; Load runs once at startup.
type Repository interface {
	Save(ctx context.Context, snap *Snapshot) error
	Load(ctx context.Context) (*Snapshot, error)
}
