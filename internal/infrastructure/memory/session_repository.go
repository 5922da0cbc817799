package memory

import (
	"context"
	"sync"

	"fuel-sense/internal/domain/session"
)

// SessionRepository stores the session snapshot as its serialized JSON form,
// matching what the durable implementation persists. Nothing survives a
// process restart.
type SessionRepository struct {
	mu  sync.RWMutex
	raw []byte
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// Verify interface compliance
var _ session.Repository = (*SessionRepository)(nil)

func (r *SessionRepository) Save(_ context.Context, snap *session.Snapshot) error {
	raw, err := snap.Encode()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.raw = raw
	return nil
}

func (r *SessionRepository) Load(_ context.Context) (*session.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.raw == nil {
		return nil, session.ErrSessionNotFound
	}
	return session.Decode(r.raw)
}
