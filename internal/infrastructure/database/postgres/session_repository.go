package postgres

import (
	"context"
	"errors"

	"fuel-sense/internal/domain/session"
	"fuel-sense/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const sessionRowID = 1

// SessionRepository persists the session snapshot in Postgres.
type SessionRepository struct {
	db *DB
}

func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Verify interface compliance
var _ session.Repository = (*SessionRepository)(nil)

func (r *SessionRepository) Save(ctx context.Context, snap *session.Snapshot) error {
	raw, err := snap.Encode()
	if err != nil {
		return err
	}

	model := &models.SessionModel{
		ID:      sessionRowID,
		Payload: raw,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(model).Error
}

func (r *SessionRepository) Load(ctx context.Context) (*session.Snapshot, error) {
	var model models.SessionModel
	err := r.db.WithContext(ctx).First(&model, sessionRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, session.ErrSessionNotFound
		}
		return nil, err
	}

	return session.Decode(model.Payload)
}
