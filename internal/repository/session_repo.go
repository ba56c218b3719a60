package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"studsafe/internal/domain"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SessionRepository) GetByTokenHash(ctx context.Context, hash string) (*domain.Session, error) {
	var s domain.Session
	tx := r.db.WithContext(ctx).
		Preload("User").
		Where("token_hash = ?", hash).
		First(&s)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

func (r *SessionRepository) DeleteByTokenHash(ctx context.Context, hash string) error {
	return r.db.WithContext(ctx).
		Where("token_hash = ?", hash).
		Delete(&domain.Session{}).Error
}

// DeleteExpired purges sessions past their expiry, returning how many rows
// went away. Run from cmd/session_cleanup.
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&domain.Session{})
	return tx.RowsAffected, tx.Error
}
