// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// tokenRepository implements adapter.TokenRevocationStore on the revoked_tokens table.
type tokenRepository struct {
	db    *gorm.DB
	clock adapter.Clock
}

// NewTokenRepository creates a new database-backed revocation store.
func NewTokenRepository(db *gorm.DB, clock adapter.Clock) adapter.TokenRevocationStore {
	return &tokenRepository{
		db:    db,
		clock: clock,
	}
}

// Revoke records tokenID. Revoking the same token twice is a no-op.
func (r *tokenRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	revoked := &model.RevokedTokenModel{
		TokenID:   tokenID,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: r.clock.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(revoked).Error
}

// IsRevoked reports whether tokenID was revoked and has not yet expired.
func (r *tokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.RevokedTokenModel{}).
		Where("token_id = ? AND expires_at > ?", tokenID, r.clock.Now().UTC()).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
