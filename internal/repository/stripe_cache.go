// internal/repository/stripe_cache.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/model"
)

type StripeCacheRepositoryIface interface {
	Upsert(ctx context.Context, userID uuid.UUID, data model.JSONB) error
	FindByUser(ctx context.Context, userID uuid.UUID) (*model.StripeCache, error)
	FindStale(ctx context.Context, olderThan time.Time, limit int) ([]*model.StripeCache, error)
}

type StripeCacheRepository struct {
	db *gorm.DB
}

func NewStripeCacheRepository(db *gorm.DB) *StripeCacheRepository {
	return &StripeCacheRepository{db: db}
}

// Upsert replaces the user's snapshot wholesale. The cache row is never
// patched field by field.
func (r *StripeCacheRepository) Upsert(ctx context.Context, userID uuid.UUID, data model.JSONB) error {
	row := model.StripeCache{
		UserID: userID,
		Data:   data,
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row)
	if result.Error != nil {
		return fmt.Errorf("failed to upsert stripe cache: %w", result.Error)
	}
	return nil
}

func (r *StripeCacheRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*model.StripeCache, error) {
	var row model.StripeCache
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find stripe cache: %w", result.Error)
	}
	return &row, nil
}

func (r *StripeCacheRepository) FindStale(ctx context.Context, olderThan time.Time, limit int) ([]*model.StripeCache, error) {
	var rows []*model.StripeCache
	result := r.db.WithContext(ctx).
		Where("updated_at < ?", olderThan).
		Order("updated_at").
		Limit(limit).
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find stale caches: %w", result.Error)
	}
	return rows, nil
}
