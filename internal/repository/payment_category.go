// internal/repository/payment_category.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/model"
)

type PaymentCategoryRepositoryIface interface {
	Create(ctx context.Context, category *model.PaymentCategory) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.PaymentCategory, error)
	FindByTenant(ctx context.Context, tenantID uuid.UUID, activeOnly bool) ([]*model.PaymentCategory, error)
	FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*model.PaymentCategory, error)
	Update(ctx context.Context, category *model.PaymentCategory) error
}

type PaymentCategoryRepository struct {
	db *gorm.DB
}

func NewPaymentCategoryRepository(db *gorm.DB) *PaymentCategoryRepository {
	return &PaymentCategoryRepository{db: db}
}

func (r *PaymentCategoryRepository) Create(ctx context.Context, category *model.PaymentCategory) error {
	result := r.db.WithContext(ctx).Create(category)
	if result.Error != nil {
		return fmt.Errorf("failed to create category: %w", result.Error)
	}
	return nil
}

func (r *PaymentCategoryRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.PaymentCategory, error) {
	var category model.PaymentCategory
	result := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&category, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", result.Error)
	}
	return &category, nil
}

func (r *PaymentCategoryRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID, activeOnly bool) ([]*model.PaymentCategory, error) {
	query := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var categories []*model.PaymentCategory
	result := query.Order("name").Find(&categories)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find categories: %w", result.Error)
	}
	return categories, nil
}

func (r *PaymentCategoryRepository) FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*model.PaymentCategory, error) {
	var category model.PaymentCategory
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND name = ?", tenantID, name).
		First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", result.Error)
	}
	return &category, nil
}

func (r *PaymentCategoryRepository) Update(ctx context.Context, category *model.PaymentCategory) error {
	result := r.db.WithContext(ctx).Save(category)
	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	return nil
}
