// internal/repository/tenant.go
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

type TenantRepositoryIface interface {
	Create(ctx context.Context, tenant *model.Tenant) error
	FindBySlug(ctx context.Context, slug string) (*model.Tenant, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Tenant, error)
	Update(ctx context.Context, tenant *model.Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	FindAll(ctx context.Context) ([]*model.Tenant, error)
}

type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *model.Tenant) error {
	result := r.db.WithContext(ctx).Create(tenant)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			return domain.ErrSubdomainTaken
		}
		return fmt.Errorf("failed to create tenant: %w", result.Error)
	}
	return nil
}

func (r *TenantRepository) FindBySlug(ctx context.Context, slug string) (*model.Tenant, error) {
	var tenant model.Tenant
	result := r.db.WithContext(ctx).Where("slug = ?", slug).First(&tenant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to find tenant: %w", result.Error)
	}
	return &tenant, nil
}

func (r *TenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Tenant, error) {
	var tenant model.Tenant
	result := r.db.WithContext(ctx).First(&tenant, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to find tenant: %w", result.Error)
	}
	return &tenant, nil
}

func (r *TenantRepository) Update(ctx context.Context, tenant *model.Tenant) error {
	result := r.db.WithContext(ctx).Save(tenant)
	if result.Error != nil {
		return fmt.Errorf("failed to update tenant: %w", result.Error)
	}
	return nil
}

func (r *TenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Tenant{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete tenant: %w", result.Error)
	}
	return nil
}

func (r *TenantRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Tenant{}).Where("slug = ?", slug).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check slug: %w", result.Error)
	}
	return count > 0, nil
}

func (r *TenantRepository) FindAll(ctx context.Context) ([]*model.Tenant, error) {
	var tenants []*model.Tenant
	result := r.db.WithContext(ctx).Find(&tenants)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find all tenants: %w", result.Error)
	}
	return tenants, nil
}
