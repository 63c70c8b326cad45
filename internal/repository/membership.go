// internal/repository/membership.go
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

type MembershipRepositoryIface interface {
	Create(ctx context.Context, membership *model.Membership) error
	FindByUserAndTenant(ctx context.Context, userID, tenantID uuid.UUID) (*model.Membership, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error)
}

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Create(ctx context.Context, membership *model.Membership) error {
	result := r.db.WithContext(ctx).Create(membership)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			return domain.ErrRelationshipExists
		}
		return fmt.Errorf("failed to create membership: %w", result.Error)
	}
	return nil
}

func (r *MembershipRepository) FindByUserAndTenant(ctx context.Context, userID, tenantID uuid.UUID) (*model.Membership, error) {
	var membership model.Membership
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND tenant_id = ?", userID, tenantID).
		First(&membership)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// PLATFORM_ADMIN memberships are not tenant-bound; a match in any
			// tenant grants access everywhere.
			var admin model.Membership
			adminResult := r.db.WithContext(ctx).
				Where("user_id = ? AND role = ?", userID, model.RolePlatformAdmin).
				First(&admin)
			if adminResult.Error == nil {
				return &admin, nil
			}
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to find membership: %w", result.Error)
	}
	return &membership, nil
}

func (r *MembershipRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error) {
	var memberships []*model.Membership
	result := r.db.WithContext(ctx).
		Preload("Tenant").
		Where("user_id = ?", userID).
		Find(&memberships)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find memberships: %w", result.Error)
	}
	return memberships, nil
}
