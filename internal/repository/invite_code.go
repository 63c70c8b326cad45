// internal/repository/invite_code.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/model"
)

type InviteCodeRepositoryIface interface {
	Create(ctx context.Context, code *model.InviteCode) error
	FindByCode(ctx context.Context, code string) (*model.InviteCode, error)
	Update(ctx context.Context, code *model.InviteCode) error
	FindAll(ctx context.Context) ([]*model.InviteCode, error)
}

type InviteCodeRepository struct {
	db *gorm.DB
}

func NewInviteCodeRepository(db *gorm.DB) *InviteCodeRepository {
	return &InviteCodeRepository{db: db}
}

func (r *InviteCodeRepository) Create(ctx context.Context, code *model.InviteCode) error {
	result := r.db.WithContext(ctx).Create(code)
	if result.Error != nil {
		return fmt.Errorf("failed to create invite code: %w", result.Error)
	}
	return nil
}

func (r *InviteCodeRepository) FindByCode(ctx context.Context, code string) (*model.InviteCode, error) {
	var invite model.InviteCode
	result := r.db.WithContext(ctx).Where("code = ?", code).First(&invite)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInviteCodeNotFound
		}
		return nil, fmt.Errorf("failed to find invite code: %w", result.Error)
	}
	return &invite, nil
}

func (r *InviteCodeRepository) Update(ctx context.Context, code *model.InviteCode) error {
	result := r.db.WithContext(ctx).Save(code)
	if result.Error != nil {
		return fmt.Errorf("failed to update invite code: %w", result.Error)
	}
	return nil
}

func (r *InviteCodeRepository) FindAll(ctx context.Context) ([]*model.InviteCode, error) {
	var codes []*model.InviteCode
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&codes)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list invite codes: %w", result.Error)
	}
	return codes, nil
}
