// internal/repository/guest_payment.go
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

type GuestPaymentRepositoryIface interface {
	Create(ctx context.Context, payment *model.GuestPayment) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.GuestPayment, error)
	FindByIntentID(ctx context.Context, intentID string) (*model.GuestPayment, error)
	FindUnresolvedByTenant(ctx context.Context, tenantID uuid.UUID) ([]*model.GuestPayment, error)
	Update(ctx context.Context, payment *model.GuestPayment) error
}

type GuestPaymentRepository struct {
	db *gorm.DB
}

func NewGuestPaymentRepository(db *gorm.DB) *GuestPaymentRepository {
	return &GuestPaymentRepository{db: db}
}

func (r *GuestPaymentRepository) Create(ctx context.Context, payment *model.GuestPayment) error {
	result := r.db.WithContext(ctx).Create(payment)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			return domain.ErrDuplicatePayment
		}
		return fmt.Errorf("failed to create guest payment: %w", result.Error)
	}
	return nil
}

func (r *GuestPaymentRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.GuestPayment, error) {
	var payment model.GuestPayment
	result := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&payment, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGuestPaymentNotFound
		}
		return nil, fmt.Errorf("failed to find guest payment: %w", result.Error)
	}
	return &payment, nil
}

func (r *GuestPaymentRepository) FindByIntentID(ctx context.Context, intentID string) (*model.GuestPayment, error) {
	var payment model.GuestPayment
	result := r.db.WithContext(ctx).
		Where("stripe_payment_intent_id = ?", intentID).
		First(&payment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGuestPaymentNotFound
		}
		return nil, fmt.Errorf("failed to find guest payment: %w", result.Error)
	}
	return &payment, nil
}

func (r *GuestPaymentRepository) FindUnresolvedByTenant(ctx context.Context, tenantID uuid.UUID) ([]*model.GuestPayment, error) {
	var payments []*model.GuestPayment
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND resolved_at IS NULL", tenantID).
		Order("created_at DESC").
		Find(&payments)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find unresolved guest payments: %w", result.Error)
	}
	return payments, nil
}

func (r *GuestPaymentRepository) Update(ctx context.Context, payment *model.GuestPayment) error {
	result := r.db.WithContext(ctx).Save(payment)
	if result.Error != nil {
		return fmt.Errorf("failed to update guest payment: %w", result.Error)
	}
	return nil
}
