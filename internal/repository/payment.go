// internal/repository/payment.go
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

type PaymentRepositoryIface interface {
	Create(ctx context.Context, payment *model.Payment) error
	FindByIntentID(ctx context.Context, intentID string) (*model.Payment, error)
	FindByUser(ctx context.Context, tenantID, userID uuid.UUID) ([]*model.Payment, error)
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	result := r.db.WithContext(ctx).Create(payment)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			return domain.ErrDuplicatePayment
		}
		return fmt.Errorf("failed to create payment: %w", result.Error)
	}
	return nil
}

func (r *PaymentRepository) FindByIntentID(ctx context.Context, intentID string) (*model.Payment, error) {
	var payment model.Payment
	result := r.db.WithContext(ctx).
		Where("stripe_payment_intent_id = ?", intentID).
		First(&payment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment: %w", result.Error)
	}
	return &payment, nil
}

func (r *PaymentRepository) FindByUser(ctx context.Context, tenantID, userID uuid.UUID) ([]*model.Payment, error) {
	var payments []*model.Payment
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND user_id = ?", tenantID, userID).
		Order("created_at DESC").
		Find(&payments)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find payments: %w", result.Error)
	}
	return payments, nil
}
