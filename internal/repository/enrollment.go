// internal/repository/enrollment.go
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

type EnrollmentRepositoryIface interface {
	Create(ctx context.Context, enrollment *model.StudentPaymentEnrollment) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.StudentPaymentEnrollment, error)
	FindByStudentAndCategory(ctx context.Context, studentID, categoryID uuid.UUID) (*model.StudentPaymentEnrollment, error)
	FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.StudentPaymentEnrollment, error)
	FindByStudents(ctx context.Context, studentIDs []uuid.UUID) ([]*model.StudentPaymentEnrollment, error)
	Update(ctx context.Context, enrollment *model.StudentPaymentEnrollment) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *model.StudentPaymentEnrollment) error {
	result := r.db.WithContext(ctx).Create(enrollment)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			return domain.ErrEnrollmentExists
		}
		return fmt.Errorf("failed to create enrollment: %w", result.Error)
	}
	return nil
}

func (r *EnrollmentRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.StudentPaymentEnrollment, error) {
	var enrollment model.StudentPaymentEnrollment
	result := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&enrollment, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("failed to find enrollment: %w", result.Error)
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) FindByStudentAndCategory(ctx context.Context, studentID, categoryID uuid.UUID) (*model.StudentPaymentEnrollment, error) {
	var enrollment model.StudentPaymentEnrollment
	result := r.db.WithContext(ctx).
		Where("student_id = ? AND category_id = ?", studentID, categoryID).
		First(&enrollment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("failed to find enrollment: %w", result.Error)
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.StudentPaymentEnrollment, error) {
	var enrollments []*model.StudentPaymentEnrollment
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("student_id = ?", studentID).
		Find(&enrollments)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find enrollments: %w", result.Error)
	}
	return enrollments, nil
}

func (r *EnrollmentRepository) FindByStudents(ctx context.Context, studentIDs []uuid.UUID) ([]*model.StudentPaymentEnrollment, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}

	var enrollments []*model.StudentPaymentEnrollment
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("student_id IN ?", studentIDs).
		Find(&enrollments)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find enrollments: %w", result.Error)
	}
	return enrollments, nil
}

func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *model.StudentPaymentEnrollment) error {
	result := r.db.WithContext(ctx).Save(enrollment)
	if result.Error != nil {
		return fmt.Errorf("failed to update enrollment: %w", result.Error)
	}
	return nil
}

func (r *EnrollmentRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&model.StudentPaymentEnrollment{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete enrollment: %w", result.Error)
	}
	return nil
}
