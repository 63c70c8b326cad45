// internal/repository/student.go
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

type StudentRepositoryIface interface {
	Create(ctx context.Context, student *model.Student) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.Student, error)
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*model.Student, error)
	FindRoster(ctx context.Context, tenantID uuid.UUID) ([]*model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	result := r.db.WithContext(ctx).Create(student)
	if result.Error != nil {
		return fmt.Errorf("failed to create student: %w", result.Error)
	}
	return nil
}

func (r *StudentRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.Student, error) {
	var student model.Student
	result := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&student, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to find student: %w", result.Error)
	}
	return &student, nil
}

func (r *StudentRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*model.Student, error) {
	var students []*model.Student
	result := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name").
		Find(&students)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find students: %w", result.Error)
	}
	return students, nil
}

// FindRoster returns the official roster: director-imported and manually
// added students. Parent-registered provisional records are excluded; they
// are match candidates for nothing.
func (r *StudentRepository) FindRoster(ctx context.Context, tenantID uuid.UUID) ([]*model.Student, error) {
	var students []*model.Student
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND source IN ?", tenantID,
			[]model.StudentSource{model.SourceRoster, model.SourceManual}).
		Order("name").
		Find(&students)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find roster: %w", result.Error)
	}
	return students, nil
}

func (r *StudentRepository) Update(ctx context.Context, student *model.Student) error {
	result := r.db.WithContext(ctx).Save(student)
	if result.Error != nil {
		return fmt.Errorf("failed to update student: %w", result.Error)
	}
	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&model.Student{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete student: %w", result.Error)
	}
	return nil
}
