// internal/repository/student_parent.go
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

type StudentParentRepositoryIface interface {
	Create(ctx context.Context, rel *model.StudentParent) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.StudentParent, error)
	FindByUser(ctx context.Context, tenantID, userID uuid.UUID) ([]*model.StudentParent, error)
	FindActiveByStudent(ctx context.Context, studentID uuid.UUID) (*model.StudentParent, error)
	FindPendingByTenant(ctx context.Context, tenantID uuid.UUID) ([]*model.StudentParent, error)
	Update(ctx context.Context, rel *model.StudentParent) error
	Relink(ctx context.Context, rel *model.StudentParent, targetStudentID uuid.UUID) error
}

type StudentParentRepository struct {
	db *gorm.DB
}

func NewStudentParentRepository(db *gorm.DB) *StudentParentRepository {
	return &StudentParentRepository{db: db}
}

func (r *StudentParentRepository) Create(ctx context.Context, rel *model.StudentParent) error {
	result := r.db.WithContext(ctx).Create(rel)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			return domain.ErrStudentAlreadyClaimed
		}
		return fmt.Errorf("failed to create relationship: %w", result.Error)
	}
	return nil
}

func (r *StudentParentRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.StudentParent, error) {
	var rel model.StudentParent
	result := r.db.WithContext(ctx).
		Preload("Student").
		Where("tenant_id = ?", tenantID).
		First(&rel, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRelationshipNotFound
		}
		return nil, fmt.Errorf("failed to find relationship: %w", result.Error)
	}
	return &rel, nil
}

func (r *StudentParentRepository) FindByUser(ctx context.Context, tenantID, userID uuid.UUID) ([]*model.StudentParent, error) {
	var rels []*model.StudentParent
	result := r.db.WithContext(ctx).
		Preload("Student").
		Where("tenant_id = ? AND user_id = ?", tenantID, userID).
		Find(&rels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find relationships: %w", result.Error)
	}
	return rels, nil
}

// FindActiveByStudent returns the single ACTIVE claim on a student, if any.
func (r *StudentParentRepository) FindActiveByStudent(ctx context.Context, studentID uuid.UUID) (*model.StudentParent, error) {
	var rel model.StudentParent
	result := r.db.WithContext(ctx).
		Where("student_id = ? AND status = ?", studentID, model.LinkActive).
		First(&rel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRelationshipNotFound
		}
		return nil, fmt.Errorf("failed to find active claim: %w", result.Error)
	}
	return &rel, nil
}

func (r *StudentParentRepository) FindPendingByTenant(ctx context.Context, tenantID uuid.UUID) ([]*model.StudentParent, error) {
	var rels []*model.StudentParent
	result := r.db.WithContext(ctx).
		Preload("Student").
		Preload("User").
		Where("tenant_id = ? AND status = ?", tenantID, model.LinkPending).
		Find(&rels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find pending relationships: %w", result.Error)
	}
	return rels, nil
}

func (r *StudentParentRepository) Update(ctx context.Context, rel *model.StudentParent) error {
	result := r.db.WithContext(ctx).Save(rel)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			return domain.ErrStudentAlreadyClaimed
		}
		return fmt.Errorf("failed to update relationship: %w", result.Error)
	}
	return nil
}

// Relink repoints rel at targetStudentID and deletes the now-orphaned
// parent-created student row, all-or-nothing.
func (r *StudentParentRepository) Relink(ctx context.Context, rel *model.StudentParent, targetStudentID uuid.UUID) error {
	orphanID := rel.StudentID
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.StudentParent{}).
			Where("id = ?", rel.ID).
			Update("student_id", targetStudentID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Student{}, "id = ?", orphanID).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if IsUniqueViolation(err) {
			return domain.ErrStudentAlreadyClaimed
		}
		return fmt.Errorf("failed to relink relationship: %w", err)
	}
	rel.StudentID = targetStudentID
	return nil
}
