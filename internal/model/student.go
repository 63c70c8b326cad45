// internal/model/student.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentSource string

const (
	// SourceRoster is a director-imported canonical record.
	SourceRoster StudentSource = "ROSTER"
	// SourceParentRegistration is a provisional record created when a
	// parent's self-reported student did not match the roster. Promoted to
	// ROSTER on director approval.
	SourceParentRegistration StudentSource = "PARENT_REGISTRATION"
	SourceManual             StudentSource = "MANUAL"
)

type Student struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TenantID   uuid.UUID     `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name       string        `gorm:"type:text;not null" json:"name"`
	Instrument string        `gorm:"type:text" json:"instrument"`
	Grade      *string       `gorm:"type:text" json:"grade,omitempty"`
	Source     StudentSource `gorm:"type:text;not null;default:'ROSTER'" json:"source"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	Tenant Tenant `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
}

type LinkStatus string

const (
	LinkPending  LinkStatus = "PENDING"
	LinkActive   LinkStatus = "ACTIVE"
	LinkRejected LinkStatus = "REJECTED"
)

// StudentParent is the parent claim on a student. At most one ACTIVE
// relationship may exist per student; the partial unique index enforces the
// claim under concurrent approvals.
type StudentParent struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_parent_student" json:"tenant_id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_parent_student" json:"user_id"`
	StudentID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_parent_student;uniqueIndex:idx_student_active_claim,where:status = 'ACTIVE'" json:"student_id"`
	Status    LinkStatus     `gorm:"type:text;not null;default:'PENDING'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Student Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student"`
}
