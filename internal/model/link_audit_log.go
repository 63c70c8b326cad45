// internal/model/link_audit_log.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type LinkAction string

const (
	LinkActionApprove LinkAction = "approve"
	LinkActionReject  LinkAction = "reject"
	LinkActionRelink  LinkAction = "relink"
)

// LinkAuditLog records every student-parent relationship transition: who
// acted, what changed, and the before/after state.
type LinkAuditLog struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TenantID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"tenant_id"`
	RelationshipID uuid.UUID  `gorm:"type:uuid;not null;index" json:"relationship_id"`
	ActorUserID    uuid.UUID  `gorm:"type:uuid;not null" json:"actor_user_id"`
	Action         LinkAction `gorm:"type:text;not null" json:"action"`
	FromStatus     LinkStatus `gorm:"type:text;not null" json:"from_status"`
	ToStatus       LinkStatus `gorm:"type:text;not null" json:"to_status"`
	FromStudentID  uuid.UUID  `gorm:"type:uuid;not null" json:"from_student_id"`
	ToStudentID    *uuid.UUID `gorm:"type:uuid" json:"to_student_id,omitempty"`
	Detail         string     `gorm:"type:text" json:"detail"`
	CreatedAt      time.Time  `json:"created_at"`
}
