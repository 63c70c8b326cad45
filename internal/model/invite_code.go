// internal/model/invite_code.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// InviteCode is a single-use, time-bounded credential gating tenant creation.
type InviteCode struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Code          string     `gorm:"type:text;uniqueIndex;not null" json:"code"`
	SchoolName    string     `gorm:"type:text;not null" json:"school_name"`
	DirectorEmail string     `gorm:"type:citext;not null" json:"director_email"`
	Used          bool       `gorm:"not null;default:false" json:"used"`
	UsedAt        *time.Time `json:"used_at,omitempty"`
	TenantID      *uuid.UUID `gorm:"type:uuid" json:"tenant_id,omitempty"`
	ExpiresAt     time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (c *InviteCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
