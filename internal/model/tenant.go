// internal/model/tenant.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type TenantStatus string

const (
	TenantPending  TenantStatus = "pending"
	TenantActive   TenantStatus = "active"
	TenantInactive TenantStatus = "inactive"
	TenantReserved TenantStatus = "reserved"
)

// Tenant is one school band program, the unit of data isolation. The slug is
// immutable after creation; it doubles as the tenant's subdomain.
type Tenant struct {
	ID            uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Slug          string       `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	Name          string       `gorm:"type:text;not null" json:"name"`
	Status        TenantStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	DirectorEmail string       `gorm:"type:citext;not null" json:"director_email"`
	DirectorName  string       `gorm:"type:text" json:"director_name"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`

	Memberships []Membership `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
}

type Role string

const (
	RoleParent        Role = "PARENT"
	RoleDirector      Role = "DIRECTOR"
	RoleBooster       Role = "BOOSTER"
	RolePlatformAdmin Role = "PLATFORM_ADMIN"
)

// Membership links an authenticated identity to a tenant with a role. A user
// may hold memberships in multiple tenants; PLATFORM_ADMIN bypasses tenant
// scoping entirely.
type Membership struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_membership_user_tenant" json:"user_id"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_membership_user_tenant" json:"tenant_id"`
	Role      Role      `gorm:"type:text;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`

	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}
