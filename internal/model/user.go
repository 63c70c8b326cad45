// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	StatusPending UserStatus = "pending"
	StatusActive  UserStatus = "active"
	StatusLocked  UserStatus = "locked"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName    string     `gorm:"type:text;not null" json:"first_name"`
	LastName     string     `gorm:"type:text" json:"last_name"`
	PasswordHash string     `gorm:"type:text" json:"-"`
	Status       UserStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	// IsGhost marks profiles created during guest-payment resolution for
	// payers without an account. Ghost users cannot log in until they set a
	// password through the normal signup flow.
	IsGhost          bool      `gorm:"not null;default:false" json:"is_ghost"`
	StripeCustomerID string    `gorm:"type:text;index" json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
