// internal/model/payment.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentCategory is a payable fee bucket. Amounts are integer cents. When
// AllowIncrements is set, a payment must be a positive multiple of
// IncrementAmount and no larger than FullAmount; otherwise only a payment of
// exactly FullAmount is accepted.
type PaymentCategory struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TenantID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_category_tenant_name" json:"tenant_id"`
	Name            string    `gorm:"type:text;not null;uniqueIndex:idx_category_tenant_name" json:"name"`
	FullAmount      int64     `gorm:"not null" json:"full_amount"`
	AllowIncrements bool      `gorm:"not null;default:false" json:"allow_increments"`
	IncrementAmount *int64    `json:"increment_amount,omitempty"`
	Active          bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Tenant Tenant `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
}

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentPaid      EnrollmentStatus = "paid"
	EnrollmentCancelled EnrollmentStatus = "cancelled"
)

// StudentPaymentEnrollment tracks a student's registration into a payment
// category. AmountPaid is a derived value recomputed from the payment
// provider's ledger on every sync; it is never incremented blindly except on
// manual guest-payment resolution, where the audit trail records the source.
type StudentPaymentEnrollment struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TenantID   uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_student_category" json:"tenant_id"`
	StudentID  uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_student_category" json:"student_id"`
	CategoryID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_student_category" json:"category_id"`
	TotalOwed  int64            `gorm:"not null" json:"total_owed"`
	AmountPaid int64            `gorm:"not null;default:0" json:"amount_paid"`
	Status     EnrollmentStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`

	Tenant   Tenant          `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
	Student  Student         `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Category PaymentCategory `gorm:"foreignKey:CategoryID" json:"-"`
}

// Payment is the immutable record of a completed (or pending) charge, keyed
// by the provider's payment-intent id.
type Payment struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TenantID              uuid.UUID  `gorm:"type:uuid;not null;index" json:"tenant_id"`
	UserID                *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	StudentID             *uuid.UUID `gorm:"type:uuid;index" json:"student_id,omitempty"`
	CategoryID            *uuid.UUID `gorm:"type:uuid" json:"category_id,omitempty"`
	StripePaymentIntentID string     `gorm:"type:text;uniqueIndex;not null" json:"stripe_payment_intent_id"`
	Amount                int64      `gorm:"not null" json:"amount"`
	Status                string     `gorm:"type:text;not null" json:"status"`
	Category              string     `gorm:"type:text" json:"category"`
	Description           string     `gorm:"type:text" json:"description"`
	CreatedAt             time.Time  `json:"created_at"`

	Tenant Tenant `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
}

// GuestPayment is a charge made without an authenticated account. The
// Matched*/Resolution fields are the audit trail of how it was attached to a
// real student and parent after the fact.
type GuestPayment struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TenantID              uuid.UUID  `gorm:"type:uuid;not null;index" json:"tenant_id"`
	StripePaymentIntentID string     `gorm:"type:text;uniqueIndex;not null" json:"stripe_payment_intent_id"`
	PayerName             string     `gorm:"type:text;not null" json:"payer_name"`
	PayerEmail            string     `gorm:"type:citext;not null" json:"payer_email"`
	StudentName           string     `gorm:"type:text;not null" json:"student_name"`
	Category              string     `gorm:"type:text;not null" json:"category"`
	Amount                int64      `gorm:"not null" json:"amount"`
	Status                string     `gorm:"type:text;not null" json:"status"`
	MatchedStudentID      *uuid.UUID `gorm:"type:uuid" json:"matched_student_id,omitempty"`
	MatchedUserID         *uuid.UUID `gorm:"type:uuid" json:"matched_user_id,omitempty"`
	MatchScore            *float64   `json:"match_score,omitempty"`
	ResolutionNotes       *string    `gorm:"type:text" json:"resolution_notes,omitempty"`
	ResolvedAt            *time.Time `json:"resolved_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`

	Tenant Tenant `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
}
