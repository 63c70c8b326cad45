// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	// Tenant-related errors
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrTenantNotActive    = errors.New("tenant is not active")
	ErrSubdomainTaken     = errors.New("subdomain is already taken")
	ErrSubdomainReserved  = errors.New("subdomain is reserved")
	ErrInvalidSubdomain   = errors.New("invalid subdomain format")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrWrongTenant        = errors.New("resource belongs to a different tenant")
	ErrInviteCodeNotFound = errors.New("invite code not found")
	ErrInviteCodeUsed     = errors.New("invite code has already been used")
	ErrInviteCodeExpired  = errors.New("invite code has expired")

	// Student-related errors
	ErrStudentNotFound       = errors.New("student not found")
	ErrStudentAlreadyClaimed = errors.New("student is already claimed by another parent")
	ErrRelationshipNotFound  = errors.New("student relationship not found")
	ErrRelationshipExists    = errors.New("student relationship already exists")
	ErrInvalidTransition     = errors.New("invalid relationship state transition")
	ErrRelinkNotAllowed      = errors.New("relink requires a parent-registered source and an unclaimed roster target")

	// Payment-related errors
	ErrCategoryNotFound     = errors.New("payment category not found")
	ErrCategoryInactive     = errors.New("payment category is inactive")
	ErrInvalidAmount        = errors.New("invalid payment amount")
	ErrEnrollmentNotFound   = errors.New("enrollment not found")
	ErrEnrollmentExists     = errors.New("enrollment already exists")
	ErrNoStripeCustomer     = errors.New("user has no payment customer")
	ErrGuestPaymentNotFound = errors.New("guest payment not found")
	ErrDuplicatePayment     = errors.New("payment already recorded")
)
