// internal/repository/repository.go
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/marchkeep/marchkeep/internal/model"
)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// failure. Racing duplicate writes are rejected by the database and surfaced
// to handlers as validation errors, not server errors.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return false
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Tenant{},
		&model.Membership{},
		&model.Student{},
		&model.StudentParent{},
		&model.PaymentCategory{},
		&model.StudentPaymentEnrollment{},
		&model.Payment{},
		&model.GuestPayment{},
		&model.StripeCache{},
		&model.InviteCode{},
		&model.LinkAuditLog{},
	)
}
