// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./tenant.go -destination=../mocks/mock_tenant_repository.go -package=mocks TenantRepositoryIface
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./student.go -destination=../mocks/mock_student_repository.go -package=mocks StudentRepositoryIface
//go:generate mockgen -source=./student_parent.go -destination=../mocks/mock_student_parent_repository.go -package=mocks StudentParentRepositoryIface
//go:generate mockgen -source=./payment_category.go -destination=../mocks/mock_payment_category_repository.go -package=mocks PaymentCategoryRepositoryIface
//go:generate mockgen -source=./enrollment.go -destination=../mocks/mock_enrollment_repository.go -package=mocks EnrollmentRepositoryIface
//go:generate mockgen -source=./payment.go -destination=../mocks/mock_payment_repository.go -package=mocks PaymentRepositoryIface
//go:generate mockgen -source=./guest_payment.go -destination=../mocks/mock_guest_payment_repository.go -package=mocks GuestPaymentRepositoryIface
//go:generate mockgen -source=./stripe_cache.go -destination=../mocks/mock_stripe_cache_repository.go -package=mocks StripeCacheRepositoryIface
//go:generate mockgen -source=./invite_code.go -destination=../mocks/mock_invite_code_repository.go -package=mocks InviteCodeRepositoryIface
//go:generate mockgen -source=./membership.go -destination=../mocks/mock_membership_repository.go -package=mocks MembershipRepositoryIface
//go:generate mockgen -source=../billing/client.go -destination=../mocks/mock_billing_api.go -package=mocks API
//go:generate mockgen -source=../audit/logger.go -destination=../mocks/mock_audit_logger.go -package=mocks Logger
//go:generate mockgen -source=../service/tenant.go -destination=../mocks/mock_mailer.go -package=mocks Mailer
//go:generate mockgen -source=../service/payment.go -destination=../mocks/mock_syncer.go -package=mocks Syncer
