// internal/service/payment.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/marchkeep/marchkeep/internal/billing"
	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/model"
	"github.com/marchkeep/marchkeep/internal/repository"
)

// Syncer rebuilds a user's payment snapshot from the provider. Read paths
// sync first so the data returned is as fresh as the provider allows.
type Syncer interface {
	SyncStripeDataToUser(ctx context.Context, userID uuid.UUID) (*billing.CustomerSnapshot, error)
}

type PaymentService struct {
	categoryRepo   repository.PaymentCategoryRepositoryIface
	enrollmentRepo repository.EnrollmentRepositoryIface
	relRepo        repository.StudentParentRepositoryIface
	studentRepo    repository.StudentRepositoryIface
	userRepo       repository.UserRepositoryIface
	cacheRepo      repository.StripeCacheRepositoryIface
	billing        billing.API
	syncer         Syncer
	logger         *slog.Logger
	validate       *validator.Validate
}

func NewPaymentService(
	categoryRepo repository.PaymentCategoryRepositoryIface,
	enrollmentRepo repository.EnrollmentRepositoryIface,
	relRepo repository.StudentParentRepositoryIface,
	studentRepo repository.StudentRepositoryIface,
	userRepo repository.UserRepositoryIface,
	cacheRepo repository.StripeCacheRepositoryIface,
	billingAPI billing.API,
	syncer Syncer,
	logger *slog.Logger,
) *PaymentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentService{
		categoryRepo:   categoryRepo,
		enrollmentRepo: enrollmentRepo,
		relRepo:        relRepo,
		studentRepo:    studentRepo,
		userRepo:       userRepo,
		cacheRepo:      cacheRepo,
		billing:        billingAPI,
		syncer:         syncer,
		logger:         logger,
		validate:       validator.New(),
	}
}

// ValidateAmount enforces the category's payment rules. Non-incremental
// categories accept exactly the full amount. Incremental categories accept
// positive multiples of the increment, capped at the full amount.
func ValidateAmount(category *model.PaymentCategory, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidAmount)
	}
	if !category.AllowIncrements {
		if amount != category.FullAmount {
			return fmt.Errorf("%w: category %q requires exactly %d", domain.ErrInvalidAmount, category.Name, category.FullAmount)
		}
		return nil
	}
	if category.IncrementAmount == nil || *category.IncrementAmount <= 0 {
		return fmt.Errorf("%w: category %q has no increment configured", domain.ErrInvalidAmount, category.Name)
	}
	if amount%*category.IncrementAmount != 0 {
		return fmt.Errorf("%w: amount must be a multiple of %d", domain.ErrInvalidAmount, *category.IncrementAmount)
	}
	if amount > category.FullAmount {
		return fmt.Errorf("%w: amount exceeds the %d owed", domain.ErrInvalidAmount, category.FullAmount)
	}
	return nil
}

// Categories lists the tenant's active payment categories.
func (s *PaymentService) Categories(ctx context.Context, tenantID uuid.UUID) ([]*model.PaymentCategory, error) {
	return s.categoryRepo.FindByTenant(ctx, tenantID, true)
}

type CreateCheckoutInput struct {
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
	Amount     int64     `json:"amount" validate:"required"`
	SuccessURL string    `json:"success_url" validate:"required,url"`
	CancelURL  string    `json:"cancel_url" validate:"required,url"`
}

type CheckoutOutput struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// CreateCheckout opens a provider checkout session for an authenticated
// parent paying toward a category. The caller must hold the ACTIVE claim on
// the student.
func (s *PaymentService) CreateCheckout(ctx context.Context, tenantID, userID uuid.UUID, input CreateCheckoutInput) (*CheckoutOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	category, err := s.categoryRepo.FindByID(ctx, tenantID, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if !category.Active {
		return nil, domain.ErrCategoryInactive
	}
	if err := ValidateAmount(category, input.Amount); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.FindByID(ctx, tenantID, input.StudentID)
	if err != nil {
		return nil, err
	}
	rel, err := s.relRepo.FindActiveByStudent(ctx, student.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRelationshipNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	if rel.UserID != userID {
		return nil, domain.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	customerID, err := s.ensureCustomer(ctx, user)
	if err != nil {
		return nil, err
	}

	sess, err := s.billing.CreateCheckoutSession(ctx, billing.CheckoutParams{
		CustomerID:  customerID,
		Amount:      input.Amount,
		ProductName: fmt.Sprintf("%s for %s", category.Name, student.Name),
		SuccessURL:  input.SuccessURL,
		CancelURL:   input.CancelURL,
		Metadata: map[string]string{
			billing.MetaTenantID:    tenantID.String(),
			billing.MetaUserID:      userID.String(),
			billing.MetaStudentID:   student.ID.String(),
			billing.MetaStudentName: student.Name,
			billing.MetaCategory:    category.Name,
			billing.MetaPaymentType: "member",
		},
	})
	if err != nil {
		return nil, err
	}
	return &CheckoutOutput{SessionID: sess.ID, URL: sess.URL}, nil
}

// Enroll registers a claimed student into a payment category and records the
// enrollment in the provider's customer metadata so the sync engine can
// rebuild it.
func (s *PaymentService) Enroll(ctx context.Context, tenantID, userID, studentID, categoryID uuid.UUID) (*model.StudentPaymentEnrollment, error) {
	student, err := s.studentRepo.FindByID(ctx, tenantID, studentID)
	if err != nil {
		return nil, err
	}
	rel, err := s.relRepo.FindActiveByStudent(ctx, student.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRelationshipNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	if rel.UserID != userID {
		return nil, domain.ErrForbidden
	}

	category, err := s.categoryRepo.FindByID(ctx, tenantID, categoryID)
	if err != nil {
		return nil, err
	}
	if !category.Active {
		return nil, domain.ErrCategoryInactive
	}

	enrollment := &model.StudentPaymentEnrollment{
		TenantID:   tenantID,
		StudentID:  student.ID,
		CategoryID: category.ID,
		TotalOwed:  category.FullAmount,
		Status:     model.EnrollmentActive,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		if errors.Is(err, domain.ErrEnrollmentExists) {
			existing, findErr := s.enrollmentRepo.FindByStudentAndCategory(ctx, student.ID, category.ID)
			if findErr != nil {
				return nil, findErr
			}
			if existing.Status == model.EnrollmentActive {
				return nil, domain.ErrEnrollmentExists
			}
			existing.Status = model.EnrollmentActive
			existing.TotalOwed = category.FullAmount
			if err := s.enrollmentRepo.Update(ctx, existing); err != nil {
				return nil, err
			}
			enrollment = existing
		} else {
			return nil, err
		}
	}

	s.writeEnrollmentMetadata(ctx, userID, student, category.Name, true, category.FullAmount, enrollment.AmountPaid)
	return enrollment, nil
}

// Unenroll cancels an enrollment. The row is kept so amounts already paid
// stay visible; only the status and the provider metadata change.
func (s *PaymentService) Unenroll(ctx context.Context, tenantID, userID, studentID, categoryID uuid.UUID) error {
	rel, err := s.relRepo.FindActiveByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, domain.ErrRelationshipNotFound) {
			return domain.ErrForbidden
		}
		return err
	}
	if rel.UserID != userID {
		return domain.ErrForbidden
	}

	enrollment, err := s.enrollmentRepo.FindByStudentAndCategory(ctx, studentID, categoryID)
	if err != nil {
		return err
	}
	if enrollment.TenantID != tenantID {
		return domain.ErrWrongTenant
	}
	enrollment.Status = model.EnrollmentCancelled
	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return err
	}

	student, err := s.studentRepo.FindByID(ctx, tenantID, studentID)
	if err != nil {
		return err
	}
	category, err := s.categoryRepo.FindByID(ctx, tenantID, categoryID)
	if err != nil {
		return err
	}
	s.writeEnrollmentMetadata(ctx, userID, student, category.Name, false, enrollment.TotalOwed, enrollment.AmountPaid)
	return nil
}

// Snapshot syncs the user's provider data and returns the fresh snapshot.
// When the sync comes back empty the last persisted snapshot is served.
func (s *PaymentService) Snapshot(ctx context.Context, userID uuid.UUID) (*billing.CustomerSnapshot, error) {
	snapshot, err := s.syncer.SyncStripeDataToUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snapshot != nil {
		return snapshot, nil
	}

	row, err := s.cacheRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &billing.CustomerSnapshot{Version: billing.SnapshotVersion}, nil
		}
		return nil, err
	}
	var cached billing.CustomerSnapshot
	if err := json.Unmarshal(row.Data, &cached); err != nil {
		return nil, fmt.Errorf("decoding cached snapshot: %w", err)
	}
	return &cached, nil
}

// Enrollments returns the enrollment slice of the snapshot, sync-then-read.
func (s *PaymentService) Enrollments(ctx context.Context, userID uuid.UUID) (map[string]billing.StudentEnrollment, error) {
	snapshot, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snapshot.Enrollments == nil {
		return map[string]billing.StudentEnrollment{}, nil
	}
	return snapshot.Enrollments, nil
}

// History returns the user's normalized payment records, sync-then-read.
func (s *PaymentService) History(ctx context.Context, userID uuid.UUID) ([]billing.PaymentRecord, error) {
	snapshot, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return snapshot.Payments, nil
}

type GuestCheckoutInput struct {
	PayerName   string `json:"payer_name" validate:"required"`
	PayerEmail  string `json:"payer_email" validate:"required,email"`
	StudentName string `json:"student_name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Amount      int64  `json:"amount" validate:"required"`
	SuccessURL  string `json:"success_url" validate:"required,url"`
	CancelURL   string `json:"cancel_url" validate:"required,url"`
}

// GuestCheckout opens a checkout session for an unauthenticated payer. The
// payer's self-reported student name rides along in metadata; the webhook
// records the guest payment for later matching when the session completes.
func (s *PaymentService) GuestCheckout(ctx context.Context, tenantID uuid.UUID, input GuestCheckoutInput) (*CheckoutOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	category, err := s.categoryRepo.FindByName(ctx, tenantID, input.Category)
	if err != nil {
		return nil, err
	}
	if !category.Active {
		return nil, domain.ErrCategoryInactive
	}
	if err := ValidateAmount(category, input.Amount); err != nil {
		return nil, err
	}

	sess, err := s.billing.CreateCheckoutSession(ctx, billing.CheckoutParams{
		CustomerEmail: input.PayerEmail,
		Amount:        input.Amount,
		ProductName:   fmt.Sprintf("%s for %s", category.Name, input.StudentName),
		SuccessURL:    input.SuccessURL,
		CancelURL:     input.CancelURL,
		Metadata: map[string]string{
			billing.MetaTenantID:    tenantID.String(),
			billing.MetaStudentName: input.StudentName,
			billing.MetaCategory:    category.Name,
			billing.MetaPayerName:   input.PayerName,
			billing.MetaPayerEmail:  input.PayerEmail,
			billing.MetaPaymentType: "guest",
		},
	})
	if err != nil {
		return nil, err
	}
	return &CheckoutOutput{SessionID: sess.ID, URL: sess.URL}, nil
}

func (s *PaymentService) ensureCustomer(ctx context.Context, user *model.User) (string, error) {
	if user.StripeCustomerID != "" {
		return user.StripeCustomerID, nil
	}
	cust, err := s.billing.CreateCustomer(ctx, user.Email, user.FullName())
	if err != nil {
		return "", err
	}
	user.StripeCustomerID = cust.ID
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}
	return cust.ID, nil
}

// writeEnrollmentMetadata patches the enrollment document in the provider's
// customer metadata. Failure is logged, not propagated; the next sync pass
// heals the document from the database rows.
func (s *PaymentService) writeEnrollmentMetadata(ctx context.Context, userID uuid.UUID, student *model.Student, categoryName string, enrolled bool, totalOwed, amountPaid int64) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user.StripeCustomerID == "" {
		return
	}

	state := map[string]billing.StudentEnrollment{}
	cust, err := s.billing.GetCustomer(ctx, user.StripeCustomerID)
	if err != nil {
		s.logger.Warn("failed to fetch customer for enrollment metadata", "user_id", userID.String(), "error", err)
		return
	}
	if raw, ok := cust.Metadata[billing.MetaEnrollments]; ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &state); err != nil {
			s.logger.Warn("discarding malformed enrollment metadata", "customer_id", cust.ID, "error", err)
			state = map[string]billing.StudentEnrollment{}
		}
	}

	entry, ok := state[student.ID.String()]
	if !ok {
		entry = billing.StudentEnrollment{
			StudentName: student.Name,
			Categories:  map[string]billing.CategoryEnrollment{},
		}
	}
	if entry.Categories == nil {
		entry.Categories = map[string]billing.CategoryEnrollment{}
	}
	cat := entry.Categories[categoryName]
	cat.Enrolled = enrolled
	if enrolled && cat.EnrolledAt.IsZero() {
		cat.EnrolledAt = time.Now().UTC()
	}
	cat.TotalOwed = totalOwed
	cat.AmountPaid = amountPaid
	entry.Categories[categoryName] = cat
	state[student.ID.String()] = entry

	doc, err := json.Marshal(state)
	if err != nil {
		s.logger.Warn("failed to encode enrollment metadata", "error", err)
		return
	}
	if _, err := s.billing.UpdateCustomerMetadata(ctx, user.StripeCustomerID, map[string]string{
		billing.MetaEnrollments: string(doc),
	}); err != nil {
		s.logger.Warn("failed to write enrollment metadata", "customer_id", user.StripeCustomerID, "error", err)
	}
}
