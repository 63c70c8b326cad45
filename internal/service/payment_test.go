package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/mock/gomock"

	"github.com/marchkeep/marchkeep/internal/billing"
	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/mocks"
	"github.com/marchkeep/marchkeep/internal/model"
	"github.com/marchkeep/marchkeep/internal/service"
)

func TestValidateAmount(t *testing.T) {
	increment := int64(2500)
	incremental := &model.PaymentCategory{
		Name:            "Band Fees",
		FullAmount:      25000,
		AllowIncrements: true,
		IncrementAmount: &increment,
	}
	fixed := &model.PaymentCategory{
		Name:       "Uniform",
		FullAmount: 12000,
	}

	tests := []struct {
		name     string
		category *model.PaymentCategory
		amount   int64
		wantErr  bool
	}{
		{"fixed category exact amount", fixed, 12000, false},
		{"fixed category partial amount", fixed, 6000, true},
		{"fixed category overpayment", fixed, 24000, true},
		{"incremental single increment", incremental, 2500, false},
		{"incremental multiple increments", incremental, 10000, false},
		{"incremental full amount", incremental, 25000, false},
		{"incremental non-multiple", incremental, 3000, true},
		{"incremental over the cap", incremental, 27500, true},
		{"zero amount", incremental, 0, true},
		{"negative amount", fixed, -100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidateAmount(tt.category, tt.amount)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidAmount)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("increments allowed but none configured", func(t *testing.T) {
		broken := &model.PaymentCategory{Name: "Travel", FullAmount: 50000, AllowIncrements: true}
		assert.ErrorIs(t, service.ValidateAmount(broken, 2500), domain.ErrInvalidAmount)
	})
}

func TestCreateCheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	userID := uuid.New()
	studentID := uuid.New()
	categoryID := uuid.New()
	increment := int64(2500)

	category := &model.PaymentCategory{
		ID:              categoryID,
		TenantID:        tenantID,
		Name:            "Band Fees",
		FullAmount:      25000,
		AllowIncrements: true,
		IncrementAmount: &increment,
		Active:          true,
	}
	student := &model.Student{ID: studentID, TenantID: tenantID, Name: "Sarah Johnson", Source: model.SourceRoster}

	input := service.CreateCheckoutInput{
		StudentID:  studentID,
		CategoryID: categoryID,
		Amount:     5000,
		SuccessURL: "https://lincoln-high.marchkeep.com/pay/success",
		CancelURL:  "https://lincoln-high.marchkeep.com/pay/cancel",
	}

	t.Run("active claim holder gets a session", func(t *testing.T) {
		categoryRepo := mocks.NewMockPaymentCategoryRepositoryIface(ctrl)
		studentRepo := mocks.NewMockStudentRepositoryIface(ctrl)
		relRepo := mocks.NewMockStudentParentRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		billingAPI := mocks.NewMockAPI(ctrl)

		categoryRepo.EXPECT().FindByID(gomock.Any(), tenantID, categoryID).Return(category, nil)
		studentRepo.EXPECT().FindByID(gomock.Any(), tenantID, studentID).Return(student, nil)
		relRepo.EXPECT().
			FindActiveByStudent(gomock.Any(), studentID).
			Return(&model.StudentParent{UserID: userID, StudentID: studentID, Status: model.LinkActive}, nil)
		userRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(&model.User{ID: userID, Email: "parent@example.com", StripeCustomerID: "cus_123"}, nil)
		billingAPI.EXPECT().
			CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params billing.CheckoutParams) (*stripe.CheckoutSession, error) {
				assert.Equal(t, "cus_123", params.CustomerID)
				assert.Equal(t, int64(5000), params.Amount)
				assert.Equal(t, "member", params.Metadata[billing.MetaPaymentType])
				assert.Equal(t, studentID.String(), params.Metadata[billing.MetaStudentID])
				return &stripe.CheckoutSession{ID: "cs_123", URL: "https://checkout.stripe.com/cs_123"}, nil
			})

		svc := service.NewPaymentService(categoryRepo, nil, relRepo, studentRepo, userRepo, nil, billingAPI, nil, nil)

		out, err := svc.CreateCheckout(context.Background(), tenantID, userID, input)
		assert.NoError(t, err)
		assert.Equal(t, "cs_123", out.SessionID)
	})

	t.Run("non-claim-holder is forbidden", func(t *testing.T) {
		categoryRepo := mocks.NewMockPaymentCategoryRepositoryIface(ctrl)
		studentRepo := mocks.NewMockStudentRepositoryIface(ctrl)
		relRepo := mocks.NewMockStudentParentRepositoryIface(ctrl)

		categoryRepo.EXPECT().FindByID(gomock.Any(), tenantID, categoryID).Return(category, nil)
		studentRepo.EXPECT().FindByID(gomock.Any(), tenantID, studentID).Return(student, nil)
		relRepo.EXPECT().
			FindActiveByStudent(gomock.Any(), studentID).
			Return(&model.StudentParent{UserID: uuid.New(), StudentID: studentID, Status: model.LinkActive}, nil)

		svc := service.NewPaymentService(categoryRepo, nil, relRepo, studentRepo, nil, nil, nil, nil, nil)

		_, err := svc.CreateCheckout(context.Background(), tenantID, userID, input)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unclaimed student is forbidden", func(t *testing.T) {
		categoryRepo := mocks.NewMockPaymentCategoryRepositoryIface(ctrl)
		studentRepo := mocks.NewMockStudentRepositoryIface(ctrl)
		relRepo := mocks.NewMockStudentParentRepositoryIface(ctrl)

		categoryRepo.EXPECT().FindByID(gomock.Any(), tenantID, categoryID).Return(category, nil)
		studentRepo.EXPECT().FindByID(gomock.Any(), tenantID, studentID).Return(student, nil)
		relRepo.EXPECT().
			FindActiveByStudent(gomock.Any(), studentID).
			Return(nil, domain.ErrRelationshipNotFound)

		svc := service.NewPaymentService(categoryRepo, nil, relRepo, studentRepo, nil, nil, nil, nil, nil)

		_, err := svc.CreateCheckout(context.Background(), tenantID, userID, input)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("inactive category is rejected", func(t *testing.T) {
		categoryRepo := mocks.NewMockPaymentCategoryRepositoryIface(ctrl)
		inactive := &model.PaymentCategory{ID: categoryID, TenantID: tenantID, Name: "Old Fees", FullAmount: 1000}
		categoryRepo.EXPECT().FindByID(gomock.Any(), tenantID, categoryID).Return(inactive, nil)

		svc := service.NewPaymentService(categoryRepo, nil, nil, nil, nil, nil, nil, nil, nil)

		_, err := svc.CreateCheckout(context.Background(), tenantID, userID, input)
		assert.ErrorIs(t, err, domain.ErrCategoryInactive)
	})

	t.Run("bad amount is rejected before any provider call", func(t *testing.T) {
		categoryRepo := mocks.NewMockPaymentCategoryRepositoryIface(ctrl)
		categoryRepo.EXPECT().FindByID(gomock.Any(), tenantID, categoryID).Return(category, nil)

		svc := service.NewPaymentService(categoryRepo, nil, nil, nil, nil, nil, nil, nil, nil)

		bad := input
		bad.Amount = 3000
		_, err := svc.CreateCheckout(context.Background(), tenantID, userID, bad)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestGuestCheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	category := &model.PaymentCategory{
		ID:         uuid.New(),
		TenantID:   tenantID,
		Name:       "Band Fees",
		FullAmount: 25000,
		Active:     true,
	}

	categoryRepo := mocks.NewMockPaymentCategoryRepositoryIface(ctrl)
	billingAPI := mocks.NewMockAPI(ctrl)

	categoryRepo.EXPECT().FindByName(gomock.Any(), tenantID, "Band Fees").Return(category, nil)
	billingAPI.EXPECT().
		CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params billing.CheckoutParams) (*stripe.CheckoutSession, error) {
			assert.Empty(t, params.CustomerID, "guests never get a customer record")
			assert.Equal(t, "grandma@example.com", params.CustomerEmail)
			assert.Equal(t, "guest", params.Metadata[billing.MetaPaymentType])
			assert.Equal(t, "Theo Park", params.Metadata[billing.MetaStudentName])
			return &stripe.CheckoutSession{ID: "cs_guest", URL: "https://checkout.stripe.com/cs_guest"}, nil
		})

	svc := service.NewPaymentService(categoryRepo, nil, nil, nil, nil, nil, billingAPI, nil, nil)

	out, err := svc.GuestCheckout(context.Background(), tenantID, service.GuestCheckoutInput{
		PayerName:   "June Park",
		PayerEmail:  "grandma@example.com",
		StudentName: "Theo Park",
		Category:    "Band Fees",
		Amount:      25000,
		SuccessURL:  "https://lincoln-high.marchkeep.com/pay/success",
		CancelURL:   "https://lincoln-high.marchkeep.com/pay/cancel",
	})
	assert.NoError(t, err)
	assert.Equal(t, "cs_guest", out.SessionID)
}

func TestEnroll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	userID := uuid.New()
	studentID := uuid.New()
	categoryID := uuid.New()

	student := &model.Student{ID: studentID, TenantID: tenantID, Name: "Sarah Johnson", Source: model.SourceRoster}
	category := &model.PaymentCategory{ID: categoryID, TenantID: tenantID, Name: "Band Fees", FullAmount: 25000, Active: true}
	activeRel := &model.StudentParent{UserID: userID, StudentID: studentID, Status: model.LinkActive}

	t.Run("creates an active enrollment", func(t *testing.T) {
		studentRepo := mocks.NewMockStudentRepositoryIface(ctrl)
		relRepo := mocks.NewMockStudentParentRepositoryIface(ctrl)
		categoryRepo := mocks.NewMockPaymentCategoryRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		studentRepo.EXPECT().FindByID(gomock.Any(), tenantID, studentID).Return(student, nil)
		relRepo.EXPECT().FindActiveByStudent(gomock.Any(), studentID).Return(activeRel, nil)
		categoryRepo.EXPECT().FindByID(gomock.Any(), tenantID, categoryID).Return(category, nil)
		enrollmentRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *model.StudentPaymentEnrollment) error {
				assert.Equal(t, int64(25000), e.TotalOwed)
				assert.Equal(t, model.EnrollmentActive, e.Status)
				return nil
			})
		// Metadata write is best-effort; user without a customer is a no-op.
		userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&model.User{ID: userID}, nil)

		svc := service.NewPaymentService(categoryRepo, enrollmentRepo, relRepo, studentRepo, userRepo, nil, nil, nil, nil)

		enrollment, err := svc.Enroll(context.Background(), tenantID, userID, studentID, categoryID)
		assert.NoError(t, err)
		assert.Equal(t, model.EnrollmentActive, enrollment.Status)
	})

	t.Run("duplicate active enrollment is rejected", func(t *testing.T) {
		studentRepo := mocks.NewMockStudentRepositoryIface(ctrl)
		relRepo := mocks.NewMockStudentParentRepositoryIface(ctrl)
		categoryRepo := mocks.NewMockPaymentCategoryRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

		studentRepo.EXPECT().FindByID(gomock.Any(), tenantID, studentID).Return(student, nil)
		relRepo.EXPECT().FindActiveByStudent(gomock.Any(), studentID).Return(activeRel, nil)
		categoryRepo.EXPECT().FindByID(gomock.Any(), tenantID, categoryID).Return(category, nil)
		enrollmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrEnrollmentExists)
		enrollmentRepo.EXPECT().
			FindByStudentAndCategory(gomock.Any(), studentID, categoryID).
			Return(&model.StudentPaymentEnrollment{Status: model.EnrollmentActive}, nil)

		svc := service.NewPaymentService(categoryRepo, enrollmentRepo, relRepo, studentRepo, nil, nil, nil, nil, nil)

		_, err := svc.Enroll(context.Background(), tenantID, userID, studentID, categoryID)
		assert.ErrorIs(t, err, domain.ErrEnrollmentExists)
	})

	t.Run("cancelled enrollment is reactivated", func(t *testing.T) {
		studentRepo := mocks.NewMockStudentRepositoryIface(ctrl)
		relRepo := mocks.NewMockStudentParentRepositoryIface(ctrl)
		categoryRepo := mocks.NewMockPaymentCategoryRepositoryIface(ctrl)
		enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		cancelled := &model.StudentPaymentEnrollment{
			TenantID:   tenantID,
			StudentID:  studentID,
			CategoryID: categoryID,
			TotalOwed:  20000,
			AmountPaid: 5000,
			Status:     model.EnrollmentCancelled,
		}

		studentRepo.EXPECT().FindByID(gomock.Any(), tenantID, studentID).Return(student, nil)
		relRepo.EXPECT().FindActiveByStudent(gomock.Any(), studentID).Return(activeRel, nil)
		categoryRepo.EXPECT().FindByID(gomock.Any(), tenantID, categoryID).Return(category, nil)
		enrollmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrEnrollmentExists)
		enrollmentRepo.EXPECT().
			FindByStudentAndCategory(gomock.Any(), studentID, categoryID).
			Return(cancelled, nil)
		enrollmentRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *model.StudentPaymentEnrollment) error {
				assert.Equal(t, model.EnrollmentActive, e.Status)
				assert.Equal(t, int64(25000), e.TotalOwed, "owed resets to the current category amount")
				assert.Equal(t, int64(5000), e.AmountPaid, "prior payments survive reactivation")
				return nil
			})
		userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&model.User{ID: userID}, nil)

		svc := service.NewPaymentService(categoryRepo, enrollmentRepo, relRepo, studentRepo, userRepo, nil, nil, nil, nil)

		enrollment, err := svc.Enroll(context.Background(), tenantID, userID, studentID, categoryID)
		assert.NoError(t, err)
		assert.Equal(t, model.EnrollmentActive, enrollment.Status)
	})
}

func TestUnenrollKeepsRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	userID := uuid.New()
	studentID := uuid.New()
	categoryID := uuid.New()

	relRepo := mocks.NewMockStudentParentRepositoryIface(ctrl)
	enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)
	studentRepo := mocks.NewMockStudentRepositoryIface(ctrl)
	categoryRepo := mocks.NewMockPaymentCategoryRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)

	relRepo.EXPECT().
		FindActiveByStudent(gomock.Any(), studentID).
		Return(&model.StudentParent{UserID: userID, StudentID: studentID, Status: model.LinkActive}, nil)
	enrollmentRepo.EXPECT().
		FindByStudentAndCategory(gomock.Any(), studentID, categoryID).
		Return(&model.StudentPaymentEnrollment{TenantID: tenantID, StudentID: studentID, CategoryID: categoryID, AmountPaid: 5000, TotalOwed: 25000, Status: model.EnrollmentActive}, nil)
	enrollmentRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *model.StudentPaymentEnrollment) error {
			assert.Equal(t, model.EnrollmentCancelled, e.Status)
			assert.Equal(t, int64(5000), e.AmountPaid)
			return nil
		})
	studentRepo.EXPECT().FindByID(gomock.Any(), tenantID, studentID).Return(&model.Student{ID: studentID, Name: "Sarah Johnson"}, nil)
	categoryRepo.EXPECT().FindByID(gomock.Any(), tenantID, categoryID).Return(&model.PaymentCategory{ID: categoryID, Name: "Band Fees"}, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&model.User{ID: userID}, nil)

	svc := service.NewPaymentService(categoryRepo, enrollmentRepo, relRepo, studentRepo, userRepo, nil, nil, nil, nil)

	err := svc.Unenroll(context.Background(), tenantID, userID, studentID, categoryID)
	assert.NoError(t, err)
}

func TestUnenrollWrongTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	userID := uuid.New()
	studentID := uuid.New()
	categoryID := uuid.New()

	relRepo := mocks.NewMockStudentParentRepositoryIface(ctrl)
	enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)

	relRepo.EXPECT().
		FindActiveByStudent(gomock.Any(), studentID).
		Return(&model.StudentParent{UserID: userID, StudentID: studentID, Status: model.LinkActive}, nil)
	enrollmentRepo.EXPECT().
		FindByStudentAndCategory(gomock.Any(), studentID, categoryID).
		Return(&model.StudentPaymentEnrollment{TenantID: uuid.New()}, nil)

	svc := service.NewPaymentService(nil, enrollmentRepo, relRepo, nil, nil, nil, nil, nil, nil)

	err := svc.Unenroll(context.Background(), tenantID, userID, studentID, categoryID)
	assert.ErrorIs(t, err, domain.ErrWrongTenant)
}

func TestSnapshotFallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("cached snapshot served when sync yields nothing", func(t *testing.T) {
		syncer := mocks.NewMockSyncer(ctrl)
		cacheRepo := mocks.NewMockStripeCacheRepositoryIface(ctrl)

		syncer.EXPECT().SyncStripeDataToUser(gomock.Any(), userID).Return(nil, nil)
		cacheRepo.EXPECT().
			FindByUser(gomock.Any(), userID).
			Return(&model.StripeCache{
				UserID: userID,
				Data:   model.JSONB(`{"version":1,"customerId":"cus_123"}`),
			}, nil)

		svc := service.NewPaymentService(nil, nil, nil, nil, nil, cacheRepo, nil, syncer, nil)

		snapshot, err := svc.Snapshot(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, "cus_123", snapshot.CustomerID)
	})

	t.Run("no cache row yields an empty snapshot", func(t *testing.T) {
		syncer := mocks.NewMockSyncer(ctrl)
		cacheRepo := mocks.NewMockStripeCacheRepositoryIface(ctrl)

		syncer.EXPECT().SyncStripeDataToUser(gomock.Any(), userID).Return(nil, nil)
		cacheRepo.EXPECT().FindByUser(gomock.Any(), userID).Return(nil, domain.ErrNotFound)

		svc := service.NewPaymentService(nil, nil, nil, nil, nil, cacheRepo, nil, syncer, nil)

		snapshot, err := svc.Snapshot(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, billing.SnapshotVersion, snapshot.Version)
		assert.Empty(t, snapshot.Payments)
	})

	t.Run("fresh sync result wins", func(t *testing.T) {
		syncer := mocks.NewMockSyncer(ctrl)

		fresh := &billing.CustomerSnapshot{Version: billing.SnapshotVersion, CustomerID: "cus_fresh"}
		syncer.EXPECT().SyncStripeDataToUser(gomock.Any(), userID).Return(fresh, nil)

		svc := service.NewPaymentService(nil, nil, nil, nil, nil, nil, nil, syncer, nil)

		snapshot, err := svc.Snapshot(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, "cus_fresh", snapshot.CustomerID)
	})
}
