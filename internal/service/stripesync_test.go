package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/mock/gomock"

	"github.com/marchkeep/marchkeep/internal/billing"
	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/mocks"
	"github.com/marchkeep/marchkeep/internal/model"
	"github.com/marchkeep/marchkeep/internal/service"
)

func TestSyncStripeDataToUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	studentID := uuid.New()
	user := &model.User{ID: userID, Email: "parent@example.com", StripeCustomerID: "cus_123"}

	enrollmentDoc, err := json.Marshal(map[string]billing.StudentEnrollment{
		studentID.String(): {
			StudentName: "Sarah Johnson",
			Categories: map[string]billing.CategoryEnrollment{
				billing.CategoryBandFees: {
					Enrolled:   true,
					TotalOwed:  25000,
					AmountPaid: 999999, // metadata lies; the sync must re-sum
				},
			},
		},
	})
	require.NoError(t, err)

	customer := &stripe.Customer{
		ID:       "cus_123",
		Metadata: map[string]string{billing.MetaEnrollments: string(enrollmentDoc)},
	}
	intents := []*stripe.PaymentIntent{
		{
			ID:     "pi_1",
			Amount: 5000,
			Status: stripe.PaymentIntentStatusSucceeded,
			Metadata: map[string]string{
				billing.MetaCategory:  billing.CategoryBandFees,
				billing.MetaStudentID: studentID.String(),
			},
		},
		{
			ID:     "pi_2",
			Amount: 10000,
			Status: stripe.PaymentIntentStatusSucceeded,
			Metadata: map[string]string{
				billing.MetaCategory:  billing.CategoryBandFees,
				billing.MetaStudentID: studentID.String(),
			},
		},
		{
			ID:     "pi_3",
			Amount: 3000,
			Status: stripe.PaymentIntentStatusSucceeded,
			Metadata: map[string]string{
				billing.MetaCategory:  billing.CategoryTrip,
				billing.MetaStudentID: studentID.String(),
			},
		},
		{
			ID:     "pi_4",
			Amount: 7000,
			Status: stripe.PaymentIntentStatusRequiresPaymentMethod,
			Metadata: map[string]string{
				billing.MetaCategory:  billing.CategoryBandFees,
				billing.MetaStudentID: studentID.String(),
			},
		},
	}

	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)
	cacheRepo := mocks.NewMockStripeCacheRepositoryIface(ctrl)
	billingAPI := mocks.NewMockAPI(ctrl)

	userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
	billingAPI.EXPECT().GetCustomer(gomock.Any(), "cus_123").Return(customer, nil)
	billingAPI.EXPECT().
		ListPaymentIntents(gomock.Any(), "cus_123", int64(billing.DefaultPageSize)).
		Return(intents, nil)
	billingAPI.EXPECT().
		ListCheckoutSessions(gomock.Any(), "cus_123", int64(billing.DefaultPageSize)).
		Return(nil, nil)

	enrollmentRow := &model.StudentPaymentEnrollment{
		StudentID:  studentID,
		TotalOwed:  25000,
		AmountPaid: 0,
		Status:     model.EnrollmentActive,
		Category:   model.PaymentCategory{Name: billing.CategoryBandFees},
	}
	enrollmentRepo.EXPECT().
		FindByStudent(gomock.Any(), studentID).
		Return([]*model.StudentPaymentEnrollment{enrollmentRow}, nil)
	enrollmentRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, row *model.StudentPaymentEnrollment) error {
			assert.Equal(t, int64(15000), row.AmountPaid, "only succeeded band_fees intents count")
			assert.Equal(t, int64(25000), row.TotalOwed)
			assert.Equal(t, model.EnrollmentActive, row.Status)
			return nil
		})

	cacheRepo.EXPECT().
		Upsert(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, data model.JSONB) error {
			var persisted billing.CustomerSnapshot
			assert.NoError(t, json.Unmarshal(data, &persisted))
			assert.Equal(t, "cus_123", persisted.CustomerID)
			assert.Len(t, persisted.Payments, 4)
			return nil
		})

	svc := service.NewSyncService(userRepo, enrollmentRepo, nil, cacheRepo, billingAPI, nil)

	snapshot, err := svc.SyncStripeDataToUser(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	assert.Equal(t, billing.SnapshotVersion, snapshot.Version)
	assert.Equal(t, int64(15000), snapshot.Totals.BandFeesPaid, "failed intents excluded from totals")
	assert.Equal(t, int64(3000), snapshot.Totals.TripPaid)

	entry := snapshot.Enrollments[studentID.String()]
	assert.Equal(t, int64(15000), entry.Categories[billing.CategoryBandFees].AmountPaid,
		"metadata amountPaid replaced with the re-summed ledger figure")
}

func TestSyncSessionMetadataWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	studentID := uuid.New()
	user := &model.User{ID: userID, StripeCustomerID: "cus_456"}

	intents := []*stripe.PaymentIntent{
		{
			ID:       "pi_meta",
			Amount:   5000,
			Status:   stripe.PaymentIntentStatusSucceeded,
			Metadata: map[string]string{billing.MetaCategory: billing.CategoryDonation},
		},
	}
	sessions := []*stripe.CheckoutSession{
		{
			ID:            "cs_meta",
			PaymentIntent: &stripe.PaymentIntent{ID: "pi_meta"},
			Metadata: map[string]string{
				billing.MetaCategory:  billing.CategoryBandFees,
				billing.MetaStudentID: studentID.String(),
			},
		},
	}

	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	cacheRepo := mocks.NewMockStripeCacheRepositoryIface(ctrl)
	billingAPI := mocks.NewMockAPI(ctrl)

	userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
	billingAPI.EXPECT().GetCustomer(gomock.Any(), "cus_456").Return(&stripe.Customer{ID: "cus_456"}, nil)
	billingAPI.EXPECT().ListPaymentIntents(gomock.Any(), "cus_456", gomock.Any()).Return(intents, nil)
	billingAPI.EXPECT().ListCheckoutSessions(gomock.Any(), "cus_456", gomock.Any()).Return(sessions, nil)
	cacheRepo.EXPECT().Upsert(gomock.Any(), userID, gomock.Any()).Return(nil)

	svc := service.NewSyncService(userRepo, mocks.NewMockEnrollmentRepositoryIface(ctrl), nil, cacheRepo, billingAPI, nil)

	snapshot, err := svc.SyncStripeDataToUser(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	assert.Equal(t, billing.CategoryBandFees, snapshot.Payments[0].Category)
	assert.Equal(t, studentID.String(), snapshot.Payments[0].StudentID)
	assert.Equal(t, int64(5000), snapshot.Totals.BandFeesPaid)
	assert.Zero(t, snapshot.Totals.DonationsPaid)
}

func TestSyncSkipsUsersWithoutCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&model.User{ID: userID}, nil)

	svc := service.NewSyncService(userRepo, nil, nil, nil, nil, nil)

	snapshot, err := svc.SyncStripeDataToUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestSyncMissingUserIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(nil, domain.ErrUserNotFound)

	svc := service.NewSyncService(userRepo, nil, nil, nil, nil, nil)

	snapshot, err := svc.SyncStripeDataToUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestSyncUserLoadFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(nil, fmt.Errorf("pq: connection reset"))

	svc := service.NewSyncService(userRepo, nil, nil, nil, nil, nil)

	snapshot, err := svc.SyncStripeDataToUser(context.Background(), userID)
	assert.NoError(t, err, "database failures never surface on the request path")
	assert.Nil(t, snapshot)
}

func TestSyncFetchFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &model.User{ID: userID, StripeCustomerID: "cus_err"}

	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	billingAPI := mocks.NewMockAPI(ctrl)

	userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
	billingAPI.EXPECT().GetCustomer(gomock.Any(), "cus_err").Return(nil, fmt.Errorf("stripe: rate limited"))
	billingAPI.EXPECT().ListPaymentIntents(gomock.Any(), "cus_err", gomock.Any()).Return(nil, nil).AnyTimes()
	billingAPI.EXPECT().ListCheckoutSessions(gomock.Any(), "cus_err", gomock.Any()).Return(nil, nil).AnyTimes()

	svc := service.NewSyncService(userRepo, nil, nil, nil, billingAPI, nil)

	snapshot, err := svc.SyncStripeDataToUser(context.Background(), userID)
	assert.NoError(t, err, "provider failures never surface on the request path")
	assert.Nil(t, snapshot)
}

func TestSyncIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &model.User{ID: userID, StripeCustomerID: "cus_same"}
	intents := []*stripe.PaymentIntent{
		{ID: "pi_x", Amount: 2500, Status: stripe.PaymentIntentStatusSucceeded,
			Metadata: map[string]string{billing.MetaCategory: billing.CategoryEquipment}},
	}

	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	cacheRepo := mocks.NewMockStripeCacheRepositoryIface(ctrl)
	billingAPI := mocks.NewMockAPI(ctrl)

	userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil).Times(2)
	billingAPI.EXPECT().GetCustomer(gomock.Any(), "cus_same").Return(&stripe.Customer{ID: "cus_same"}, nil).Times(2)
	billingAPI.EXPECT().ListPaymentIntents(gomock.Any(), "cus_same", gomock.Any()).Return(intents, nil).Times(2)
	billingAPI.EXPECT().ListCheckoutSessions(gomock.Any(), "cus_same", gomock.Any()).Return(nil, nil).Times(2)
	cacheRepo.EXPECT().Upsert(gomock.Any(), userID, gomock.Any()).Return(nil).Times(2)

	svc := service.NewSyncService(userRepo, mocks.NewMockEnrollmentRepositoryIface(ctrl), nil, cacheRepo, billingAPI, nil)

	first, err := svc.SyncStripeDataToUser(context.Background(), userID)
	require.NoError(t, err)
	second, err := svc.SyncStripeDataToUser(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, first.Totals, second.Totals, "re-running the sync does not double-count")
	assert.Equal(t, int64(2500), second.Totals.EquipmentPaid)
}
