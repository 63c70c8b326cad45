package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/marchkeep/marchkeep/internal/audit"
	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/mocks"
	"github.com/marchkeep/marchkeep/internal/model"
	"github.com/marchkeep/marchkeep/internal/service"
)

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		candidate string
		want      float64
	}{
		{"exact match", "Sarah Johnson", "Sarah Johnson", 1.0},
		{"case and whitespace insensitive", "  sarah   JOHNSON ", "Sarah Johnson", 1.0},
		{"one of two words matches", "Sarah Jonson", "Emily Jonson", 0.5},
		{"substring token counts", "Sara Johnson", "Sarah Johnson", 1.0},
		{"no overlap", "Sarah Johnson", "Miguel Reyes", 0.0},
		{"empty input", "", "Sarah Johnson", 0.0},
		{"empty candidate", "Sarah Johnson", "", 0.0},
		{"order independent", "Johnson Sarah", "Sarah Johnson", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, service.FuzzyMatch(tt.input, tt.candidate), 0.001)
		})
	}
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, service.MatchConfident, service.Confidence(1.0))
	assert.Equal(t, service.MatchConfident, service.Confidence(0.8))
	assert.Equal(t, service.MatchPossible, service.Confidence(0.79))
	assert.Equal(t, service.MatchPossible, service.Confidence(0.5))
	assert.Equal(t, service.MatchNone, service.Confidence(0.49))
	assert.Equal(t, service.MatchNone, service.Confidence(0.0))
}

func TestRankMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	roster := []*model.Student{
		{ID: uuid.New(), TenantID: tenantID, Name: "Miguel Reyes", Source: model.SourceRoster},
		{ID: uuid.New(), TenantID: tenantID, Name: "Sarah Johnson", Source: model.SourceRoster},
		{ID: uuid.New(), TenantID: tenantID, Name: "Sarah Jenkins", Source: model.SourceRoster},
	}

	studentRepo := mocks.NewMockStudentRepositoryIface(ctrl)
	studentRepo.EXPECT().
		FindRoster(gomock.Any(), tenantID).
		Return(roster, nil)

	svc := service.NewGuestMatchService(nil, studentRepo, nil, nil, nil, nil, nil, nil, nil, nil)

	candidates, err := svc.RankMatches(context.Background(), tenantID, "Sarah Johnson", 2)
	assert.NoError(t, err)
	assert.Len(t, candidates, 2)
	assert.Equal(t, "Sarah Johnson", candidates[0].Student.Name)
	assert.Equal(t, service.MatchConfident, candidates[0].Confidence)
	assert.Equal(t, "Sarah Jenkins", candidates[1].Student.Name)
	assert.Equal(t, service.MatchPossible, candidates[1].Confidence)
}

func TestBestMatchEmptyRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()

	studentRepo := mocks.NewMockStudentRepositoryIface(ctrl)
	studentRepo.EXPECT().
		FindRoster(gomock.Any(), tenantID).
		Return(nil, nil)

	svc := service.NewGuestMatchService(nil, studentRepo, nil, nil, nil, nil, nil, nil, nil, nil)

	candidate, err := svc.BestMatch(context.Background(), tenantID, "Sarah Johnson")
	assert.NoError(t, err)
	assert.Nil(t, candidate)
}

func TestResolveGuestPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	actorID := uuid.New()
	guestPaymentID := uuid.New()
	studentID := uuid.New()
	categoryID := uuid.New()

	gp := &model.GuestPayment{
		ID:                    guestPaymentID,
		TenantID:              tenantID,
		StripePaymentIntentID: "pi_guest_123",
		PayerName:             "Dana Whitfield",
		PayerEmail:            "dana@example.com",
		StudentName:           "Casey Whitfield",
		Category:              "Band Fees",
		Amount:                5000,
		Status:                "succeeded",
	}
	student := &model.Student{
		ID:       studentID,
		TenantID: tenantID,
		Name:     "Casey Whitfield",
		Source:   model.SourceRoster,
	}
	category := &model.PaymentCategory{
		ID:         categoryID,
		TenantID:   tenantID,
		Name:       "Band Fees",
		FullAmount: 25000,
		Active:     true,
	}

	guestRepo := mocks.NewMockGuestPaymentRepositoryIface(ctrl)
	studentRepo := mocks.NewMockStudentRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	relRepo := mocks.NewMockStudentParentRepositoryIface(ctrl)
	categoryRepo := mocks.NewMockPaymentCategoryRepositoryIface(ctrl)
	enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)
	paymentRepo := mocks.NewMockPaymentRepositoryIface(ctrl)
	auditLogger := mocks.NewMockLogger(ctrl)
	mailer := mocks.NewMockMailer(ctrl)

	guestRepo.EXPECT().
		FindByID(gomock.Any(), tenantID, guestPaymentID).
		Return(gp, nil)
	studentRepo.EXPECT().
		FindByID(gomock.Any(), tenantID, studentID).
		Return(student, nil)

	// Payer has no account, so a ghost profile is created. The repo layer
	// wraps its sentinels, and resolution must still recognize them.
	userRepo.EXPECT().
		FindByEmail(gomock.Any(), "dana@example.com").
		Return(nil, fmt.Errorf("finding user by email: %w", domain.ErrUserNotFound))
	userRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *model.User) error {
			assert.True(t, u.IsGhost)
			assert.Equal(t, "Dana", u.FirstName)
			assert.Equal(t, "Whitfield", u.LastName)
			u.ID = uuid.New()
			return nil
		})

	relRepo.EXPECT().
		FindByUser(gomock.Any(), tenantID, gomock.Any()).
		Return(nil, nil)
	relRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rel *model.StudentParent) error {
			assert.Equal(t, model.LinkActive, rel.Status)
			assert.Equal(t, studentID, rel.StudentID)
			return nil
		})
	auditLogger.EXPECT().
		LogLinkTransition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry audit.LinkTransition) error {
			assert.Equal(t, model.LinkActionApprove, entry.Action)
			return nil
		})

	categoryRepo.EXPECT().
		FindByName(gomock.Any(), tenantID, "Band Fees").
		Return(category, nil)
	enrollmentRepo.EXPECT().
		FindByStudentAndCategory(gomock.Any(), studentID, categoryID).
		Return(nil, fmt.Errorf("finding enrollment: %w", domain.ErrEnrollmentNotFound))
	enrollmentRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *model.StudentPaymentEnrollment) error {
			assert.Equal(t, int64(25000), e.TotalOwed)
			assert.Equal(t, model.EnrollmentActive, e.Status)
			return nil
		})
	enrollmentRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *model.StudentPaymentEnrollment) error {
			assert.Equal(t, int64(5000), e.AmountPaid)
			assert.Equal(t, model.EnrollmentActive, e.Status, "partial payment stays active")
			return nil
		})

	paymentRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *model.Payment) error {
			assert.Equal(t, "pi_guest_123", p.StripePaymentIntentID)
			assert.Equal(t, int64(5000), p.Amount)
			assert.Equal(t, &studentID, p.StudentID)
			return nil
		})
	guestRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *model.GuestPayment) error {
			assert.Equal(t, &studentID, updated.MatchedStudentID)
			assert.NotNil(t, updated.ResolvedAt)
			assert.Equal(t, "parent confirmed by phone", *updated.ResolutionNotes)
			return nil
		})
	mailer.EXPECT().
		SendGuestReceipt(gomock.Any(), "dana@example.com", "Casey Whitfield", "Band Fees", int64(5000)).
		Return(nil)

	svc := service.NewGuestMatchService(
		guestRepo, studentRepo, userRepo, relRepo,
		categoryRepo, enrollmentRepo, paymentRepo,
		auditLogger, mailer, nil,
	)

	resolved, err := svc.Resolve(context.Background(), actorID, tenantID, guestPaymentID, service.ResolveGuestPaymentInput{
		StudentID: studentID,
		Notes:     "parent confirmed by phone",
	})
	assert.NoError(t, err)
	assert.NotNil(t, resolved.ResolvedAt)
}

func TestResolveGuestPaymentExistingParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	actorID := uuid.New()
	guestPaymentID := uuid.New()
	studentID := uuid.New()
	payerID := uuid.New()
	categoryID := uuid.New()

	gp := &model.GuestPayment{
		ID:                    guestPaymentID,
		TenantID:              tenantID,
		StripePaymentIntentID: "pi_guest_456",
		PayerEmail:            "grandma@example.com",
		PayerName:             "June Park",
		StudentName:           "Theo Park",
		Category:              "Uniform",
		Amount:                12000,
		Status:                "succeeded",
	}
	student := &model.Student{ID: studentID, TenantID: tenantID, Name: "Theo Park", Source: model.SourceRoster}
	payer := &model.User{ID: payerID, Email: "grandma@example.com"}
	existingRel := &model.StudentParent{
		ID:        uuid.New(),
		TenantID:  tenantID,
		UserID:    payerID,
		StudentID: studentID,
		Status:    model.LinkActive,
	}
	category := &model.PaymentCategory{ID: categoryID, TenantID: tenantID, Name: "Uniform", FullAmount: 12000}
	enrollment := &model.StudentPaymentEnrollment{
		ID:         uuid.New(),
		TenantID:   tenantID,
		StudentID:  studentID,
		CategoryID: categoryID,
		TotalOwed:  12000,
		Status:     model.EnrollmentActive,
	}

	guestRepo := mocks.NewMockGuestPaymentRepositoryIface(ctrl)
	studentRepo := mocks.NewMockStudentRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	relRepo := mocks.NewMockStudentParentRepositoryIface(ctrl)
	categoryRepo := mocks.NewMockPaymentCategoryRepositoryIface(ctrl)
	enrollmentRepo := mocks.NewMockEnrollmentRepositoryIface(ctrl)
	paymentRepo := mocks.NewMockPaymentRepositoryIface(ctrl)
	auditLogger := mocks.NewMockLogger(ctrl)
	mailer := mocks.NewMockMailer(ctrl)

	guestRepo.EXPECT().FindByID(gomock.Any(), tenantID, guestPaymentID).Return(gp, nil)
	studentRepo.EXPECT().FindByID(gomock.Any(), tenantID, studentID).Return(student, nil)
	userRepo.EXPECT().FindByEmail(gomock.Any(), "grandma@example.com").Return(payer, nil)
	relRepo.EXPECT().FindByUser(gomock.Any(), tenantID, payerID).Return([]*model.StudentParent{existingRel}, nil)
	categoryRepo.EXPECT().FindByName(gomock.Any(), tenantID, "Uniform").Return(category, nil)
	enrollmentRepo.EXPECT().FindByStudentAndCategory(gomock.Any(), studentID, categoryID).Return(enrollment, nil)
	enrollmentRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *model.StudentPaymentEnrollment) error {
			assert.Equal(t, int64(12000), e.AmountPaid)
			assert.Equal(t, model.EnrollmentPaid, e.Status, "full payment marks enrollment paid")
			return nil
		})
	paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	guestRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	mailer.EXPECT().SendGuestReceipt(gomock.Any(), "grandma@example.com", "Theo Park", "Uniform", int64(12000)).Return(nil)

	svc := service.NewGuestMatchService(
		guestRepo, studentRepo, userRepo, relRepo,
		categoryRepo, enrollmentRepo, paymentRepo,
		auditLogger, mailer, nil,
	)

	_, err := svc.Resolve(context.Background(), actorID, tenantID, guestPaymentID, service.ResolveGuestPaymentInput{StudentID: studentID})
	assert.NoError(t, err)
}
