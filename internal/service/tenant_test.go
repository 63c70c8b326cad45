package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marchkeep/marchkeep/internal/cache"
	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/mocks"
	"github.com/marchkeep/marchkeep/internal/model"
	"github.com/marchkeep/marchkeep/internal/service"
	"github.com/marchkeep/marchkeep/internal/tenant"
)

func newTenantService(
	repo *mocks.MockTenantRepositoryIface,
	membershipRepo *mocks.MockMembershipRepositoryIface,
	inviteRepo *mocks.MockInviteCodeRepositoryIface,
	mailer *mocks.MockMailer,
) (*service.TenantService, *tenant.Resolver) {
	parser := tenant.NewParser("marchkeep.com", "staging.marchkeep.dev", "http://localhost:8080")
	resolver := tenant.NewResolver(cache.NewInMemoryCache(time.Minute, time.Minute), nil, repo, nil)
	return service.NewTenantService(repo, membershipRepo, inviteRepo, resolver, parser, mailer, nil), resolver
}

func freshInvite(code string) *model.InviteCode {
	return &model.InviteCode{
		ID:            uuid.New(),
		Code:          code,
		SchoolName:    "Lincoln High School",
		DirectorEmail: "director@lincoln.edu",
		ExpiresAt:     time.Now().Add(24 * time.Hour),
	}
}

func TestValidateInviteCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	repo := mocks.NewMockTenantRepositoryIface(ctrl)
	membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
	inviteRepo := mocks.NewMockInviteCodeRepositoryIface(ctrl)
	svc, _ := newTenantService(repo, membershipRepo, inviteRepo, mocks.NewMockMailer(ctrl))

	t.Run("valid code passes", func(t *testing.T) {
		inviteRepo.EXPECT().FindByCode(ctx, "BAND-2026-AB12").Return(freshInvite("BAND-2026-AB12"), nil)

		invite, err := svc.ValidateInviteCode(ctx, "BAND-2026-AB12")
		require.NoError(t, err)
		assert.Equal(t, "Lincoln High School", invite.SchoolName)
	})

	t.Run("used code is rejected", func(t *testing.T) {
		used := freshInvite("BAND-2026-USED")
		used.Used = true
		inviteRepo.EXPECT().FindByCode(ctx, "BAND-2026-USED").Return(used, nil)

		_, err := svc.ValidateInviteCode(ctx, "BAND-2026-USED")
		assert.ErrorIs(t, err, domain.ErrInviteCodeUsed)
	})

	t.Run("expired code is rejected", func(t *testing.T) {
		expired := freshInvite("BAND-2025-OLD1")
		expired.ExpiresAt = time.Now().Add(-time.Hour)
		inviteRepo.EXPECT().FindByCode(ctx, "BAND-2025-OLD1").Return(expired, nil)

		_, err := svc.ValidateInviteCode(ctx, "BAND-2025-OLD1")
		assert.ErrorIs(t, err, domain.ErrInviteCodeExpired)
	})

	t.Run("unknown code propagates", func(t *testing.T) {
		inviteRepo.EXPECT().FindByCode(ctx, "NOPE").Return(nil, domain.ErrInviteCodeNotFound)

		_, err := svc.ValidateInviteCode(ctx, "NOPE")
		assert.ErrorIs(t, err, domain.ErrInviteCodeNotFound)
	})
}

func TestCreateSchool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()
	actorID := uuid.New()

	input := service.CreateSchoolInput{
		InviteCode: "BAND-2026-AB12",
		Subdomain:  "lincoln-high",
		SchoolName: "Lincoln High School",
	}

	t.Run("creates a pending tenant and primes the cache", func(t *testing.T) {
		repo := mocks.NewMockTenantRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		inviteRepo := mocks.NewMockInviteCodeRepositoryIface(ctrl)
		mailer := mocks.NewMockMailer(ctrl)
		svc, _ := newTenantService(repo, membershipRepo, inviteRepo, mailer)

		tenantID := uuid.New()
		inviteRepo.EXPECT().FindByCode(ctx, input.InviteCode).Return(freshInvite(input.InviteCode), nil)
		repo.EXPECT().SlugExists(ctx, "lincoln-high").Return(false, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, row *model.Tenant) error {
			assert.Equal(t, model.TenantPending, row.Status)
			assert.Equal(t, "director@lincoln.edu", row.DirectorEmail)
			row.ID = tenantID
			return nil
		})
		membershipRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *model.Membership) error {
			assert.Equal(t, actorID, m.UserID)
			assert.Equal(t, tenantID, m.TenantID)
			assert.Equal(t, model.RoleDirector, m.Role)
			return nil
		})
		inviteRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, inv *model.InviteCode) error {
			assert.True(t, inv.Used)
			require.NotNil(t, inv.UsedAt)
			require.NotNil(t, inv.TenantID)
			assert.Equal(t, tenantID, *inv.TenantID)
			return nil
		})
		mailer.EXPECT().
			SendSchoolWelcome(ctx, "director@lincoln.edu", "Lincoln High School", "https://lincoln-high.marchkeep.com/onboarding").
			Return(nil)

		out, err := svc.CreateSchool(ctx, actorID, tenant.EnvProduction, input)
		require.NoError(t, err)
		assert.Equal(t, tenantID, out.Tenant.ID)
		assert.Equal(t, "https://lincoln-high.marchkeep.com/onboarding", out.OnboardingURL)

		// The write-through means the fresh slug resolves with no repo call.
		info, err := svc.Lookup(ctx, "lincoln-high")
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, model.TenantPending, info.Status)
	})

	t.Run("used invite code blocks creation", func(t *testing.T) {
		repo := mocks.NewMockTenantRepositoryIface(ctrl)
		inviteRepo := mocks.NewMockInviteCodeRepositoryIface(ctrl)
		svc, _ := newTenantService(repo, mocks.NewMockMembershipRepositoryIface(ctrl), inviteRepo, mocks.NewMockMailer(ctrl))

		used := freshInvite(input.InviteCode)
		used.Used = true
		inviteRepo.EXPECT().FindByCode(ctx, input.InviteCode).Return(used, nil)

		_, err := svc.CreateSchool(ctx, actorID, tenant.EnvProduction, input)
		assert.ErrorIs(t, err, domain.ErrInviteCodeUsed)
	})

	t.Run("taken subdomain is rejected", func(t *testing.T) {
		repo := mocks.NewMockTenantRepositoryIface(ctrl)
		inviteRepo := mocks.NewMockInviteCodeRepositoryIface(ctrl)
		svc, _ := newTenantService(repo, mocks.NewMockMembershipRepositoryIface(ctrl), inviteRepo, mocks.NewMockMailer(ctrl))

		inviteRepo.EXPECT().FindByCode(ctx, input.InviteCode).Return(freshInvite(input.InviteCode), nil)
		repo.EXPECT().SlugExists(ctx, "lincoln-high").Return(true, nil)

		_, err := svc.CreateSchool(ctx, actorID, tenant.EnvProduction, input)
		assert.ErrorIs(t, err, domain.ErrSubdomainTaken)
	})

	t.Run("reserved subdomain is rejected before the invite lookup", func(t *testing.T) {
		svc, _ := newTenantService(
			mocks.NewMockTenantRepositoryIface(ctrl),
			mocks.NewMockMembershipRepositoryIface(ctrl),
			mocks.NewMockInviteCodeRepositoryIface(ctrl),
			mocks.NewMockMailer(ctrl),
		)

		bad := input
		bad.Subdomain = "admin"
		_, err := svc.CreateSchool(ctx, actorID, tenant.EnvProduction, bad)
		assert.ErrorIs(t, err, domain.ErrSubdomainReserved)
	})

	t.Run("malformed subdomain is rejected", func(t *testing.T) {
		svc, _ := newTenantService(
			mocks.NewMockTenantRepositoryIface(ctrl),
			mocks.NewMockMembershipRepositoryIface(ctrl),
			mocks.NewMockInviteCodeRepositoryIface(ctrl),
			mocks.NewMockMailer(ctrl),
		)

		bad := input
		bad.Subdomain = "Lincoln High"
		_, err := svc.CreateSchool(ctx, actorID, tenant.EnvProduction, bad)
		assert.ErrorIs(t, err, domain.ErrInvalidSubdomain)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		svc, _ := newTenantService(
			mocks.NewMockTenantRepositoryIface(ctrl),
			mocks.NewMockMembershipRepositoryIface(ctrl),
			mocks.NewMockInviteCodeRepositoryIface(ctrl),
			mocks.NewMockMailer(ctrl),
		)

		_, err := svc.CreateSchool(ctx, actorID, tenant.EnvProduction, service.CreateSchoolInput{Subdomain: "lincoln-high"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("welcome email failure does not fail creation", func(t *testing.T) {
		repo := mocks.NewMockTenantRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		inviteRepo := mocks.NewMockInviteCodeRepositoryIface(ctrl)
		mailer := mocks.NewMockMailer(ctrl)
		svc, _ := newTenantService(repo, membershipRepo, inviteRepo, mailer)

		inviteRepo.EXPECT().FindByCode(ctx, input.InviteCode).Return(freshInvite(input.InviteCode), nil)
		repo.EXPECT().SlugExists(ctx, "lincoln-high").Return(false, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		membershipRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		inviteRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		mailer.EXPECT().SendSchoolWelcome(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

		_, err := svc.CreateSchool(ctx, actorID, tenant.EnvProduction, input)
		assert.NoError(t, err)
	})
}

func TestCheckSubdomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	repo := mocks.NewMockTenantRepositoryIface(ctrl)
	svc, _ := newTenantService(repo, mocks.NewMockMembershipRepositoryIface(ctrl), mocks.NewMockInviteCodeRepositoryIface(ctrl), mocks.NewMockMailer(ctrl))

	repo.EXPECT().SlugExists(ctx, "open-slug").Return(false, nil)
	available, err := svc.CheckSubdomain(ctx, "open-slug")
	require.NoError(t, err)
	assert.True(t, available)

	repo.EXPECT().SlugExists(ctx, "taken-slug").Return(true, nil)
	available, err = svc.CheckSubdomain(ctx, "taken-slug")
	require.NoError(t, err)
	assert.False(t, available)

	_, err = svc.CheckSubdomain(ctx, "www")
	assert.ErrorIs(t, err, domain.ErrSubdomainReserved)
}

func TestActivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	t.Run("pending tenant goes active and the cache refreshes", func(t *testing.T) {
		repo := mocks.NewMockTenantRepositoryIface(ctrl)
		svc, resolver := newTenantService(repo, mocks.NewMockMembershipRepositoryIface(ctrl), mocks.NewMockInviteCodeRepositoryIface(ctrl), mocks.NewMockMailer(ctrl))

		row := &model.Tenant{ID: uuid.New(), Slug: "lincoln-high", Status: model.TenantPending}
		repo.EXPECT().FindByID(ctx, row.ID).Return(row, nil)
		repo.EXPECT().Update(ctx, row).Return(nil)

		got, err := svc.Activate(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, model.TenantActive, got.Status)

		info, err := resolver.Resolve(ctx, "lincoln-high")
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, model.TenantActive, info.Status)
	})

	t.Run("already active is a no-op", func(t *testing.T) {
		repo := mocks.NewMockTenantRepositoryIface(ctrl)
		svc, _ := newTenantService(repo, mocks.NewMockMembershipRepositoryIface(ctrl), mocks.NewMockInviteCodeRepositoryIface(ctrl), mocks.NewMockMailer(ctrl))

		row := &model.Tenant{ID: uuid.New(), Slug: "lincoln-high", Status: model.TenantActive}
		repo.EXPECT().FindByID(ctx, row.ID).Return(row, nil)

		got, err := svc.Activate(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, model.TenantActive, got.Status)
	})

	t.Run("inactive tenant cannot activate", func(t *testing.T) {
		repo := mocks.NewMockTenantRepositoryIface(ctrl)
		svc, _ := newTenantService(repo, mocks.NewMockMembershipRepositoryIface(ctrl), mocks.NewMockInviteCodeRepositoryIface(ctrl), mocks.NewMockMailer(ctrl))

		row := &model.Tenant{ID: uuid.New(), Slug: "old-school", Status: model.TenantInactive}
		repo.EXPECT().FindByID(ctx, row.ID).Return(row, nil)

		_, err := svc.Activate(ctx, row.ID)
		assert.ErrorIs(t, err, domain.ErrTenantNotActive)
	})
}

func TestCreateInviteCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	inviteRepo := mocks.NewMockInviteCodeRepositoryIface(ctrl)
	svc, _ := newTenantService(mocks.NewMockTenantRepositoryIface(ctrl), mocks.NewMockMembershipRepositoryIface(ctrl), inviteRepo, mocks.NewMockMailer(ctrl))

	t.Run("issues a code with the requested lifetime", func(t *testing.T) {
		inviteRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		invite, err := svc.CreateInviteCode(ctx, "BAND-2026-XY99", "Roosevelt Middle", "director@roosevelt.edu", 72*time.Hour)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(72*time.Hour), invite.ExpiresAt, time.Minute)
	})

	t.Run("blank fields are rejected", func(t *testing.T) {
		_, err := svc.CreateInviteCode(ctx, "", "Roosevelt Middle", "director@roosevelt.edu", time.Hour)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
