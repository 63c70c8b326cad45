// internal/service/tenant.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/model"
	"github.com/marchkeep/marchkeep/internal/repository"
	"github.com/marchkeep/marchkeep/internal/tenant"
)

// Mailer is the slice of the email service the domain services depend on.
// Sends are best-effort; a failed email never fails the operation it
// confirms.
type Mailer interface {
	SendSchoolWelcome(ctx context.Context, to, schoolName, onboardingURL string) error
	SendLinkDecision(ctx context.Context, to, studentName string, approved bool) error
	SendGuestReceipt(ctx context.Context, to, studentName, category string, amount int64) error
}

type TenantService struct {
	repo           repository.TenantRepositoryIface
	membershipRepo repository.MembershipRepositoryIface
	inviteRepo     repository.InviteCodeRepositoryIface
	resolver       *tenant.Resolver
	parser         *tenant.Parser
	mailer         Mailer
	logger         *slog.Logger
	validate       *validator.Validate
}

func NewTenantService(
	repo repository.TenantRepositoryIface,
	membershipRepo repository.MembershipRepositoryIface,
	inviteRepo repository.InviteCodeRepositoryIface,
	resolver *tenant.Resolver,
	parser *tenant.Parser,
	mailer Mailer,
	logger *slog.Logger,
) *TenantService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TenantService{
		repo:           repo,
		membershipRepo: membershipRepo,
		inviteRepo:     inviteRepo,
		resolver:       resolver,
		parser:         parser,
		mailer:         mailer,
		logger:         logger,
		validate:       validator.New(),
	}
}

// ValidateInviteCode checks that code exists, is unused and unexpired.
func (s *TenantService) ValidateInviteCode(ctx context.Context, code string) (*model.InviteCode, error) {
	invite, err := s.inviteRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if invite.Used {
		return nil, domain.ErrInviteCodeUsed
	}
	if invite.Expired(time.Now()) {
		return nil, domain.ErrInviteCodeExpired
	}
	return invite, nil
}

type CreateSchoolInput struct {
	InviteCode string `json:"invite_code" validate:"required"`
	Subdomain  string `json:"subdomain" validate:"required"`
	SchoolName string `json:"school_name" validate:"required"`
}

type CreateSchoolOutput struct {
	Tenant        *model.Tenant `json:"tenant"`
	OnboardingURL string        `json:"onboarding_url"`
}

// CreateSchool creates a pending tenant after invite-code validation. The
// new tenant is eagerly written into both cache tiers so a just-created slug
// resolves immediately instead of waiting out the negative-cache TTL.
func (s *TenantService) CreateSchool(ctx context.Context, actorID uuid.UUID, env tenant.Environment, input CreateSchoolInput) (*CreateSchoolOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	if err := tenant.ValidateSlug(input.Subdomain); err != nil {
		return nil, err
	}

	invite, err := s.ValidateInviteCode(ctx, input.InviteCode)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.SlugExists(ctx, input.Subdomain)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrSubdomainTaken
	}

	t := &model.Tenant{
		Slug:          input.Subdomain,
		Name:          input.SchoolName,
		Status:        model.TenantPending,
		DirectorEmail: invite.DirectorEmail,
		DirectorName:  invite.SchoolName,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	membership := &model.Membership{
		UserID:   actorID,
		TenantID: t.ID,
		Role:     model.RoleDirector,
	}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, err
	}

	now := time.Now()
	invite.Used = true
	invite.UsedAt = &now
	invite.TenantID = &t.ID
	if err := s.inviteRepo.Update(ctx, invite); err != nil {
		return nil, err
	}

	s.resolver.WriteThrough(ctx, t)

	onboardingURL := s.parser.TenantURL(env, t.Slug) + "/onboarding"
	if err := s.mailer.SendSchoolWelcome(ctx, invite.DirectorEmail, t.Name, onboardingURL); err != nil {
		s.logger.Warn("failed to send school welcome email",
			"tenant_id", t.ID.String(),
			"error", err,
		)
	}

	return &CreateSchoolOutput{Tenant: t, OnboardingURL: onboardingURL}, nil
}

// CheckSubdomain reports whether slug is valid and unclaimed.
func (s *TenantService) CheckSubdomain(ctx context.Context, slug string) (bool, error) {
	if err := tenant.ValidateSlug(slug); err != nil {
		return false, err
	}
	taken, err := s.repo.SlugExists(ctx, slug)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// Activate flips a pending tenant to active once payment onboarding
// completes, refreshing both cache tiers.
func (s *TenantService) Activate(ctx context.Context, tenantID uuid.UUID) (*model.Tenant, error) {
	t, err := s.repo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if t.Status == model.TenantActive {
		return t, nil
	}
	if t.Status != model.TenantPending {
		return nil, domain.ErrTenantNotActive
	}

	t.Status = model.TenantActive
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	s.resolver.WriteThrough(ctx, t)
	return t, nil
}

// Lookup resolves a slug through the cache tiers; nil means no such tenant.
func (s *TenantService) Lookup(ctx context.Context, slug string) (*tenant.Info, error) {
	return s.resolver.Resolve(ctx, slug)
}

// CreateInviteCode issues a fresh single-use code, used by the operator CLI.
func (s *TenantService) CreateInviteCode(ctx context.Context, code, schoolName, directorEmail string, ttl time.Duration) (*model.InviteCode, error) {
	if code == "" || schoolName == "" || directorEmail == "" {
		return nil, domain.ErrInvalidInput
	}
	invite := &model.InviteCode{
		Code:          code,
		SchoolName:    schoolName,
		DirectorEmail: directorEmail,
		ExpiresAt:     time.Now().Add(ttl),
	}
	if err := s.inviteRepo.Create(ctx, invite); err != nil {
		return nil, err
	}
	return invite, nil
}

// ListInviteCodes returns all issued codes, newest first.
func (s *TenantService) ListInviteCodes(ctx context.Context) ([]*model.InviteCode, error) {
	return s.inviteRepo.FindAll(ctx)
}
