// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/marchkeep/marchkeep/internal/auth"
	"github.com/marchkeep/marchkeep/internal/config"
	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/model"
	"github.com/marchkeep/marchkeep/internal/repository"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	membershipRepo repository.MembershipRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	config         *config.Config
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	membershipRepo repository.MembershipRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	config *config.Config,
) *UserService {
	return &UserService{
		repo:           repo,
		membershipRepo: membershipRepo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		config:         config,
		validate:       validator.New(),
	}
}

type SignupInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" validate:"required,min=8"`
}

type SignupOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Signup handles the complete user registration process. Signing up with the
// email of an existing ghost profile claims that profile instead of failing,
// so guest payers keep their payment history when they create an account.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	if !passwordStrongEnough(input.Password) {
		return nil, domain.ErrInvalidInput
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	var user *model.User
	switch {
	case existing != nil && existing.IsGhost:
		existing.FirstName = input.FirstName
		existing.LastName = input.LastName
		existing.PasswordHash = hash
		existing.IsGhost = false
		existing.Status = model.StatusActive
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		user = existing

	case existing != nil:
		return nil, domain.ErrEmailAlreadyExists

	default:
		user = &model.User{
			Email:        input.Email,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			PasswordHash: hash,
			Status:       model.StatusActive,
		}
		if err := s.repo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &SignupOutput{User: user, Token: token}, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// Ghost profiles have no password material until claimed via signup.
	if user.IsGhost || user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Memberships returns all tenant memberships for a user, tenant preloaded.
func (s *UserService) Memberships(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error) {
	return s.membershipRepo.FindByUser(ctx, userID)
}

// RequireRole checks the user's membership in the tenant against the allowed
// roles. PLATFORM_ADMIN always passes.
func (s *UserService) RequireRole(ctx context.Context, userID, tenantID uuid.UUID, roles ...model.Role) (*model.Membership, error) {
	m, err := s.membershipRepo.FindByUserAndTenant(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, domain.ErrMembershipNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	if m.Role == model.RolePlatformAdmin {
		return m, nil
	}
	for _, role := range roles {
		if m.Role == role {
			return m, nil
		}
	}
	return nil, domain.ErrForbidden
}

func passwordStrongEnough(password string) bool {
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
