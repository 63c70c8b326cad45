// internal/service/guestmatch.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marchkeep/marchkeep/internal/audit"
	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/model"
	"github.com/marchkeep/marchkeep/internal/repository"
)

// Match confidence thresholds.
const (
	ConfidentThreshold = 0.8
	PossibleThreshold  = 0.5
)

type MatchConfidence string

const (
	MatchConfident MatchConfidence = "confident"
	MatchPossible  MatchConfidence = "possible"
	MatchNone      MatchConfidence = "none"
)

// FuzzyMatch scores how well inputName matches candidateName on [0,1].
// Exact match after case/whitespace normalization scores 1.0; otherwise the
// score is matchingWords/inputWordCount, where a word matches when either
// token is a substring of the other. Order-independent partial credit keeps
// a single misspelled token from zeroing out an otherwise strong match.
func FuzzyMatch(inputName, candidateName string) float64 {
	input := normalizeName(inputName)
	candidate := normalizeName(candidateName)
	if input == "" || candidate == "" {
		return 0
	}
	if input == candidate {
		return 1.0
	}

	inputWords := strings.Fields(input)
	candidateWords := strings.Fields(candidate)

	matching := 0
	for _, iw := range inputWords {
		for _, cw := range candidateWords {
			if strings.Contains(iw, cw) || strings.Contains(cw, iw) {
				matching++
				break
			}
		}
	}
	return float64(matching) / float64(len(inputWords))
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Confidence buckets a score against the resolution thresholds.
func Confidence(score float64) MatchConfidence {
	switch {
	case score >= ConfidentThreshold:
		return MatchConfident
	case score >= PossibleThreshold:
		return MatchPossible
	default:
		return MatchNone
	}
}

type MatchCandidate struct {
	Student    *model.Student  `json:"student"`
	Score      float64         `json:"score"`
	Confidence MatchConfidence `json:"confidence"`
}

type GuestMatchService struct {
	guestRepo      repository.GuestPaymentRepositoryIface
	studentRepo    repository.StudentRepositoryIface
	userRepo       repository.UserRepositoryIface
	relRepo        repository.StudentParentRepositoryIface
	categoryRepo   repository.PaymentCategoryRepositoryIface
	enrollmentRepo repository.EnrollmentRepositoryIface
	paymentRepo    repository.PaymentRepositoryIface
	auditLogger    audit.Logger
	mailer         Mailer
	logger         *slog.Logger
}

func NewGuestMatchService(
	guestRepo repository.GuestPaymentRepositoryIface,
	studentRepo repository.StudentRepositoryIface,
	userRepo repository.UserRepositoryIface,
	relRepo repository.StudentParentRepositoryIface,
	categoryRepo repository.PaymentCategoryRepositoryIface,
	enrollmentRepo repository.EnrollmentRepositoryIface,
	paymentRepo repository.PaymentRepositoryIface,
	auditLogger audit.Logger,
	mailer Mailer,
	logger *slog.Logger,
) *GuestMatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GuestMatchService{
		guestRepo:      guestRepo,
		studentRepo:    studentRepo,
		userRepo:       userRepo,
		relRepo:        relRepo,
		categoryRepo:   categoryRepo,
		enrollmentRepo: enrollmentRepo,
		paymentRepo:    paymentRepo,
		auditLogger:    auditLogger,
		mailer:         mailer,
		logger:         logger,
	}
}

// BestMatch ranks the official roster against name and returns the top
// candidate, or nil when the tenant has no roster students.
func (s *GuestMatchService) BestMatch(ctx context.Context, tenantID uuid.UUID, name string) (*MatchCandidate, error) {
	candidates, err := s.RankMatches(ctx, tenantID, name, 1)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return candidates[0], nil
}

// RankMatches scores every roster student against name, best first.
func (s *GuestMatchService) RankMatches(ctx context.Context, tenantID uuid.UUID, name string, limit int) ([]*MatchCandidate, error) {
	roster, err := s.studentRepo.FindRoster(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	candidates := make([]*MatchCandidate, 0, len(roster))
	for _, student := range roster {
		score := FuzzyMatch(name, student.Name)
		candidates = append(candidates, &MatchCandidate{
			Student:    student,
			Score:      score,
			Confidence: Confidence(score),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// ListUnresolved returns the tenant's guest payments awaiting resolution.
func (s *GuestMatchService) ListUnresolved(ctx context.Context, tenantID uuid.UUID) ([]*model.GuestPayment, error) {
	return s.guestRepo.FindUnresolvedByTenant(ctx, tenantID)
}

// Suggestions pairs an unresolved guest payment with its ranked candidates.
func (s *GuestMatchService) Suggestions(ctx context.Context, tenantID, guestPaymentID uuid.UUID) ([]*MatchCandidate, error) {
	gp, err := s.guestRepo.FindByID(ctx, tenantID, guestPaymentID)
	if err != nil {
		return nil, err
	}
	return s.RankMatches(ctx, tenantID, gp.StudentName, 5)
}

type ResolveGuestPaymentInput struct {
	StudentID uuid.UUID `json:"student_id"`
	Notes     string    `json:"notes"`
}

// Resolve manually attaches a guest payment to a student: creates a ghost
// user profile when the payer has no account, activates the parent-student
// relationship, creates or reuses the enrollment, records an auditable
// Payment row, increments amountPaid, and stamps the resolution fields.
//
// Re-resolving an already-resolved payment is not guarded against; the
// duplicate Payment row is rejected by its unique constraint but the
// enrollment increment is not rolled back.
func (s *GuestMatchService) Resolve(ctx context.Context, actorID, tenantID, guestPaymentID uuid.UUID, input ResolveGuestPaymentInput) (*model.GuestPayment, error) {
	gp, err := s.guestRepo.FindByID(ctx, tenantID, guestPaymentID)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.FindByID(ctx, tenantID, input.StudentID)
	if err != nil {
		return nil, err
	}

	payer, err := s.findOrCreateGhost(ctx, gp)
	if err != nil {
		return nil, err
	}

	if _, err := s.ensureActiveRelationship(ctx, actorID, tenantID, payer.ID, student.ID); err != nil {
		return nil, err
	}

	enrollment, category, err := s.ensureEnrollment(ctx, tenantID, student.ID, gp.Category)
	if err != nil {
		return nil, err
	}

	enrollment.AmountPaid += gp.Amount
	if enrollment.AmountPaid >= enrollment.TotalOwed {
		enrollment.Status = model.EnrollmentPaid
	}
	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}

	var categoryID *uuid.UUID
	if category != nil {
		categoryID = &category.ID
	}
	payment := &model.Payment{
		TenantID:              tenantID,
		UserID:                &payer.ID,
		StudentID:             &student.ID,
		CategoryID:            categoryID,
		StripePaymentIntentID: gp.StripePaymentIntentID,
		Amount:                gp.Amount,
		Status:                gp.Status,
		Category:              gp.Category,
		Description:           fmt.Sprintf("Guest payment resolved to %s", student.Name),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	now := time.Now()
	gp.MatchedStudentID = &student.ID
	gp.MatchedUserID = &payer.ID
	gp.ResolvedAt = &now
	notes := input.Notes
	gp.ResolutionNotes = &notes
	if err := s.guestRepo.Update(ctx, gp); err != nil {
		return nil, err
	}

	if err := s.mailer.SendGuestReceipt(ctx, gp.PayerEmail, student.Name, gp.Category, gp.Amount); err != nil {
		s.logger.Warn("failed to send guest receipt",
			"guest_payment_id", gp.ID.String(),
			"error", err,
		)
	}

	return gp, nil
}

func (s *GuestMatchService) findOrCreateGhost(ctx context.Context, gp *model.GuestPayment) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, gp.PayerEmail)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	first, last := splitName(gp.PayerName)
	ghost := &model.User{
		Email:     gp.PayerEmail,
		FirstName: first,
		LastName:  last,
		Status:    model.StatusPending,
		IsGhost:   true,
	}
	if err := s.userRepo.Create(ctx, ghost); err != nil {
		return nil, err
	}
	return ghost, nil
}

func (s *GuestMatchService) ensureActiveRelationship(ctx context.Context, actorID, tenantID, userID, studentID uuid.UUID) (*model.StudentParent, error) {
	rels, err := s.relRepo.FindByUser(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	for _, rel := range rels {
		if rel.StudentID != studentID {
			continue
		}
		if rel.Status == model.LinkActive {
			return rel, nil
		}
		from := rel.Status
		rel.Status = model.LinkActive
		if err := s.relRepo.Update(ctx, rel); err != nil {
			return nil, err
		}
		s.logTransition(ctx, actorID, rel, model.LinkActionApprove, from, "activated during guest payment resolution")
		return rel, nil
	}

	rel := &model.StudentParent{
		TenantID:  tenantID,
		UserID:    userID,
		StudentID: studentID,
		Status:    model.LinkActive,
	}
	if err := s.relRepo.Create(ctx, rel); err != nil {
		return nil, err
	}
	s.logTransition(ctx, actorID, rel, model.LinkActionApprove, model.LinkPending, "created during guest payment resolution")
	return rel, nil
}

func (s *GuestMatchService) ensureEnrollment(ctx context.Context, tenantID, studentID uuid.UUID, categoryName string) (*model.StudentPaymentEnrollment, *model.PaymentCategory, error) {
	category, err := s.categoryRepo.FindByName(ctx, tenantID, categoryName)
	if err != nil {
		return nil, nil, err
	}

	enrollment, err := s.enrollmentRepo.FindByStudentAndCategory(ctx, studentID, category.ID)
	if err == nil {
		return enrollment, category, nil
	}
	if !errors.Is(err, domain.ErrEnrollmentNotFound) {
		return nil, nil, err
	}

	enrollment = &model.StudentPaymentEnrollment{
		TenantID:   tenantID,
		StudentID:  studentID,
		CategoryID: category.ID,
		TotalOwed:  category.FullAmount,
		Status:     model.EnrollmentActive,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, nil, err
	}
	return enrollment, category, nil
}

func (s *GuestMatchService) logTransition(ctx context.Context, actorID uuid.UUID, rel *model.StudentParent, action model.LinkAction, from model.LinkStatus, detail string) {
	_ = s.auditLogger.LogLinkTransition(ctx, audit.LinkTransition{
		TenantID:       rel.TenantID,
		RelationshipID: rel.ID,
		ActorUserID:    actorID,
		Action:         action,
		FromStatus:     from,
		ToStatus:       rel.Status,
		FromStudentID:  rel.StudentID,
		Detail:         detail,
	})
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
