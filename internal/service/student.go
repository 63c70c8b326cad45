// internal/service/student.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/marchkeep/marchkeep/internal/audit"
	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/model"
	"github.com/marchkeep/marchkeep/internal/repository"
)

type StudentService struct {
	studentRepo repository.StudentRepositoryIface
	relRepo     repository.StudentParentRepositoryIface
	userRepo    repository.UserRepositoryIface
	matcher     *GuestMatchService
	auditLogger audit.Logger
	mailer      Mailer
	logger      *slog.Logger
	validate    *validator.Validate
}

func NewStudentService(
	studentRepo repository.StudentRepositoryIface,
	relRepo repository.StudentParentRepositoryIface,
	userRepo repository.UserRepositoryIface,
	matcher *GuestMatchService,
	auditLogger audit.Logger,
	mailer Mailer,
	logger *slog.Logger,
) *StudentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudentService{
		studentRepo: studentRepo,
		relRepo:     relRepo,
		userRepo:    userRepo,
		matcher:     matcher,
		auditLogger: auditLogger,
		mailer:      mailer,
		logger:      logger,
		validate:    validator.New(),
	}
}

type AddStudentInput struct {
	Name       string  `json:"name" validate:"required"`
	Instrument string  `json:"instrument"`
	Grade      *string `json:"grade"`
}

type AddStudentOutput struct {
	Relationship *model.StudentParent `json:"relationship"`
	Student      *model.Student       `json:"student"`
	Matched      bool                 `json:"matched"`
	MatchScore   float64              `json:"match_score,omitempty"`
}

// AddStudent records a parent's claim on a student. A confident roster match
// links the existing record; otherwise a provisional PARENT_REGISTRATION
// student is created. Either way the relationship starts PENDING and waits
// for director review.
func (s *StudentService) AddStudent(ctx context.Context, tenantID, parentID uuid.UUID, input AddStudentInput) (*AddStudentOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	best, err := s.matcher.BestMatch(ctx, tenantID, input.Name)
	if err != nil {
		return nil, err
	}

	var student *model.Student
	var score float64
	matched := false
	if best != nil && best.Confidence == MatchConfident {
		student = best.Student
		score = best.Score
		matched = true
	} else {
		student = &model.Student{
			TenantID:   tenantID,
			Name:       input.Name,
			Instrument: input.Instrument,
			Grade:      input.Grade,
			Source:     model.SourceParentRegistration,
		}
		if err := s.studentRepo.Create(ctx, student); err != nil {
			return nil, err
		}
	}

	rel := &model.StudentParent{
		TenantID:  tenantID,
		UserID:    parentID,
		StudentID: student.ID,
		Status:    model.LinkPending,
	}
	if err := s.relRepo.Create(ctx, rel); err != nil {
		return nil, err
	}

	return &AddStudentOutput{
		Relationship: rel,
		Student:      student,
		Matched:      matched,
		MatchScore:   score,
	}, nil
}

// Match ranks the roster against a free-text name, for the parent-facing
// "is my student already here" check.
func (s *StudentService) Match(ctx context.Context, tenantID uuid.UUID, name string) ([]*MatchCandidate, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.matcher.RankMatches(ctx, tenantID, name, 5)
}

// MyStudents returns the parent's relationships with students preloaded.
func (s *StudentService) MyStudents(ctx context.Context, tenantID, parentID uuid.UUID) ([]*model.StudentParent, error) {
	return s.relRepo.FindByUser(ctx, tenantID, parentID)
}

// Roster returns every student in the tenant, for director views.
func (s *StudentService) Roster(ctx context.Context, tenantID uuid.UUID) ([]*model.Student, error) {
	return s.studentRepo.FindByTenant(ctx, tenantID)
}

// PendingLinks returns relationships awaiting director review.
func (s *StudentService) PendingLinks(ctx context.Context, tenantID uuid.UUID) ([]*model.StudentParent, error) {
	return s.relRepo.FindPendingByTenant(ctx, tenantID)
}

type UpdateStudentInput struct {
	Name       *string `json:"name"`
	Instrument *string `json:"instrument"`
	Grade      *string `json:"grade"`
}

// UpdateStudent applies a director's partial edit.
func (s *StudentService) UpdateStudent(ctx context.Context, tenantID, studentID uuid.UUID, input UpdateStudentInput) (*model.Student, error) {
	student, err := s.studentRepo.FindByID(ctx, tenantID, studentID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		student.Name = *input.Name
	}
	if input.Instrument != nil {
		student.Instrument = *input.Instrument
	}
	if input.Grade != nil {
		student.Grade = input.Grade
	}
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// CreateStudent adds a student directly to the roster (director action).
func (s *StudentService) CreateStudent(ctx context.Context, tenantID uuid.UUID, input AddStudentInput, source model.StudentSource) (*model.Student, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	student := &model.Student{
		TenantID:   tenantID,
		Name:       input.Name,
		Instrument: input.Instrument,
		Grade:      input.Grade,
		Source:     source,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Approve transitions a PENDING relationship to ACTIVE. Approving a
// parent-registered student merges it into the canonical roster by promoting
// its source.
func (s *StudentService) Approve(ctx context.Context, actorID, tenantID, relID uuid.UUID) (*model.StudentParent, error) {
	rel, err := s.relRepo.FindByID(ctx, tenantID, relID)
	if err != nil {
		return nil, err
	}
	if rel.Status != model.LinkPending {
		return nil, domain.ErrInvalidTransition
	}

	rel.Status = model.LinkActive
	if err := s.relRepo.Update(ctx, rel); err != nil {
		return nil, err
	}

	if rel.Student.ID == rel.StudentID && rel.Student.Source == model.SourceParentRegistration {
		rel.Student.Source = model.SourceRoster
		if err := s.studentRepo.Update(ctx, &rel.Student); err != nil {
			return nil, err
		}
	}

	s.logTransition(ctx, actorID, rel, model.LinkActionApprove, model.LinkPending, nil, "")
	s.notifyParent(ctx, rel, true)
	return rel, nil
}

// Reject transitions a PENDING relationship to REJECTED.
func (s *StudentService) Reject(ctx context.Context, actorID, tenantID, relID uuid.UUID) (*model.StudentParent, error) {
	rel, err := s.relRepo.FindByID(ctx, tenantID, relID)
	if err != nil {
		return nil, err
	}
	if rel.Status != model.LinkPending {
		return nil, domain.ErrInvalidTransition
	}

	rel.Status = model.LinkRejected
	if err := s.relRepo.Update(ctx, rel); err != nil {
		return nil, err
	}

	s.logTransition(ctx, actorID, rel, model.LinkActionReject, model.LinkPending, nil, "")
	s.notifyParent(ctx, rel, false)
	return rel, nil
}

// Relink repoints a PENDING relationship from a parent-created provisional
// student to an unclaimed roster student, deleting the provisional row.
// Guards: current source must be PARENT_REGISTRATION, target source must be
// ROSTER, and the target must have no ACTIVE claim.
func (s *StudentService) Relink(ctx context.Context, actorID, tenantID, relID, targetStudentID uuid.UUID) (*model.StudentParent, error) {
	rel, err := s.relRepo.FindByID(ctx, tenantID, relID)
	if err != nil {
		return nil, err
	}
	if rel.Status != model.LinkPending {
		return nil, domain.ErrInvalidTransition
	}
	if rel.Student.Source != model.SourceParentRegistration {
		return nil, domain.ErrRelinkNotAllowed
	}

	target, err := s.studentRepo.FindByID(ctx, tenantID, targetStudentID)
	if err != nil {
		return nil, err
	}
	if target.Source != model.SourceRoster {
		return nil, domain.ErrRelinkNotAllowed
	}

	if _, err := s.relRepo.FindActiveByStudent(ctx, target.ID); err == nil {
		return nil, domain.ErrStudentAlreadyClaimed
	} else if !errors.Is(err, domain.ErrRelationshipNotFound) {
		return nil, err
	}

	fromStudentID := rel.StudentID
	if err := s.relRepo.Relink(ctx, rel, target.ID); err != nil {
		return nil, err
	}

	s.logTransition(ctx, actorID, rel, model.LinkActionRelink, model.LinkPending, &target.ID,
		fmt.Sprintf("repointed from provisional student %s", fromStudentID))
	return rel, nil
}

func (s *StudentService) logTransition(ctx context.Context, actorID uuid.UUID, rel *model.StudentParent, action model.LinkAction, from model.LinkStatus, toStudent *uuid.UUID, detail string) {
	_ = s.auditLogger.LogLinkTransition(ctx, audit.LinkTransition{
		TenantID:       rel.TenantID,
		RelationshipID: rel.ID,
		ActorUserID:    actorID,
		Action:         action,
		FromStatus:     from,
		ToStatus:       rel.Status,
		FromStudentID:  rel.StudentID,
		ToStudentID:    toStudent,
		Detail:         detail,
	})
}

func (s *StudentService) notifyParent(ctx context.Context, rel *model.StudentParent, approved bool) {
	parent, err := s.userRepo.FindByID(ctx, rel.UserID)
	if err != nil {
		s.logger.Warn("failed to load parent for link notification", "user_id", rel.UserID.String(), "error", err)
		return
	}
	if err := s.mailer.SendLinkDecision(ctx, parent.Email, rel.Student.Name, approved); err != nil {
		s.logger.Warn("failed to send link decision email",
			"relationship_id", rel.ID.String(),
			"error", err,
		)
	}
}
