// internal/handler/director.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/model"
	"github.com/marchkeep/marchkeep/internal/service"
)

// DirectorHandler serves the director and booster administration endpoints.
// Every handler re-checks the caller's role in the tenant; the routing
// middleware only establishes which tenant the request belongs to.
type DirectorHandler struct {
	userService    *service.UserService
	studentService *service.StudentService
	guestService   *service.GuestMatchService
}

func NewDirectorHandler(
	userService *service.UserService,
	studentService *service.StudentService,
	guestService *service.GuestMatchService,
) *DirectorHandler {
	return &DirectorHandler{
		userService:    userService,
		studentService: studentService,
		guestService:   guestService,
	}
}

func (h *DirectorHandler) requireRole(w http.ResponseWriter, r *http.Request, roles ...model.Role) (tenantID, userID uuid.UUID, ok bool) {
	tenantID, userID, err := requestIdentity(r)
	if err != nil {
		respondWithError(w, statusForError(err), "Unauthorized")
		return uuid.Nil, uuid.Nil, false
	}
	if _, err := h.userService.RequireRole(r.Context(), userID, tenantID, roles...); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			respondWithError(w, http.StatusForbidden, "Insufficient role")
			return uuid.Nil, uuid.Nil, false
		}
		slog.ErrorContext(r.Context(), "Role check failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return uuid.Nil, uuid.Nil, false
	}
	return tenantID, userID, true
}

type RosterResponse struct {
	BaseResponse
	Students []*model.Student `json:"students"`
}

func (h *DirectorHandler) RosterHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := h.requireRole(w, r, model.RoleDirector)
	if !ok {
		return
	}

	students, err := h.studentService.Roster(r.Context(), tenantID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Error listing roster", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, RosterResponse{
		BaseResponse: BaseResponse{Ok: true},
		Students:     students,
	})
}

func (h *DirectorHandler) CreateStudentHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := h.requireRole(w, r, model.RoleDirector)
	if !ok {
		return
	}

	var input service.AddStudentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	student, err := h.studentService.CreateStudent(r.Context(), tenantID, input, model.SourceManual)
	if err != nil {
		slog.ErrorContext(r.Context(), "Error creating student", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "student": student})
}

func (h *DirectorHandler) UpdateStudentHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := h.requireRole(w, r, model.RoleDirector)
	if !ok {
		return
	}

	studentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid student id")
		return
	}

	var input service.UpdateStudentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	student, err := h.studentService.UpdateStudent(r.Context(), tenantID, studentID, input)
	if err != nil {
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "student": student})
}

type PendingLinksResponse struct {
	BaseResponse
	Links []*model.StudentParent `json:"links"`
}

func (h *DirectorHandler) PendingLinksHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := h.requireRole(w, r, model.RoleDirector)
	if !ok {
		return
	}

	links, err := h.studentService.PendingLinks(r.Context(), tenantID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Error listing pending links", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, PendingLinksResponse{
		BaseResponse: BaseResponse{Ok: true},
		Links:        links,
	})
}

type LinkActionRequest struct {
	Action          string     `json:"action"`
	TargetStudentID *uuid.UUID `json:"target_student_id,omitempty"`
}

// LinkActionHandler applies a director decision to a pending relationship:
// approve, reject, or relink to a roster student.
func (h *DirectorHandler) LinkActionHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, ok := h.requireRole(w, r, model.RoleDirector)
	if !ok {
		return
	}

	relID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid relationship id")
		return
	}

	var req LinkActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	var rel *model.StudentParent
	switch req.Action {
	case "approve":
		rel, err = h.studentService.Approve(r.Context(), userID, tenantID, relID)
	case "reject":
		rel, err = h.studentService.Reject(r.Context(), userID, tenantID, relID)
	case "relink":
		if req.TargetStudentID == nil {
			respondWithError(w, http.StatusBadRequest, "target_student_id is required for relink")
			return
		}
		rel, err = h.studentService.Relink(r.Context(), userID, tenantID, relID, *req.TargetStudentID)
	default:
		respondWithError(w, http.StatusBadRequest, "Unknown action")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Link action failed", "action", req.Action, "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidTransition):
			respondWithError(w, http.StatusBadRequest, "Relationship is not pending")
		case errors.Is(err, domain.ErrRelinkNotAllowed):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrStudentAlreadyClaimed):
			respondWithError(w, http.StatusBadRequest, "Student is already claimed by another parent")
		default:
			respondWithError(w, statusForError(err), err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "relationship": rel})
}

type GuestPaymentsResponse struct {
	BaseResponse
	Payments []*model.GuestPayment `json:"payments"`
}

func (h *DirectorHandler) GuestPaymentsHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := h.requireRole(w, r, model.RoleDirector, model.RoleBooster)
	if !ok {
		return
	}

	payments, err := h.guestService.ListUnresolved(r.Context(), tenantID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Error listing guest payments", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, GuestPaymentsResponse{
		BaseResponse: BaseResponse{Ok: true},
		Payments:     payments,
	})
}

func (h *DirectorHandler) GuestSuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := h.requireRole(w, r, model.RoleDirector, model.RoleBooster)
	if !ok {
		return
	}

	paymentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}

	candidates, err := h.guestService.Suggestions(r.Context(), tenantID, paymentID)
	if err != nil {
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, MatchResponse{
		BaseResponse: BaseResponse{Ok: true},
		Candidates:   candidates,
	})
}

func (h *DirectorHandler) ResolveGuestPaymentHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, ok := h.requireRole(w, r, model.RoleDirector, model.RoleBooster)
	if !ok {
		return
	}

	paymentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}

	var input service.ResolveGuestPaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	gp, err := h.guestService.Resolve(r.Context(), userID, tenantID, paymentID, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Guest payment resolution failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "payment": gp})
}
