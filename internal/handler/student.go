// internal/handler/student.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"

	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/model"
	"github.com/marchkeep/marchkeep/internal/service"
)

// StudentHandler serves the parent-facing student endpoints.
type StudentHandler struct {
	studentService *service.StudentService
}

func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

type MyStudentsResponse struct {
	BaseResponse
	Students []*model.StudentParent `json:"students"`
}

// ListHandler returns the parent's student relationships, pending included.
func (h *StudentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, err := requestIdentity(r)
	if err != nil {
		respondWithError(w, statusForError(err), "Unauthorized")
		return
	}

	rels, err := h.studentService.MyStudents(r.Context(), tenantID, userID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Error listing students", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, MyStudentsResponse{
		BaseResponse: BaseResponse{Ok: true},
		Students:     rels,
	})
}

type AddStudentResponse struct {
	BaseResponse
	*service.AddStudentOutput
}

// AddHandler records a parent's claim on a student. A confident roster match
// links the existing record; otherwise a provisional one is created. Both
// await director approval.
func (h *StudentHandler) AddHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, err := requestIdentity(r)
	if err != nil {
		respondWithError(w, statusForError(err), "Unauthorized")
		return
	}

	var input service.AddStudentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.studentService.AddStudent(r.Context(), tenantID, userID, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Error adding student", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrStudentAlreadyClaimed):
			respondWithError(w, http.StatusBadRequest, "Student is already claimed by another parent")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, AddStudentResponse{
		BaseResponse:     BaseResponse{Ok: true},
		AddStudentOutput: output,
	})
}

type MatchRequest struct {
	Name string `json:"name"`
}

type MatchResponse struct {
	BaseResponse
	Candidates []*service.MatchCandidate `json:"candidates"`
}

// MatchHandler ranks roster candidates for a free-text student name.
func (h *StudentHandler) MatchHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, _, err := requestIdentity(r)
	if err != nil {
		respondWithError(w, statusForError(err), "Unauthorized")
		return
	}

	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	candidates, err := h.studentService.Match(r.Context(), tenantID, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, "Name is required")
			return
		}
		slog.ErrorContext(r.Context(), "Error matching students", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, MatchResponse{
		BaseResponse: BaseResponse{Ok: true},
		Candidates:   candidates,
	})
}
