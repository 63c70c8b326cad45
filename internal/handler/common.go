package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/middleware"
)

type ErrorResponse struct {
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
	Code    *string   `json:"error_code,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// requestIdentity extracts the tenant injected by the routing middleware and
// the authenticated user. Handlers behind both middlewares use this; a
// missing value is a 401/404 the caller turns into a response.
func requestIdentity(r *http.Request) (tenantID, userID uuid.UUID, err error) {
	tenantID, _, _, err = middleware.TenantFromRequest(r)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	userID, err = middleware.UserIDFromContext(r.Context())
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return tenantID, userID, nil
}

// statusForError maps domain sentinels that share a status code across
// handlers. Handlers still switch on the sentinels they respond to with
// bespoke messages.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrRelinkNotAllowed),
		errors.Is(err, domain.ErrStudentAlreadyClaimed),
		errors.Is(err, domain.ErrInviteCodeUsed),
		errors.Is(err, domain.ErrInviteCodeExpired),
		errors.Is(err, domain.ErrInvalidSubdomain),
		errors.Is(err, domain.ErrCategoryInactive):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTenantNotFound),
		errors.Is(err, domain.ErrStudentNotFound),
		errors.Is(err, domain.ErrRelationshipNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrEnrollmentNotFound),
		errors.Is(err, domain.ErrGuestPaymentNotFound),
		errors.Is(err, domain.ErrInviteCodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrSubdomainTaken),
		errors.Is(err, domain.ErrEnrollmentExists),
		errors.Is(err, domain.ErrDuplicatePayment):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
