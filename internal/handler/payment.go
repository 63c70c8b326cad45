// internal/handler/payment.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/marchkeep/marchkeep/internal/billing"
	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/middleware"
	"github.com/marchkeep/marchkeep/internal/model"
	"github.com/marchkeep/marchkeep/internal/service"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

type CategoriesResponse struct {
	BaseResponse
	Categories []*model.PaymentCategory `json:"categories"`
}

func (h *PaymentHandler) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, _, _, err := middleware.TenantFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Unknown tenant")
		return
	}

	categories, err := h.paymentService.Categories(r.Context(), tenantID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Error listing categories", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, CategoriesResponse{
		BaseResponse: BaseResponse{Ok: true},
		Categories:   categories,
	})
}

type CheckoutResponse struct {
	BaseResponse
	*service.CheckoutOutput
}

func (h *PaymentHandler) CreateCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, err := requestIdentity(r)
	if err != nil {
		respondWithError(w, statusForError(err), "Unauthorized")
		return
	}

	var input service.CreateCheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.paymentService.CreateCheckout(r.Context(), tenantID, userID, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Checkout creation failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrForbidden):
			respondWithError(w, http.StatusForbidden, "You do not hold the active claim on this student")
		default:
			respondWithError(w, statusForError(err), err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, CheckoutResponse{
		BaseResponse:   BaseResponse{Ok: true},
		CheckoutOutput: output,
	})
}

type EnrollRequest struct {
	StudentID  uuid.UUID `json:"student_id"`
	CategoryID uuid.UUID `json:"category_id"`
}

func (h *PaymentHandler) EnrollHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, err := requestIdentity(r)
	if err != nil {
		respondWithError(w, statusForError(err), "Unauthorized")
		return
	}

	var req EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	enrollment, err := h.paymentService.Enroll(r.Context(), tenantID, userID, req.StudentID, req.CategoryID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Enrollment failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "enrollment": enrollment})
}

func (h *PaymentHandler) UnenrollHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, err := requestIdentity(r)
	if err != nil {
		respondWithError(w, statusForError(err), "Unauthorized")
		return
	}

	var req EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.paymentService.Unenroll(r.Context(), tenantID, userID, req.StudentID, req.CategoryID); err != nil {
		slog.ErrorContext(r.Context(), "Unenrollment failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type EnrollmentsResponse struct {
	BaseResponse
	Enrollments map[string]billing.StudentEnrollment `json:"enrollments"`
}

// EnrollmentsHandler syncs the caller's provider data and returns the
// enrollment slice of the snapshot.
func (h *PaymentHandler) EnrollmentsHandler(w http.ResponseWriter, r *http.Request) {
	_, userID, err := requestIdentity(r)
	if err != nil {
		respondWithError(w, statusForError(err), "Unauthorized")
		return
	}

	enrollments, err := h.paymentService.Enrollments(r.Context(), userID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Error fetching enrollments", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, EnrollmentsResponse{
		BaseResponse: BaseResponse{Ok: true},
		Enrollments:  enrollments,
	})
}

type HistoryResponse struct {
	BaseResponse
	Payments []billing.PaymentRecord `json:"payments"`
}

// HistoryHandler syncs the caller's provider data and returns the normalized
// payment records.
func (h *PaymentHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	_, userID, err := requestIdentity(r)
	if err != nil {
		respondWithError(w, statusForError(err), "Unauthorized")
		return
	}

	payments, err := h.paymentService.History(r.Context(), userID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Error fetching payment history", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, HistoryResponse{
		BaseResponse: BaseResponse{Ok: true},
		Payments:     payments,
	})
}

// GuestCheckoutHandler opens a checkout session for an unauthenticated
// payer. Only the tenant has to be resolvable; no login is required.
func (h *PaymentHandler) GuestCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, _, _, err := middleware.TenantFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Unknown tenant")
		return
	}

	var input service.GuestCheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.paymentService.GuestCheckout(r.Context(), tenantID, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Guest checkout failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, CheckoutResponse{
		BaseResponse:   BaseResponse{Ok: true},
		CheckoutOutput: output,
	})
}
