// internal/handler/webhook.go
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"

	"github.com/marchkeep/marchkeep/internal/billing"
	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/model"
	"github.com/marchkeep/marchkeep/internal/repository"
	"github.com/marchkeep/marchkeep/internal/service"
)

// Stripe caps webhook payloads at 64KB; anything larger is not ours.
const maxWebhookBody = 65536

// WebhookHandler receives provider events. Signature verification failures
// are rejected with 400 so the provider retries only transient failures.
// Webhook routes stay reachable for pending tenants; onboarding completion
// arrives on this path.
type WebhookHandler struct {
	webhookSecret string
	tenantService *service.TenantService
	paymentRepo   repository.PaymentRepositoryIface
	guestRepo     repository.GuestPaymentRepositoryIface
	syncer        service.Syncer
	logger        *slog.Logger
}

func NewWebhookHandler(
	webhookSecret string,
	tenantService *service.TenantService,
	paymentRepo repository.PaymentRepositoryIface,
	guestRepo repository.GuestPaymentRepositoryIface,
	syncer service.Syncer,
	logger *slog.Logger,
) *WebhookHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookHandler{
		webhookSecret: webhookSecret,
		tenantService: tenantService,
		paymentRepo:   paymentRepo,
		guestRepo:     guestRepo,
		syncer:        syncer,
		logger:        logger,
	}
}

func (h *WebhookHandler) StripeHandler(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to read payload")
		return
	}
	defer r.Body.Close()

	event, err := billing.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		h.logger.Warn("webhook signature verification failed", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid signature")
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		err = h.handleCheckoutCompleted(r, event)
	case "payment_intent.succeeded":
		err = h.handleIntentSucceeded(r, event)
	case "payment_intent.payment_failed":
		err = h.handleIntentFailed(r, event)
	default:
		h.logger.Debug("ignoring webhook event", "type", event.Type)
	}
	if err != nil {
		h.logger.Error("webhook handling failed", "type", event.Type, "event_id", event.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Webhook handling failed")
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *WebhookHandler) handleCheckoutCompleted(r *http.Request, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return err
	}

	switch sess.Metadata[billing.MetaPaymentType] {
	case "onboarding":
		tenantID, err := uuid.Parse(sess.Metadata[billing.MetaTenantID])
		if err != nil {
			h.logger.Warn("onboarding session without tenant metadata", "session_id", sess.ID)
			return nil
		}
		if _, err := h.tenantService.Activate(r.Context(), tenantID); err != nil {
			return err
		}
		h.logger.Info("tenant activated via onboarding checkout", "tenant_id", tenantID.String())
		return nil

	case "guest":
		return h.recordGuestPayment(r, &sess)

	default:
		// Member checkout. The intent-succeeded event records the payment;
		// syncing here just freshens the snapshot sooner.
		if userID, err := uuid.Parse(sess.Metadata[billing.MetaUserID]); err == nil {
			if _, err := h.syncer.SyncStripeDataToUser(r.Context(), userID); err != nil {
				h.logger.Warn("post-checkout sync failed", "user_id", userID.String(), "error", err)
			}
		}
		return nil
	}
}

func (h *WebhookHandler) recordGuestPayment(r *http.Request, sess *stripe.CheckoutSession) error {
	tenantID, err := uuid.Parse(sess.Metadata[billing.MetaTenantID])
	if err != nil {
		h.logger.Warn("guest session without tenant metadata", "session_id", sess.ID)
		return nil
	}
	if sess.PaymentIntent == nil {
		h.logger.Warn("guest session completed without payment intent", "session_id", sess.ID)
		return nil
	}

	gp := &model.GuestPayment{
		TenantID:              tenantID,
		StripePaymentIntentID: sess.PaymentIntent.ID,
		PayerName:             sess.Metadata[billing.MetaPayerName],
		PayerEmail:            sess.Metadata[billing.MetaPayerEmail],
		StudentName:           sess.Metadata[billing.MetaStudentName],
		Category:              sess.Metadata[billing.MetaCategory],
		Amount:                sess.AmountTotal,
		Status:                "succeeded",
	}
	if err := h.guestRepo.Create(r.Context(), gp); err != nil {
		// Replays are fine; the row is keyed by intent id.
		if errors.Is(err, domain.ErrDuplicatePayment) {
			return nil
		}
		return err
	}
	h.logger.Info("guest payment recorded",
		"tenant_id", tenantID.String(),
		"intent_id", gp.StripePaymentIntentID,
		"student_name", gp.StudentName,
	)
	return nil
}

func (h *WebhookHandler) handleIntentSucceeded(r *http.Request, event stripe.Event) error {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return err
	}
	if intent.Metadata[billing.MetaPaymentType] == "guest" {
		// Guest payments are recorded off the completed session, which
		// carries the payer metadata.
		return nil
	}

	tenantID, err := uuid.Parse(intent.Metadata[billing.MetaTenantID])
	if err != nil {
		h.logger.Debug("ignoring intent without tenant metadata", "intent_id", intent.ID)
		return nil
	}

	payment := &model.Payment{
		TenantID:              tenantID,
		StripePaymentIntentID: intent.ID,
		Amount:                intent.Amount,
		Status:                string(intent.Status),
		Category:              intent.Metadata[billing.MetaCategory],
		Description:           intent.Description,
	}
	if userID, err := uuid.Parse(intent.Metadata[billing.MetaUserID]); err == nil {
		payment.UserID = &userID
	}
	if studentID, err := uuid.Parse(intent.Metadata[billing.MetaStudentID]); err == nil {
		payment.StudentID = &studentID
	}

	if err := h.paymentRepo.Create(r.Context(), payment); err != nil && !errors.Is(err, domain.ErrDuplicatePayment) {
		return err
	}

	if payment.UserID != nil {
		if _, err := h.syncer.SyncStripeDataToUser(r.Context(), *payment.UserID); err != nil {
			h.logger.Warn("post-payment sync failed", "user_id", payment.UserID.String(), "error", err)
		}
	}
	return nil
}

func (h *WebhookHandler) handleIntentFailed(r *http.Request, event stripe.Event) error {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return err
	}
	h.logger.Info("payment intent failed",
		"intent_id", intent.ID,
		"amount", intent.Amount,
		"tenant_id", intent.Metadata[billing.MetaTenantID],
	)
	return nil
}
