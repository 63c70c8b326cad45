// internal/service/stripesync.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"golang.org/x/sync/errgroup"

	"github.com/marchkeep/marchkeep/internal/billing"
	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/metrics"
	"github.com/marchkeep/marchkeep/internal/model"
	"github.com/marchkeep/marchkeep/internal/repository"
)

// SyncService rebuilds per-user payment snapshots from the provider. The
// provider is the source of truth for money; the snapshot row is a cache and
// is always replaced wholesale so a reader never sees a half-updated view.
type SyncService struct {
	userRepo       repository.UserRepositoryIface
	enrollmentRepo repository.EnrollmentRepositoryIface
	studentRepo    repository.StudentRepositoryIface
	cacheRepo      repository.StripeCacheRepositoryIface
	billing        billing.API
	logger         *slog.Logger
}

func NewSyncService(
	userRepo repository.UserRepositoryIface,
	enrollmentRepo repository.EnrollmentRepositoryIface,
	studentRepo repository.StudentRepositoryIface,
	cacheRepo repository.StripeCacheRepositoryIface,
	billingAPI billing.API,
	logger *slog.Logger,
) *SyncService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncService{
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		cacheRepo:      cacheRepo,
		billing:        billingAPI,
		logger:         logger,
	}
}

// SyncStripeDataToUser pulls the user's customer, payment intents and
// checkout sessions from the provider, derives the snapshot document, and
// upserts it. A user without a customer id syncs to nil. Provider or
// persistence errors also return nil: callers fall back to the last snapshot
// rather than surfacing a sync failure to the request path.
func (s *SyncService) SyncStripeDataToUser(ctx context.Context, userID uuid.UUID) (*billing.CustomerSnapshot, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		s.logger.Error("stripe sync user load failed",
			"user_id", userID.String(),
			"error", err,
		)
		metrics.SyncCounter.WithLabelValues("fetch_error").Inc()
		return nil, nil
	}
	if user.StripeCustomerID == "" {
		return nil, nil
	}

	var (
		customer *stripe.Customer
		intents  []*stripe.PaymentIntent
		sessions []*stripe.CheckoutSession
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customer, err = s.billing.GetCustomer(gctx, user.StripeCustomerID)
		return err
	})
	g.Go(func() error {
		var err error
		intents, err = s.billing.ListPaymentIntents(gctx, user.StripeCustomerID, billing.DefaultPageSize)
		return err
	})
	g.Go(func() error {
		var err error
		sessions, err = s.billing.ListCheckoutSessions(gctx, user.StripeCustomerID, billing.DefaultPageSize)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("stripe sync fetch failed",
			"user_id", userID.String(),
			"customer_id", user.StripeCustomerID,
			"error", err,
		)
		metrics.SyncCounter.WithLabelValues("fetch_error").Inc()
		return nil, nil
	}

	snapshot := s.buildSnapshot(customer, intents, sessions)

	if err := s.persistEnrollments(ctx, user, snapshot); err != nil {
		s.logger.Error("stripe sync enrollment persist failed",
			"user_id", userID.String(),
			"error", err,
		)
		metrics.SyncCounter.WithLabelValues("persist_error").Inc()
		return nil, nil
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Error("stripe sync snapshot encode failed", "user_id", userID.String(), "error", err)
		metrics.SyncCounter.WithLabelValues("persist_error").Inc()
		return nil, nil
	}
	if err := s.cacheRepo.Upsert(ctx, userID, model.JSONB(data)); err != nil {
		s.logger.Error("stripe sync snapshot upsert failed", "user_id", userID.String(), "error", err)
		metrics.SyncCounter.WithLabelValues("persist_error").Inc()
		return nil, nil
	}

	metrics.SyncCounter.WithLabelValues("ok").Inc()
	return snapshot, nil
}

// buildSnapshot derives the snapshot document from raw provider objects.
// Checkout-session metadata wins over intent metadata when both are present,
// since session metadata is what the checkout flows attach.
func (s *SyncService) buildSnapshot(customer *stripe.Customer, intents []*stripe.PaymentIntent, sessions []*stripe.CheckoutSession) *billing.CustomerSnapshot {
	sessionMeta := make(map[string]map[string]string, len(sessions))
	for _, sess := range sessions {
		if sess.PaymentIntent == nil || len(sess.Metadata) == 0 {
			continue
		}
		sessionMeta[sess.PaymentIntent.ID] = sess.Metadata
	}

	snapshot := &billing.CustomerSnapshot{
		Version:     billing.SnapshotVersion,
		CustomerID:  customer.ID,
		Payments:    make([]billing.PaymentRecord, 0, len(intents)),
		Enrollments: map[string]billing.StudentEnrollment{},
		LastSync:    time.Now().UTC(),
	}

	for _, intent := range intents {
		meta := intent.Metadata
		if m, ok := sessionMeta[intent.ID]; ok {
			meta = m
		}
		record := billing.PaymentRecord{
			ID:          intent.ID,
			Amount:      intent.Amount,
			Status:      string(intent.Status),
			Category:    meta[billing.MetaCategory],
			StudentID:   meta[billing.MetaStudentID],
			StudentName: meta[billing.MetaStudentName],
			Description: intent.Description,
			Created:     time.Unix(intent.Created, 0).UTC(),
		}
		snapshot.Payments = append(snapshot.Payments, record)

		if intent.Status == stripe.PaymentIntentStatusSucceeded {
			snapshot.Totals.Add(record.Category, record.Amount)
		}
	}

	if raw, ok := customer.Metadata[billing.MetaEnrollments]; ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &snapshot.Enrollments); err != nil {
			s.logger.Warn("discarding malformed enrollment metadata", "customer_id", customer.ID, "error", err)
			snapshot.Enrollments = map[string]billing.StudentEnrollment{}
		}
	}

	// amountPaid is never trusted from metadata. Re-sum succeeded payments
	// per (student, category) from the ledger just built.
	paid := map[string]map[string]int64{}
	for _, p := range snapshot.Payments {
		if p.Status != string(stripe.PaymentIntentStatusSucceeded) || p.StudentID == "" || p.Category == "" {
			continue
		}
		if paid[p.StudentID] == nil {
			paid[p.StudentID] = map[string]int64{}
		}
		paid[p.StudentID][p.Category] += p.Amount
	}
	for studentID, entry := range snapshot.Enrollments {
		for category, cat := range entry.Categories {
			cat.AmountPaid = paid[studentID][category]
			entry.Categories[category] = cat
		}
		snapshot.Enrollments[studentID] = entry
	}

	return snapshot
}

// persistEnrollments mirrors the snapshot's enrollment state into the
// database rows so director views and guest matching see current figures.
func (s *SyncService) persistEnrollments(ctx context.Context, user *model.User, snapshot *billing.CustomerSnapshot) error {
	for studentKey, entry := range snapshot.Enrollments {
		studentID, err := uuid.Parse(studentKey)
		if err != nil {
			s.logger.Warn("skipping enrollment with non-uuid student key", "key", studentKey)
			continue
		}

		rows, err := s.enrollmentRepo.FindByStudent(ctx, studentID)
		if err != nil {
			return err
		}
		byCategory := make(map[string]*model.StudentPaymentEnrollment, len(rows))
		for _, row := range rows {
			byCategory[row.Category.Name] = row
		}

		for categoryName, cat := range entry.Categories {
			row, ok := byCategory[categoryName]
			if !ok {
				// Enrollment rows are created by the enroll endpoint; a
				// metadata-only category has nothing to update here.
				continue
			}
			if row.AmountPaid == cat.AmountPaid && row.TotalOwed == cat.TotalOwed {
				continue
			}
			row.AmountPaid = cat.AmountPaid
			if cat.TotalOwed > 0 {
				row.TotalOwed = cat.TotalOwed
			}
			if row.AmountPaid >= row.TotalOwed && row.TotalOwed > 0 {
				row.Status = model.EnrollmentPaid
			}
			if err := s.enrollmentRepo.Update(ctx, row); err != nil {
				return err
			}
		}
	}
	return nil
}
