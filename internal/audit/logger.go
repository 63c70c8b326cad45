// internal/audit/logger.go
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marchkeep/marchkeep/internal/model"
)

// Logger records student-parent linking transitions for later review.
type Logger interface {
	LogLinkTransition(ctx context.Context, entry LinkTransition) error
}

// LinkTransition captures one relationship state change: who acted and the
// before/after state.
type LinkTransition struct {
	TenantID       uuid.UUID
	RelationshipID uuid.UUID
	ActorUserID    uuid.UUID
	Action         model.LinkAction
	FromStatus     model.LinkStatus
	ToStatus       model.LinkStatus
	FromStudentID  uuid.UUID
	ToStudentID    *uuid.UUID
	Detail         string
}

// DBLogger persists transitions to the link_audit_logs table.
type DBLogger struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewDBLogger(db *gorm.DB, logger *slog.Logger) *DBLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &DBLogger{db: db, logger: logger}
}

func (l *DBLogger) LogLinkTransition(ctx context.Context, entry LinkTransition) error {
	row := model.LinkAuditLog{
		TenantID:       entry.TenantID,
		RelationshipID: entry.RelationshipID,
		ActorUserID:    entry.ActorUserID,
		Action:         entry.Action,
		FromStatus:     entry.FromStatus,
		ToStatus:       entry.ToStatus,
		FromStudentID:  entry.FromStudentID,
		ToStudentID:    entry.ToStudentID,
		Detail:         entry.Detail,
	}
	if err := l.db.WithContext(ctx).Create(&row).Error; err != nil {
		// An audit write failure is logged, not propagated; the transition
		// itself already committed.
		l.logger.Error("failed to write link audit log",
			"relationship_id", entry.RelationshipID.String(),
			"action", entry.Action,
			"error", err,
		)
		return fmt.Errorf("writing link audit log: %w", err)
	}
	return nil
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

func (NoOpLogger) LogLinkTransition(ctx context.Context, entry LinkTransition) error {
	return nil
}
