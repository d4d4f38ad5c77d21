// internal/audit/logger.go
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/creatorbasehq/creatorbase/internal/repository"
	"github.com/google/uuid"
)

// Logger records authorization decisions.
type Logger interface {
	// Decision records one authorization outcome. Implementations must not
	// block the request path.
	Decision(orgID uuid.UUID, actorID *uuid.UUID, capability string, allowed bool, reason string)

	// Close flushes pending entries.
	Close()
}

// NopLogger discards all entries.
type NopLogger struct{}

func (NopLogger) Decision(uuid.UUID, *uuid.UUID, string, bool, string) {}
func (NopLogger) Close()                                               {}

// dbLogger writes decisions to the audit_logs table from a background
// goroutine fed by a bounded channel. When the channel is full the entry is
// dropped and counted, never blocking a request.
type dbLogger struct {
	repo    repository.AuditLogRepositoryIface
	entries chan *model.AuditLog
	done    chan struct{}
}

func NewLogger(repo repository.AuditLogRepositoryIface) Logger {
	l := &dbLogger{
		repo:    repo,
		entries: make(chan *model.AuditLog, 256),
		done:    make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *dbLogger) Decision(orgID uuid.UUID, actorID *uuid.UUID, capability string, allowed bool, reason string) {
	entry := &model.AuditLog{
		OrganizationID: orgID,
		ActorID:        actorID,
		Capability:     capability,
		Allowed:        allowed,
		Reason:         reason,
	}

	select {
	case l.entries <- entry:
	default:
		slog.Warn("audit buffer full, dropping entry", "capability", capability)
	}
}

func (l *dbLogger) run() {
	defer close(l.done)
	for entry := range l.entries {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := l.repo.Create(ctx, entry); err != nil {
			slog.Error("writing audit log", "error", err)
		}
		cancel()
	}
}

func (l *dbLogger) Close() {
	close(l.entries)
	<-l.done
}
