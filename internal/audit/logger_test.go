package audit_test

import (
	"context"
	"testing"

	"github.com/creatorbasehq/creatorbase/internal/audit"
	"github.com/creatorbasehq/creatorbase/internal/mocks"
	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLoggerFlushesOnClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	actorID := uuid.New()

	repo := mocks.NewMockAuditLogRepositoryIface(ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, entry *model.AuditLog) error {
			assert.Equal(t, orgID, entry.OrganizationID)
			assert.Equal(t, "member.add", entry.Capability)
			assert.False(t, entry.Allowed)
			assert.Equal(t, "requires organization owner", entry.Reason)
			return nil
		})

	logger := audit.NewLogger(repo)
	logger.Decision(orgID, &actorID, "member.add", false, "requires organization owner")
	logger.Close()
}

func TestNopLoggerIsSafe(t *testing.T) {
	var l audit.NopLogger
	l.Decision(uuid.New(), nil, "org.view", true, "")
	l.Close()
}
