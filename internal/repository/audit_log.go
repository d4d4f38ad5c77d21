// internal/repository/audit_log.go
package repository

import (
	"context"
	"fmt"

	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepositoryIface interface {
	Create(ctx context.Context, entry *model.AuditLog) error
	ListByOrganization(ctx context.Context, orgID uuid.UUID, pg Pagination) ([]*model.AuditLog, int64, error)
}

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(ctx context.Context, entry *model.AuditLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("creating audit log: %w", err)
	}
	return nil
}

func (r *AuditLogRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID, pg Pagination) ([]*model.AuditLog, int64, error) {
	pg = pg.normalized()

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.AuditLog{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting audit logs: %w", err)
	}

	var entries []*model.AuditLog
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("listing audit logs: %w", err)
	}
	return entries, count, nil
}
