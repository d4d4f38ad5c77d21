// internal/repository/content_item.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/creatorbasehq/creatorbase/internal/domain"
	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentItemRepositoryIface interface {
	Create(ctx context.Context, item *model.ContentItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ContentItem, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, pg Pagination) ([]*model.ContentItem, int64, error)
	Update(ctx context.Context, item *model.ContentItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContentItemRepository struct {
	db *gorm.DB
}

func NewContentItemRepository(db *gorm.DB) *ContentItemRepository {
	return &ContentItemRepository{db: db}
}

func (r *ContentItemRepository) Create(ctx context.Context, item *model.ContentItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("creating content item: %w", err)
	}
	return nil
}

func (r *ContentItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ContentItem, error) {
	var item model.ContentItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("content item not found")
		}
		return nil, fmt.Errorf("finding content item: %w", err)
	}
	return &item, nil
}

func (r *ContentItemRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID, pg Pagination) ([]*model.ContentItem, int64, error) {
	pg = pg.normalized()

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ContentItem{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting content items: %w", err)
	}

	var items []*model.ContentItem
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("listing content items: %w", err)
	}
	return items, count, nil
}

func (r *ContentItemRepository) Update(ctx context.Context, item *model.ContentItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("updating content item: %w", err)
	}
	return nil
}

func (r *ContentItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.ContentItem{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting content item: %w", err)
	}
	return nil
}
