// internal/service/content_item.go
package service

import (
	"context"
	"time"

	"github.com/creatorbasehq/creatorbase/internal/authz"
	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/creatorbasehq/creatorbase/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ContentItemService struct {
	itemRepo repository.ContentItemRepositoryIface
	orgRepo  repository.OrganizationRepositoryIface
	authz    *authz.Authorizer
	validate *validator.Validate
	now      func() time.Time
}

func NewContentItemService(
	itemRepo repository.ContentItemRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	authorizer *authz.Authorizer,
) *ContentItemService {
	return &ContentItemService{
		itemRepo: itemRepo,
		orgRepo:  orgRepo,
		authz:    authorizer,
		validate: validator.New(),
		now:      time.Now,
	}
}

// normalizeContentStatus maps the English alias used by older clients onto
// the canonical status.
func normalizeContentStatus(s string) string {
	if s == "published" {
		return model.ContentStatusPublicado
	}
	return s
}

type CreateContentItemInput struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"max=5000"`
	Status      string     `json:"status" validate:"omitempty,max=40"`
	Visibility  string     `json:"visibility" validate:"omitempty,oneof=private organization"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	PublishedAt *time.Time `json:"published_at"`
}

func (s *ContentItemService) Create(ctx context.Context, actor authz.Actor, orgID uuid.UUID, input CreateContentItemInput) (*model.ContentItem, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return nil, asDomain(err)
	}

	if err := s.authz.Can(ctx, actor, orgID, authz.CapContentCreate); err != nil {
		return nil, err
	}

	status := normalizeContentStatus(input.Status)
	if status == "" {
		status = model.ContentStatusIdea
	}

	item := &model.ContentItem{
		OrganizationID: orgID,
		Title:          input.Title,
		Description:    input.Description,
		Status:         status,
		Visibility:     input.Visibility,
		ScheduledAt:    input.ScheduledAt,
		PublishedAt:    input.PublishedAt,
	}
	if item.Visibility == "" {
		item.Visibility = model.ContentVisibilityPrivate
	}
	if !actor.IsSystem() {
		id := actor.UserID
		item.CreatedByID = &id
	}

	if status == model.ContentStatusPublicado {
		if err := s.authz.Can(ctx, actor, orgID, authz.CapContentPublish); err != nil {
			return nil, err
		}
		if item.PublishedAt == nil {
			now := s.now()
			item.PublishedAt = &now
		}
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, asDomain(err)
	}
	return item, nil
}

func (s *ContentItemService) Get(ctx context.Context, actor authz.Actor, itemID uuid.UUID) (*model.ContentItem, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, asDomain(err)
	}
	if err := s.authz.Can(ctx, actor, item.OrganizationID, authz.CapContentList); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ContentItemService) List(ctx context.Context, actor authz.Actor, orgID uuid.UUID, pg repository.Pagination) ([]*model.ContentItem, int64, error) {
	if err := s.authz.Can(ctx, actor, orgID, authz.CapContentList); err != nil {
		return nil, 0, err
	}
	items, count, err := s.itemRepo.ListByOrganization(ctx, orgID, pg)
	if err != nil {
		return nil, 0, asDomain(err)
	}
	return items, count, nil
}

type UpdateContentItemInput struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	Status      *string    `json:"status" validate:"omitempty,max=40"`
	Visibility  *string    `json:"visibility" validate:"omitempty,oneof=private organization"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	PublishedAt *time.Time `json:"published_at"`
}

// Update patches a content item. Owner or creator may edit; transitioning
// into the published status is owner-gated, and the first publish stamps
// published_at when the caller did not supply one.
func (s *ContentItemService) Update(ctx context.Context, actor authz.Actor, itemID uuid.UUID, input UpdateContentItemInput) (*model.ContentItem, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, asDomain(err)
	}

	if err := s.authz.CanTouchContentItem(ctx, actor, item); err != nil {
		return nil, err
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Visibility != nil {
		item.Visibility = *input.Visibility
	}
	if input.ScheduledAt != nil {
		item.ScheduledAt = input.ScheduledAt
	}
	if input.PublishedAt != nil {
		item.PublishedAt = input.PublishedAt
	}

	if input.Status != nil {
		status := normalizeContentStatus(*input.Status)
		if status == model.ContentStatusPublicado && item.Status != model.ContentStatusPublicado {
			if err := s.authz.Can(ctx, actor, item.OrganizationID, authz.CapContentPublish); err != nil {
				return nil, err
			}
			if item.PublishedAt == nil {
				now := s.now()
				item.PublishedAt = &now
			}
		}
		item.Status = status
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, asDomain(err)
	}
	return item, nil
}

func (s *ContentItemService) Delete(ctx context.Context, actor authz.Actor, itemID uuid.UUID) error {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return asDomain(err)
	}

	if err := s.authz.Can(ctx, actor, item.OrganizationID, authz.CapContentDelete); err != nil {
		return err
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return asDomain(err)
	}
	return nil
}
