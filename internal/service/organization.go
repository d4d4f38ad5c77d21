// internal/service/organization.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/creatorbasehq/creatorbase/internal/authz"
	"github.com/creatorbasehq/creatorbase/internal/domain"
	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/creatorbasehq/creatorbase/internal/repository"
	"github.com/creatorbasehq/creatorbase/internal/slug"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// builtinGrants is the permission layout seeded for every new organization.
var builtinGrants = map[string][]string{
	model.RoleAdmin:   {model.PermOrgView, model.PermOrgUpdate, model.PermOrgDelete},
	model.RoleManager: {model.PermOrgView, model.PermOrgUpdate},
	model.RoleEditor:  {model.PermOrgView},
	model.RoleViewer:  {model.PermOrgView},
}

type OrganizationService struct {
	orgRepo  repository.OrganizationRepositoryIface
	authz    *authz.Authorizer
	validate *validator.Validate
}

func NewOrganizationService(
	orgRepo repository.OrganizationRepositoryIface,
	authorizer *authz.Authorizer,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:  orgRepo,
		authz:    authorizer,
		validate: validator.New(),
	}
}

type CreateOrganizationInput struct {
	Name     string         `json:"name" validate:"required,min=2,max=120"`
	Locale   string         `json:"locale" validate:"omitempty,max=16"`
	Currency string         `json:"currency" validate:"omitempty,len=3"`
	Timezone string         `json:"timezone" validate:"omitempty,max=64"`
	Settings datatypes.JSON `json:"settings,omitempty"`
	Branding datatypes.JSON `json:"branding,omitempty"`
	Billing  datatypes.JSON `json:"billing,omitempty"`
}

// CreateForUser bootstraps an organization for userID: unique slug, builtin
// roles, their permission grants, and the founding owner membership, all in
// one transaction. A non-system actor may only bootstrap for themselves.
func (s *OrganizationService) CreateForUser(ctx context.Context, actor authz.Actor, userID uuid.UUID, input CreateOrganizationInput) (*repository.BootstrapResult, error) {
	if !actor.IsSystem() && actor.UserID != userID {
		return nil, domain.Forbidden("cannot create an organization for another user")
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	base := slug.Make(input.Name)
	if base == "" {
		return nil, domain.BadRequest("name produces an empty slug").
			WithFields(map[string]string{"name": "must contain letters or digits"})
	}

	// The existence check inside ResolveUnique is advisory. Losing the race
	// at insert surfaces as ErrSlugTaken, which re-enters the loop below.
	for {
		resolved, err := slug.ResolveUnique(ctx, base, s.orgRepo.SlugExists, slug.DefaultMaxAttempts)
		if err != nil {
			return nil, asDomain(err)
		}

		org := &model.Organization{
			Name:     input.Name,
			Slug:     resolved,
			Settings: input.Settings,
			Branding: input.Branding,
			Billing:  input.Billing,
		}
		if input.Locale != "" {
			org.Locale = input.Locale
		}
		if input.Currency != "" {
			org.Currency = input.Currency
		}
		if input.Timezone != "" {
			org.Timezone = input.Timezone
		}

		result, err := s.orgRepo.Bootstrap(ctx, repository.BootstrapInput{
			Organization:  org,
			Roles:         builtinRoles(),
			OwnerRoleName: model.RoleAdmin,
			Grants:        builtinGrants,
			OwnerUserID:   userID,
		})
		if errors.Is(err, repository.ErrSlugTaken) {
			continue
		}
		if err != nil {
			return nil, asDomain(err)
		}
		return result, nil
	}
}

func builtinRoles() []*model.Role {
	return []*model.Role{
		{Name: model.RoleAdmin, Description: "Full control of the organization", IsBuiltin: true},
		{Name: model.RoleManager, Description: "Manage content and tasks", IsBuiltin: true},
		{Name: model.RoleEditor, Description: "Edit content", IsBuiltin: true},
		{Name: model.RoleViewer, Description: "Read-only access", IsBuiltin: true},
	}
}

func (s *OrganizationService) Get(ctx context.Context, actor authz.Actor, orgID uuid.UUID) (*model.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, asDomain(err)
	}
	if err := s.authz.Can(ctx, actor, orgID, authz.CapOrgView); err != nil {
		return nil, err
	}
	return org, nil
}

// GetBySlug resolves an organization by its vanity slug, with the same
// view authorization as Get.
func (s *OrganizationService) GetBySlug(ctx context.Context, actor authz.Actor, orgSlug string) (*model.Organization, error) {
	org, err := s.orgRepo.FindBySlug(ctx, orgSlug)
	if err != nil {
		return nil, asDomain(err)
	}
	if err := s.authz.Can(ctx, actor, org.ID, authz.CapOrgView); err != nil {
		return nil, err
	}
	return org, nil
}

// ListForUser returns the organizations the actor belongs to. Identity is
// the only requirement; membership scoping happens in the query itself.
func (s *OrganizationService) ListForUser(ctx context.Context, actor authz.Actor) ([]model.Organization, error) {
	if actor.IsSystem() {
		return nil, domain.Unauthorized("authentication required")
	}
	orgs, err := s.orgRepo.FindByUser(ctx, actor.UserID)
	if err != nil {
		return nil, asDomain(err)
	}
	return orgs, nil
}

type UpdateOrganizationInput struct {
	Name     *string         `json:"name" validate:"omitempty,min=2,max=120"`
	Locale   *string         `json:"locale" validate:"omitempty,max=16"`
	Currency *string         `json:"currency" validate:"omitempty,len=3"`
	Timezone *string         `json:"timezone" validate:"omitempty,max=64"`
	Settings *datatypes.JSON `json:"settings,omitempty"`
	Branding *datatypes.JSON `json:"branding,omitempty"`
	Billing  *datatypes.JSON `json:"billing,omitempty"`
}

// Update patches mutable organization fields. The slug is immutable once
// assigned; renaming never regenerates it.
func (s *OrganizationService) Update(ctx context.Context, actor authz.Actor, orgID uuid.UUID, input UpdateOrganizationInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, asDomain(err)
	}

	if err := s.authz.Can(ctx, actor, orgID, authz.CapOrgUpdate); err != nil {
		return nil, err
	}

	if input.Name != nil {
		org.Name = *input.Name
	}
	if input.Locale != nil {
		org.Locale = *input.Locale
	}
	if input.Currency != nil {
		org.Currency = *input.Currency
	}
	if input.Timezone != nil {
		org.Timezone = *input.Timezone
	}
	if input.Settings != nil {
		org.Settings = *input.Settings
	}
	if input.Branding != nil {
		org.Branding = *input.Branding
	}
	if input.Billing != nil {
		org.Billing = *input.Billing
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, asDomain(err)
	}
	return org, nil
}

// Delete removes an organization after verifying nothing still depends on
// it. Content items and tasks must be gone first.
func (s *OrganizationService) Delete(ctx context.Context, actor authz.Actor, orgID uuid.UUID) error {
	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return asDomain(err)
	}

	if err := s.authz.Can(ctx, actor, orgID, authz.CapOrgDelete); err != nil {
		return err
	}

	items, err := s.orgRepo.CountContentItems(ctx, orgID)
	if err != nil {
		return asDomain(err)
	}
	tasks, err := s.orgRepo.CountTasks(ctx, orgID)
	if err != nil {
		return asDomain(err)
	}
	if items > 0 || tasks > 0 {
		return domain.Conflict("organization still has %d content items and %d tasks", items, tasks).
			WithDetails(fmt.Sprintf("content_items=%d", items), fmt.Sprintf("tasks=%d", tasks))
	}

	if err := s.orgRepo.Delete(ctx, orgID); err != nil {
		return asDomain(err)
	}
	return nil
}
