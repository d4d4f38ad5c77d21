// internal/repository/onboarding.go
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

// ErrSlugTaken signals that the organization insert lost a slug race. The
// onboarding service re-enters its slug-selection loop on this error.
var ErrSlugTaken = errors.New("organization slug taken")

// BootstrapInput describes everything the onboarding transaction creates.
type BootstrapInput struct {
	Organization *model.Organization
	// Roles are inserted with the new organization's id. The role named
	// OwnerRoleName becomes the founding membership's role.
	Roles         []*model.Role
	OwnerRoleName string
	// Grants maps role name to permission codes. Codes must exist in the
	// permission catalog.
	Grants      map[string][]string
	OwnerUserID uuid.UUID
}

// BootstrapResult is the composite created by a successful onboarding.
type BootstrapResult struct {
	Organization    *model.Organization    `json:"organization"`
	Roles           []*model.Role          `json:"roles"`
	RolePermissions []model.RolePermission `json:"role_permissions"`
	Membership      *model.Membership      `json:"member"`
}

// Bootstrap creates an organization together with its builtin roles, their
// permission grants, and the founding owner membership in one transaction.
// The founding membership bypasses the owner-required enrollment rule since
// the organization has no members yet.
func (r *OrganizationRepository) Bootstrap(ctx context.Context, in BootstrapInput) (*BootstrapResult, error) {
	var out BootstrapResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(in.Organization).Error; err != nil {
			if IsUniqueViolation(err, "slug") {
				return fmt.Errorf("%w: %q", ErrSlugTaken, in.Organization.Slug)
			}
			return fmt.Errorf("creating organization: %w", err)
		}
		out.Organization = in.Organization

		var ownerRole *model.Role
		for _, role := range in.Roles {
			role.OrganizationID = in.Organization.ID
			if err := tx.Create(role).Error; err != nil {
				return fmt.Errorf("creating role %q: %w", role.Name, err)
			}
			if role.Name == in.OwnerRoleName {
				ownerRole = role
			}
		}
		out.Roles = in.Roles

		if ownerRole == nil {
			return fmt.Errorf("owner role %q missing from bootstrap roles", in.OwnerRoleName)
		}

		codes := make(map[string]struct{})
		for _, grant := range in.Grants {
			for _, code := range grant {
				codes[code] = struct{}{}
			}
		}
		wanted := make([]string, 0, len(codes))
		for code := range codes {
			wanted = append(wanted, code)
		}

		var perms []*model.Permission
		if err := tx.Where("code IN ?", wanted).Find(&perms).Error; err != nil {
			return fmt.Errorf("loading permission catalog: %w", err)
		}
		byCode := make(map[string]*model.Permission, len(perms))
		for _, p := range perms {
			byCode[p.Code] = p
		}
		for _, code := range wanted {
			if _, ok := byCode[code]; !ok {
				return fmt.Errorf("permission %q is not seeded", code)
			}
		}

		for _, role := range in.Roles {
			for _, code := range in.Grants[role.Name] {
				pair := model.RolePermission{RoleID: role.ID, PermissionID: byCode[code].ID}
				if err := tx.Create(&pair).Error; err != nil {
					return fmt.Errorf("granting %q to %q: %w", code, role.Name, err)
				}
				out.RolePermissions = append(out.RolePermissions, pair)
			}
		}

		membership := &model.Membership{
			OrganizationID: in.Organization.ID,
			UserID:         in.OwnerUserID,
			RoleID:         &ownerRole.ID,
			IsOwner:        true,
			Active:         true,
		}
		if err := tx.Create(membership).Error; err != nil {
			return fmt.Errorf("creating founding membership: %w", err)
		}
		out.Membership = membership

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			return nil, err
		}
		return nil, domain.Internal(err)
	}
	return &out, nil
}
