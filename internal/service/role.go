// internal/service/role.go
package service

import (
	"context"
	"strings"

	"github.com/creatorbasehq/creatorbase/internal/authz"
	"github.com/creatorbasehq/creatorbase/internal/domain"
	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/creatorbasehq/creatorbase/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type RoleService struct {
	roleRepo repository.RoleRepositoryIface
	permRepo repository.PermissionRepositoryIface
	orgRepo  repository.OrganizationRepositoryIface
	authz    *authz.Authorizer
	validate *validator.Validate
}

func NewRoleService(
	roleRepo repository.RoleRepositoryIface,
	permRepo repository.PermissionRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	authorizer *authz.Authorizer,
) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		permRepo: permRepo,
		orgRepo:  orgRepo,
		authz:    authorizer,
		validate: validator.New(),
	}
}

type CreateRoleInput struct {
	Name        string `json:"name" validate:"required,min=2,max=80"`
	Description string `json:"description" validate:"max=500"`
	IsBuiltin   bool   `json:"is_builtin"`
}

func (s *RoleService) Create(ctx context.Context, actor authz.Actor, orgID uuid.UUID, input CreateRoleInput) (*model.Role, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return nil, asDomain(err)
	}

	if err := s.authz.Can(ctx, actor, orgID, authz.CapRoleCreate); err != nil {
		return nil, err
	}

	role := &model.Role{
		OrganizationID: orgID,
		Name:           input.Name,
		Description:    input.Description,
		IsBuiltin:      input.IsBuiltin,
	}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, asDomain(err)
	}
	return role, nil
}

// CreateBatch validates the payload against itself before touching store
// state: a case-insensitive duplicate inside the payload is a BadRequest
// naming the duplicate, while collisions with existing roles are a single
// Conflict listing every colliding name.
func (s *RoleService) CreateBatch(ctx context.Context, actor authz.Actor, orgID uuid.UUID, inputs []CreateRoleInput) ([]*model.Role, error) {
	if len(inputs) == 0 {
		return nil, domain.BadRequest("empty role batch")
	}

	seen := make(map[string]string, len(inputs))
	names := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if err := s.validate.Struct(input); err != nil {
			return nil, invalidInput(err)
		}
		key := strings.ToLower(input.Name)
		if _, dup := seen[key]; dup {
			return nil, domain.BadRequest("duplicate role name %q in payload", input.Name).
				WithDetails(input.Name)
		}
		seen[key] = input.Name
		names = append(names, input.Name)
	}

	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return nil, asDomain(err)
	}

	if err := s.authz.Can(ctx, actor, orgID, authz.CapRoleCreate); err != nil {
		return nil, err
	}

	existing, err := s.roleRepo.FindExistingNames(ctx, orgID, names)
	if err != nil {
		return nil, asDomain(err)
	}
	if len(existing) > 0 {
		return nil, domain.Conflict("roles already exist: %s", strings.Join(existing, ", ")).
			WithDetails(existing...)
	}

	roles := make([]*model.Role, len(inputs))
	for i, input := range inputs {
		roles[i] = &model.Role{
			OrganizationID: orgID,
			Name:           input.Name,
			Description:    input.Description,
			IsBuiltin:      input.IsBuiltin,
		}
	}
	if err := s.roleRepo.CreateBatch(ctx, roles); err != nil {
		return nil, asDomain(err)
	}
	return roles, nil
}

func (s *RoleService) Get(ctx context.Context, actor authz.Actor, orgID, roleID uuid.UUID) (*model.Role, error) {
	if err := s.authz.Can(ctx, actor, orgID, authz.CapRoleList); err != nil {
		return nil, err
	}
	role, err := s.roleInOrg(ctx, orgID, roleID)
	if err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) List(ctx context.Context, actor authz.Actor, orgID uuid.UUID, pg repository.Pagination) ([]*model.Role, int64, error) {
	if err := s.authz.Can(ctx, actor, orgID, authz.CapRoleList); err != nil {
		return nil, 0, err
	}
	roles, count, err := s.roleRepo.ListByOrganization(ctx, orgID, pg)
	if err != nil {
		return nil, 0, asDomain(err)
	}
	return roles, count, nil
}

type UpdateRoleInput struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=80"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsBuiltin   *bool   `json:"is_builtin"`
}

func (s *RoleService) Update(ctx context.Context, actor authz.Actor, orgID, roleID uuid.UUID, input UpdateRoleInput) (*model.Role, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	role, err := s.roleInOrg(ctx, orgID, roleID)
	if err != nil {
		return nil, err
	}

	if err := s.authz.Can(ctx, actor, orgID, authz.CapRoleUpdate); err != nil {
		return nil, err
	}

	if input.IsBuiltin != nil && role.IsBuiltin && !*input.IsBuiltin {
		return nil, domain.Forbidden("builtin roles cannot be downgraded")
	}

	if input.Name != nil && !strings.EqualFold(*input.Name, role.Name) {
		existing, err := s.roleRepo.FindExistingNames(ctx, orgID, []string{*input.Name})
		if err != nil {
			return nil, asDomain(err)
		}
		if len(existing) > 0 {
			return nil, domain.Conflict("role %q already exists in this organization", *input.Name)
		}
		role.Name = *input.Name
	} else if input.Name != nil {
		role.Name = *input.Name
	}

	if input.Description != nil {
		role.Description = *input.Description
	}
	if input.IsBuiltin != nil {
		role.IsBuiltin = *input.IsBuiltin
	}

	if err := s.roleRepo.Update(ctx, role); err != nil {
		return nil, asDomain(err)
	}
	return role, nil
}

func (s *RoleService) Delete(ctx context.Context, actor authz.Actor, orgID, roleID uuid.UUID) error {
	role, err := s.roleInOrg(ctx, orgID, roleID)
	if err != nil {
		return err
	}

	if err := s.authz.Can(ctx, actor, orgID, authz.CapRoleDelete); err != nil {
		return err
	}

	if role.IsBuiltin {
		return domain.Forbidden("builtin roles cannot be deleted")
	}

	if err := s.roleRepo.Delete(ctx, roleID); err != nil {
		return asDomain(err)
	}
	return nil
}

func (s *RoleService) ListPermissions(ctx context.Context, actor authz.Actor, orgID, roleID uuid.UUID) ([]*model.Permission, error) {
	if err := s.authz.Can(ctx, actor, orgID, authz.CapRoleList); err != nil {
		return nil, err
	}
	if _, err := s.roleInOrg(ctx, orgID, roleID); err != nil {
		return nil, err
	}
	perms, err := s.permRepo.ListByRole(ctx, roleID)
	if err != nil {
		return nil, asDomain(err)
	}
	return perms, nil
}

func (s *RoleService) AssignPermission(ctx context.Context, actor authz.Actor, orgID, roleID, permissionID uuid.UUID) error {
	if _, err := s.roleInOrg(ctx, orgID, roleID); err != nil {
		return err
	}

	if err := s.authz.Can(ctx, actor, orgID, authz.CapPermissionAssign); err != nil {
		return err
	}

	if _, err := s.permRepo.FindByID(ctx, permissionID); err != nil {
		return asDomain(err)
	}

	if err := s.permRepo.Assign(ctx, roleID, permissionID); err != nil {
		return asDomain(err)
	}
	return nil
}

// AssignPermissionsBatch inserts only the permissions not yet assigned.
// Payload-internal duplicates are a BadRequest, unknown ids a NotFound
// listing them, and an empty delta a Conflict.
func (s *RoleService) AssignPermissionsBatch(ctx context.Context, actor authz.Actor, orgID, roleID uuid.UUID, permissionIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(permissionIDs) == 0 {
		return nil, domain.BadRequest("empty permission batch")
	}

	seen := make(map[uuid.UUID]struct{}, len(permissionIDs))
	for _, id := range permissionIDs {
		if _, dup := seen[id]; dup {
			return nil, domain.BadRequest("duplicate permission id %s in payload", id).
				WithDetails(id.String())
		}
		seen[id] = struct{}{}
	}

	if _, err := s.roleInOrg(ctx, orgID, roleID); err != nil {
		return nil, err
	}

	if err := s.authz.Can(ctx, actor, orgID, authz.CapPermissionAssign); err != nil {
		return nil, err
	}

	found, err := s.permRepo.FindByIDs(ctx, permissionIDs)
	if err != nil {
		return nil, asDomain(err)
	}
	if len(found) != len(permissionIDs) {
		known := make(map[uuid.UUID]struct{}, len(found))
		for _, p := range found {
			known[p.ID] = struct{}{}
		}
		var missing []string
		for _, id := range permissionIDs {
			if _, ok := known[id]; !ok {
				missing = append(missing, id.String())
			}
		}
		return nil, domain.NotFound("permissions not found: %s", strings.Join(missing, ", ")).
			WithDetails(missing...)
	}

	assigned, err := s.permRepo.AssignedIDs(ctx, roleID)
	if err != nil {
		return nil, asDomain(err)
	}
	have := make(map[uuid.UUID]struct{}, len(assigned))
	for _, id := range assigned {
		have[id] = struct{}{}
	}

	var delta []uuid.UUID
	for _, id := range permissionIDs {
		if _, ok := have[id]; !ok {
			delta = append(delta, id)
		}
	}
	if len(delta) == 0 {
		return nil, domain.Conflict("all requested permissions are already assigned")
	}

	if err := s.permRepo.AssignBatch(ctx, roleID, delta); err != nil {
		return nil, asDomain(err)
	}
	return delta, nil
}

func (s *RoleService) RemovePermission(ctx context.Context, actor authz.Actor, orgID, roleID, permissionID uuid.UUID) error {
	if _, err := s.roleInOrg(ctx, orgID, roleID); err != nil {
		return err
	}

	if err := s.authz.Can(ctx, actor, orgID, authz.CapPermissionRemove); err != nil {
		return err
	}

	if err := s.permRepo.Remove(ctx, roleID, permissionID); err != nil {
		return asDomain(err)
	}
	return nil
}

// roleInOrg resolves a role and cross-checks its organization scope, so a
// role id from another organization reads as absent.
// PermissionCatalog returns every seeded permission. The catalog is global,
// so any authenticated caller may read it; grants gate usage, not
// visibility.
func (s *RoleService) PermissionCatalog(ctx context.Context, actor authz.Actor) ([]*model.Permission, error) {
	if actor.IsSystem() {
		return nil, domain.Unauthorized("authentication required")
	}
	perms, err := s.permRepo.List(ctx)
	if err != nil {
		return nil, asDomain(err)
	}
	return perms, nil
}

func (s *RoleService) roleInOrg(ctx context.Context, orgID, roleID uuid.UUID) (*model.Role, error) {
	role, err := s.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		return nil, asDomain(err)
	}
	if role.OrganizationID != orgID {
		return nil, domain.NotFound("role not found in this organization")
	}
	return role, nil
}
