// internal/handler/role.go
package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/creatorbasehq/creatorbase/internal/service"
	"github.com/google/uuid"
)

type RoleHandler struct {
	roleService *service.RoleService
}

func NewRoleHandler(roleService *service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// Create handles POST /organizations/{orgID}/roles. The body may be a
// single role object or an array for batch creation.
func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var inputs []service.CreateRoleInput
		if err := json.Unmarshal(body, &inputs); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		roles, err := h.roleService.CreateBatch(r.Context(), actor, orgID, inputs)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, roles)
		return
	}

	var input service.CreateRoleInput
	if err := json.Unmarshal(body, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	role, err := h.roleService.Create(r.Context(), actor, orgID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, role)
}

func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}

	pg := parsePagination(r)
	roles, total, err := h.roleService.List(r.Context(), actor, orgID, pg)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PaginatedResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        roles,
		Total:        total,
		Offset:       pg.Offset,
		Limit:        pg.Limit,
	})
}

func (h *RoleHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}
	roleID, ok := pathUUID(w, r, "roleID")
	if !ok {
		return
	}

	role, err := h.roleService.Get(r.Context(), actor, orgID, roleID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, role)
}

func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}
	roleID, ok := pathUUID(w, r, "roleID")
	if !ok {
		return
	}

	var input service.UpdateRoleInput
	if !decodeBody(w, r, &input) {
		return
	}

	role, err := h.roleService.Update(r.Context(), actor, orgID, roleID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, role)
}

func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}
	roleID, ok := pathUUID(w, r, "roleID")
	if !ok {
		return
	}

	if err := h.roleService.Delete(r.Context(), actor, orgID, roleID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *RoleHandler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}
	roleID, ok := pathUUID(w, r, "roleID")
	if !ok {
		return
	}

	perms, err := h.roleService.ListPermissions(r.Context(), actor, orgID, roleID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, perms)
}

// PermissionCatalog handles GET /permissions, the global seeded catalog.
func (h *RoleHandler) PermissionCatalog(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	perms, err := h.roleService.PermissionCatalog(r.Context(), actor)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, perms)
}

type assignPermissionInput struct {
	PermissionID uuid.UUID `json:"permission_id"`
}

// AssignPermissions handles POST .../roles/{roleID}/permissions. The body
// may be a single {permission_id} object or an array of them.
func (h *RoleHandler) AssignPermissions(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}
	roleID, ok := pathUUID(w, r, "roleID")
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var inputs []assignPermissionInput
		if err := json.Unmarshal(body, &inputs); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		ids := make([]uuid.UUID, len(inputs))
		for i, in := range inputs {
			ids[i] = in.PermissionID
		}
		assigned, err := h.roleService.AssignPermissionsBatch(r.Context(), actor, orgID, roleID, ids)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "assigned": assigned})
		return
	}

	var input assignPermissionInput
	if err := json.Unmarshal(body, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.roleService.AssignPermission(r.Context(), actor, orgID, roleID, input.PermissionID); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, BaseResponse{Ok: true})
}

func (h *RoleHandler) RemovePermission(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}
	roleID, ok := pathUUID(w, r, "roleID")
	if !ok {
		return
	}
	permissionID, ok := pathUUID(w, r, "permissionID")
	if !ok {
		return
	}

	if err := h.roleService.RemovePermission(r.Context(), actor, orgID, roleID, permissionID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
