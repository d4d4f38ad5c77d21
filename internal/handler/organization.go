// internal/handler/organization.go
package handler

import (
	"net/http"

	"github.com/creatorbasehq/creatorbase/internal/service"
	"github.com/go-chi/chi/v5"
)

type OrganizationHandler struct {
	orgService   *service.OrganizationService
	auditService *service.AuditService
}

func NewOrganizationHandler(orgService *service.OrganizationService, auditService *service.AuditService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService, auditService: auditService}
}

// Onboard handles POST /users/{userID}/organizations.
func (h *OrganizationHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	var input service.CreateOrganizationInput
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.orgService.CreateForUser(r.Context(), actor, userID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, result)
}

// Create handles POST /organizations: onboarding for the session user.
func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var input service.CreateOrganizationInput
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.orgService.CreateForUser(r.Context(), actor, actor.UserID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, result)
}

func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	orgs, err := h.orgService.ListForUser(r.Context(), actor)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, orgs)
}

func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}

	org, err := h.orgService.Get(r.Context(), actor, orgID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgSlug := chi.URLParam(r, "slug")

	org, err := h.orgService.GetBySlug(r.Context(), actor, orgSlug)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}

	var input service.UpdateOrganizationInput
	if !decodeBody(w, r, &input) {
		return
	}

	org, err := h.orgService.Update(r.Context(), actor, orgID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}

	if err := h.orgService.Delete(r.Context(), actor, orgID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// AuditLogs handles GET /organizations/{orgID}/audit-logs.
func (h *OrganizationHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}

	pg := parsePagination(r)
	entries, total, err := h.auditService.List(r.Context(), actor, orgID, pg)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PaginatedResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        entries,
		Total:        total,
		Offset:       pg.Offset,
		Limit:        pg.Limit,
	})
}
