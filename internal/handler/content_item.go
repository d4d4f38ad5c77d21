// internal/handler/content_item.go
package handler

import (
	"net/http"

	"github.com/creatorbasehq/creatorbase/internal/service"
)

type ContentItemHandler struct {
	itemService *service.ContentItemService
}

func NewContentItemHandler(itemService *service.ContentItemService) *ContentItemHandler {
	return &ContentItemHandler{itemService: itemService}
}

func (h *ContentItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}

	var input service.CreateContentItemInput
	if !decodeBody(w, r, &input) {
		return
	}

	item, err := h.itemService.Create(r.Context(), actor, orgID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, item)
}

func (h *ContentItemHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}

	pg := parsePagination(r)
	items, total, err := h.itemService.List(r.Context(), actor, orgID, pg)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PaginatedResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        items,
		Total:        total,
		Offset:       pg.Offset,
		Limit:        pg.Limit,
	})
}

func (h *ContentItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.itemService.Get(r.Context(), actor, itemID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, item)
}

func (h *ContentItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var input service.UpdateContentItemInput
	if !decodeBody(w, r, &input) {
		return
	}

	item, err := h.itemService.Update(r.Context(), actor, itemID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, item)
}

func (h *ContentItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.itemService.Delete(r.Context(), actor, itemID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
