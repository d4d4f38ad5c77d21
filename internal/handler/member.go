// internal/handler/member.go
package handler

import (
	"net/http"

	"github.com/creatorbasehq/creatorbase/internal/service"
)

type MemberHandler struct {
	memberService *service.MemberService
}

func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

func (h *MemberHandler) Add(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}

	var input service.AddMemberInput
	if !decodeBody(w, r, &input) {
		return
	}

	membership, err := h.memberService.Add(r.Context(), actor, orgID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, membership)
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}

	pg := parsePagination(r)
	members, total, err := h.memberService.List(r.Context(), actor, orgID, pg)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PaginatedResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        members,
		Total:        total,
		Offset:       pg.Offset,
		Limit:        pg.Limit,
	})
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	membership, err := h.memberService.Get(r.Context(), actor, orgID, userID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, membership)
}

func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	var input service.UpdateMemberInput
	if !decodeBody(w, r, &input) {
		return
	}

	membership, err := h.memberService.Update(r.Context(), actor, orgID, userID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, membership)
}

func (h *MemberHandler) Remove(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	if err := h.memberService.Remove(r.Context(), actor, orgID, userID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// TransferOwnership handles POST /organizations/{orgID}/ownership-transfers.
func (h *MemberHandler) TransferOwnership(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}

	var input service.TransferOwnershipInput
	if !decodeBody(w, r, &input) {
		return
	}

	if err := h.memberService.TransferOwnership(r.Context(), actor, orgID, input); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
