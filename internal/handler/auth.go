// internal/handler/auth.go
package handler

import (
	"net/http"

	"github.com/creatorbasehq/creatorbase/internal/service"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type SessionResponse struct {
	BaseResponse
	*service.SessionOutput
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if !decodeBody(w, r, &input) {
		return
	}

	out, err := h.userService.Signup(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, SessionResponse{BaseResponse{Ok: true}, out})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if !decodeBody(w, r, &input) {
		return
	}

	out, err := h.userService.Login(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SessionResponse{BaseResponse{Ok: true}, out})
}
