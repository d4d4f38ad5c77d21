// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/creatorbasehq/creatorbase/internal/authz"
	"github.com/creatorbasehq/creatorbase/internal/domain"
	"github.com/creatorbasehq/creatorbase/internal/middleware"
	"github.com/creatorbasehq/creatorbase/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	BaseResponse
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
	Details []string          `json:"details,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

type PaginatedResponse struct {
	BaseResponse
	Items  any   `json:"items"`
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithDomainError maps a service error onto the transport status
// codes. Anything unclassified is logged and returned as a generic 500.
func respondWithDomainError(w http.ResponseWriter, err error) {
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind == domain.KindInternal {
		slog.Error("internal error", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	status := http.StatusInternalServerError
	switch de.Kind {
	case domain.KindBadRequest:
		status = http.StatusBadRequest
	case domain.KindUnauthorized:
		status = http.StatusUnauthorized
	case domain.KindForbidden:
		status = http.StatusForbidden
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		status = http.StatusConflict
	}

	respondWithJSON(w, status, ErrorResponse{
		Error:   de.Message,
		Fields:  de.Fields,
		Details: de.Details,
	})
}

// actorFromRequest builds the acting identity from the session middleware.
// Anonymous requests produce ok=false; callers decide whether that is a 401
// or an allowed anonymous path.
func actorFromRequest(r *http.Request) (authz.Actor, bool) {
	userID, ok := middleware.SessionUserID(r.Context())
	if !ok {
		return authz.Actor{}, false
	}
	return authz.User(userID), true
}

// requireActor responds 401 and returns false when the request carries no
// session identity.
func requireActor(w http.ResponseWriter, r *http.Request) (authz.Actor, bool) {
	actor, ok := actorFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return authz.Actor{}, false
	}
	return actor, true
}

// pathUUID parses a uuid URL parameter, responding 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads offset/limit query parameters.
func parsePagination(r *http.Request) repository.Pagination {
	var pg repository.Pagination
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil {
		pg.Offset = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		pg.Limit = v
	}
	return pg
}

// decodeBody parses a JSON request body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
