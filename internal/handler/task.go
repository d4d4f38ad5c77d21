// internal/handler/task.go
package handler

import (
	"net/http"

	"github.com/creatorbasehq/creatorbase/internal/service"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}

	var input service.CreateTaskInput
	if !decodeBody(w, r, &input) {
		return
	}

	task, err := h.taskService.Create(r.Context(), actor, orgID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, task)
}

// List handles GET /organizations/{orgID}/tasks, optionally filtered by the
// assignee query parameter (a membership id).
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	orgID, ok := pathUUID(w, r, "orgID")
	if !ok {
		return
	}

	pg := parsePagination(r)

	if raw := r.URL.Query().Get("assignee"); raw != "" {
		assigneeID, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid assignee")
			return
		}
		tasks, total, err := h.taskService.ListByAssignee(r.Context(), actor, orgID, assigneeID, pg)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, PaginatedResponse{
			BaseResponse: BaseResponse{Ok: true},
			Items:        tasks,
			Total:        total,
			Offset:       pg.Offset,
			Limit:        pg.Limit,
		})
		return
	}

	tasks, total, err := h.taskService.List(r.Context(), actor, orgID, pg)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PaginatedResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        tasks,
		Total:        total,
		Offset:       pg.Offset,
		Limit:        pg.Limit,
	})
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	taskID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Get(r.Context(), actor, taskID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	taskID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var input service.UpdateTaskInput
	if !decodeBody(w, r, &input) {
		return
	}

	task, err := h.taskService.Update(r.Context(), actor, taskID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	taskID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), actor, taskID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
