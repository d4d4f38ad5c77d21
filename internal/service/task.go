// internal/service/task.go
package service

import (
	"context"
	"time"

	"github.com/creatorbasehq/creatorbase/internal/authz"
	"github.com/creatorbasehq/creatorbase/internal/domain"
	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/creatorbasehq/creatorbase/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type TaskService struct {
	taskRepo   repository.TaskRepositoryIface
	itemRepo   repository.ContentItemRepositoryIface
	memberRepo repository.MembershipRepositoryIface
	orgRepo    repository.OrganizationRepositoryIface
	authz      *authz.Authorizer
	validate   *validator.Validate
	now        func() time.Time
}

func NewTaskService(
	taskRepo repository.TaskRepositoryIface,
	itemRepo repository.ContentItemRepositoryIface,
	memberRepo repository.MembershipRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	authorizer *authz.Authorizer,
) *TaskService {
	return &TaskService{
		taskRepo:   taskRepo,
		itemRepo:   itemRepo,
		memberRepo: memberRepo,
		orgRepo:    orgRepo,
		authz:      authorizer,
		validate:   validator.New(),
		now:        time.Now,
	}
}

// applyStatus moves a task into next and keeps the lifecycle timestamps
// consistent: started_at is stamped once on first entry into an active
// status, completed_at is stamped once on entering done and cleared on
// leaving it.
func (s *TaskService) applyStatus(task *model.Task, next model.TaskStatus) {
	prev := task.Status
	task.Status = next

	switch next {
	case model.TaskTodo, model.TaskInProgress, model.TaskBlocked:
		if task.StartedAt == nil {
			now := s.now()
			task.StartedAt = &now
		}
	case model.TaskDone:
		if task.CompletedAt == nil {
			now := s.now()
			task.CompletedAt = &now
		}
	}

	if prev == model.TaskDone && next != model.TaskDone {
		task.CompletedAt = nil
	}
}

type CreateTaskInput struct {
	Title         string     `json:"title" validate:"required,min=1,max=200"`
	Description   string     `json:"description" validate:"max=5000"`
	Status        string     `json:"status" validate:"omitempty,max=40"`
	Priority      int        `json:"priority" validate:"gte=0,lte=10"`
	ContentItemID *uuid.UUID `json:"content_item_id"`
	AssigneeID    *uuid.UUID `json:"assignee_id"`
	DueAt         *time.Time `json:"due_at"`
}

func (s *TaskService) Create(ctx context.Context, actor authz.Actor, orgID uuid.UUID, input CreateTaskInput) (*model.Task, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return nil, asDomain(err)
	}

	if err := s.authz.Can(ctx, actor, orgID, authz.CapTaskCreate); err != nil {
		return nil, err
	}

	status := model.TaskTodo
	if input.Status != "" {
		status = model.NormalizeTaskStatus(input.Status)
		if !status.Valid() {
			return nil, domain.BadRequest("unknown task status %q", input.Status).
				WithFields(map[string]string{"status": "unknown"})
		}
	}

	if input.ContentItemID != nil {
		item, err := s.itemRepo.FindByID(ctx, *input.ContentItemID)
		if err != nil {
			return nil, asDomain(err)
		}
		if item.OrganizationID != orgID {
			return nil, domain.NotFound("content item not found in this organization")
		}
	}

	if input.AssigneeID != nil {
		assignee, err := s.memberRepo.FindByID(ctx, *input.AssigneeID)
		if err != nil {
			return nil, asDomain(err)
		}
		if assignee.OrganizationID != orgID {
			return nil, domain.NotFound("assignee membership not found in this organization")
		}
	}

	task := &model.Task{
		OrganizationID: orgID,
		ContentItemID:  input.ContentItemID,
		AssigneeID:     input.AssigneeID,
		Title:          input.Title,
		Description:    input.Description,
		Priority:       input.Priority,
		DueAt:          input.DueAt,
	}
	if !actor.IsSystem() {
		id := actor.UserID
		task.CreatedByID = &id
	}
	s.applyStatus(task, status)

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, asDomain(err)
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, actor authz.Actor, taskID uuid.UUID) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, asDomain(err)
	}
	if err := s.authz.Can(ctx, actor, task.OrganizationID, authz.CapTaskList); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context, actor authz.Actor, orgID uuid.UUID, pg repository.Pagination) ([]*model.Task, int64, error) {
	if err := s.authz.Can(ctx, actor, orgID, authz.CapTaskList); err != nil {
		return nil, 0, err
	}
	tasks, count, err := s.taskRepo.ListByOrganization(ctx, orgID, pg)
	if err != nil {
		return nil, 0, asDomain(err)
	}
	return tasks, count, nil
}

// ListByAssignee returns the tasks assigned to a membership, due date
// ascending.
func (s *TaskService) ListByAssignee(ctx context.Context, actor authz.Actor, orgID, membershipID uuid.UUID, pg repository.Pagination) ([]*model.Task, int64, error) {
	if err := s.authz.Can(ctx, actor, orgID, authz.CapTaskList); err != nil {
		return nil, 0, err
	}

	assignee, err := s.memberRepo.FindByID(ctx, membershipID)
	if err != nil {
		return nil, 0, asDomain(err)
	}
	if assignee.OrganizationID != orgID {
		return nil, 0, domain.NotFound("assignee membership not found in this organization")
	}

	tasks, count, err := s.taskRepo.ListByAssignee(ctx, membershipID, pg)
	if err != nil {
		return nil, 0, asDomain(err)
	}
	return tasks, count, nil
}

type UpdateTaskInput struct {
	Title         *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description   *string    `json:"description" validate:"omitempty,max=5000"`
	Status        *string    `json:"status" validate:"omitempty,max=40"`
	Priority      *int       `json:"priority" validate:"omitempty,gte=0,lte=10"`
	ContentItemID *uuid.UUID `json:"content_item_id"`
	AssigneeID    *uuid.UUID `json:"assignee_id"`
	DueAt         *time.Time `json:"due_at"`
}

// Update patches a task. Only the organization owner, the creator, or the
// assignee may mutate it.
func (s *TaskService) Update(ctx context.Context, actor authz.Actor, taskID uuid.UUID, input UpdateTaskInput) (*model.Task, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, asDomain(err)
	}

	if err := s.authz.CanTouchTask(ctx, actor, task); err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.DueAt != nil {
		task.DueAt = input.DueAt
	}

	if input.ContentItemID != nil {
		item, err := s.itemRepo.FindByID(ctx, *input.ContentItemID)
		if err != nil {
			return nil, asDomain(err)
		}
		if item.OrganizationID != task.OrganizationID {
			return nil, domain.NotFound("content item not found in this organization")
		}
		task.ContentItemID = input.ContentItemID
	}

	if input.AssigneeID != nil {
		assignee, err := s.memberRepo.FindByID(ctx, *input.AssigneeID)
		if err != nil {
			return nil, asDomain(err)
		}
		if assignee.OrganizationID != task.OrganizationID {
			return nil, domain.NotFound("assignee membership not found in this organization")
		}
		task.AssigneeID = input.AssigneeID
	}

	if input.Status != nil {
		next := model.NormalizeTaskStatus(*input.Status)
		if !next.Valid() {
			return nil, domain.BadRequest("unknown task status %q", *input.Status).
				WithFields(map[string]string{"status": "unknown"})
		}
		s.applyStatus(task, next)
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, asDomain(err)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, actor authz.Actor, taskID uuid.UUID) error {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return asDomain(err)
	}

	if err := s.authz.CanTouchTask(ctx, actor, task); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return asDomain(err)
	}
	return nil
}
