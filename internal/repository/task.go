// internal/repository/task.go
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

type TaskRepositoryIface interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, pg Pagination) ([]*model.Task, int64, error)
	ListByAssignee(ctx context.Context, assigneeID uuid.UUID, pg Pagination) ([]*model.Task, int64, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("creating task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("task not found")
		}
		return nil, fmt.Errorf("finding task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID, pg Pagination) ([]*model.Task, int64, error) {
	pg = pg.normalized()

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting tasks: %w", err)
	}

	var tasks []*model.Task
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&tasks).Error; err != nil {
		return nil, 0, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, count, nil
}

// ListByAssignee orders by due date ascending, soonest first, tasks without
// a due date last.
func (r *TaskRepository) ListByAssignee(ctx context.Context, assigneeID uuid.UUID, pg Pagination) ([]*model.Task, int64, error) {
	pg = pg.normalized()

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("assignee_id = ?", assigneeID).
		Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting tasks: %w", err)
	}

	var tasks []*model.Task
	if err := r.db.WithContext(ctx).
		Where("assignee_id = ?", assigneeID).
		Order("due_at ASC NULLS LAST").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&tasks).Error; err != nil {
		return nil, 0, fmt.Errorf("listing tasks by assignee: %w", err)
	}
	return tasks, count, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}
