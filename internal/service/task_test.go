package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/creatorbasehq/creatorbase/internal/authz"
	"github.com/creatorbasehq/creatorbase/internal/domain"
	"github.com/creatorbasehq/creatorbase/internal/mocks"
	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/creatorbasehq/creatorbase/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type taskFixture struct {
	taskRepo   *mocks.MockTaskRepositoryIface
	itemRepo   *mocks.MockContentItemRepositoryIface
	memberRepo *mocks.MockMembershipRepositoryIface
	orgRepo    *mocks.MockOrganizationRepositoryIface
	svc        *service.TaskService
}

func newTaskFixture(ctrl *gomock.Controller) *taskFixture {
	f := &taskFixture{
		taskRepo:   mocks.NewMockTaskRepositoryIface(ctrl),
		itemRepo:   mocks.NewMockContentItemRepositoryIface(ctrl),
		memberRepo: mocks.NewMockMembershipRepositoryIface(ctrl),
		orgRepo:    mocks.NewMockOrganizationRepositoryIface(ctrl),
	}
	permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)
	f.svc = service.NewTaskService(
		f.taskRepo, f.itemRepo, f.memberRepo, f.orgRepo,
		authz.NewAuthorizer(f.memberRepo, permRepo, nil),
	)
	return f
}

func (f *taskFixture) expectMember(orgID, userID uuid.UUID) *model.Membership {
	m := &model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: userID, Active: true}
	f.memberRepo.EXPECT().FindByOrgAndUser(gomock.Any(), orgID, userID).Return(m, nil)
	return m
}

func TestTaskCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	orgID := uuid.New()
	creatorID := uuid.New()

	t.Run("legacy status alias is normalized and stamps started_at", func(t *testing.T) {
		f := newTaskFixture(ctrl)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(&model.Organization{ID: orgID}, nil)
		f.expectMember(orgID, creatorID)
		f.taskRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		task, err := f.svc.Create(ctx, authz.User(creatorID), orgID, service.CreateTaskInput{
			Title:  "record intro",
			Status: "started",
		})

		require.NoError(t, err)
		assert.Equal(t, model.TaskInProgress, task.Status)
		require.NotNil(t, task.StartedAt)
		assert.Nil(t, task.CompletedAt)
		require.NotNil(t, task.CreatedByID)
		assert.Equal(t, creatorID, *task.CreatedByID)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		f := newTaskFixture(ctrl)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(&model.Organization{ID: orgID}, nil)
		f.expectMember(orgID, creatorID)

		_, err := f.svc.Create(ctx, authz.User(creatorID), orgID, service.CreateTaskInput{
			Title:  "record intro",
			Status: "paused",
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindBadRequest))
	})

	t.Run("assignee must belong to the organization", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		foreignAssignee := uuid.New()

		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(&model.Organization{ID: orgID}, nil)
		f.expectMember(orgID, creatorID)
		f.memberRepo.EXPECT().
			FindByID(gomock.Any(), foreignAssignee).
			Return(&model.Membership{ID: foreignAssignee, OrganizationID: uuid.New(), Active: true}, nil)

		_, err := f.svc.Create(ctx, authz.User(creatorID), orgID, service.CreateTaskInput{
			Title:      "record intro",
			AssigneeID: &foreignAssignee,
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})

	t.Run("content item must belong to the organization", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		foreignItem := uuid.New()

		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(&model.Organization{ID: orgID}, nil)
		f.expectMember(orgID, creatorID)
		f.itemRepo.EXPECT().
			FindByID(gomock.Any(), foreignItem).
			Return(&model.ContentItem{ID: foreignItem, OrganizationID: uuid.New()}, nil)

		_, err := f.svc.Create(ctx, authz.User(creatorID), orgID, service.CreateTaskInput{
			Title:         "record intro",
			ContentItemID: &foreignItem,
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})
}

func TestTaskStatusTimestamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	orgID := uuid.New()
	creatorID := uuid.New()
	taskID := uuid.New()

	t.Run("entering done stamps completed_at", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		started := time.Now().Add(-time.Hour)
		task := &model.Task{
			ID:             taskID,
			OrganizationID: orgID,
			CreatedByID:    &creatorID,
			Title:          "edit episode",
			Status:         model.TaskInProgress,
			StartedAt:      &started,
		}

		f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(task, nil)
		f.expectMember(orgID, creatorID)
		f.taskRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		status := "completed"
		updated, err := f.svc.Update(ctx, authz.User(creatorID), taskID, service.UpdateTaskInput{
			Status: &status,
		})

		require.NoError(t, err)
		assert.Equal(t, model.TaskDone, updated.Status)
		require.NotNil(t, updated.CompletedAt)
		require.NotNil(t, updated.StartedAt)
		assert.Equal(t, started, *updated.StartedAt, "reaching done must not restamp started_at")
	})

	t.Run("leaving done clears completed_at and keeps started_at", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		started := time.Now().Add(-2 * time.Hour)
		completed := time.Now().Add(-time.Hour)
		task := &model.Task{
			ID:             taskID,
			OrganizationID: orgID,
			CreatedByID:    &creatorID,
			Title:          "edit episode",
			Status:         model.TaskDone,
			StartedAt:      &started,
			CompletedAt:    &completed,
		}

		f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(task, nil)
		f.expectMember(orgID, creatorID)
		f.taskRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		status := "todo"
		updated, err := f.svc.Update(ctx, authz.User(creatorID), taskID, service.UpdateTaskInput{
			Status: &status,
		})

		require.NoError(t, err)
		assert.Equal(t, model.TaskTodo, updated.Status)
		assert.Nil(t, updated.CompletedAt)
		require.NotNil(t, updated.StartedAt)
		assert.Equal(t, started, *updated.StartedAt)
	})

	t.Run("re-entering done does not restamp completed_at", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		completed := time.Now().Add(-time.Hour)
		task := &model.Task{
			ID:             taskID,
			OrganizationID: orgID,
			CreatedByID:    &creatorID,
			Title:          "edit episode",
			Status:         model.TaskDone,
			CompletedAt:    &completed,
		}

		f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(task, nil)
		f.expectMember(orgID, creatorID)
		f.taskRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		status := "done"
		updated, err := f.svc.Update(ctx, authz.User(creatorID), taskID, service.UpdateTaskInput{
			Status: &status,
		})

		require.NoError(t, err)
		require.NotNil(t, updated.CompletedAt)
		assert.Equal(t, completed, *updated.CompletedAt)
	})
}

func TestTaskTouchRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	orgID := uuid.New()
	creatorID := uuid.New()
	taskID := uuid.New()

	task := &model.Task{
		ID:             taskID,
		OrganizationID: orgID,
		CreatedByID:    &creatorID,
		Title:          "edit episode",
		Status:         model.TaskTodo,
	}

	t.Run("unrelated member may not update", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		bystanderID := uuid.New()

		f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(task, nil)
		f.expectMember(orgID, bystanderID)

		title := "hijacked"
		_, err := f.svc.Update(ctx, authz.User(bystanderID), taskID, service.UpdateTaskInput{
			Title: &title,
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})

	t.Run("assignee may delete", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		assigneeUserID := uuid.New()
		assigneeMembership := &model.Membership{
			ID:             uuid.New(),
			OrganizationID: orgID,
			UserID:         assigneeUserID,
			Active:         true,
		}
		assigned := &model.Task{
			ID:             taskID,
			OrganizationID: orgID,
			CreatedByID:    &creatorID,
			AssigneeID:     &assigneeMembership.ID,
			Title:          "edit episode",
			Status:         model.TaskTodo,
		}

		f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(assigned, nil)
		f.memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, assigneeUserID).
			Return(assigneeMembership, nil)
		f.taskRepo.EXPECT().Delete(gomock.Any(), taskID).Return(nil)

		assert.NoError(t, f.svc.Delete(ctx, authz.User(assigneeUserID), taskID))
	})
}
