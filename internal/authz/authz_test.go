package authz_test

import (
	"context"
	"testing"

	"github.com/creatorbasehq/creatorbase/internal/authz"
	"github.com/creatorbasehq/creatorbase/internal/domain"
	"github.com/creatorbasehq/creatorbase/internal/mocks"
	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	orgID := uuid.New()
	ownerID := uuid.New()
	memberID := uuid.New()
	roleID := uuid.New()

	owner := &model.Membership{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         ownerID,
		IsOwner:        true,
		Active:         true,
	}
	member := &model.Membership{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         memberID,
		RoleID:         &roleID,
		Active:         true,
	}

	t.Run("system caller passes everything", func(t *testing.T) {
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)
		az := authz.NewAuthorizer(memberRepo, permRepo, nil)

		assert.NoError(t, az.Can(ctx, authz.Actor{}, orgID, authz.CapOrgDelete))
	})

	t.Run("owner passes owner-only capability", func(t *testing.T) {
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)
		memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, ownerID).
			Return(owner, nil)
		az := authz.NewAuthorizer(memberRepo, permRepo, nil)

		assert.NoError(t, az.Can(ctx, authz.User(ownerID), orgID, authz.CapMemberAdd))
	})

	t.Run("non-owner member fails owner-only capability", func(t *testing.T) {
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)
		memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, memberID).
			Return(member, nil)
		az := authz.NewAuthorizer(memberRepo, permRepo, nil)

		err := az.Can(ctx, authz.User(memberID), orgID, authz.CapOwnerTransfer)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})

	t.Run("member-level capability needs membership only", func(t *testing.T) {
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)
		memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, memberID).
			Return(member, nil)
		az := authz.NewAuthorizer(memberRepo, permRepo, nil)

		assert.NoError(t, az.Can(ctx, authz.User(memberID), orgID, authz.CapTaskCreate))
	})

	t.Run("permission-backed capability consults the role", func(t *testing.T) {
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)
		memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, memberID).
			Return(member, nil)
		permRepo.EXPECT().
			ListByRole(gomock.Any(), roleID).
			Return([]*model.Permission{{ID: uuid.New(), Code: model.PermOrgUpdate}}, nil)
		az := authz.NewAuthorizer(memberRepo, permRepo, nil)

		assert.NoError(t, az.Can(ctx, authz.User(memberID), orgID, authz.CapOrgUpdate))
	})

	t.Run("permission-backed capability fails without the grant", func(t *testing.T) {
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)
		memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, memberID).
			Return(member, nil)
		permRepo.EXPECT().
			ListByRole(gomock.Any(), roleID).
			Return([]*model.Permission{{ID: uuid.New(), Code: model.PermOrgView}}, nil)
		az := authz.NewAuthorizer(memberRepo, permRepo, nil)

		err := az.Can(ctx, authz.User(memberID), orgID, authz.CapOrgUpdate)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})

	t.Run("member without a role fails permission-backed capability", func(t *testing.T) {
		roleless := &model.Membership{
			ID:             uuid.New(),
			OrganizationID: orgID,
			UserID:         memberID,
			Active:         true,
		}
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)
		memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, memberID).
			Return(roleless, nil)
		az := authz.NewAuthorizer(memberRepo, permRepo, nil)

		err := az.Can(ctx, authz.User(memberID), orgID, authz.CapOrgDelete)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})

	t.Run("outsider is forbidden", func(t *testing.T) {
		outsider := uuid.New()
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)
		memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, outsider).
			Return(nil, domain.NotFound("membership not found"))
		az := authz.NewAuthorizer(memberRepo, permRepo, nil)

		err := az.Can(ctx, authz.User(outsider), orgID, authz.CapOrgView)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})

	t.Run("inactive membership is forbidden", func(t *testing.T) {
		inactive := &model.Membership{
			ID:             uuid.New(),
			OrganizationID: orgID,
			UserID:         memberID,
			IsOwner:        true,
			Active:         false,
		}
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)
		memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, memberID).
			Return(inactive, nil)
		az := authz.NewAuthorizer(memberRepo, permRepo, nil)

		err := az.Can(ctx, authz.User(memberID), orgID, authz.CapOrgView)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})
}

func TestCanTouchTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	orgID := uuid.New()
	creatorID := uuid.New()
	assigneeUserID := uuid.New()
	otherID := uuid.New()

	assigneeMembership := &model.Membership{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         assigneeUserID,
		Active:         true,
	}
	task := &model.Task{
		ID:             uuid.New(),
		OrganizationID: orgID,
		CreatedByID:    &creatorID,
		AssigneeID:     &assigneeMembership.ID,
		Title:          "cut teaser",
		Status:         model.TaskTodo,
	}

	newAuthorizer := func(m *model.Membership, userID uuid.UUID) *authz.Authorizer {
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)
		memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, userID).
			Return(m, nil)
		return authz.NewAuthorizer(memberRepo, permRepo, nil)
	}

	t.Run("creator may touch", func(t *testing.T) {
		m := &model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: creatorID, Active: true}
		az := newAuthorizer(m, creatorID)
		assert.NoError(t, az.CanTouchTask(ctx, authz.User(creatorID), task))
	})

	t.Run("assignee may touch", func(t *testing.T) {
		az := newAuthorizer(assigneeMembership, assigneeUserID)
		assert.NoError(t, az.CanTouchTask(ctx, authz.User(assigneeUserID), task))
	})

	t.Run("owner may touch", func(t *testing.T) {
		m := &model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: otherID, IsOwner: true, Active: true}
		az := newAuthorizer(m, otherID)
		assert.NoError(t, az.CanTouchTask(ctx, authz.User(otherID), task))
	})

	t.Run("unrelated member may not touch", func(t *testing.T) {
		m := &model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: otherID, Active: true}
		az := newAuthorizer(m, otherID)
		err := az.CanTouchTask(ctx, authz.User(otherID), task)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})
}

func TestCanTouchContentItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	orgID := uuid.New()
	creatorID := uuid.New()
	otherID := uuid.New()

	item := &model.ContentItem{
		ID:             uuid.New(),
		OrganizationID: orgID,
		CreatedByID:    &creatorID,
		Title:          "episode 12",
		Status:         model.ContentStatusIdea,
	}

	t.Run("creator may edit", func(t *testing.T) {
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)
		memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, creatorID).
			Return(&model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: creatorID, Active: true}, nil)
		az := authz.NewAuthorizer(memberRepo, permRepo, nil)

		assert.NoError(t, az.CanTouchContentItem(ctx, authz.User(creatorID), item))
	})

	t.Run("non-creator member may not edit", func(t *testing.T) {
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)
		memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, otherID).
			Return(&model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: otherID, Active: true}, nil)
		az := authz.NewAuthorizer(memberRepo, permRepo, nil)

		err := az.CanTouchContentItem(ctx, authz.User(otherID), item)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})
}
