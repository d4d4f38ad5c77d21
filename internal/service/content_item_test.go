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

type contentFixture struct {
	itemRepo   *mocks.MockContentItemRepositoryIface
	orgRepo    *mocks.MockOrganizationRepositoryIface
	memberRepo *mocks.MockMembershipRepositoryIface
	svc        *service.ContentItemService
}

func newContentFixture(ctrl *gomock.Controller) *contentFixture {
	f := &contentFixture{
		itemRepo:   mocks.NewMockContentItemRepositoryIface(ctrl),
		orgRepo:    mocks.NewMockOrganizationRepositoryIface(ctrl),
		memberRepo: mocks.NewMockMembershipRepositoryIface(ctrl),
	}
	permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)
	f.svc = service.NewContentItemService(
		f.itemRepo, f.orgRepo,
		authz.NewAuthorizer(f.memberRepo, permRepo, nil),
	)
	return f
}

func TestContentItemCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	orgID := uuid.New()
	creatorID := uuid.New()
	ownerID := uuid.New()

	member := &model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: creatorID, Active: true}
	owner := &model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: ownerID, IsOwner: true, Active: true}

	t.Run("defaults to idea and private", func(t *testing.T) {
		f := newContentFixture(ctrl)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(&model.Organization{ID: orgID}, nil)
		f.memberRepo.EXPECT().FindByOrgAndUser(gomock.Any(), orgID, creatorID).Return(member, nil)
		f.itemRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		item, err := f.svc.Create(ctx, authz.User(creatorID), orgID, service.CreateContentItemInput{
			Title: "episode 12",
		})

		require.NoError(t, err)
		assert.Equal(t, model.ContentStatusIdea, item.Status)
		assert.Equal(t, model.ContentVisibilityPrivate, item.Visibility)
		require.NotNil(t, item.CreatedByID)
		assert.Equal(t, creatorID, *item.CreatedByID)
		assert.Nil(t, item.PublishedAt)
	})

	t.Run("published alias is normalized and stamped by the owner", func(t *testing.T) {
		f := newContentFixture(ctrl)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(&model.Organization{ID: orgID}, nil)
		// One membership lookup for create, one for the publish gate.
		f.memberRepo.EXPECT().FindByOrgAndUser(gomock.Any(), orgID, ownerID).Return(owner, nil).Times(2)
		f.itemRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		item, err := f.svc.Create(ctx, authz.User(ownerID), orgID, service.CreateContentItemInput{
			Title:  "episode 12",
			Status: "published",
		})

		require.NoError(t, err)
		assert.Equal(t, model.ContentStatusPublicado, item.Status)
		assert.NotNil(t, item.PublishedAt)
	})

	t.Run("non-owner member may not create published", func(t *testing.T) {
		f := newContentFixture(ctrl)

		f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(&model.Organization{ID: orgID}, nil)
		f.memberRepo.EXPECT().FindByOrgAndUser(gomock.Any(), orgID, creatorID).Return(member, nil).Times(2)

		_, err := f.svc.Create(ctx, authz.User(creatorID), orgID, service.CreateContentItemInput{
			Title:  "episode 12",
			Status: "publicado",
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})
}

func TestContentItemUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	orgID := uuid.New()
	creatorID := uuid.New()
	ownerID := uuid.New()
	itemID := uuid.New()

	owner := &model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: ownerID, IsOwner: true, Active: true}

	t.Run("creator edits their own item", func(t *testing.T) {
		f := newContentFixture(ctrl)
		item := &model.ContentItem{ID: itemID, OrganizationID: orgID, CreatedByID: &creatorID, Title: "draft", Status: model.ContentStatusIdea}

		f.itemRepo.EXPECT().FindByID(gomock.Any(), itemID).Return(item, nil)
		f.memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, creatorID).
			Return(&model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: creatorID, Active: true}, nil)
		f.itemRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		title := "script v2"
		status := model.ContentStatusRoteiro
		updated, err := f.svc.Update(ctx, authz.User(creatorID), itemID, service.UpdateContentItemInput{
			Title:  &title,
			Status: &status,
		})

		require.NoError(t, err)
		assert.Equal(t, "script v2", updated.Title)
		assert.Equal(t, model.ContentStatusRoteiro, updated.Status)
		assert.Nil(t, updated.PublishedAt)
	})

	t.Run("first publish stamps published_at once", func(t *testing.T) {
		f := newContentFixture(ctrl)
		item := &model.ContentItem{ID: itemID, OrganizationID: orgID, CreatedByID: &creatorID, Title: "ready", Status: model.ContentStatusPronto}

		f.itemRepo.EXPECT().FindByID(gomock.Any(), itemID).Return(item, nil)
		// Once for the edit permission, once for the publish gate.
		f.memberRepo.EXPECT().FindByOrgAndUser(gomock.Any(), orgID, ownerID).Return(owner, nil).Times(2)
		f.itemRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		status := "published"
		updated, err := f.svc.Update(ctx, authz.User(ownerID), itemID, service.UpdateContentItemInput{
			Status: &status,
		})

		require.NoError(t, err)
		assert.Equal(t, model.ContentStatusPublicado, updated.Status)
		assert.NotNil(t, updated.PublishedAt)
	})

	t.Run("republishing keeps the original timestamp", func(t *testing.T) {
		f := newContentFixture(ctrl)
		publishedAt := time.Now().Add(-24 * time.Hour)
		item := &model.ContentItem{
			ID:             itemID,
			OrganizationID: orgID,
			CreatedByID:    &creatorID,
			Title:          "live",
			Status:         model.ContentStatusArquivado,
			PublishedAt:    &publishedAt,
		}

		f.itemRepo.EXPECT().FindByID(gomock.Any(), itemID).Return(item, nil)
		f.memberRepo.EXPECT().FindByOrgAndUser(gomock.Any(), orgID, ownerID).Return(owner, nil).Times(2)
		f.itemRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		status := model.ContentStatusPublicado
		updated, err := f.svc.Update(ctx, authz.User(ownerID), itemID, service.UpdateContentItemInput{
			Status: &status,
		})

		require.NoError(t, err)
		require.NotNil(t, updated.PublishedAt)
		assert.Equal(t, publishedAt, *updated.PublishedAt)
	})

	t.Run("creator may not publish", func(t *testing.T) {
		f := newContentFixture(ctrl)
		item := &model.ContentItem{ID: itemID, OrganizationID: orgID, CreatedByID: &creatorID, Title: "ready", Status: model.ContentStatusPronto}

		f.itemRepo.EXPECT().FindByID(gomock.Any(), itemID).Return(item, nil)
		f.memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, creatorID).
			Return(&model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: creatorID, Active: true}, nil).
			Times(2)

		status := "published"
		_, err := f.svc.Update(ctx, authz.User(creatorID), itemID, service.UpdateContentItemInput{
			Status: &status,
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})
}

func TestContentItemDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	orgID := uuid.New()
	creatorID := uuid.New()
	itemID := uuid.New()

	item := &model.ContentItem{ID: itemID, OrganizationID: orgID, CreatedByID: &creatorID, Title: "draft"}

	t.Run("creator may not delete", func(t *testing.T) {
		f := newContentFixture(ctrl)

		f.itemRepo.EXPECT().FindByID(gomock.Any(), itemID).Return(item, nil)
		f.memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, creatorID).
			Return(&model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: creatorID, Active: true}, nil)

		err := f.svc.Delete(ctx, authz.User(creatorID), itemID)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})

	t.Run("owner deletes", func(t *testing.T) {
		f := newContentFixture(ctrl)
		ownerID := uuid.New()

		f.itemRepo.EXPECT().FindByID(gomock.Any(), itemID).Return(item, nil)
		f.memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, ownerID).
			Return(&model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: ownerID, IsOwner: true, Active: true}, nil)
		f.itemRepo.EXPECT().Delete(gomock.Any(), itemID).Return(nil)

		assert.NoError(t, f.svc.Delete(ctx, authz.User(ownerID), itemID))
	})
}
