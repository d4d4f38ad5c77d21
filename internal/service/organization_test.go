package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/creatorbasehq/creatorbase/internal/authz"
	"github.com/creatorbasehq/creatorbase/internal/domain"
	"github.com/creatorbasehq/creatorbase/internal/mocks"
	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/creatorbasehq/creatorbase/internal/repository"
	"github.com/creatorbasehq/creatorbase/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthorizer(memberRepo *mocks.MockMembershipRepositoryIface, permRepo *mocks.MockPermissionRepositoryIface) *authz.Authorizer {
	return authz.NewAuthorizer(memberRepo, permRepo, nil)
}

func TestOrganizationCreateForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("bootstraps the full onboarding composition", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)

		orgRepo.EXPECT().
			SlugExists(gomock.Any(), "creator-studio").
			Return(false, nil)

		orgRepo.EXPECT().
			Bootstrap(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, in repository.BootstrapInput) (*repository.BootstrapResult, error) {
				assert.Equal(t, "creator-studio", in.Organization.Slug)
				assert.Equal(t, userID, in.OwnerUserID)
				assert.Equal(t, model.RoleAdmin, in.OwnerRoleName)
				require.Len(t, in.Roles, 4)
				names := make([]string, 0, 4)
				for _, r := range in.Roles {
					assert.True(t, r.IsBuiltin)
					names = append(names, r.Name)
				}
				assert.ElementsMatch(t,
					[]string{model.RoleAdmin, model.RoleManager, model.RoleEditor, model.RoleViewer},
					names)
				assert.Contains(t, in.Grants[model.RoleAdmin], model.PermOrgDelete)
				assert.NotContains(t, in.Grants[model.RoleViewer], model.PermOrgUpdate)

				in.Organization.ID = uuid.New()
				return &repository.BootstrapResult{Organization: in.Organization}, nil
			})

		svc := service.NewOrganizationService(orgRepo, newAuthorizer(memberRepo, permRepo))
		result, err := svc.CreateForUser(ctx, authz.User(userID), userID, service.CreateOrganizationInput{
			Name: "Creator Studio",
		})

		require.NoError(t, err)
		assert.Equal(t, "creator-studio", result.Organization.Slug)
	})

	t.Run("lost insert race re-enters the slug loop", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)

		gomock.InOrder(
			// First pass: advisory check says free, insert loses the race.
			orgRepo.EXPECT().SlugExists(gomock.Any(), "acme").Return(false, nil),
			orgRepo.EXPECT().
				Bootstrap(gomock.Any(), gomock.Any()).
				Return(nil, fmt.Errorf("%w: %q", repository.ErrSlugTaken, "acme")),
			// Second pass: the winner's row is visible now.
			orgRepo.EXPECT().SlugExists(gomock.Any(), "acme").Return(true, nil),
			orgRepo.EXPECT().SlugExists(gomock.Any(), "acme-2").Return(false, nil),
			orgRepo.EXPECT().
				Bootstrap(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, in repository.BootstrapInput) (*repository.BootstrapResult, error) {
					assert.Equal(t, "acme-2", in.Organization.Slug)
					return &repository.BootstrapResult{Organization: in.Organization}, nil
				}),
		)

		svc := service.NewOrganizationService(orgRepo, newAuthorizer(memberRepo, permRepo))
		result, err := svc.CreateForUser(ctx, authz.User(userID), userID, service.CreateOrganizationInput{
			Name: "Acme",
		})

		require.NoError(t, err)
		assert.Equal(t, "acme-2", result.Organization.Slug)
	})

	t.Run("cannot bootstrap for another user", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)

		svc := service.NewOrganizationService(orgRepo, newAuthorizer(memberRepo, permRepo))
		_, err := svc.CreateForUser(ctx, authz.User(uuid.New()), userID, service.CreateOrganizationInput{
			Name: "Acme",
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})

	t.Run("name without letters or digits is rejected", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)

		svc := service.NewOrganizationService(orgRepo, newAuthorizer(memberRepo, permRepo))
		_, err := svc.CreateForUser(ctx, authz.User(userID), userID, service.CreateOrganizationInput{
			Name: "!!!!",
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindBadRequest))
	})
}

func TestOrganizationGetBySlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	orgID := uuid.New()
	ownerID := uuid.New()
	org := &model.Organization{ID: orgID, Name: "Creator Studio", Slug: "creator-studio"}

	t.Run("member resolves the vanity slug", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)

		orgRepo.EXPECT().FindBySlug(gomock.Any(), "creator-studio").Return(org, nil)
		memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, ownerID).
			Return(&model.Membership{OrganizationID: orgID, UserID: ownerID, IsOwner: true, Active: true}, nil)

		svc := service.NewOrganizationService(orgRepo, newAuthorizer(memberRepo, permRepo))
		got, err := svc.GetBySlug(ctx, authz.User(ownerID), "creator-studio")

		require.NoError(t, err)
		assert.Equal(t, orgID, got.ID)
	})

	t.Run("outsider cannot resolve the slug", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)
		outsiderID := uuid.New()

		orgRepo.EXPECT().FindBySlug(gomock.Any(), "creator-studio").Return(org, nil)
		memberRepo.EXPECT().
			FindByOrgAndUser(gomock.Any(), orgID, outsiderID).
			Return(nil, domain.NotFound("membership not found"))

		svc := service.NewOrganizationService(orgRepo, newAuthorizer(memberRepo, permRepo))
		_, err := svc.GetBySlug(ctx, authz.User(outsiderID), "creator-studio")

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})
}

func TestOrganizationUpdateKeepsSlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	orgID := uuid.New()
	ownerID := uuid.New()

	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
	permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)

	orgRepo.EXPECT().
		FindByID(gomock.Any(), orgID).
		Return(&model.Organization{ID: orgID, Name: "Old Name", Slug: "old-name"}, nil)
	memberRepo.EXPECT().
		FindByOrgAndUser(gomock.Any(), orgID, ownerID).
		Return(&model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: ownerID, IsOwner: true, Active: true}, nil)
	orgRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, org *model.Organization) error {
			assert.Equal(t, "New Name", org.Name)
			assert.Equal(t, "old-name", org.Slug, "renaming must not regenerate the slug")
			return nil
		})

	svc := service.NewOrganizationService(orgRepo, newAuthorizer(memberRepo, permRepo))
	name := "New Name"
	org, err := svc.Update(ctx, authz.User(ownerID), orgID, service.UpdateOrganizationInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "old-name", org.Slug)
}

func TestOrganizationDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	orgID := uuid.New()
	ownerID := uuid.New()

	owner := &model.Membership{ID: uuid.New(), OrganizationID: orgID, UserID: ownerID, IsOwner: true, Active: true}

	t.Run("refuses while dependents exist", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)

		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(&model.Organization{ID: orgID}, nil)
		memberRepo.EXPECT().FindByOrgAndUser(gomock.Any(), orgID, ownerID).Return(owner, nil)
		orgRepo.EXPECT().CountContentItems(gomock.Any(), orgID).Return(int64(3), nil)
		orgRepo.EXPECT().CountTasks(gomock.Any(), orgID).Return(int64(0), nil)

		svc := service.NewOrganizationService(orgRepo, newAuthorizer(memberRepo, permRepo))
		err := svc.Delete(ctx, authz.User(ownerID), orgID)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindConflict))
	})

	t.Run("deletes when empty", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		permRepo := mocks.NewMockPermissionRepositoryIface(ctrl)

		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(&model.Organization{ID: orgID}, nil)
		memberRepo.EXPECT().FindByOrgAndUser(gomock.Any(), orgID, ownerID).Return(owner, nil)
		orgRepo.EXPECT().CountContentItems(gomock.Any(), orgID).Return(int64(0), nil)
		orgRepo.EXPECT().CountTasks(gomock.Any(), orgID).Return(int64(0), nil)
		orgRepo.EXPECT().Delete(gomock.Any(), orgID).Return(nil)

		svc := service.NewOrganizationService(orgRepo, newAuthorizer(memberRepo, permRepo))
		assert.NoError(t, svc.Delete(ctx, authz.User(ownerID), orgID))
	})
}
