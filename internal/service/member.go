// internal/service/member.go
package service

import (
	"context"

	"github.com/creatorbasehq/creatorbase/internal/authz"
	"github.com/creatorbasehq/creatorbase/internal/domain"
	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/creatorbasehq/creatorbase/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MemberService struct {
	memberRepo repository.MembershipRepositoryIface
	roleRepo   repository.RoleRepositoryIface
	userRepo   repository.UserRepositoryIface
	orgRepo    repository.OrganizationRepositoryIface
	authz      *authz.Authorizer
	validate   *validator.Validate
}

func NewMemberService(
	memberRepo repository.MembershipRepositoryIface,
	roleRepo repository.RoleRepositoryIface,
	userRepo repository.UserRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	authorizer *authz.Authorizer,
) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		roleRepo:   roleRepo,
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		authz:      authorizer,
		validate:   validator.New(),
	}
}

type AddMemberInput struct {
	UserID      uuid.UUID      `json:"user_id" validate:"required"`
	RoleID      *uuid.UUID     `json:"role_id"`
	IsOwner     bool           `json:"is_owner"`
	Preferences datatypes.JSON `json:"preferences,omitempty"`
}

// Add enrolls a user into an organization. Any organization with existing
// members may only be enrolled into by an owner; the founding membership is
// created by onboarding, not here.
func (s *MemberService) Add(ctx context.Context, actor authz.Actor, orgID uuid.UUID, input AddMemberInput) (*model.Membership, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return nil, asDomain(err)
	}
	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, asDomain(err)
	}

	if err := s.authz.Can(ctx, actor, orgID, authz.CapMemberAdd); err != nil {
		return nil, err
	}

	if input.RoleID != nil {
		role, err := s.roleRepo.FindByID(ctx, *input.RoleID)
		if err != nil {
			return nil, asDomain(err)
		}
		if role.OrganizationID != orgID {
			return nil, domain.NotFound("role not found in this organization")
		}
	}

	membership := &model.Membership{
		OrganizationID: orgID,
		UserID:         input.UserID,
		RoleID:         input.RoleID,
		IsOwner:        input.IsOwner,
		Active:         true,
		Preferences:    input.Preferences,
	}
	if err := s.memberRepo.Create(ctx, membership); err != nil {
		return nil, asDomain(err)
	}
	return membership, nil
}

func (s *MemberService) Get(ctx context.Context, actor authz.Actor, orgID, userID uuid.UUID) (*model.Membership, error) {
	if err := s.authz.Can(ctx, actor, orgID, authz.CapMemberList); err != nil {
		return nil, err
	}
	m, err := s.memberRepo.FindByOrgAndUser(ctx, orgID, userID)
	if err != nil {
		return nil, asDomain(err)
	}
	return m, nil
}

func (s *MemberService) List(ctx context.Context, actor authz.Actor, orgID uuid.UUID, pg repository.Pagination) ([]*model.Membership, int64, error) {
	if err := s.authz.Can(ctx, actor, orgID, authz.CapMemberList); err != nil {
		return nil, 0, err
	}
	members, count, err := s.memberRepo.ListByOrganization(ctx, orgID, pg)
	if err != nil {
		return nil, 0, asDomain(err)
	}
	return members, count, nil
}

type UpdateMemberInput struct {
	RoleID      *uuid.UUID      `json:"role_id"`
	IsOwner     *bool           `json:"is_owner"`
	Active      *bool           `json:"active"`
	Preferences *datatypes.JSON `json:"preferences,omitempty"`

	// The (organization, user) pair is immutable; their presence in a patch
	// is rejected outright.
	OrganizationID *uuid.UUID `json:"organization_id"`
	UserID         *uuid.UUID `json:"user_id"`
}

// Update patches a membership. Promoting to owner while an owner exists is
// a conflict; demoting the last owner is a conflict. Owner transfer has its
// own operation.
func (s *MemberService) Update(ctx context.Context, actor authz.Actor, orgID, userID uuid.UUID, input UpdateMemberInput) (*model.Membership, error) {
	if input.OrganizationID != nil || input.UserID != nil {
		return nil, domain.BadRequest("organization_id and user_id are immutable").
			WithFields(map[string]string{"organization_id": "immutable", "user_id": "immutable"})
	}

	membership, err := s.memberRepo.FindByOrgAndUser(ctx, orgID, userID)
	if err != nil {
		return nil, asDomain(err)
	}

	if err := s.authz.Can(ctx, actor, orgID, authz.CapMemberUpdate); err != nil {
		return nil, err
	}

	if input.RoleID != nil {
		role, err := s.roleRepo.FindByID(ctx, *input.RoleID)
		if err != nil {
			return nil, asDomain(err)
		}
		if role.OrganizationID != orgID {
			return nil, domain.NotFound("role not found in this organization")
		}
		membership.RoleID = input.RoleID
	}

	if input.IsOwner != nil && *input.IsOwner != membership.IsOwner {
		if *input.IsOwner {
			owners, err := s.memberRepo.CountOwners(ctx, orgID)
			if err != nil {
				return nil, asDomain(err)
			}
			if owners > 0 {
				return nil, domain.Conflict("organization already has an owner; use ownership transfer")
			}
		} else {
			owners, err := s.memberRepo.CountOwners(ctx, orgID)
			if err != nil {
				return nil, asDomain(err)
			}
			if owners <= 1 {
				return nil, domain.Conflict("cannot demote the last owner of an organization")
			}
		}
		membership.IsOwner = *input.IsOwner
	}

	if input.Active != nil {
		membership.Active = *input.Active
	}
	if input.Preferences != nil {
		membership.Preferences = *input.Preferences
	}

	if err := s.memberRepo.Update(ctx, membership); err != nil {
		return nil, asDomain(err)
	}
	return membership, nil
}

// Remove deletes a membership. Removing the last owner is a conflict; the
// repository repeats the check inside its transaction to close the race.
func (s *MemberService) Remove(ctx context.Context, actor authz.Actor, orgID, userID uuid.UUID) error {
	membership, err := s.memberRepo.FindByOrgAndUser(ctx, orgID, userID)
	if err != nil {
		return asDomain(err)
	}

	if err := s.authz.Can(ctx, actor, orgID, authz.CapMemberRemove); err != nil {
		return err
	}

	if membership.IsOwner {
		owners, err := s.memberRepo.CountOwners(ctx, orgID)
		if err != nil {
			return asDomain(err)
		}
		if owners <= 1 {
			return domain.Conflict("cannot remove the last owner of an organization")
		}
	}

	if err := s.memberRepo.Delete(ctx, orgID, userID); err != nil {
		return asDomain(err)
	}
	return nil
}

type TransferOwnershipInput struct {
	ToUserID uuid.UUID `json:"to_user_id" validate:"required"`
}

// TransferOwnership moves the owner flag from the current owner to another
// member in a single transaction.
func (s *MemberService) TransferOwnership(ctx context.Context, actor authz.Actor, orgID uuid.UUID, input TransferOwnershipInput) error {
	if err := s.validate.Struct(input); err != nil {
		return invalidInput(err)
	}

	if err := s.authz.Can(ctx, actor, orgID, authz.CapOwnerTransfer); err != nil {
		return err
	}

	owners, err := s.memberRepo.FindOwners(ctx, orgID)
	if err != nil {
		return asDomain(err)
	}
	if len(owners) == 0 {
		return domain.NotFound("organization has no owner")
	}
	from := owners[0]

	if from.UserID == input.ToUserID {
		return domain.Conflict("user is already the owner")
	}

	if err := s.memberRepo.TransferOwnership(ctx, orgID, from.UserID, input.ToUserID); err != nil {
		return asDomain(err)
	}
	return nil
}
