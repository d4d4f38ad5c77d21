// internal/repository/membership.go
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

type MembershipRepositoryIface interface {
	Create(ctx context.Context, m *model.Membership) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Membership, error)
	FindByOrgAndUser(ctx context.Context, orgID, userID uuid.UUID) (*model.Membership, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, pg Pagination) ([]*model.Membership, int64, error)
	FindOwners(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error)
	CountOwners(ctx context.Context, orgID uuid.UUID) (int64, error)
	Update(ctx context.Context, m *model.Membership) error
	Delete(ctx context.Context, orgID, userID uuid.UUID) error
	TransferOwnership(ctx context.Context, orgID, fromUserID, toUserID uuid.UUID) error
}

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create inserts a membership. The owner pre-check is a fast path for a
// better error message; the partial unique index on (organization_id) WHERE
// is_owner is what actually holds under concurrency.
func (r *MembershipRepository) Create(ctx context.Context, m *model.Membership) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.IsOwner {
			var owners int64
			if err := tx.Model(&model.Membership{}).
				Where("organization_id = ? AND is_owner", m.OrganizationID).
				Count(&owners).Error; err != nil {
				return fmt.Errorf("counting owners: %w", err)
			}
			if owners > 0 {
				return domain.Conflict("organization already has an owner")
			}
		}

		if err := tx.Create(m).Error; err != nil {
			if IsUniqueViolation(err, "memberships_owner") {
				return domain.Conflict("organization already has an owner").WithCause(err)
			}
			if IsUniqueViolation(err, "") {
				return domain.Conflict("user is already a member of this organization").WithCause(err)
			}
			return fmt.Errorf("creating membership: %w", err)
		}
		return nil
	})

	var de *domain.Error
	if errors.As(err, &de) {
		return de
	}
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *MembershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Membership, error) {
	var m model.Membership
	if err := r.db.WithContext(ctx).Preload("Role").First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("membership not found")
		}
		return nil, fmt.Errorf("finding membership: %w", err)
	}
	return &m, nil
}

func (r *MembershipRepository) FindByOrgAndUser(ctx context.Context, orgID, userID uuid.UUID) (*model.Membership, error) {
	var m model.Membership
	if err := r.db.WithContext(ctx).Preload("Role").
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("membership not found")
		}
		return nil, fmt.Errorf("finding membership: %w", err)
	}
	return &m, nil
}

func (r *MembershipRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID, pg Pagination) ([]*model.Membership, int64, error) {
	pg = pg.normalized()

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting memberships: %w", err)
	}

	var members []*model.Membership
	if err := r.db.WithContext(ctx).Preload("Role").Preload("User").
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&members).Error; err != nil {
		return nil, 0, fmt.Errorf("listing memberships: %w", err)
	}
	return members, count, nil
}

func (r *MembershipRepository) FindOwners(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error) {
	var owners []*model.Membership
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND is_owner", orgID).
		Find(&owners).Error; err != nil {
		return nil, fmt.Errorf("finding owners: %w", err)
	}
	return owners, nil
}

func (r *MembershipRepository) CountOwners(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("organization_id = ? AND is_owner", orgID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting owners: %w", err)
	}
	return count, nil
}

// Update saves a membership. Promotion to owner re-checks the single-owner
// invariant inside the transaction; the partial unique index backs it up.
func (r *MembershipRepository) Update(ctx context.Context, m *model.Membership) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.IsOwner {
			var owners int64
			if err := tx.Model(&model.Membership{}).
				Where("organization_id = ? AND is_owner AND id <> ?", m.OrganizationID, m.ID).
				Count(&owners).Error; err != nil {
				return fmt.Errorf("counting owners: %w", err)
			}
			if owners > 0 {
				return domain.Conflict("organization already has an owner")
			}
		}

		if err := tx.Save(m).Error; err != nil {
			if IsUniqueViolation(err, "memberships_owner") {
				return domain.Conflict("organization already has an owner").WithCause(err)
			}
			return fmt.Errorf("updating membership: %w", err)
		}
		return nil
	})

	var de *domain.Error
	if errors.As(err, &de) {
		return de
	}
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// Delete removes a membership, refusing to remove the last owner.
func (r *MembershipRepository) Delete(ctx context.Context, orgID, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.Membership
		if err := tx.Where("organization_id = ? AND user_id = ?", orgID, userID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFound("membership not found")
			}
			return fmt.Errorf("finding membership: %w", err)
		}

		if m.IsOwner {
			var owners int64
			if err := tx.Model(&model.Membership{}).
				Where("organization_id = ? AND is_owner", orgID).
				Count(&owners).Error; err != nil {
				return fmt.Errorf("counting owners: %w", err)
			}
			if owners <= 1 {
				return domain.Conflict("cannot remove the last owner of an organization")
			}
		}

		if err := tx.Delete(&m).Error; err != nil {
			return fmt.Errorf("deleting membership: %w", err)
		}
		return nil
	})

	var de *domain.Error
	if errors.As(err, &de) {
		return de
	}
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// TransferOwnership demotes the current owner and promotes the target in
// one transaction, so no moment exists with zero or two owners visible
// after commit.
func (r *MembershipRepository) TransferOwnership(ctx context.Context, orgID, fromUserID, toUserID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var from model.Membership
		if err := tx.Where("organization_id = ? AND user_id = ? AND is_owner", orgID, fromUserID).
			First(&from).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFound("current owner membership not found")
			}
			return fmt.Errorf("finding current owner: %w", err)
		}

		var to model.Membership
		if err := tx.Where("organization_id = ? AND user_id = ?", orgID, toUserID).
			First(&to).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFound("target membership not found")
			}
			return fmt.Errorf("finding target membership: %w", err)
		}

		// Demote first so the partial unique index never sees two owners.
		if err := tx.Model(&from).Update("is_owner", false).Error; err != nil {
			return fmt.Errorf("demoting owner: %w", err)
		}
		if err := tx.Model(&to).Update("is_owner", true).Error; err != nil {
			if IsUniqueViolation(err, "memberships_owner") {
				return domain.Conflict("organization already has an owner").WithCause(err)
			}
			return fmt.Errorf("promoting owner: %w", err)
		}
		return nil
	})

	var de *domain.Error
	if errors.As(err, &de) {
		return de
	}
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
