// internal/repository/role.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/creatorbasehq/creatorbase/internal/domain"
	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleRepositoryIface interface {
	Create(ctx context.Context, role *model.Role) error
	CreateBatch(ctx context.Context, roles []*model.Role) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	FindExistingNames(ctx context.Context, orgID uuid.UUID, names []string) ([]string, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, pg Pagination) ([]*model.Role, int64, error)
	Update(ctx context.Context, role *model.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) Create(ctx context.Context, role *model.Role) error {
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		if IsUniqueViolation(err, "roles_org_lower_name") {
			return domain.Conflict("role %q already exists in this organization", role.Name).WithCause(err)
		}
		return fmt.Errorf("creating role: %w", err)
	}
	return nil
}

// CreateBatch inserts all roles in one transaction. Payload-internal
// duplicate checks happen in the service before this is called.
func (r *RoleRepository) CreateBatch(ctx context.Context, roles []*model.Role) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, role := range roles {
			if err := tx.Create(role).Error; err != nil {
				if IsUniqueViolation(err, "roles_org_lower_name") {
					return domain.Conflict("role %q already exists in this organization", role.Name).WithCause(err)
				}
				return fmt.Errorf("creating role %q: %w", role.Name, err)
			}
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

func (r *RoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("role not found")
		}
		return nil, fmt.Errorf("finding role: %w", err)
	}
	return &role, nil
}

// FindExistingNames returns which of the given names already exist in the
// organization, compared case-insensitively.
func (r *RoleRepository) FindExistingNames(ctx context.Context, orgID uuid.UUID, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
	}

	var existing []string
	if err := r.db.WithContext(ctx).Model(&model.Role{}).
		Where("organization_id = ? AND lower(name) IN ?", orgID, lowered).
		Pluck("name", &existing).Error; err != nil {
		return nil, fmt.Errorf("finding existing role names: %w", err)
	}
	return existing, nil
}

func (r *RoleRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID, pg Pagination) ([]*model.Role, int64, error) {
	pg = pg.normalized()

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Role{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting roles: %w", err)
	}

	var roles []*model.Role
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&roles).Error; err != nil {
		return nil, 0, fmt.Errorf("listing roles: %w", err)
	}
	return roles, count, nil
}

func (r *RoleRepository) Update(ctx context.Context, role *model.Role) error {
	if err := r.db.WithContext(ctx).Save(role).Error; err != nil {
		if IsUniqueViolation(err, "roles_org_lower_name") {
			return domain.Conflict("role %q already exists in this organization", role.Name).WithCause(err)
		}
		return fmt.Errorf("updating role: %w", err)
	}
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&model.RolePermission{}).Error; err != nil {
			return fmt.Errorf("deleting role permissions: %w", err)
		}
		if err := tx.Model(&model.Membership{}).Where("role_id = ?", id).
			Update("role_id", nil).Error; err != nil {
			return fmt.Errorf("detaching memberships: %w", err)
		}
		if err := tx.Delete(&model.Role{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting role: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
