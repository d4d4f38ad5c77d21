// internal/repository/permission.go
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

type PermissionRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Permission, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Permission, error)
	List(ctx context.Context) ([]*model.Permission, error)
	Seed(ctx context.Context, catalog map[string]string) error

	AssignedIDs(ctx context.Context, roleID uuid.UUID) ([]uuid.UUID, error)
	ListByRole(ctx context.Context, roleID uuid.UUID) ([]*model.Permission, error)
	Assign(ctx context.Context, roleID, permissionID uuid.UUID) error
	AssignBatch(ctx context.Context, roleID uuid.UUID, permissionIDs []uuid.UUID) error
	Remove(ctx context.Context, roleID, permissionID uuid.UUID) error
}

type PermissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Permission, error) {
	var perm model.Permission
	if err := r.db.WithContext(ctx).First(&perm, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("permission not found")
		}
		return nil, fmt.Errorf("finding permission: %w", err)
	}
	return &perm, nil
}

func (r *PermissionRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Permission, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var perms []*model.Permission
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&perms).Error; err != nil {
		return nil, fmt.Errorf("finding permissions: %w", err)
	}
	return perms, nil
}

func (r *PermissionRepository) List(ctx context.Context) ([]*model.Permission, error) {
	var perms []*model.Permission
	if err := r.db.WithContext(ctx).Order("code").Find(&perms).Error; err != nil {
		return nil, fmt.Errorf("listing permissions: %w", err)
	}
	return perms, nil
}

// Seed inserts any catalog permissions that are not present yet. Existing
// rows are left untouched.
func (r *PermissionRepository) Seed(ctx context.Context, catalog map[string]string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for code, description := range catalog {
			var count int64
			if err := tx.Model(&model.Permission{}).Where("code = ?", code).Count(&count).Error; err != nil {
				return fmt.Errorf("checking permission %q: %w", code, err)
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(&model.Permission{Code: code, Description: description}).Error; err != nil {
				if IsUniqueViolation(err, "") {
					continue
				}
				return fmt.Errorf("seeding permission %q: %w", code, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *PermissionRepository) AssignedIDs(ctx context.Context, roleID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.RolePermission{}).
		Where("role_id = ?", roleID).
		Pluck("permission_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("listing assigned permission ids: %w", err)
	}
	return ids, nil
}

func (r *PermissionRepository) ListByRole(ctx context.Context, roleID uuid.UUID) ([]*model.Permission, error) {
	var perms []*model.Permission
	if err := r.db.WithContext(ctx).
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Order("permissions.code").
		Find(&perms).Error; err != nil {
		return nil, fmt.Errorf("listing role permissions: %w", err)
	}
	return perms, nil
}

func (r *PermissionRepository) Assign(ctx context.Context, roleID, permissionID uuid.UUID) error {
	pair := model.RolePermission{RoleID: roleID, PermissionID: permissionID}
	if err := r.db.WithContext(ctx).Create(&pair).Error; err != nil {
		if IsUniqueViolation(err, "") {
			return domain.Conflict("permission already assigned to role").WithCause(err)
		}
		return fmt.Errorf("assigning permission: %w", err)
	}
	return nil
}

func (r *PermissionRepository) AssignBatch(ctx context.Context, roleID uuid.UUID, permissionIDs []uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, pid := range permissionIDs {
			pair := model.RolePermission{RoleID: roleID, PermissionID: pid}
			if err := tx.Create(&pair).Error; err != nil {
				if IsUniqueViolation(err, "") {
					return domain.Conflict("permission %s already assigned to role", pid).WithCause(err)
				}
				return fmt.Errorf("assigning permission %s: %w", pid, err)
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

func (r *PermissionRepository) Remove(ctx context.Context, roleID, permissionID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		Delete(&model.RolePermission{})
	if result.Error != nil {
		return fmt.Errorf("removing permission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NotFound("permission is not assigned to this role")
	}
	return nil
}
