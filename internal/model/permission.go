// internal/model/permission.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Permission codes form a small fixed catalog seeded independently of any
// organization.
const (
	PermOrgView   = "org.view"
	PermOrgUpdate = "org.update"
	PermOrgDelete = "org.delete"
)

// PermissionCatalog maps every seeded permission code to its description.
var PermissionCatalog = map[string]string{
	PermOrgView:   "View the organization and its resources",
	PermOrgUpdate: "Update organization settings",
	PermOrgDelete: "Delete the organization",
}

type Permission struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Code        string    `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Permission) TableName() string {
	return "permissions"
}

// RolePermission is the (role, permission) join row. The composite primary
// key makes a duplicate assignment a unique violation rather than a silent
// no-op.
type RolePermission struct {
	RoleID       uuid.UUID `gorm:"type:uuid;primary_key" json:"role_id"`
	PermissionID uuid.UUID `gorm:"type:uuid;primary_key" json:"permission_id"`
	CreatedAt    time.Time `json:"created_at"`

	Role       Role       `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Permission Permission `gorm:"foreignKey:PermissionID" json:"permission,omitempty"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}
