// internal/model/role.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Builtin role names seeded for every new organization.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleEditor  = "Editor"
	RoleViewer  = "Viewer"
)

// Role is scoped to one organization. Name uniqueness within the
// organization is case-insensitive, enforced by a functional unique index
// on (organization_id, lower(name)) created by the migrator.
type Role struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description,omitempty"`
	IsBuiltin      bool      `gorm:"not null;default:false" json:"is_builtin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Permissions []Permission `gorm:"many2many:role_permissions" json:"permissions,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}
