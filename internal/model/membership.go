// internal/model/membership.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Membership links a user to an organization. The (organization_id, user_id)
// pair is unique, and a partial unique index on (organization_id) WHERE
// is_owner guarantees at most one owner row per organization. Both
// constraints are created by the migrator; the uniqueIndex tag below covers
// only the pair.
type Membership struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_org_user" json:"organization_id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_org_user" json:"user_id"`
	RoleID         *uuid.UUID `gorm:"type:uuid" json:"role_id,omitempty"`
	IsOwner        bool       `gorm:"not null;default:false" json:"is_owner"`
	Active         bool       `gorm:"not null;default:true" json:"active"`

	Preferences datatypes.JSON `gorm:"type:jsonb" json:"preferences,omitempty"`

	JoinedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"joined_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	User         User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role         *Role        `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (Membership) TableName() string {
	return "memberships"
}
