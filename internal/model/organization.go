// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Organization struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"type:text;not null" json:"name"`
	Slug     string    `gorm:"type:text;not null;uniqueIndex:idx_organizations_slug" json:"slug"`
	Locale   string    `gorm:"type:text;not null;default:'pt-BR'" json:"locale"`
	Currency string    `gorm:"type:text;not null;default:'BRL'" json:"currency"`
	Timezone string    `gorm:"type:text;not null;default:'America/Sao_Paulo'" json:"timezone"`

	Settings datatypes.JSON `gorm:"type:jsonb" json:"settings,omitempty"`
	Branding datatypes.JSON `gorm:"type:jsonb" json:"branding,omitempty"`
	Billing  datatypes.JSON `gorm:"type:jsonb" json:"billing,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Members []Membership `gorm:"foreignKey:OrganizationID" json:"members,omitempty"`
	Roles   []Role       `gorm:"foreignKey:OrganizationID" json:"roles,omitempty"`
}

func (Organization) TableName() string {
	return "organizations"
}
