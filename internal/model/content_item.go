// internal/model/content_item.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentItem statuses follow the production lifecycle used by the web
// client. Status is a free-form string; only the published state carries
// server-side rules.
const (
	ContentStatusIdea      = "idea"
	ContentStatusRoteiro   = "roteiro"
	ContentStatusGravacao  = "gravacao"
	ContentStatusEdicao    = "edicao"
	ContentStatusPronto    = "pronto"
	ContentStatusAgendado  = "agendado"
	ContentStatusPublicado = "publicado"
	ContentStatusArquivado = "arquivado"
)

const (
	ContentVisibilityPrivate = "private"
	ContentVisibilityOrg     = "organization"
)

type ContentItem struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	Title          string     `gorm:"type:text;not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description,omitempty"`
	Status         string     `gorm:"type:text;not null;default:'idea'" json:"status"`
	Visibility     string     `gorm:"type:text;not null;default:'private'" json:"visibility"`
	CreatedByID    *uuid.UUID `gorm:"type:uuid" json:"created_by_id,omitempty"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	CreatedBy    *User        `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (ContentItem) TableName() string {
	return "content_items"
}
