// internal/model/audit_log.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog records the outcome of an authorization decision.
type AuditLog struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"organization_id"`
	ActorID        *uuid.UUID     `gorm:"type:uuid" json:"actor_id,omitempty"`
	Capability     string         `gorm:"type:text;not null" json:"capability"`
	Allowed        bool           `gorm:"not null" json:"allowed"`
	Reason         string         `gorm:"type:text" json:"reason,omitempty"`
	Context        datatypes.JSON `gorm:"type:jsonb" json:"context,omitempty"`
	CreatedAt      time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
