// internal/model/task.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskBlocked    TaskStatus = "blocked"
	TaskDone       TaskStatus = "done"
	TaskArchived   TaskStatus = "archived"
)

// NormalizeTaskStatus maps legacy client aliases onto current statuses.
func NormalizeTaskStatus(s string) TaskStatus {
	switch s {
	case "started":
		return TaskInProgress
	case "completed":
		return TaskDone
	default:
		return TaskStatus(s)
	}
}

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskBlocked, TaskDone, TaskArchived:
		return true
	}
	return false
}

// Task is assigned to a membership rather than a user directly, so an
// assignment can never escape the organization.
type Task struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	ContentItemID  *uuid.UUID `gorm:"type:uuid" json:"content_item_id,omitempty"`
	AssigneeID     *uuid.UUID `gorm:"type:uuid;index" json:"assignee_id,omitempty"`
	CreatedByID    *uuid.UUID `gorm:"type:uuid" json:"created_by_id,omitempty"`
	Title          string     `gorm:"type:text;not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description,omitempty"`
	Status         TaskStatus `gorm:"type:text;not null;default:'todo'" json:"status"`
	Priority       int        `gorm:"not null;default:0" json:"priority"`
	DueAt          *time.Time `json:"due_at,omitempty"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	ContentItem  *ContentItem `gorm:"foreignKey:ContentItemID" json:"content_item,omitempty"`
	Assignee     *Membership  `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	CreatedBy    *User        `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (Task) TableName() string {
	return "tasks"
}
