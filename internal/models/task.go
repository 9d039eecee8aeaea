package model

import (
	"time"

	"task-match-service.com/task-match-service/internal/constants"
)

type Task struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	Name        string               `gorm:"not null" json:"name"`
	Description string               `gorm:"not null" json:"description"`
	Output      string               `gorm:"default:''" json:"output"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	OwnerID     string               `gorm:"size:36;not null;index" json:"owner_id"`
	AssigneeID  *string              `gorm:"size:36;index" json:"assignee_id,omitempty"`
	Version     uint                 `gorm:"not null;default:1" json:"version"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	SubmittedAt *time.Time           `json:"submitted_at,omitempty"`
	ApprovedAt  *time.Time           `json:"approved_at,omitempty"`
}
