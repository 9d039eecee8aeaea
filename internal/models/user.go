package model

import (
	"time"

	"task-match-service.com/task-match-service/internal/constants"
)

type User struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Username     string         `gorm:"uniqueIndex;not null" json:"username"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         constants.Role `gorm:"type:varchar(10);not null" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Actor is the already-verified identity a request acts as. The
// transport layer resolves it from the access token; services only
// authorize, never authenticate.
type Actor struct {
	ID   string
	Role constants.Role
}
