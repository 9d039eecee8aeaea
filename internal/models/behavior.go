package model

import "time"

// UserBehavior records implicit feedback, distinct from declared
// preference: one like/dislike per (user, task) pair.
type UserBehavior struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_user_behavior" json:"user_id"`
	TaskID    string    `gorm:"size:36;not null;uniqueIndex:idx_user_behavior" json:"task_id"`
	Liked     bool      `gorm:"not null" json:"liked"`
	CreatedAt time.Time `json:"created_at"`
}
