package model

// Property is a tag from the task taxonomy ("design", "writing", ...).
type Property struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Name      string `gorm:"uniqueIndex;not null" json:"name"`
	CreatorID string `gorm:"size:36;not null" json:"creator_id"`
}

// TaskProperty links a task to one property of its characteristic set.
type TaskProperty struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	TaskID     string `gorm:"size:36;not null;uniqueIndex:idx_task_property" json:"task_id"`
	PropertyID string `gorm:"size:36;not null;uniqueIndex:idx_task_property" json:"property_id"`
}

// UserProperty is a declared preference. One row per (user, property):
// a property is either liked or disliked, never both.
type UserProperty struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	UserID     string `gorm:"size:36;not null;uniqueIndex:idx_user_property" json:"user_id"`
	PropertyID string `gorm:"size:36;not null;uniqueIndex:idx_user_property" json:"property_id"`
	Interested bool   `gorm:"not null" json:"interested"`
}
