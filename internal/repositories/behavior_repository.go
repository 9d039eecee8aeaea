package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "task-match-service.com/task-match-service/internal/models"
)

type BehaviorRepository struct {
	db *gorm.DB
}

func NewBehaviorRepository(db *gorm.DB) *BehaviorRepository {
	return &BehaviorRepository{db: db}
}

// SetReaction records a like or dislike, replacing the user's previous
// reaction to the same task.
func (r *BehaviorRepository) SetReaction(ctx context.Context, userID, taskID string, liked bool) error {
	behavior := &model.UserBehavior{
		ID:        uuid.NewString(),
		UserID:    userID,
		TaskID:    taskID,
		Liked:     liked,
		CreatedAt: time.Now().UTC(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "task_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"liked": liked}),
		}).
		Create(behavior).Error
}

func (r *BehaviorRepository) DeleteReaction(ctx context.Context, userID, taskID string) error {
	return r.db.WithContext(ctx).
		Delete(&model.UserBehavior{}, "user_id = ? AND task_id = ?", userID, taskID).Error
}

// ReactedTaskIDs returns the ids of tasks the user has liked and
// disliked.
func (r *BehaviorRepository) ReactedTaskIDs(ctx context.Context, userID string) (liked, disliked []string, err error) {
	var rows []model.UserBehavior
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	for _, row := range rows {
		if row.Liked {
			liked = append(liked, row.TaskID)
		} else {
			disliked = append(disliked, row.TaskID)
		}
	}
	return liked, disliked, nil
}
