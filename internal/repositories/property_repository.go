package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "task-match-service.com/task-match-service/internal/errors"
	model "task-match-service.com/task-match-service/internal/models"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) CreateProperty(ctx context.Context, creatorID, name string) (*model.Property, error) {
	property := &model.Property{
		ID:        uuid.NewString(),
		Name:      name,
		CreatorID: creatorID,
	}

	if err := r.db.WithContext(ctx).Create(property).Error; err != nil {
		return nil, err
	}

	return property, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*model.Property, error) {
	var property model.Property
	err := r.db.WithContext(ctx).First(&property, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]model.Property, error) {
	var properties []model.Property
	err := r.db.WithContext(ctx).Order("name asc").Find(&properties).Error
	return properties, err
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Property{}, "id = ?", id).Error
}

func (r *PropertyRepository) AttachToTask(ctx context.Context, taskID, propertyID string) error {
	link := &model.TaskProperty{
		ID:         uuid.NewString(),
		TaskID:     taskID,
		PropertyID: propertyID,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link).Error
}

func (r *PropertyRepository) DetachFromTask(ctx context.Context, taskID, propertyID string) error {
	return r.db.WithContext(ctx).
		Delete(&model.TaskProperty{}, "task_id = ? AND property_id = ?", taskID, propertyID).Error
}

// TaskPropertyIDs loads the property sets of many tasks in one query,
// keyed by task id. Tasks without properties are absent from the map.
func (r *PropertyRepository) TaskPropertyIDs(ctx context.Context, taskIDs []string) (map[string][]string, error) {
	sets := make(map[string][]string)
	if len(taskIDs) == 0 {
		return sets, nil
	}

	var links []model.TaskProperty
	err := r.db.WithContext(ctx).
		Where("task_id IN ?", taskIDs).
		Find(&links).Error
	if err != nil {
		return nil, err
	}

	for _, link := range links {
		sets[link.TaskID] = append(sets[link.TaskID], link.PropertyID)
	}
	return sets, nil
}

// SetUserProperty declares a preference, overwriting any previous
// declaration for the same property so liked and disliked stay
// disjoint.
func (r *PropertyRepository) SetUserProperty(ctx context.Context, userID, propertyID string, interested bool) error {
	link := &model.UserProperty{
		ID:         uuid.NewString(),
		UserID:     userID,
		PropertyID: propertyID,
		Interested: interested,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "property_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"interested": interested}),
		}).
		Create(link).Error
}

func (r *PropertyRepository) DeleteUserProperty(ctx context.Context, userID, propertyID string) error {
	return r.db.WithContext(ctx).
		Delete(&model.UserProperty{}, "user_id = ? AND property_id = ?", userID, propertyID).Error
}

// UserPreferenceIDs returns the user's declared property ids split into
// liked and disliked.
func (r *PropertyRepository) UserPreferenceIDs(ctx context.Context, userID string) (liked, disliked []string, err error) {
	var rows []model.UserProperty
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	for _, row := range rows {
		if row.Interested {
			liked = append(liked, row.PropertyID)
		} else {
			disliked = append(disliked, row.PropertyID)
		}
	}
	return liked, disliked, nil
}
