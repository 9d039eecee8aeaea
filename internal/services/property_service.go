package services

import (
	"context"
	"log"

	"task-match-service.com/task-match-service/internal/cache"
	"task-match-service.com/task-match-service/internal/constants"
	apperrors "task-match-service.com/task-match-service/internal/errors"
	model "task-match-service.com/task-match-service/internal/models"
	repository "task-match-service.com/task-match-service/internal/repositories"
)

// PropertyService covers the taxonomy and the per-user signal inputs:
// the property catalog, task characteristic vectors (owner-managed),
// declared preferences (employee-managed, self only) and reactions
// (self only). Writes that change scoring inputs invalidate the
// affected rankings.
type PropertyService struct {
	properties *repository.PropertyRepository
	behaviors  *repository.BehaviorRepository
	tasks      *repository.TaskRepository
	rankCache  cache.RankCache
}

func NewPropertyService(
	properties *repository.PropertyRepository,
	behaviors *repository.BehaviorRepository,
	tasks *repository.TaskRepository,
	rankCache cache.RankCache,
) *PropertyService {
	return &PropertyService{
		properties: properties,
		behaviors:  behaviors,
		tasks:      tasks,
		rankCache:  rankCache,
	}
}

func (s *PropertyService) CreateProperty(ctx context.Context, actor model.Actor, name string) (*model.Property, error) {
	return s.properties.CreateProperty(ctx, actor.ID, name)
}

func (s *PropertyService) ListProperties(ctx context.Context) ([]model.Property, error) {
	return s.properties.List(ctx)
}

// DeleteProperty removes a property from the catalog. Creator only;
// properties are otherwise immutable once created.
func (s *PropertyService) DeleteProperty(ctx context.Context, actor model.Actor, propertyID string) error {
	property, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		return err
	}

	if property.CreatorID != actor.ID {
		return apperrors.ErrPermissionDenied
	}

	return s.properties.Delete(ctx, propertyID)
}

// AttachTaskProperty tags a task. Only the task's owner may change its
// characteristic vector.
func (s *PropertyService) AttachTaskProperty(ctx context.Context, actor model.Actor, taskID, propertyID string) error {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return err
	}

	if res := requireOwner(actor, task); !res.ok {
		return res.reason
	}

	if _, err := s.properties.FindByID(ctx, propertyID); err != nil {
		return err
	}

	if err := s.properties.AttachToTask(ctx, taskID, propertyID); err != nil {
		return err
	}

	s.invalidatePool(ctx)
	return nil
}

func (s *PropertyService) DetachTaskProperty(ctx context.Context, actor model.Actor, taskID, propertyID string) error {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return err
	}

	if res := requireOwner(actor, task); !res.ok {
		return res.reason
	}

	if err := s.properties.DetachFromTask(ctx, taskID, propertyID); err != nil {
		return err
	}

	s.invalidatePool(ctx)
	return nil
}

// SetUserProperty declares the calling employee's interest or
// disinterest in a property. A property is liked or disliked, never
// both; re-declaring flips the flag.
func (s *PropertyService) SetUserProperty(ctx context.Context, actor model.Actor, propertyID string, interested bool) error {
	if res := requireRole(actor, constants.RoleEmployee); !res.ok {
		return res.reason
	}

	if _, err := s.properties.FindByID(ctx, propertyID); err != nil {
		return err
	}

	if err := s.properties.SetUserProperty(ctx, actor.ID, propertyID, interested); err != nil {
		return err
	}

	s.invalidateUser(ctx, actor.ID)
	return nil
}

func (s *PropertyService) DeleteUserProperty(ctx context.Context, actor model.Actor, propertyID string) error {
	if err := s.properties.DeleteUserProperty(ctx, actor.ID, propertyID); err != nil {
		return err
	}

	s.invalidateUser(ctx, actor.ID)
	return nil
}

// SetReaction records the caller's like or dislike of a task.
func (s *PropertyService) SetReaction(ctx context.Context, actor model.Actor, taskID string, liked bool) error {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return err
	}

	if err := s.behaviors.SetReaction(ctx, actor.ID, taskID, liked); err != nil {
		return err
	}

	s.invalidateUser(ctx, actor.ID)
	return nil
}

func (s *PropertyService) DeleteReaction(ctx context.Context, actor model.Actor, taskID string) error {
	if err := s.behaviors.DeleteReaction(ctx, actor.ID, taskID); err != nil {
		return err
	}

	s.invalidateUser(ctx, actor.ID)
	return nil
}

// Task property changes alter characteristic vectors of pool tasks, so
// every cached ranking goes stale.
func (s *PropertyService) invalidatePool(ctx context.Context) {
	if err := s.rankCache.BumpGeneration(ctx); err != nil {
		log.Printf("failed to bump pool generation: %v", err)
	}
}

func (s *PropertyService) invalidateUser(ctx context.Context, userID string) {
	if err := s.rankCache.Invalidate(ctx, userID); err != nil {
		log.Printf("failed to invalidate rankings for user %s: %v", userID, err)
	}
}
