package services

import (
	"context"
	"log"
	"time"

	"task-match-service.com/task-match-service/internal/cache"
	"task-match-service.com/task-match-service/internal/constants"
	model "task-match-service.com/task-match-service/internal/models"
	repository "task-match-service.com/task-match-service/internal/repositories"
)

// LifecycleService owns the task state machine:
//
//	Unassigned -> Assigned -> Submitted -> Approved
//
// plus the absorbing Deactivated state, reachable by the owner from any
// non-Approved state (and from Approved when policy allows it).
//
// Every transition checks the caller's role and ownership before the
// state, and commits through a conditional update keyed on the source
// status and row version, so two workers racing for the same task
// serialize at the store and exactly one wins. The loser is told the
// transition is invalid and picks another task; nothing is queued or
// retried internally.
type LifecycleService struct {
	tasks                   *repository.TaskRepository
	rankCache               cache.RankCache
	allowDeactivateApproved bool
}

func NewLifecycleService(
	tasks *repository.TaskRepository,
	rankCache cache.RankCache,
	allowDeactivateApproved bool,
) *LifecycleService {
	return &LifecycleService{
		tasks:                   tasks,
		rankCache:               rankCache,
		allowDeactivateApproved: allowDeactivateApproved,
	}
}

// Create opens a new unassigned task owned by the calling employer.
func (s *LifecycleService) Create(ctx context.Context, actor model.Actor, name, description string) (*model.Task, error) {
	if res := requireRole(actor, constants.RoleEmployer); !res.ok {
		return nil, res.reason
	}

	task, err := s.tasks.CreateTask(ctx, actor.ID, name, description)
	if err != nil {
		return nil, err
	}

	s.invalidatePool(ctx)
	return task, nil
}

// Assign claims an unassigned task for the calling employee. Under
// concurrent claims exactly one caller succeeds; the rest observe an
// invalid transition because the task already moved to Assigned.
func (s *LifecycleService) Assign(ctx context.Context, actor model.Actor, taskID string) (*model.Task, error) {
	if res := requireRole(actor, constants.RoleEmployee); !res.ok {
		return nil, res.reason
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if res := requireStatus(task, constants.StatusUnassigned); !res.ok {
		return nil, res.reason
	}

	assignee := actor.ID
	task.Status = constants.StatusAssigned
	task.AssigneeID = &assignee

	if err := s.tasks.Transition(ctx, task, constants.StatusUnassigned); err != nil {
		return nil, err
	}

	s.invalidatePool(ctx)
	return task, nil
}

// Unassign releases a task the calling employee currently holds,
// returning it to the pool indistinguishable from a never-assigned
// task. A submitted task can no longer be unassigned.
func (s *LifecycleService) Unassign(ctx context.Context, actor model.Actor, taskID string) (*model.Task, error) {
	if res := requireRole(actor, constants.RoleEmployee); !res.ok {
		return nil, res.reason
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if res := requireStatus(task, constants.StatusAssigned); !res.ok {
		return nil, res.reason
	}
	if res := requireAssignee(actor, task); !res.ok {
		return nil, res.reason
	}

	task.Status = constants.StatusUnassigned
	task.AssigneeID = nil
	task.Output = ""

	if err := s.tasks.Transition(ctx, task, constants.StatusAssigned); err != nil {
		return nil, err
	}

	s.invalidatePool(ctx)
	return task, nil
}

// Submit hands in the assignee's output and moves the task to review.
func (s *LifecycleService) Submit(ctx context.Context, actor model.Actor, taskID, output string) (*model.Task, error) {
	if res := requireRole(actor, constants.RoleEmployee); !res.ok {
		return nil, res.reason
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if res := requireStatus(task, constants.StatusAssigned); !res.ok {
		return nil, res.reason
	}
	if res := requireAssignee(actor, task); !res.ok {
		return nil, res.reason
	}

	now := time.Now().UTC()
	task.Status = constants.StatusSubmitted
	task.Output = output
	task.SubmittedAt = &now

	if err := s.tasks.Transition(ctx, task, constants.StatusAssigned); err != nil {
		return nil, err
	}

	return task, nil
}

// Approve accepts submitted work. Only the owner may approve, and only
// from Submitted.
func (s *LifecycleService) Approve(ctx context.Context, actor model.Actor, taskID string) (*model.Task, error) {
	if res := requireRole(actor, constants.RoleEmployer); !res.ok {
		return nil, res.reason
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if res := requireOwner(actor, task); !res.ok {
		return nil, res.reason
	}
	if res := requireStatus(task, constants.StatusSubmitted); !res.ok {
		return nil, res.reason
	}

	now := time.Now().UTC()
	task.Status = constants.StatusApproved
	task.ApprovedAt = &now

	if err := s.tasks.Transition(ctx, task, constants.StatusSubmitted); err != nil {
		return nil, err
	}

	// The assignee's completion history just grew, so their cached
	// ranking no longer reflects it.
	if task.AssigneeID != nil {
		if err := s.rankCache.Invalidate(ctx, *task.AssigneeID); err != nil {
			log.Printf("failed to invalidate rankings for user %s: %v", *task.AssigneeID, err)
		}
	}

	return task, nil
}

// Deactivate retires a task. Owner only; Approved tasks are off limits
// unless the deployment enables deactivation of approved tasks.
func (s *LifecycleService) Deactivate(ctx context.Context, actor model.Actor, taskID string) (*model.Task, error) {
	if res := requireRole(actor, constants.RoleEmployer); !res.ok {
		return nil, res.reason
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if res := requireOwner(actor, task); !res.ok {
		return nil, res.reason
	}

	allowed := []constants.TaskStatus{
		constants.StatusUnassigned,
		constants.StatusAssigned,
		constants.StatusSubmitted,
	}
	if s.allowDeactivateApproved {
		allowed = append(allowed, constants.StatusApproved)
	}
	if res := requireStatus(task, allowed...); !res.ok {
		return nil, res.reason
	}

	from := task.Status
	task.Status = constants.StatusDeactivated
	task.AssigneeID = nil

	if err := s.tasks.Transition(ctx, task, from); err != nil {
		return nil, err
	}

	s.invalidatePool(ctx)
	return task, nil
}

func (s *LifecycleService) Get(ctx context.Context, taskID string) (*model.Task, error) {
	return s.tasks.FindByID(ctx, taskID)
}

func (s *LifecycleService) List(ctx context.Context) ([]model.Task, error) {
	return s.tasks.List(ctx)
}

// ListUnassigned is the non-personalized browse path over the task
// pool.
func (s *LifecycleService) ListUnassigned(ctx context.Context) ([]model.Task, error) {
	return s.tasks.ListUnassigned(ctx)
}

// invalidatePool bumps the pool generation after a transition that
// changed pool membership. Best effort: rankings are recomputed on
// generation mismatch and expire by TTL, so a failed bump only delays
// freshness, it cannot corrupt state.
func (s *LifecycleService) invalidatePool(ctx context.Context) {
	if err := s.rankCache.BumpGeneration(ctx); err != nil {
		log.Printf("failed to bump pool generation: %v", err)
	}
}
