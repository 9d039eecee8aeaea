package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-match-service.com/task-match-service/internal/constants"
	apperrors "task-match-service.com/task-match-service/internal/errors"
	model "task-match-service.com/task-match-service/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Task{},
		&model.User{},
		&model.Property{},
		&model.TaskProperty{},
		&model.UserProperty{},
		&model.UserBehavior{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func TestTaskRepository_TransitionGuardsSourceState(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task, err := repo.CreateTask(ctx, "owner-1", "Task", "Desc")
	require.NoError(t, err)
	require.Equal(t, uint(1), task.Version)

	assignee := "worker-1"
	task.Status = constants.StatusAssigned
	task.AssigneeID = &assignee
	require.NoError(t, repo.Transition(ctx, task, constants.StatusUnassigned))
	assert.Equal(t, uint(2), task.Version)

	// A second transition from the already-left source state loses.
	stale := &model.Task{
		ID:         task.ID,
		Status:     constants.StatusAssigned,
		AssigneeID: &assignee,
		Version:    1,
	}
	err = repo.Transition(ctx, stale, constants.StatusUnassigned)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)

	stored, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusAssigned, stored.Status)
	assert.Equal(t, uint(2), stored.Version)
}

func TestTaskRepository_ListUnassignedIsThePool(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	open, err := repo.CreateTask(ctx, "owner-1", "Open", "Desc")
	require.NoError(t, err)

	claimed, err := repo.CreateTask(ctx, "owner-1", "Claimed", "Desc")
	require.NoError(t, err)
	assignee := "worker-1"
	claimed.Status = constants.StatusAssigned
	claimed.AssigneeID = &assignee
	require.NoError(t, repo.Transition(ctx, claimed, constants.StatusUnassigned))

	pool, err := repo.ListUnassigned(ctx)
	require.NoError(t, err)
	require.Len(t, pool, 1)
	assert.Equal(t, open.ID, pool[0].ID)
}

func TestTaskRepository_ApprovedTaskIDsByAssignee(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task, err := repo.CreateTask(ctx, "owner-1", "Task", "Desc")
	require.NoError(t, err)

	ids, err := repo.ApprovedTaskIDsByAssignee(ctx, "worker-1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	assignee := "worker-1"
	task.Status = constants.StatusApproved
	task.AssigneeID = &assignee
	require.NoError(t, repo.Transition(ctx, task, constants.StatusUnassigned))

	ids, err = repo.ApprovedTaskIDsByAssignee(ctx, "worker-1")
	require.NoError(t, err)
	assert.Equal(t, []string{task.ID}, ids)
}

func TestTaskRepository_FindByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestPropertyRepository_UserPropertyStaysDisjoint(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPropertyRepository(db)
	ctx := context.Background()

	property, err := repo.CreateProperty(ctx, "creator-1", "design")
	require.NoError(t, err)

	require.NoError(t, repo.SetUserProperty(ctx, "worker-1", property.ID, true))
	liked, disliked, err := repo.UserPreferenceIDs(ctx, "worker-1")
	require.NoError(t, err)
	assert.Equal(t, []string{property.ID}, liked)
	assert.Empty(t, disliked)

	// Re-declaring flips the flag instead of adding a second row.
	require.NoError(t, repo.SetUserProperty(ctx, "worker-1", property.ID, false))
	liked, disliked, err = repo.UserPreferenceIDs(ctx, "worker-1")
	require.NoError(t, err)
	assert.Empty(t, liked)
	assert.Equal(t, []string{property.ID}, disliked)
}

func TestPropertyRepository_TaskPropertyIDsBulkLoad(t *testing.T) {
	db := setupTestDB(t)
	properties := NewPropertyRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	design, err := properties.CreateProperty(ctx, "creator-1", "design")
	require.NoError(t, err)
	writing, err := properties.CreateProperty(ctx, "creator-1", "writing")
	require.NoError(t, err)

	tagged, err := tasks.CreateTask(ctx, "owner-1", "Tagged", "Desc")
	require.NoError(t, err)
	bare, err := tasks.CreateTask(ctx, "owner-1", "Bare", "Desc")
	require.NoError(t, err)

	require.NoError(t, properties.AttachToTask(ctx, tagged.ID, design.ID))
	require.NoError(t, properties.AttachToTask(ctx, tagged.ID, writing.ID))
	// Attaching twice is a no-op.
	require.NoError(t, properties.AttachToTask(ctx, tagged.ID, design.ID))

	sets, err := properties.TaskPropertyIDs(ctx, []string{tagged.ID, bare.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{design.ID, writing.ID}, sets[tagged.ID])
	_, ok := sets[bare.ID]
	assert.False(t, ok, "untagged tasks are absent from the map")
}

func TestBehaviorRepository_ReactionUpsert(t *testing.T) {
	db := setupTestDB(t)
	behaviors := NewBehaviorRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	task, err := tasks.CreateTask(ctx, "owner-1", "Task", "Desc")
	require.NoError(t, err)

	require.NoError(t, behaviors.SetReaction(ctx, "worker-1", task.ID, true))
	liked, disliked, err := behaviors.ReactedTaskIDs(ctx, "worker-1")
	require.NoError(t, err)
	assert.Equal(t, []string{task.ID}, liked)
	assert.Empty(t, disliked)

	require.NoError(t, behaviors.SetReaction(ctx, "worker-1", task.ID, false))
	liked, disliked, err = behaviors.ReactedTaskIDs(ctx, "worker-1")
	require.NoError(t, err)
	assert.Empty(t, liked)
	assert.Equal(t, []string{task.ID}, disliked)

	require.NoError(t, behaviors.DeleteReaction(ctx, "worker-1", task.ID))
	liked, disliked, err = behaviors.ReactedTaskIDs(ctx, "worker-1")
	require.NoError(t, err)
	assert.Empty(t, liked)
	assert.Empty(t, disliked)
}
