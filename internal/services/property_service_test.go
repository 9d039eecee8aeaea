package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "task-match-service.com/task-match-service/internal/errors"
)

func TestPropertyService_AttachRequiresTaskOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := employer("boss-1")

	property, err := env.propertySvc.CreateProperty(ctx, owner, "design")
	require.NoError(t, err)
	task, err := env.lifecycle.Create(ctx, owner, "Task", "Desc")
	require.NoError(t, err)

	err = env.propertySvc.AttachTaskProperty(ctx, employer("boss-2"), task.ID, property.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = env.propertySvc.AttachTaskProperty(ctx, owner, task.ID, property.ID)
	require.NoError(t, err)

	err = env.propertySvc.DetachTaskProperty(ctx, employer("boss-2"), task.ID, property.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestPropertyService_AttachUnknownPropertyFails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := employer("boss-1")

	task, err := env.lifecycle.Create(ctx, owner, "Task", "Desc")
	require.NoError(t, err)

	err = env.propertySvc.AttachTaskProperty(ctx, owner, task.ID, "no-such-property")
	assert.ErrorIs(t, err, apperrors.ErrPropertyNotFound)
}

func TestPropertyService_UserPropertyIsEmployeeOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	property, err := env.propertySvc.CreateProperty(ctx, employer("boss-1"), "design")
	require.NoError(t, err)

	err = env.propertySvc.SetUserProperty(ctx, employer("boss-1"), property.ID, true)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = env.propertySvc.SetUserProperty(ctx, employee("worker-1"), property.ID, true)
	require.NoError(t, err)
}

func TestPropertyService_DeletePropertyCreatorOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	property, err := env.propertySvc.CreateProperty(ctx, employer("boss-1"), "design")
	require.NoError(t, err)

	err = env.propertySvc.DeleteProperty(ctx, employer("boss-2"), property.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = env.propertySvc.DeleteProperty(ctx, employer("boss-1"), property.ID)
	require.NoError(t, err)
}

func TestPropertyService_ReactionRequiresExistingTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.propertySvc.SetReaction(ctx, employee("worker-1"), "no-such-task", true)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}
