package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-match-service.com/task-match-service/internal/constants"
	model "task-match-service.com/task-match-service/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	user := &model.User{ID: "user-1", Role: constants.RoleEmployee}
	token, err := tm.Issue(user)
	require.NoError(t, err)

	actor, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", actor.ID)
	assert.Equal(t, constants.RoleEmployee, actor.Role)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Signed by someone else.
	other := NewTokenManager("other-secret", time.Hour)
	token, err := other.Issue(&model.User{ID: "user-1", Role: constants.RoleEmployer})
	require.NoError(t, err)
	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Expired.
	expired := NewTokenManager("test-secret", -time.Minute)
	token, err = expired.Issue(&model.User{ID: "user-1", Role: constants.RoleEmployer})
	require.NoError(t, err)
	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass!", hash)

	assert.True(t, ComparePassword(hash, "s3cret-pass!"))
	assert.False(t, ComparePassword(hash, "wrong-pass"))
}
