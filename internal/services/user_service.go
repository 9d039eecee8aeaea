package services

import (
	"context"

	"task-match-service.com/task-match-service/internal/auth"
	"task-match-service.com/task-match-service/internal/constants"
	apperrors "task-match-service.com/task-match-service/internal/errors"
	model "task-match-service.com/task-match-service/internal/models"
	repository "task-match-service.com/task-match-service/internal/repositories"
)

type UserService struct {
	users  *repository.UserRepository
	tokens *auth.TokenManager
}

func NewUserService(users *repository.UserRepository, tokens *auth.TokenManager) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Register creates a user with a fixed role. The role is chosen once at
// signup; there is no dual-profile and no later switch.
func (s *UserService) Register(ctx context.Context, username, email, password string, role constants.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, apperrors.ErrPermissionDenied
	}

	taken, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrDuplicateRecord
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.users.CreateUser(ctx, username, email, hash, role)
}

// Login verifies credentials and issues an access token carrying the
// user's id and role.
func (s *UserService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !auth.ComparePassword(user.PasswordHash, password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}
