package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/briankip/cams/internal/app/models"
	"github.com/briankip/cams/internal/app/repositories"
	"github.com/briankip/cams/internal/pkg/apperrors"
)

// UserService handles administrative user operations
type UserService struct {
	userRepo repositories.IUserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetAllUsers lists every user row.
func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user by id.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("User ID is required.")
	}

	err := s.userRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.NewNotFoundError("User not found.")
		}
		return apperrors.NewPersistenceError(err, "Failed to delete user.")
	}
	return nil
}
