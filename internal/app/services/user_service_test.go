package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briankip/cams/internal/app/models"
	"github.com/briankip/cams/internal/pkg/apperrors"
)

func TestGetAllUsers(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	userRepo.add(&models.User{Name: "Jane", Username: "DIT/2209/045", Role: models.RoleStudent})
	userRepo.add(&models.User{Name: "John", Username: "T001", Role: models.RoleTrainer})

	users, err := svc.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestDeleteUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	user := userRepo.add(&models.User{Name: "Jane", Username: "DIT/2209/045", Role: models.RoleStudent})

	require.NoError(t, svc.DeleteUser(context.Background(), user.ID))
	assert.Empty(t, userRepo.users)

	err := svc.DeleteUser(context.Background(), user.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.EqualError(t, err, "User not found.")

	err = svc.DeleteUser(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
