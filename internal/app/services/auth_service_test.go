package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briankip/cams/internal/app/models"
	"github.com/briankip/cams/internal/app/models/dto"
	"github.com/briankip/cams/internal/pkg/apperrors"
	"github.com/briankip/cams/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()

	userRepo := newFakeUserRepo()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "cams.test",
	})
	return NewAuthService(userRepo, jwtService, zerolog.Nop()), userRepo
}

func seedLoginUser(t *testing.T, userRepo *fakeUserRepo, username, password string) *models.User {
	t.Helper()

	hashed, err := auth.HashPassword(password)
	require.NoError(t, err)

	return userRepo.add(&models.User{
		Name:        "Jane Wanjiku",
		Username:    username,
		Password:    hashed,
		Role:        models.RoleStudent,
		ExtraFields: []byte(`{"registrationNumber":"DIT/2209/045"}`),
	})
}

func TestLoginSuccess(t *testing.T) {
	svc, userRepo := newAuthFixture(t)
	user := seedLoginUser(t, userRepo, "DIT/2209/045", "Passw0rd!")

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "DIT/2209/045",
		Password: "Passw0rd!",
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "DIT/2209/045", resp.Username)
	assert.Equal(t, "Student", resp.Role)
	assert.JSONEq(t, `{"registrationNumber":"DIT/2209/045"}`, string(resp.ExtraFields))
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, int64(3600), resp.Token.ExpiresIn)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, userRepo := newAuthFixture(t)
	seedLoginUser(t, userRepo, "DIT/2209/045", "Passw0rd!")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "DIT/2209/045",
		Password: "WrongPass1!",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuthFixture(t)

	// Unknown username and bad password are indistinguishable to the client
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "T999",
		Password: "Passw0rd!",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginMissingFields(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: " ", Password: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLoginEmptyExtraFieldsDefaulted(t *testing.T) {
	svc, userRepo := newAuthFixture(t)

	hashed, err := auth.HashPassword("Admin@123")
	require.NoError(t, err)
	userRepo.add(&models.User{
		Name:     "System Administrator",
		Username: "admin",
		Password: hashed,
		Role:     models.RoleAdmin,
	})

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "Admin@123",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(resp.ExtraFields))
}
