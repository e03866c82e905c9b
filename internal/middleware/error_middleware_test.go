package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/briankip/cams/internal/pkg/apperrors"
)

func respondWith(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperrors.NewValidationError("Invalid department ID."), http.StatusBadRequest},
		{"conflict", apperrors.NewConflictError("Registration number already exists."), http.StatusConflict},
		{"persistence", apperrors.NewPersistenceError(errors.New("db down"), "Failed to add user."), http.StatusInternalServerError},
		{"not found", apperrors.NewNotFoundError("User not found."), http.StatusNotFound},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"forbidden", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := respondWith(tc.err)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestHandleAPIErrorMessagePropagation(t *testing.T) {
	w := respondWith(apperrors.NewValidationError("Invalid department ID."))
	assert.Contains(t, w.Body.String(), "Invalid department ID.")

	// Unclassified failures never leak internals
	w = respondWith(errors.New("pq: connection refused"))
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), "Internal server error")
}
