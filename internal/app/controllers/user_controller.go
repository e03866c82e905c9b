// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/briankip/cams/internal/app/models/dto"
	"github.com/briankip/cams/internal/app/services"
	"github.com/briankip/cams/internal/middleware"
)

// UserController handles user registration and administration
type UserController struct {
	registrationService *services.RegistrationService
	userService         *services.UserService
	logger              zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(registrationService *services.RegistrationService, userService *services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		registrationService: registrationService,
		userService:         userService,
		logger:              logger,
	}
}

// Register handles user registration. The workflow validates role fields,
// foreign keys and uniqueness, generates the role-specific username and
// inserts the row; any step failing rejects the request without side
// effects.
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	c.logger.Info().
		Str("role", req.Role).
		Str("name", req.Name).
		Msg("User registration request received")

	user, err := c.registrationService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("role", req.Role).Msg("Registration rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.RegisterUserResponse{
			Message:  "User added successfully.",
			Username: user.Username,
			ID:       user.ID,
		},
		Timestamp: time.Now(),
	})
}

// GetAllUsers lists all users.
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      users,
		Timestamp: time.Now(),
	})
}

// DeleteUser removes a user by id.
func (c *UserController) DeleteUser(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID")
		errorDetail = errorDetail.WithDetails("User ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.userService.DeleteUser(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userId", id).Msg("User deleted")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "User deleted successfully."},
		Timestamp: time.Now(),
	})
}
