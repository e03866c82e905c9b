package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/briankip/cams/internal/app/models/dto"
	"github.com/briankip/cams/internal/app/services"
	"github.com/briankip/cams/internal/middleware"
)

// AttendanceController handles attendance recording and reporting
type AttendanceController struct {
	attendanceService *services.AttendanceService
	logger            zerolog.Logger
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService, logger zerolog.Logger) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
		logger:            logger,
	}
}

// SaveAttendance records a batch of attendance marks for one session.
func (c *AttendanceController) SaveAttendance(ctx *gin.Context) {
	var req dto.SaveAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid attendance payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.attendanceService.SaveAttendance(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Attendance saved successfully."},
		Timestamp: time.Now(),
	})
}

// GetStudentsByClass lists the students of the class query parameter.
func (c *AttendanceController) GetStudentsByClass(ctx *gin.Context) {
	classID, ok := parseQueryID(ctx, "class", "Class ID is required.")
	if !ok {
		return
	}

	students, err := c.attendanceService.GetStudentsByClass(ctx.Request.Context(), classID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// GetClassSummary returns per-student attendance percentages for a class.
func (c *AttendanceController) GetClassSummary(ctx *gin.Context) {
	classID, ok := parseQueryID(ctx, "class", "Class ID is required.")
	if !ok {
		return
	}

	summary, err := c.attendanceService.GetClassSummary(ctx.Request.Context(), classID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      summary,
		Timestamp: time.Now(),
	})
}
