package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/briankip/cams/internal/app/models/dto"
	"github.com/briankip/cams/internal/app/services"
	"github.com/briankip/cams/internal/middleware"
)

// CatalogController handles department, course, class and unit management
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetAllDepartments lists all departments.
func (c *CatalogController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.catalogService.GetAllDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      departments,
		Timestamp: time.Now(),
	})
}

// CreateDepartment adds a new department.
func (c *CatalogController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.catalogService.CreateDepartment(ctx.Request.Context(), req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.CreatedResponse{Message: fmt.Sprintf("%s added successfully.", req.Name), ID: id},
		Timestamp: time.Now(),
	})
}

// GetCoursesByDepartment lists courses for the department query parameter.
func (c *CatalogController) GetCoursesByDepartment(ctx *gin.Context) {
	departmentID, ok := parseQueryID(ctx, "department", "Department ID is required.")
	if !ok {
		return
	}

	courses, err := c.catalogService.GetCoursesByDepartment(ctx.Request.Context(), departmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// CreateCourse adds a new course under a department.
func (c *CatalogController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.catalogService.CreateCourse(ctx.Request.Context(), req.Name, req.DepartmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.CreatedResponse{Message: fmt.Sprintf("%s added successfully.", req.Name), ID: id},
		Timestamp: time.Now(),
	})
}

// GetClassesByCourse lists classes for the course query parameter.
func (c *CatalogController) GetClassesByCourse(ctx *gin.Context) {
	courseID, ok := parseQueryID(ctx, "course", "Course ID is required.")
	if !ok {
		return
	}

	classes, err := c.catalogService.GetClassesByCourse(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classes,
		Timestamp: time.Now(),
	})
}

// GetClassesByDepartment lists classes for the department query parameter.
func (c *CatalogController) GetClassesByDepartment(ctx *gin.Context) {
	departmentID, ok := parseQueryID(ctx, "department", "Department ID is required.")
	if !ok {
		return
	}

	classes, err := c.catalogService.GetClassesByDepartment(ctx.Request.Context(), departmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classes,
		Timestamp: time.Now(),
	})
}

// CreateClass adds a new class.
func (c *CatalogController) CreateClass(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.catalogService.CreateClass(ctx.Request.Context(), req.Name, req.DepartmentID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.CreatedResponse{Message: fmt.Sprintf("%s added successfully.", req.Name), ID: id},
		Timestamp: time.Now(),
	})
}

// GetUnitsByCourse lists units for the course query parameter.
func (c *CatalogController) GetUnitsByCourse(ctx *gin.Context) {
	courseID, ok := parseQueryID(ctx, "course", "Course ID is required.")
	if !ok {
		return
	}

	units, err := c.catalogService.GetUnitsByCourse(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      units,
		Timestamp: time.Now(),
	})
}

// CreateUnit adds a new unit.
func (c *CatalogController) CreateUnit(ctx *gin.Context) {
	var req dto.CreateUnitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.catalogService.CreateUnit(ctx.Request.Context(), req.Name, req.Code, req.DepartmentID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.CreatedResponse{Message: fmt.Sprintf("%s added successfully.", req.Name), ID: id},
		Timestamp: time.Now(),
	})
}

// parseQueryID reads a positive integer id from a query parameter,
// responding with a validation error when missing or malformed.
func parseQueryID(ctx *gin.Context, name, message string) (int64, bool) {
	value := ctx.Query(name)
	if value == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
		errorDetail = errorDetail.WithDetails("Must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}

	return id, true
}
