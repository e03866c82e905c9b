package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/briankip/cams/internal/app/models"
	"github.com/briankip/cams/internal/app/repositories"
	"github.com/briankip/cams/internal/pkg/apperrors"
	"github.com/briankip/cams/internal/pkg/dberrors"
)

// CatalogService handles department, course, class and unit management.
// Creation paths validate referenced parent ids before insert, so a
// course/class/unit row can never reference a missing parent.
type CatalogService struct {
	catalogRepo repositories.ICatalogRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(catalogRepo repositories.ICatalogRepository) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
	}
}

// GetAllDepartments retrieves all departments
func (s *CatalogService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.catalogRepo.GetAllDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// CreateDepartment creates a new department
func (s *CatalogService) CreateDepartment(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, apperrors.NewValidationError("Name is required.")
	}

	id, err := s.catalogRepo.CreateDepartment(ctx, name)
	if err != nil {
		return 0, apperrors.NewPersistenceError(err, "Failed to add department.")
	}
	return id, nil
}

// GetCoursesByDepartment retrieves courses offered by a department
func (s *CatalogService) GetCoursesByDepartment(ctx context.Context, departmentID int64) ([]*models.Course, error) {
	if departmentID <= 0 {
		return nil, apperrors.NewValidationError("Department ID is required.")
	}

	courses, err := s.catalogRepo.GetCoursesByDepartment(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// CreateCourse creates a new course under an existing department.
func (s *CatalogService) CreateCourse(ctx context.Context, name string, departmentID int64) (int64, error) {
	if strings.TrimSpace(name) == "" || departmentID <= 0 {
		return 0, apperrors.NewValidationError("Name and department_id are required.")
	}

	exists, err := s.catalogRepo.DepartmentExists(ctx, departmentID)
	if err != nil {
		return 0, fmt.Errorf("error checking department: %w", err)
	}
	if !exists {
		return 0, apperrors.NewValidationError("Invalid department ID.")
	}

	id, err := s.catalogRepo.CreateCourse(ctx, name, departmentID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewConflictError("Course name already exists.")
		}
		return 0, apperrors.NewPersistenceError(err, "Failed to add course.")
	}
	return id, nil
}

// GetClassesByCourse retrieves classes for a course
func (s *CatalogService) GetClassesByCourse(ctx context.Context, courseID int64) ([]*models.Class, error) {
	if courseID <= 0 {
		return nil, apperrors.NewValidationError("Course ID is required.")
	}

	classes, err := s.catalogRepo.GetClassesByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classes: %w", err)
	}
	return classes, nil
}

// GetClassesByDepartment retrieves classes belonging to a department
func (s *CatalogService) GetClassesByDepartment(ctx context.Context, departmentID int64) ([]*models.Class, error) {
	if departmentID <= 0 {
		return nil, apperrors.NewValidationError("Department ID is required.")
	}

	classes, err := s.catalogRepo.GetClassesByDepartment(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classes: %w", err)
	}
	return classes, nil
}

// CreateClass creates a new class after validating its parents exist.
func (s *CatalogService) CreateClass(ctx context.Context, name string, departmentID, courseID int64) (int64, error) {
	if strings.TrimSpace(name) == "" || departmentID <= 0 || courseID <= 0 {
		return 0, apperrors.NewValidationError("Name, departmentId, and courseId are required.")
	}

	if err := s.validateParents(ctx, departmentID, courseID); err != nil {
		return 0, err
	}

	id, err := s.catalogRepo.CreateClass(ctx, name, departmentID, courseID)
	if err != nil {
		return 0, apperrors.NewPersistenceError(err, "Failed to add class.")
	}
	return id, nil
}

// GetUnitsByCourse retrieves units taught in a course
func (s *CatalogService) GetUnitsByCourse(ctx context.Context, courseID int64) ([]*models.Unit, error) {
	if courseID <= 0 {
		return nil, apperrors.NewValidationError("Course ID is required.")
	}

	units, err := s.catalogRepo.GetUnitsByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving units: %w", err)
	}
	return units, nil
}

// CreateUnit creates a new unit after validating its parents exist.
func (s *CatalogService) CreateUnit(ctx context.Context, name, code string, departmentID, courseID int64) (int64, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(code) == "" || departmentID <= 0 || courseID <= 0 {
		return 0, apperrors.NewValidationError("Name, code, departmentId, and courseId are required.")
	}

	if err := s.validateParents(ctx, departmentID, courseID); err != nil {
		return 0, err
	}

	id, err := s.catalogRepo.CreateUnit(ctx, name, code, departmentID, courseID)
	if err != nil {
		return 0, apperrors.NewPersistenceError(err, "Failed to add unit.")
	}
	return id, nil
}

func (s *CatalogService) validateParents(ctx context.Context, departmentID, courseID int64) error {
	exists, err := s.catalogRepo.DepartmentExists(ctx, departmentID)
	if err != nil {
		return fmt.Errorf("error checking department: %w", err)
	}
	if !exists {
		return apperrors.NewValidationError("Invalid department ID.")
	}

	exists, err = s.catalogRepo.CourseExists(ctx, courseID)
	if err != nil {
		return fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return apperrors.NewValidationError("Invalid course ID.")
	}

	return nil
}
