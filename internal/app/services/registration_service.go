package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/briankip/cams/internal/app/models"
	"github.com/briankip/cams/internal/app/models/dto"
	"github.com/briankip/cams/internal/app/repositories"
	"github.com/briankip/cams/internal/pkg/apperrors"
	"github.com/briankip/cams/internal/pkg/auth"
	"github.com/briankip/cams/internal/pkg/dberrors"
)

var (
	idNumberPattern  = regexp.MustCompile(`^\d{8}$`)
	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	digitPattern     = regexp.MustCompile(`\d`)
	specialPattern   = regexp.MustCompile(`[!@#$%^&*]`)
)

// RegistrationService owns the user registration workflow. Each request
// walks the steps role validation -> foreign-key validation -> uniqueness
// checks -> username generation -> insert, aborting at the first failure.
// No write happens before the final step, so an abandoned request leaves
// nothing to compensate.
type RegistrationService struct {
	userRepo    repositories.IUserRepository
	catalogRepo repositories.ICatalogRepository
	logger      zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(
	userRepo repositories.IUserRepository,
	catalogRepo repositories.ICatalogRepository,
	logger zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Register runs the full registration workflow and persists the new user.
func (s *RegistrationService) Register(ctx context.Context, req *dto.RegisterUserRequest) (*models.User, error) {
	if req.Role == "" || strings.TrimSpace(req.Name) == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("Role, name, and password are required.")
	}

	role := models.Role(req.Role)
	if !models.IsRegisterable(role) {
		return nil, apperrors.NewValidationError("Invalid role.")
	}

	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	fields := models.RoleFields{
		RegistrationNumber: req.RegistrationNumber,
		DepartmentID:       req.DepartmentID,
		CourseID:           req.CourseID,
		ClassID:            req.ClassID,
		IDNumber:           req.IDNumber,
	}

	if err := validateRoleFields(role, fields); err != nil {
		return nil, err
	}

	if err := s.validateForeignKeys(ctx, fields.DepartmentID, fields.CourseID, 0); err != nil {
		return nil, err
	}

	if err := s.checkUniqueness(ctx, role, fields); err != nil {
		return nil, err
	}

	username, err := s.generateUsername(ctx, role, fields)
	if err != nil {
		return nil, err
	}

	user, err := s.insertUser(ctx, req.Name, username, req.Password, role, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Int64("userId", user.ID).
		Msg("User registered")

	return user, nil
}

// validatePassword enforces the password rules: at least 8 characters,
// one uppercase letter, one digit and one special character.
func validatePassword(password string) error {
	if len(password) < 8 ||
		!uppercasePattern.MatchString(password) ||
		!digitPattern.MatchString(password) ||
		!specialPattern.MatchString(password) {
		return apperrors.NewValidationError(
			"Password must be at least 8 characters long, include one uppercase letter, one number, and one special character (!@#$%^&*).")
	}
	return nil
}

// validateRoleFields checks role-conditional field requirements. Roles
// outside the known set impose no requirement here; the caller rejects
// them via the registration allow-list.
func validateRoleFields(role models.Role, fields models.RoleFields) error {
	switch role {
	case models.RoleStudent, models.RoleClassRep:
		if fields.RegistrationNumber == "" {
			return apperrors.NewValidationError("Registration number is required.")
		}
		if fields.DepartmentID == 0 {
			return apperrors.NewValidationError("Department ID is required.")
		}
		if fields.CourseID == 0 {
			return apperrors.NewValidationError("Course ID is required.")
		}
		if fields.ClassID == 0 {
			return apperrors.NewValidationError("Class ID is required.")
		}
	case models.RoleTrainer, models.RoleHOD:
		if fields.IDNumber == "" {
			return apperrors.NewValidationError("ID Number is required for Trainer/HOD.")
		}
		if !idNumberPattern.MatchString(fields.IDNumber) {
			return apperrors.NewValidationError("Invalid ID Number format. Must be an 8-digit number.")
		}
	}
	return nil
}

// validateForeignKeys confirms referenced catalog ids exist. The class id
// is only checked when non-zero; user registration passes zero for it and
// relies on the catalog path to have validated classes at creation.
func (s *RegistrationService) validateForeignKeys(ctx context.Context, departmentID, courseID, classID int64) error {
	if departmentID != 0 {
		exists, err := s.catalogRepo.DepartmentExists(ctx, departmentID)
		if err != nil {
			return fmt.Errorf("error checking department: %w", err)
		}
		if !exists {
			return apperrors.NewValidationError("Invalid department ID.")
		}
	}
	if courseID != 0 {
		exists, err := s.catalogRepo.CourseExists(ctx, courseID)
		if err != nil {
			return fmt.Errorf("error checking course: %w", err)
		}
		if !exists {
			return apperrors.NewValidationError("Invalid course ID.")
		}
	}
	if classID != 0 {
		exists, err := s.catalogRepo.ClassExists(ctx, classID)
		if err != nil {
			return fmt.Errorf("error checking class: %w", err)
		}
		if !exists {
			return apperrors.NewValidationError("Invalid class ID.")
		}
	}
	return nil
}

// checkUniqueness runs the role-appropriate duplicate check. This is
// check-then-insert with no transactional isolation; the unique indexes
// on the users table close the race at insert time.
//
// ClassRep skips the registration-number check: up to two ClassRep rows
// legitimately share a registration number with the Student row, and the
// cap is enforced during username generation instead.
func (s *RegistrationService) checkUniqueness(ctx context.Context, role models.Role, fields models.RoleFields) error {
	switch role {
	case models.RoleStudent:
		exists, err := s.userRepo.RegistrationNumberExists(ctx, fields.RegistrationNumber)
		if err != nil {
			return fmt.Errorf("error checking registration number: %w", err)
		}
		if exists {
			return apperrors.NewConflictError("Registration number already exists.")
		}
	case models.RoleTrainer, models.RoleHOD:
		exists, err := s.userRepo.IDNumberExists(ctx, fields.IDNumber)
		if err != nil {
			return fmt.Errorf("error checking ID number: %w", err)
		}
		if exists {
			return apperrors.NewConflictError("ID Number already exists.")
		}
	}
	return nil
}

// generateUsername derives the role-specific username. Trainer and HOD
// usernames number live rows, so a number freed by a deletion can be
// handed out again; that matches the recorded behavior of the system and
// is why the username column carries its own unique index.
func (s *RegistrationService) generateUsername(ctx context.Context, role models.Role, fields models.RoleFields) (string, error) {
	switch role {
	case models.RoleTrainer:
		count, err := s.userRepo.CountByRole(ctx, models.RoleTrainer)
		if err != nil {
			return "", fmt.Errorf("error counting trainers: %w", err)
		}
		return fmt.Sprintf("T%03d", count+1), nil

	case models.RoleHOD:
		count, err := s.userRepo.CountByRole(ctx, models.RoleHOD)
		if err != nil {
			return "", fmt.Errorf("error counting HODs: %w", err)
		}
		return fmt.Sprintf("HOD%03d", count+1), nil

	case models.RoleClassRep:
		count, err := s.userRepo.CountClassReps(ctx, fields.RegistrationNumber)
		if err != nil {
			return "", fmt.Errorf("error counting class reps: %w", err)
		}
		n := count + 1
		if n > 2 {
			return "", apperrors.NewConflictError("Each class can only have two ClassReps.")
		}
		return fmt.Sprintf("%s/C-%d", fields.RegistrationNumber, n), nil

	case models.RoleStudent:
		return fields.RegistrationNumber, nil
	}

	return "", apperrors.NewValidationError("Invalid role.")
}

// insertUser persists the validated, username-assigned record. A unique
// violation here means a concurrent registration won the race after our
// checks passed; it is reported as a persistence failure, not a conflict
// the client caused.
func (s *RegistrationService) insertUser(ctx context.Context, name, username, password string, role models.Role, fields models.RoleFields) (*models.User, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	extraFields, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("error serializing role fields: %w", err)
	}

	user := &models.User{
		Name:        name,
		Username:    username,
		Password:    hashed,
		Role:        role,
		ExtraFields: extraFields,
	}
	if fields.IDNumber != "" {
		user.IDNumber = &fields.IDNumber
	}
	if fields.DepartmentID != 0 {
		user.DepartmentID = &fields.DepartmentID
	}
	if fields.CourseID != 0 {
		user.CourseID = &fields.CourseID
	}
	if fields.ClassID != 0 {
		user.ClassID = &fields.ClassID
	}
	if fields.RegistrationNumber != "" {
		user.RegistrationNumber = &fields.RegistrationNumber
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			s.logger.Error().Err(err).Str("username", username).
				Msg("Uniqueness race lost at insert time")
			return nil, apperrors.NewPersistenceError(err, "Failed to add user.")
		}
		return nil, apperrors.NewPersistenceError(err, "Failed to add user.")
	}

	user.ID = id
	return user, nil
}
