// Package seed creates default data the application expects on first start
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/briankip/cams/internal/app/models"
	appRepos "github.com/briankip/cams/internal/app/repositories"
	"github.com/briankip/cams/internal/pkg/apperrors"
	"github.com/briankip/cams/internal/pkg/auth"
	"github.com/briankip/cams/internal/pkg/dberrors"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "Admin@123"
)

// CreateDefaultData seeds a sample department catalog and the default
// admin account if they don't exist. Admin accounts are never created
// through the registration workflow.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	catalogRepo := appRepos.NewCatalogRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Sample catalog --- //
	departments := map[string][]string{
		"Information Communication Technology": {"Diploma in ICT", "Certificate in ICT"},
		"Business Studies":                     {"Diploma in Business Management"},
	}

	existing, err := catalogRepo.GetAllDepartments(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing departments for seeding")
		finalErr = errors.Join(finalErr, err)
	} else if len(existing) == 0 {
		for deptName, courseNames := range departments {
			deptID, err := catalogRepo.CreateDepartment(ctx, deptName)
			if err != nil {
				if !dberrors.IsUniqueViolation(err) {
					lgr.Error().Err(err).Str("department", deptName).Msg("Error seeding department")
					finalErr = errors.Join(finalErr, err)
				}
				continue
			}

			for _, courseName := range courseNames {
				if _, err := catalogRepo.CreateCourse(ctx, courseName, deptID); err != nil && !dberrors.IsUniqueViolation(err) {
					lgr.Error().Err(err).Str("course", courseName).Msg("Error seeding course")
					finalErr = errors.Join(finalErr, err)
				}
			}
		}
	}

	// --- Default admin user --- //
	_, err = userRepo.GetByUsername(ctx, defaultAdminUsername)
	if err == nil {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return finalErr
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Creating default admin user...")

	hashedPassword, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return errors.Join(finalErr, err)
	}

	admin := &appModels.User{
		Name:        "System Administrator",
		Username:    defaultAdminUsername,
		Password:    hashedPassword,
		Role:        appModels.RoleAdmin,
		ExtraFields: []byte("{}"),
	}

	adminID, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			lgr.Info().Msg("Admin user already exists, skipping creation")
			return finalErr
		}
		lgr.Error().Err(err).Msg("Error creating admin user")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin user created")
	return finalErr
}
