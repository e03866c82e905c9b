package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briankip/cams/internal/app/models"
	"github.com/briankip/cams/internal/app/models/dto"
	"github.com/briankip/cams/internal/pkg/apperrors"
	"github.com/briankip/cams/internal/pkg/auth"
)

type registrationFixture struct {
	svc          *RegistrationService
	userRepo     *fakeUserRepo
	catalogRepo  *fakeCatalogRepo
	departmentID int64
	courseID     int64
	classID      int64
}

func newRegistrationFixture() *registrationFixture {
	userRepo := newFakeUserRepo()
	catalogRepo := newFakeCatalogRepo()

	departmentID := catalogRepo.addDepartment("Information Communication Technology")
	courseID := catalogRepo.addCourse("Diploma in ICT", departmentID)
	classID := catalogRepo.addClass("DIT 22 Sep", departmentID, courseID)

	return &registrationFixture{
		svc:          NewRegistrationService(userRepo, catalogRepo, zerolog.Nop()),
		userRepo:     userRepo,
		catalogRepo:  catalogRepo,
		departmentID: departmentID,
		courseID:     courseID,
		classID:      classID,
	}
}

func (f *registrationFixture) studentRequest(regNo string) *dto.RegisterUserRequest {
	return &dto.RegisterUserRequest{
		Name:               "Jane Wanjiku",
		Password:           "Passw0rd!",
		Role:               "Student",
		RegistrationNumber: regNo,
		DepartmentID:       f.departmentID,
		CourseID:           f.courseID,
		ClassID:            f.classID,
	}
}

func (f *registrationFixture) classRepRequest(regNo string) *dto.RegisterUserRequest {
	req := f.studentRequest(regNo)
	req.Role = "ClassRep"
	return req
}

func TestRegisterRequiresRoleNameAndPassword(t *testing.T) {
	f := newRegistrationFixture()

	cases := []*dto.RegisterUserRequest{
		{Name: "", Password: "Passw0rd!", Role: "Student"},
		{Name: "Jane", Password: "", Role: "Student"},
		{Name: "Jane", Password: "Passw0rd!", Role: ""},
	}

	for _, req := range cases {
		_, err := f.svc.Register(context.Background(), req)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.EqualError(t, err, "Role, name, and password are required.")
	}
	assert.Zero(t, f.userRepo.createCalls)
}

func TestRegisterRejectsUnlistedRoles(t *testing.T) {
	f := newRegistrationFixture()

	for _, role := range []string{"Admin", "Janitor", "student"} {
		req := &dto.RegisterUserRequest{Name: "Jane", Password: "Passw0rd!", Role: role}
		_, err := f.svc.Register(context.Background(), req)
		require.Error(t, err, "role %q", role)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.EqualError(t, err, "Invalid role.")
	}
}

func TestValidateRoleFieldsUnknownRoleImposesNothing(t *testing.T) {
	// Roles outside the known set carry no field requirements; the
	// allow-list in Register is what keeps them out.
	assert.NoError(t, validateRoleFields(models.Role("Janitor"), models.RoleFields{}))
	assert.NoError(t, validateRoleFields(models.RoleAdmin, models.RoleFields{}))
}

func TestValidatePassword(t *testing.T) {
	weak := []string{
		"short1!",    // under 8 chars
		"passw0rd!",  // no uppercase
		"Password!",  // no digit
		"Passw0rdX",  // no special character
		"Passw0rd?",  // special character outside the allowed set
	}
	for _, password := range weak {
		err := validatePassword(password)
		require.Error(t, err, "password %q", password)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}

	assert.NoError(t, validatePassword("Passw0rd!"))
	assert.NoError(t, validatePassword("Str0ng&Secret"))
}

func TestRegisterTrainerIDNumberFormat(t *testing.T) {
	f := newRegistrationFixture()

	for _, idNumber := range []string{"1234567", "123456789", "1234567A", ""} {
		req := &dto.RegisterUserRequest{
			Name:     "John Trainer",
			Password: "Passw0rd!",
			Role:     "Trainer",
			IDNumber: idNumber,
		}
		_, err := f.svc.Register(context.Background(), req)
		require.Error(t, err, "id_number %q", idNumber)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
	assert.Zero(t, f.userRepo.createCalls)

	user, err := f.svc.Register(context.Background(), &dto.RegisterUserRequest{
		Name:     "John Trainer",
		Password: "Passw0rd!",
		Role:     "Trainer",
		IDNumber: "12345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "T001", user.Username)
}

func TestRegisterTrainerUsernameSequence(t *testing.T) {
	f := newRegistrationFixture()

	for i := 0; i < 9; i++ {
		idNumber := fmt.Sprintf("1000000%d", i)
		f.userRepo.add(&models.User{
			Name:     fmt.Sprintf("Trainer %d", i+1),
			Username: fmt.Sprintf("T%03d", i+1),
			Role:     models.RoleTrainer,
			IDNumber: &idNumber,
		})
	}

	user, err := f.svc.Register(context.Background(), &dto.RegisterUserRequest{
		Name:     "Tenth Trainer",
		Password: "Passw0rd!",
		Role:     "Trainer",
		IDNumber: "20000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "T010", user.Username)
}

func TestRegisterHODUsername(t *testing.T) {
	f := newRegistrationFixture()

	user, err := f.svc.Register(context.Background(), &dto.RegisterUserRequest{
		Name:     "Head Of Department",
		Password: "Passw0rd!",
		Role:     "HOD",
		IDNumber: "87654321",
	})
	require.NoError(t, err)
	assert.Equal(t, "HOD001", user.Username)
	assert.Equal(t, models.RoleHOD, user.Role)
}

func TestRegisterDuplicateIDNumber(t *testing.T) {
	f := newRegistrationFixture()

	idNumber := "12345678"
	f.userRepo.add(&models.User{Username: "T001", Role: models.RoleTrainer, IDNumber: &idNumber})

	_, err := f.svc.Register(context.Background(), &dto.RegisterUserRequest{
		Name:     "John Trainer",
		Password: "Passw0rd!",
		Role:     "Trainer",
		IDNumber: idNumber,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.EqualError(t, err, "ID Number already exists.")
	assert.Zero(t, f.userRepo.createCalls)
}

func TestRegisterStudentUsernameIsRegistrationNumber(t *testing.T) {
	f := newRegistrationFixture()

	user, err := f.svc.Register(context.Background(), f.studentRequest("DIT/2209/045"))
	require.NoError(t, err)

	assert.Equal(t, "DIT/2209/045", user.Username)
	assert.NotZero(t, user.ID)
	require.NotNil(t, user.RegistrationNumber)
	assert.Equal(t, "DIT/2209/045", *user.RegistrationNumber)
	require.NotNil(t, user.ClassID)
	assert.Equal(t, f.classID, *user.ClassID)

	// Password is stored hashed, never verbatim
	assert.NotEqual(t, "Passw0rd!", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "Passw0rd!"))
}

func TestRegisterStudentMissingFields(t *testing.T) {
	f := newRegistrationFixture()

	cases := []struct {
		mutate  func(*dto.RegisterUserRequest)
		message string
	}{
		{func(r *dto.RegisterUserRequest) { r.RegistrationNumber = "" }, "Registration number is required."},
		{func(r *dto.RegisterUserRequest) { r.DepartmentID = 0 }, "Department ID is required."},
		{func(r *dto.RegisterUserRequest) { r.CourseID = 0 }, "Course ID is required."},
		{func(r *dto.RegisterUserRequest) { r.ClassID = 0 }, "Class ID is required."},
	}

	for _, tc := range cases {
		req := f.studentRequest("DIT/2209/001")
		tc.mutate(req)
		_, err := f.svc.Register(context.Background(), req)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.EqualError(t, err, tc.message)
	}
	assert.Zero(t, f.userRepo.createCalls)
}

func TestRegisterDuplicateRegistrationNumber(t *testing.T) {
	f := newRegistrationFixture()

	_, err := f.svc.Register(context.Background(), f.studentRequest("DIT/2209/045"))
	require.NoError(t, err)

	_, err = f.svc.Register(context.Background(), f.studentRequest("DIT/2209/045"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.EqualError(t, err, "Registration number already exists.")
}

func TestRegisterClassRepCap(t *testing.T) {
	f := newRegistrationFixture()

	first, err := f.svc.Register(context.Background(), f.classRepRequest("DIT/2209"))
	require.NoError(t, err)
	assert.Equal(t, "DIT/2209/C-1", first.Username)

	second, err := f.svc.Register(context.Background(), f.classRepRequest("DIT/2209"))
	require.NoError(t, err)
	assert.Equal(t, "DIT/2209/C-2", second.Username)

	_, err = f.svc.Register(context.Background(), f.classRepRequest("DIT/2209"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.EqualError(t, err, "Each class can only have two ClassReps.")
	assert.Equal(t, 2, f.userRepo.createCalls)
}

func TestRegisterForeignKeyRejectedBeforeInsert(t *testing.T) {
	f := newRegistrationFixture()

	req := f.studentRequest("DIT/2209/045")
	req.DepartmentID = 999

	// Rejection happens before any uniqueness check or write, and
	// repeating the same request yields the same outcome.
	for i := 0; i < 2; i++ {
		_, err := f.svc.Register(context.Background(), req)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.EqualError(t, err, "Invalid department ID.")
	}
	assert.Zero(t, f.userRepo.createCalls)
	assert.Empty(t, f.userRepo.users)
}

func TestRegisterInvalidCourseRejected(t *testing.T) {
	f := newRegistrationFixture()

	req := f.studentRequest("DIT/2209/045")
	req.CourseID = 999

	_, err := f.svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.EqualError(t, err, "Invalid course ID.")
}

func TestRegisterUniquenessRaceMapsToPersistence(t *testing.T) {
	f := newRegistrationFixture()

	// A unique violation at insert time means a concurrent registration
	// won the race after our checks passed.
	f.userRepo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"}

	_, err := f.svc.Register(context.Background(), f.studentRequest("DIT/2209/045"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.NotErrorIs(t, err, apperrors.ErrConflict)
	assert.EqualError(t, err, "Failed to add user.")
}
