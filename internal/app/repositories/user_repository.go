package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/briankip/cams/internal/app/models"
	"github.com/briankip/cams/internal/pkg/apperrors"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	// Registration workflow reads
	RegistrationNumberExists(ctx context.Context, registrationNumber string) (bool, error)
	IDNumberExists(ctx context.Context, idNumber string) (bool, error)
	CountByRole(ctx context.Context, role models.Role) (int, error)
	CountClassReps(ctx context.Context, registrationNumber string) (int, error)

	// Registration workflow write
	CreateUser(ctx context.Context, user *models.User) (int64, error)

	// Authentication and administration
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	GetStudentsByClass(ctx context.Context, classID int64) ([]*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// RegistrationNumberExists checks if any user row carries this
// registration number, regardless of role.
func (r *UserRepository) RegistrationNumberExists(ctx context.Context, registrationNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE registration_number = $1)`,
		registrationNumber).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking registration number: %w", err)
	}

	return exists, nil
}

// IDNumberExists checks if any user row carries this staff ID number.
func (r *UserRepository) IDNumberExists(ctx context.Context, idNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE id_number = $1)`,
		idNumber).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking ID number: %w", err)
	}

	return exists, nil
}

// CountByRole counts live user rows with the given role. Username
// counters are derived from this, so numbers freed by deletions can be
// reassigned.
func (r *UserRepository) CountByRole(ctx context.Context, role models.Role) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM users WHERE role = $1`,
		role).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting users by role: %w", err)
	}

	return count, nil
}

// CountClassReps counts ClassRep rows sharing a registration number.
func (r *UserRepository) CountClassReps(ctx context.Context, registrationNumber string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM users WHERE role = $1 AND registration_number = $2`,
		models.RoleClassRep, registrationNumber).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting class reps: %w", err)
	}

	return count, nil
}

// CreateUser inserts a fully validated user row and returns the generated id.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (name, username, password, role, id_number, department_id, course_id, class_id, registration_number, extra_fields)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		user.Name, user.Username, user.Password, user.Role, user.IDNumber,
		user.DepartmentID, user.CourseID, user.ClassID, user.RegistrationNumber,
		user.ExtraFields).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, username, password, role, id_number, department_id, course_id, class_id, registration_number, extra_fields, created_at
		FROM users
		WHERE username = $1`,
		username).Scan(
		&user.ID, &user.Name, &user.Username, &user.Password, &user.Role,
		&user.IDNumber, &user.DepartmentID, &user.CourseID, &user.ClassID,
		&user.RegistrationNumber, &user.ExtraFields, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetAll retrieves all users
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, username, password, role, id_number, department_id, course_id, class_id, registration_number, extra_fields, created_at
		FROM users
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// GetStudentsByClass retrieves Student and ClassRep rows for a class.
func (r *UserRepository) GetStudentsByClass(ctx context.Context, classID int64) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, username, password, role, id_number, department_id, course_id, class_id, registration_number, extra_fields, created_at
		FROM users
		WHERE class_id = $1 AND role IN ($2, $3)
		ORDER BY name`,
		classID, models.RoleStudent, models.RoleClassRep)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students by class: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// Delete removes a user by id.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

func scanUsers(rows pgx.Rows) ([]*models.User, error) {
	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Username, &user.Password, &user.Role,
			&user.IDNumber, &user.DepartmentID, &user.CourseID, &user.ClassID,
			&user.RegistrationNumber, &user.ExtraFields, &user.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
