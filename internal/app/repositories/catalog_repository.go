package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/briankip/cams/internal/app/models"
)

// ICatalogRepository defines database operations over the
// department/course/class/unit catalog tables.
type ICatalogRepository interface {
	// Existence checks used by foreign-key validation
	DepartmentExists(ctx context.Context, id int64) (bool, error)
	CourseExists(ctx context.Context, id int64) (bool, error)
	ClassExists(ctx context.Context, id int64) (bool, error)

	// Departments
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
	CreateDepartment(ctx context.Context, name string) (int64, error)

	// Courses
	GetCoursesByDepartment(ctx context.Context, departmentID int64) ([]*models.Course, error)
	CreateCourse(ctx context.Context, name string, departmentID int64) (int64, error)

	// Classes
	GetClassesByCourse(ctx context.Context, courseID int64) ([]*models.Class, error)
	GetClassesByDepartment(ctx context.Context, departmentID int64) ([]*models.Class, error)
	CreateClass(ctx context.Context, name string, departmentID, courseID int64) (int64, error)

	// Units
	GetUnitsByCourse(ctx context.Context, courseID int64) ([]*models.Unit, error)
	CreateUnit(ctx context.Context, name, code string, departmentID, courseID int64) (int64, error)
}

// CatalogRepository handles catalog database operations
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{
		db: db,
	}
}

// DepartmentExists checks if a department row with this id exists.
func (r *CatalogRepository) DepartmentExists(ctx context.Context, id int64) (bool, error) {
	return r.rowExists(ctx, `SELECT EXISTS(SELECT 1 FROM departments WHERE id = $1)`, id)
}

// CourseExists checks if a course row with this id exists.
func (r *CatalogRepository) CourseExists(ctx context.Context, id int64) (bool, error) {
	return r.rowExists(ctx, `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id)
}

// ClassExists checks if a class row with this id exists.
func (r *CatalogRepository) ClassExists(ctx context.Context, id int64) (bool, error) {
	return r.rowExists(ctx, `SELECT EXISTS(SELECT 1 FROM classes WHERE id = $1)`, id)
}

func (r *CatalogRepository) rowExists(ctx context.Context, query string, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking existence: %w", err)
	}
	return exists, nil
}

// GetAllDepartments retrieves all departments
func (r *CatalogRepository) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM departments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(&department.ID, &department.Name); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// CreateDepartment inserts a department and returns its id.
func (r *CatalogRepository) CreateDepartment(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO departments (name) VALUES ($1) RETURNING id`,
		name).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetCoursesByDepartment retrieves courses offered by a department
func (r *CatalogRepository) GetCoursesByDepartment(ctx context.Context, departmentID int64) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, department_id FROM courses WHERE department_id = $1 ORDER BY id`,
		departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Name, &course.DepartmentID); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// CreateCourse inserts a course and returns its id.
func (r *CatalogRepository) CreateCourse(ctx context.Context, name string, departmentID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO courses (name, department_id) VALUES ($1, $2) RETURNING id`,
		name, departmentID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetClassesByCourse retrieves classes for a course with the owning
// department name joined in.
func (r *CatalogRepository) GetClassesByCourse(ctx context.Context, courseID int64) ([]*models.Class, error) {
	rows, err := r.db.Query(ctx, `
		SELECT cl.id, cl.name, cl.department_id, cl.course_id, d.name AS department
		FROM classes cl
		JOIN departments d ON cl.department_id = d.id
		WHERE cl.course_id = $1
		ORDER BY cl.id`,
		courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		var class models.Class
		if err := rows.Scan(&class.ID, &class.Name, &class.DepartmentID, &class.CourseID, &class.DepartmentName); err != nil {
			return nil, err
		}
		classes = append(classes, &class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// GetClassesByDepartment retrieves classes belonging to a department
func (r *CatalogRepository) GetClassesByDepartment(ctx context.Context, departmentID int64) ([]*models.Class, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, department_id, course_id FROM classes WHERE department_id = $1 ORDER BY id`,
		departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		var class models.Class
		if err := rows.Scan(&class.ID, &class.Name, &class.DepartmentID, &class.CourseID); err != nil {
			return nil, err
		}
		classes = append(classes, &class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// CreateClass inserts a class and returns its id.
func (r *CatalogRepository) CreateClass(ctx context.Context, name string, departmentID, courseID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO classes (name, department_id, course_id) VALUES ($1, $2, $3) RETURNING id`,
		name, departmentID, courseID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetUnitsByCourse retrieves units for a course with the owning
// department name joined in.
func (r *CatalogRepository) GetUnitsByCourse(ctx context.Context, courseID int64) ([]*models.Unit, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.name, u.code, u.department_id, u.course_id, d.name AS department
		FROM units u
		JOIN departments d ON u.department_id = d.id
		WHERE u.course_id = $1
		ORDER BY u.id`,
		courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []*models.Unit
	for rows.Next() {
		var unit models.Unit
		if err := rows.Scan(&unit.ID, &unit.Name, &unit.Code, &unit.DepartmentID, &unit.CourseID, &unit.DepartmentName); err != nil {
			return nil, err
		}
		units = append(units, &unit)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return units, nil
}

// CreateUnit inserts a unit and returns its id.
func (r *CatalogRepository) CreateUnit(ctx context.Context, name, code string, departmentID, courseID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO units (name, code, department_id, course_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		name, code, departmentID, courseID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
