package services

import (
	"context"

	"github.com/briankip/cams/internal/app/models"
	"github.com/briankip/cams/internal/pkg/apperrors"
)

// fakeUserRepo is an in-memory IUserRepository for service tests.
type fakeUserRepo struct {
	users       []*models.User
	nextID      int64
	createErr   error
	createCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (f *fakeUserRepo) add(user *models.User) *models.User {
	user.ID = f.nextID
	f.nextID++
	f.users = append(f.users, user)
	return user
}

func (f *fakeUserRepo) RegistrationNumberExists(_ context.Context, registrationNumber string) (bool, error) {
	for _, u := range f.users {
		if u.RegistrationNumber != nil && *u.RegistrationNumber == registrationNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) IDNumberExists(_ context.Context, idNumber string) (bool, error) {
	for _, u := range f.users {
		if u.IDNumber != nil && *u.IDNumber == idNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role models.Role) (int, error) {
	count := 0
	for _, u := range f.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) CountClassReps(_ context.Context, registrationNumber string) (int, error) {
	count := 0
	for _, u := range f.users {
		if u.Role == models.RoleClassRep && u.RegistrationNumber != nil && *u.RegistrationNumber == registrationNumber {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (int64, error) {
	f.createCalls++
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.add(user)
	return user.ID, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]*models.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) GetStudentsByClass(_ context.Context, classID int64) ([]*models.User, error) {
	var students []*models.User
	for _, u := range f.users {
		if u.ClassID == nil || *u.ClassID != classID {
			continue
		}
		if u.Role == models.RoleStudent || u.Role == models.RoleClassRep {
			students = append(students, u)
		}
	}
	return students, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

// fakeCatalogRepo is an in-memory ICatalogRepository for service tests.
type fakeCatalogRepo struct {
	departments map[int64]*models.Department
	courses     map[int64]*models.Course
	classes     map[int64]*models.Class
	units       map[int64]*models.Unit
	nextID      int64
	createErr   error
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		departments: make(map[int64]*models.Department),
		courses:     make(map[int64]*models.Course),
		classes:     make(map[int64]*models.Class),
		units:       make(map[int64]*models.Unit),
		nextID:      1,
	}
}

func (f *fakeCatalogRepo) addDepartment(name string) int64 {
	id := f.nextID
	f.nextID++
	f.departments[id] = &models.Department{ID: id, Name: name}
	return id
}

func (f *fakeCatalogRepo) addCourse(name string, departmentID int64) int64 {
	id := f.nextID
	f.nextID++
	f.courses[id] = &models.Course{ID: id, Name: name, DepartmentID: departmentID}
	return id
}

func (f *fakeCatalogRepo) addClass(name string, departmentID, courseID int64) int64 {
	id := f.nextID
	f.nextID++
	f.classes[id] = &models.Class{ID: id, Name: name, DepartmentID: departmentID, CourseID: courseID}
	return id
}

func (f *fakeCatalogRepo) DepartmentExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.departments[id]
	return ok, nil
}

func (f *fakeCatalogRepo) CourseExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.courses[id]
	return ok, nil
}

func (f *fakeCatalogRepo) ClassExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.classes[id]
	return ok, nil
}

func (f *fakeCatalogRepo) GetAllDepartments(_ context.Context) ([]*models.Department, error) {
	var departments []*models.Department
	for _, d := range f.departments {
		departments = append(departments, d)
	}
	return departments, nil
}

func (f *fakeCatalogRepo) CreateDepartment(_ context.Context, name string) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	return f.addDepartment(name), nil
}

func (f *fakeCatalogRepo) GetCoursesByDepartment(_ context.Context, departmentID int64) ([]*models.Course, error) {
	var courses []*models.Course
	for _, c := range f.courses {
		if c.DepartmentID == departmentID {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func (f *fakeCatalogRepo) CreateCourse(_ context.Context, name string, departmentID int64) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	return f.addCourse(name, departmentID), nil
}

func (f *fakeCatalogRepo) GetClassesByCourse(_ context.Context, courseID int64) ([]*models.Class, error) {
	var classes []*models.Class
	for _, c := range f.classes {
		if c.CourseID == courseID {
			classes = append(classes, c)
		}
	}
	return classes, nil
}

func (f *fakeCatalogRepo) GetClassesByDepartment(_ context.Context, departmentID int64) ([]*models.Class, error) {
	var classes []*models.Class
	for _, c := range f.classes {
		if c.DepartmentID == departmentID {
			classes = append(classes, c)
		}
	}
	return classes, nil
}

func (f *fakeCatalogRepo) CreateClass(_ context.Context, name string, departmentID, courseID int64) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	return f.addClass(name, departmentID, courseID), nil
}

func (f *fakeCatalogRepo) GetUnitsByCourse(_ context.Context, courseID int64) ([]*models.Unit, error) {
	var units []*models.Unit
	for _, u := range f.units {
		if u.CourseID == courseID {
			units = append(units, u)
		}
	}
	return units, nil
}

func (f *fakeCatalogRepo) CreateUnit(_ context.Context, name, code string, departmentID, courseID int64) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := f.nextID
	f.nextID++
	f.units[id] = &models.Unit{ID: id, Name: name, Code: code, DepartmentID: departmentID, CourseID: courseID}
	return id, nil
}

// fakeAttendanceRepo is an in-memory IAttendanceRepository for service tests.
type fakeAttendanceRepo struct {
	saved     []*models.AttendanceRecord
	summaries []*models.AttendanceSummary
	saveErr   error
}

func (f *fakeAttendanceRepo) SaveBatch(_ context.Context, records []*models.AttendanceRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, records...)
	return nil
}

func (f *fakeAttendanceRepo) GetSummaryByClass(_ context.Context, _ int64) ([]*models.AttendanceSummary, error) {
	return f.summaries, nil
}
