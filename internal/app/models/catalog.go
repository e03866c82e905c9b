package models

// Department represents a department in the college catalog
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Course represents a course offered by a department
type Course struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DepartmentID int64  `json:"departmentId"`
}

// Class represents a class (cohort) within a course
type Class struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	DepartmentID   int64  `json:"departmentId"`
	CourseID       int64  `json:"courseId"`
	DepartmentName string `json:"department,omitempty"`
}

// Unit represents a teaching unit within a course
type Unit struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Code           string `json:"code"`
	DepartmentID   int64  `json:"departmentId"`
	CourseID       int64  `json:"courseId"`
	DepartmentName string `json:"department,omitempty"`
}
