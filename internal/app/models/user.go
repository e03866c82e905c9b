package models

import (
	"time"
)

// Role defines the user role type
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleStudent  Role = "Student"
	RoleClassRep Role = "ClassRep"
	RoleTrainer  Role = "Trainer"
	RoleHOD      Role = "HOD"
)

// RegisterableRoles are the roles accepted by self-registration. Admin
// accounts are seeded, not registered.
var RegisterableRoles = []Role{RoleStudent, RoleClassRep, RoleTrainer, RoleHOD}

// IsRegisterable reports whether a role may be used for registration.
func IsRegisterable(role Role) bool {
	for _, r := range RegisterableRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User defines the user model based on the 'users' table.
// Exactly one of IDNumber (Trainer/HOD) or the
// RegistrationNumber+DepartmentID+CourseID+ClassID group (Student/ClassRep)
// is populated, determined by Role.
type User struct {
	ID                 int64     `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	Username           string    `json:"username" db:"username"`
	Password           string    `json:"-" db:"password"`
	Role               Role      `json:"role" db:"role"`
	IDNumber           *string   `json:"idNumber,omitempty" db:"id_number"`
	DepartmentID       *int64    `json:"departmentId,omitempty" db:"department_id"`
	CourseID           *int64    `json:"courseId,omitempty" db:"course_id"`
	ClassID            *int64    `json:"classId,omitempty" db:"class_id"`
	RegistrationNumber *string   `json:"registrationNumber,omitempty" db:"registration_number"`
	ExtraFields        []byte    `json:"-" db:"extra_fields"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
}

// RoleFields is the bag of role-conditional registration fields. It is
// serialized as-is into the extra_fields column of the new user row.
type RoleFields struct {
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	DepartmentID       int64  `json:"departmentId,omitempty"`
	CourseID           int64  `json:"courseId,omitempty"`
	ClassID            int64  `json:"classId,omitempty"`
	IDNumber           string `json:"id_number,omitempty"`
}
