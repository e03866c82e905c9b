package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name         string `json:"name" binding:"required"`
	DepartmentID int64  `json:"department_id" binding:"required,gt=0"`
}

// CreateClassRequest represents class creation data
type CreateClassRequest struct {
	Name         string `json:"name" binding:"required"`
	DepartmentID int64  `json:"departmentId" binding:"required,gt=0"`
	CourseID     int64  `json:"courseId" binding:"required,gt=0"`
}

// CreateUnitRequest represents unit creation data
type CreateUnitRequest struct {
	Name         string `json:"name" binding:"required"`
	Code         string `json:"code" binding:"required"`
	DepartmentID int64  `json:"departmentId" binding:"required,gt=0"`
	CourseID     int64  `json:"courseId" binding:"required,gt=0"`
}

// CreatedResponse is returned when a catalog entity is created
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
