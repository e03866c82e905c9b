package dto

// RegisterUserRequest represents the registration payload. Which of the
// optional fields are required depends on the role.
type RegisterUserRequest struct {
	Name               string `json:"name" binding:"required"`
	Password           string `json:"password" binding:"required"`
	Role               string `json:"role" binding:"required"`
	RegistrationNumber string `json:"registrationNumber"`
	DepartmentID       int64  `json:"departmentId"`
	CourseID           int64  `json:"courseId"`
	ClassID            int64  `json:"classId"`
	IDNumber           string `json:"id_number"`
}

// RegisterUserResponse is returned on successful registration
type RegisterUserResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	ID       int64  `json:"id"`
}
