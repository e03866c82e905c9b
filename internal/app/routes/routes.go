package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/briankip/cams/internal/app/controllers"
	"github.com/briankip/cams/internal/app/models"
	"github.com/briankip/cams/internal/app/models/dto"
	"github.com/briankip/cams/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	catalogController *controllers.CatalogController,
	attendanceController *controllers.AttendanceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- User routes ---
	users := v1.Group("/users")
	{
		// Registration is public; listing and deletion are admin-only.
		users.POST("", userController.Register)

		usersAdminProtected := users.Group("")
		usersAdminProtected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			usersAdminProtected.GET("", userController.GetAllUsers)
			usersAdminProtected.DELETE("/:id", userController.DeleteUser)
		}
	}

	// --- Catalog routes ---
	departments := v1.Group("/departments")
	{
		departments.GET("", catalogController.GetAllDepartments)
		departments.GET("/courses", catalogController.GetCoursesByDepartment)
		departments.GET("/classes", catalogController.GetClassesByDepartment)

		departmentsAdminProtected := departments.Group("")
		departmentsAdminProtected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			departmentsAdminProtected.POST("", catalogController.CreateDepartment)
			departmentsAdminProtected.POST("/courses", catalogController.CreateCourse)
			departmentsAdminProtected.POST("/classes", catalogController.CreateClass)
			departmentsAdminProtected.POST("/units", catalogController.CreateUnit)
		}
	}

	courses := v1.Group("/courses")
	{
		courses.GET("/classes", catalogController.GetClassesByCourse)
		courses.GET("/units", catalogController.GetUnitsByCourse)
	}

	// --- Trainer routes ---
	trainer := v1.Group("/trainer")
	trainer.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(
		string(models.RoleTrainer), string(models.RoleClassRep)))
	{
		trainer.GET("/students", attendanceController.GetStudentsByClass)
		trainer.POST("/attendance", attendanceController.SaveAttendance)
	}

	// --- HOD routes ---
	hod := v1.Group("/hod")
	hod.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleHOD)))
	{
		hod.GET("/classes", catalogController.GetClassesByDepartment)
		hod.GET("/attendance-summary", attendanceController.GetClassSummary)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
