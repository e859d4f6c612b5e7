package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/edumaster/backend/internal/app/controllers"
	"github.com/edumaster/backend/internal/app/models"
	"github.com/edumaster/backend/internal/app/models/dto"
	"github.com/edumaster/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	instructorController *controllers.InstructorController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Admin moderation routes
	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		admin.GET("/courses", adminController.ListCourses)
		admin.PUT("/courses/:id/status", adminController.UpdateCourseStatus)
		admin.DELETE("/courses/:id", adminController.DeleteCourse)

		admin.GET("/users", adminController.ListUsers)
		admin.PUT("/users/:id/role", adminController.UpdateUserRole)
		admin.DELETE("/users/:id", adminController.DeleteUser)
	}

	// Instructor routes
	instructor := authenticated.Group("/instructor")
	instructor.Use(authMiddleware.RoleRequired(string(models.RoleInstructor)))
	{
		instructor.GET("/my-courses", instructorController.MyCourses)
		instructor.GET("/students", instructorController.Students)
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
