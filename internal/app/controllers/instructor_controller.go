package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edumaster/backend/internal/app/models/dto"
	"github.com/edumaster/backend/internal/app/services"
	"github.com/edumaster/backend/internal/middleware"
)

// InstructorController handles instructor-facing reads
type InstructorController struct {
	instructorService services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// MyCourses retrieves the authenticated instructor's courses
// @Summary List my courses
// @Description Retrieves the courses created by the authenticated instructor
// @Tags instructor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorCourse} "Courses retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User is not an instructor"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructor/my-courses [get]
func (c *InstructorController) MyCourses(ctx *gin.Context) {
	instructorID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	courses, err := c.instructorService.MyCourses(ctx, instructorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// Students retrieves per-enrollment progress rows
// @Summary List student progress
// @Description Retrieves one row per enrollment in the instructor's courses, with progress and activity metrics
// @Tags instructor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentRow} "Student rows retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User is not an instructor"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructor/students [get]
func (c *InstructorController) Students(ctx *gin.Context) {
	instructorID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	rows, err := c.instructorService.StudentProgress(ctx, instructorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rows,
		Timestamp: time.Now(),
	})
}
