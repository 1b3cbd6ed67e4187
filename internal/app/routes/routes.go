package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kanav2002/plagchecker/internal/app/controllers"
	"github.com/kanav2002/plagchecker/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	instructorController *controllers.InstructorController,
	courseController *controllers.CourseController,
) {
	api := router.Group("/api")

	// Instructor account routes
	instructors := api.Group("/instructors")
	{
		instructors.POST("", instructorController.CreateInstructor)
		instructors.GET("", instructorController.GetAllInstructors)
		instructors.GET("/:id", instructorController.GetInstructorByID)
		instructors.GET("/:id/courses", courseController.GetCoursesByInstructor)
		instructors.GET("/username/:username", instructorController.GetInstructorByUsername)
		instructors.PUT("/password/:username", instructorController.UpdatePassword)
	}

	// Course catalog routes
	courses := api.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.DELETE("/:id", courseController.DeleteCourse)
		courses.POST("/:id/exams", courseController.AddExam)
		courses.DELETE("/:id/exams/:examId", courseController.DeleteExam)
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
