package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kdattani/gradebook/internal/app/controllers"
	"github.com/kdattani/gradebook/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	moduleController *controllers.ModuleController,
	gradeController *controllers.GradeController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Student routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.DELETE("/:id", studentController.DeleteStudent)

		// Registration routes
		students.POST("/:id/modules", studentController.RegisterModule)
		students.GET("/:id/modules", studentController.GetRegisteredModules)

		// Grade lookup routes
		students.GET("/:id/grades", gradeController.GetStudentGrades)
		students.GET("/:id/grades/:code", gradeController.GetGrade)
		students.GET("/:id/average", studentController.GetAverage)
	}

	// Module catalog routes
	modules := v1.Group("/modules")
	{
		modules.POST("", moduleController.CreateModule)
		modules.GET("", moduleController.GetAllModules)
		modules.GET("/:code", moduleController.GetModuleByCode)
		modules.DELETE("/:code", moduleController.DeleteModuleByCode)
	}

	// Grade recording route
	grades := v1.Group("/grades")
	{
		grades.POST("", gradeController.AddGrade)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	// Swagger routes are set up in bootstrap.go already
}
