package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kdattani/gradebook/internal/app/models"
	"github.com/kdattani/gradebook/internal/app/models/dto"
	"github.com/kdattani/gradebook/internal/app/services"
	"github.com/kdattani/gradebook/internal/middleware"
	"github.com/kdattani/gradebook/internal/pkg/helpers"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// parseStudentID extracts and validates the student ID path parameter
func parseStudentID(ctx *gin.Context) (int64, bool) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Creates a new student with the provided information
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Username or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student := models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
	}

	id, err := c.studentService.CreateStudent(ctx, &student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student.ID = id
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromStudent(&student)))
}

// GetStudentByID retrieves a student by ID
// @Summary Get student details
// @Description Retrieves a student together with registered modules and grade history
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.StudentDetailResponse} "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromStudentDetail(student)))
}

// GetAllStudents retrieves a page of students
// @Summary List students
// @Description Retrieves students ordered by ID, one page at a time
// @Tags students
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param size query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	students, total, err := c.studentService.GetAllStudents(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.StudentListResponse{
		Students:   dto.FromStudents(students),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Description Deletes a student along with their registrations and grades
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Student deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Student deleted successfully"}))
}

// RegisterModule registers a student on a module
// @Summary Register a student on a module
// @Description Registers the student on the module identified by code. Registering twice is a no-op.
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.RegisterModuleRequest true "Module code"
// @Success 201 {object} dto.APIResponse{data=dto.ModuleResponse} "Module registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or module not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/modules [post]
func (c *StudentController) RegisterModule(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	var req dto.RegisterModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	module, err := c.studentService.RegisterModule(ctx, id, req.ModuleCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromModule(*module)))
}

// GetRegisteredModules lists the modules a student is registered on
// @Summary List a student's registered modules
// @Description Retrieves the student's registered modules in registration order
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ModuleListResponse} "Modules retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/modules [get]
func (c *StudentController) GetRegisteredModules(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	modules, err := c.studentService.GetRegisteredModules(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ModuleListResponse{Modules: dto.FromModules(modules)}))
}

// GetAverage computes the mean score across a student's grades
// @Summary Compute a student's average
// @Description Returns the mean of all recorded scores. A student with no grades averages 0.
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.StudentAverageResponse} "Average computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/average [get]
func (c *StudentController) GetAverage(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	average, count, err := c.studentService.ComputeAverage(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.StudentAverageResponse{
		StudentID:  id,
		Average:    average,
		GradeCount: count,
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}
