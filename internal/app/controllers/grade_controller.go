package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kdattani/gradebook/internal/app/models/dto"
	"github.com/kdattani/gradebook/internal/app/services"
	"github.com/kdattani/gradebook/internal/middleware"
)

// GradeController handles grading operations
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// AddGrade records a grade for a student in a module
// @Summary Record a grade
// @Description Records a score for a student in a module. All request fields arrive as strings; student_id and score must parse as numbers and the score must not be negative. The student must be registered on the module.
// @Tags grades
// @Accept json
// @Produce json
// @Param request body dto.AddGradeRequest true "Grade information"
// @Success 201 {object} dto.APIResponse{data=dto.GradeResponse} "Grade recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing, non-numeric or negative values"
// @Failure 404 {object} dto.ErrorResponse "Student or module not found"
// @Failure 409 {object} dto.ErrorResponse "Student is not registered in the module"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [post]
func (c *GradeController) AddGrade(ctx *gin.Context) {
	var req dto.AddGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	studentID, err := strconv.ParseInt(req.StudentID, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID").
			WithField("student_id").
			WithDetails("student_id must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	score, err := strconv.Atoi(req.Score)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid score").
			WithField("score").
			WithDetails("score must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if score < 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid score").
			WithField("score").
			WithDetails("score must not be negative")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	grade, err := c.gradeService.AddGrade(ctx, studentID, req.ModuleCode, score)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromGrade(*grade)))
}

// GetStudentGrades lists a student's grade history
// @Summary List a student's grades
// @Description Retrieves every grade recorded for the student, in the order recorded
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.GradeListResponse} "Grades retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/grades [get]
func (c *GradeController) GetStudentGrades(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	grades, err := c.gradeService.GetStudentGrades(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.GradeListResponse{Grades: dto.FromGrades(grades)}))
}

// GetGrade retrieves a student's grade for one module
// @Summary Get a student's grade for a module
// @Description Retrieves the student's grade for the module identified by code, the first one recorded when several exist
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param code path string true "Module code" maxLength(10)
// @Success 200 {object} dto.APIResponse{data=dto.GradeResponse} "Grade retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student or module not found, or no grade recorded"
// @Failure 409 {object} dto.ErrorResponse "Student is not registered in the module"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/grades/{code} [get]
func (c *GradeController) GetGrade(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	grade, err := c.gradeService.GetGrade(ctx, id, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromGrade(*grade)))
}
