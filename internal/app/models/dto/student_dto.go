package dto

import "github.com/kdattani/gradebook/internal/app/models"

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2,max=100" example:"Krishna"`
	LastName  string `json:"lastName" binding:"required,min=2,max=100" example:"Dattani"`
	Username  string `json:"username" binding:"required,alphanum,min=3,max=50" example:"ZMAC267"`
	Email     string `json:"email" binding:"required,email,max=255" example:"ZMAC267@live.rhul.ac.uk"`
}

// StudentResponse represents basic student information
type StudentResponse struct {
	ID        int64  `json:"id" example:"1"`
	FirstName string `json:"firstName" example:"Krishna"`
	LastName  string `json:"lastName" example:"Dattani"`
	Username  string `json:"username" example:"ZMAC267"`
	Email     string `json:"email" example:"ZMAC267@live.rhul.ac.uk"`
}

// StudentDetailResponse adds the registered modules and grade history,
// both in insertion order
type StudentDetailResponse struct {
	StudentResponse
	RegisteredModules []ModuleResponse `json:"registeredModules"`
	Grades            []GradeResponse  `json:"grades"`
}

// StudentListResponse represents a paginated list of students
type StudentListResponse struct {
	Students   []StudentResponse `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"3"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"25"`
}

// RegisterModuleRequest registers a student on a module by code
type RegisterModuleRequest struct {
	ModuleCode string `json:"moduleCode" binding:"required,max=10" example:"CS101"`
}

// StudentAverageResponse reports the mean score across all of a
// student's grades. Average is 0 when GradeCount is 0.
type StudentAverageResponse struct {
	StudentID  int64   `json:"studentId" example:"1"`
	Average    float64 `json:"average" example:"85"`
	GradeCount int     `json:"gradeCount" example:"2"`
}

// FromStudent converts a models.Student to a StudentResponse
func FromStudent(s *models.Student) StudentResponse {
	if s == nil {
		return StudentResponse{}
	}
	return StudentResponse{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Username:  s.Username,
		Email:     s.Email,
	}
}

// FromStudents converts a student slice, never returning nil
func FromStudents(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, FromStudent(s))
	}
	return out
}

// FromStudentDetail converts a fully hydrated models.Student
func FromStudentDetail(s *models.Student) StudentDetailResponse {
	return StudentDetailResponse{
		StudentResponse:   FromStudent(s),
		RegisteredModules: FromModules(s.RegisteredModules),
		Grades:            FromGrades(s.Grades),
	}
}
