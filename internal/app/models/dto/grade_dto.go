package dto

import "github.com/kdattani/gradebook/internal/app/models"

// AddGradeRequest carries the legacy all-strings wire shape:
// {"student_id": "1", "module_code": "CS101", "score": "85"}.
// The controller parses student_id and score and rejects non-numeric
// or negative values before anything reaches the grading rules.
type AddGradeRequest struct {
	StudentID  string `json:"student_id" binding:"required" example:"1"`
	ModuleCode string `json:"module_code" binding:"required" example:"CS101"`
	Score      string `json:"score" binding:"required" example:"85"`
}

// GradeResponse represents a recorded grade
type GradeResponse struct {
	ID        int64          `json:"id" example:"1"`
	StudentID int64          `json:"studentId" example:"1"`
	Score     int            `json:"score" example:"85"`
	Module    ModuleResponse `json:"module"`
}

// GradeListResponse represents a student's grade history in the order
// it was recorded
type GradeListResponse struct {
	Grades []GradeResponse `json:"grades"`
}

// FromGrade converts a models.Grade to a GradeResponse
func FromGrade(g models.Grade) GradeResponse {
	return GradeResponse{
		ID:        g.ID,
		StudentID: g.StudentID,
		Score:     g.Score,
		Module:    FromModule(g.Module),
	}
}

// FromGrades converts a grade slice, never returning nil
func FromGrades(grades []models.Grade) []GradeResponse {
	out := make([]GradeResponse, 0, len(grades))
	for _, g := range grades {
		out = append(out, FromGrade(g))
	}
	return out
}
