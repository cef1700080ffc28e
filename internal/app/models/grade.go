package models

// Grade is an immutable record of a score a student achieved in a
// module. The model enforces no score range; input bounds are the
// transport layer's concern.
type Grade struct {
	ID        int64  `json:"id" db:"id" example:"1"`
	StudentID int64  `json:"studentId,omitempty" db:"student_id" example:"1"`
	Score     int    `json:"score" db:"score" example:"85"`
	Module    Module `json:"module"` // The module the score applies to
}
