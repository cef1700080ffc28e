package models

import (
	"github.com/kdattani/gradebook/internal/pkg/apperrors"
)

// Student aggregates a student's identity with the modules they are
// registered on and the grades they have been awarded. Grading is
// gated on registration: a grade can only be added or read for a
// module the student registered first.
//
// Methods are not safe for concurrent use; an embedding caller
// synchronizes externally.
type Student struct {
	ID        int64  `json:"id" db:"id" example:"1"` // Unique identifier for the student record
	FirstName string `json:"firstName" db:"first_name" example:"Krishna"`
	LastName  string `json:"lastName" db:"last_name" example:"Dattani"`
	Username  string `json:"username" db:"username" example:"ZMAC267"`
	Email     string `json:"email" db:"email" example:"ZMAC267@live.rhul.ac.uk"`

	// Relations (populated when needed), both in insertion order
	RegisteredModules []Module `json:"registeredModules,omitempty"`
	Grades            []Grade  `json:"grades,omitempty"`
}

// RegisterModule records a registration for m. Registering the same
// module again is tolerated; every registration gate treats duplicates
// the same as a single registration.
func (s *Student) RegisterModule(m Module) {
	s.RegisteredModules = append(s.RegisteredModules, m)
}

// IsRegisteredFor reports whether the student is registered for m.
func (s *Student) IsRegisteredFor(m Module) bool {
	for _, registered := range s.RegisteredModules {
		if registered.Equal(m) {
			return true
		}
	}
	return false
}

// AddGrade records g against the student. It fails with a
// *apperrors.NotRegisteredError naming g.Module when the student is
// not registered for it, leaving the grade list unchanged. Multiple
// grades for the same module are all retained.
func (s *Student) AddGrade(g Grade) error {
	if !s.IsRegisteredFor(g.Module) {
		return apperrors.NewNotRegisteredError(g.Module.Name)
	}
	s.Grades = append(s.Grades, g)
	return nil
}

// GradeFor returns the student's grade for m, the first one recorded
// when several exist. Registration is checked before any grade scan:
// an unregistered student gets a *apperrors.NotRegisteredError even if
// a stray grade for m is present. A registered student with no grade
// for m gets a *apperrors.NoGradeRecordedError.
func (s *Student) GradeFor(m Module) (Grade, error) {
	if !s.IsRegisteredFor(m) {
		return Grade{}, apperrors.NewNotRegisteredError(m.Name)
	}

	for _, g := range s.Grades {
		if g.Module.Equal(m) {
			return g, nil
		}
	}

	return Grade{}, apperrors.NewNoGradeRecordedError(m.Name)
}

// ComputeAverage returns the mean of all grade scores across all
// modules, 0 when no grades are recorded.
func (s *Student) ComputeAverage() float64 {
	if len(s.Grades) == 0 {
		return 0
	}

	total := 0
	for _, g := range s.Grades {
		total += g.Score
	}
	return float64(total) / float64(len(s.Grades))
}
