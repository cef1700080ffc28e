package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kdattani/gradebook/internal/app/models"
	"github.com/kdattani/gradebook/internal/pkg/apperrors"
)

// GradeService defines the interface for registration-gated grading
type GradeService interface {
	AddGrade(ctx context.Context, studentID int64, moduleCode string, score int) (*models.Grade, error)
	GetGrade(ctx context.Context, studentID int64, moduleCode string) (*models.Grade, error)
	GetStudentGrades(ctx context.Context, studentID int64) ([]models.Grade, error)
}

// gradeServiceImpl implements the GradeService interface
type gradeServiceImpl struct {
	studentStore      StudentStore
	moduleStore       ModuleStore
	registrationStore RegistrationStore
	gradeStore        GradeStore
}

// NewGradeService creates a new grade service instance
func NewGradeService(studentStore StudentStore, moduleStore ModuleStore, registrationStore RegistrationStore, gradeStore GradeStore) GradeService {
	return &gradeServiceImpl{
		studentStore:      studentStore,
		moduleStore:       moduleStore,
		registrationStore: registrationStore,
		gradeStore:        gradeStore,
	}
}

// loadStudentWithRegistrations resolves the student and the module and
// hydrates the student's registered modules, the state every grading
// decision is made against.
func (s *gradeServiceImpl) loadStudentWithRegistrations(ctx context.Context, studentID int64, moduleCode string) (*models.Student, *models.Module, error) {
	student, err := s.studentStore.GetStudentByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, nil, apperrors.ErrStudentNotFound
		}
		return nil, nil, fmt.Errorf("error retrieving student: %w", err)
	}

	module, err := s.moduleStore.GetModuleByCode(ctx, moduleCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrModuleNotFound) {
			return nil, nil, apperrors.ErrModuleNotFound
		}
		return nil, nil, fmt.Errorf("error retrieving module: %w", err)
	}

	modules, err := s.registrationStore.GetStudentModules(ctx, student.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("error retrieving registered modules: %w", err)
	}
	student.RegisteredModules = modules

	return student, module, nil
}

// AddGrade records a score for the student in the module identified by
// code. It fails with ErrStudentNotFound or ErrModuleNotFound when the
// lookups miss, and with a *apperrors.NotRegisteredError when the
// student is not registered for the module. Nothing is persisted on
// failure.
func (s *gradeServiceImpl) AddGrade(ctx context.Context, studentID int64, moduleCode string, score int) (*models.Grade, error) {
	if score < 0 {
		return nil, fmt.Errorf("%w: score cannot be negative", apperrors.ErrValidationFailed)
	}

	student, module, err := s.loadStudentWithRegistrations(ctx, studentID, moduleCode)
	if err != nil {
		return nil, err
	}

	grade := models.Grade{
		StudentID: student.ID,
		Score:     score,
		Module:    *module,
	}
	if err := student.AddGrade(grade); err != nil {
		return nil, err
	}

	id, err := s.gradeStore.CreateGrade(ctx, &grade)
	if err != nil {
		return nil, fmt.Errorf("error saving grade: %w", err)
	}
	grade.ID = id

	return &grade, nil
}

// GetGrade returns the student's grade for the module identified by
// code, the first one recorded when several exist. A student not
// registered for the module gets a *apperrors.NotRegisteredError, and
// a registered student with no grade yet gets a
// *apperrors.NoGradeRecordedError.
func (s *gradeServiceImpl) GetGrade(ctx context.Context, studentID int64, moduleCode string) (*models.Grade, error) {
	student, module, err := s.loadStudentWithRegistrations(ctx, studentID, moduleCode)
	if err != nil {
		return nil, err
	}

	grades, err := s.gradeStore.GetStudentGrades(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades: %w", err)
	}
	student.Grades = grades

	grade, err := student.GradeFor(*module)
	if err != nil {
		return nil, err
	}

	return &grade, nil
}

// GetStudentGrades returns the student's full grade history in the
// order it was recorded.
func (s *gradeServiceImpl) GetStudentGrades(ctx context.Context, studentID int64) ([]models.Grade, error) {
	if _, err := s.studentStore.GetStudentByID(ctx, studentID); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	grades, err := s.gradeStore.GetStudentGrades(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades: %w", err)
	}
	return grades, nil
}
