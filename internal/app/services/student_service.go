package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kdattani/gradebook/internal/app/models"
	"github.com/kdattani/gradebook/internal/pkg/apperrors"
	"github.com/kdattani/gradebook/internal/pkg/validation"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context, page, size int) ([]*models.Student, int64, error)
	DeleteStudent(ctx context.Context, id int64) error
	RegisterModule(ctx context.Context, studentID int64, moduleCode string) (*models.Module, error)
	GetRegisteredModules(ctx context.Context, studentID int64) ([]models.Module, error)
	ComputeAverage(ctx context.Context, studentID int64) (float64, int, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentStore      StudentStore
	moduleStore       ModuleStore
	registrationStore RegistrationStore
	gradeStore        GradeStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentStore StudentStore, moduleStore ModuleStore, registrationStore RegistrationStore, gradeStore GradeStore) StudentService {
	return &studentServiceImpl{
		studentStore:      studentStore,
		moduleStore:       moduleStore,
		registrationStore: registrationStore,
		gradeStore:        gradeStore,
	}
}

// validateStudent validates student data before database operations
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(student.FirstName) == "" {
		return fmt.Errorf("%w: first name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.LastName) == "" {
		return fmt.Errorf("%w: last name cannot be empty", apperrors.ErrValidationFailed)
	}
	if len(student.FirstName) < validation.NameMinLength || len(student.LastName) < validation.NameMinLength {
		return fmt.Errorf("%w: names must be at least %d characters", apperrors.ErrValidationFailed, validation.NameMinLength)
	}
	if len(student.FirstName) > validation.NameMaxLength || len(student.LastName) > validation.NameMaxLength {
		return fmt.Errorf("%w: name exceeds %d characters", apperrors.ErrValidationFailed, validation.NameMaxLength)
	}

	username := strings.TrimSpace(student.Username)
	if len(username) < validation.UsernameMinLength || len(username) > validation.UsernameMaxLength {
		return fmt.Errorf("%w: username must be %d-%d characters", apperrors.ErrValidationFailed,
			validation.UsernameMinLength, validation.UsernameMaxLength)
	}
	if !validation.CompiledPatterns.Username.MatchString(username) {
		return fmt.Errorf("%w: username must contain only letters and digits", apperrors.ErrValidationFailed)
	}

	if !validation.CompiledPatterns.Email.MatchString(student.Email) {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidEmail, student.Email)
	}

	return nil
}

// CreateStudent creates a new student. Username and email uniqueness
// is enforced by storage; a clash surfaces as ErrStudentAlreadyExists.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	if err := s.validateStudent(student); err != nil {
		return 0, err
	}

	id, err := s.studentStore.CreateStudent(ctx, student)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentAlreadyExists) {
			return 0, apperrors.ErrStudentAlreadyExists
		}
		return 0, fmt.Errorf("error creating student: %w", err)
	}
	return id, nil
}

// GetStudentByID retrieves a student with registered modules and grade
// history hydrated, both in insertion order.
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	student, err := s.studentStore.GetStudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	modules, err := s.registrationStore.GetStudentModules(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving registered modules: %w", err)
	}
	student.RegisteredModules = modules

	grades, err := s.gradeStore.GetStudentGrades(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades: %w", err)
	}
	student.Grades = grades

	return student, nil
}

// GetAllStudents retrieves one page of students plus the total count
func (s *studentServiceImpl) GetAllStudents(ctx context.Context, page, size int) ([]*models.Student, int64, error) {
	students, total, err := s.studentStore.GetAllStudents(ctx, page, size)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, total, nil
}

// DeleteStudent deletes a student by ID
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	err := s.studentStore.DeleteStudent(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}

// RegisterModule registers the student on the module identified by
// code and returns the module. Registering an already-registered
// module is a no-op success.
func (s *studentServiceImpl) RegisterModule(ctx context.Context, studentID int64, moduleCode string) (*models.Module, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(moduleCode) == "" {
		return nil, fmt.Errorf("%w: module code cannot be empty", apperrors.ErrValidationFailed)
	}

	student, err := s.studentStore.GetStudentByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	module, err := s.moduleStore.GetModuleByCode(ctx, moduleCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrModuleNotFound) {
			return nil, apperrors.ErrModuleNotFound
		}
		return nil, fmt.Errorf("error retrieving module: %w", err)
	}

	if err := s.registrationStore.CreateRegistration(ctx, student.ID, module.ID); err != nil {
		return nil, fmt.Errorf("error registering module: %w", err)
	}

	return module, nil
}

// GetRegisteredModules retrieves the modules the student is registered
// on, in registration order.
func (s *studentServiceImpl) GetRegisteredModules(ctx context.Context, studentID int64) ([]models.Module, error) {
	if _, err := s.studentStore.GetStudentByID(ctx, studentID); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	modules, err := s.registrationStore.GetStudentModules(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving registered modules: %w", err)
	}
	return modules, nil
}

// ComputeAverage returns the mean of all the student's grade scores
// and the number of grades it covers. A student with no grades gets
// average 0 with count 0.
func (s *studentServiceImpl) ComputeAverage(ctx context.Context, studentID int64) (float64, int, error) {
	student, err := s.studentStore.GetStudentByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return 0, 0, apperrors.ErrStudentNotFound
		}
		return 0, 0, fmt.Errorf("error retrieving student: %w", err)
	}

	grades, err := s.gradeStore.GetStudentGrades(ctx, studentID)
	if err != nil {
		return 0, 0, fmt.Errorf("error retrieving grades: %w", err)
	}
	student.Grades = grades

	return student.ComputeAverage(), len(grades), nil
}
