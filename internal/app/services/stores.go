package services

import (
	"context"

	"github.com/kdattani/gradebook/internal/app/models"
)

// Store interfaces are the persistence surface the services consume.
// The concrete implementations live in the repositories package; tests
// substitute in-memory fakes.

// StudentStore persists student identity rows
type StudentStore interface {
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context, page, size int) ([]*models.Student, int64, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// ModuleStore persists the module catalog
type ModuleStore interface {
	CreateModule(ctx context.Context, module *models.Module) (int64, error)
	GetModuleByCode(ctx context.Context, code string) (*models.Module, error)
	GetAllModules(ctx context.Context) ([]models.Module, error)
	DeleteModuleByCode(ctx context.Context, code string) error
}

// RegistrationStore persists student-module registrations
type RegistrationStore interface {
	CreateRegistration(ctx context.Context, studentID, moduleID int64) error
	GetStudentModules(ctx context.Context, studentID int64) ([]models.Module, error)
}

// GradeStore persists recorded grades
type GradeStore interface {
	CreateGrade(ctx context.Context, grade *models.Grade) (int64, error)
	GetStudentGrades(ctx context.Context, studentID int64) ([]models.Grade, error)
}
