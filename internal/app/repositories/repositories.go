package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository      *StudentRepository
	ModuleRepository       *ModuleRepository
	RegistrationRepository *RegistrationRepository
	GradeRepository        *GradeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:      NewStudentRepository(db),
		ModuleRepository:       NewModuleRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
		GradeRepository:        NewGradeRepository(db),
	}
}
