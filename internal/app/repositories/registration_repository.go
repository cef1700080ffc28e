package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kdattani/gradebook/internal/app/models"
)

// RegistrationRepository handles database operations for the
// student-module registration join table
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

// CreateRegistration registers a student on a module. The insert is a
// no-op when the pair already exists, which is what makes registering
// the same module twice safe.
func (r *RegistrationRepository) CreateRegistration(ctx context.Context, studentID, moduleID int64) error {
	query := `
		INSERT INTO registrations (student_id, module_id)
		VALUES ($1, $2)
		ON CONFLICT (student_id, module_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, studentID, moduleID)
	if err != nil {
		return fmt.Errorf("error creating registration: %w", err)
	}

	return nil
}

// GetStudentModules retrieves the modules a student is registered on,
// in registration order.
func (r *RegistrationRepository) GetStudentModules(ctx context.Context, studentID int64) ([]models.Module, error) {
	query := `
		SELECT m.id, m.code, m.name, m.mandatory
		FROM registrations r
		JOIN modules m ON m.id = r.module_id
		WHERE r.student_id = $1
		ORDER BY r.id ASC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error querying student modules: %w", err)
	}
	defer rows.Close()

	var modules []models.Module
	for rows.Next() {
		var module models.Module
		if err := rows.Scan(
			&module.ID,
			&module.Code,
			&module.Name,
			&module.Mandatory,
		); err != nil {
			return nil, fmt.Errorf("error scanning registered module: %w", err)
		}
		modules = append(modules, module)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registered modules: %w", err)
	}

	return modules, nil
}
