package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kdattani/gradebook/internal/app/models"
	"github.com/kdattani/gradebook/internal/pkg/logger"
)

// GradeRepository handles grade database operations
type GradeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateGrade inserts a grade row and returns the assigned id. Grades
// are append-only; there is no unique constraint, so a student's full
// grade history per module is retained.
func (r *GradeRepository) CreateGrade(ctx context.Context, grade *models.Grade) (int64, error) {
	sql, args, err := r.sb.Insert("grades").
		Columns("student_id", "module_id", "score").
		Values(grade.StudentID, grade.Module.ID, grade.Score).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create grade SQL")
		return 0, fmt.Errorf("failed to build create grade query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).
			Int64("studentID", grade.StudentID).
			Str("moduleCode", grade.Module.Code).
			Msg("Error executing create grade query")
		return 0, fmt.Errorf("error creating grade: %w", err)
	}

	return id, nil
}

// GetStudentGrades retrieves a student's grades with their modules
// hydrated, ordered by insertion so that the first recorded grade for
// a module comes first.
func (r *GradeRepository) GetStudentGrades(ctx context.Context, studentID int64) ([]models.Grade, error) {
	sql, args, err := r.sb.Select(
		"g.id", "g.student_id", "g.score",
		"m.id", "m.code", "m.name", "m.mandatory",
	).
		From("grades g").
		Join("modules m ON m.id = g.module_id").
		Where(squirrel.Eq{"g.student_id": studentID}).
		OrderBy("g.id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student grades SQL")
		return nil, fmt.Errorf("failed to build get student grades query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing get student grades query")
		return nil, fmt.Errorf("error querying student grades: %w", err)
	}
	defer rows.Close()

	grades := []models.Grade{}
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(
			&grade.ID,
			&grade.StudentID,
			&grade.Score,
			&grade.Module.ID,
			&grade.Module.Code,
			&grade.Module.Name,
			&grade.Module.Mandatory,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning grade row")
			return nil, fmt.Errorf("error scanning grade row: %w", err)
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating grade rows")
		return nil, fmt.Errorf("error iterating grade rows: %w", err)
	}

	return grades, nil
}
