package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kdattani/gradebook/internal/app/models"
	"github.com/kdattani/gradebook/internal/pkg/apperrors"
	"github.com/kdattani/gradebook/internal/pkg/dberrors"
	"github.com/kdattani/gradebook/internal/pkg/helpers"
	"github.com/kdattani/gradebook/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateStudent inserts a student and returns the assigned id.
// Username and email uniqueness is enforced by the table constraints;
// a violation surfaces as apperrors.ErrStudentAlreadyExists.
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("first_name", "last_name", "username", "email").
		Values(student.FirstName, student.LastName, student.Username, student.Email).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_username_key") {
			return 0, fmt.Errorf("%w: username %s is already in use", apperrors.ErrStudentAlreadyExists, student.Username)
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return 0, fmt.Errorf("%w: email %s is already in use", apperrors.ErrStudentAlreadyExists, student.Email)
		}
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrStudentAlreadyExists
		}
		logger.Error().Err(err).Str("username", student.Username).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetStudentByID retrieves a student's identity row. Registered
// modules and grades are hydrated separately by the service layer.
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select("id", "first_name", "last_name", "username", "email").
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Username,
		&student.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// GetAllStudents retrieves one page of students ordered by id, plus
// the total row count for pagination metadata.
func (r *StudentRepository) GetAllStudents(ctx context.Context, page, size int) ([]*models.Student, int64, error) {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("students").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count students SQL")
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting students")
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sql, args, err := r.sb.Select("id", "first_name", "last_name", "username", "email").
		From("students").
		OrderBy("id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all students SQL")
		return nil, 0, fmt.Errorf("failed to build get all students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, 0, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.Username,
			&student.Email,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning student row during get all")
			return nil, 0, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, 0, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, total, nil
}

// DeleteStudent deletes a student by ID. Registrations and grades go
// with it via ON DELETE CASCADE.
func (r *StudentRepository) DeleteStudent(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
