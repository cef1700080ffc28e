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
	"github.com/kdattani/gradebook/internal/pkg/logger"
)

// ModuleRepository handles module database operations
type ModuleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewModuleRepository creates a new ModuleRepository
func NewModuleRepository(db *pgxpool.Pool) *ModuleRepository {
	return &ModuleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateModule inserts a module and returns the assigned id. The code
// is unique; a violation surfaces as apperrors.ErrModuleAlreadyExists.
func (r *ModuleRepository) CreateModule(ctx context.Context, module *models.Module) (int64, error) {
	sql, args, err := r.sb.Insert("modules").
		Columns("code", "name", "mandatory").
		Values(module.Code, module.Name, module.Mandatory).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create module SQL")
		return 0, fmt.Errorf("failed to build create module query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrModuleAlreadyExists
		}
		logger.Error().Err(err).Str("moduleCode", module.Code).Msg("Error executing create module query")
		return 0, fmt.Errorf("error creating module: %w", err)
	}

	return id, nil
}

// GetModuleByCode retrieves a module by its code, the identifier the
// rest of the system refers to modules by.
func (r *ModuleRepository) GetModuleByCode(ctx context.Context, code string) (*models.Module, error) {
	sql, args, err := r.sb.Select("id", "code", "name", "mandatory").
		From("modules").
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get module by code SQL")
		return nil, fmt.Errorf("failed to build get module query: %w", err)
	}

	module := &models.Module{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&module.ID, &module.Code, &module.Name, &module.Mandatory)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrModuleNotFound
		}
		logger.Error().Err(err).Str("moduleCode", code).Msg("Error scanning module row")
		return nil, fmt.Errorf("error getting module by code: %w", err)
	}

	return module, nil
}

// GetAllModules retrieves the whole module catalog ordered by code
func (r *ModuleRepository) GetAllModules(ctx context.Context) ([]models.Module, error) {
	sql, args, err := r.sb.Select("id", "code", "name", "mandatory").
		From("modules").
		OrderBy("code ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all modules SQL")
		return nil, fmt.Errorf("failed to build get all modules query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all modules query")
		return nil, fmt.Errorf("error querying modules: %w", err)
	}
	defer rows.Close()

	modules := []models.Module{}
	for rows.Next() {
		var module models.Module
		if err := rows.Scan(&module.ID, &module.Code, &module.Name, &module.Mandatory); err != nil {
			logger.Error().Err(err).Msg("Error scanning module row during get all")
			return nil, fmt.Errorf("error scanning module row: %w", err)
		}
		modules = append(modules, module)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating module rows")
		return nil, fmt.Errorf("error iterating module rows: %w", err)
	}

	return modules, nil
}

// DeleteModuleByCode deletes a module by code. Registrations and
// grades referencing it go with it via ON DELETE CASCADE.
func (r *ModuleRepository) DeleteModuleByCode(ctx context.Context, code string) error {
	sql, args, err := r.sb.Delete("modules").
		Where(squirrel.Eq{"code": code}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete module SQL")
		return fmt.Errorf("failed to build delete module query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("moduleCode", code).Msg("Error executing delete module query")
		return fmt.Errorf("error deleting module: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrModuleNotFound
	}

	return nil
}
