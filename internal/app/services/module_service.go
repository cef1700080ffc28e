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

// ModuleService defines the interface for module catalog operations
type ModuleService interface {
	CreateModule(ctx context.Context, module *models.Module) (int64, error)
	GetModuleByCode(ctx context.Context, code string) (*models.Module, error)
	GetAllModules(ctx context.Context) ([]models.Module, error)
	DeleteModuleByCode(ctx context.Context, code string) error
}

// moduleServiceImpl implements the ModuleService interface
type moduleServiceImpl struct {
	moduleStore ModuleStore
}

// NewModuleService creates a new module service instance
func NewModuleService(moduleStore ModuleStore) ModuleService {
	return &moduleServiceImpl{
		moduleStore: moduleStore,
	}
}

// validateModule validates module data before database operations
func (s *moduleServiceImpl) validateModule(module *models.Module) error {
	if module == nil {
		return fmt.Errorf("%w: module is nil", apperrors.ErrValidationFailed)
	}

	code := strings.TrimSpace(module.Code)
	if code == "" {
		return fmt.Errorf("%w: code cannot be empty", apperrors.ErrValidationFailed)
	}
	if len(code) > validation.ModuleCodeMaxLength {
		return fmt.Errorf("%w: code exceeds %d characters", apperrors.ErrValidationFailed, validation.ModuleCodeMaxLength)
	}
	if !validation.CompiledPatterns.ModuleCode.MatchString(code) {
		return fmt.Errorf("%w: code must be uppercase letters and digits", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(module.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if len(module.Name) > validation.ModuleNameMaxLength {
		return fmt.Errorf("%w: name exceeds %d characters", apperrors.ErrValidationFailed, validation.ModuleNameMaxLength)
	}

	return nil
}

// CreateModule creates a new module. The code is unique across the
// catalog; a clash surfaces as ErrModuleAlreadyExists.
func (s *moduleServiceImpl) CreateModule(ctx context.Context, module *models.Module) (int64, error) {
	if err := s.validateModule(module); err != nil {
		return 0, err
	}

	id, err := s.moduleStore.CreateModule(ctx, module)
	if err != nil {
		if errors.Is(err, apperrors.ErrModuleAlreadyExists) {
			return 0, apperrors.ErrModuleAlreadyExists
		}
		return 0, fmt.Errorf("error creating module: %w", err)
	}
	return id, nil
}

// GetModuleByCode retrieves a module by code
func (s *moduleServiceImpl) GetModuleByCode(ctx context.Context, code string) (*models.Module, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: module code cannot be empty", apperrors.ErrValidationFailed)
	}

	module, err := s.moduleStore.GetModuleByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrModuleNotFound) {
			return nil, apperrors.ErrModuleNotFound
		}
		return nil, fmt.Errorf("error retrieving module: %w", err)
	}
	return module, nil
}

// GetAllModules retrieves the whole module catalog
func (s *moduleServiceImpl) GetAllModules(ctx context.Context) ([]models.Module, error) {
	modules, err := s.moduleStore.GetAllModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving modules: %w", err)
	}
	return modules, nil
}

// DeleteModuleByCode deletes a module by code
func (s *moduleServiceImpl) DeleteModuleByCode(ctx context.Context, code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: module code cannot be empty", apperrors.ErrValidationFailed)
	}

	err := s.moduleStore.DeleteModuleByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrModuleNotFound) {
			return apperrors.ErrModuleNotFound
		}
		return fmt.Errorf("error deleting module: %w", err)
	}
	return nil
}
