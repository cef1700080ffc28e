package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kdattani/gradebook/internal/app/models"
	appRepos "github.com/kdattani/gradebook/internal/app/repositories"
	"github.com/kdattani/gradebook/internal/pkg/apperrors"
)

// CreateDefaultData inserts the default module catalog if it is not
// there yet. Modules that already exist are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	moduleRepo := appRepos.NewModuleRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default module catalog...")
	var finalErr error // Collect errors without stopping the process

	defaultModules := []appModels.Module{
		{Code: "CS101", Name: "Intro to Programming", Mandatory: true},
		{Code: "CS102", Name: "Data Structures", Mandatory: true},
	}

	for _, defaultModule := range defaultModules {
		module := defaultModule
		_, err := moduleRepo.CreateModule(ctx, &module)
		if err != nil && !errors.Is(err, apperrors.ErrModuleAlreadyExists) {
			lgr.Error().Err(err).Str("code", module.Code).Msg("Error creating default module")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
