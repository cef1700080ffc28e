package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/kdattani/gradebook/internal/app/controllers"
	appMigrations "github.com/kdattani/gradebook/internal/app/migrations"
	appRepos "github.com/kdattani/gradebook/internal/app/repositories"
	appRoutes "github.com/kdattani/gradebook/internal/app/routes"
	appServices "github.com/kdattani/gradebook/internal/app/services"
	"github.com/kdattani/gradebook/internal/config"
	"github.com/kdattani/gradebook/internal/db"
	appMiddleware "github.com/kdattani/gradebook/internal/middleware"
	"github.com/kdattani/gradebook/internal/pkg/logger"
	"github.com/kdattani/gradebook/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService    appServices.StudentService
	ModuleService     appServices.ModuleService
	GradeService      appServices.GradeService
	StudentController *appControllers.StudentController
	ModuleController  *appControllers.ModuleController
	GradeController   *appControllers.GradeController
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Format: strings.ToLower(cfg.Logging.Format),
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations
// and seeds the default module catalog.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Run migrations
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	// Create default data (after migrations)
	if err := seed.CreateDefaultData(ctx, dbPool, lgr); err != nil {
		// Seeding failures are not fatal at startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Initialize services
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.ModuleRepository,
		deps.Repos.RegistrationRepository,
		deps.Repos.GradeRepository,
	)
	deps.ModuleService = appServices.NewModuleService(deps.Repos.ModuleRepository)
	deps.GradeService = appServices.NewGradeService(
		deps.Repos.StudentRepository,
		deps.Repos.ModuleRepository,
		deps.Repos.RegistrationRepository,
		deps.Repos.GradeRepository,
	)

	// Initialize controllers
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.ModuleController = appControllers.NewModuleController(deps.ModuleService)
	deps.GradeController = appControllers.NewGradeController(deps.GradeService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())
	router.Use(gin.Recovery())

	// Setup Swagger
	if cfg.Swagger.Enabled {
		appRoutes.SetupSwagger(router)
	}

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.ModuleController,
		deps.GradeController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router, nil
}
