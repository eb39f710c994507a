package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/collegeadmin/internal/app/controllers"
	appMigrations "github.com/yigit/collegeadmin/internal/app/migrations"
	appRepos "github.com/yigit/collegeadmin/internal/app/repositories"
	appRoutes "github.com/yigit/collegeadmin/internal/app/routes"
	appServices "github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/config"
	"github.com/yigit/collegeadmin/internal/db"
	"github.com/yigit/collegeadmin/internal/pkg/helpers"
	"github.com/yigit/collegeadmin/internal/pkg/logger"
	"github.com/yigit/collegeadmin/internal/seed"
	"github.com/yigit/collegeadmin/web"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers appRoutes.Controllers
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL and runs migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Int("maxConns", cfg.Database.MaxOpenConns).Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := appMigrations.NewMigrator(database.Pool).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// SetupMongo connects to MongoDB and selects the lecturer collection.
func SetupMongo(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Str("database", cfg.Mongo.Database).Msg("Establishing MongoDB connection...")
	mongoDB, err := db.NewMongoDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to MongoDB")
		return nil, err
	}
	lgr.Info().Str("collection", cfg.Mongo.Collection).Msg("MongoDB connection successfully established.")
	return mongoDB, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, pg *db.PostgresDB, mongoDB *db.MongoDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(pg.Pool, mongoDB.Lecturers)
	deps.Services = appServices.NewServices(
		deps.Repos.StudentRepository,
		deps.Repos.GradeRepository,
		deps.Repos.ModuleRepository,
		deps.Repos.LecturerRepository,
	)

	deps.Controllers = appRoutes.Controllers{
		Home:     appControllers.NewHomeController(),
		Student:  appControllers.NewStudentController(deps.Services.Student),
		Grade:    appControllers.NewGradeController(deps.Services.Grade),
		Lecturer: appControllers.NewLecturerController(deps.Services.Lecturer),
		Health: appControllers.NewHealthController(map[string]appControllers.Pinger{
			"postgres": pg,
			"mongo":    mongoDB,
		}),
	}

	return deps
}

// SeedData inserts the sample data when seeding is enabled. Failures are logged, not fatal.
func SeedData(ctx context.Context, cfg *config.Config, deps *Dependencies) {
	if !cfg.Seed.Enabled {
		deps.Logger.Debug().Msg("Seeding disabled")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	stores := seed.Stores{
		Modules:   deps.Repos.ModuleRepository,
		Students:  deps.Repos.StudentRepository,
		Grades:    deps.Repos.GradeRepository,
		Lecturers: deps.Repos.LecturerRepository,
	}
	if err := seed.CreateDefaultData(ctx, stores, deps.Logger); err != nil {
		deps.Logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
}

// SetupRouter configures the Gin engine with middleware, views and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	views, err := web.Templates()
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to parse view templates")
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := appRoutes.NewRouter(views)
	appRoutes.SetupRouter(router, deps.Controllers)
	return router, nil
}

// ShutdownTimeout returns the configured graceful shutdown window
func ShutdownTimeout(cfg *config.Config) time.Duration {
	return helpers.ParseDuration(cfg.Server.ShutdownTimeout, 10*time.Second)
}
