package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/tillworks/tilldesk/internal/core/domain"
	"github.com/tillworks/tilldesk/internal/core/services"
	"github.com/tillworks/tilldesk/internal/handlers"
	"github.com/tillworks/tilldesk/internal/middleware"
	"github.com/tillworks/tilldesk/internal/platform/config"
	"github.com/tillworks/tilldesk/internal/repositories/database/pgsql"
	"github.com/tillworks/tilldesk/internal/seed"
	"github.com/tillworks/tilldesk/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Tilldesk API
// @version 1.0
// @description Point-of-sale and bookkeeping backend for small businesses.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	// Make sure the chart of accounts the rest of the system depends on
	// exists before serving requests.
	for _, outcome := range seed.EnsureDefaultAccounts(context.Background(), repos.AccountRepo) {
		switch {
		case outcome.Err != nil:
			logger.Error("Failed to seed account", slog.String("account", outcome.Name), slog.String("error", outcome.Err.Error()))
		case outcome.Created:
			logger.Info("Seeded default account", slog.String("account", outcome.Name))
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	registerCustomValidators(logger)

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, buildLoginLimiter(cfg, logger))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations. It opens a temporary
// database/sql connection via the pgx stdlib driver so golang-migrate can
// share the same driver as the main pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	if err := migrationDB.Ping(); err != nil {
		migrationDB.Close()
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		migrationDB.Close()
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		migrationDB.Close()
		return err
	}

	upErr := m.Up()
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
		return nil
	}
	if upErr != nil {
		return upErr
	}
	logger.Info("Database migrations applied successfully.")
	return nil
}

// registerCustomValidators adds the binding tags used by the DTOs.
func registerCustomValidators(logger *slog.Logger) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		logger.Warn("Could not access gin validator engine; custom validators skipped")
		return
	}
	_ = v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
		return domain.IsValidAccountType(domain.AccountType(fl.Field().String()))
	})
}

// buildLoginLimiter creates the per-IP rate limit middleware applied to the
// login endpoints.
func buildLoginLimiter(cfg *config.Config, logger *slog.Logger) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		logger.Warn("Invalid LOGIN_RATE_LIMIT, falling back to 10-M", slog.String("error", err.Error()))
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}
