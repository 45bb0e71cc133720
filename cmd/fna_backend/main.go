package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	_ "github.com/advisorkit/fna_app/cmd/docs"
	"github.com/advisorkit/fna_app/internal/adapters/cache"
	"github.com/advisorkit/fna_app/internal/adapters/database/pgsql"
	portsrepo "github.com/advisorkit/fna_app/internal/core/ports/repositories"
	"github.com/advisorkit/fna_app/internal/core/services"
	"github.com/advisorkit/fna_app/internal/handlers"
	"github.com/advisorkit/fna_app/internal/middleware"
	"github.com/advisorkit/fna_app/internal/platform/config"
	"github.com/advisorkit/fna_app/internal/utils"
	"github.com/advisorkit/fna_app/pkg/database"
)

// @title FNA Backend API
// @version 1.0
// @description Financial needs analysis intake and reporting backend.

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

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	planCache, err := cache.NewFileCache(cfg.CacheDir)
	if err != nil {
		logger.Error("Failed to initialize plan cache", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := portsrepo.RepositoryProvider{
		ClientRepo:    pgsql.NewClientRepository(dbPool),
		PlanRepo:      pgsql.NewPlanRepository(dbPool),
		LiabilityRepo: pgsql.NewLiabilityRepository(dbPool),
		UserRepo:      pgsql.NewUserRepository(dbPool),
		PlanCache:     planCache,
	}

	serviceContainer := services.NewServiceContainer(cfg, repos)

	// Stale backup pruning runs on a schedule for the life of the process.
	pruneCron := cron.New()
	_, err = pruneCron.AddFunc(cfg.CachePruneSchedule, func() {
		removed, pruneErr := planCache.Prune(context.Background(), cfg.CacheMaxAge)
		if pruneErr != nil {
			logger.Error("Plan cache prune failed", slog.String("error", pruneErr.Error()))
			return
		}
		logger.Info("Plan cache pruned", slog.Int("removed", removed))
	})
	if err != nil {
		logger.Error("Failed to schedule cache pruning", slog.String("error", err.Error()))
		os.Exit(1)
	}
	pruneCron.Start()
	defer pruneCron.Stop()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if rate, rateErr := limiter.NewRateFromFormatted(cfg.RateLimit); rateErr == nil {
		r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))
	} else {
		logger.Warn("Invalid RATE_LIMIT value, rate limiting disabled", slog.String("value", cfg.RateLimit))
	}
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection compatible with the pgx pool.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
