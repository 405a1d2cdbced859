package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"staff-roster.backend/internal/config"
	"staff-roster.backend/internal/infrastructure/datasources"
	"staff-roster.backend/internal/infrastructure/repositories"
	"staff-roster.backend/internal/interfaces/http/handlers"
	"staff-roster.backend/internal/interfaces/http/middleware"
	"staff-roster.backend/internal/usecases"
	"staff-roster.backend/pkg/logger"
	"staff-roster.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = datasources.Open
	newRedis   = redis.New
	runServer  = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownCh = func() (context.Context, context.CancelFunc) {
		return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	}
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := loadCfg()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database, cfg.Server.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()
	logger.Info(ctx, "Database connected", zap.String("driver", cfg.Database.Driver))

	if cfg.Database.AutoMigrate {
		if err := datasources.Migrate(ctx, db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Redis only backs idempotent replays; without it they are disabled.
	var store middleware.IdempotencyStore
	if cfg.Redis.Enabled() {
		rc, err := newRedis(cfg.Redis.URL, cfg.Redis.Password)
		if err != nil {
			logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer rc.Close()
		store = rc
		logger.Info(ctx, "Redis initialized")
	} else {
		logger.Warn(ctx, "REDIS_URL not set, Idempotency-Key replay disabled")
	}

	r := newRouter(cfg, db, store)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info(ctx, "Staff roster backend starting",
		zap.String("port", cfg.Server.Port),
		zap.String("api", "http://localhost:"+cfg.Server.Port+"/api/"),
	)
	return serve(srv, cfg.Server.ShutdownTimeout)
}

// newRouter wires repositories, usecases and handlers onto a gin engine.
func newRouter(cfg *config.Config, db *gorm.DB, store middleware.IdempotencyStore) *gin.Engine {
	skillRepo := repositories.NewSkillRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	availabilityRepo := repositories.NewAvailabilityRepository(db)
	uow := repositories.NewUnitOfWork(db)

	skillUsecase := usecases.NewSkillUsecase(skillRepo, uow)
	employeeUsecase := usecases.NewEmployeeUsecase(employeeRepo, skillRepo, uow)
	availabilityUsecase := usecases.NewAvailabilityUsecase(availabilityRepo, employeeRepo, uow)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r, handlers.NewHealthHandler(db))
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
	registerAPIRoutes(r, routeDeps{
		skillHandler:        handlers.NewSkillHandler(skillUsecase),
		employeeHandler:     handlers.NewEmployeeHandler(employeeUsecase, availabilityUsecase),
		availabilityHandler: handlers.NewAvailabilityHandler(availabilityUsecase),
		idempotency:         middleware.IdempotencyMiddleware(store),
	})
	return r
}

// serve runs srv until it fails or a shutdown signal arrives, then drains
// in-flight requests for at most timeout.
func serve(srv *http.Server, timeout time.Duration) error {
	ctx, stop := shutdownCh()
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- runServer(srv)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
