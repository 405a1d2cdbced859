package datasources

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"staff-roster.backend/internal/config"
	"staff-roster.backend/internal/infrastructure/datasources/postgres"
	"staff-roster.backend/internal/infrastructure/models"
	"staff-roster.backend/pkg/logger"
)

var newPostgresConn = postgres.NewConnection

// gormConfig translates driver errors so unique violations surface as gorm.ErrDuplicatedKey.
func gormConfig(env string) *gorm.Config {
	level := gormlogger.Warn
	if env == "development" {
		level = gormlogger.Info
	}
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	}
}

// Open connects to the configured database. Postgres goes through a lib/pq
// pool handed to the gorm dialect; sqlite opens the file with foreign keys on.
func Open(cfg config.DatabaseConfig, env string) (*gorm.DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := gorm.Open(sqlite.Open(SQLiteDSN(cfg.SQLitePath)), gormConfig(env))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return db, nil
	case config.DriverPostgres:
		sqlDB, err := newPostgresConn(cfg)
		if err != nil {
			return nil, err
		}
		db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), gormConfig(env))
		if err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// SQLiteDSN enables foreign key enforcement so cascades behave like Postgres.
func SQLiteDSN(path string) string {
	return "file:" + path + "?_foreign_keys=on"
}

// Migrate creates or updates the schema, including the case-insensitive
// email index gorm tags cannot express.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.WithContext(ctx).Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_employees_email_lower ON employees (LOWER(email))",
	).Error; err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	logger.Info(ctx, "Database schema migrated", zap.Int("models", len(models.All())))
	return nil
}
