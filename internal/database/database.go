package database

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/entities"
)

const pingTimeout = 2 * time.Second

// Database owns the process-wide connection pool. It is created once at
// startup, shared by the schema manager and every repository, and closed
// explicitly on shutdown.
type Database struct {
	DB     *gorm.DB
	driver config.DatabaseDriver
}

// NewDatabase opens the configured database, applies pool limits and
// verifies the connection. It does not touch the schema; call EnsureSchema
// before accepting traffic.
func NewDatabase(cfg config.Database) (*Database, error) {
	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", TranslateError(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w: %w", ErrUnavailable, err)
	}

	log.Printf("Database connection established (driver=%s)", cfg.Driver)

	return &Database{DB: db, driver: cfg.Driver}, nil
}

// EnsureSchema creates the livro, cliente and emprestimo tables with their
// unique and foreign-key constraints. It is idempotent and safe to run on
// every start.
func (d *Database) EnsureSchema(ctx context.Context) error {
	err := d.DB.WithContext(ctx).AutoMigrate(
		&entities.Book{},
		&entities.Customer{},
		&entities.Loan{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", TranslateError(err))
	}
	log.Printf("Database schema is up to date")
	return nil
}

// Ping checks that the pool can reach the database.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return TranslateError(err)
	}
	return nil
}

func (d *Database) Driver() config.DatabaseDriver {
	return d.driver
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newDialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DatabaseDriverSQLite, "":
		if cfg.Path == "" {
			return nil, fmt.Errorf("database path is required for the sqlite driver")
		}
		return sqlite.Open(sqliteDSN(cfg.Path)), nil
	case config.DatabaseDriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("database DSN is required for the postgres driver")
		}
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off by
// default, and makes concurrent writers wait instead of failing.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
