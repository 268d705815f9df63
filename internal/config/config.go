package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseDriver string

const (
	DatabaseDriverSQLite   DatabaseDriver = "sqlite"   // Embedded database file (default)
	DatabaseDriverPostgres DatabaseDriver = "postgres" // PostgreSQL via pgx
)

type (
	Config struct {
		HTTP
		Global
		Database
		Docs
	}

	HTTP struct {
		Port    int32
		Host    string
		GinMode string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver          DatabaseDriver
		Path            string // SQLite file path
		DSN             string // PostgreSQL connection URL
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime time.Duration
		LogLevel        string // silent, error, warn, info
	}
	Docs struct {
		Enabled bool // Serve the OpenAPI description and Swagger UI
	}
)

// EnvFiles are loaded, in order, before the environment is read.
// Variables already present in the environment are never overridden.
var EnvFiles = []string{".env", ".env.local"}

func loadEnvFiles() {
	for _, f := range EnvFiles {
		_ = godotenv.Load(f)
	}
}

func NewConfig() *Config {
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 3000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("shutdown_timeout_in_seconds", 5)

	// Database defaults
	v.SetDefault("database_driver", string(DatabaseDriverSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", DefaultPostgresDSN)
	v.SetDefault("database_max_open_conns", 10)
	v.SetDefault("database_max_idle_conns", 5)
	v.SetDefault("database_conn_max_lifetime", "30m")
	v.SetDefault("database_log_level", "warn")

	v.SetDefault("docs_enabled", true)

	return &Config{
		HTTP: HTTP{
			Port:    v.GetInt32("PORT"),
			Host:    v.GetString("HOST"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:          DatabaseDriver(v.GetString("DATABASE_DRIVER")),
			Path:            v.GetString("DATABASE_PATH"),
			DSN:             v.GetString("DATABASE_DSN"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DATABASE_CONN_MAX_LIFETIME"),
			LogLevel:        v.GetString("DATABASE_LOG_LEVEL"),
		},
		Docs: Docs{
			Enabled: v.GetBool("DOCS_ENABLED"),
		},
	}
}
