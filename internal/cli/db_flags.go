package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
)

// databaseFlags binds the connection flags shared by commands that talk to
// the database. Defaults come from the environment so that a command run
// next to the server uses the same database.
type databaseFlags struct {
	cfg config.Database
}

func (f *databaseFlags) register(fs *flag.FlagSet, defaults config.Database) {
	f.cfg = defaults
	fs.Func("driver", fmt.Sprintf("Database driver: sqlite or postgres (default %q)", defaults.Driver), func(s string) error {
		f.cfg.Driver = config.DatabaseDriver(s)
		return nil
	})
	fs.StringVar(&f.cfg.Path, "db", defaults.Path, "Path to the SQLite database file")
	fs.StringVar(&f.cfg.DSN, "dsn", defaults.DSN, "PostgreSQL connection URL")
}

func (f *databaseFlags) validate() error {
	switch f.cfg.Driver {
	case config.DatabaseDriverSQLite, config.DatabaseDriverPostgres:
		return nil
	default:
		return fmt.Errorf("unsupported database driver %q", f.cfg.Driver)
	}
}

// open connects and makes sure the schema exists.
func (f *databaseFlags) open(ctx context.Context) (*database.Database, error) {
	db, err := database.NewDatabase(f.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	return db, nil
}
