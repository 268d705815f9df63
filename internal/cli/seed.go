package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
)

// SeedCommand fills an empty database with sample books, customers and loans.
type SeedCommand struct {
	database databaseFlags

	// Result of the last Run.
	Result database.SeedResult
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	cmd.database.register(fs, config.NewConfig().Database)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Insert sample data. Rows that already exist are left alone.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	return cmd.database.validate()
}

func (cmd *SeedCommand) Run() error {
	ctx := context.Background()

	db, err := cmd.database.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := db.Seed(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	cmd.Result = result

	fmt.Printf("\n=== Seed Results ===\n")
	fmt.Printf("Books inserted: %d\n", result.Books)
	fmt.Printf("Customers inserted: %d\n", result.Customers)
	fmt.Printf("Loans inserted: %d\n", result.Loans)
	return nil
}
