package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies all pending migrations.
func Migrate(ctx context.Context, db *gorm.DB) error {
	var dialect goose.Dialect
	switch name := db.Dialector.Name(); name {
	case DriverPostgres:
		dialect = goose.DialectPostgres
	case DriverSQLite:
		dialect = goose.DialectSQLite3
	default:
		return fmt.Errorf("no migration dialect for driver %q", name)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	if dialect == goose.DialectSQLite3 {
		// goose may hold one connection while opening another.
		sqlDB.SetMaxOpenConns(2)
		defer sqlDB.SetMaxOpenConns(1)
	}

	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(dialect, sqlDB, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, r := range results {
		log.Printf("Applied migration %s (%s)", r.Source.Path, r.Duration)
	}
	return nil
}
