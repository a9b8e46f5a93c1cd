package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpenInMemory opens a fresh, migrated, in-memory SQLite database. Each call
// gets its own database so tests do not share state.
func OpenInMemory(ctx context.Context) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := Open(Options{Driver: DriverSQLite, DSN: dsn})
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, db); err != nil {
		_ = Close(db)
		return nil, err
	}
	return db, nil
}
