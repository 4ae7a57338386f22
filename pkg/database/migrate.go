package database

import (
	"database/sql"
	"fmt"
	"os"
)

// Migrate applies the rooms/preferences DDL. The schema only uses
// CREATE ... IF NOT EXISTS, so running it on every start is safe.
func Migrate(db *sql.DB) error {
	b, err := os.ReadFile("docs/schema.sql")
	if err != nil {
		return fmt.Errorf("read docs/schema.sql: %w", err)
	}

	if _, err := db.Exec(string(b)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
