package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id           TEXT PRIMARY KEY,
		kind         TEXT NOT NULL
		             CHECK(kind IN ('custom','singleGoal','pacer','multisport')),
		display_name TEXT NOT NULL DEFAULT '',
		activity     TEXT NOT NULL DEFAULT '',
		definition   TEXT NOT NULL,
		scheduled_at TEXT,
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_created_at ON plans(created_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
