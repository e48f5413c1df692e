package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the schema if missing and seeds the singleton wallet row
// with startingMoney on first boot. Safe to run on every start.
func Migrate(ctx context.Context, db *sql.DB, startingMoney int) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task_name TEXT NOT NULL,
			task_date TEXT NOT NULL,
			task_difficulty TEXT NOT NULL,
			task_completed INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_tasks_name_date ON tasks(task_name, task_date);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(task_date);`,
		// id is pinned to 1 so the wallet stays a singleton
		`CREATE TABLE IF NOT EXISTS wallet (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			money INTEGER NOT NULL CHECK (money >= 0)
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	if startingMoney < 0 {
		startingMoney = 0
	}
	if _, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO wallet (id, money) VALUES (1, ?)`, startingMoney,
	); err != nil {
		return fmt.Errorf("seed wallet: %w", err)
	}
	return nil
}
