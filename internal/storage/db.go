package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultDBPath places the database under the data directory next to the
// process, matching where the ops tooling expects it.
func DefaultDBPath(dataDir string) string {
	return filepath.Join(dataDir, "tasks.db")
}

// OpenSQLite opens (and creates if missing) the SQLite database at path.
// The parent directory is created as needed. database/sql serializes
// writers for us; sqlite itself is the single logical writer.
func OpenSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}
