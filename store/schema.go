package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is the current container schema version.
const SchemaVersion = 1

const schemaV1 = `
CREATE TABLE IF NOT EXISTS objects (
    name TEXT PRIMARY KEY,
    kind TEXT NOT NULL,      -- 'array' or 'matrix'
    rows INTEGER NOT NULL,
    cols INTEGER NOT NULL
);

-- One blob of cols float64 values per stored row
CREATE TABLE IF NOT EXISTS object_rows (
    name TEXT NOT NULL REFERENCES objects(name) ON DELETE CASCADE,
    row INTEGER NOT NULL,
    data BLOB NOT NULL,
    PRIMARY KEY (name, row)
);

CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);
`

// InitSchema creates the container tables if they do not exist.
func InitSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schemaV1); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, SchemaVersion); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return tx.Commit()
}

func hasSchema(ctx context.Context, db *sql.DB) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('objects', 'object_rows')`).Scan(&n)
	if err != nil {
		return false, err
	}
	return n == 2, nil
}
