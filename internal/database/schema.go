package database

import (
	"context"
	"fmt"
)

const sqliteSchemaSQL = `
CREATE TABLE IF NOT EXISTS results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT,
    time TEXT,
    coupon_name TEXT,
    number TEXT
);
`

const pgxSchemaSQL = `
CREATE TABLE IF NOT EXISTS results (
    id BIGSERIAL PRIMARY KEY,
    date TEXT,
    time TEXT,
    coupon_name TEXT,
    number TEXT
);
`

func InitSchema(ctx context.Context, db *DB) error {
	schema := sqliteSchemaSQL
	if db.DriverName() == DriverPgx {
		schema = pgxSchemaSQL
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}
