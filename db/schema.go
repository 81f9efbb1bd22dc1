// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the tables used by the SQL session store.
// Safe to call multiple times - uses IF NOT EXISTS.
// Works on both SQLite and PostgreSQL.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are unix milliseconds so the same DDL works on both drivers.
const schema = `
CREATE TABLE IF NOT EXISTS wizard_session (
    id TEXT PRIMARY KEY,
    step INTEGER NOT NULL DEFAULT 1 CHECK (step IN (1, 2)),
    certificate_type TEXT NOT NULL DEFAULT '',
    outcome_success BOOLEAN,
    outcome_message TEXT,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_wizard_session_updated_at ON wizard_session(updated_at);
`
