// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation for the SQL session store.

Only wizard sessions are stored. Certificate requests are built at
submission time and never written to the database.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - wizard_session: one row per live session (step, selected certificate
    type, last submission outcome, created/updated timestamps)

Timestamps are stored as unix milliseconds (BIGINT) and the DDL avoids
dialect-specific defaults, so the same schema runs on SQLite
(modernc.org/sqlite) and PostgreSQL (github.com/lib/pq).

# Indexes

  - wizard_session.updated_at: used when pruning expired sessions
*/
package db
