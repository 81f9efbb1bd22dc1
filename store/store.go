// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/certificate-wizard/wizard"
)

var ErrNotFound = errors.New("session not found")

// Store keeps wizard sessions. Implementations copy on read and write so
// callers never share a *wizard.Session.
type Store interface {
	Get(ctx context.Context, id string) (*wizard.Session, error)
	Save(ctx context.Context, s *wizard.Session) error
	Delete(ctx context.Context, id string) error
	// Prune drops sessions idle for longer than the TTL
	Prune(ctx context.Context) (int64, error)
	Close() error
}

const (
	KindMemory   = "memory"
	KindSQLite   = "sqlite"
	KindPostgres = "postgres"
)

// Open builds a store of the given kind. dsn is ignored for memory.
// The SQL drivers must be registered by the caller.
func Open(kind, dsn string, ttl time.Duration) (Store, error) {
	switch kind {
	case KindMemory:
		return NewMemory(ttl), nil
	case KindSQLite, KindPostgres:
		conn, err := sql.Open(kind, dsn)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", kind, err)
		}
		if err := conn.Ping(); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("ping %s: %w", kind, err)
		}
		if kind == KindSQLite {
			// one writer keeps :memory: databases on a single connection
			conn.SetMaxOpenConns(1)
		}
		s, err := NewSQL(conn, kind, ttl)
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown session store %q", kind)
}

func expired(s *wizard.Session, ttl time.Duration, now time.Time) bool {
	return ttl > 0 && now.Sub(s.UpdatedAt) > ttl
}
