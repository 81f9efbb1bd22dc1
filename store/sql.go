// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/certificate-wizard/db"
	"github.com/danielhkuo/certificate-wizard/models"
	"github.com/danielhkuo/certificate-wizard/wizard"
)

// SQLStore keeps sessions in SQLite or PostgreSQL
type SQLStore struct {
	db     *sql.DB
	driver string
	ttl    time.Duration
	now    func() time.Time
}

// NewSQL wraps an open connection and creates the schema. driver is
// "sqlite" or "postgres" and selects the placeholder style.
func NewSQL(conn *sql.DB, driver string, ttl time.Duration) (*SQLStore, error) {
	if driver != KindSQLite && driver != KindPostgres {
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}
	if err := db.CreateSchema(conn); err != nil {
		return nil, err
	}
	return &SQLStore{db: conn, driver: driver, ttl: ttl, now: time.Now}, nil
}

// rebind rewrites ? placeholders to $N for PostgreSQL
func (s *SQLStore) rebind(query string) string {
	if s.driver != KindPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func (s *SQLStore) Get(ctx context.Context, id string) (*wizard.Session, error) {
	var (
		step           int
		certType       string
		outcomeSuccess sql.NullBool
		outcomeMessage sql.NullString
		createdAt      int64
		updatedAt      int64
	)
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT step, certificate_type, outcome_success, outcome_message, created_at, updated_at
		FROM wizard_session
		WHERE id = ?
	`), id).Scan(&step, &certType, &outcomeSuccess, &outcomeMessage, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}

	session := &wizard.Session{
		ID:        id,
		Step:      models.Step(step),
		CreatedAt: fromMillis(createdAt),
		UpdatedAt: fromMillis(updatedAt),
	}
	if !session.Step.Valid() {
		return nil, fmt.Errorf("session %s has invalid step %d", id, step)
	}
	if certType != "" {
		typ, err := models.ParseCertificateCode(certType)
		if err != nil {
			return nil, fmt.Errorf("session %s: %w", id, err)
		}
		session.SelectedType = typ
	}
	if outcomeSuccess.Valid {
		session.Outcome = &wizard.Outcome{
			Success: outcomeSuccess.Bool,
			Message: outcomeMessage.String,
		}
	}

	if expired(session, s.ttl, s.now()) {
		if err := s.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, ErrNotFound
	}
	return session, nil
}

func (s *SQLStore) Save(ctx context.Context, session *wizard.Session) error {
	var outcomeSuccess sql.NullBool
	var outcomeMessage sql.NullString
	if session.Outcome != nil {
		outcomeSuccess = sql.NullBool{Bool: session.Outcome.Success, Valid: true}
		outcomeMessage = sql.NullString{String: session.Outcome.Message, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO wizard_session (id, step, certificate_type, outcome_success, outcome_message, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			step = excluded.step,
			certificate_type = excluded.certificate_type,
			outcome_success = excluded.outcome_success,
			outcome_message = excluded.outcome_message,
			updated_at = excluded.updated_at
	`), session.ID, int(session.Step), string(session.SelectedType), outcomeSuccess, outcomeMessage,
		toMillis(session.CreatedAt), toMillis(session.UpdatedAt))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM wizard_session WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) Prune(ctx context.Context) (int64, error) {
	if s.ttl <= 0 {
		return 0, nil
	}
	cutoff := toMillis(s.now().Add(-s.ttl))
	result, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM wizard_session WHERE updated_at < ?`), cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	return n, nil
}

func (s *SQLStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
