// Package usage tracks how often installed skills are invoked, backed
// by a local SQLite database.
package usage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/skillctl/skillctl/internal/assistant"
)

// Record is one skill's usage counter for a single assistant.
type Record struct {
	Assistant        assistant.Assistant `json:"assistant"`
	Skill            string              `json:"skill"`
	Count            int64               `json:"count"`
	LastUsedAtUnixMs int64               `json:"last_used_at_unix_ms"`
}

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	p := filepath.Clean(strings.TrimSpace(path))
	if p == "" {
		return nil, errors.New("missing usage database path")
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return nil, err
	}

	// modernc.org/sqlite uses a file path as DSN.
	db, err := sql.Open("sqlite", p)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Keep the connection open (single-process local DB).
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Increment bumps the usage counter for one skill under one assistant,
// creating the row on first use.
func (s *Store) Increment(ctx context.Context, a assistant.Assistant, skill string) error {
	if s == nil || s.db == nil {
		return errors.New("usage store not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return errors.New("missing skill name")
	}

	now := time.Now().UnixMilli()
	_, err := s.db.ExecContext(ctx, `
INSERT INTO skill_usage (assistant, skill, count, last_used_at_unix_ms)
VALUES (?, ?, 1, ?)
ON CONFLICT(assistant, skill)
DO UPDATE SET count = count + 1, last_used_at_unix_ms = excluded.last_used_at_unix_ms
`, string(a), skill, now)
	return err
}

// CountFor returns the usage count for one skill under one assistant.
// Skills never marked used report zero.
func (s *Store) CountFor(ctx context.Context, a assistant.Assistant, skill string) (int64, error) {
	if s == nil || s.db == nil {
		return 0, errors.New("usage store not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var count int64
	err := s.db.QueryRowContext(ctx, `
SELECT count FROM skill_usage WHERE assistant = ? AND skill = ?
`, string(a), skill).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListFor returns all usage records for one assistant, most used first.
func (s *Store) ListFor(ctx context.Context, a assistant.Assistant) ([]Record, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("usage store not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT assistant, skill, count, last_used_at_unix_ms
FROM skill_usage
WHERE assistant = ?
ORDER BY count DESC, skill ASC
`, string(a))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var name string
		if err := rows.Scan(&name, &r.Skill, &r.Count, &r.LastUsedAtUnixMs); err != nil {
			return nil, err
		}
		r.Assistant = assistant.Assistant(name)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Forget drops the usage rows for a skill across all assistants, used
// when the skill is uninstalled.
func (s *Store) Forget(ctx context.Context, skill string) error {
	if s == nil || s.db == nil {
		return errors.New("usage store not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM skill_usage WHERE skill = ?`, skill)
	return err
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS skill_usage (
	assistant            TEXT NOT NULL,
	skill                TEXT NOT NULL,
	count                INTEGER NOT NULL DEFAULT 0,
	last_used_at_unix_ms INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (assistant, skill)
);
`)
	return err
}
