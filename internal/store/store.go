// Package store persists tag lists in a SQLite database, one ordered list per
// field name.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly

	"tagfield/internal/debug"
	apperrors "tagfield/internal/errors"
)

var log = debug.Scope("store")

const schema = `
	CREATE TABLE IF NOT EXISTS tags (
		field TEXT NOT NULL,
		position INTEGER NOT NULL,
		text TEXT NOT NULL,
		PRIMARY KEY (field, position)
	)
`

// Store is an open tag database.
type Store struct {
	path string
	db   *sql.DB
}

// Open opens or creates the database at path and makes sure the schema
// exists. The parent directory is created when missing.
func Open(ctx context.Context, path string) (*Store, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, apperrors.New(apperrors.CodeStoreOpen, "open tag store", fmt.Errorf("empty database path"))
	}
	//nolint:gosec // G301: database directory lives under the user's home
	if err := os.MkdirAll(filepath.Dir(trimmed), 0755); err != nil {
		return nil, apperrors.New(apperrors.CodeStoreOpen, "create database directory", err)
	}

	db, err := sql.Open("sqlite", buildDSN(trimmed))
	if err != nil {
		return nil, apperrors.New(apperrors.CodeStoreOpen, "open tag store", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, apperrors.New(apperrors.CodeStoreOpen, "ping tag store", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, apperrors.New(apperrors.CodeStoreOpen, "create schema", err)
	}
	log.Logf("opened %s", trimmed)
	return &Store{path: trimmed, db: db}, nil
}

// buildDSN creates a read-write WAL DSN for the given path.
func buildDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "rwc")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "busy_timeout(3000)")
	q.Set("_txlock", "immediate")
	u.RawQuery = q.Encode()
	return u.String()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the tags saved under field in order. An unknown field has no
// tags.
func (s *Store) Load(ctx context.Context, field string) ([]string, error) {
	if err := validField(field); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT text
		FROM tags
		WHERE field = ?
		ORDER BY position
	`, field)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeStoreQuery, "query tags", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tags []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, apperrors.New(apperrors.CodeStoreQuery, "scan tag", err)
		}
		tags = append(tags, text)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.New(apperrors.CodeStoreQuery, "read tags", err)
	}
	log.Logf("loaded %d tags for %q", len(tags), field)
	return tags, nil
}

// Save replaces the tags stored under field with tags, in one transaction.
func (s *Store) Save(ctx context.Context, field string, tags []string) (err error) {
	if err := validField(field); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.New(apperrors.CodeStoreWrite, "begin save", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM tags WHERE field = ?`, field); err != nil {
		return apperrors.New(apperrors.CodeStoreWrite, "clear tags", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tags (field, position, text) VALUES (?, ?, ?)`)
	if err != nil {
		return apperrors.New(apperrors.CodeStoreWrite, "prepare insert", err)
	}
	defer func() {
		_ = stmt.Close()
	}()
	for i, text := range tags {
		if _, err = stmt.ExecContext(ctx, field, i, text); err != nil {
			return apperrors.New(apperrors.CodeStoreWrite, fmt.Sprintf("insert tag %q", text), err)
		}
	}
	if err = tx.Commit(); err != nil {
		return apperrors.New(apperrors.CodeStoreWrite, "commit save", err)
	}
	log.Logf("saved %d tags for %q", len(tags), field)
	return nil
}

// Fields lists every field name with at least one saved tag.
func (s *Store) Fields(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT field FROM tags ORDER BY field`)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeStoreQuery, "query fields", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var fields []string
	for rows.Next() {
		var field string
		if err := rows.Scan(&field); err != nil {
			return nil, apperrors.New(apperrors.CodeStoreQuery, "scan field", err)
		}
		fields = append(fields, field)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.New(apperrors.CodeStoreQuery, "read fields", err)
	}
	return fields, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func validField(field string) error {
	if strings.TrimSpace(field) == "" {
		return apperrors.New(apperrors.CodeInvalidField, "field name is required", nil)
	}
	return nil
}
