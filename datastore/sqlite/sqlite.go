/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package sqlite keeps the document as one row of a SQLite table,
// using the pure-Go driver modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/suparena/filestore/errors"

	_ "modernc.org/sqlite"
)

// DefaultDocumentName is the row key used when none is configured.
const DefaultDocumentName = "file.json"

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	name       TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLiteStore implements datastore.DocumentStore on a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	name string
}

// NewSQLiteStore opens (or creates) the database at path and prepares the schema.
func NewSQLiteStore(path, name string) (*SQLiteStore, error) {
	if name == "" {
		name = DefaultDocumentName
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewIOError("open", path, err)
	}
	// One connection keeps ":memory:" databases coherent and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.NewIOError("open", path, fmt.Errorf("create schema: %w", err))
	}

	return &SQLiteStore{db: db, path: path, name: name}, nil
}

// Location returns "<path>#<document name>".
func (s *SQLiteStore) Location() string {
	return s.path + "#" + s.name
}

// Load reads the document row.
func (s *SQLiteStore) Load(ctx context.Context) ([]byte, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx, "SELECT body FROM documents WHERE name = ?", s.name).Scan(&body)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NewNotFoundError("document", s.Location())
	}
	if err != nil {
		return nil, errors.NewIOError("read", s.Location(), err)
	}
	return body, nil
}

// Store upserts the document row inside a transaction.
func (s *SQLiteStore) Store(ctx context.Context, data []byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewIOError("write", s.Location(), err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (name, body, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			body = excluded.body,
			updated_at = excluded.updated_at`,
		s.name, data, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return errors.NewIOError("write", s.Location(), err)
	}
	if err := tx.Commit(); err != nil {
		return errors.NewIOError("write", s.Location(), fmt.Errorf("commit: %w", err))
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
