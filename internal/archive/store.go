// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive persists fetched document content in a SQLite database so
// earlier retrievals survive report overwrites.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/wikifetch/pkg/types"
)

// Record is one archived document together with its retrieval timestamp.
type Record struct {
	types.Document `yaml:",inline"`

	// FetchedAt is when the content was last retrieved (UTC).
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}

// Store manages the content archive SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the archive database at the configured path,
// creating parent directories and the schema as needed.
func Open(cfg types.ArchiveConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	const stmt = `CREATE TABLE IF NOT EXISTS documents (
		document_token TEXT PRIMARY KEY,
		node_token TEXT,
		number INTEGER,
		title TEXT,
		level INTEGER,
		url TEXT,
		content TEXT,
		fetched_at TEXT
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Save upserts one fetched document, keyed by document token. The stored
// fetched-at timestamp is replaced on every save.
func (s *Store) Save(ctx context.Context, doc *types.Document) error {
	if !doc.HasContent() {
		return fmt.Errorf("document %s has no content to archive", doc.DocumentToken)
	}

	const stmt = `INSERT INTO documents
		(document_token, node_token, number, title, level, url, content, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(document_token) DO UPDATE SET
			node_token = excluded.node_token,
			number = excluded.number,
			title = excluded.title,
			level = excluded.level,
			url = excluded.url,
			content = excluded.content,
			fetched_at = excluded.fetched_at`

	fetchedAt := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, stmt,
		doc.DocumentToken, doc.NodeToken, doc.Number, doc.Title, doc.Level,
		doc.URL, *doc.Content, fetchedAt)
	if err != nil {
		return fmt.Errorf("archiving document %s: %w", doc.DocumentToken, err)
	}
	return nil
}

// List returns all archived documents ordered by enumeration number.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	const stmt = `SELECT document_token, node_token, number, title, level, url, content, fetched_at
		FROM documents ORDER BY number, document_token`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("querying archive: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating archive rows: %w", err)
	}
	return records, nil
}

// Get returns the archived document with the given document token.
func (s *Store) Get(ctx context.Context, documentToken string) (*Record, error) {
	const stmt = `SELECT document_token, node_token, number, title, level, url, content, fetched_at
		FROM documents WHERE document_token = ?`

	row := s.db.QueryRowContext(ctx, stmt, documentToken)
	r, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("document %s not found in archive", documentToken)
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var r Record
	var content, fetchedAt string
	err := row.Scan(&r.DocumentToken, &r.NodeToken, &r.Number, &r.Title,
		&r.Level, &r.URL, &content, &fetchedAt)
	if err == sql.ErrNoRows {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("scanning archive row: %w", err)
	}
	r.Content = &content
	if t, parseErr := time.Parse(time.RFC3339, fetchedAt); parseErr == nil {
		r.FetchedAt = t
	}
	return r, nil
}
