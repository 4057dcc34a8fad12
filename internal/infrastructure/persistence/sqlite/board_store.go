package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"kanban/internal/domain/entity"
	"kanban/internal/domain/repository"
	"kanban/internal/infrastructure/serialization"
)

//go:embed schema.sql
var schemaSQL string

// BoardStore keeps the board document as one row of an embedded SQLite database.
// The row is keyed by (collection, name); the body is the encoded board.
type BoardStore struct {
	db         *sql.DB
	collection string
	document   string
	codec      serialization.Codec
}

// Open creates or opens the database at path and prepares the documents table.
// Safe to call repeatedly on the same file.
func Open(path, collection, document string, codec serialization.Codec) (*BoardStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &BoardStore{
		db:         db,
		collection: collection,
		document:   document,
		codec:      codec,
	}, nil
}

// NewBoardStore opens a SQLite-backed board store
func NewBoardStore(path, collection, document string, codec serialization.Codec) (repository.BoardStore, error) {
	return Open(path, collection, document, codec)
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// Load reads the document row, returning nil when no row exists
func (s *BoardStore) Load(ctx context.Context) (*entity.Board, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT body FROM documents WHERE collection = ? AND name = ?",
		s.collection, s.document,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read board document: %w", err)
	}

	board, err := s.codec.Unmarshal(body)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// Save upserts the document row
func (s *BoardStore) Save(ctx context.Context, board entity.Board) error {
	body, err := s.codec.Marshal(board)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, name, body, updated_at)
		VALUES (?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (collection, name) DO UPDATE SET
			body = excluded.body,
			updated_at = excluded.updated_at`,
		s.collection, s.document, body,
	)
	if err != nil {
		return fmt.Errorf("failed to write board document: %w", err)
	}
	return nil
}

// Clear removes every document in the collection
func (s *BoardStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE collection = ?", s.collection); err != nil {
		return fmt.Errorf("failed to clear board documents: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *BoardStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
