package filesystem

import (
	"context"
	"fmt"
	"path/filepath"

	"kanban/internal/domain/entity"
	"kanban/internal/domain/repository"
	"kanban/internal/infrastructure/serialization"
	"kanban/pkg/filesystem"
)

// BoardStore keeps the board document in a single file under the data directory:
// {dataPath}/{collection}/{document}.{format}
type BoardStore struct {
	path  string
	codec serialization.Codec
}

// NewBoardStore creates a file-backed board store
func NewBoardStore(dataPath, collection, document string, codec serialization.Codec) repository.BoardStore {
	fileName := fmt.Sprintf("%s.%s", document, codec.Format())
	return &BoardStore{
		path:  filepath.Join(dataPath, collection, fileName),
		codec: codec,
	}
}

// Path returns the document file location
func (s *BoardStore) Path() string {
	return s.path
}

// Load reads the document, returning nil when the file does not exist yet
func (s *BoardStore) Load(ctx context.Context) (*entity.Board, error) {
	data, ok, err := filesystem.ReadIfExists(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board document: %w", err)
	}
	if !ok {
		return nil, nil
	}

	board, err := s.codec.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// Save atomically rewrites the document
func (s *BoardStore) Save(ctx context.Context, board entity.Board) error {
	data, err := s.codec.Marshal(board)
	if err != nil {
		return err
	}

	if err := filesystem.SafeWrite(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write board document: %w", err)
	}
	return nil
}

// Clear deletes the document file
func (s *BoardStore) Clear(ctx context.Context) error {
	return filesystem.RemoveIfExists(s.path)
}

// Close is a no-op for file storage
func (s *BoardStore) Close() error {
	return nil
}
