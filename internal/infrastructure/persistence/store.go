package persistence

import (
	"fmt"
	"path/filepath"

	"kanban/internal/domain/entity"
	"kanban/internal/domain/repository"
	"kanban/internal/infrastructure/config"
	"kanban/internal/infrastructure/persistence/filesystem"
	"kanban/internal/infrastructure/persistence/redisstore"
	"kanban/internal/infrastructure/persistence/sqlite"
	"kanban/internal/infrastructure/serialization"
)

const sqliteFileName = "kanban.db"

// OpenStore builds the board store selected by the storage config
func OpenStore(cfg *config.Config) (repository.BoardStore, error) {
	storage := cfg.Storage

	codec, err := serialization.NewCodec(storage.Format)
	if err != nil {
		return nil, err
	}

	switch storage.Backend {
	case config.BackendFile:
		return filesystem.NewBoardStore(storage.DataPath, storage.Collection, storage.Document, codec), nil

	case config.BackendSQLite:
		store, err := sqlite.NewBoardStore(filepath.Join(storage.DataPath, sqliteFileName), storage.Collection, storage.Document, codec)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return store, nil

	case config.BackendRedis:
		client, err := redisstore.NewClient(redisstore.Options{
			Addr:     storage.Redis.Addr,
			Password: storage.Redis.Password,
			DB:       storage.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		return redisstore.NewBoardStore(client, storage.Collection, storage.Document, codec), nil

	default:
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownBackend, storage.Backend)
	}
}

// Describe returns a short human-readable location for the configured store
func Describe(cfg *config.Config) string {
	storage := cfg.Storage
	switch storage.Backend {
	case config.BackendFile:
		return filepath.Join(storage.DataPath, storage.Collection, storage.Document+"."+storage.Format)
	case config.BackendSQLite:
		return fmt.Sprintf("%s (%s/%s)", filepath.Join(storage.DataPath, sqliteFileName), storage.Collection, storage.Document)
	case config.BackendRedis:
		return fmt.Sprintf("redis://%s/%d %s:%s", storage.Redis.Addr, storage.Redis.DB, storage.Collection, storage.Document)
	default:
		return storage.Backend
	}
}
