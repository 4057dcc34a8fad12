package di

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"kanban/internal/application/state"
	"kanban/internal/application/usecase/board"
	"kanban/internal/application/usecase/list"
	"kanban/internal/application/usecase/task"
	"kanban/internal/domain/repository"
	"kanban/internal/domain/service"
	"kanban/internal/domain/valueobject"
	"kanban/internal/infrastructure/config"
	"kanban/internal/infrastructure/logging"
	"kanban/internal/infrastructure/persistence"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config *config.Config
	Logger *log.Logger

	// State
	Store *state.Store

	// Use Cases - Board
	GetBoardUseCase   *board.GetBoardUseCase
	ResetBoardUseCase *board.ResetBoardUseCase

	// Use Cases - List
	AddListUseCase    *list.AddListUseCase
	RenameListUseCase *list.RenameListUseCase
	DeleteListUseCase *list.DeleteListUseCase
	SortListUseCase   *list.SortListUseCase
	GetListUseCase    *list.GetListUseCase

	// Use Cases - Task
	AddTaskUseCase    *task.AddTaskUseCase
	UpdateTaskUseCase *task.UpdateTaskUseCase
	DeleteTaskUseCase *task.DeleteTaskUseCase
	MoveTaskUseCase   *task.MoveTaskUseCase
	ListTasksUseCase  *task.ListTasksUseCase
}

// Provider functions

func ProvideLogger(cfg *config.Config) (*log.Logger, func(), error) {
	logger, closer, err := logging.New(cfg.Log.Level, cfg.LogPath())
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { closer.Close() }, nil
}

func ProvideBoardStore(cfg *config.Config) (repository.BoardStore, error) {
	store, err := persistence.OpenStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}
	return store, nil
}

func ProvidePersistenceAdapter(store repository.BoardStore, logger *log.Logger) (*persistence.Adapter, func()) {
	adapter := persistence.NewAdapter(store, logger)
	return adapter, func() {
		if err := adapter.Close(); err != nil {
			logger.WithError(err).Warn("failed to close board store")
		}
	}
}

func ProvideIDGenerator() valueobject.IDGenerator {
	return valueobject.NewUUIDGenerator()
}

func ProvideSorter(cfg *config.Config) (*service.Sorter, error) {
	return service.NewSorter(cfg.Board.Locale)
}

func ProvideStore(reducer *service.Reducer, storage state.Persistence, logger *log.Logger) (*state.Store, func()) {
	store := state.NewStore(reducer, storage, logger)
	return store, store.Close
}
