//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"kanban/internal/application/state"
	"kanban/internal/application/usecase/board"
	"kanban/internal/application/usecase/list"
	"kanban/internal/application/usecase/task"
	"kanban/internal/domain/service"
	"kanban/internal/infrastructure/config"
	"kanban/internal/infrastructure/persistence"
)

// InitializeContainer sets up all dependencies. The cleanup func writes any
// pending board snapshot before closing storage.
func InitializeContainer(cfg *config.Config) (*Container, func(), error) {
	wire.Build(
		// Infrastructure
		ProvideLogger,
		ProvideBoardStore,
		ProvidePersistenceAdapter,
		wire.Bind(new(state.Persistence), new(*persistence.Adapter)),

		// Domain Services
		ProvideIDGenerator,
		ProvideSorter,
		service.NewReducer,

		// State
		ProvideStore,
		wire.Bind(new(state.Dispatcher), new(*state.Store)),
		wire.Bind(new(board.Clearer), new(*state.Store)),

		// Use Cases - Board
		board.NewGetBoardUseCase,
		board.NewResetBoardUseCase,

		// Use Cases - List
		list.NewAddListUseCase,
		list.NewRenameListUseCase,
		list.NewDeleteListUseCase,
		list.NewSortListUseCase,
		list.NewGetListUseCase,

		// Use Cases - Task
		task.NewAddTaskUseCase,
		task.NewUpdateTaskUseCase,
		task.NewDeleteTaskUseCase,
		task.NewMoveTaskUseCase,
		task.NewListTasksUseCase,

		// Wire the container
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}
