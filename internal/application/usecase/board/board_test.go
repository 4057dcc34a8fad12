package board

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban/internal/application/state"
	"kanban/internal/domain/action"
	"kanban/internal/domain/entity"
	"kanban/internal/domain/service"
	"kanban/internal/domain/valueobject"
)

type stubStorage struct {
	clearOK bool
	cleared int
}

func (s *stubStorage) Load(ctx context.Context) *entity.Board            { return nil }
func (s *stubStorage) Save(ctx context.Context, board entity.Board) bool { return true }
func (s *stubStorage) Clear(ctx context.Context) bool {
	s.cleared++
	return s.clearOK
}

func newTestStore(t *testing.T, storage state.Persistence) *state.Store {
	t.Helper()
	sorter, err := service.NewSorter("en")
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()
	s := state.NewStore(service.NewReducer(valueobject.NewSequenceGenerator("id"), sorter), storage, logger)
	s.Restore(context.Background())
	t.Cleanup(s.Close)
	return s
}

func TestGetBoard_WithQuery(t *testing.T) {
	store := newTestStore(t, &stubStorage{clearOK: true})
	board := store.Dispatch(action.AddList{Name: "To Do"})
	store.Dispatch(action.AddList{Name: "Empty"})
	listID := board.Lists[0].ID
	store.Dispatch(action.AddTask{ListID: listID, Name: "Buy groceries"})
	store.Dispatch(action.AddTask{ListID: listID, Name: "Write report"})

	got, err := NewGetBoardUseCase(store).Execute(context.Background(), "buy")

	require.NoError(t, err)
	require.Len(t, got.Lists, 2, "lists without matches are kept")
	assert.Equal(t, 1, got.TaskCount)
	assert.Equal(t, 2, got.TotalTasks)
	assert.Equal(t, "buy", got.Query)
	assert.Empty(t, got.Lists[1].Tasks)
}

func TestResetBoard(t *testing.T) {
	storage := &stubStorage{clearOK: true}
	store := newTestStore(t, storage)
	store.Dispatch(action.AddList{Name: "To Do"})

	require.NoError(t, NewResetBoardUseCase(store).Execute(context.Background()))

	assert.Empty(t, store.Board().Lists)
	assert.Equal(t, 1, storage.cleared)
}

func TestResetBoard_StorageFailure(t *testing.T) {
	store := newTestStore(t, &stubStorage{})
	store.Dispatch(action.AddList{Name: "To Do"})

	err := NewResetBoardUseCase(store).Execute(context.Background())

	assert.ErrorIs(t, err, entity.ErrClearFailed)
	assert.Empty(t, store.Board().Lists)
}
