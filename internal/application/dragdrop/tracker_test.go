package dragdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban/internal/domain/action"
	"kanban/internal/domain/entity"
)

var task = entity.Task{ID: "t1", Name: "Ship release"}

func startDrag(t *testing.T, tr *Tracker) {
	t.Helper()
	tr.Press(task, "todo", Point{X: 10, Y: 10})
	require.True(t, tr.Move(Point{X: 30, Y: 10}))
}

func TestTracker_SmallMovementDoesNotStartDrag(t *testing.T) {
	tr := NewTracker(DefaultThreshold)
	tr.Press(task, "todo", Point{X: 10, Y: 10})

	assert.False(t, tr.Move(Point{X: 15, Y: 15}))
	assert.False(t, tr.Move(Point{X: 18, Y: 10}), "exactly the threshold is not past it")
	assert.False(t, tr.Active())

	_, ok := tr.Release(ListTarget("done"))
	assert.False(t, ok, "a click never moves a task")
}

func TestTracker_DragPastThresholdActivates(t *testing.T) {
	tr := NewTracker(DefaultThreshold)
	tr.Press(task, "todo", Point{X: 10, Y: 10})

	assert.True(t, tr.Move(Point{X: 16, Y: 16}))

	active, ok := tr.ActiveTask()
	require.True(t, ok)
	assert.Equal(t, task, active)
	assert.Equal(t, Point{X: 16, Y: 16}, tr.Position())
}

func TestTracker_DropOnOtherListEmitsMove(t *testing.T) {
	tr := NewTracker(DefaultThreshold)
	startDrag(t, tr)

	move, ok := tr.Release(ListTarget("done"))

	require.True(t, ok)
	assert.Equal(t, action.MoveTask{TaskID: "t1", SourceListID: "todo", TargetListID: "done"}, move)
	assert.False(t, tr.Active())
}

func TestTracker_NoOpDrops(t *testing.T) {
	targets := map[string]DropTarget{
		"same list": ListTarget("todo"),
		"nothing":   {Kind: TargetNone},
		"task":      {Kind: TargetTask, ID: "t2"},
		"empty id":  {Kind: TargetList},
	}

	for name, target := range targets {
		t.Run(name, func(t *testing.T) {
			tr := NewTracker(DefaultThreshold)
			startDrag(t, tr)

			_, ok := tr.Release(target)

			assert.False(t, ok)
			assert.False(t, tr.Active(), "active task resets regardless of outcome")
			_, hasActive := tr.ActiveTask()
			assert.False(t, hasActive)
		})
	}
}

func TestTracker_MoveWithoutPress(t *testing.T) {
	tr := NewTracker(DefaultThreshold)

	assert.False(t, tr.Move(Point{X: 100, Y: 100}))
	_, ok := tr.Release(ListTarget("done"))
	assert.False(t, ok)
}

func TestTracker_CancelClearsGesture(t *testing.T) {
	tr := NewTracker(DefaultThreshold)
	startDrag(t, tr)

	tr.Cancel()

	assert.False(t, tr.Pressed())
	assert.False(t, tr.Active())
	assert.Empty(t, tr.SourceList())
}

func TestNewTracker_InvalidThresholdFallsBack(t *testing.T) {
	tr := NewTracker(0)
	tr.Press(task, "todo", Point{})

	assert.False(t, tr.Move(Point{X: 8}))
	assert.True(t, tr.Move(Point{X: 9}))
}

func TestTracker_SetThresholdKeepsGesture(t *testing.T) {
	tr := NewTracker(DefaultThreshold)
	startDrag(t, tr)

	tr.SetThreshold(50)
	assert.True(t, tr.Active())
	_, ok := tr.Release(ListTarget("done"))
	assert.True(t, ok)

	tr.Press(task, "todo", Point{X: 0, Y: 0})
	assert.False(t, tr.Move(Point{X: 30, Y: 0}), "new threshold applies to the next gesture")

	tr.SetThreshold(0)
	assert.True(t, tr.Move(Point{X: 9, Y: 0}), "zero falls back to the default")
}
