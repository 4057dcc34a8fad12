package dragdrop

import (
	"math"

	"kanban/internal/domain/action"
	"kanban/internal/domain/entity"
)

// DefaultThreshold is the pointer travel needed before a press becomes a drag
const DefaultThreshold = 8

// Point is a pointer position
type Point struct {
	X, Y int
}

// TargetKind classifies what the pointer is over when released
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetList
	TargetTask
)

// DropTarget describes what lies under the pointer on release
type DropTarget struct {
	Kind TargetKind
	ID   string
}

// ListTarget is a drop target for the list with the given ID
func ListTarget(listID string) DropTarget {
	return DropTarget{Kind: TargetList, ID: listID}
}

// Tracker turns a press/move/release gesture into at most one MoveTask.
//
// The active task is presentation state only; it is never part of the board
// and is cleared on every release or cancel.
type Tracker struct {
	threshold float64

	pressed bool
	active  bool
	origin  Point
	current Point
	task    entity.Task
	listID  string
}

// NewTracker creates a tracker. Thresholds below one fall back to DefaultThreshold.
func NewTracker(threshold int) *Tracker {
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	return &Tracker{threshold: float64(threshold)}
}

// SetThreshold changes the activation distance. A gesture in progress is kept.
func (t *Tracker) SetThreshold(threshold int) {
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	t.threshold = float64(threshold)
}

// Press records a press on task, owned by listID, at p
func (t *Tracker) Press(task entity.Task, listID string, p Point) {
	t.pressed = true
	t.active = false
	t.origin = p
	t.current = p
	t.task = task
	t.listID = listID
}

// Move updates the pointer position and reports whether a drag is in progress
func (t *Tracker) Move(p Point) bool {
	if !t.pressed {
		return false
	}
	t.current = p

	if !t.active {
		dx := float64(p.X - t.origin.X)
		dy := float64(p.Y - t.origin.Y)
		if math.Hypot(dx, dy) > t.threshold {
			t.active = true
		}
	}
	return t.active
}

// Release ends the gesture. A MoveTask is returned only when a drag was active
// and the pointer is over a list other than the task's own.
func (t *Tracker) Release(target DropTarget) (action.MoveTask, bool) {
	wasActive := t.active
	task, source := t.task, t.listID
	t.Cancel()

	if !wasActive {
		return action.MoveTask{}, false
	}
	if target.Kind != TargetList || target.ID == "" || target.ID == source {
		return action.MoveTask{}, false
	}

	return action.MoveTask{
		TaskID:       task.ID,
		SourceListID: source,
		TargetListID: target.ID,
	}, true
}

// Cancel abandons the gesture without emitting anything
func (t *Tracker) Cancel() {
	t.pressed = false
	t.active = false
	t.task = entity.Task{}
	t.listID = ""
	t.origin = Point{}
	t.current = Point{}
}

// Pressed reports whether a press is being tracked
func (t *Tracker) Pressed() bool {
	return t.pressed
}

// Active reports whether the press has turned into a drag
func (t *Tracker) Active() bool {
	return t.active
}

// ActiveTask returns the task being dragged, for rendering a floating preview
func (t *Tracker) ActiveTask() (entity.Task, bool) {
	if !t.active {
		return entity.Task{}, false
	}
	return t.task, true
}

// SourceList returns the ID of the list the pressed task belongs to
func (t *Tracker) SourceList() string {
	return t.listID
}

// Position returns the last known pointer position
func (t *Tracker) Position() Point {
	return t.current
}
