package kanban

import (
	"slices"

	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// state is everything that changes together during one drag event
type state struct {
	items    models.Board
	columns  []types.ColumnID
	activeID types.ID
	overID   types.ID
	phase    Phase
	initial  *models.Position
	snapshot *models.Board
}

// update is a draft of the next state built by a mutation
type update struct {
	state
	itemsSet bool
}

// setItems replaces the board in the draft and marks it for notification
func (u *update) setItems(b models.Board) {
	u.items = b
	u.itemsSet = true
}

// endGesture clears the per-gesture fields
func (u *update) endGesture() {
	u.activeID = types.None
	u.overID = types.None
	u.phase = PhaseIdle
	u.initial = nil
	u.snapshot = nil
}

// commit applies mutate to a draft of the current state and installs the
// result in one step, then notifies observers. In controlled mode the new
// board is only handed to the change callback; the stored board changes when
// the caller pushes it back with SetItems.
func (c *Container) commit(reason string, mutate func(u *update)) {
	u := update{state: c.state}
	u.columns = slices.Clone(c.state.columns)
	mutate(&u)

	next := u.state
	if u.itemsSet {
		if c.controlled {
			next.items = c.state.items
		} else {
			next.columns = syncColumns(next.columns, next.items)
		}
	}
	c.state = next

	if !u.itemsSet {
		return
	}

	c.logger.Debug("board changed",
		"reason", reason,
		"board", u.items.String(),
		"controlled", c.controlled)

	c.scheduleFrame()
	c.notifyItemsChange(u.items)
}

// notifyItemsChange delivers exactly one items-changed notification
func (c *Container) notifyItemsChange(b models.Board) {
	if c.onItemsChange != nil {
		c.onItemsChange(b.Clone())
	}
	events.Send(c.publisher, events.Event{
		Type:    events.EventItemsChanged,
		Board:   b.Clone(),
		Columns: c.Columns(),
	})
}

// scheduleFrame clears the cross-column flag on the next frame
func (c *Container) scheduleFrame() {
	c.scheduler.Schedule(func() {
		c.recentlyMoved = false
	})
}

// nextFrame runs the deferred work of the previous lifecycle call when the
// container schedules its own frames. A host scheduler flushes on its own.
func (c *Container) nextFrame() {
	if c.ownFrames != nil {
		c.ownFrames.Flush()
	}
}

// syncColumns keeps the column order in step with the board keys: columns
// no longer on the board are dropped and new keys are appended in board
// order. Columns still present keep their reordered positions.
func syncColumns(order []types.ColumnID, items models.Board) []types.ColumnID {
	synced := make([]types.ColumnID, 0, items.Len())
	seen := make(map[types.ColumnID]bool, items.Len())
	for _, id := range order {
		if items.Has(id) && !seen[id] {
			synced = append(synced, id)
			seen[id] = true
		}
	}
	for _, id := range items.Keys() {
		if !seen[id] {
			synced = append(synced, id)
			seen[id] = true
		}
	}
	return synced
}
