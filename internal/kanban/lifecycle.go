package kanban

import (
	"slices"

	"github.com/thenoetrevino/swimlane/internal/events"
	"github.com/thenoetrevino/swimlane/internal/models"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// DragStart begins a gesture: it records where the active id started and
// snapshots the board for rollback.
func (c *Container) DragStart(activeID types.ID) {
	c.nextFrame()
	if c.phase != PhaseIdle {
		c.logger.Warn("drag start while a drag is active, replacing it",
			"active", c.activeID,
			"new_active", activeID)
	}

	initial := c.Position(activeID)
	snapshot := c.items.Clone()
	phase := PhaseDraggingCard
	if c.items.Has(activeID) {
		phase = PhaseDraggingColumn
	}

	c.lastOver = types.None
	c.recentlyMoved = false
	c.commit("drag_start", func(u *update) {
		u.activeID = activeID
		u.overID = types.None
		u.phase = phase
		u.initial = &initial
		u.snapshot = &snapshot
	})

	c.logger.Debug("drag start",
		"active", activeID,
		"phase", phase,
		"column", initial.ColumnID,
		"index", initial.Index)
}

// DragOver previews a cross-column move of the active card. Moves within a
// column are left to DragEnd. It reports whether the board changed.
func (c *Container) DragOver(ev DragOverEvent) bool {
	c.nextFrame()
	c.commit("drag_over_target", func(u *update) {
		u.overID = ev.OverID
	})

	if ev.OverID.IsZero() || ev.OverID == types.TrashID || c.items.Has(ev.ActiveID) {
		return false
	}

	overColumn, okOver := c.FindColumn(ev.OverID)
	activeColumn, okActive := c.FindColumn(ev.ActiveID)
	if !okOver || !okActive || overColumn == activeColumn {
		return false
	}

	from := c.Position(ev.ActiveID)
	if c.initial != nil {
		from = *c.initial
	}
	if c.isMoveAllowed != nil && !c.isMoveAllowed(MoveRequest{
		Items: c.items.Clone(),
		From:  from,
		To:    models.Target{ColumnID: overColumn},
	}) {
		c.logger.Debug("move vetoed", "active", ev.ActiveID, "to", overColumn)
		return false
	}

	overItems := c.items.Cards(overColumn)
	newIndex := len(overItems) + 1
	if !c.items.Has(ev.OverID) {
		if overIndex := slices.Index(overItems, ev.OverID); overIndex >= 0 {
			newIndex = overIndex
			if ev.belowOverItem() {
				newIndex++
			}
		}
	}
	newIndex = min(newIndex, len(overItems))

	activeItems := slices.DeleteFunc(c.items.Cards(activeColumn), func(id types.CardID) bool {
		return id == ev.ActiveID
	})
	overItems = slices.Insert(overItems, newIndex, ev.ActiveID)
	next := c.items.With(activeColumn, activeItems...).With(overColumn, overItems...)

	c.recentlyMoved = true
	c.commit("drag_over", func(u *update) {
		u.setItems(next)
	})

	c.logger.Debug("drag over moved card",
		"active", ev.ActiveID,
		"from", activeColumn,
		"to", overColumn,
		"index", newIndex)
	return true
}

// DragEnd resolves the drop of activeID on overID and ends the gesture
func (c *Container) DragEnd(activeID, overID types.ID) Outcome {
	c.nextFrame()
	if c.cancelDrop != nil && c.cancelDrop(DropEvent{ActiveID: activeID, OverID: overID}) {
		c.logger.Debug("drop cancelled by predicate", "active", activeID, "over", overID)
		c.DragCancel()
		return OutcomeCancelled
	}

	if c.items.Has(activeID) {
		return c.endColumnDrag(activeID, overID)
	}

	activeColumn, ok := c.FindColumn(activeID)
	if !ok || overID.IsZero() {
		return c.abort(activeID, overID)
	}

	switch overID {
	case types.TrashID:
		return c.dropOnTrash(activeID, activeColumn)
	case types.PlaceholderID:
		return c.dropOnPlaceholder(activeID, activeColumn)
	}

	overColumn, ok := c.FindColumn(overID)
	if !ok || overColumn != activeColumn {
		// The card never reached overColumn, e.g. the move was vetoed
		return c.settle(activeID, activeColumn, overID)
	}

	cards := c.items.Cards(overColumn)
	activeIndex := slices.Index(cards, activeID)
	overIndex := slices.Index(cards, overID)
	if overID == overColumn {
		overIndex = len(cards) - 1
	}

	to := models.Position{ColumnID: overColumn, Index: overIndex}
	from := models.Position{ColumnID: activeColumn, Index: activeIndex}
	if c.initial != nil {
		from = *c.initial
	}

	if activeIndex != overIndex {
		next := c.items.With(overColumn, arrayMove(cards, activeIndex, overIndex)...)
		c.commit("drag_end", func(u *update) {
			u.setItems(next)
			u.endGesture()
		})
		c.fireCardDragEnd(CardDragEnd{Items: next, From: from, To: to})
		return OutcomeMoved
	}

	// Drag over already placed the card; report the move if there was one
	items := c.items.Clone()
	moved := c.initial != nil && *c.initial != to
	c.commit("drag_end", func(u *update) {
		u.endGesture()
	})
	if !moved {
		c.logger.Debug("drag end without change", "active", activeID)
		return OutcomeUnchanged
	}
	c.fireCardDragEnd(CardDragEnd{Items: items, From: from, To: to})
	return OutcomeMoved
}

// DragCancel restores the board from the rollback snapshot and ends the
// gesture. It is safe to call at any time.
func (c *Container) DragCancel() {
	c.nextFrame()
	snapshot := c.snapshot
	active := c.activeID

	c.commit("drag_cancel", func(u *update) {
		if snapshot != nil && !snapshot.Equal(u.items) {
			u.setItems(*snapshot)
		}
		u.endGesture()
	})

	if active.IsZero() && snapshot == nil {
		return
	}
	c.logger.Debug("drag cancelled", "active", active, "restored", snapshot != nil)
	events.Send(c.publisher, events.Event{
		Type:    events.EventDragCancelled,
		Board:   c.Items(),
		Columns: c.Columns(),
	})
}

func (c *Container) endColumnDrag(activeID, overID types.ID) Outcome {
	if overID.IsZero() {
		return c.abort(activeID, overID)
	}

	overColumn, ok := c.FindColumn(overID)
	oldIndex := slices.Index(c.columns, activeID)
	newIndex := slices.Index(c.columns, overColumn)
	if !ok || oldIndex < 0 || newIndex < 0 {
		return c.abort(activeID, overID)
	}

	items := c.items.Clone()
	c.commit("column_drag_end", func(u *update) {
		u.columns = arrayMove(u.columns, oldIndex, newIndex)
		u.endGesture()
	})

	result := ColumnDragEnd{
		Items: items,
		From:  models.ColumnPosition{Index: oldIndex},
		To:    models.ColumnPosition{Index: newIndex},
	}
	if c.onColumnDragEnd != nil {
		c.onColumnDragEnd(result)
	}
	events.Send(c.publisher, events.Event{
		Type:    events.EventColumnDragEnd,
		Board:   items,
		Columns: c.Columns(),
		From:    models.Position{Index: oldIndex},
		To:      models.Position{Index: newIndex},
	})

	c.logger.Debug("column moved", "column", activeID, "from", oldIndex, "to", newIndex)
	return OutcomeColumnMoved
}

func (c *Container) dropOnTrash(activeID types.ID, activeColumn types.ColumnID) Outcome {
	cards := slices.DeleteFunc(c.items.Cards(activeColumn), func(id types.CardID) bool {
		return id == activeID
	})
	next := c.items.With(activeColumn, cards...)

	c.commit("trash", func(u *update) {
		u.setItems(next)
		u.endGesture()
	})

	c.logger.Debug("card deleted", "card", activeID, "column", activeColumn)
	return OutcomeDeleted
}

func (c *Container) dropOnPlaceholder(activeID types.ID, activeColumn types.ColumnID) Outcome {
	newColumn := c.NextColumnID()
	if err := c.checkNewColumn(newColumn); err != nil {
		c.logger.Warn("cannot create column from placeholder drop",
			"card", activeID,
			"column", newColumn,
			"error", err)
		return c.abort(activeID, types.PlaceholderID)
	}

	cards := slices.DeleteFunc(c.items.Cards(activeColumn), func(id types.CardID) bool {
		return id == activeID
	})
	next := c.items.With(activeColumn, cards...).With(newColumn, activeID)

	c.commit("placeholder", func(u *update) {
		u.columns = append(u.columns, newColumn)
		u.setItems(next)
		u.endGesture()
	})

	c.logger.Debug("column created from drop", "card", activeID, "column", newColumn)
	return OutcomeColumnCreated
}

// settle commits the card where drag over last placed it. A card still at
// its initial position aborts instead.
func (c *Container) settle(activeID types.ID, activeColumn types.ColumnID, overID types.ID) Outcome {
	to := models.Position{ColumnID: activeColumn, Index: c.GetIndex(activeID)}
	if c.initial == nil || *c.initial == to {
		return c.abort(activeID, overID)
	}

	from := *c.initial
	items := c.items.Clone()
	c.commit("drag_end", func(u *update) {
		u.endGesture()
	})
	c.logger.Debug("drag end kept previewed move",
		"active", activeID,
		"over", overID,
		"column", to.ColumnID,
		"index", to.Index)
	c.fireCardDragEnd(CardDragEnd{Items: items, From: from, To: to})
	return OutcomeMoved
}

// abort ends the gesture and restores the board from the rollback snapshot
func (c *Container) abort(activeID, overID types.ID) Outcome {
	snapshot := c.snapshot
	c.commit("drag_abort", func(u *update) {
		if snapshot != nil && !snapshot.Equal(u.items) {
			u.setItems(*snapshot)
		}
		u.endGesture()
	})
	c.logger.Debug("drag end aborted", "active", activeID, "over", overID)
	return OutcomeAborted
}

func (c *Container) fireCardDragEnd(result CardDragEnd) {
	if c.onCardDragEnd != nil {
		c.onCardDragEnd(result)
	}
	events.Send(c.publisher, events.Event{
		Type:    events.EventCardDragEnd,
		Board:   result.Items,
		Columns: c.Columns(),
		From:    result.From,
		To:      result.To,
	})
	c.logger.Debug("card moved",
		"from_column", result.From.ColumnID,
		"from_index", result.From.Index,
		"to_column", result.To.ColumnID,
		"to_index", result.To.Index)
}

// arrayMove returns a copy of s with the element at from moved to to
func arrayMove[T any](s []T, from, to int) []T {
	moved := slices.Clone(s)
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || from == to {
		return moved
	}
	item := moved[from]
	moved = slices.Delete(moved, from, from+1)
	return slices.Insert(moved, to, item)
}
