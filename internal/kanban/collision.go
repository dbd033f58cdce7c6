package kanban

import (
	"slices"

	"github.com/thenoetrevino/swimlane/internal/dnd"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// CollisionDetection is the board's collision strategy for multiple columns.
//
// Column drags only consider columns. Card drags prefer droppables under the
// pointer, then droppables intersecting the active rect; a hit on a non-empty
// column is refined to its nearest card. When nothing is hit the last
// resolved target is returned, locked onto the active card right after it
// moved to a new column.
func (c *Container) CollisionDetection(args dnd.CollisionArgs) []dnd.Collision {
	active := args.Active
	if active.IsZero() {
		active = c.activeID
	}

	if c.items.Has(active) {
		return dnd.ClosestCenter(args.Filter(func(d dnd.Droppable) bool {
			return c.items.Has(d.ID)
		}))
	}

	intersections := dnd.PointerWithin(args)
	if len(intersections) == 0 {
		intersections = dnd.RectIntersection(args)
	}

	if overID, ok := dnd.FirstCollision(intersections); ok {
		if overID == types.TrashID {
			return intersections
		}

		if cards := c.items.Cards(overID); len(cards) > 0 {
			column := overID
			refined := dnd.ClosestCenter(args.Filter(func(d dnd.Droppable) bool {
				return d.ID != column && slices.Contains(cards, d.ID)
			}))
			if id, ok := dnd.FirstCollision(refined); ok {
				overID = id
			}
		}

		c.lastOver = overID
		return []dnd.Collision{{ID: overID}}
	}

	if c.recentlyMoved {
		c.lastOver = active
	}

	if c.lastOver.IsZero() {
		return nil
	}
	return []dnd.Collision{{ID: c.lastOver}}
}

// ResolveTarget runs the collision strategy and returns the winning id
func (c *Container) ResolveTarget(args dnd.CollisionArgs) (types.ID, bool) {
	return dnd.FirstCollision(c.CollisionDetection(args))
}
