package dnd

import (
	"sort"

	"github.com/thenoetrevino/swimlane/internal/types"
)

// Collision is one candidate drop target and the score that ranked it
type Collision struct {
	ID    types.ID
	Value float64
}

// CollisionArgs is everything a collision detector sees for one drag frame
type CollisionArgs struct {
	// Active is the id being dragged
	Active types.ID

	// ActiveRect is the active element's rectangle, already translated by the drag
	ActiveRect Rect

	// Droppables are the measured drop targets for this frame
	Droppables []Droppable

	// Pointer is the pointer position, nil for keyboard drags
	Pointer *Point
}

// CollisionDetector ranks droppables for a drag frame, best match first
type CollisionDetector func(args CollisionArgs) []Collision

// Filter returns a copy of args keeping only the droppables keep accepts
func (a CollisionArgs) Filter(keep func(Droppable) bool) CollisionArgs {
	filtered := make([]Droppable, 0, len(a.Droppables))
	for _, d := range a.Droppables {
		if keep(d) {
			filtered = append(filtered, d)
		}
	}
	a.Droppables = filtered
	return a
}

// ClosestCenter ranks droppables by the distance between their center and
// the active rectangle's center, nearest first.
func ClosestCenter(args CollisionArgs) []Collision {
	center := args.ActiveRect.Center()
	collisions := make([]Collision, 0, len(args.Droppables))

	for _, d := range args.Droppables {
		if d.Disabled {
			continue
		}
		collisions = append(collisions, Collision{
			ID:    d.ID,
			Value: center.Distance(d.Rect.Center()),
		})
	}

	sortAscending(collisions)
	return collisions
}

// PointerWithin returns the droppables containing the pointer, ranked by the
// average distance from the pointer to their corners. Without a pointer
// (keyboard drags) nothing matches.
func PointerWithin(args CollisionArgs) []Collision {
	if args.Pointer == nil {
		return nil
	}
	p := *args.Pointer

	var collisions []Collision
	for _, d := range args.Droppables {
		if d.Disabled || !d.Rect.Contains(p) {
			continue
		}
		var total float64
		for _, corner := range d.Rect.Corners() {
			total += p.Distance(corner)
		}
		collisions = append(collisions, Collision{ID: d.ID, Value: total / 4})
	}

	sortAscending(collisions)
	return collisions
}

// RectIntersection returns the droppables overlapping the active rectangle,
// ranked by intersection ratio, largest first. The ratio is the overlap area
// over the union area of both rectangles.
func RectIntersection(args CollisionArgs) []Collision {
	active := args.ActiveRect

	var collisions []Collision
	for _, d := range args.Droppables {
		if d.Disabled {
			continue
		}
		overlap := active.Intersection(d.Rect)
		if overlap <= 0 {
			continue
		}
		union := d.Rect.Area() + active.Area() - overlap
		collisions = append(collisions, Collision{ID: d.ID, Value: overlap / union})
	}

	sort.SliceStable(collisions, func(i, j int) bool {
		return collisions[i].Value > collisions[j].Value
	})
	return collisions
}

// FirstCollision returns the id of the best ranked collision
func FirstCollision(collisions []Collision) (types.ID, bool) {
	if len(collisions) == 0 {
		return types.None, false
	}
	return collisions[0].ID, true
}

func sortAscending(collisions []Collision) {
	sort.SliceStable(collisions, func(i, j int) bool {
		return collisions[i].Value < collisions[j].Value
	})
}
