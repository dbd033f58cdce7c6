// Package dnd provides the drag-and-drop primitives the board engine plugs
// into: rectangles and droppable containers, collision detection algorithms,
// input sensors with their activation constraints, the keyboard activation
// filter and a frame scheduler for deferred work.
//
// Coordinates are abstract units. The terminal board measures in cells.
package dnd

import (
	"math"

	"github.com/thenoetrevino/swimlane/internal/types"
)

// Point is a position on screen
type Point struct {
	X float64
	Y float64
}

// Distance returns the euclidean distance between two points
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Rect is an axis-aligned rectangle
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// RectFromCells builds a rectangle from integer cell coordinates
func RectFromCells(x, y, width, height int) Rect {
	return Rect{Left: float64(x), Top: float64(y), Width: float64(width), Height: float64(height)}
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Center returns the center point of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Origin returns the top-left corner
func (r Rect) Origin() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Corners returns the four corners, clockwise from top-left
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.Left, Y: r.Top},
		{X: r.Right(), Y: r.Top},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left, Y: r.Bottom()},
	}
}

// Area returns width times height
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// IsEmpty reports whether the rectangle has no area
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside the rectangle, edges included
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() && p.Y >= r.Top && p.Y <= r.Bottom()
}

// Translate returns the rectangle moved by dx, dy
func (r Rect) Translate(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

// MoveTo returns the rectangle with its top-left corner at p
func (r Rect) MoveTo(p Point) Rect {
	r.Left = p.X
	r.Top = p.Y
	return r
}

// Intersection returns the overlapping area of r and o (zero if disjoint)
func (r Rect) Intersection(o Rect) float64 {
	left := math.Max(r.Left, o.Left)
	right := math.Min(r.Right(), o.Right())
	top := math.Max(r.Top, o.Top)
	bottom := math.Min(r.Bottom(), o.Bottom())

	if left >= right || top >= bottom {
		return 0
	}
	return (right - left) * (bottom - top)
}

// Droppable is a measured drop target: a column, a card or a sentinel zone
type Droppable struct {
	ID       types.ID
	Rect     Rect
	Disabled bool
}
