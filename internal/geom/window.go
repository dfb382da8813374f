package geom

import "math"

// Window is an axis-aligned rectangle on the mapping plane.
//
// Coordinates are in metres. A window whose minimum exceeds its maximum is
// empty; EmptyWindow returns the identity for Union.
type Window struct {
	MinX float64 // Western edge
	MinY float64 // Southern edge
	MaxX float64 // Eastern edge
	MaxY float64 // Northern edge
}

// EmptyWindow returns a window that covers nothing.
func EmptyWindow() Window {
	return Window{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// NewWindow returns the smallest window covering the given points.
func NewWindow(points ...Point) Window {
	w := EmptyWindow()
	for _, p := range points {
		w = w.UnionPoint(p)
	}
	return w
}

// IsEmpty reports whether the window covers nothing.
func (w Window) IsEmpty() bool {
	return w.MinX > w.MaxX || w.MinY > w.MaxY
}

// Width returns the east-west size of the window.
func (w Window) Width() float64 {
	if w.IsEmpty() {
		return 0
	}
	return w.MaxX - w.MinX
}

// Height returns the north-south size of the window.
func (w Window) Height() float64 {
	if w.IsEmpty() {
		return 0
	}
	return w.MaxY - w.MinY
}

// Center returns the position at the middle of the window.
func (w Window) Center() Point {
	return NewPoint((w.MinX+w.MaxX)/2, (w.MinY+w.MaxY)/2)
}

// Contains returns true if p lies inside or on the edge of the window.
func (w Window) Contains(p Point) bool {
	x, y := p.X(), p.Y()
	return x >= w.MinX && x <= w.MaxX &&
		y >= w.MinY && y <= w.MaxY
}

// Intersects returns true if the two windows overlap or touch.
func (w Window) Intersects(other Window) bool {
	if w.IsEmpty() || other.IsEmpty() {
		return false
	}
	return !(other.MaxX < w.MinX ||
		other.MinX > w.MaxX ||
		other.MaxY < w.MinY ||
		other.MinY > w.MaxY)
}

// Encloses returns true if other lies completely within this window.
func (w Window) Encloses(other Window) bool {
	if w.IsEmpty() || other.IsEmpty() {
		return false
	}
	return other.MinX >= w.MinX && other.MaxX <= w.MaxX &&
		other.MinY >= w.MinY && other.MaxY <= w.MaxY
}

// Union returns the smallest window covering both windows.
func (w Window) Union(other Window) Window {
	return Window{
		MinX: math.Min(w.MinX, other.MinX),
		MinY: math.Min(w.MinY, other.MinY),
		MaxX: math.Max(w.MaxX, other.MaxX),
		MaxY: math.Max(w.MaxY, other.MaxY),
	}
}

// UnionPoint returns the window expanded to cover p.
func (w Window) UnionPoint(p Point) Window {
	x, y := p.X(), p.Y()
	return Window{
		MinX: math.Min(w.MinX, x),
		MinY: math.Min(w.MinY, y),
		MaxX: math.Max(w.MaxX, x),
		MaxY: math.Max(w.MaxY, y),
	}
}

// Expand returns a new window expanded by the given margin in all directions.
func (w Window) Expand(margin float64) Window {
	if w.IsEmpty() {
		return w
	}
	return Window{
		MinX: w.MinX - margin,
		MinY: w.MinY - margin,
		MaxX: w.MaxX + margin,
		MaxY: w.MaxY + margin,
	}
}
