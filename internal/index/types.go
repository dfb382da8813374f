package index

import (
	"errors"
	"strings"

	"github.com/beetlebugorg/cadastral/internal/geom"
)

// SpatialType is a bit mask of the kinds of indexed item.
type SpatialType uint8

const (
	Point SpatialType = 1 << iota
	Line
	Text
	Polygon

	// All covers every spatial type.
	All = Point | Line | Text | Polygon
)

var spatialTypeNames = []struct {
	t    SpatialType
	name string
}{
	{Point, "Point"},
	{Line, "Line"},
	{Text, "Text"},
	{Polygon, "Polygon"},
}

func (t SpatialType) String() string {
	var parts []string
	for _, n := range spatialTypeNames {
		if t&n.t != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// isSingle reports whether exactly one type bit is set.
func (t SpatialType) isSingle() bool {
	return t != 0 && t&(t-1) == 0 && t&All == t
}

// Spatial is anything that can be held in the index. Items are compared by
// identity, so implementations should be pointer types.
type Spatial interface {
	// SpatialType returns the single type the item is indexed under.
	SpatialType() SpatialType

	// Extent returns the window covering the item.
	Extent() geom.Window
}

// Distancer is implemented by items that can measure their exact distance
// to a position. QueryClosest falls back to the item's extent otherwise.
type Distancer interface {
	Distance(p geom.Point) float64
}

// Visitor is called for each item a query finds. Returning false stops the
// query.
type Visitor func(item Spatial) bool

var (
	// ErrAlreadyIndexed indicates an item that is already in the index.
	ErrAlreadyIndexed = errors.New("item is already indexed")

	// ErrNoExtent indicates an item whose extent is empty.
	ErrNoExtent = errors.New("item has no extent")

	// ErrBadSpatialType indicates an item that does not report exactly one spatial type.
	ErrBadSpatialType = errors.New("item must have exactly one spatial type")
)
