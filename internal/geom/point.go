package geom

import (
	"fmt"
	"math"
)

// Point is a position on the mapping plane, stored as integer microns.
type Point struct {
	e int64 // Easting in microns
	n int64 // Northing in microns
}

// NewPoint rounds a position (in metres) to the nearest micron.
func NewPoint(x, y float64) Point {
	return Point{e: toMicrons(x), n: toMicrons(y)}
}

// PointFromMicrons creates a point from easting and northing in microns.
func PointFromMicrons(e, n int64) Point {
	return Point{e: e, n: n}
}

func toMicrons(v float64) int64 {
	return int64(math.Round(v * micronsPerMetre))
}

// X returns the easting in metres.
func (p Point) X() float64 { return float64(p.e) / micronsPerMetre }

// Y returns the northing in metres.
func (p Point) Y() float64 { return float64(p.n) / micronsPerMetre }

// Easting returns the easting in microns.
func (p Point) Easting() int64 { return p.e }

// Northing returns the northing in microns.
func (p Point) Northing() int64 { return p.n }

// IsCoincident reports whether p and q refer to the same micron grid node.
func (p Point) IsCoincident(q Point) bool {
	return p.e == q.e && p.n == q.n
}

// Distance returns the straight-line distance to q in metres.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X()-p.X(), q.Y()-p.Y())
}

// Offset returns the point shifted by dx, dy metres.
func (p Point) Offset(dx, dy float64) Point {
	return Point{e: p.e + toMicrons(dx), n: p.n + toMicrons(dy)}
}

// Extent returns the degenerate window covering just this point.
func (p Point) Extent() Window {
	return Window{MinX: p.X(), MinY: p.Y(), MaxX: p.X(), MaxY: p.Y()}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.X(), p.Y())
}
