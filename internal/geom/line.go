package geom

import "math"

// GeometryKind identifies the concrete shape of a line geometry.
type GeometryKind int

const (
	KindSegment GeometryKind = iota + 1
	KindArc
	KindMultiSegment
	KindSection
)

func (k GeometryKind) String() string {
	switch k {
	case KindSegment:
		return "Segment"
	case KindArc:
		return "Arc"
	case KindMultiSegment:
		return "MultiSegment"
	case KindSection:
		return "Section"
	default:
		return "Unknown"
	}
}

// LineGeometry is the common contract of every line shape.
//
// Distances along a line are measured from Start. SignedArea is the area
// between the line and the Y axis, taken as -∫x dy from Start to End, so a
// closed boundary traversed clockwise accumulates a positive total.
type LineGeometry interface {
	Kind() GeometryKind
	Start() Point
	End() Point
	Length() float64
	Extent() Window

	// Distance returns the shortest distance from p to the line.
	Distance(p Point) float64

	// ClosestPoint returns the position on the line closest to p.
	ClosestPoint(p Point) Point

	// LengthAt returns the distance along the line to the position closest to p.
	LengthAt(p Point) float64

	// PointAt returns the position at a distance along the line. Distances
	// outside [0, Length] are clamped.
	PointAt(dist float64) Point

	SignedArea() float64

	// EastPoint returns the most easterly position on the line.
	EastPoint() Point

	// CrossingsEast counts the crossings between the line and a ray running
	// due east from p, using a half-open rule at vertices so that the counts
	// of adjoining lines add up correctly.
	CrossingsEast(p Point) int

	// OrientLength returns how far from the given end the line can be
	// followed before it changes direction (or half its length for curves).
	OrientLength(fromStart bool) float64

	// Orientation returns the direction (radians, anticlockwise from east)
	// from the given end towards the position dist along the line from
	// that end.
	Orientation(fromStart bool, dist float64) float64

	// Positions returns the vertices of the line. Curves are approximated.
	Positions() []Point
}

// cross returns the z component of the cross product of two vectors.
func cross(ax, ay, bx, by float64) float64 {
	return ax*by - ay*bx
}

// normalizeAngle maps an angle into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// halfOpenCrossing reports whether the edge (x1,y1)-(x2,y2) crosses the
// eastward ray from (px,py).
func halfOpenCrossing(px, py, x1, y1, x2, y2 float64) bool {
	if (y1 > py) == (y2 > py) {
		return false
	}
	x := x1 + (py-y1)*(x2-x1)/(y2-y1)
	return x > px
}
