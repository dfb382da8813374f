package geom

import "math"

// Segment is a straight line between two positions.
type Segment struct {
	start Point
	end   Point
}

// NewSegment creates a segment from start to end.
func NewSegment(start, end Point) *Segment {
	return &Segment{start: start, end: end}
}

func (s *Segment) Kind() GeometryKind { return KindSegment }
func (s *Segment) Start() Point       { return s.start }
func (s *Segment) End() Point         { return s.end }

// Length returns the length of the segment in metres.
func (s *Segment) Length() float64 {
	return s.start.Distance(s.end)
}

// Extent returns the window covering both ends.
func (s *Segment) Extent() Window {
	return NewWindow(s.start, s.end)
}

// param returns the parameter in [0, 1] of the position on the segment closest to p.
func (s *Segment) param(p Point) float64 {
	x1, y1 := s.start.X(), s.start.Y()
	dx, dy := s.end.X()-x1, s.end.Y()-y1
	len2 := dx*dx + dy*dy
	if len2 < Tiny*Tiny {
		return 0
	}
	t := ((p.X()-x1)*dx + (p.Y()-y1)*dy) / len2
	return math.Max(0, math.Min(1, t))
}

func (s *Segment) at(t float64) (float64, float64) {
	x1, y1 := s.start.X(), s.start.Y()
	return x1 + t*(s.end.X()-x1), y1 + t*(s.end.Y()-y1)
}

// Distance returns the shortest distance from p to the segment.
func (s *Segment) Distance(p Point) float64 {
	x, y := s.at(s.param(p))
	return math.Hypot(p.X()-x, p.Y()-y)
}

// ClosestPoint returns the position on the segment closest to p.
func (s *Segment) ClosestPoint(p Point) Point {
	t := s.param(p)
	if t == 0 {
		return s.start
	}
	if t == 1 {
		return s.end
	}
	return NewPoint(s.at(t))
}

// LengthAt returns the distance from the start to the position closest to p.
func (s *Segment) LengthAt(p Point) float64 {
	return s.param(p) * s.Length()
}

// PointAt returns the position at a distance along the segment.
func (s *Segment) PointAt(dist float64) Point {
	l := s.Length()
	if dist <= 0 || l < Tiny {
		return s.start
	}
	if dist >= l {
		return s.end
	}
	return NewPoint(s.at(dist / l))
}

// SignedArea returns the area between the segment and the Y axis.
func (s *Segment) SignedArea() float64 {
	return (s.start.X() + s.end.X()) * 0.5 * (s.start.Y() - s.end.Y())
}

// EastPoint returns whichever end lies further east.
func (s *Segment) EastPoint() Point {
	if s.end.Easting() > s.start.Easting() {
		return s.end
	}
	return s.start
}

// CrossingsEast counts crossings with the eastward ray from p (zero or one).
func (s *Segment) CrossingsEast(p Point) int {
	if halfOpenCrossing(p.X(), p.Y(), s.start.X(), s.start.Y(), s.end.X(), s.end.Y()) {
		return 1
	}
	return 0
}

// OrientLength returns the full length; a segment never changes direction.
func (s *Segment) OrientLength(bool) float64 {
	return s.Length()
}

// Orientation returns the direction from one end towards the other.
func (s *Segment) Orientation(fromStart bool, _ float64) float64 {
	a, b := s.start, s.end
	if !fromStart {
		a, b = b, a
	}
	return math.Atan2(b.Y()-a.Y(), b.X()-a.X())
}

// Positions returns the two ends.
func (s *Segment) Positions() []Point {
	return []Point{s.start, s.end}
}
