package geom

import "math"

// MultiSegment is a connected chain of straight segments.
type MultiSegment struct {
	points []Point
	length float64
}

// NewMultiSegment creates a chain through the given vertices. At least two
// vertices are required.
func NewMultiSegment(points []Point) (*MultiSegment, error) {
	if len(points) < 2 {
		return nil, &ErrInvalidGeometry{Kind: KindMultiSegment, Reason: "at least 2 positions are required"}
	}
	m := &MultiSegment{points: append([]Point(nil), points...)}
	for i := 1; i < len(m.points); i++ {
		m.length += m.points[i-1].Distance(m.points[i])
	}
	return m, nil
}

func (m *MultiSegment) Kind() GeometryKind { return KindMultiSegment }
func (m *MultiSegment) Start() Point       { return m.points[0] }
func (m *MultiSegment) End() Point         { return m.points[len(m.points)-1] }
func (m *MultiSegment) Length() float64    { return m.length }

// Segments returns the individual segments of the chain.
func (m *MultiSegment) Segments() []*Segment {
	segs := make([]*Segment, 0, len(m.points)-1)
	for i := 1; i < len(m.points); i++ {
		segs = append(segs, NewSegment(m.points[i-1], m.points[i]))
	}
	return segs
}

// Extent returns the window covering every vertex.
func (m *MultiSegment) Extent() Window {
	return NewWindow(m.points...)
}

// closest returns the index of the segment closest to p.
func (m *MultiSegment) closest(p Point) (int, *Segment) {
	best, bestDist := 0, math.MaxFloat64
	var bestSeg *Segment
	for i, s := range m.Segments() {
		if d := s.Distance(p); d < bestDist {
			best, bestDist, bestSeg = i, d, s
		}
	}
	return best, bestSeg
}

// Distance returns the shortest distance from p to any segment.
func (m *MultiSegment) Distance(p Point) float64 {
	_, s := m.closest(p)
	return s.Distance(p)
}

// ClosestPoint returns the position on the chain closest to p.
func (m *MultiSegment) ClosestPoint(p Point) Point {
	_, s := m.closest(p)
	return s.ClosestPoint(p)
}

// LengthAt returns the distance along the chain to the position closest to p.
func (m *MultiSegment) LengthAt(p Point) float64 {
	idx, s := m.closest(p)
	dist := 0.0
	for i := 0; i < idx; i++ {
		dist += m.points[i].Distance(m.points[i+1])
	}
	return dist + s.LengthAt(p)
}

// PointAt returns the position at a distance along the chain.
func (m *MultiSegment) PointAt(dist float64) Point {
	if dist <= 0 {
		return m.Start()
	}
	for _, s := range m.Segments() {
		l := s.Length()
		if dist <= l {
			return s.PointAt(dist)
		}
		dist -= l
	}
	return m.End()
}

// SignedArea sums the area contributions of each segment.
func (m *MultiSegment) SignedArea() float64 {
	area := 0.0
	for _, s := range m.Segments() {
		area += s.SignedArea()
	}
	return area
}

// EastPoint returns the most easterly vertex.
func (m *MultiSegment) EastPoint() Point {
	east := m.points[0]
	for _, p := range m.points[1:] {
		if p.Easting() > east.Easting() {
			east = p
		}
	}
	return east
}

// CrossingsEast counts crossings of each segment with the ray from p.
func (m *MultiSegment) CrossingsEast(p Point) int {
	n := 0
	for _, s := range m.Segments() {
		n += s.CrossingsEast(p)
	}
	return n
}

// OrientLength returns the length of the first (or last) leg.
func (m *MultiSegment) OrientLength(fromStart bool) float64 {
	if fromStart {
		return m.points[0].Distance(m.points[1])
	}
	n := len(m.points)
	return m.points[n-1].Distance(m.points[n-2])
}

// Orientation returns the direction of the first (or last) leg.
func (m *MultiSegment) Orientation(fromStart bool, _ float64) float64 {
	a, b := m.points[0], m.points[1]
	if !fromStart {
		n := len(m.points)
		a, b = m.points[n-1], m.points[n-2]
	}
	return math.Atan2(b.Y()-a.Y(), b.X()-a.X())
}

// Positions returns a copy of the vertices.
func (m *MultiSegment) Positions() []Point {
	return append([]Point(nil), m.points...)
}
