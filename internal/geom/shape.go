package geom

import "fmt"

// ClosedShape is a closed boundary defined by straight edges between a list
// of positions, the first of which coincides with the last.
type ClosedShape struct {
	points []Point
	extent Window
}

// NewClosedShape creates a shape from at least three positions where the
// first position coincides with the last.
func NewClosedShape(points []Point) (*ClosedShape, error) {
	if len(points) < 3 {
		return nil, &ErrInvalidGeometry{Reason: fmt.Sprintf("closed shape needs at least 3 positions, got %d", len(points))}
	}
	if !points[0].IsCoincident(points[len(points)-1]) {
		return nil, &ErrInvalidGeometry{Reason: "closed shape must end where it starts"}
	}
	return &ClosedShape{
		points: append([]Point(nil), points...),
		extent: NewWindow(points...),
	}, nil
}

// Extent returns the window covering the shape.
func (s *ClosedShape) Extent() Window { return s.extent }

// Positions returns a copy of the boundary positions.
func (s *ClosedShape) Positions() []Point {
	return append([]Point(nil), s.points...)
}

// edges returns the boundary as segments.
func (s *ClosedShape) edges() []*Segment {
	segs := make([]*Segment, 0, len(s.points)-1)
	for i := 1; i < len(s.points); i++ {
		segs = append(segs, NewSegment(s.points[i-1], s.points[i]))
	}
	return segs
}

// IsOverlapPoint returns true if p lies strictly inside the shape. Positions
// on the boundary are not inside.
func (s *ClosedShape) IsOverlapPoint(p Point) bool {
	if !s.extent.Contains(p) {
		return false
	}
	crossings := 0
	for _, e := range s.edges() {
		if e.Distance(p) < XYRes {
			return false
		}
		crossings += e.CrossingsEast(p)
	}
	return crossings%2 == 1
}

// IsOverlapLine returns true if any part of line touches or falls inside the
// shape.
func (s *ClosedShape) IsOverlapLine(line LineGeometry) bool {
	if !s.extent.Intersects(line.Extent()) {
		return false
	}
	if s.IsOverlapPoint(line.Start()) || s.IsOverlapPoint(line.End()) {
		return true
	}
	for _, e := range s.edges() {
		if len(Intersect(e, line)) > 0 {
			return true
		}
	}
	return false
}

// IsOverlapShape returns true if the two shapes overlap: a vertex of one lies
// inside the other, or their boundaries intersect.
func (s *ClosedShape) IsOverlapShape(that *ClosedShape) bool {
	if !s.extent.Intersects(that.extent) {
		return false
	}

	driver, other := intersectionDriver(s, that)
	for _, p := range driver.points {
		if other.IsOverlapPoint(p) {
			return true
		}
	}
	for _, p := range other.points {
		if driver.IsOverlapPoint(p) {
			return true
		}
	}
	return other.isIntersect(driver)
}

// intersectionDriver returns the shape with the smaller extent first. The
// driver's window is used to discard edges of the larger shape before any
// exact intersection test.
func intersectionDriver(a, b *ClosedShape) (driver, other *ClosedShape) {
	areaA := a.extent.Width() * a.extent.Height()
	areaB := b.extent.Width() * b.extent.Height()
	if areaB < areaA {
		return b, a
	}
	return a, b
}

// isIntersect checks the edges of s that overlap the driver's window against
// every edge of the driver.
func (s *ClosedShape) isIntersect(driver *ClosedShape) bool {
	win := driver.extent.Expand(XYRes)
	dedges := driver.edges()
	for _, e := range s.edges() {
		if !win.Intersects(e.Extent()) {
			continue
		}
		for _, d := range dedges {
			if len(Intersect(e, d)) > 0 {
				return true
			}
		}
	}
	return false
}
