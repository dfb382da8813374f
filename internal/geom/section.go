package geom

import "fmt"

// Section is the piece of a base line lying between two positions on it.
//
// The piece is materialized as a geometry of the same shape as the base (a
// shorter segment, a narrower arc, or a subset of the chain), so every
// LineGeometry method comes from the embedded geometry.
type Section struct {
	LineGeometry
	base LineGeometry
}

// NewSection creates the section of base running from one position to
// another. Both positions must lie on base, with from preceding to.
func NewSection(base LineGeometry, from, to Point) (*Section, error) {
	if s, ok := base.(*Section); ok {
		base = s.base
	}

	fromDist := 0.0
	if !from.IsCoincident(base.Start()) {
		fromDist = base.LengthAt(from)
	}
	toDist := base.Length()
	if !to.IsCoincident(base.End()) {
		toDist = base.LengthAt(to)
	}
	if toDist-fromDist < XYRes {
		return nil, &ErrInvalidGeometry{
			Kind:   KindSection,
			Reason: fmt.Sprintf("section from %v to %v does not run forward along the base", from, to),
		}
	}

	var piece LineGeometry
	switch g := base.(type) {
	case *Segment:
		piece = NewSegment(from, to)
	case *Arc:
		piece = NewArc(g.Center(), from, to, g.IsClockwise())
	case *MultiSegment:
		pts := []Point{from}
		cum := 0.0
		for i := 1; i < len(g.points)-1; i++ {
			cum += g.points[i-1].Distance(g.points[i])
			if cum > fromDist+XYRes && cum < toDist-XYRes {
				pts = append(pts, g.points[i])
			}
		}
		pts = append(pts, to)
		m, err := NewMultiSegment(pts)
		if err != nil {
			return nil, err
		}
		piece = m
	default:
		return nil, &ErrInvalidGeometry{Kind: KindSection, Reason: fmt.Sprintf("cannot section %v", base.Kind())}
	}

	return &Section{LineGeometry: piece, base: base}, nil
}

// Kind reports KindSection.
func (s *Section) Kind() GeometryKind { return KindSection }

// Base returns the line the section was taken from.
func (s *Section) Base() LineGeometry { return s.base }

// Geometry returns the materialized piece.
func (s *Section) Geometry() LineGeometry { return s.LineGeometry }

// Path is a sequence of line geometries joined end to end.
type Path []LineGeometry

// Join chains pieces into a path, checking that each piece starts where the
// previous one ended.
func Join(pieces ...LineGeometry) (Path, error) {
	if len(pieces) == 0 {
		return nil, &ErrInvalidGeometry{Reason: "nothing to join"}
	}
	for i := 1; i < len(pieces); i++ {
		if !pieces[i-1].End().IsCoincident(pieces[i].Start()) {
			return nil, &ErrInvalidGeometry{
				Kind:   pieces[i].Kind(),
				Reason: fmt.Sprintf("piece %d starts at %v, previous piece ends at %v", i, pieces[i].Start(), pieces[i-1].End()),
			}
		}
	}
	return Path(pieces), nil
}

// Start returns the start of the first piece.
func (p Path) Start() Point { return p[0].Start() }

// End returns the end of the last piece.
func (p Path) End() Point { return p[len(p)-1].End() }

// Length returns the total length of all pieces.
func (p Path) Length() float64 {
	total := 0.0
	for _, g := range p {
		total += g.Length()
	}
	return total
}

// Extent returns the window covering every piece.
func (p Path) Extent() Window {
	w := EmptyWindow()
	for _, g := range p {
		w = w.Union(g.Extent())
	}
	return w
}
