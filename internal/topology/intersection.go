package topology

import (
	"sort"

	"github.com/beetlebugorg/cadastral/internal/geom"
	"github.com/beetlebugorg/cadastral/internal/index"
)

// IntersectionType describes where an intersection falls relative to one
// of the two lines involved.
type IntersectionType int

const (
	TouchStart IntersectionType = iota + 1 // Meets the start of the line
	TouchEnd                               // Meets the end of the line
	TouchOther                             // Meets the line away from its ends
	GrazeStart                             // Overlap with one end at the start
	GrazeEnd                               // Overlap with one end at the end
	GrazeOther                             // Overlap away from either end
	GrazeTotal                             // Overlap covering the whole line
)

func (t IntersectionType) String() string {
	switch t {
	case TouchStart:
		return "TouchStart"
	case TouchEnd:
		return "TouchEnd"
	case TouchOther:
		return "TouchOther"
	case GrazeStart:
		return "GrazeStart"
	case GrazeEnd:
		return "GrazeEnd"
	case GrazeOther:
		return "GrazeOther"
	case GrazeTotal:
		return "GrazeTotal"
	default:
		return "Unknown"
	}
}

func (t IntersectionType) isEnd() bool {
	return t == TouchStart || t == TouchEnd
}

// IntersectionKind classifies an intersection as a whole.
type IntersectionKind int

const (
	Crossing IntersectionKind = iota + 1 // Lines meet at a single position
	EndEnd                               // Lines meet where both of them end
	Grazing                              // Lines overlap along a stretch
)

func (k IntersectionKind) String() string {
	switch k {
	case Crossing:
		return "Crossing"
	case EndEnd:
		return "EndEnd"
	case Grazing:
		return "Grazing"
	default:
		return "Unknown"
	}
}

// IntersectionData is one place where the tested line meets another
// object. Context1 is relative to the tested line, Context2 to the other.
type IntersectionData struct {
	P1       geom.Point
	P2       geom.Point // End of the overlap for grazes
	Graze    bool
	Context1 IntersectionType
	Context2 IntersectionType

	sortValue float64 // Distance along the tested line to P1
}

// IsGraze reports whether the data is an overlap.
func (d IntersectionData) IsGraze() bool { return d.Graze }

// IsEndEnd reports whether both lines end at the intersection.
func (d IntersectionData) IsEndEnd() bool {
	return d.Context1.isEnd() && d.Context2.isEnd()
}

// Kind classifies the intersection.
func (d IntersectionData) Kind() IntersectionKind {
	switch {
	case d.Graze:
		return Grazing
	case d.IsEndEnd():
		return EndEnd
	default:
		return Crossing
	}
}

// SortValue returns the distance along the tested line.
func (d IntersectionData) SortValue() float64 { return d.sortValue }

// touchContext returns where p falls on a line.
func touchContext(g geom.LineGeometry, p geom.Point) IntersectionType {
	switch {
	case p.IsCoincident(g.Start()):
		return TouchStart
	case p.IsCoincident(g.End()):
		return TouchEnd
	default:
		return TouchOther
	}
}

// grazeContext returns where an overlap from p1 to p2 falls on a line.
func grazeContext(g geom.LineGeometry, p1, p2 geom.Point) IntersectionType {
	s1, s2 := p1.IsCoincident(g.Start()), p2.IsCoincident(g.Start())
	e1, e2 := p1.IsCoincident(g.End()), p2.IsCoincident(g.End())
	switch {
	case (s1 && e2) || (s2 && e1):
		return GrazeTotal
	case s1 || s2:
		return GrazeStart
	case e1 || e2:
		return GrazeEnd
	default:
		return GrazeOther
	}
}

// IntersectionResult holds the intersections between the tested line and
// one other object (a *LineFeature or a *PointFeature).
type IntersectionResult struct {
	Other index.Spatial
	Data  []IntersectionData
}

// IsSplitOn reports whether any of the intersections falls strictly inside
// the given line, so the line would have to be sectioned there.
func (r *IntersectionResult) IsSplitOn(g geom.LineGeometry) bool {
	inside := func(p geom.Point) bool {
		return !p.IsCoincident(g.Start()) && !p.IsCoincident(g.End())
	}
	for _, d := range r.Data {
		if inside(d.P1) || (d.Graze && inside(d.P2)) {
			return true
		}
	}
	return false
}

// IsGrazing reports whether any of the intersections is an overlap.
func (r *IntersectionResult) IsGrazing() bool {
	for _, d := range r.Data {
		if d.Graze {
			return true
		}
	}
	return false
}

// cutEndEnd drops intersections where both lines simply end.
func (r *IntersectionResult) cutEndEnd() {
	kept := r.Data[:0]
	for _, d := range r.Data {
		if !d.IsEndEnd() {
			kept = append(kept, d)
		}
	}
	r.Data = kept
}

// IntersectionFinder finds everything in the map that a line meets.
type IntersectionFinder struct {
	line       *LineFeature
	geometry   geom.LineGeometry
	wantEndEnd bool
	results    []*IntersectionResult
}

// FindIntersections intersects a line with every other line in the index
// whose extent overlaps it, and with every point feature lying on it away
// from its ends. Intersections where both lines merely end are dropped
// unless wantEndEnd is set. The line itself is never reported.
func FindIntersections(idx *index.Index, line *LineFeature, wantEndEnd bool) *IntersectionFinder {
	f := &IntersectionFinder{
		line:       line,
		geometry:   line.geometry,
		wantEndEnd: wantEndEnd,
	}

	win := f.geometry.Extent().Expand(geom.XYRes)
	idx.QueryWindow(&win, index.Line|index.Point, func(item index.Spatial) bool {
		switch other := item.(type) {
		case *LineFeature:
			if other != line {
				f.intersectLine(other)
			}
		case *PointFeature:
			f.intersectPoint(other)
		}
		return true
	})
	return f
}

func (f *IntersectionFinder) intersectLine(other *LineFeature) {
	xs := geom.Intersect(f.geometry, other.geometry)
	if len(xs) == 0 {
		return
	}

	r := &IntersectionResult{Other: other}
	for _, x := range xs {
		d := IntersectionData{P1: x.P1, P2: x.P2, Graze: x.Graze}
		if x.Graze {
			d.Context1 = grazeContext(f.geometry, x.P1, x.P2)
			d.Context2 = grazeContext(other.geometry, x.P1, x.P2)
		} else {
			d.Context1 = touchContext(f.geometry, x.P1)
			d.Context2 = touchContext(other.geometry, x.P1)
		}
		d.sortValue = f.geometry.LengthAt(x.P1)
		r.Data = append(r.Data, d)
	}
	f.add(r)
}

func (f *IntersectionFinder) intersectPoint(p *PointFeature) {
	at := p.Position()
	if at.IsCoincident(f.geometry.Start()) || at.IsCoincident(f.geometry.End()) {
		return
	}
	if f.geometry.Distance(at) >= geom.XYRes {
		return
	}
	f.add(&IntersectionResult{
		Other: p,
		Data: []IntersectionData{{
			P1:        at,
			Context1:  TouchOther,
			Context2:  TouchStart,
			sortValue: f.geometry.LengthAt(at),
		}},
	})
}

func (f *IntersectionFinder) add(r *IntersectionResult) {
	if !f.wantEndEnd {
		r.cutEndEnd()
	}
	if len(r.Data) > 0 {
		f.results = append(f.results, r)
	}
}

// Line returns the tested line.
func (f *IntersectionFinder) Line() *LineFeature { return f.line }

// Results returns one result per intersected object.
func (f *IntersectionFinder) Results() []*IntersectionResult { return f.results }

// Count returns the total number of intersections found.
func (f *IntersectionFinder) Count() int {
	n := 0
	for _, r := range f.results {
		n += len(r.Data)
	}
	return n
}

// IsGrazing reports whether the line overlaps anything.
func (f *IntersectionFinder) IsGrazing() bool {
	for _, r := range f.results {
		if r.IsGrazing() {
			return true
		}
	}
	return false
}

// IsSplitNeeded reports whether at least one intersection falls strictly
// inside the tested line.
func (f *IntersectionFinder) IsSplitNeeded() bool {
	return len(f.SplitPositions()) > 0
}

// SplitPositions returns the positions at which the tested line must be
// sectioned, ordered along the line. Overlaps contribute both of their
// ends; positions at either end of the line are dropped.
func (f *IntersectionFinder) SplitPositions() []geom.Point {
	g := f.geometry
	type cut struct {
		at   geom.Point
		dist float64
	}
	var cuts []cut
	for _, r := range f.results {
		for _, d := range r.Data {
			cuts = append(cuts, cut{d.P1, g.LengthAt(d.P1)})
			if d.Graze {
				cuts = append(cuts, cut{d.P2, g.LengthAt(d.P2)})
			}
		}
	}
	sort.SliceStable(cuts, func(i, j int) bool { return cuts[i].dist < cuts[j].dist })

	var out []geom.Point
	for _, c := range cuts {
		if c.at.IsCoincident(g.Start()) || c.at.IsCoincident(g.End()) {
			continue
		}
		if n := len(out); n > 0 && out[n-1].IsCoincident(c.at) {
			continue
		}
		out = append(out, c.at)
	}
	return out
}
