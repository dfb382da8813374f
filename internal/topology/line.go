package topology

import (
	"fmt"

	"github.com/beetlebugorg/cadastral/internal/geom"
	"github.com/beetlebugorg/cadastral/internal/index"
)

// LineState describes how a line is currently divided.
type LineState int

const (
	Unsectioned LineState = iota + 1 // One divider spans the whole line
	Split                            // The line is divided into sections
	Overlapped                       // At least part of the line lies on another line
)

func (s LineState) String() string {
	switch s {
	case Unsectioned:
		return "Unsectioned"
	case Split:
		return "Split"
	case Overlapped:
		return "Overlapped"
	default:
		return "Unknown"
	}
}

// LineFeature is a line drawn between two terminals. The map divides it into
// dividers wherever other lines or points meet its interior.
type LineFeature struct {
	id       string
	from     Terminal
	to       Terminal
	geometry geom.LineGeometry

	dividers []Divider
	cuts     []attachable // Terminals the line is sectioned at, in order
	seq      uint64       // Order the line was added to its map
}

// span is a stretch of a line, as distances from its start.
type span struct {
	from, to float64
}

func (s span) contains(dist float64) bool {
	return dist > s.from && dist < s.to
}

// NewLineFeature creates a line. The geometry must start at the position
// of from and end at the position of to.
func NewLineFeature(id string, from, to Terminal, g geom.LineGeometry) (*LineFeature, error) {
	if g == nil {
		return nil, &geom.ErrInvalidGeometry{Reason: fmt.Sprintf("line %q has no geometry", id)}
	}
	if !g.Start().IsCoincident(from.Position()) {
		return nil, &geom.ErrInvalidGeometry{
			Kind:   g.Kind(),
			Reason: fmt.Sprintf("line %q starts at %v, not at its terminal %v", id, g.Start(), from.Position()),
		}
	}
	if !g.End().IsCoincident(to.Position()) {
		return nil, &geom.ErrInvalidGeometry{
			Kind:   g.Kind(),
			Reason: fmt.Sprintf("line %q ends at %v, not at its terminal %v", id, g.End(), to.Position()),
		}
	}

	l := &LineFeature{id: id, from: from, to: to, geometry: g}
	l.dividers = []Divider{l.newDivider(from, to, g, false, false)}
	return l, nil
}

func (l *LineFeature) newDivider(from, to Terminal, g geom.LineGeometry, section, overlap bool) Divider {
	base := dividerBase{line: l, from: from, to: to, geometry: g, section: section}
	if overlap {
		return &OverlapDivider{dividerBase: base}
	}
	return &BoundaryDivider{dividerBase: base}
}

// ID returns the feature ID.
func (l *LineFeature) ID() string { return l.id }

// From returns the terminal the line starts at.
func (l *LineFeature) From() Terminal { return l.from }

// To returns the terminal the line ends at.
func (l *LineFeature) To() Terminal { return l.to }

// LineGeometry returns the geometry of the whole line.
func (l *LineFeature) LineGeometry() geom.LineGeometry { return l.geometry }

// SpatialType implements index.Spatial.
func (l *LineFeature) SpatialType() index.SpatialType { return index.Line }

// Extent implements index.Spatial.
func (l *LineFeature) Extent() geom.Window { return l.geometry.Extent() }

// Distance implements index.Distancer.
func (l *LineFeature) Distance(p geom.Point) float64 { return l.geometry.Distance(p) }

// Dividers returns the line's dividers in order from its start.
func (l *LineFeature) Dividers() []Divider {
	return append([]Divider(nil), l.dividers...)
}

// State reports how the line is divided.
func (l *LineFeature) State() LineState {
	for _, d := range l.dividers {
		if d.IsOverlap() {
			return Overlapped
		}
	}
	if len(l.dividers) > 1 {
		return Split
	}
	return Unsectioned
}

// section rebuilds the dividers of the line so it is cut at each of the
// given terminals, which must be ordered along the line. Pieces whose
// midpoint falls in one of the overlap spans become overlap dividers.
//
// Rings bounded by the old dividers are marked deleted. The terminals the
// line was previously cut at but no longer is are returned.
func (l *LineFeature) section(cuts []attachable, overlaps []span) ([]attachable, error) {
	for _, d := range l.dividers {
		MarkPolygons(d)
	}

	ends := make([]Terminal, 0, len(cuts)+2)
	ends = append(ends, l.from)
	for _, c := range cuts {
		ends = append(ends, c)
	}
	ends = append(ends, l.to)

	// Indexed like ends, so the ends of a closed line measure 0 and Length
	dists := make([]float64, len(ends))
	for i, c := range cuts {
		dists[i+1] = l.geometry.LengthAt(c.Position())
	}
	dists[len(ends)-1] = l.geometry.Length()

	dividers := make([]Divider, 0, len(ends)-1)
	for i := 1; i < len(ends); i++ {
		a, b := ends[i-1], ends[i]
		g := l.geometry
		if len(cuts) > 0 {
			s, err := geom.NewSection(l.geometry, a.Position(), b.Position())
			if err != nil {
				return nil, fmt.Errorf("section line %q: %w", l.id, err)
			}
			g = s
		}

		mid := (dists[i-1] + dists[i]) / 2
		overlap := false
		for _, s := range overlaps {
			if s.contains(mid) {
				overlap = true
				break
			}
		}
		dividers = append(dividers, l.newDivider(a, b, g, len(cuts) > 0, overlap))
	}

	var dropped []attachable
	for _, old := range l.cuts {
		kept := false
		for _, c := range cuts {
			if c == old {
				kept = true
				break
			}
		}
		if !kept {
			old.detach(l)
			dropped = append(dropped, old)
		}
	}
	for _, c := range cuts {
		c.attach(l)
	}

	l.cuts = cuts
	l.dividers = dividers
	return dropped, nil
}

// detachAll removes the line from every terminal it meets and drops its
// dividers. It returns the terminals it was cut at.
func (l *LineFeature) detachAll() []attachable {
	for _, d := range l.dividers {
		MarkPolygons(d)
	}
	if a, ok := l.from.(attachable); ok {
		a.detach(l)
	}
	if a, ok := l.to.(attachable); ok {
		a.detach(l)
	}
	for _, c := range l.cuts {
		c.detach(l)
	}

	cuts := l.cuts
	l.cuts = nil
	l.dividers = nil
	return cuts
}
