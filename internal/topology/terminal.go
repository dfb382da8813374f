package topology

import (
	"github.com/beetlebugorg/cadastral/internal/geom"
	"github.com/beetlebugorg/cadastral/internal/index"
)

// Terminal is a node of the topology graph: a fixed position plus the
// dividers that start or end there.
type Terminal interface {
	Position() geom.Point
	IncidentDividers() []Divider
}

// junction tracks the lines that have a divider ending at a persistent
// terminal, either because the line starts or ends there or because the
// line has been sectioned there.
type junction struct {
	lines []*LineFeature
}

func (j *junction) attach(l *LineFeature) {
	for _, x := range j.lines {
		if x == l {
			return
		}
	}
	j.lines = append(j.lines, l)
}

func (j *junction) detach(l *LineFeature) {
	for i, x := range j.lines {
		if x == l {
			j.lines = append(j.lines[:i], j.lines[i+1:]...)
			return
		}
	}
}

// incident returns the dividers of the attached lines that end at t.
func (j *junction) incident(t Terminal) []Divider {
	var divs []Divider
	for _, l := range j.lines {
		for _, d := range l.dividers {
			if d.From() == t || d.To() == t {
				divs = append(divs, d)
			}
		}
	}
	return divs
}

// attachable is implemented by persistent terminals.
type attachable interface {
	Terminal
	index.Spatial
	attach(l *LineFeature)
	detach(l *LineFeature)
	attached() []*LineFeature
}

// Intersection is a persistent terminal where lines cross away from any
// point feature. It is indexed as a point so later lines reuse it.
type Intersection struct {
	junction
	at geom.Point
}

func newIntersection(at geom.Point) *Intersection {
	return &Intersection{at: at}
}

// Position returns where the lines cross.
func (x *Intersection) Position() geom.Point { return x.at }

// IncidentDividers returns the dividers that meet here.
func (x *Intersection) IncidentDividers() []Divider { return x.incident(x) }

// SpatialType implements index.Spatial.
func (x *Intersection) SpatialType() index.SpatialType { return index.Point }

// Extent implements index.Spatial.
func (x *Intersection) Extent() geom.Window { return x.at.Extent() }

// Distance implements index.Distancer.
func (x *Intersection) Distance(p geom.Point) float64 { return x.at.Distance(p) }

func (x *Intersection) attached() []*LineFeature { return x.lines }

// FloatingTerminal is a transient terminal used to test a geometry that is
// not yet part of the map. It never has incident dividers, so it can never
// take part in a ring.
type FloatingTerminal struct {
	at geom.Point
}

// NewFloatingTerminal creates a floating terminal at a position.
func NewFloatingTerminal(at geom.Point) *FloatingTerminal {
	return &FloatingTerminal{at: at}
}

// Position returns the terminal position.
func (f *FloatingTerminal) Position() geom.Point { return f.at }

// IncidentDividers always returns nil.
func (f *FloatingTerminal) IncidentDividers() []Divider { return nil }
