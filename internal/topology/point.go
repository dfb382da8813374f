package topology

import (
	"github.com/beetlebugorg/cadastral/internal/geom"
	"github.com/beetlebugorg/cadastral/internal/index"
)

// Feature is a map feature with a stable identity.
type Feature interface {
	index.Spatial
	ID() string
}

// PointFeature is a surveyed point. It is the persistent terminal for the
// lines that start or end at it.
type PointFeature struct {
	junction
	id string
	at geom.Point
}

// NewPointFeature creates a point feature.
func NewPointFeature(id string, at geom.Point) *PointFeature {
	return &PointFeature{id: id, at: at}
}

// ID returns the feature ID.
func (p *PointFeature) ID() string { return p.id }

// Position returns the point's position.
func (p *PointFeature) Position() geom.Point { return p.at }

// IncidentDividers returns the dividers that meet at the point.
func (p *PointFeature) IncidentDividers() []Divider { return p.incident(p) }

// SpatialType implements index.Spatial.
func (p *PointFeature) SpatialType() index.SpatialType { return index.Point }

// Extent implements index.Spatial.
func (p *PointFeature) Extent() geom.Window { return p.at.Extent() }

// Distance implements index.Distancer.
func (p *PointFeature) Distance(q geom.Point) float64 { return p.at.Distance(q) }

func (p *PointFeature) attached() []*LineFeature { return p.lines }

// endsHere counts the attached lines that start or end at the point, as
// opposed to lines merely sectioned here.
func (p *PointFeature) endsHere() int {
	n := 0
	for _, l := range p.lines {
		if l.from == Terminal(p) || l.to == Terminal(p) {
			n++
		}
	}
	return n
}
