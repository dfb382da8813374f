package topology

import (
	"github.com/beetlebugorg/cadastral/internal/geom"
	"github.com/beetlebugorg/cadastral/internal/index"
)

// TextFeature is a text annotation. Topological text labels the polygon its
// reference position falls in.
type TextFeature struct {
	id          string
	text        string
	at          geom.Point
	ref         *geom.Point
	width       float64
	height      float64
	topological bool
	container   *Polygon
}

// NewTextFeature creates a topological text feature positioned at a point.
func NewTextFeature(id, text string, at geom.Point) *TextFeature {
	return &TextFeature{id: id, text: text, at: at, topological: true}
}

// ID returns the feature ID.
func (t *TextFeature) ID() string { return t.id }

// Text returns the annotation text.
func (t *TextFeature) Text() string { return t.text }

// Position returns where the text is drawn.
func (t *TextFeature) Position() geom.Point { return t.at }

// ReferencePosition returns the position used to find the labelled
// polygon. It defaults to the text position.
func (t *TextFeature) ReferencePosition() geom.Point {
	if t.ref != nil {
		return *t.ref
	}
	return t.at
}

// SetReferencePosition overrides the polygon reference position.
func (t *TextFeature) SetReferencePosition(p geom.Point) { t.ref = &p }

// SetSize sets the drawn size of the text, which widens its extent.
func (t *TextFeature) SetSize(width, height float64) {
	t.width, t.height = width, height
}

// IsTopological reports whether the text labels a polygon.
func (t *TextFeature) IsTopological() bool { return t.topological }

// SetTopological marks the text as a polygon label (or not).
func (t *TextFeature) SetTopological(v bool) { t.topological = v }

// IsBuilt reports whether the text has been matched to a polygon.
func (t *TextFeature) IsBuilt() bool { return t.container != nil }

// Container returns the polygon the text falls in, if known.
func (t *TextFeature) Container() *Polygon { return t.container }

// SpatialType implements index.Spatial.
func (t *TextFeature) SpatialType() index.SpatialType { return index.Text }

// Extent covers the drawn text and the reference position.
func (t *TextFeature) Extent() geom.Window {
	w := geom.NewWindow(t.at, t.ReferencePosition())
	if t.width > 0 || t.height > 0 {
		w = w.Union(geom.NewWindow(t.at, t.at.Offset(t.width, t.height)))
	}
	return w
}
