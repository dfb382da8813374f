package topology

import (
	"math"

	"github.com/beetlebugorg/cadastral/internal/geom"
	"github.com/beetlebugorg/cadastral/internal/index"
)

// FindPointContainer returns the polygon enclosing a position, or nil.
//
// Polygons without islands are accepted as soon as their ring encloses the
// position. Polygons with islands are only considered once the scan is
// over, and are rejected if the position falls inside one of the islands.
// The first match wins.
func FindPointContainer(idx *index.Index, p geom.Point) *Polygon {
	win := p.Extent()

	var found *Polygon
	var deferred []*Polygon
	idx.QueryWindow(&win, index.Polygon, func(item index.Spatial) bool {
		poly, ok := item.(*Polygon)
		if !ok || poly.IsDeleted() {
			return true
		}
		if poly.HasIslands() {
			deferred = append(deferred, poly)
			return true
		}
		if poly.IsRingEnclosing(p) {
			found = poly
			return false
		}
		return true
	})
	if found != nil {
		return found
	}

	for _, poly := range deferred {
		if poly.IsRingEnclosing(p) && !poly.HasIslandEnclosing(p) {
			return poly
		}
	}
	return nil
}

// FindIslandContainer returns the tightest polygon around an island, or
// nil if the island floats.
//
// The most easterly position of the island is nudged a micron further east
// and every polygon enclosing that probe is a candidate, provided it is
// bigger than the island and its window encloses the island's window. A
// polygon whose own islands hold the probe is not a candidate, since the
// polygon of that island lies in between. The candidate with the smallest
// net area wins; the first one found is kept when areas are equal.
func FindIslandContainer(idx *index.Index, is *Island) *Polygon {
	east := is.EastPoint()
	probe := geom.PointFromMicrons(east.Easting()+1, east.Northing())
	win := probe.Extent()
	extent := is.Extent()
	area := is.Area()

	var best *Polygon
	bestArea := math.Inf(1)
	idx.QueryWindow(&win, index.Polygon, func(item index.Spatial) bool {
		poly, ok := item.(*Polygon)
		if !ok || poly.IsDeleted() {
			return true
		}
		if poly.Area() <= area || !poly.Extent().Encloses(extent) {
			return true
		}
		if !poly.IsEnclosing(probe) {
			return true
		}
		if net := poly.AreaExcludingIslands(); net < bestArea {
			best, bestArea = poly, net
		}
		return true
	})
	return best
}

// FindPolygonLabel returns the first unbuilt topological text whose
// reference position lies inside a polygon. Polygons with islands are never
// searched and get no label this way.
func FindPolygonLabel(idx *index.Index, p *Polygon) *TextFeature {
	if p.HasIslands() {
		return nil
	}

	win := p.Extent()
	var found *TextFeature
	idx.QueryWindow(&win, index.Text, func(item index.Spatial) bool {
		t, ok := item.(*TextFeature)
		if !ok || t.IsBuilt() || !t.IsTopological() {
			return true
		}
		ref := t.ReferencePosition()
		if win.Contains(ref) && p.IsRingEnclosing(ref) {
			found = t
			return false
		}
		return true
	})
	return found
}
