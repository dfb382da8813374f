package topology

import (
	"fmt"

	"github.com/beetlebugorg/cadastral/internal/geom"
	"github.com/beetlebugorg/cadastral/internal/index"
)

// RingKind distinguishes the two kinds of ring.
type RingKind int

const (
	RingPolygon RingKind = iota + 1
	RingIsland
)

func (k RingKind) String() string {
	switch k {
	case RingPolygon:
		return "Polygon"
	case RingIsland:
		return "Island"
	default:
		return "Unknown"
	}
}

// Face is one side of a boundary divider.
type Face struct {
	Divider Boundary
	IsLeft  bool
}

// Ring is a closed cycle of faces bounding an area. It is either a
// *Polygon or an *Island.
type Ring interface {
	index.Spatial

	Kind() RingKind
	ID() int

	// Area returns the area enclosed by the ring. It is positive for both
	// kinds of ring.
	Area() float64

	// SignedArea returns the signed area of the boundary: positive for
	// polygons and zero or negative for islands.
	SignedArea() float64

	Edge() []Face
	EastPoint() geom.Point
	IsRingEnclosing(p geom.Point) bool
	Outline() []geom.Point
	IsDeleted() bool
	IsIndexed() bool

	core() *ringCore
}

type ringFlag uint8

const (
	ringIndexed ringFlag = 1 << iota
	ringDeleted
	ringFloating
)

// ringCore holds the state common to polygons and islands. The signed area
// and window are computed once when the ring is created.
type ringCore struct {
	id         int
	signedArea float64
	window     geom.Window
	edge       []Face
	flags      ringFlag
}

func (r *ringCore) core() *ringCore { return r }

// ID returns the ring's sequence number within its map.
func (r *ringCore) ID() int { return r.id }

// SignedArea returns the accumulated signed area.
func (r *ringCore) SignedArea() float64 { return r.signedArea }

// Edge returns the faces making up the ring, in traversal order.
func (r *ringCore) Edge() []Face { return r.edge }

// SpatialType implements index.Spatial. Islands are indexed alongside
// polygons; queries tell them apart by type.
func (r *ringCore) SpatialType() index.SpatialType { return index.Polygon }

// Extent returns the window covering the ring.
func (r *ringCore) Extent() geom.Window { return r.window }

// IsDeleted reports whether the ring has been marked for deletion.
func (r *ringCore) IsDeleted() bool { return r.flags&ringDeleted != 0 }

// IsIndexed reports whether the ring is in the spatial index.
func (r *ringCore) IsIndexed() bool { return r.flags&ringIndexed != 0 }

// EastPoint returns the most easterly position on the boundary.
func (r *ringCore) EastPoint() geom.Point {
	var east geom.Point
	for i, f := range r.edge {
		p := f.Divider.LineGeometry().EastPoint()
		if i == 0 || p.Easting() > east.Easting() {
			east = p
		}
	}
	return east
}

// IsRingEnclosing reports whether p lies strictly inside the boundary.
//
// It counts crossings between the boundary and a ray running east from p.
// Dividers with the same ring on both sides are walked twice, so their
// crossings cancel out. Positions on the boundary are not enclosed.
func (r *ringCore) IsRingEnclosing(p geom.Point) bool {
	if !r.window.Contains(p) {
		return false
	}
	crossings := 0
	for _, f := range r.edge {
		g := f.Divider.LineGeometry()
		if !g.Extent().Expand(geom.XYRes).Intersects(geom.Window{MinX: p.X(), MinY: p.Y(), MaxX: r.window.MaxX, MaxY: p.Y()}) {
			continue
		}
		if g.Distance(p) < geom.XYRes {
			return false
		}
		crossings += g.CrossingsEast(p)
	}
	return crossings%2 == 1
}

// Outline returns the boundary positions in traversal order. The last
// position repeats the first.
func (r *ringCore) Outline() []geom.Point {
	var pts []geom.Point
	for _, f := range r.edge {
		seq := f.Divider.LineGeometry().Positions()
		if f.IsLeft {
			for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
				seq[i], seq[j] = seq[j], seq[i]
			}
		}
		if len(pts) > 0 {
			seq = seq[1:]
		}
		pts = append(pts, seq...)
	}
	return pts
}

// faceArea returns the signed area contributed by a face.
func faceArea(f Face) float64 {
	a := f.Divider.LineGeometry().SignedArea()
	if f.IsLeft {
		return -a
	}
	return a
}

// newRing classifies a traced edge as a polygon or island and claims the
// traced side of every divider for it.
func newRing(id int, edge []Face) (Ring, error) {
	core := ringCore{id: id, window: geom.EmptyWindow(), edge: edge}
	for _, f := range edge {
		core.signedArea += faceArea(f)
		core.window = core.window.Union(f.Divider.LineGeometry().Extent())
	}

	var r Ring
	if core.signedArea > 0 {
		r = &Polygon{ringCore: core}
	} else {
		r = &Island{ringCore: core}
	}

	for _, f := range edge {
		if cur := side(f.Divider, f.IsLeft); cur != nil && cur != r {
			return nil, &ErrBuildStatus{Line: f.Divider.Line().ID(), Side: sideName(f.IsLeft)}
		}
		if err := setSide(f.Divider, f.IsLeft, r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func sideName(isLeft bool) string {
	if isLeft {
		return "left"
	}
	return "right"
}

// AddToIndex puts a ring in the spatial index.
func AddToIndex(idx *index.Index, r Ring) error {
	if err := idx.Add(r); err != nil {
		return fmt.Errorf("index %v %d: %w", r.Kind(), r.ID(), err)
	}
	r.core().flags |= ringIndexed
	return nil
}

// RemoveFromIndex takes a ring out of the spatial index. It returns false
// if the ring was not indexed.
func RemoveFromIndex(idx *index.Index, r Ring) bool {
	r.core().flags &^= ringIndexed
	return idx.Remove(r)
}

// release detaches a deleted ring from everything that refers to it.
func release(r Ring) {
	for _, f := range r.Edge() {
		if side(f.Divider, f.IsLeft) == r {
			_ = setSide(f.Divider, f.IsLeft, nil)
		}
	}

	switch v := r.(type) {
	case *Island:
		if v.container != nil {
			v.container.Release(v)
		}
	case *Polygon:
		for _, is := range v.islands {
			is.container = nil
		}
		v.islands = nil
		if v.label != nil {
			v.label.container = nil
			v.label = nil
		}
	}
}
