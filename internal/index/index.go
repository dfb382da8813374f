package index

import (
	"fmt"
	"iter"
	"math"
	"sort"

	"github.com/beetlebugorg/cadastral/internal/geom"
	"github.com/dhconnelly/rtreego"
)

// Index holds one R-tree per spatial type.
//
// Items keep the order in which they were added, and every query visits
// matches in that order, so results are deterministic.
//
// The index is not safe for concurrent use, and a visitor must not add or
// remove items while a query is running.
type Index struct {
	trees   map[SpatialType]*rtreego.Rtree
	entries map[Spatial]*entry
	seq     uint64
}

// entry wraps an item for R-tree storage. The rectangle is captured when
// the item is added, so removal finds the same leaf even if the item's
// extent has since changed.
type entry struct {
	item Spatial
	seq  uint64
	win  geom.Window
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// toRect converts a window to an R-tree rectangle.
//
// R-tree rectangles must have non-zero sides, so windows are padded by a
// micron all round. That also makes touching windows overlap in the tree;
// exact overlap is re-checked against the window afterwards.
func toRect(w geom.Window) rtreego.Rect {
	w = w.Expand(geom.XYRes)
	point := rtreego.Point{w.MinX, w.MinY}
	lengths := []float64{
		math.Max(w.MaxX-w.MinX, geom.XYRes),
		math.Max(w.MaxY-w.MinY, geom.XYRes),
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// New creates an empty index.
func New() *Index {
	trees := make(map[SpatialType]*rtreego.Rtree, len(spatialTypeNames))
	for _, n := range spatialTypeNames {
		// 2D, min=25 children, max=50 children
		trees[n.t] = rtreego.NewTree(2, 25, 50)
	}
	return &Index{
		trees:   trees,
		entries: make(map[Spatial]*entry),
	}
}

// Add inserts an item under its spatial type.
func (x *Index) Add(item Spatial) error {
	if _, ok := x.entries[item]; ok {
		return ErrAlreadyIndexed
	}
	t := item.SpatialType()
	if !t.isSingle() {
		return fmt.Errorf("%w: got %v", ErrBadSpatialType, t)
	}
	win := item.Extent()
	if win.IsEmpty() {
		return ErrNoExtent
	}

	x.seq++
	e := &entry{item: item, seq: x.seq, win: win, rect: toRect(win)}
	x.trees[t].Insert(e)
	x.entries[item] = e
	return nil
}

// Remove deletes an item from the index. It returns false if the item was
// not indexed.
func (x *Index) Remove(item Spatial) bool {
	e, ok := x.entries[item]
	if !ok {
		return false
	}
	delete(x.entries, item)
	return x.trees[item.SpatialType()].Delete(e)
}

// Contains reports whether an item is indexed.
func (x *Index) Contains(item Spatial) bool {
	_, ok := x.entries[item]
	return ok
}

// Count returns the number of indexed items of the given types.
func (x *Index) Count(types SpatialType) int {
	n := 0
	for t, tree := range x.trees {
		if types&t != 0 {
			n += tree.Size()
		}
	}
	return n
}

// Extent returns the window covering every indexed item.
func (x *Index) Extent() geom.Window {
	w := geom.EmptyWindow()
	for _, e := range x.entries {
		w = w.Union(e.win)
	}
	return w
}

// matches collects the entries of the given types overlapping the window,
// in the order they were added. A nil window matches everything.
func (x *Index) matches(win *geom.Window, types SpatialType) []*entry {
	var found []*entry
	if win == nil {
		for _, e := range x.entries {
			if types&e.item.SpatialType() != 0 {
				found = append(found, e)
			}
		}
	} else {
		if win.IsEmpty() {
			return nil
		}
		rect := toRect(*win)
		for t, tree := range x.trees {
			if types&t == 0 {
				continue
			}
			for _, s := range tree.SearchIntersect(rect) {
				e := s.(*entry)
				if e.win.Intersects(*win) {
					found = append(found, e)
				}
			}
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].seq < found[j].seq })
	return found
}

// QueryWindow calls visit for every item of the requested types whose
// extent overlaps the window. A nil window means all items. The query stops
// as soon as visit returns false.
func (x *Index) QueryWindow(win *geom.Window, types SpatialType, visit Visitor) {
	for _, e := range x.matches(win, types) {
		if !visit(e.item) {
			return
		}
	}
}

// All returns an iterator over the items QueryWindow would visit.
func (x *Index) All(win *geom.Window, types SpatialType) iter.Seq[Spatial] {
	return func(yield func(Spatial) bool) {
		x.QueryWindow(win, types, func(item Spatial) bool {
			return yield(item)
		})
	}
}

// Items returns the items QueryWindow would visit.
func (x *Index) Items(win *geom.Window, types SpatialType) []Spatial {
	var items []Spatial
	x.QueryWindow(win, types, func(item Spatial) bool {
		items = append(items, item)
		return true
	})
	return items
}

// QueryClosest returns the item of the requested types closest to p, or nil
// if nothing lies within radius. Items that implement Distancer are measured
// exactly; others by the distance to their extent. Ties go to the item added
// first.
func (x *Index) QueryClosest(p geom.Point, radius float64, types SpatialType) Spatial {
	win := p.Extent().Expand(radius)

	var best Spatial
	bestDist := math.Inf(1)
	x.QueryWindow(&win, types, func(item Spatial) bool {
		var d float64
		if dd, ok := item.(Distancer); ok {
			d = dd.Distance(p)
		} else {
			d = windowDistance(item.Extent(), p)
		}
		if d <= radius && d < bestDist {
			best, bestDist = item, d
		}
		return true
	})
	return best
}

// windowDistance returns the distance from p to the nearest edge of a
// window, or zero when p lies inside it.
func windowDistance(w geom.Window, p geom.Point) float64 {
	dx := math.Max(0, math.Max(w.MinX-p.X(), p.X()-w.MaxX))
	dy := math.Max(0, math.Max(w.MinY-p.Y(), p.Y()-w.MaxY))
	return math.Hypot(dx, dy)
}
