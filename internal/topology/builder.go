package topology

import (
	"fmt"

	"github.com/beetlebugorg/cadastral/internal/geom"
	"github.com/beetlebugorg/cadastral/internal/index"
)

// BuildResult summarizes one polygon build.
type BuildResult struct {
	Polygons int         // Polygons created
	Islands  int         // Islands created
	Floating int         // Islands in the build window left without a container
	Labels   int         // Labels matched to polygons
	Window   geom.Window // Covers every ring created
}

// PolygonBuilder traces rings on every divider side that has none, then
// resolves island containers and labels inside the area it touched.
type PolygonBuilder struct {
	idx    *index.Index
	opts   BuildOptions
	nextID *int

	built  []Ring
	window geom.Window
}

// NewPolygonBuilder creates a builder over an index. Ring IDs are taken
// from nextID, which is advanced for every ring created.
func NewPolygonBuilder(idx *index.Index, nextID *int, opts BuildOptions) *PolygonBuilder {
	return &PolygonBuilder{
		idx:    idx,
		opts:   opts,
		nextID: nextID,
		window: geom.EmptyWindow(),
	}
}

// Build runs every step of the build.
func (b *PolygonBuilder) Build() (BuildResult, error) {
	if err := b.buildRings(); err != nil {
		return BuildResult{}, err
	}

	var res BuildResult
	for _, r := range b.built {
		if r.Kind() == RingPolygon {
			res.Polygons++
		} else {
			res.Islands++
		}
	}
	res.Window = b.window

	if b.opts.BuildIslands {
		floating, err := b.buildIslands()
		if err != nil {
			return res, err
		}
		res.Floating = floating
	}
	if b.opts.BuildLabels {
		res.Labels = b.buildLabels()
	}

	Logger().Debug("polygons_built",
		"polygons", res.Polygons,
		"islands", res.Islands,
		"floating", res.Floating,
		"labels", res.Labels)
	return res, nil
}

// Built returns the rings created by the build.
func (b *PolygonBuilder) Built() []Ring { return b.built }

func (b *PolygonBuilder) buildRings() error {
	for _, item := range b.idx.Items(nil, index.Line) {
		line, ok := item.(*LineFeature)
		if !ok {
			continue
		}
		for _, d := range line.dividers {
			bd, ok := d.(Boundary)
			if !ok {
				continue
			}
			for _, isLeft := range []bool{false, true} {
				if side(bd, isLeft) != nil {
					continue
				}
				*b.nextID++
				r, err := buildRing(*b.nextID, bd, isLeft)
				if err != nil {
					return fmt.Errorf("build %s side of line %q: %w", sideName(isLeft), line.id, err)
				}
				if err := AddToIndex(b.idx, r); err != nil {
					return err
				}
				b.built = append(b.built, r)
				b.window = b.window.Union(r.Extent())
			}
		}
	}
	return nil
}

// buildIslands resolves the container of every island overlapping the
// build window. Islands held by polygons that existed before the build are
// re-resolved, since a new polygon may now lie between them. It returns the
// number of islands left floating.
func (b *PolygonBuilder) buildIslands() (int, error) {
	if b.window.IsEmpty() {
		return 0, nil
	}

	isNew := make(map[Ring]bool, len(b.built))
	for _, r := range b.built {
		isNew[r] = true
	}

	var islands []*Island
	for _, item := range b.idx.Items(&b.window, index.Polygon) {
		if is, ok := item.(*Island); ok && !is.IsDeleted() {
			islands = append(islands, is)
		}
	}

	floating := 0
	for _, is := range islands {
		is.SetFloating(false)
		if c := is.container; c != nil && !isNew[c] {
			c.Release(is)
		}
		if err := is.SetContainer(b.idx); err != nil {
			return floating, err
		}
		if is.IsFloating() {
			floating++
		}
	}
	return floating, nil
}

// buildLabels matches labels to the new polygons, then finds a polygon for
// every topological text still without one.
func (b *PolygonBuilder) buildLabels() int {
	n := 0
	for _, r := range b.built {
		p, ok := r.(*Polygon)
		if !ok || p.label != nil || p.HasIslands() {
			continue
		}
		if t := FindPolygonLabel(b.idx, p); t != nil {
			p.ClaimLabel(t)
			n++
		}
	}

	for _, item := range b.idx.Items(nil, index.Text) {
		t, ok := item.(*TextFeature)
		if !ok || t.IsBuilt() || !t.IsTopological() {
			continue
		}
		if p := FindPointContainer(b.idx, t.ReferencePosition()); p != nil {
			if p.label == nil {
				n++
			}
			p.ClaimLabel(t)
		}
	}
	return n
}
