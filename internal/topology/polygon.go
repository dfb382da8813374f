package topology

import "github.com/beetlebugorg/cadastral/internal/geom"

// Polygon is a ring with positive area. It owns the islands it encloses and
// at most one label.
type Polygon struct {
	ringCore
	islands []*Island
	label   *TextFeature
}

// Kind returns RingPolygon.
func (p *Polygon) Kind() RingKind { return RingPolygon }

// Area returns the gross area inside the outer boundary.
func (p *Polygon) Area() float64 { return p.signedArea }

// AreaExcludingIslands returns the area less the area of every island.
func (p *Polygon) AreaExcludingIslands() float64 {
	a := p.Area()
	for _, is := range p.islands {
		a -= is.Area()
	}
	return a
}

// Islands returns the islands inside the polygon.
func (p *Polygon) Islands() []*Island {
	return append([]*Island(nil), p.islands...)
}

// HasIslands reports whether the polygon encloses any islands.
func (p *Polygon) HasIslands() bool { return len(p.islands) > 0 }

// Label returns the polygon's label, if any.
func (p *Polygon) Label() *TextFeature { return p.label }

// ClaimIsland makes the polygon the container of an island. It fails if the
// island would drive the polygon's net area negative.
func (p *Polygon) ClaimIsland(is *Island) error {
	if is.container == p {
		return nil
	}
	if rest := p.AreaExcludingIslands() - is.Area(); rest < 0 {
		return &ErrWrongContainer{Polygon: p.id, Island: is.id, Shortfall: -rest}
	}
	if is.container != nil {
		is.container.Release(is)
	}
	p.islands = append(p.islands, is)
	is.container = p
	is.flags &^= ringFloating
	return nil
}

// Release removes an island from the polygon. It returns false if the
// island did not belong to it.
func (p *Polygon) Release(is *Island) bool {
	for i, x := range p.islands {
		if x == is {
			p.islands = append(p.islands[:i], p.islands[i+1:]...)
			is.container = nil
			return true
		}
	}
	return false
}

// ClaimLabel associates a text label with the polygon. A polygon keeps the
// first label that claims it; later claimants are logged and ignored.
func (p *Polygon) ClaimLabel(t *TextFeature) {
	t.container = p
	if p.label == nil {
		p.label = t
		return
	}
	if p.label != t {
		Logger().Warn("label_conflict",
			"polygon", p.id,
			"label", p.label.ID(),
			"ignored", t.ID())
	}
}

// HasIslandEnclosing reports whether p falls inside one of the islands.
func (p *Polygon) HasIslandEnclosing(at geom.Point) bool {
	for _, is := range p.islands {
		if is.IsRingEnclosing(at) {
			return true
		}
	}
	return false
}

// IsEnclosing reports whether the position lies inside the polygon and
// outside all of its islands.
func (p *Polygon) IsEnclosing(at geom.Point) bool {
	return p.IsRingEnclosing(at) && !p.HasIslandEnclosing(at)
}
