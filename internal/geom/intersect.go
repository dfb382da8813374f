package geom

import (
	"math"
	"sort"
)

// Intersection is a place where two lines meet.
//
// A simple intersection is the single position P1. A grazing intersection is
// an overlap along a stretch of both lines, running from P1 to P2 in the
// direction of the first line.
type Intersection struct {
	P1    Point
	P2    Point
	Graze bool
}

// Intersect returns the intersections of line a with line b, ordered by
// distance along a.
func Intersect(a, b LineGeometry) []Intersection {
	if !a.Extent().Expand(XYRes).Intersects(b.Extent()) {
		return nil
	}

	var raw []Intersection
	for _, pa := range primitives(a) {
		wa := pa.Extent().Expand(XYRes)
		for _, pb := range primitives(b) {
			if !wa.Intersects(pb.Extent()) {
				continue
			}
			raw = append(raw, intersectPrimitives(pa, pb)...)
		}
	}
	return tidy(a, raw)
}

// primitives breaks a geometry into segments and arcs.
func primitives(g LineGeometry) []LineGeometry {
	switch t := g.(type) {
	case *Section:
		return primitives(t.Geometry())
	case *MultiSegment:
		segs := t.Segments()
		out := make([]LineGeometry, len(segs))
		for i, s := range segs {
			out[i] = s
		}
		return out
	default:
		return []LineGeometry{g}
	}
}

func intersectPrimitives(a, b LineGeometry) []Intersection {
	switch ga := a.(type) {
	case *Segment:
		switch gb := b.(type) {
		case *Segment:
			return intersectSegments(ga, gb)
		case *Arc:
			return intersectSegmentArc(ga, gb)
		}
	case *Arc:
		switch gb := b.(type) {
		case *Segment:
			return intersectSegmentArc(gb, ga)
		case *Arc:
			return intersectArcs(ga, gb)
		}
	}
	return nil
}

// snap returns the first candidate within a micron of (x, y), or the
// rounded position when none is that close.
func snap(x, y float64, candidates ...Point) Point {
	for _, c := range candidates {
		if math.Hypot(c.X()-x, c.Y()-y) <= XYRes {
			return c
		}
	}
	return NewPoint(x, y)
}

// appendUnique appends p unless a coincident position is already present.
func appendUnique(pts []Point, p Point) []Point {
	for _, q := range pts {
		if q.IsCoincident(p) {
			return pts
		}
	}
	return append(pts, p)
}

func intersectSegments(s1, s2 *Segment) []Intersection {
	l1, l2 := s1.Length(), s2.Length()
	if l1 < Tiny || l2 < Tiny {
		return nil
	}

	x1, y1 := s1.start.X(), s1.start.Y()
	dx1, dy1 := s1.end.X()-x1, s1.end.Y()-y1
	x3, y3 := s2.start.X(), s2.start.Y()
	dx2, dy2 := s2.end.X()-x3, s2.end.Y()-y3

	den := cross(dx1, dy1, dx2, dy2)
	if math.Abs(den) < Tiny*l1*l2 {
		// Parallel. Only collinear segments can meet.
		if math.Abs(cross(x3-x1, y3-y1, dx1, dy1))/l1 > XYRes {
			return nil
		}
		var touch []Point
		for _, p := range []Point{s1.start, s1.end} {
			if s2.Distance(p) <= XYRes {
				touch = appendUnique(touch, p)
			}
		}
		for _, p := range []Point{s2.start, s2.end} {
			if s1.Distance(p) <= XYRes {
				touch = appendUnique(touch, p)
			}
		}
		switch len(touch) {
		case 0:
			return nil
		case 1:
			return []Intersection{{P1: touch[0]}}
		}
		sort.Slice(touch, func(i, j int) bool {
			return s1.LengthAt(touch[i]) < s1.LengthAt(touch[j])
		})
		return []Intersection{{P1: touch[0], P2: touch[len(touch)-1], Graze: true}}
	}

	t := cross(x3-x1, y3-y1, dx2, dy2) / den
	u := cross(x3-x1, y3-y1, dx1, dy1) / den
	tolT, tolU := XYRes/l1, XYRes/l2
	if t < -tolT || t > 1+tolT || u < -tolU || u > 1+tolU {
		return nil
	}

	p := snap(x1+t*dx1, y1+t*dy1, s1.start, s1.end, s2.start, s2.end)
	return []Intersection{{P1: p}}
}

func intersectSegmentArc(s *Segment, a *Arc) []Intersection {
	x1, y1 := s.start.X(), s.start.Y()
	dx, dy := s.end.X()-x1, s.end.Y()-y1
	aa := dx*dx + dy*dy
	if aa < Tiny*Tiny {
		return nil
	}
	l := math.Sqrt(aa)
	fx, fy := x1-a.cx, y1-a.cy
	bb := 2 * (fx*dx + fy*dy)
	cc := fx*fx + fy*fy - a.radius*a.radius

	var ts []float64
	perp := math.Abs(cross(dx, dy, a.cx-x1, a.cy-y1)) / l
	switch {
	case math.Abs(perp-a.radius) <= XYRes:
		// Tangent
		ts = []float64{-bb / (2 * aa)}
	default:
		disc := bb*bb - 4*aa*cc
		if disc < 0 {
			return nil
		}
		sq := math.Sqrt(disc)
		ts = []float64{(-bb - sq) / (2 * aa), (-bb + sq) / (2 * aa)}
	}

	tol := XYRes / l
	var pts []Point
	for _, t := range ts {
		if t < -tol || t > 1+tol {
			continue
		}
		x, y := x1+t*dx, y1+t*dy
		if !a.onArc(math.Atan2(y-a.cy, x-a.cx)) {
			continue
		}
		pts = appendUnique(pts, snap(x, y, s.start, s.end, a.start, a.end))
	}

	out := make([]Intersection, len(pts))
	for i, p := range pts {
		out[i] = Intersection{P1: p}
	}
	return out
}

func intersectArcs(a, b *Arc) []Intersection {
	if a.center.IsCoincident(b.center) {
		if math.Abs(a.radius-b.radius) > XYRes {
			return nil
		}
		return intersectCoincidentArcs(a, b)
	}

	d := math.Hypot(b.cx-a.cx, b.cy-a.cy)
	if d > a.radius+b.radius+XYRes || d < math.Abs(a.radius-b.radius)-XYRes {
		return nil
	}

	along := (a.radius*a.radius - b.radius*b.radius + d*d) / (2 * d)
	h := math.Sqrt(math.Max(0, a.radius*a.radius-along*along))
	ux, uy := (b.cx-a.cx)/d, (b.cy-a.cy)/d
	bx, by := a.cx+along*ux, a.cy+along*uy

	cands := [][2]float64{{bx - h*uy, by + h*ux}}
	if h > XYRes {
		cands = append(cands, [2]float64{bx + h*uy, by - h*ux})
	}

	var pts []Point
	for _, c := range cands {
		x, y := c[0], c[1]
		if !a.onArc(math.Atan2(y-a.cy, x-a.cx)) || !b.onArc(math.Atan2(y-b.cy, x-b.cx)) {
			continue
		}
		pts = appendUnique(pts, snap(x, y, a.start, a.end, b.start, b.end))
	}

	out := make([]Intersection, len(pts))
	for i, p := range pts {
		out[i] = Intersection{P1: p}
	}
	return out
}

// intersectCoincidentArcs handles two arcs on the same circle, which can
// touch at their ends or overlap along one or two stretches.
func intersectCoincidentArcs(a, b *Arc) []Intersection {
	var cands []Point
	for _, p := range []Point{b.start, b.end} {
		if a.Distance(p) <= XYRes {
			cands = appendUnique(cands, p)
		}
	}
	for _, p := range []Point{a.start, a.end} {
		if b.Distance(p) <= XYRes {
			cands = appendUnique(cands, p)
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		return a.LengthAt(cands[i]) < a.LengthAt(cands[j])
	})

	var out []Intersection
	used := make([]bool, len(cands))
	for i := 0; i+1 < len(cands); i++ {
		mid := a.PointAt((a.LengthAt(cands[i]) + a.LengthAt(cands[i+1])) / 2)
		if b.Distance(mid) <= XYRes {
			out = append(out, Intersection{P1: cands[i], P2: cands[i+1], Graze: true})
			used[i], used[i+1] = true, true
		}
	}
	for i, p := range cands {
		if !used[i] {
			out = append(out, Intersection{P1: p})
		}
	}
	return out
}

// tidy orders raw intersections along a, merges grazes that run into each
// other, and drops simple intersections that repeat another result.
func tidy(a LineGeometry, raw []Intersection) []Intersection {
	if len(raw) == 0 {
		return nil
	}

	type span struct {
		lo, hi float64
		x      Intersection
	}
	var grazes, simple []span
	for _, x := range raw {
		if x.Graze {
			lo, hi := a.LengthAt(x.P1), a.LengthAt(x.P2)
			if lo > hi {
				lo, hi = hi, lo
				x.P1, x.P2 = x.P2, x.P1
			}
			grazes = append(grazes, span{lo, hi, x})
			continue
		}
		d := a.LengthAt(x.P1)
		simple = append(simple, span{d, d, x})
	}

	sort.SliceStable(grazes, func(i, j int) bool { return grazes[i].lo < grazes[j].lo })
	var merged []span
	for _, g := range grazes {
		if n := len(merged); n > 0 && g.lo <= merged[n-1].hi+XYRes {
			if g.hi > merged[n-1].hi {
				merged[n-1].hi = g.hi
				merged[n-1].x.P2 = g.x.P2
			}
			continue
		}
		merged = append(merged, g)
	}

	out := merged
	for _, s := range simple {
		dup := false
		for _, o := range out {
			if s.lo >= o.lo-XYRes && s.lo <= o.hi+XYRes &&
				(o.x.Graze || o.x.P1.IsCoincident(s.x.P1) || o.x.P1.Distance(s.x.P1) <= XYRes) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, s)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].lo < out[j].lo })
	result := make([]Intersection, len(out))
	for i, s := range out {
		result[i] = s.x
	}
	return result
}
