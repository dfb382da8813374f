package geom

import (
	"math"
	"sort"
)

// arcStep is the angular step used when approximating arcs by vertices.
const arcStep = 5.0 * math.Pi / 180.0

// Arc is a circular arc running from start to end around a centre.
//
// The radius is the distance from the centre to the start. An arc whose
// start and end coincide is a full circle.
type Arc struct {
	center    Point
	cx, cy    float64
	radius    float64
	start     Point
	end       Point
	clockwise bool
	a0        float64 // Angle of start, measured from the centre
	sweep     float64 // Signed sweep, positive anticlockwise
}

// NewArc creates an arc from start to end around center.
func NewArc(center, start, end Point, clockwise bool) *Arc {
	a := &Arc{
		center:    center,
		cx:        center.X(),
		cy:        center.Y(),
		radius:    center.Distance(start),
		start:     start,
		end:       end,
		clockwise: clockwise,
	}
	a.a0 = math.Atan2(start.Y()-a.cy, start.X()-a.cx)
	a1 := math.Atan2(end.Y()-a.cy, end.X()-a.cx)

	switch {
	case start.IsCoincident(end):
		a.sweep = 2 * math.Pi
	case clockwise:
		a.sweep = normalizeAngle(a.a0 - a1)
	default:
		a.sweep = normalizeAngle(a1 - a.a0)
	}
	if clockwise {
		a.sweep = -a.sweep
	}
	return a
}

func (a *Arc) Kind() GeometryKind { return KindArc }
func (a *Arc) Start() Point       { return a.start }
func (a *Arc) End() Point         { return a.end }

// Center returns the centre of the circle.
func (a *Arc) Center() Point { return a.center }

// Radius returns the radius of the circle.
func (a *Arc) Radius() float64 { return a.radius }

// IsClockwise reports the direction of travel from start to end.
func (a *Arc) IsClockwise() bool { return a.clockwise }

// Length returns the arc length in metres.
func (a *Arc) Length() float64 {
	return a.radius * math.Abs(a.sweep)
}

func (a *Arc) span() float64 { return math.Abs(a.sweep) }

// offset returns the angular distance from the start to theta, measured in
// the direction of travel.
func (a *Arc) offset(theta float64) float64 {
	if a.clockwise {
		return normalizeAngle(a.a0 - theta)
	}
	return normalizeAngle(theta - a.a0)
}

// onArc reports whether the direction theta (from the centre) falls within
// the arc, allowing a micron either side of the ends.
func (a *Arc) onArc(theta float64) bool {
	tol := XYRes / math.Max(a.radius, XYRes)
	off := a.offset(theta)
	return off <= a.span()+tol || off >= 2*math.Pi-tol
}

// clampedOffset is the offset of theta, with directions just before the
// start folded back to zero.
func (a *Arc) clampedOffset(theta float64) float64 {
	off := a.offset(theta)
	if off > a.span() {
		if 2*math.Pi-off < off-a.span() {
			return 0
		}
		return a.span()
	}
	return off
}

func (a *Arc) angleAt(off float64) float64 {
	if a.clockwise {
		return a.a0 - off
	}
	return a.a0 + off
}

func (a *Arc) xyAt(off float64) (float64, float64) {
	t := a.angleAt(off)
	return a.cx + a.radius*math.Cos(t), a.cy + a.radius*math.Sin(t)
}

// pointAtOffset returns the position at an angular offset, using the exact
// end positions at either extreme.
func (a *Arc) pointAtOffset(off float64) Point {
	if off <= 0 {
		return a.start
	}
	if off >= a.span() {
		return a.end
	}
	return NewPoint(a.xyAt(off))
}

// Extent returns the window covering the ends and any compass extremes the
// arc passes through.
func (a *Arc) Extent() Window {
	w := NewWindow(a.start, a.end)
	for k := 0; k < 4; k++ {
		theta := float64(k) * math.Pi / 2
		if a.onArc(theta) {
			x := a.cx + a.radius*math.Cos(theta)
			y := a.cy + a.radius*math.Sin(theta)
			w = w.Union(Window{MinX: x, MinY: y, MaxX: x, MaxY: y})
		}
	}
	return w
}

func (a *Arc) direction(p Point) float64 {
	return math.Atan2(p.Y()-a.cy, p.X()-a.cx)
}

// Distance returns the shortest distance from p to the arc.
func (a *Arc) Distance(p Point) float64 {
	if a.onArc(a.direction(p)) {
		return math.Abs(math.Hypot(p.X()-a.cx, p.Y()-a.cy) - a.radius)
	}
	return math.Min(p.Distance(a.start), p.Distance(a.end))
}

// ClosestPoint returns the position on the arc closest to p.
func (a *Arc) ClosestPoint(p Point) Point {
	theta := a.direction(p)
	if a.onArc(theta) {
		return a.pointAtOffset(a.clampedOffset(theta))
	}
	if p.Distance(a.start) <= p.Distance(a.end) {
		return a.start
	}
	return a.end
}

// LengthAt returns the distance along the arc to the position closest to p.
func (a *Arc) LengthAt(p Point) float64 {
	theta := a.direction(p)
	if a.onArc(theta) {
		return a.radius * a.clampedOffset(theta)
	}
	if p.Distance(a.start) <= p.Distance(a.end) {
		return 0
	}
	return a.Length()
}

// PointAt returns the position at a distance along the arc.
func (a *Arc) PointAt(dist float64) Point {
	if a.radius < Tiny {
		return a.start
	}
	return a.pointAtOffset(dist / a.radius)
}

// SignedArea returns -∫x dy from start to end.
func (a *Arc) SignedArea() float64 {
	f := func(t float64) float64 {
		return a.cx*a.radius*math.Sin(t) + a.radius*a.radius*(t/2+math.Sin(2*t)/4)
	}
	return -(f(a.a0+a.sweep) - f(a.a0))
}

// EastPoint returns the most easterly position on the arc.
func (a *Arc) EastPoint() Point {
	if a.onArc(0) {
		return NewPoint(a.cx+a.radius, a.cy)
	}
	if a.end.Easting() > a.start.Easting() {
		return a.end
	}
	return a.start
}

// CrossingsEast splits the arc into pieces that are monotonic in Y and
// counts each piece the way a straight edge would be counted.
func (a *Arc) CrossingsEast(p Point) int {
	offsets := []float64{0, a.span()}
	for _, theta := range []float64{math.Pi / 2, 3 * math.Pi / 2} {
		off := a.offset(theta)
		if off > 0 && off < a.span() {
			offsets = append(offsets, off)
		}
	}
	sort.Float64s(offsets)

	yAt := func(off float64) float64 {
		switch off {
		case 0:
			return a.start.Y()
		case a.span():
			return a.end.Y()
		}
		_, y := a.xyAt(off)
		return y
	}

	px, py := p.X(), p.Y()
	count := 0
	for i := 0; i+1 < len(offsets); i++ {
		y1, y2 := yAt(offsets[i]), yAt(offsets[i+1])
		if (y1 > py) == (y2 > py) {
			continue
		}
		side := 1.0
		if math.Cos(a.angleAt((offsets[i]+offsets[i+1])/2)) < 0 {
			side = -1.0
		}
		dy := py - a.cy
		x := a.cx + side*math.Sqrt(math.Max(0, a.radius*a.radius-dy*dy))
		if x > px {
			count++
		}
	}
	return count
}

// OrientLength returns half the arc length.
func (a *Arc) OrientLength(bool) float64 {
	return a.Length() / 2
}

// Orientation returns the direction of the chord from one end to the
// position dist along the arc. Distances under a micron use the tangent.
func (a *Arc) Orientation(fromStart bool, dist float64) float64 {
	if dist < XYRes || a.radius < Tiny {
		t := a.angleAt(0)
		turn := math.Pi / 2
		if !fromStart {
			t = a.angleAt(a.span())
			turn = -turn
		}
		if a.clockwise {
			turn = -turn
		}
		return t + turn
	}

	off := math.Min(dist/a.radius, a.span())
	ox, oy := a.start.X(), a.start.Y()
	if !fromStart {
		off = a.span() - off
		ox, oy = a.end.X(), a.end.Y()
	}
	x, y := a.xyAt(off)
	return math.Atan2(y-oy, x-ox)
}

// Positions approximates the arc with vertices every few degrees.
func (a *Arc) Positions() []Point {
	n := int(math.Ceil(a.span() / arcStep))
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	pts = append(pts, a.start)
	for i := 1; i < n; i++ {
		pts = append(pts, NewPoint(a.xyAt(a.span()*float64(i)/float64(n))))
	}
	return append(pts, a.end)
}
