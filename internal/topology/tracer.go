package topology

import (
	"math"

	"github.com/beetlebugorg/cadastral/internal/geom"
)

// maxRingFaces bounds a face walk so a corrupt graph cannot loop forever.
const maxRingFaces = 1 << 20

// dividerEnd is one end of a boundary divider meeting a terminal.
type dividerEnd struct {
	d       Boundary
	atStart bool
	dir     float64 // Direction leaving the terminal, anticlockwise from east
}

// incidentEnds returns the ends of the boundary dividers meeting at t, with
// the direction each one leaves in.
//
// Directions are measured to positions a common distance along every
// divider, no further than the shortest straight leg, so a curve that
// leaves tangent to a straight line still sorts to the correct side of it.
func incidentEnds(t Terminal) []dividerEnd {
	var ends []dividerEnd
	for _, d := range t.IncidentDividers() {
		b, ok := d.(Boundary)
		if !ok {
			continue
		}
		if d.From() == t {
			ends = append(ends, dividerEnd{d: b, atStart: true})
		}
		if d.To() == t {
			ends = append(ends, dividerEnd{d: b, atStart: false})
		}
	}

	dist := math.Inf(1)
	for _, e := range ends {
		dist = math.Min(dist, e.d.LineGeometry().OrientLength(e.atStart))
	}
	for i := range ends {
		ends[i].dir = ends[i].d.LineGeometry().Orientation(ends[i].atStart, dist)
	}
	return ends
}

// nextEnd picks the divider end to follow after arriving at t along the
// given end, keeping the face being traced on the right. That is the first
// end found rotating anticlockwise from the arrival direction. With no
// other end to take, the walk turns back along the same divider.
func nextEnd(t Terminal, arrived Boundary, arrivedAtStart bool) dividerEnd {
	ends := incidentEnds(t)

	back := math.NaN()
	for _, e := range ends {
		if e.d == arrived && e.atStart == arrivedAtStart {
			back = e.dir
			break
		}
	}

	best := dividerEnd{d: arrived, atStart: arrivedAtStart}
	bestTurn := math.Inf(1)
	for _, e := range ends {
		if e.d == arrived && e.atStart == arrivedAtStart {
			continue
		}
		turn := e.dir - back
		turn = math.Mod(turn, 2*math.Pi)
		if turn < 0 {
			turn += 2 * math.Pi
		}
		if turn < bestTurn {
			best, bestTurn = e, turn
		}
	}
	return best
}

// traceFaces walks the faces of a ring starting from one side of a
// divider.
//
// Walking the right side of a divider runs from its start to its end; the
// left side runs the other way. At each terminal the walk follows nextEnd
// and carries on along the right of the chosen end's direction of travel.
func traceFaces(start Boundary, isLeft bool) ([]Face, error) {
	first := Face{Divider: start, IsLeft: isLeft}
	edge := []Face{first}
	face := first

	for {
		var t Terminal
		if face.IsLeft {
			t = face.Divider.From()
		} else {
			t = face.Divider.To()
		}

		e := nextEnd(t, face.Divider, face.IsLeft)
		face = Face{Divider: e.d, IsLeft: !e.atStart}
		if face == first {
			return edge, nil
		}

		edge = append(edge, face)
		if len(edge) > maxRingFaces {
			return nil, ErrOpenRing
		}
	}
}

// buildRing traces and creates the ring on one side of a divider.
func buildRing(id int, start Boundary, isLeft bool) (Ring, error) {
	edge, err := traceFaces(start, isLeft)
	if err != nil {
		return nil, err
	}
	return newRing(id, edge)
}

// ringWindow returns the window covering a set of rings.
func ringWindow(rings []Ring) geom.Window {
	w := geom.EmptyWindow()
	for _, r := range rings {
		w = w.Union(r.Extent())
	}
	return w
}
