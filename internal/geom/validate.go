package geom

import (
	"fmt"
	"math"
)

// Validate checks that a line geometry is usable as a divider.
//
// Lines shorter than a micron, arcs with a degenerate radius or an end that
// does not lie on the circle, and chains with repeated consecutive vertices
// are rejected.
func Validate(line LineGeometry) error {
	if line == nil {
		return &ErrInvalidGeometry{Reason: "geometry is nil"}
	}

	if line.Length() < XYRes {
		return &ErrInvalidGeometry{
			Kind:   line.Kind(),
			Reason: fmt.Sprintf("length %g is below the %g resolution", line.Length(), XYRes),
		}
	}

	switch g := line.(type) {
	case *Segment:
		if g.start.IsCoincident(g.end) {
			return &ErrInvalidGeometry{Kind: KindSegment, Reason: "start and end coincide"}
		}

	case *Arc:
		if g.radius < XYRes {
			return &ErrInvalidGeometry{Kind: KindArc, Reason: "radius is zero"}
		}
		// Rounding both ends to microns can move the end by up to a diagonal micron
		if d := math.Abs(g.center.Distance(g.end) - g.radius); d > 2*XYRes {
			return &ErrInvalidGeometry{
				Kind:   KindArc,
				Reason: fmt.Sprintf("end %v is %g off the circle", g.end, d),
			}
		}

	case *MultiSegment:
		for i := 1; i < len(g.points); i++ {
			if g.points[i-1].IsCoincident(g.points[i]) {
				return &ErrInvalidGeometry{
					Kind:   KindMultiSegment,
					Reason: fmt.Sprintf("vertex %d repeats the previous vertex", i),
				}
			}
		}

	case *Section:
		return Validate(g.Geometry())
	}

	return nil
}
