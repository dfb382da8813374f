package geom

import "fmt"

// ErrInvalidGeometry indicates a geometry that cannot take part in topology.
type ErrInvalidGeometry struct {
	Kind   GeometryKind
	Reason string
}

func (e *ErrInvalidGeometry) Error() string {
	if e.Kind != 0 {
		return fmt.Sprintf("invalid geometry (%v): %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("invalid geometry: %s", e.Reason)
}
