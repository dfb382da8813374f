package topology

import (
	"errors"
	"fmt"
)

// ErrOverlapBoundary indicates an attempt to make an overlap divider bound a ring
type ErrOverlapBoundary struct {
	Line string
}

func (e *ErrOverlapBoundary) Error() string {
	return fmt.Sprintf("line %q: overlap dividers cannot bound polygons", e.Line)
}

// ErrWrongContainer indicates an island that is too big for the polygon claiming it
type ErrWrongContainer struct {
	Polygon   int
	Island    int
	Shortfall float64 // How far the polygon's net area would go negative
}

func (e *ErrWrongContainer) Error() string {
	return fmt.Sprintf("polygon %d cannot contain island %d: net area would be %.6f",
		e.Polygon, e.Island, -e.Shortfall)
}

// ErrBuildStatus indicates a divider side that already refers to another ring
type ErrBuildStatus struct {
	Line string
	Side string
}

func (e *ErrBuildStatus) Error() string {
	return fmt.Sprintf("line %q: %s side already belongs to a ring", e.Line, e.Side)
}

// ErrUnknownFeature indicates a reference to a feature that is not in the map
type ErrUnknownFeature struct {
	ID string
}

func (e *ErrUnknownFeature) Error() string {
	return fmt.Sprintf("feature %q is not in the map", e.ID)
}

// ErrDuplicateFeature indicates a feature ID that is already taken
type ErrDuplicateFeature struct {
	ID string
}

func (e *ErrDuplicateFeature) Error() string {
	return fmt.Sprintf("feature %q already exists", e.ID)
}

// ErrFeatureInUse indicates a point that lines still end at
type ErrFeatureInUse struct {
	ID    string
	Lines int
}

func (e *ErrFeatureInUse) Error() string {
	return fmt.Sprintf("point %q is still the end of %d line(s)", e.ID, e.Lines)
}

var (
	// ErrOpenRing indicates a face walk that never returned to its start.
	ErrOpenRing = errors.New("ring does not close")

	// ErrFloatingTerminal indicates a line whose end is not a persistent terminal.
	ErrFloatingTerminal = errors.New("line must end at persistent terminals")
)
