package cadastral

import "fmt"

// ErrMissingProperty indicates a GeoJSON feature without a property it needs
type ErrMissingProperty struct {
	Feature  int
	Property string
}

func (e *ErrMissingProperty) Error() string {
	return fmt.Sprintf("feature %d: missing %q property", e.Feature, e.Property)
}

// ErrUnsupportedGeometry indicates a GeoJSON geometry that has no map equivalent
type ErrUnsupportedGeometry struct {
	Feature int
	Type    string
}

func (e *ErrUnsupportedGeometry) Error() string {
	return fmt.Sprintf("feature %d: unsupported geometry type %s", e.Feature, e.Type)
}

// ErrNotPoint indicates a line end that names something other than a point
type ErrNotPoint struct {
	ID string
}

func (e *ErrNotPoint) Error() string {
	return fmt.Sprintf("%q is not a point", e.ID)
}
