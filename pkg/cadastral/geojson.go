package cadastral

import (
	"fmt"
	"os"

	"github.com/beetlebugorg/cadastral/internal/geom"
	"github.com/beetlebugorg/cadastral/internal/topology"
	geojson "github.com/paulmach/go.geojson"
)

// LoadGeoJSONFile reads a map from a GeoJSON file.
func LoadGeoJSONFile(filename string, opts LoadOptions) (*Map, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	m, err := LoadGeoJSON(data, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}
	return m, nil
}

// LoadGeoJSON reads a map from a GeoJSON feature collection.
//
// Points are added first so lines can refer to them by ID, then lines,
// then text. The map is built afterwards when opts.Build is set.
func LoadGeoJSON(data []byte, opts LoadOptions) (*Map, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse geojson: %w", err)
	}

	m := NewMapWithOptions(opts.Map)
	var lines, texts []int
	for i, f := range fc.Features {
		if f.Geometry == nil {
			return nil, &ErrUnsupportedGeometry{Feature: i, Type: "null"}
		}
		switch f.Geometry.Type {
		case geojson.GeometryPoint:
			if _, ok := f.Properties["text"]; ok {
				texts = append(texts, i)
				continue
			}
			if err := m.loadPoint(i, f); err != nil {
				return nil, err
			}
		case geojson.GeometryLineString:
			lines = append(lines, i)
		default:
			return nil, &ErrUnsupportedGeometry{Feature: i, Type: string(f.Geometry.Type)}
		}
	}

	for _, i := range lines {
		if err := m.loadLine(i, fc.Features[i]); err != nil {
			return nil, err
		}
	}
	for _, i := range texts {
		if err := m.loadText(i, fc.Features[i]); err != nil {
			return nil, err
		}
	}

	if opts.Build {
		if _, err := m.BuildWithOptions(opts.BuildOptions); err != nil {
			return nil, fmt.Errorf("build: %w", err)
		}
	}
	return m, nil
}

func featureID(i int, f *geojson.Feature) (string, error) {
	if f.ID != nil {
		return fmt.Sprint(f.ID), nil
	}
	id, err := f.PropertyString("id")
	if err != nil || id == "" {
		return "", &ErrMissingProperty{Feature: i, Property: "id"}
	}
	return id, nil
}

// position reads an [x, y] pair from a decoded property.
func position(v interface{}) (Position, bool) {
	xs, ok := v.([]interface{})
	if !ok || len(xs) < 2 {
		return Position{}, false
	}
	x, okX := xs[0].(float64)
	y, okY := xs[1].(float64)
	return Position{X: x, Y: y}, okX && okY
}

func (m *Map) loadPoint(i int, f *geojson.Feature) error {
	id, err := featureID(i, f)
	if err != nil {
		return err
	}
	c := f.Geometry.Point
	if len(c) < 2 {
		return fmt.Errorf("feature %d: point has %d coordinates", i, len(c))
	}
	if err := m.AddPoint(id, c[0], c[1]); err != nil {
		return fmt.Errorf("feature %d: %w", i, err)
	}
	return nil
}

func (m *Map) loadLine(i int, f *geojson.Feature) error {
	id, err := featureID(i, f)
	if err != nil {
		return err
	}
	from, err := f.PropertyString("from")
	if err != nil {
		return &ErrMissingProperty{Feature: i, Property: "from"}
	}
	to, err := f.PropertyString("to")
	if err != nil {
		return &ErrMissingProperty{Feature: i, Property: "to"}
	}

	coords := f.Geometry.LineString
	if len(coords) < 2 {
		return fmt.Errorf("feature %d: line has %d positions", i, len(coords))
	}

	if v, ok := f.Properties["center"]; ok {
		center, ok := position(v)
		if !ok || len(coords) != 2 {
			return fmt.Errorf("feature %d: an arc needs a [x, y] center and two positions", i)
		}
		clockwise, _ := f.PropertyBool("clockwise")
		err = m.AddArc(id, from, to, center, clockwise)
	} else {
		via := make([]Position, 0, len(coords)-2)
		for _, c := range coords[1 : len(coords)-1] {
			via = append(via, Position{X: c[0], Y: c[1]})
		}
		err = m.AddPolyline(id, from, to, via)
	}
	if err != nil {
		return fmt.Errorf("feature %d: %w", i, err)
	}
	return nil
}

func (m *Map) loadText(i int, f *geojson.Feature) error {
	id, err := featureID(i, f)
	if err != nil {
		return err
	}
	text, err := f.PropertyString("text")
	if err != nil {
		return &ErrMissingProperty{Feature: i, Property: "text"}
	}
	c := f.Geometry.Point
	if len(c) < 2 {
		return fmt.Errorf("feature %d: point has %d coordinates", i, len(c))
	}

	t := topology.NewTextFeature(id, text, geom.NewPoint(c[0], c[1]))
	if topo, err := f.PropertyBool("topological"); err == nil {
		t.SetTopological(topo)
	}
	if v, ok := f.Properties["ref"]; ok {
		ref, ok := position(v)
		if !ok {
			return fmt.Errorf("feature %d: ref must be [x, y]", i)
		}
		t.SetReferencePosition(geom.NewPoint(ref.X, ref.Y))
	}
	if err := m.internal.AddText(t); err != nil {
		return fmt.Errorf("feature %d: %w", i, err)
	}
	return nil
}

func coordinates(pts []Position) [][]float64 {
	out := make([][]float64, len(pts))
	for i, p := range pts {
		out[i] = []float64{p.X, p.Y}
	}
	return out
}

// PolygonsGeoJSON writes every polygon as a GeoJSON feature collection. Each
// feature is a Polygon of the outer boundary followed by one ring per
// island, with area, net_area and label properties.
func (m *Map) PolygonsGeoJSON() ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, p := range m.Polygons() {
		rings := [][][]float64{coordinates(p.Outline)}
		for _, h := range p.Holes {
			rings = append(rings, coordinates(h))
		}

		f := geojson.NewFeature(geojson.NewPolygonGeometry(rings))
		f.ID = p.ID
		f.SetProperty("area", p.Area)
		f.SetProperty("net_area", p.NetArea)
		if p.LabelID != "" {
			f.SetProperty("label", p.Label)
			f.SetProperty("label_id", p.LabelID)
		}
		fc.AddFeature(f)
	}
	return fc.MarshalJSON()
}

// ProblemsGeoJSON writes consistency problems as GeoJSON points with a
// types property listing what was found.
func ProblemsGeoJSON(problems []Problem) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, p := range problems {
		f := geojson.NewPointFeature([]float64{p.X, p.Y})
		f.SetProperty("types", p.Types.String())
		if p.Feature != "" {
			f.SetProperty("feature", p.Feature)
		}
		if p.Ring != 0 {
			f.SetProperty("ring", p.Ring)
		}
		fc.AddFeature(f)
	}
	return fc.MarshalJSON()
}
