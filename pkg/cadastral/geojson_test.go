package cadastral

import (
	"errors"
	"math"
	"testing"

	"github.com/cheekybits/is"
	geojson "github.com/paulmach/go.geojson"
)

const parcels = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": "sw", "geometry": {"type": "Point", "coordinates": [0, 0]}, "properties": {}},
    {"type": "Feature", "id": "se", "geometry": {"type": "Point", "coordinates": [10, 0]}, "properties": {}},
    {"type": "Feature", "id": "ne", "geometry": {"type": "Point", "coordinates": [10, 10]}, "properties": {}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [0, 10]}, "properties": {"id": "nw"}},
    {"type": "Feature", "id": "south", "geometry": {"type": "LineString", "coordinates": [[0, 0], [10, 0]]},
     "properties": {"from": "sw", "to": "se"}},
    {"type": "Feature", "id": "east", "geometry": {"type": "LineString", "coordinates": [[10, 0], [12, 5], [10, 10]]},
     "properties": {"from": "se", "to": "ne"}},
    {"type": "Feature", "id": "north", "geometry": {"type": "LineString", "coordinates": [[10, 10], [0, 10]]},
     "properties": {"from": "ne", "to": "nw"}},
    {"type": "Feature", "id": "west", "geometry": {"type": "LineString", "coordinates": [[0, 10], [0, 0]]},
     "properties": {"from": "nw", "to": "sw"}},
    {"type": "Feature", "id": "lot", "geometry": {"type": "Point", "coordinates": [2, 2]},
     "properties": {"text": "Lot 12"}},
    {"type": "Feature", "id": "h1", "geometry": {"type": "Point", "coordinates": [4, 4]}, "properties": {}},
    {"type": "Feature", "id": "h2", "geometry": {"type": "Point", "coordinates": [6, 4]}, "properties": {}},
    {"type": "Feature", "id": "hole-base", "geometry": {"type": "LineString", "coordinates": [[4, 4], [6, 4]]},
     "properties": {"from": "h1", "to": "h2"}},
    {"type": "Feature", "id": "hole-arc", "geometry": {"type": "LineString", "coordinates": [[6, 4], [4, 4]]},
     "properties": {"from": "h2", "to": "h1", "center": [5, 4], "clockwise": false}},
    {"type": "Feature", "id": "note", "geometry": {"type": "Point", "coordinates": [8, 8]},
     "properties": {"text": "survey 1921", "topological": false}}
  ]
}`

func TestLoadGeoJSON(t *testing.T) {
	is := is.New(t)

	m, err := LoadGeoJSON([]byte(parcels), DefaultLoadOptions())
	is.NoErr(err)

	st := m.Stats()
	is.Equal(st.Points, 6)
	is.Equal(st.Lines, 6)
	is.Equal(st.Texts, 2)
	is.Equal(st.Polygons, 2)
	is.Equal(st.Islands, 2)

	// The east side bulges out by a triangle of area 10
	p, ok := m.FindPolygon(2, 2)
	is.True(ok)
	is.True(math.Abs(p.Area-110) < 1e-6)
	is.True(math.Abs(p.NetArea-(110-math.Pi/2)) < 1e-6)
	is.Equal(p.Label, "Lot 12")
	is.Equal(p.LabelID, "lot")
	is.Equal(len(p.Holes), 1)
	is.Equal(p.Outline[0], p.Outline[len(p.Outline)-1])

	// Inside the half disc
	inner, ok := m.FindPolygon(5, 4.5)
	is.True(ok)
	is.NotEqual(inner.ID, p.ID)
	is.True(math.Abs(inner.Area-math.Pi/2) < 1e-6)
}

func TestPolygonsGeoJSON(t *testing.T) {
	is := is.New(t)

	m, err := LoadGeoJSON([]byte(parcels), DefaultLoadOptions())
	is.NoErr(err)

	data, err := m.PolygonsGeoJSON()
	is.NoErr(err)

	fc, err := geojson.UnmarshalFeatureCollection(data)
	is.NoErr(err)
	is.Equal(len(fc.Features), 2)

	var labelled *geojson.Feature
	for _, f := range fc.Features {
		is.Equal(f.Geometry.Type, geojson.GeometryPolygon)
		if label, err := f.PropertyString("label"); err == nil && label == "Lot 12" {
			labelled = f
		}
	}
	is.NotNil(labelled)
	is.Equal(len(labelled.Geometry.Polygon), 2)

	area, err := labelled.PropertyFloat64("area")
	is.NoErr(err)
	is.True(math.Abs(area-110) < 1e-6)

	// Outer ring anticlockwise: positive shoelace sum
	ring := labelled.Geometry.Polygon[0]
	sum := 0.0
	for i := 1; i < len(ring); i++ {
		sum += ring[i-1][0]*ring[i][1] - ring[i][0]*ring[i-1][1]
	}
	is.True(sum > 0)
}

func TestLoadGeoJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(is is.I, err error)
	}{
		{
			name:  "not json",
			input: `{"type":`,
			check: func(is is.I, err error) { is.Err(err) },
		},
		{
			name: "line without from",
			input: `{"type": "FeatureCollection", "features": [
				{"type": "Feature", "id": "a", "geometry": {"type": "Point", "coordinates": [0, 0]}, "properties": {}},
				{"type": "Feature", "id": "l", "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 0]]},
				 "properties": {"to": "a"}}]}`,
			check: func(is is.I, err error) {
				var missing *ErrMissingProperty
				is.True(errors.As(err, &missing))
				is.Equal(missing.Property, "from")
				is.Equal(missing.Feature, 1)
			},
		},
		{
			name: "polygon input",
			input: `{"type": "FeatureCollection", "features": [
				{"type": "Feature", "id": "p", "geometry": {"type": "Polygon",
				 "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 0]]]}, "properties": {}}]}`,
			check: func(is is.I, err error) {
				var unsupported *ErrUnsupportedGeometry
				is.True(errors.As(err, &unsupported))
				is.Equal(unsupported.Type, "Polygon")
			},
		},
		{
			name: "line to a missing point",
			input: `{"type": "FeatureCollection", "features": [
				{"type": "Feature", "id": "a", "geometry": {"type": "Point", "coordinates": [0, 0]}, "properties": {}},
				{"type": "Feature", "id": "l", "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 0]]},
				 "properties": {"from": "a", "to": "b"}}]}`,
			check: func(is is.I, err error) { is.Err(err) },
		},
		{
			name: "point without id",
			input: `{"type": "FeatureCollection", "features": [
				{"type": "Feature", "geometry": {"type": "Point", "coordinates": [0, 0]}, "properties": {}}]}`,
			check: func(is is.I, err error) {
				var missing *ErrMissingProperty
				is.True(errors.As(err, &missing))
				is.Equal(missing.Property, "id")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadGeoJSON([]byte(tt.input), DefaultLoadOptions())
			tt.check(is.New(t), err)
		})
	}
}
