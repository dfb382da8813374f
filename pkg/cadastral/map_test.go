package cadastral

import (
	"errors"
	"math"
	"testing"

	"github.com/beetlebugorg/cadastral/internal/topology"
	"github.com/cheekybits/is"
	geojson "github.com/paulmach/go.geojson"
)

func triangle(is is.I) *Map {
	m := NewMap()
	is.NoErr(m.AddPoint("a", 0, 0))
	is.NoErr(m.AddPoint("b", 10, 0))
	is.NoErr(m.AddPoint("c", 10, 10))
	is.NoErr(m.AddLine("ab", "a", "b"))
	is.NoErr(m.AddLine("bc", "b", "c"))
	is.NoErr(m.AddLine("ca", "c", "a"))
	return m
}

func TestMapBuild(t *testing.T) {
	is := is.New(t)
	m := triangle(is)
	is.NoErr(m.AddText("lot", "Lot 3", 7, 3))

	res, err := m.Build()
	is.NoErr(err)
	is.Equal(res.Polygons, 1)
	is.Equal(res.Labels, 1)

	p, ok := m.FindPolygon(7, 3)
	is.True(ok)
	is.Equal(p.Label, "Lot 3")
	is.True(math.Abs(p.Area-50) < 1e-9)

	_, ok = m.FindPolygon(3, 7)
	is.False(ok)
}

func TestMapRemove(t *testing.T) {
	is := is.New(t)
	m := triangle(is)
	_, err := m.Build()
	is.NoErr(err)

	var inUse *topology.ErrFeatureInUse
	is.True(errors.As(m.Remove("a"), &inUse))

	is.NoErr(m.Remove("ca"))
	_, err = m.Build()
	is.NoErr(err)
	is.Equal(len(m.Polygons()), 0)

	var unknown *topology.ErrUnknownFeature
	is.True(errors.As(m.Remove("ca"), &unknown))

	var notPoint *ErrNotPoint
	is.True(errors.As(m.AddLine("x", "ab", "b"), &notPoint))
}

func TestMapCheck(t *testing.T) {
	is := is.New(t)
	m := triangle(is)
	is.NoErr(m.AddPoint("d", 20, 20))
	is.NoErr(m.AddLine("cd", "c", "d"))
	_, err := m.Build()
	is.NoErr(err)

	problems := m.Check(CheckDangle)
	is.Equal(len(problems), 1)
	is.Equal(problems[0].Feature, "cd")
	is.Equal(problems[0].Types, CheckDangle)

	data, err := ProblemsGeoJSON(problems)
	is.NoErr(err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	is.NoErr(err)
	is.Equal(len(fc.Features), 1)
	types, err := fc.Features[0].PropertyString("types")
	is.NoErr(err)
	is.Equal(types, "Dangle")

	// The triangle has no label
	is.Equal(len(m.Check(CheckNoLabel)), 1)
}

func TestParseCheckTypes(t *testing.T) {
	is := is.New(t)
	types, unknown := ParseCheckTypes("dangle,bridge")
	is.Equal(types, CheckDangle|CheckBridge)
	is.Equal(len(unknown), 0)
}
