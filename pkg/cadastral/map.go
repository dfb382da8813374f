package cadastral

import (
	"fmt"
	"log/slog"

	"github.com/beetlebugorg/cadastral/internal/geom"
	"github.com/beetlebugorg/cadastral/internal/topology"
)

// CheckType is a bit mask of consistency problems.
type CheckType = topology.CheckType

const (
	CheckSmallLine         = topology.CheckSmallLine
	CheckOverlap           = topology.CheckOverlap
	CheckDangle            = topology.CheckDangle
	CheckFloating          = topology.CheckFloating
	CheckBridge            = topology.CheckBridge
	CheckSmallPolygon      = topology.CheckSmallPolygon
	CheckNotEnclosed       = topology.CheckNotEnclosed
	CheckNoLabel           = topology.CheckNoLabel
	CheckNoPolygonForLabel = topology.CheckNoPolygonForLabel
	CheckMultiLabel        = topology.CheckMultiLabel
	CheckAll               = topology.CheckAll
)

// ParseCheckTypes parses a comma separated list of check names such as
// "dangle,overlap" or "all". Unknown names are returned separately.
func ParseCheckTypes(s string) (CheckType, []string) {
	return topology.ParseCheckTypes(s)
}

// SetLogger configures the logger used while building topology. Pass nil
// to silence it again.
func SetLogger(l *slog.Logger) {
	topology.SetLogger(l)
}

// Position is a ground position in metres.
type Position struct {
	X, Y float64
}

// Polygon describes one built polygon.
type Polygon struct {
	ID      int
	Area    float64 // Area inside the outer boundary
	NetArea float64 // Area less the area of every island
	Label   string  // Label text, empty when unlabelled
	LabelID string

	Outline []Position   // Outer boundary, anticlockwise, closed
	Holes   [][]Position // Island boundaries, clockwise, closed
}

// Problem is one consistency problem.
type Problem struct {
	Types   CheckType
	Feature string // Line or text the problem is with, if any
	Ring    int    // Polygon or island the problem is with, if any
	X, Y    float64
}

// BuildResult summarizes a build.
type BuildResult = topology.BuildResult

// Stats counts what a map holds.
type Stats = topology.Stats

// Map is a cadastral map. It is not safe for concurrent use.
type Map struct {
	internal *topology.Map
}

// NewMap creates an empty map with default options.
func NewMap() *Map {
	return NewMapWithOptions(DefaultMapOptions())
}

// NewMapWithOptions creates an empty map.
func NewMapWithOptions(opts MapOptions) *Map {
	return &Map{
		internal: topology.NewMap(topology.MapOptions{
			ValidateGeometry: opts.ValidateGeometry,
		}),
	}
}

// AddPoint adds a surveyed point. A point on an existing line splits it.
func (m *Map) AddPoint(id string, x, y float64) error {
	return m.internal.AddPoint(topology.NewPointFeature(id, geom.NewPoint(x, y)))
}

// AddLine adds a straight line between two points already in the map.
func (m *Map) AddLine(id, from, to string) error {
	return m.addLine(id, from, to, func(a, b geom.Point) (geom.LineGeometry, error) {
		return geom.NewSegment(a, b), nil
	})
}

// AddPolyline adds a line between two points passing through the given
// vertices in order.
func (m *Map) AddPolyline(id, from, to string, via []Position) error {
	return m.addLine(id, from, to, func(a, b geom.Point) (geom.LineGeometry, error) {
		pts := make([]geom.Point, 0, len(via)+2)
		pts = append(pts, a)
		for _, v := range via {
			pts = append(pts, geom.NewPoint(v.X, v.Y))
		}
		pts = append(pts, b)
		if len(pts) == 2 {
			return geom.NewSegment(a, b), nil
		}
		return geom.NewMultiSegment(pts)
	})
}

// AddArc adds a circular arc between two points about a centre.
func (m *Map) AddArc(id, from, to string, center Position, clockwise bool) error {
	return m.addLine(id, from, to, func(a, b geom.Point) (geom.LineGeometry, error) {
		return geom.NewArc(geom.NewPoint(center.X, center.Y), a, b, clockwise), nil
	})
}

func (m *Map) addLine(id, from, to string, shape func(a, b geom.Point) (geom.LineGeometry, error)) error {
	a, err := m.point(from)
	if err != nil {
		return fmt.Errorf("line %q: %w", id, err)
	}
	b, err := m.point(to)
	if err != nil {
		return fmt.Errorf("line %q: %w", id, err)
	}
	g, err := shape(a.Position(), b.Position())
	if err != nil {
		return fmt.Errorf("line %q: %w", id, err)
	}
	l, err := topology.NewLineFeature(id, a, b, g)
	if err != nil {
		return err
	}
	return m.internal.AddLine(l)
}

func (m *Map) point(id string) (*topology.PointFeature, error) {
	f, ok := m.internal.Feature(id)
	if !ok {
		return nil, &topology.ErrUnknownFeature{ID: id}
	}
	p, ok := f.(*topology.PointFeature)
	if !ok {
		return nil, &ErrNotPoint{ID: id}
	}
	return p, nil
}

// AddText adds a topological text label at a position.
func (m *Map) AddText(id, text string, x, y float64) error {
	return m.internal.AddText(topology.NewTextFeature(id, text, geom.NewPoint(x, y)))
}

// AddNote adds text that never labels a polygon.
func (m *Map) AddNote(id, text string, x, y float64) error {
	t := topology.NewTextFeature(id, text, geom.NewPoint(x, y))
	t.SetTopological(false)
	return m.internal.AddText(t)
}

// Remove deletes a feature by ID. Points cannot be removed while lines end
// at them.
func (m *Map) Remove(id string) error {
	f, ok := m.internal.Feature(id)
	if !ok {
		return &topology.ErrUnknownFeature{ID: id}
	}
	return m.internal.Delete(f)
}

// Build builds polygons with default options.
func (m *Map) Build() (BuildResult, error) {
	return m.BuildWithOptions(DefaultBuildOptions())
}

// BuildWithOptions builds polygons on every line side that has none.
func (m *Map) BuildWithOptions(opts BuildOptions) (BuildResult, error) {
	return m.internal.Build(topology.BuildOptions{
		BuildIslands: opts.BuildIslands,
		BuildLabels:  opts.BuildLabels,
	})
}

// Polygons returns every built polygon.
func (m *Map) Polygons() []Polygon {
	polys := m.internal.Polygons()
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		out[i] = convertPolygon(p)
	}
	return out
}

// FindPolygon returns the polygon enclosing a position.
func (m *Map) FindPolygon(x, y float64) (Polygon, bool) {
	p := m.internal.FindPolygon(geom.NewPoint(x, y))
	if p == nil {
		return Polygon{}, false
	}
	return convertPolygon(p), true
}

// Check runs the requested consistency checks.
func (m *Map) Check(types CheckType) []Problem {
	found := m.internal.Check(types)
	out := make([]Problem, len(found))
	for i, p := range found {
		out[i] = Problem{Types: p.Types, X: p.Position.X(), Y: p.Position.Y()}
		switch {
		case p.Divider != nil:
			out[i].Feature = p.Divider.Line().ID()
		case p.Ring != nil:
			out[i].Ring = p.Ring.ID()
		case p.Text != nil:
			out[i].Feature = p.Text.ID()
		}
	}
	return out
}

// Stats returns counts of the map's contents.
func (m *Map) Stats() Stats {
	return m.internal.Stats()
}

func convertPolygon(p *topology.Polygon) Polygon {
	out := Polygon{
		ID:      p.ID(),
		Area:    p.Area(),
		NetArea: p.AreaExcludingIslands(),
		Outline: reversed(p.Outline()),
	}
	if t := p.Label(); t != nil {
		out.Label = t.Text()
		out.LabelID = t.ID()
	}
	for _, is := range p.Islands() {
		out.Holes = append(out.Holes, reversed(is.Outline()))
	}
	return out
}

// reversed converts boundary positions, reversing their order. Polygons
// are traced clockwise and islands anticlockwise.
func reversed(pts []geom.Point) []Position {
	out := make([]Position, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = Position{X: p.X(), Y: p.Y()}
	}
	return out
}
