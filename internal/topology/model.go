package topology

import (
	"fmt"

	"github.com/beetlebugorg/cadastral/internal/geom"
	"github.com/beetlebugorg/cadastral/internal/index"
)

// Map is the topology of one cadastral map: its features, the dividers
// derived from them, the polygons and islands traced from the dividers and
// the spatial index over all of it.
//
// A Map is not safe for concurrent use.
type Map struct {
	opts     MapOptions
	idx      *index.Index
	features map[string]Feature
	lineSeq  uint64
	ringSeq  int
}

// NewMap creates an empty map.
func NewMap(opts MapOptions) *Map {
	return &Map{
		opts:     opts,
		idx:      index.New(),
		features: make(map[string]Feature),
	}
}

// Index returns the map's spatial index.
func (m *Map) Index() *index.Index { return m.idx }

// Feature returns a feature by ID.
func (m *Map) Feature(id string) (Feature, bool) {
	f, ok := m.features[id]
	return f, ok
}

// Point returns a point feature by ID, or nil.
func (m *Map) Point(id string) *PointFeature {
	p, _ := m.features[id].(*PointFeature)
	return p
}

// Line returns a line feature by ID, or nil.
func (m *Map) Line(id string) *LineFeature {
	l, _ := m.features[id].(*LineFeature)
	return l
}

// Text returns a text feature by ID, or nil.
func (m *Map) Text(id string) *TextFeature {
	t, _ := m.features[id].(*TextFeature)
	return t
}

// Insert adds a feature of any kind.
func (m *Map) Insert(f Feature) error {
	switch v := f.(type) {
	case *PointFeature:
		return m.AddPoint(v)
	case *LineFeature:
		return m.AddLine(v)
	case *TextFeature:
		return m.AddText(v)
	default:
		return fmt.Errorf("cannot insert %T", f)
	}
}

// Delete removes a feature of any kind.
func (m *Map) Delete(f Feature) error {
	switch f.(type) {
	case *PointFeature:
		return m.RemovePoint(f.ID())
	case *LineFeature:
		return m.RemoveLine(f.ID())
	case *TextFeature:
		return m.RemoveText(f.ID())
	default:
		return fmt.Errorf("cannot delete %T", f)
	}
}

func (m *Map) register(f Feature) error {
	if _, ok := m.features[f.ID()]; ok {
		return &ErrDuplicateFeature{ID: f.ID()}
	}
	if err := m.idx.Add(f); err != nil {
		return fmt.Errorf("index %q: %w", f.ID(), err)
	}
	m.features[f.ID()] = f
	return nil
}

func (m *Map) unregister(f Feature) {
	m.idx.Remove(f)
	delete(m.features, f.ID())
}

// AddPoint adds a point feature. Lines passing through the point are
// sectioned there.
func (m *Map) AddPoint(p *PointFeature) error {
	if err := m.register(p); err != nil {
		return err
	}

	win := p.at.Extent().Expand(geom.XYRes)
	for _, item := range m.idx.Items(&win, index.Line) {
		l := item.(*LineFeature)
		g := l.geometry
		if p.at.IsCoincident(g.Start()) || p.at.IsCoincident(g.End()) {
			continue
		}
		if g.Distance(p.at) >= geom.XYRes {
			continue
		}
		if err := m.resection(l); err != nil {
			return err
		}
	}
	return nil
}

// RemovePoint removes a point feature. It fails while any line starts or
// ends at the point. Lines sectioned at the point are sectioned again.
func (m *Map) RemovePoint(id string) error {
	p := m.Point(id)
	if p == nil {
		return &ErrUnknownFeature{ID: id}
	}
	if n := p.endsHere(); n > 0 {
		return &ErrFeatureInUse{ID: id, Lines: n}
	}

	markTerminal(p)
	lines := append([]*LineFeature(nil), p.lines...)
	m.unregister(p)
	for _, l := range lines {
		if err := m.resection(l); err != nil {
			return err
		}
	}
	return nil
}

// AddLine adds a line feature between two persistent terminals already in
// the map. The line is sectioned wherever it meets other lines or points,
// and so is every line it crosses.
//
// A line that cannot be sectioned is taken out of the map again before the
// error is returned. If a crossed line cannot be sectioned, the new line
// stays and the caller must roll the edit back.
func (m *Map) AddLine(l *LineFeature) error {
	from, ok := l.from.(attachable)
	if !ok {
		return fmt.Errorf("add line %q: %w", l.id, ErrFloatingTerminal)
	}
	to, ok := l.to.(attachable)
	if !ok {
		return fmt.Errorf("add line %q: %w", l.id, ErrFloatingTerminal)
	}
	for _, t := range []attachable{from, to} {
		if !m.idx.Contains(t) {
			return fmt.Errorf("add line %q: terminal at %v: %w", l.id, t.Position(), ErrFloatingTerminal)
		}
	}
	if m.opts.ValidateGeometry {
		if err := geom.Validate(l.geometry); err != nil {
			return fmt.Errorf("add line %q: %w", l.id, err)
		}
	}

	if err := m.attachLine(l, from, to); err != nil {
		return err
	}

	f, err := m.find(l)
	if err != nil {
		m.discardLine(l)
		return fmt.Errorf("add line %q: %w", l.id, err)
	}
	for _, r := range f.Results() {
		other, ok := r.Other.(*LineFeature)
		if !ok || !r.IsSplitOn(other.geometry) {
			continue
		}
		if err := m.resection(other); err != nil {
			return err
		}
	}
	return nil
}

// attachLine registers a line and attaches it whole to its terminals.
func (m *Map) attachLine(l *LineFeature, from, to attachable) error {
	if err := m.register(l); err != nil {
		return err
	}
	m.lineSeq++
	l.seq = m.lineSeq
	l.cuts = nil
	l.dividers = []Divider{l.newDivider(l.from, l.to, l.geometry, false, false)}

	from.attach(l)
	to.attach(l)
	markTerminal(from)
	markTerminal(to)
	return nil
}

// discardLine undoes attachLine for a line that could not be sectioned.
// Polygons it marked deleted stay marked and are traced again by the next
// build.
func (m *Map) discardLine(l *LineFeature) {
	cuts := l.detachAll()
	m.unregister(l)
	m.prune(cuts)
}

// RemoveLine removes a line feature. Lines it crossed are sectioned again,
// and intersections left with no lines are dropped.
func (m *Map) RemoveLine(id string) error {
	l := m.Line(id)
	if l == nil {
		return &ErrUnknownFeature{ID: id}
	}

	f := FindIntersections(m.idx, l, false)
	markTerminal(l.from)
	markTerminal(l.to)
	cuts := l.detachAll()
	m.unregister(l)
	m.prune(cuts)

	for _, r := range f.Results() {
		if other, ok := r.Other.(*LineFeature); ok {
			if err := m.resection(other); err != nil {
				return err
			}
		}
	}
	for _, t := range []Terminal{l.from, l.to} {
		if x, ok := t.(*Intersection); ok {
			m.prune([]attachable{x})
		}
	}
	return nil
}

// AddText adds a text feature. It is matched to a polygon by the next
// build.
func (m *Map) AddText(t *TextFeature) error {
	return m.register(t)
}

// RemoveText removes a text feature, releasing any polygon it labels.
func (m *Map) RemoveText(id string) error {
	t := m.Text(id)
	if t == nil {
		return &ErrUnknownFeature{ID: id}
	}
	if p := t.container; p != nil && p.label == t {
		p.label = nil
	}
	t.container = nil
	m.unregister(t)
	return nil
}

// resection recomputes where a line is cut and rebuilds its dividers.
func (m *Map) resection(l *LineFeature) error {
	_, err := m.find(l)
	return err
}

// find intersects a line with the map and sections it accordingly. The
// finder is returned so callers can reach the lines it met.
//
// Where two lines overlap, the line added later covers the overlap with
// overlap dividers and the earlier line keeps bounding polygons.
func (m *Map) find(l *LineFeature) (*IntersectionFinder, error) {
	f := FindIntersections(m.idx, l, false)

	var cuts []attachable
	for _, p := range f.SplitPositions() {
		t, err := m.terminalAt(p)
		if err != nil {
			return nil, err
		}
		cuts = append(cuts, t)
	}

	var overlaps []span
	for _, r := range f.Results() {
		other, ok := r.Other.(*LineFeature)
		if !ok || other.seq > l.seq {
			continue
		}
		for _, d := range r.Data {
			if !d.Graze {
				continue
			}
			a, b := l.geometry.LengthAt(d.P1), l.geometry.LengthAt(d.P2)
			if a > b {
				a, b = b, a
			}
			overlaps = append(overlaps, span{from: a, to: b})
		}
	}

	dropped, err := l.section(cuts, overlaps)
	if err != nil {
		m.prune(cuts)
		return nil, err
	}
	m.prune(dropped)

	if len(cuts) > 0 || len(overlaps) > 0 {
		Logger().Debug("line_split",
			"line", l.id,
			"sections", len(l.dividers),
			"overlaps", len(overlaps))
	}
	return f, nil
}

// terminalAt returns the persistent terminal at a position, creating and
// indexing an intersection if there is none. Point features win over
// intersections at the same position.
func (m *Map) terminalAt(p geom.Point) (attachable, error) {
	win := p.Extent()
	var found attachable
	m.idx.QueryWindow(&win, index.Point, func(item index.Spatial) bool {
		t, ok := item.(attachable)
		if !ok || !t.Position().IsCoincident(p) {
			return true
		}
		if _, isPoint := t.(*PointFeature); isPoint {
			found = t
			return false
		}
		if found == nil {
			found = t
		}
		return true
	})
	if found != nil {
		return found, nil
	}

	x := newIntersection(p)
	if err := m.idx.Add(x); err != nil {
		return nil, fmt.Errorf("index intersection at %v: %w", p, err)
	}
	return x, nil
}

// prune drops intersections no line meets any more.
func (m *Map) prune(ts []attachable) {
	for _, t := range ts {
		if x, ok := t.(*Intersection); ok && len(x.attached()) == 0 {
			m.idx.Remove(x)
		}
	}
}

// Clean removes every ring marked deleted from the index and detaches it
// from its dividers, islands and label. It returns the number of rings
// removed.
func (m *Map) Clean() int {
	var doomed []Ring
	m.idx.QueryWindow(nil, index.Polygon, func(item index.Spatial) bool {
		if r, ok := item.(Ring); ok && r.IsDeleted() {
			doomed = append(doomed, r)
		}
		return true
	})

	for _, r := range doomed {
		release(r)
		RemoveFromIndex(m.idx, r)
	}

	if len(doomed) > 0 {
		for _, item := range m.idx.Items(nil, index.Text) {
			t := item.(*TextFeature)
			if t.container != nil && t.container.IsDeleted() {
				t.container = nil
			}
		}
	}
	return len(doomed)
}

// Build cleans the topology, then builds polygons on every divider side
// that has none.
func (m *Map) Build(opts BuildOptions) (BuildResult, error) {
	m.Clean()
	return NewPolygonBuilder(m.idx, &m.ringSeq, opts).Build()
}

// Polygons returns the live polygons, in the order they were built.
func (m *Map) Polygons() []*Polygon {
	var out []*Polygon
	m.idx.QueryWindow(nil, index.Polygon, func(item index.Spatial) bool {
		if p, ok := item.(*Polygon); ok && !p.IsDeleted() {
			out = append(out, p)
		}
		return true
	})
	return out
}

// Islands returns the live islands, in the order they were built.
func (m *Map) Islands() []*Island {
	var out []*Island
	m.idx.QueryWindow(nil, index.Polygon, func(item index.Spatial) bool {
		if is, ok := item.(*Island); ok && !is.IsDeleted() {
			out = append(out, is)
		}
		return true
	})
	return out
}

// Lines returns the lines in the order they were added.
func (m *Map) Lines() []*LineFeature {
	var out []*LineFeature
	for _, item := range m.idx.Items(nil, index.Line) {
		out = append(out, item.(*LineFeature))
	}
	return out
}

// FindPolygon returns the polygon enclosing a position, or nil.
func (m *Map) FindPolygon(p geom.Point) *Polygon {
	return FindPointContainer(m.idx, p)
}

// Intersections previews what a geometry would meet if it were added to
// the map as a line. The map is not changed.
func (m *Map) Intersections(g geom.LineGeometry, wantEndEnd bool) (*IntersectionFinder, error) {
	from := NewFloatingTerminal(g.Start())
	to := NewFloatingTerminal(g.End())
	l, err := NewLineFeature("", from, to, g)
	if err != nil {
		return nil, err
	}
	return FindIntersections(m.idx, l, wantEndEnd), nil
}

// Check runs consistency checks over every divider, ring and text, and
// returns the problems of the requested types.
func (m *Map) Check(types CheckType) []Problem {
	var problems []Problem

	for _, l := range m.Lines() {
		for _, d := range l.dividers {
			if found := CheckDivider(d) & types; found != 0 {
				problems = append(problems, Problem{Types: found, Divider: d, Position: dividerPosition(d)})
			}
		}
	}

	m.idx.QueryWindow(nil, index.Polygon, func(item index.Spatial) bool {
		r := item.(Ring)
		if r.IsDeleted() {
			return true
		}
		if found := CheckRing(r) & types; found != 0 {
			problems = append(problems, Problem{Types: found, Ring: r, Position: r.EastPoint()})
		}
		return true
	})

	for _, item := range m.idx.Items(nil, index.Text) {
		t := item.(*TextFeature)
		if found := CheckText(t) & types; found != 0 {
			problems = append(problems, Problem{Types: found, Text: t, Position: t.ReferencePosition()})
		}
	}
	return problems
}

// Stats counts what the map holds.
type Stats struct {
	Points        int
	Lines         int
	Texts         int
	Intersections int
	Dividers      int
	Polygons      int
	Islands       int
	Floating      int
}

// Stats returns counts of the map's contents.
func (m *Map) Stats() Stats {
	var s Stats
	for _, item := range m.idx.Items(nil, index.Point) {
		switch item.(type) {
		case *PointFeature:
			s.Points++
		case *Intersection:
			s.Intersections++
		}
	}
	for _, l := range m.Lines() {
		s.Lines++
		s.Dividers += len(l.dividers)
	}
	s.Texts = m.idx.Count(index.Text)
	s.Polygons = len(m.Polygons())
	for _, is := range m.Islands() {
		s.Islands++
		if is.IsFloating() {
			s.Floating++
		}
	}
	return s
}
