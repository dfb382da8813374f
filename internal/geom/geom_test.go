package geom

import (
	"math"
	"testing"
)

func pt(x, y float64) Point { return NewPoint(x, y) }

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func mustMulti(t *testing.T, pts ...Point) *MultiSegment {
	t.Helper()
	m, err := NewMultiSegment(pts)
	if err != nil {
		t.Fatalf("NewMultiSegment() error = %v", err)
	}
	return m
}

// TestPointRounding tests micron rounding and coincidence
func TestPointRounding(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want bool
	}{
		{"identical", pt(1, 2), pt(1, 2), true},
		{"sub-micron difference", pt(1.0000001, 2), pt(1, 2), true},
		{"one micron apart", pt(1.000001, 2), pt(1, 2), false},
		{"different northing", pt(1, 2), pt(1, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IsCoincident(tt.b); got != tt.want {
				t.Errorf("IsCoincident() = %v, want %v", got, tt.want)
			}
		})
	}

	p := pt(3.5, -2.25)
	if p.Easting() != 3500000 || p.Northing() != -2250000 {
		t.Errorf("microns = (%d, %d), want (3500000, -2250000)", p.Easting(), p.Northing())
	}
}

// TestWindow tests window set operations
func TestWindow(t *testing.T) {
	a := NewWindow(pt(0, 0), pt(10, 10))
	b := NewWindow(pt(5, 5), pt(15, 15))
	c := NewWindow(pt(2, 2), pt(8, 8))
	d := NewWindow(pt(20, 20), pt(30, 30))

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"overlapping windows intersect", a.Intersects(b), true},
		{"disjoint windows do not intersect", a.Intersects(d), false},
		{"inner window is enclosed", a.Encloses(c), true},
		{"overlapping window is not enclosed", a.Encloses(b), false},
		{"corner is contained", a.Contains(pt(10, 10)), true},
		{"outside point is not contained", a.Contains(pt(10.1, 10)), false},
		{"empty window intersects nothing", EmptyWindow().Intersects(a), false},
		{"empty window is empty", EmptyWindow().IsEmpty(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	u := EmptyWindow().Union(a).Union(d)
	if u.MinX != 0 || u.MinY != 0 || u.MaxX != 30 || u.MaxY != 30 {
		t.Errorf("Union() = %+v, want (0,0)-(30,30)", u)
	}
}

// TestSegment tests segment measurements
func TestSegment(t *testing.T) {
	s := NewSegment(pt(0, 0), pt(10, 0))

	if got := s.Length(); got != 10 {
		t.Errorf("Length() = %v, want 10", got)
	}
	if got := s.Distance(pt(4, 3)); !approx(got, 3, 1e-9) {
		t.Errorf("Distance() = %v, want 3", got)
	}
	if got := s.ClosestPoint(pt(4, 3)); !got.IsCoincident(pt(4, 0)) {
		t.Errorf("ClosestPoint() = %v, want (4, 0)", got)
	}
	if got := s.LengthAt(pt(4, 3)); !approx(got, 4, 1e-9) {
		t.Errorf("LengthAt() = %v, want 4", got)
	}
	if got := s.PointAt(7); !got.IsCoincident(pt(7, 0)) {
		t.Errorf("PointAt() = %v, want (7, 0)", got)
	}
	if got := NewSegment(pt(10, 0), pt(10, 10)).SignedArea(); got != -100 {
		t.Errorf("SignedArea() = %v, want -100", got)
	}
}

// TestSignedArea tests the sign convention for closed traversals
func TestSignedArea(t *testing.T) {
	tests := []struct {
		name string
		line LineGeometry
		want float64
	}{
		{
			name: "clockwise square",
			line: mustMulti(t, pt(0, 0), pt(0, 10), pt(10, 10), pt(10, 0), pt(0, 0)),
			want: 100,
		},
		{
			name: "anticlockwise square",
			line: mustMulti(t, pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10), pt(0, 0)),
			want: -100,
		},
		{
			name: "anticlockwise circle",
			line: NewArc(pt(0, 0), pt(5, 0), pt(5, 0), false),
			want: -25 * math.Pi,
		},
		{
			name: "clockwise circle",
			line: NewArc(pt(0, 0), pt(5, 0), pt(5, 0), true),
			want: 25 * math.Pi,
		},
		{
			name: "quarter arc",
			line: NewArc(pt(0, 0), pt(10, 0), pt(0, 10), false),
			want: -25 * math.Pi,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.line.SignedArea(); !approx(got, tt.want, 1e-6) {
				t.Errorf("SignedArea() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestArc tests arc measurements
func TestArc(t *testing.T) {
	a := NewArc(pt(0, 0), pt(10, 0), pt(0, 10), false)

	if got := a.Length(); !approx(got, 5*math.Pi, 1e-9) {
		t.Errorf("Length() = %v, want %v", got, 5*math.Pi)
	}
	w := a.Extent()
	if !approx(w.MinX, 0, 1e-9) || !approx(w.MinY, 0, 1e-9) || !approx(w.MaxX, 10, 1e-9) || !approx(w.MaxY, 10, 1e-9) {
		t.Errorf("Extent() = %+v, want (0,0)-(10,10)", w)
	}
	if got := a.EastPoint(); !got.IsCoincident(pt(10, 0)) {
		t.Errorf("EastPoint() = %v, want (10, 0)", got)
	}
	if got := a.Distance(pt(20, 20)); !approx(got, math.Hypot(20, 20)-10, 1e-9) {
		t.Errorf("Distance() = %v", got)
	}
	if got := a.Distance(pt(0, -5)); !approx(got, math.Hypot(10, 5), 1e-9) {
		t.Errorf("Distance() off the arc = %v, want distance to start", got)
	}
	if got := a.LengthAt(pt(0, 20)); !approx(got, 5*math.Pi, 1e-6) {
		t.Errorf("LengthAt() = %v, want full length", got)
	}

	// Clockwise half circle through the east point
	h := NewArc(pt(0, 0), pt(0, 5), pt(0, -5), true)
	if got := h.EastPoint(); !got.IsCoincident(pt(5, 0)) {
		t.Errorf("EastPoint() = %v, want (5, 0)", got)
	}
}

// TestCrossingsEast tests ray crossing counts
func TestCrossingsEast(t *testing.T) {
	circle := NewArc(pt(0, 0), pt(5, 0), pt(5, 0), false)
	square := mustMulti(t, pt(0, 0), pt(0, 10), pt(10, 10), pt(10, 0), pt(0, 0))

	tests := []struct {
		name string
		line LineGeometry
		p    Point
		want int
	}{
		{"circle centre", circle, pt(0, 0), 1},
		{"left of circle", circle, pt(-10, 0), 2},
		{"right of circle", circle, pt(10, 0), 0},
		{"above circle", circle, pt(0, 6), 0},
		{"square centre", square, pt(5, 5), 1},
		{"ray through vertex", square, pt(-5, 10), 0},
		{"left of square", square, pt(-5, 5), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.line.CrossingsEast(tt.p); got != tt.want {
				t.Errorf("CrossingsEast() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestIntersect tests intersections between every primitive pair
func TestIntersect(t *testing.T) {
	tests := []struct {
		name  string
		a, b  LineGeometry
		want  []Point
		graze bool
	}{
		{
			name: "crossing segments",
			a:    NewSegment(pt(0, 0), pt(10, 10)),
			b:    NewSegment(pt(0, 10), pt(10, 0)),
			want: []Point{pt(5, 5)},
		},
		{
			name: "collinear segments touching at one end",
			a:    NewSegment(pt(0, 0), pt(10, 0)),
			b:    NewSegment(pt(10, 0), pt(20, 0)),
			want: []Point{pt(10, 0)},
		},
		{
			name:  "collinear overlap",
			a:     NewSegment(pt(0, 0), pt(10, 0)),
			b:     NewSegment(pt(5, 0), pt(15, 0)),
			want:  []Point{pt(5, 0), pt(10, 0)},
			graze: true,
		},
		{
			name: "disjoint segments",
			a:    NewSegment(pt(0, 0), pt(10, 0)),
			b:    NewSegment(pt(0, 5), pt(10, 5)),
			want: nil,
		},
		{
			name: "segment through half circle",
			a:    NewSegment(pt(-10, 0), pt(10, 0)),
			b:    NewArc(pt(0, 0), pt(0, 5), pt(0, -5), true),
			want: []Point{pt(5, 0)},
		},
		{
			name: "segment through full circle",
			a:    NewSegment(pt(-10, 0), pt(10, 0)),
			b:    NewArc(pt(0, 0), pt(0, 5), pt(0, 5), false),
			want: []Point{pt(-5, 0), pt(5, 0)},
		},
		{
			name: "two circles",
			a:    NewArc(pt(0, 0), pt(5, 0), pt(5, 0), false),
			b:    NewArc(pt(6, 0), pt(11, 0), pt(11, 0), false),
			want: []Point{pt(3, 4), pt(3, -4)},
		},
		{
			name:  "arcs on the same circle",
			a:     NewArc(pt(0, 0), pt(10, 0), pt(-10, 0), false),
			b:     NewArc(pt(0, 0), pt(0, 10), pt(-10, 0), false),
			want:  []Point{pt(0, 10), pt(-10, 0)},
			graze: true,
		},
		{
			name: "chain crossing segment twice",
			a:    mustMulti(t, pt(0, 0), pt(5, 10), pt(10, 0)),
			b:    NewSegment(pt(0, 5), pt(10, 5)),
			want: []Point{pt(2.5, 5), pt(7.5, 5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intersect(tt.a, tt.b)
			if tt.graze {
				if len(got) != 1 || !got[0].Graze {
					t.Fatalf("Intersect() = %+v, want a single graze", got)
				}
				if !got[0].P1.IsCoincident(tt.want[0]) || !got[0].P2.IsCoincident(tt.want[1]) {
					t.Errorf("graze = %v..%v, want %v..%v", got[0].P1, got[0].P2, tt.want[0], tt.want[1])
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Intersect() returned %d results, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, x := range got {
				if x.Graze {
					t.Errorf("result %d is a graze", i)
				}
				if !x.P1.IsCoincident(tt.want[i]) {
					t.Errorf("result %d = %v, want %v", i, x.P1, tt.want[i])
				}
			}
		})
	}
}

// TestSectionRoundTrip tests that sections rejoin into the original line
func TestSectionRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		base  LineGeometry
		split []Point
	}{
		{
			name:  "segment",
			base:  NewSegment(pt(0, 0), pt(20, 0)),
			split: []Point{pt(5, 0), pt(12.5, 0)},
		},
		{
			name:  "chain",
			base:  mustMulti(t, pt(0, 0), pt(10, 0), pt(10, 10)),
			split: []Point{pt(5, 0), pt(10, 5)},
		},
		{
			name:  "arc",
			base:  NewArc(pt(0, 0), pt(10, 0), pt(0, 10), false),
			split: []Point{pt(10*math.Cos(math.Pi/4), 10*math.Sin(math.Pi/4))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ends := append([]Point{tt.base.Start()}, tt.split...)
			ends = append(ends, tt.base.End())

			var pieces []LineGeometry
			for i := 1; i < len(ends); i++ {
				s, err := NewSection(tt.base, ends[i-1], ends[i])
				if err != nil {
					t.Fatalf("NewSection() error = %v", err)
				}
				pieces = append(pieces, s)
			}

			path, err := Join(pieces...)
			if err != nil {
				t.Fatalf("Join() error = %v", err)
			}
			if !path.Start().IsCoincident(tt.base.Start()) || !path.End().IsCoincident(tt.base.End()) {
				t.Errorf("path runs %v..%v, want %v..%v", path.Start(), path.End(), tt.base.Start(), tt.base.End())
			}
			if !approx(path.Length(), tt.base.Length(), 1e-5) {
				t.Errorf("path length = %v, want %v", path.Length(), tt.base.Length())
			}
		})
	}

	if _, err := NewSection(NewSegment(pt(0, 0), pt(10, 0)), pt(6, 0), pt(4, 0)); err == nil {
		t.Error("NewSection() running backwards should fail")
	}
}

// TestValidate tests geometry validation
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		line    LineGeometry
		wantErr bool
	}{
		{"valid segment", NewSegment(pt(0, 0), pt(1, 0)), false},
		{"zero length segment", NewSegment(pt(1, 1), pt(1, 1)), true},
		{"valid arc", NewArc(pt(0, 0), pt(5, 0), pt(0, 5), false), false},
		{"arc end off circle", NewArc(pt(0, 0), pt(5, 0), pt(0, 6), false), true},
		{"valid chain", mustMulti(t, pt(0, 0), pt(1, 0), pt(1, 1)), false},
		{"repeated vertex", mustMulti(t, pt(0, 0), pt(1, 0), pt(1, 0), pt(1, 1)), true},
		{"nil", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.line)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
