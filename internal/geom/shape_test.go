package geom

import "testing"

func mustShape(t *testing.T, pts ...Point) *ClosedShape {
	t.Helper()
	s, err := NewClosedShape(pts)
	if err != nil {
		t.Fatalf("NewClosedShape() error = %v", err)
	}
	return s
}

func square(t *testing.T, x0, y0, x1, y1 float64) *ClosedShape {
	return mustShape(t, pt(x0, y0), pt(x1, y0), pt(x1, y1), pt(x0, y1), pt(x0, y0))
}

// TestNewClosedShape tests shape construction rules
func TestNewClosedShape(t *testing.T) {
	tests := []struct {
		name    string
		pts     []Point
		wantErr bool
	}{
		{"triangle", []Point{pt(0, 0), pt(1, 0), pt(0, 1), pt(0, 0)}, false},
		{"too few positions", []Point{pt(0, 0), pt(0, 0)}, true},
		{"not closed", []Point{pt(0, 0), pt(1, 0), pt(0, 1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClosedShape(tt.pts)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewClosedShape() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestClosedShapeOverlapPoint tests strict point containment
func TestClosedShapeOverlapPoint(t *testing.T) {
	tri := mustShape(t, pt(0, 0), pt(10, 0), pt(0, 10), pt(0, 0))

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", pt(2, 2), true},
		{"inside window but outside shape", pt(8, 8), false},
		{"outside window", pt(20, 2), false},
		{"on edge", pt(5, 0), false},
		{"on hypotenuse", pt(5, 5), false},
		{"on vertex", pt(0, 10), false},
		{"level with top vertex", pt(-1, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tri.IsOverlapPoint(tt.p); got != tt.want {
				t.Errorf("IsOverlapPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
			// The window test must never reject a point the exact test accepts
			if tri.IsOverlapPoint(tt.p) && !tri.Extent().Contains(tt.p) {
				t.Errorf("point %v inside shape but outside its window", tt.p)
			}
		})
	}
}

// TestClosedShapeOverlapLine tests shape against line overlap
func TestClosedShapeOverlapLine(t *testing.T) {
	sq := square(t, 0, 0, 10, 10)

	tests := []struct {
		name string
		line LineGeometry
		want bool
	}{
		{"end inside", NewSegment(pt(5, 5), pt(20, 5)), true},
		{"passes through", NewSegment(pt(-5, 5), pt(15, 5)), true},
		{"outside", NewSegment(pt(-5, 20), pt(15, 20)), false},
		{"west of the shape", NewSegment(pt(-5, -5), pt(-1, 15)), false},
		{"arc crossing a side", NewArc(pt(-3, 5), pt(-3, 9), pt(-3, 1), true), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sq.IsOverlapLine(tt.line); got != tt.want {
				t.Errorf("IsOverlapLine() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestClosedShapeOverlapShape tests shape against shape overlap
func TestClosedShapeOverlapShape(t *testing.T) {
	big := square(t, 0, 0, 10, 10)

	tests := []struct {
		name  string
		other *ClosedShape
		want  bool
	}{
		{"two unit strip", square(t, 8, 0, 14, 6), true},
		{"contained", square(t, 2, 2, 4, 4), true},
		{"containing", square(t, -5, -5, 15, 15), true},
		{"disjoint", square(t, 20, 20, 30, 30), false},
		{"crossing without interior vertices", mustShape(t, pt(4, -2), pt(6, -2), pt(6, 12), pt(4, 12), pt(4, -2)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := big.IsOverlapShape(tt.other); got != tt.want {
				t.Errorf("IsOverlapShape() = %v, want %v", got, tt.want)
			}
			if got := tt.other.IsOverlapShape(big); got != tt.want {
				t.Errorf("reversed IsOverlapShape() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestIntersectionDriver tests that the smaller shape drives intersection
func TestIntersectionDriver(t *testing.T) {
	big := square(t, 0, 0, 10, 10)
	small := square(t, 8, 0, 14, 6)

	for _, pair := range [][2]*ClosedShape{{big, small}, {small, big}} {
		driver, other := intersectionDriver(pair[0], pair[1])
		if driver != small || other != big {
			t.Errorf("intersectionDriver() picked the larger shape as driver")
		}
	}
}
