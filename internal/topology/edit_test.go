package topology

import (
	"errors"
	"testing"

	"github.com/beetlebugorg/cadastral/internal/geom"
)

// TestEditRollback tests rolling an edit forward and back
func TestEditRollback(t *testing.T) {
	m := newTestMap()
	lines := mustSquare(t, m, "a", 0, 0, 10)
	mustBuild(t, m)

	sw := lines[0].From()
	ne := lines[2].From()
	mid := NewPointFeature("mid", pt(5, 5))
	diag1, err := NewLineFeature("diag1", sw, mid, geom.NewSegment(sw.Position(), mid.Position()))
	if err != nil {
		t.Fatalf("NewLineFeature() error = %v", err)
	}
	diag2, err := NewLineFeature("diag2", mid, ne, geom.NewSegment(mid.Position(), ne.Position()))
	if err != nil {
		t.Fatalf("NewLineFeature() error = %v", err)
	}

	edit := new(Edit).Insert(mid).Insert(diag1).Insert(diag2)
	res, err := m.ApplyEdit(edit, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("ApplyEdit() error = %v", err)
	}
	if res.Polygons != 2 {
		t.Errorf("ApplyEdit() built %d polygons, want 2", res.Polygons)
	}
	if got := len(m.Polygons()); got != 2 {
		t.Fatalf("Polygons() = %d, want 2", got)
	}
	for _, p := range m.Polygons() {
		if !approx(p.Area(), 50, 1e-9) {
			t.Errorf("polygon area = %v, want 50", p.Area())
		}
	}

	res, err = m.RollbackEdit(edit, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("RollbackEdit() error = %v", err)
	}
	polys := m.Polygons()
	if len(polys) != 1 || !approx(polys[0].Area(), 100, 1e-9) {
		t.Fatalf("Polygons() after rollback = %d, want one of area 100", len(polys))
	}
	if m.Point("mid") != nil || m.Line("diag1") != nil {
		t.Errorf("rolled back features are still in the map")
	}
	if st := m.Stats(); st.Lines != 4 || st.Points != 4 || st.Islands != 1 {
		t.Errorf("Stats() after rollback = %+v", st)
	}

	// Rolling forward again restores the split
	if _, err := m.ApplyEdit(edit, DefaultBuildOptions()); err != nil {
		t.Fatalf("ApplyEdit() again error = %v", err)
	}
	if got := len(m.Polygons()); got != 2 {
		t.Errorf("Polygons() after reapplying = %d, want 2", got)
	}
}

// TestEditFailure tests an edit whose record cannot be applied
func TestEditFailure(t *testing.T) {
	m := newTestMap()
	mustSquare(t, m, "a", 0, 0, 10)

	edit := new(Edit).Delete(m.Point("a-sw"))
	_, err := m.ApplyEdit(edit, DefaultBuildOptions())

	var inUse *ErrFeatureInUse
	if !errors.As(err, &inUse) {
		t.Fatalf("ApplyEdit() error = %v, want ErrFeatureInUse", err)
	}
	if inUse.Lines != 2 {
		t.Errorf("Lines = %d, want 2", inUse.Lines)
	}
}

// TestEditInstruction tests instruction inversion
func TestEditInstruction(t *testing.T) {
	tests := []struct {
		in   EditInstruction
		want EditInstruction
	}{
		{EditInsert, EditDelete},
		{EditDelete, EditInsert},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := tt.in.inverse(); got != tt.want {
				t.Errorf("inverse() = %v, want %v", got, tt.want)
			}
		})
	}
}
