package topology

import "github.com/beetlebugorg/cadastral/internal/geom"

// Divider is a directed topological edge running between two terminals
// along a line (or a section of it).
type Divider interface {
	Line() *LineFeature
	From() Terminal
	To() Terminal
	LineGeometry() geom.LineGeometry
	IsOverlap() bool
	IsSection() bool
}

// Boundary is a divider that can bound rings. Overlap dividers are not
// boundaries, so they carry no ring references at all.
type Boundary interface {
	Divider
	Left() Ring
	Right() Ring
	SetLeft(r Ring)
	SetRight(r Ring)
}

type dividerBase struct {
	line     *LineFeature
	from     Terminal
	to       Terminal
	geometry geom.LineGeometry
	section  bool
}

func (d *dividerBase) Line() *LineFeature              { return d.line }
func (d *dividerBase) From() Terminal                  { return d.from }
func (d *dividerBase) To() Terminal                    { return d.to }
func (d *dividerBase) LineGeometry() geom.LineGeometry { return d.geometry }
func (d *dividerBase) IsSection() bool                 { return d.section }

// BoundaryDivider covers a whole line or one of its sections, and records
// the rings on either side.
type BoundaryDivider struct {
	dividerBase
	left  Ring
	right Ring
}

func (d *BoundaryDivider) IsOverlap() bool { return false }
func (d *BoundaryDivider) Left() Ring      { return d.left }
func (d *BoundaryDivider) Right() Ring     { return d.right }
func (d *BoundaryDivider) SetLeft(r Ring)  { d.left = r }
func (d *BoundaryDivider) SetRight(r Ring) { d.right = r }

// OverlapDivider covers a line (or section) lying on top of another line.
type OverlapDivider struct {
	dividerBase
}

func (d *OverlapDivider) IsOverlap() bool { return true }

// Left returns the ring to the left of d, or nil for overlaps.
func Left(d Divider) Ring {
	if b, ok := d.(Boundary); ok {
		return b.Left()
	}
	return nil
}

// Right returns the ring to the right of d, or nil for overlaps.
func Right(d Divider) Ring {
	if b, ok := d.(Boundary); ok {
		return b.Right()
	}
	return nil
}

// setSide assigns a ring to one side of a divider.
func setSide(d Divider, isLeft bool, r Ring) error {
	b, ok := d.(Boundary)
	if !ok {
		return &ErrOverlapBoundary{Line: d.Line().ID()}
	}
	if isLeft {
		b.SetLeft(r)
	} else {
		b.SetRight(r)
	}
	return nil
}

// side returns the ring on one side of a divider.
func side(d Divider, isLeft bool) Ring {
	if isLeft {
		return Left(d)
	}
	return Right(d)
}

// IsBuilt reports whether rings have been traced on both sides of d.
func IsBuilt(d Divider) bool {
	return Left(d) != nil && Right(d) != nil
}

// IsDangle reports whether d is the only boundary divider meeting at t.
func IsDangle(d Divider, t Terminal) bool {
	ends := 0
	for _, x := range t.IncidentDividers() {
		if x.IsOverlap() {
			continue
		}
		if x != d {
			return false
		}
		// A loop meets t at both ends
		if x.From() == t {
			ends++
		}
		if x.To() == t {
			ends++
		}
	}
	return ends == 1
}

// MarkPolygons flags the rings on both sides of d for deletion.
func MarkPolygons(d Divider) {
	if r := Left(d); r != nil {
		r.core().flags |= ringDeleted
	}
	if r := Right(d); r != nil {
		r.core().flags |= ringDeleted
	}
}

// markTerminal flags the rings next to every divider meeting at t.
func markTerminal(t Terminal) {
	for _, d := range t.IncidentDividers() {
		MarkPolygons(d)
	}
}
