package topology

import (
	"strings"

	"github.com/beetlebugorg/cadastral/internal/geom"
)

// CheckType is a bit mask of the problems a consistency check can find.
type CheckType uint16

const (
	CheckSmallLine        CheckType = 1 << iota // Divider shorter than a millimetre
	CheckOverlap                                // Divider lies on another line
	CheckDangle                                 // Divider ends at nothing else
	CheckFloating                               // Divider meets nothing at either end
	CheckBridge                                 // Same polygon on both sides of a divider
	CheckSmallPolygon                           // Ring smaller than a hundredth of a square metre
	CheckNotEnclosed                            // Island with no enclosing polygon
	CheckNoLabel                                // Polygon without a label
	CheckNoPolygonForLabel                      // Topological text outside every polygon
	CheckMultiLabel                             // Polygon claimed by more than one text
)

// CheckAll selects every check.
const CheckAll = CheckSmallLine | CheckOverlap | CheckDangle | CheckFloating |
	CheckBridge | CheckSmallPolygon | CheckNotEnclosed | CheckNoLabel |
	CheckNoPolygonForLabel | CheckMultiLabel

const (
	minLineLength  = 0.001
	minPolygonArea = 0.01
)

var checkTypeNames = []struct {
	t    CheckType
	name string
}{
	{CheckSmallLine, "SmallLine"},
	{CheckOverlap, "Overlap"},
	{CheckDangle, "Dangle"},
	{CheckFloating, "Floating"},
	{CheckBridge, "Bridge"},
	{CheckSmallPolygon, "SmallPolygon"},
	{CheckNotEnclosed, "NotEnclosed"},
	{CheckNoLabel, "NoLabel"},
	{CheckNoPolygonForLabel, "NoPolygonForLabel"},
	{CheckMultiLabel, "MultiLabel"},
}

func (c CheckType) String() string {
	var parts []string
	for _, n := range checkTypeNames {
		if c&n.t != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// ParseCheckTypes parses a comma separated list of check names. Unknown
// names are reported by the second return value.
func ParseCheckTypes(s string) (CheckType, []string) {
	var types CheckType
	var unknown []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.EqualFold(part, "all") {
			types |= CheckAll
			continue
		}
		found := false
		for _, n := range checkTypeNames {
			if strings.EqualFold(part, n.name) {
				types |= n.t
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, part)
		}
	}
	return types, unknown
}

// Problem is one thing a consistency check found. Exactly one of Divider,
// Ring and Text is set.
type Problem struct {
	Types    CheckType
	Divider  Divider
	Ring     Ring
	Text     *TextFeature
	Position geom.Point
}

// CheckDivider returns the problems with a divider.
func CheckDivider(d Divider) CheckType {
	var types CheckType
	if d.LineGeometry().Length() < minLineLength {
		types |= CheckSmallLine
	}
	if d.IsOverlap() {
		return types | CheckOverlap
	}
	return types | checkNeighbours(d)
}

// checkNeighbours looks at dividers with the same ring on both sides.
// Dividers not yet built are skipped.
func checkNeighbours(d Divider) CheckType {
	if !IsBuilt(d) || Left(d) != Right(d) {
		return 0
	}

	startDangle := IsDangle(d, d.From())
	endDangle := IsDangle(d, d.To())
	switch {
	case startDangle && endDangle:
		return CheckFloating
	case startDangle || endDangle:
		return CheckDangle
	default:
		return CheckBridge
	}
}

// CheckRing returns the problems with a ring.
func CheckRing(r Ring) CheckType {
	var types CheckType
	if r.Area() < minPolygonArea {
		types |= CheckSmallPolygon
	}
	switch v := r.(type) {
	case *Island:
		if v.Container() == nil {
			types |= CheckNotEnclosed
		}
	case *Polygon:
		if v.Label() == nil {
			types |= CheckNoLabel
		}
	}
	return types
}

// CheckText returns the problems with a topological text.
func CheckText(t *TextFeature) CheckType {
	if !t.IsTopological() {
		return 0
	}
	p := t.Container()
	if p == nil {
		return CheckNoPolygonForLabel
	}
	if p.Label() != t {
		return CheckMultiLabel
	}
	return 0
}

// dividerPosition returns where a divider problem is reported: the middle
// of the divider.
func dividerPosition(d Divider) geom.Point {
	g := d.LineGeometry()
	return g.PointAt(g.Length() / 2)
}
