// Package topology maintains the planar graph of a cadastral map and the
// polygons derived from it.
//
// Points and intersections are the terminals of the graph. Each line is
// overlaid with one or more dividers that run between terminals; a line is
// sectioned wherever another line crosses it, and stretches that lie on top
// of an older line become overlap dividers that never bound area.
//
// Rings are traced by walking the faces of boundary dividers. A ring with a
// positive signed area is a Polygon; any other ring is an Island, which is
// then matched to the tightest Polygon that encloses it (or flagged as
// floating when none does).
//
// Everything works against an explicit Map and its spatial index. Nothing
// is safe for concurrent use.
package topology
