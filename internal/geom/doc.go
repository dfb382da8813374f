// Package geom provides the planar geometry primitives used by the topology
// engine: positions held to micron resolution, rectangular windows, and the
// line geometries (segments, circular arcs, multi-segments and sections of
// those) together with the exact intersection and containment predicates the
// polygon builder depends on.
//
// All geometries are immutable values. Positions are stored as integer
// microns, so two positions are coincident exactly when they round to the
// same micron grid node.
package geom
