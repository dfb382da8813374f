package topology

import "github.com/beetlebugorg/cadastral/internal/index"

// Island is a ring of zero or negative signed area: the outside of a closed
// group of dividers. It either has one enclosing polygon or is floating.
type Island struct {
	ringCore
	container *Polygon
}

// Kind returns RingIsland.
func (is *Island) Kind() RingKind { return RingIsland }

// Area returns the area enclosed by the island as a positive value.
func (is *Island) Area() float64 { return -is.signedArea }

// Container returns the polygon enclosing the island, if resolved.
func (is *Island) Container() *Polygon { return is.container }

// IsFloating reports whether the island was found to have no enclosing
// polygon.
func (is *Island) IsFloating() bool { return is.flags&ringFloating != 0 }

// SetFloating sets or clears the floating flag. A floating island has no
// container, so setting the flag releases any current container.
func (is *Island) SetFloating(v bool) {
	if !v {
		is.flags &^= ringFloating
		return
	}
	if is.container != nil {
		is.container.Release(is)
	}
	is.flags |= ringFloating
}

// SetContainer resolves the enclosing polygon of the island. An island that
// already has a container, or was already found to be floating, is left
// alone and the index is not consulted.
func (is *Island) SetContainer(idx *index.Index) error {
	if is.container != nil || is.IsFloating() {
		return nil
	}

	container := FindIslandContainer(idx, is)
	if container == nil {
		is.flags |= ringFloating
		Logger().Debug("island_floating", "island", is.id, "east", is.EastPoint().String())
		return nil
	}
	return container.ClaimIsland(is)
}
