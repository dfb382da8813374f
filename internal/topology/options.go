package topology

// BuildOptions configures polygon building.
type BuildOptions struct {
	// BuildIslands resolves the enclosing polygon of every island touched
	// by the build.
	BuildIslands bool

	// BuildLabels associates topological text with the polygons it falls in.
	BuildLabels bool
}

// DefaultBuildOptions returns default options.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		BuildIslands: true,
		BuildLabels:  true,
	}
}

// MapOptions configures a map.
type MapOptions struct {
	// ValidateGeometry rejects degenerate line geometry as lines are added.
	ValidateGeometry bool
}

// DefaultMapOptions returns default options.
func DefaultMapOptions() MapOptions {
	return MapOptions{
		ValidateGeometry: true,
	}
}
