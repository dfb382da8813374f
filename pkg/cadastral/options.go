package cadastral

// MapOptions configures a map.
type MapOptions struct {
	// ValidateGeometry rejects degenerate lines (zero length, zero radius
	// arcs, repeated vertices) as they are added.
	ValidateGeometry bool
}

// DefaultMapOptions returns default options.
func DefaultMapOptions() MapOptions {
	return MapOptions{
		ValidateGeometry: true,
	}
}

// BuildOptions configures polygon building.
type BuildOptions struct {
	// BuildIslands works out the enclosing polygon of every island.
	BuildIslands bool

	// BuildLabels matches topological text to the polygons it falls in.
	BuildLabels bool
}

// DefaultBuildOptions returns default options.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		BuildIslands: true,
		BuildLabels:  true,
	}
}

// LoadOptions configures loading a map from GeoJSON.
type LoadOptions struct {
	Map MapOptions

	// Build controls whether polygons are built once every feature is
	// loaded. Default is true.
	Build bool

	BuildOptions BuildOptions
}

// DefaultLoadOptions returns default options.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Map:          DefaultMapOptions(),
		Build:        true,
		BuildOptions: DefaultBuildOptions(),
	}
}
