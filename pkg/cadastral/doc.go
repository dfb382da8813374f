// Package cadastral builds and queries the polygon topology of a cadastral
// map.
//
// A map is made of surveyed points, lines drawn between them and text
// labels. Building the map traces every closed group of lines into
// polygons, works out which polygons sit inside others as islands, and
// matches each polygon with the label that falls in it.
//
// # Basic Usage
//
//	m := cadastral.NewMap()
//	m.AddPoint("p1", 0, 0)
//	m.AddPoint("p2", 10, 0)
//	m.AddPoint("p3", 10, 10)
//	m.AddLine("l1", "p1", "p2")
//	m.AddLine("l2", "p2", "p3")
//	m.AddLine("l3", "p3", "p1")
//	m.AddText("lot", "Lot 12", 7, 3)
//
//	if _, err := m.Build(); err != nil {
//	    log.Fatal(err)
//	}
//
//	if p, ok := m.FindPolygon(7, 3); ok {
//	    fmt.Printf("polygon %d has area %.2f and label %q\n", p.ID, p.Area, p.Label)
//	}
//
// # GeoJSON
//
// Maps can be loaded from a GeoJSON feature collection. Point features with
// an id become points, point features with a "text" property become labels,
// and LineString features name the points they run between in "from" and
// "to" properties:
//
//	m, err := cadastral.LoadGeoJSONFile("parcels.geojson", cadastral.DefaultLoadOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, err := m.PolygonsGeoJSON()
//
// A two position LineString with a "center" property ([x, y]) is a circular
// arc; its "clockwise" property gives the direction.
//
// # Consistency Checks
//
// Check reports dangling lines, bridges, overlaps, tiny polygons, islands
// with no enclosing polygon and polygons without labels:
//
//	for _, p := range m.Check(cadastral.CheckAll) {
//	    fmt.Printf("%v at (%.3f, %.3f)\n", p.Types, p.X, p.Y)
//	}
//
// # Logging
//
// Nothing is logged by default. Install a logger with SetLogger:
//
//	cadastral.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
package cadastral
