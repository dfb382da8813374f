// Package index provides the window-query spatial index over the features
// and rings of a map.
//
// Each spatial type (points, lines, text, polygons) lives in its own R-tree.
// Window queries return every item whose extent overlaps the query window;
// that is a filtering superset, and callers apply exact geometric tests.
//
// Example:
//
//	idx := index.New()
//	if err := idx.Add(feature); err != nil {
//	    return err
//	}
//
//	win := geom.NewWindow(geom.NewPoint(0, 0), geom.NewPoint(100, 100))
//	idx.QueryWindow(&win, index.Line|index.Point, func(item index.Spatial) bool {
//	    fmt.Println(item)
//	    return true // keep going
//	})
package index
