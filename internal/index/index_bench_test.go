package index

import (
	"testing"

	"github.com/beetlebugorg/cadastral/internal/geom"
)

// Benchmarks for window queries over a grid of parcels.

// createGrid returns an index holding n x n unit squares.
func createGrid(n int) *Index {
	idx := New()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, y := float64(i), float64(j)
			_ = idx.Add(item("cell", Polygon, x, y, x+1, y+1))
		}
	}
	return idx
}

// BenchmarkQueryWindow_Small benchmarks a query that finds a handful of cells.
func BenchmarkQueryWindow_Small(b *testing.B) {
	idx := createGrid(100)
	w := geom.NewWindow(geom.NewPoint(50.2, 50.2), geom.NewPoint(51.8, 51.8))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.QueryWindow(&w, Polygon, func(Spatial) bool { return true })
	}
}

// BenchmarkQueryWindow_Large benchmarks a query covering a tenth of the grid.
func BenchmarkQueryWindow_Large(b *testing.B) {
	idx := createGrid(100)
	w := geom.NewWindow(geom.NewPoint(0, 0), geom.NewPoint(31.5, 31.5))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.QueryWindow(&w, Polygon, func(Spatial) bool { return true })
	}
}

// BenchmarkQueryClosest benchmarks closest-item lookup.
func BenchmarkQueryClosest(b *testing.B) {
	idx := createGrid(100)
	p := geom.NewPoint(42.3, 17.9)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = idx.QueryClosest(p, 0.5, Polygon)
	}
}
