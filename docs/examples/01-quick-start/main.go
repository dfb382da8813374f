package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/cadastral/pkg/cadastral"
)

func main() {
	// Create map
	m := cadastral.NewMap()

	// Survey a square lot with a label
	must(m.AddPoint("sw", 0, 0))
	must(m.AddPoint("se", 20, 0))
	must(m.AddPoint("ne", 20, 20))
	must(m.AddPoint("nw", 0, 20))
	must(m.AddLine("south", "sw", "se"))
	must(m.AddLine("east", "se", "ne"))
	must(m.AddLine("north", "ne", "nw"))
	must(m.AddLine("west", "nw", "sw"))
	must(m.AddText("lot", "Lot 1", 10, 10))

	// Build polygons
	res, err := m.Build()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Built: %d polygons, %d islands\n", res.Polygons, res.Islands)

	// Split the lot with a line across the middle
	must(m.AddPoint("s-mid", 10, 0))
	must(m.AddPoint("n-mid", 10, 20))
	must(m.AddLine("split", "s-mid", "n-mid"))
	if _, err := m.Build(); err != nil {
		log.Fatal(err)
	}

	for _, p := range m.Polygons() {
		label := p.Label
		if label == "" {
			label = "(unlabelled)"
		}
		fmt.Printf("Polygon %d: area %.1f %s\n", p.ID, p.Area, label)
	}

	// Report problems
	for _, p := range m.Check(cadastral.CheckAll) {
		fmt.Printf("Problem: %s at (%.1f, %.1f)\n", p.Types, p.X, p.Y)
	}
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
