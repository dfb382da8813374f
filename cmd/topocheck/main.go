// Command topocheck loads a cadastral map from GeoJSON, builds its polygon
// topology, reports consistency problems and writes the polygons out.
//
// Usage:
//
//	topocheck -in parcels.geojson -out polygons.geojson -checks dangle,overlap
//
// TOPOCHECK_INPUT, TOPOCHECK_OUTPUT and TOPOCHECK_CHECKS provide defaults
// for the flags, and may be set in a .env file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/beetlebugorg/cadastral/pkg/cadastral"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	l := setupLogger()
	cadastral.SetLogger(l)

	in := flag.String("in", os.Getenv("TOPOCHECK_INPUT"), "GeoJSON map to check")
	out := flag.String("out", os.Getenv("TOPOCHECK_OUTPUT"), "where to write the polygons (stdout if empty)")
	checks := flag.String("checks", envOr("TOPOCHECK_CHECKS", "all"), "comma separated checks to run, or all")
	problemsOut := flag.String("problems", os.Getenv("TOPOCHECK_PROBLEMS"), "where to write problems as GeoJSON")
	flag.Parse()

	if *in == "" {
		l.Error("input_missing", "hint", "set -in or TOPOCHECK_INPUT")
		os.Exit(2)
	}

	types, unknown := cadastral.ParseCheckTypes(*checks)
	if len(unknown) > 0 {
		l.Error("unknown_checks", "names", strings.Join(unknown, ","))
		os.Exit(2)
	}

	m, err := cadastral.LoadGeoJSONFile(*in, cadastral.DefaultLoadOptions())
	if err != nil {
		l.Error("load_error", "file", *in, "err", err)
		os.Exit(1)
	}

	st := m.Stats()
	l.Info("map_loaded",
		"file", *in,
		"points", st.Points,
		"lines", st.Lines,
		"texts", st.Texts,
		"polygons", st.Polygons,
		"islands", st.Islands)

	problems := m.Check(types)
	for _, p := range problems {
		l.Warn("problem",
			"types", p.Types.String(),
			"feature", p.Feature,
			"ring", p.Ring,
			"x", fmt.Sprintf("%.3f", p.X),
			"y", fmt.Sprintf("%.3f", p.Y))
	}

	if *problemsOut != "" {
		data, err := cadastral.ProblemsGeoJSON(problems)
		if err != nil {
			l.Error("problems_encode_error", "err", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*problemsOut, data, 0o644); err != nil {
			l.Error("problems_write_error", "file", *problemsOut, "err", err)
			os.Exit(1)
		}
	}

	data, err := m.PolygonsGeoJSON()
	if err != nil {
		l.Error("polygons_encode_error", "err", err)
		os.Exit(1)
	}
	if *out == "" {
		_, _ = os.Stdout.Write(data)
		_, _ = os.Stdout.WriteString("\n")
	} else if err := os.WriteFile(*out, data, 0o644); err != nil {
		l.Error("polygons_write_error", "file", *out, "err", err)
		os.Exit(1)
	}

	l.Info("check_done", "problems", len(problems))
	if len(problems) > 0 {
		os.Exit(3)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
