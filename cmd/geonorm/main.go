// Command geonorm rewinds polygon rings to a canonical winding order.
//
// It reads GeoJSON (a geometry, a feature, or a feature collection) or WKT
// from a file or stdin, normalizes every polygon and multi-polygon to the
// OGC Simple Features convention (or RFC 7946 with -rfc7946), and writes
// the result.
//
// Usage:
//
//	geonorm [flags] [input-file]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"

	"github.com/geonorm/geonorm"
)

func main() {
	var (
		format  = flag.String("format", "geojson", "input format: geojson or wkt")
		rfc7946 = flag.Bool("rfc7946", false, "target RFC 7946 winding (counter-clockwise exteriors)")
		nested  = flag.Bool("nested", false, "recurse into nested geometry collections")
		output  = flag.String("output", "", "output file (default stdout)")
		verbose = flag.Bool("v", false, "log every flipped ring to stderr")
	)
	flag.Parse()

	if *verbose {
		geonorm.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var opts []geonorm.Option
	if *rfc7946 {
		opts = append(opts, geonorm.WithRFC7946())
	}
	if *nested {
		opts = append(opts, geonorm.WithNested())
	}

	data, err := readInput(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	var out []byte
	switch *format {
	case "geojson":
		out, err = normalizeGeoJSON(data, opts)
	case "wkt":
		out, err = normalizeWKT(data, opts)
	default:
		log.Fatalf("Unknown format %q (want geojson or wkt)", *format)
	}
	if err != nil {
		log.Fatalf("Failed to normalize: %v", err)
	}

	if err := writeOutput(*output, out); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

// normalizeGeoJSON decodes a GeoJSON document of any of the three top-level
// shapes, normalizes its geometries, and re-encodes it.
func normalizeGeoJSON(data []byte, opts []geonorm.Option) ([]byte, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("invalid geojson: %w", err)
	}

	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		for _, f := range fc.Features {
			f.Geometry = geonorm.Geometry(f.Geometry, opts...)
		}
		return json.Marshal(fc)
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		f.Geometry = geonorm.Geometry(f.Geometry, opts...)
		return json.Marshal(f)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, err
		}
		return json.Marshal(geojson.NewGeometry(geonorm.Geometry(g.Geometry(), opts...)))
	}
}

func normalizeWKT(data []byte, opts []geonorm.Option) ([]byte, error) {
	g, err := wkt.Unmarshal(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, err
	}
	return []byte(wkt.MarshalString(geonorm.Geometry(g, opts...))), nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, out []byte) error {
	out = append(out, '\n')
	if path == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
