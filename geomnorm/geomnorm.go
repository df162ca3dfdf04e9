// Package geomnorm canonicalizes ring winding for go-geom geometries.
//
// It is the github.com/twpayne/go-geom counterpart of the root geonorm
// package: exterior rings are rewound clockwise and interior rings
// counter-clockwise (the OGC Simple Features convention), judged by the
// sign of the shoelace signed area over the X and Y ordinates. Coordinate
// layouts (XY, XYZ, XYM, XYZM) and SRIDs are preserved; extra ordinates
// travel with their vertex when a ring is reversed.
//
// Inputs are never modified. Normalized polygons and multi-polygons are
// freshly constructed; collection members that needed no change are shared
// with the input and must be treated as read-only.
package geomnorm

import (
	"github.com/geonorm/geonorm"
	geom "github.com/twpayne/go-geom"
)

// Option configures a normalization call.
type Option func(*options)

type options struct {
	// rfc7946 flips the target winding for both ring roles.
	rfc7946 bool
	nested  bool
}

// WithRFC7946 targets the RFC 7946 (GeoJSON) winding convention instead of
// the OGC default: exterior rings counter-clockwise, interior rings
// clockwise.
func WithRFC7946() Option {
	return func(o *options) { o.rfc7946 = true }
}

// WithNested makes GeometryCollection and Normalize recurse into nested
// geometry collections. By default a collection nested inside another
// collection passes through unchanged.
func WithNested() Option {
	return func(o *options) { o.nested = true }
}

func resolveOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Polygon returns a copy of p whose rings follow the target winding
// convention. The layout and SRID of p are preserved.
func Polygon(p *geom.Polygon, opts ...Option) *geom.Polygon {
	return polygon(p, resolveOptions(opts))
}

// MultiPolygon returns a copy of mp with every polygon normalized by
// [Polygon]. Length and order are preserved.
func MultiPolygon(mp *geom.MultiPolygon, opts ...Option) *geom.MultiPolygon {
	return multiPolygon(mp, resolveOptions(opts))
}

// GeometryCollection returns a copy of gc in which every Polygon and
// MultiPolygon member is normalized and every other member passes through
// unchanged. Length and order are preserved. A collection nested inside gc
// passes through as-is unless [WithNested] is given.
func GeometryCollection(gc *geom.GeometryCollection, opts ...Option) *geom.GeometryCollection {
	return geometryCollection(gc, resolveOptions(opts))
}

// Normalize normalizes any go-geom geometry. Polygons, multi-polygons and
// geometry collections are normalized; every other kind (including a bare
// LinearRing, which carries no exterior or interior role) is returned
// unchanged.
func Normalize(g geom.T, opts ...Option) geom.T {
	return normalize(g, resolveOptions(opts))
}

func normalize(g geom.T, o options) geom.T {
	if g == nil {
		return nil
	}

	switch g := g.(type) {
	case *geom.Point, *geom.MultiPoint, *geom.LineString,
		*geom.MultiLineString, *geom.LinearRing:
		return g
	case *geom.Polygon:
		return polygon(g, o)
	case *geom.MultiPolygon:
		return multiPolygon(g, o)
	case *geom.GeometryCollection:
		return geometryCollection(g, o)
	}

	// The go-geom type set is closed; a new kind here is a programming
	// defect, not bad input.
	panic("geomnorm: unsupported geometry type")
}

func polygon(p *geom.Polygon, o options) *geom.Polygon {
	if p == nil {
		return nil
	}

	rings := p.Coords()
	out := make([][]geom.Coord, len(rings))
	for i, r := range rings {
		out[i] = rewind(r, i == 0, o)
	}
	return geom.NewPolygon(p.Layout()).MustSetCoords(out).SetSRID(p.SRID())
}

func multiPolygon(mp *geom.MultiPolygon, o options) *geom.MultiPolygon {
	if mp == nil {
		return nil
	}

	polys := mp.Coords()
	out := make([][][]geom.Coord, len(polys))
	for i, rings := range polys {
		outRings := make([][]geom.Coord, len(rings))
		for j, r := range rings {
			outRings[j] = rewind(r, j == 0, o)
		}
		out[i] = outRings
	}
	return geom.NewMultiPolygon(mp.Layout()).MustSetCoords(out).SetSRID(mp.SRID())
}

func geometryCollection(gc *geom.GeometryCollection, o options) *geom.GeometryCollection {
	if gc == nil {
		return nil
	}

	out := geom.NewGeometryCollection().SetSRID(gc.SRID())
	for _, g := range gc.Geoms() {
		if nested, ok := g.(*geom.GeometryCollection); ok && !o.nested {
			out.MustPush(nested)
			continue
		}
		out.MustPush(normalize(g, o))
	}
	return out
}

// rewind returns r rewound to the orientation its role demands, or r itself
// when no flip is needed. A zero-area ring has no defined winding and is
// never flipped.
func rewind(r []geom.Coord, exterior bool, o options) []geom.Coord {
	area := signedArea(r)

	wantClockwise := exterior != o.rfc7946
	if (wantClockwise && area > 0) || (!wantClockwise && area < 0) {
		geonorm.Logger().Debug("flipping ring winding",
			"exterior", exterior, "points", len(r), "area", area)
		return reverse(r)
	}
	return r
}

// signedArea computes the shoelace signed area over the X and Y ordinates
// of a closed ring: negative for clockwise winding, positive for
// counter-clockwise, zero for degenerate rings.
func signedArea(r []geom.Coord) float64 {
	var sum float64
	for i := 1; i < len(r); i++ {
		p0, p1 := r[i-1], r[i]
		sum += p0[0]*p1[1] - p1[0]*p0[1]
	}
	return sum / 2
}

// reverse returns the coordinates in opposite traversal order. Whole
// coordinates move, so Z and M ordinates stay with their vertex and the
// closure point stays in place.
func reverse(r []geom.Coord) []geom.Coord {
	out := make([]geom.Coord, len(r))
	for i, c := range r {
		out[len(r)-1-i] = c
	}
	return out
}
