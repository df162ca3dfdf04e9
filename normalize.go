package geonorm

import "github.com/paulmach/orb"

// Polygon returns a copy of p whose rings follow the target winding
// convention: by default the exterior ring clockwise and every interior ring
// counter-clockwise. Rings already wound correctly are shared with the
// input; rings with zero signed area are left untouched. The input is not
// modified, and a polygon that already satisfies the convention comes back
// value-equal to its input.
func Polygon(p orb.Polygon, opts ...Option) orb.Polygon {
	return polygon(p, resolveOptions(opts))
}

// MultiPolygon returns a copy of mp with every polygon normalized by
// [Polygon]. Length and order are preserved.
func MultiPolygon(mp orb.MultiPolygon, opts ...Option) orb.MultiPolygon {
	return multiPolygon(mp, resolveOptions(opts))
}

// Collection returns a copy of c in which every Polygon and MultiPolygon
// member is normalized and every other member passes through unchanged.
// Length and order are preserved. A geometry collection nested inside c is
// passed through as-is unless [WithNested] is given.
func Collection(c orb.Collection, opts ...Option) orb.Collection {
	return collection(c, resolveOptions(opts))
}

// Geometry normalizes any orb geometry. Polygons, multi-polygons and
// collections are normalized per [Polygon], [MultiPolygon] and
// [Collection]; every other kind is returned unchanged. A bare Ring has no
// exterior or interior role, so it passes through too.
func Geometry(g orb.Geometry, opts ...Option) orb.Geometry {
	return geometry(g, resolveOptions(opts))
}

func geometry(g orb.Geometry, o options) orb.Geometry {
	if g == nil {
		return nil
	}

	switch g := g.(type) {
	case orb.Point, orb.MultiPoint, orb.LineString, orb.MultiLineString,
		orb.Ring, orb.Bound:
		return g
	case orb.Polygon:
		return polygon(g, o)
	case orb.MultiPolygon:
		return multiPolygon(g, o)
	case orb.Collection:
		return collection(g, o)
	}

	// The orb geometry set is closed; a new kind here is a programming
	// defect, not bad input.
	panic("geonorm: unsupported geometry " + g.GeoJSONType())
}

func polygon(p orb.Polygon, o options) orb.Polygon {
	if p == nil {
		return nil
	}

	out := make(orb.Polygon, len(p))
	for i, r := range p {
		want := o.exterior
		if i > 0 {
			want = -want
		}
		out[i] = rewind(r, want, i)
	}
	return out
}

func multiPolygon(mp orb.MultiPolygon, o options) orb.MultiPolygon {
	if mp == nil {
		return nil
	}

	out := make(orb.MultiPolygon, len(mp))
	for i, p := range mp {
		out[i] = polygon(p, o)
	}
	return out
}

func collection(c orb.Collection, o options) orb.Collection {
	if c == nil {
		return nil
	}

	out := make(orb.Collection, len(c))
	for i, g := range c {
		if nested, ok := g.(orb.Collection); ok && !o.nested {
			out[i] = nested
			continue
		}
		out[i] = geometry(g, o)
	}
	return out
}

// rewind returns r rewound to the wanted orientation, or r itself when no
// flip is needed. A zero-area ring has no defined winding and is never
// flipped.
func rewind(r orb.Ring, want orientation, index int) orb.Ring {
	area := SignedArea(r)
	if (want == clockwise && area > 0) || (want == counterClockwise && area < 0) {
		Logger().Debug("flipping ring winding",
			"ring", index, "points", len(r), "area", area)
		return Reverse(r)
	}
	return r
}
