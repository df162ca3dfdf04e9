// Package geonorm canonicalizes the winding order of polygon rings.
//
// # Overview
//
// The orb geometry types (github.com/paulmach/orb) accept polygon rings
// wound in either direction. Many consumers (renderers, spatial databases,
// exporters) require the OGC Simple Features convention: exterior rings
// wound clockwise, interior rings (holes) counter-clockwise. geonorm
// produces geometries that follow that convention without changing their
// shape: only the traversal direction of a ring may flip, never its vertex
// set or closure.
//
// # Quick Start
//
//	import (
//	    "github.com/paulmach/orb"
//	    "github.com/geonorm/geonorm"
//	)
//
//	// Exterior wound counter-clockwise: not OGC-valid.
//	bad := orb.Polygon{{{1, 1}, {4, 1}, {4, 4}, {1, 4}, {1, 1}}}
//
//	good := geonorm.Polygon(bad)
//	// good is {{1, 1}, {1, 4}, {4, 4}, {4, 1}, {1, 1}}
//
// Inputs are never mutated. Every normalizer returns a freshly built
// container; rings that were already wound correctly are shared with the
// input and must be treated as read-only.
//
// # Conventions
//
// Orientation is judged by the sign of the shoelace signed area in a
// standard Cartesian plane (y increasing upward): negative is clockwise,
// positive is counter-clockwise. Rings with exactly zero signed area
// (collinear or degenerate) have no defined winding and are left untouched.
//
// The default target is the OGC convention. GeoJSON per RFC 7946 mandates
// the opposite winding; use [WithRFC7946] to target it instead.
//
// For geometries from github.com/twpayne/go-geom, see the geomnorm
// subpackage.
package geonorm
