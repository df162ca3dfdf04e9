package geonorm

// Option configures a normalization call.
//
// Example:
//
//	// OGC winding, nested collections untouched (the defaults):
//	out := geonorm.Collection(c)
//
//	// RFC 7946 winding, recursing into nested collections:
//	out := geonorm.Collection(c, geonorm.WithRFC7946(), geonorm.WithNested())
type Option func(*options)

// options holds the resolved configuration for one normalization call.
type options struct {
	// exterior is the target orientation for exterior rings; interior rings
	// always target the opposite.
	exterior orientation
	nested   bool
}

type orientation int8

const (
	clockwise        orientation = -1
	counterClockwise orientation = 1
)

// defaultOptions returns the OGC Simple Features defaults: exterior rings
// clockwise, interior rings counter-clockwise, nested collections passed
// through unchanged.
func defaultOptions() options {
	return options{exterior: clockwise}
}

func resolveOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRFC7946 targets the RFC 7946 (GeoJSON) winding convention instead of
// the OGC default: exterior rings counter-clockwise, interior rings
// clockwise.
func WithRFC7946() Option {
	return func(o *options) {
		o.exterior = counterClockwise
	}
}

// WithNested makes Collection and Geometry recurse into nested geometry
// collections, normalizing the polygons they contain at any depth. By
// default a collection nested inside another collection passes through
// unchanged.
func WithNested() Option {
	return func(o *options) {
		o.nested = true
	}
}
