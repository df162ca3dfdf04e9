package geonorm

import "github.com/paulmach/orb"

// SignedArea returns the signed area of a closed ring computed with the
// shoelace formula. In a standard Cartesian plane (y up) the sign encodes
// winding: negative for clockwise traversal, positive for counter-clockwise,
// zero for degenerate rings (collinear points or fewer than 3 distinct
// vertices).
//
// The ring must be closed (first point equal to last); behavior on an open
// ring is undefined.
func SignedArea(r orb.Ring) float64 {
	var sum float64
	for i := 1; i < len(r); i++ {
		p0, p1 := r[i-1], r[i]
		sum += p0[0]*p1[1] - p1[0]*p0[1]
	}
	return sum / 2
}

// IsClockwise reports whether the ring is wound clockwise, that is, whether
// its signed area is strictly negative. A degenerate ring with zero signed
// area is neither clockwise nor counter-clockwise; IsClockwise returns false
// for it.
func IsClockwise(r orb.Ring) bool {
	return SignedArea(r) < 0
}

// Reverse returns a new ring visiting the same points in the opposite order.
// The closure point stays in place: reversing [a b c a] yields [a c b a].
// The input is not modified.
func Reverse(r orb.Ring) orb.Ring {
	out := make(orb.Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}
