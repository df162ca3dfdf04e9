package geonorm_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/geonorm/geonorm"
)

func ExamplePolygon() {
	// Exterior wound counter-clockwise: not OGC-valid.
	bad := orb.Polygon{{{1, 1}, {4, 1}, {4, 4}, {1, 4}, {1, 1}}}

	fmt.Println(geonorm.Polygon(bad))
	// Output: [[[1 1] [1 4] [4 4] [4 1] [1 1]]]
}

func ExampleGeometry() {
	c := orb.Collection{
		orb.Point{7, 7},
		orb.Polygon{{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}},
	}

	out := geonorm.Geometry(c).(orb.Collection)
	fmt.Println(out[0])
	fmt.Println(out[1])
	// Output:
	// [7 7]
	// [[[0 0] [0 2] [2 2] [2 0] [0 0]]]
}
