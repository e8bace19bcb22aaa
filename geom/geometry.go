// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

// Geometry is the geometric model a shape style reads.
//
// Implementations notify subscribers after every mutation that can change
// the extent or the drawn outline. Clone returns an independent deep copy
// without any of the original's subscriptions.
type Geometry interface {
	// Extent returns the bounding box of the geometry.
	Extent() Extent

	// Clone returns a deep copy.
	Clone() Geometry

	// Subscribe registers fn to be called after every mutation.
	Subscribe(fn func()) Key

	// Unsubscribe revokes a subscription returned by Subscribe.
	Unsubscribe(k Key)
}

// Compile-time interface checks.
var (
	_ Geometry = (*Circle)(nil)
	_ Geometry = (*LineString)(nil)
	_ Geometry = (*Polygon)(nil)
	_ Geometry = (*MultiPolygon)(nil)
)

func cloneCoords(coords []Coordinate) []Coordinate {
	if coords == nil {
		return nil
	}
	out := make([]Coordinate, len(coords))
	copy(out, coords)
	return out
}

func cloneRings(rings [][]Coordinate) [][]Coordinate {
	if rings == nil {
		return nil
	}
	out := make([][]Coordinate, len(rings))
	for i, r := range rings {
		out[i] = cloneCoords(r)
	}
	return out
}

func translateCoords(coords []Coordinate, dx, dy float64) {
	for i := range coords {
		coords[i][0] += dx
		coords[i][1] += dy
	}
}
