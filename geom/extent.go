// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import "math"

// Coordinate is a point in canvas coordinates.
type Coordinate [2]float64

// X returns the horizontal component.
func (c Coordinate) X() float64 { return c[0] }

// Y returns the vertical component.
func (c Coordinate) Y() float64 { return c[1] }

// Extent is an axis-aligned bounding box [minX, minY, maxX, maxY].
// Extents are values: copying one never aliases the original.
type Extent [4]float64

// NewExtent returns the extent with the given bounds.
func NewExtent(minX, minY, maxX, maxY float64) Extent {
	return Extent{minX, minY, maxX, maxY}
}

// EmptyExtent returns an extent that contains nothing.
// Extending it with any other extent yields that extent.
func EmptyExtent() Extent {
	return Extent{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
}

// ExtentOf returns the smallest extent containing all coordinates.
func ExtentOf(coords []Coordinate) Extent {
	e := EmptyExtent()
	for _, c := range coords {
		e[0] = math.Min(e[0], c[0])
		e[1] = math.Min(e[1], c[1])
		e[2] = math.Max(e[2], c[0])
		e[3] = math.Max(e[3], c[1])
	}
	return e
}

// MinX returns the left bound.
func (e Extent) MinX() float64 { return e[0] }

// MinY returns the top bound.
func (e Extent) MinY() float64 { return e[1] }

// MaxX returns the right bound.
func (e Extent) MaxX() float64 { return e[2] }

// MaxY returns the bottom bound.
func (e Extent) MaxY() float64 { return e[3] }

// Width returns maxX - minX.
func (e Extent) Width() float64 { return e[2] - e[0] }

// Height returns maxY - minY.
func (e Extent) Height() float64 { return e[3] - e[1] }

// IsEmpty reports whether the extent contains no point.
// A zero-area extent such as a single point is not empty.
func (e Extent) IsEmpty() bool {
	return e[2] < e[0] || e[3] < e[1]
}

// Valid reports whether all bounds are finite and ordered.
func (e Extent) Valid() bool {
	for _, v := range e {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return !e.IsEmpty()
}

// Buffer returns the extent grown by d on every side.
func (e Extent) Buffer(d float64) Extent {
	return Extent{e[0] - d, e[1] - d, e[2] + d, e[3] + d}
}

// Intersects reports whether the two extents share at least one point.
func (e Extent) Intersects(o Extent) bool {
	return e[0] <= o[2] && e[2] >= o[0] && e[1] <= o[3] && e[3] >= o[1]
}

// Contains reports whether o lies entirely inside e.
func (e Extent) Contains(o Extent) bool {
	return e[0] <= o[0] && o[2] <= e[2] && e[1] <= o[1] && o[3] <= e[3]
}

// Extend returns the smallest extent containing both e and o.
func (e Extent) Extend(o Extent) Extent {
	return Extent{
		math.Min(e[0], o[0]),
		math.Min(e[1], o[1]),
		math.Max(e[2], o[2]),
		math.Max(e[3], o[3]),
	}
}
