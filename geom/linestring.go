// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

// LineString is an open polyline.
type LineString struct {
	Observable

	coords []Coordinate
}

// NewLineString creates a line string from a copy of coords.
func NewLineString(coords []Coordinate) *LineString {
	return &LineString{coords: cloneCoords(coords)}
}

// Coordinates returns a copy of the vertices.
func (l *LineString) Coordinates() []Coordinate {
	return cloneCoords(l.coords)
}

// SetCoordinates replaces the vertices with a copy of coords and notifies
// subscribers.
func (l *LineString) SetCoordinates(coords []Coordinate) {
	l.coords = cloneCoords(coords)
	l.Changed()
}

// AppendCoordinate adds a vertex at the end and notifies subscribers.
func (l *LineString) AppendCoordinate(c Coordinate) {
	l.coords = append(l.coords, c)
	l.Changed()
}

// Translate moves every vertex by (dx, dy) and notifies subscribers.
func (l *LineString) Translate(dx, dy float64) {
	translateCoords(l.coords, dx, dy)
	l.Changed()
}

// Extent returns the bounding box of the vertices.
func (l *LineString) Extent() Extent {
	return ExtentOf(l.coords)
}

// Clone returns a deep copy without subscriptions.
func (l *LineString) Clone() Geometry {
	return NewLineString(l.coords)
}
