// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

// Circle is a circle given by its center and radius.
type Circle struct {
	Observable

	center Coordinate
	radius float64
}

// NewCircle creates a circle.
func NewCircle(center Coordinate, radius float64) *Circle {
	return &Circle{center: center, radius: radius}
}

// Center returns the center of the circle.
func (c *Circle) Center() Coordinate { return c.center }

// Radius returns the radius of the circle.
func (c *Circle) Radius() float64 { return c.radius }

// SetCenter moves the circle and notifies subscribers.
func (c *Circle) SetCenter(center Coordinate) {
	c.center = center
	c.Changed()
}

// SetRadius resizes the circle and notifies subscribers.
func (c *Circle) SetRadius(radius float64) {
	c.radius = radius
	c.Changed()
}

// Translate moves the circle by (dx, dy) and notifies subscribers.
func (c *Circle) Translate(dx, dy float64) {
	c.center[0] += dx
	c.center[1] += dy
	c.Changed()
}

// Extent returns the bounding square of the circle.
func (c *Circle) Extent() Extent {
	return Extent{
		c.center[0] - c.radius,
		c.center[1] - c.radius,
		c.center[0] + c.radius,
		c.center[1] + c.radius,
	}
}

// Clone returns a copy of the circle without subscriptions.
func (c *Circle) Clone() Geometry {
	return NewCircle(c.center, c.radius)
}
