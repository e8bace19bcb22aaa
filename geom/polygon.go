// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

// Polygon is a surface bounded by linear rings.
// The first ring is the exterior; following rings are holes.
// Rings are implicitly closed: the last vertex need not repeat the first.
type Polygon struct {
	Observable

	rings [][]Coordinate
}

// NewPolygon creates a polygon from a deep copy of rings.
func NewPolygon(rings [][]Coordinate) *Polygon {
	return &Polygon{rings: cloneRings(rings)}
}

// Rings returns a deep copy of the rings.
func (p *Polygon) Rings() [][]Coordinate {
	return cloneRings(p.rings)
}

// SetRings replaces the rings with a deep copy and notifies subscribers.
func (p *Polygon) SetRings(rings [][]Coordinate) {
	p.rings = cloneRings(rings)
	p.Changed()
}

// Translate moves every vertex by (dx, dy) and notifies subscribers.
func (p *Polygon) Translate(dx, dy float64) {
	for _, r := range p.rings {
		translateCoords(r, dx, dy)
	}
	p.Changed()
}

// Extent returns the bounding box of the exterior ring.
func (p *Polygon) Extent() Extent {
	if len(p.rings) == 0 {
		return EmptyExtent()
	}
	return ExtentOf(p.rings[0])
}

// Clone returns a deep copy without subscriptions.
func (p *Polygon) Clone() Geometry {
	return NewPolygon(p.rings)
}

// MultiPolygon is a collection of polygons drawn as one shape.
type MultiPolygon struct {
	Observable

	polygons [][][]Coordinate
}

// NewMultiPolygon creates a multi-polygon from a deep copy of polygons,
// each given as its rings.
func NewMultiPolygon(polygons [][][]Coordinate) *MultiPolygon {
	m := &MultiPolygon{polygons: make([][][]Coordinate, len(polygons))}
	for i, rings := range polygons {
		m.polygons[i] = cloneRings(rings)
	}
	return m
}

// Polygons returns a deep copy of every polygon's rings.
func (m *MultiPolygon) Polygons() [][][]Coordinate {
	out := make([][][]Coordinate, len(m.polygons))
	for i, rings := range m.polygons {
		out[i] = cloneRings(rings)
	}
	return out
}

// AppendPolygon adds a polygon and notifies subscribers.
func (m *MultiPolygon) AppendPolygon(rings [][]Coordinate) {
	m.polygons = append(m.polygons, cloneRings(rings))
	m.Changed()
}

// Translate moves every vertex by (dx, dy) and notifies subscribers.
func (m *MultiPolygon) Translate(dx, dy float64) {
	for _, rings := range m.polygons {
		for _, r := range rings {
			translateCoords(r, dx, dy)
		}
	}
	m.Changed()
}

// Extent returns the bounding box of all exterior rings.
func (m *MultiPolygon) Extent() Extent {
	e := EmptyExtent()
	for _, rings := range m.polygons {
		if len(rings) > 0 {
			e = e.Extend(ExtentOf(rings[0]))
		}
	}
	return e
}

// Clone returns a deep copy without subscriptions.
func (m *MultiPolygon) Clone() Geometry {
	return NewMultiPolygon(m.polygons)
}
