package ggshape

import (
	"github.com/gogpu/ggshape/canvas"
	"github.com/gogpu/ggshape/geom"
	"github.com/gogpu/ggshape/paint"
)

// OutlineShape is a shape style that fills and strokes a geometry.
//
// The shape subscribes to the geometry and re-rasterizes after it changes.
// The geometry and paints are read, never modified. Call Close to release
// the geometry subscription when the shape is no longer used.
type OutlineShape struct {
	shape

	geometry geom.Geometry
	listener geom.Key
	fill     *paint.Fill
	stroke   *paint.Stroke

	extent      geom.Extent
	extentValid bool
}

// NewOutlineShape creates a shape drawing g. g may be nil.
// Paints are set with WithFill and WithStroke.
func NewOutlineShape(g geom.Geometry, opts ...Option) *OutlineShape {
	o := applyOptions(opts)
	s := &OutlineShape{
		fill:   o.fill,
		stroke: o.stroke,
	}
	s.shape = newShape(o, s)
	s.attach(g)
	return s
}

// attach moves the change subscription from the current geometry to g.
func (s *OutlineShape) attach(g geom.Geometry) {
	if s.geometry != nil {
		s.geometry.Unsubscribe(s.listener)
	}
	s.geometry = g
	s.listener = geom.Key{}
	if g != nil {
		s.listener = g.Subscribe(s.Changed)
	}
}

// Geometry returns the drawn geometry.
func (s *OutlineShape) Geometry() geom.Geometry {
	return s.geometry
}

// SetGeometry replaces the drawn geometry. g may be nil.
func (s *OutlineShape) SetGeometry(g geom.Geometry) {
	s.attach(g)
	s.Changed()
}

// Fill returns the fill paint.
func (s *OutlineShape) Fill() *paint.Fill {
	return s.fill
}

// SetFill replaces the fill paint. nil disables filling.
func (s *OutlineShape) SetFill(fill *paint.Fill) {
	s.fill = fill
	s.Changed()
}

// Stroke returns the stroke paint.
func (s *OutlineShape) Stroke() *paint.Stroke {
	return s.stroke
}

// SetStroke replaces the stroke paint. nil disables stroking.
func (s *OutlineShape) SetStroke(stroke *paint.Stroke) {
	s.stroke = stroke
	s.Changed()
}

// Extent returns the geometry extent grown by half the stroke width on
// every side. ok is false when the shape has no geometry or the geometry
// has no coordinates.
func (s *OutlineShape) Extent() (geom.Extent, bool) {
	if s.extentValid {
		return s.extent, true
	}
	if s.geometry == nil {
		return geom.Extent{}, false
	}
	e := s.geometry.Extent()
	if e.IsEmpty() {
		return geom.Extent{}, false
	}
	if s.stroke != nil {
		e = e.Buffer(s.stroke.Width / 2)
	}
	s.extent = e
	s.extentValid = true
	return e, true
}

// Render draws the geometry with the shape's fill and stroke.
func (s *OutlineShape) Render(ctx *canvas.Context, extent geom.Extent) error {
	if s.geometry == nil {
		return nil
	}
	return ctx.Scoped(func() error {
		ctx.SetFillStrokeStyle(s.fill, s.stroke)
		return ctx.DrawGeometry(s.geometry, extent)
	})
}

// Changed invalidates the cached raster and the derived extent.
func (s *OutlineShape) Changed() {
	s.invalidate()
	s.extent = geom.Extent{}
	s.extentValid = false
}

// Clone returns a copy drawing a clone of the geometry with cloned paints.
// The copy subscribes to its own geometry.
func (s *OutlineShape) Clone() ShapeStyle {
	c := &OutlineShape{
		fill:   s.fill.Clone(),
		stroke: s.stroke.Clone(),
	}
	c.shape = s.cloneBase(c)
	if s.geometry != nil {
		c.attach(s.geometry.Clone())
	}
	return c
}

// Close releases the geometry subscription and the cached raster.
// The geometry is kept, so the shape can still be rendered. Close is
// idempotent.
func (s *OutlineShape) Close() error {
	if s.geometry != nil {
		s.geometry.Unsubscribe(s.listener)
	}
	s.listener = geom.Key{}
	s.Changed()
	return nil
}
