package ggshape

import (
	"github.com/gogpu/ggshape/canvas"
	"github.com/gogpu/ggshape/geom"
)

// DrawFunc draws a shape into ctx. extent is the shape's canvas extent;
// ctx is already translated so the extent's rounded top-left is at (0, 0).
type DrawFunc func(ctx *canvas.Context, extent geom.Extent) error

// ExplicitDrawShape is a shape style drawn by a caller-supplied function
// inside a caller-fixed extent.
//
// Example:
//
//	dot := ggshape.NewExplicitDrawShape(func(ctx *canvas.Context, _ geom.Extent) error {
//	    dc := ctx.DC()
//	    dc.DrawCircle(0, 0, 8)
//	    dc.SetRGB(1, 0, 0)
//	    return dc.Fill()
//	})
type ExplicitDrawShape struct {
	shape

	draw   DrawFunc
	extent geom.Extent
}

// NewExplicitDrawShape creates a shape drawn by draw. A nil draw renders
// nothing. The extent defaults to DefaultExtent.
func NewExplicitDrawShape(draw DrawFunc, opts ...Option) *ExplicitDrawShape {
	o := applyOptions(opts)
	s := &ExplicitDrawShape{
		draw:   draw,
		extent: o.extent,
	}
	s.shape = newShape(o, s)
	return s
}

// Extent returns the stored extent.
func (s *ExplicitDrawShape) Extent() (geom.Extent, bool) {
	return s.extent, true
}

// SetExtent replaces the extent.
func (s *ExplicitDrawShape) SetExtent(extent geom.Extent) {
	s.extent = extent
	s.Changed()
}

// DrawFunc returns the draw function.
func (s *ExplicitDrawShape) DrawFunc() DrawFunc {
	return s.draw
}

// SetDrawFunc replaces the draw function.
func (s *ExplicitDrawShape) SetDrawFunc(draw DrawFunc) {
	s.draw = draw
	s.Changed()
}

// Render calls the draw function between a save and a restore of the
// context state. The state is restored even if the function fails or panics.
func (s *ExplicitDrawShape) Render(ctx *canvas.Context, extent geom.Extent) error {
	if s.draw == nil {
		return nil
	}
	return ctx.Scoped(func() error {
		return s.draw(ctx, extent)
	})
}

// Changed invalidates the cached raster.
func (s *ExplicitDrawShape) Changed() {
	s.invalidate()
}

// Clone returns a copy that shares the draw function.
func (s *ExplicitDrawShape) Clone() ShapeStyle {
	c := &ExplicitDrawShape{
		draw:   s.draw,
		extent: s.extent,
	}
	c.shape = s.cloneBase(c)
	return c
}

// Close drops the cached raster.
func (s *ExplicitDrawShape) Close() error {
	s.invalidate()
	return nil
}
