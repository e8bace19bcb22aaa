// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggshape/geom"
	"github.com/gogpu/ggshape/paint"
)

// Common errors returned by canvas operations.
var (
	// ErrUnsupportedGeometry is returned by DrawGeometry for geometry types
	// it cannot trace.
	ErrUnsupportedGeometry = errors.New("canvas: unsupported geometry")

	// ErrNilSprite is returned when a nil sprite is placed on a frame.
	ErrNilSprite = errors.New("canvas: nil sprite")
)

// state is the part of the drawing state that gg.Context.Push does not
// cover: paint selection, brush, stroke geometry and fill rule.
type state struct {
	fill     *paint.Fill
	stroke   *paint.Stroke
	brush    gg.Brush
	ggStroke gg.Stroke
	fillRule gg.FillRule
}

// Context is the drawing context a shape style renders into.
// It wraps a gg.Context sized to the shape's raster and adds scoped
// state handling and geometry drawing.
//
// Context is NOT safe for concurrent use.
type Context struct {
	dc     *gg.Context
	cur    state
	stack  []state
	closed bool
}

// NewContext allocates a transparent raster surface of the given size.
// Zero dimensions are allowed and produce a surface with no pixels.
func NewContext(width, height int) *Context {
	dc := gg.NewContext(width, height)
	return &Context{
		dc: dc,
		cur: state{
			brush:    dc.FillBrush(),
			ggStroke: dc.GetStroke(),
			fillRule: gg.FillRuleNonZero,
		},
	}
}

// DC returns the underlying gg drawing context for free-form drawing.
// Coordinates passed to it are subject to the current transform.
func (c *Context) DC() *gg.Context {
	return c.dc
}

// Width returns the surface width in pixels.
func (c *Context) Width() int {
	return c.dc.Width()
}

// Height returns the surface height in pixels.
func (c *Context) Height() int {
	return c.dc.Height()
}

// Save pushes the current transform, clip, paint and stroke state.
func (c *Context) Save() {
	c.dc.Push()
	c.cur.brush = c.dc.FillBrush()
	c.cur.ggStroke = c.dc.GetStroke()
	c.stack = append(c.stack, c.cur)
}

// Restore pops the state saved by the matching Save.
// Restore without a matching Save is a no-op.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	c.dc.Pop()
	c.dc.SetFillBrush(c.cur.brush)
	c.dc.SetStroke(c.cur.ggStroke)
	c.dc.SetFillRule(c.cur.fillRule)
}

// Depth returns the number of unmatched Save calls.
func (c *Context) Depth() int {
	return len(c.stack)
}

// Scoped runs fn between Save and Restore. The state is restored on every
// exit path: a normal return, an error, or a panic, which is re-raised
// after the restore.
func (c *Context) Scoped(fn func() error) error {
	c.Save()
	defer c.Restore()
	return fn()
}

// Translate moves the origin by (x, y).
func (c *Context) Translate(x, y float64) {
	c.dc.Translate(x, y)
}

// SetFillStrokeStyle selects the paints used by DrawGeometry.
// Either may be nil to skip that pass.
func (c *Context) SetFillStrokeStyle(fill *paint.Fill, stroke *paint.Stroke) {
	c.cur.fill = fill
	c.cur.stroke = stroke
}

// DrawGeometry fills and strokes g with the paints selected by
// SetFillStrokeStyle. Line strings are stroked only.
//
// Geometries that do not intersect extent are skipped, and nothing is drawn
// on a surface without pixels. A nil geometry is a no-op.
func (c *Context) DrawGeometry(g geom.Geometry, extent geom.Extent) error {
	if g == nil || c.Width() == 0 || c.Height() == 0 {
		return nil
	}
	if !g.Extent().Intersects(extent) {
		return nil
	}

	switch g := g.(type) {
	case *geom.Circle:
		c.dc.DrawCircle(g.Center().X(), g.Center().Y(), g.Radius())
		return c.fillStroke(true)
	case *geom.LineString:
		c.traceLine(g.Coordinates(), false)
		return c.fillStroke(false)
	case *geom.Polygon:
		c.tracePolygon(g.Rings())
		return c.fillStroke(true)
	case *geom.MultiPolygon:
		// Members are painted one by one so that overlapping members
		// stay filled; even-odd applies within a member's rings only.
		for _, rings := range g.Polygons() {
			c.tracePolygon(rings)
			if err := c.fillStroke(true); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedGeometry, g)
	}
}

func (c *Context) traceLine(coords []geom.Coordinate, closed bool) {
	for i, p := range coords {
		if i == 0 {
			c.dc.MoveTo(p.X(), p.Y())
		} else {
			c.dc.LineTo(p.X(), p.Y())
		}
	}
	if closed && len(coords) > 0 {
		c.dc.ClosePath()
	}
}

func (c *Context) tracePolygon(rings [][]geom.Coordinate) {
	for _, r := range rings {
		c.traceLine(r, true)
	}
}

// fillStroke paints the current path. Holes are honored regardless of ring
// orientation by filling with the even-odd rule.
func (c *Context) fillStroke(fillable bool) error {
	defer c.dc.ClearPath()

	if fillable && c.cur.fill != nil {
		c.dc.SetFillRule(gg.FillRuleEvenOdd)
		c.dc.SetFillBrush(c.cur.fill.Brush())
		err := c.dc.FillPreserve()
		c.dc.SetFillRule(c.cur.fillRule)
		if err != nil {
			return fmt.Errorf("canvas: fill: %w", err)
		}
	}
	if c.cur.stroke != nil && c.cur.stroke.Width > 0 {
		c.dc.SetStrokeBrush(c.cur.stroke.Brush())
		c.dc.SetStroke(c.cur.stroke.GG())
		if err := c.dc.StrokePreserve(); err != nil {
			return fmt.Errorf("canvas: stroke: %w", err)
		}
	}
	return nil
}

// Raster snapshots the surface into an immutable raster.
func (c *Context) Raster() *Raster {
	_ = c.dc.FlushGPU()
	return newRaster(c.dc.ResizeTarget().ToImage())
}

// Close releases the drawing state. Rasters taken earlier stay valid.
// Close is idempotent.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.stack = nil
	return c.dc.Close()
}
