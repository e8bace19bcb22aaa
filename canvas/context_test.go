// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggshape/geom"
	"github.com/gogpu/ggshape/paint"
)

// square returns a closed polygon covering [x0,x1]×[y0,y1].
func square(x0, y0, x1, y1 float64) *geom.Polygon {
	return geom.NewPolygon([][]geom.Coordinate{{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}})
}

func alphaAt(r *Raster, x, y int) uint8 {
	return r.RGBA().RGBAAt(x, y).A
}

func TestNewContext_Size(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"square", 20, 20},
		{"wide", 30, 5},
		{"zero width", 0, 10},
		{"zero both", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext(tt.w, tt.h)
			defer ctx.Close()

			if ctx.Width() != tt.w || ctx.Height() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", ctx.Width(), ctx.Height(), tt.w, tt.h)
			}
			r := ctx.Raster()
			if r.Width() != tt.w || r.Height() != tt.h {
				t.Errorf("raster size = %dx%d, want %dx%d", r.Width(), r.Height(), tt.w, tt.h)
			}
		})
	}
}

func TestContext_SaveRestoreDepth(t *testing.T) {
	ctx := NewContext(4, 4)
	ctx.Restore() // unmatched: no-op
	if ctx.Depth() != 0 {
		t.Fatalf("Depth() = %d after unmatched Restore, want 0", ctx.Depth())
	}

	ctx.Save()
	ctx.Save()
	if ctx.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", ctx.Depth())
	}
	ctx.Restore()
	ctx.Restore()
	if ctx.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", ctx.Depth())
	}
}

func TestContext_ScopedRestoresOnError(t *testing.T) {
	ctx := NewContext(4, 4)
	errDraw := errors.New("draw failed")

	err := ctx.Scoped(func() error {
		ctx.Translate(100, 100)
		return errDraw
	})
	if !errors.Is(err, errDraw) {
		t.Fatalf("Scoped() = %v, want %v", err, errDraw)
	}
	if ctx.Depth() != 0 {
		t.Errorf("Depth() = %d after failed scope, want 0", ctx.Depth())
	}
	if m := ctx.DC().GetTransform(); m != gg.Identity() {
		t.Errorf("transform not restored: %v", m)
	}
}

func TestContext_ScopedRestoresOnPanic(t *testing.T) {
	ctx := NewContext(4, 4)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic was swallowed")
			}
		}()
		_ = ctx.Scoped(func() error {
			ctx.Translate(5, 5)
			panic("boom")
		})
	}()

	if ctx.Depth() != 0 {
		t.Errorf("Depth() = %d after panic, want 0", ctx.Depth())
	}
	if m := ctx.DC().GetTransform(); m != gg.Identity() {
		t.Errorf("transform not restored after panic: %v", m)
	}
}

func TestContext_ScopedRestoresPaint(t *testing.T) {
	ctx := NewContext(4, 4)
	fill := paint.NewFill(gg.Red)
	ctx.SetFillStrokeStyle(fill, nil)

	_ = ctx.Scoped(func() error {
		ctx.SetFillStrokeStyle(nil, paint.NewStroke(gg.Blue, 9))
		ctx.DC().SetLineWidth(9)
		return nil
	})

	if ctx.cur.fill != fill || ctx.cur.stroke != nil {
		t.Errorf("paint selection not restored: fill=%v stroke=%v", ctx.cur.fill, ctx.cur.stroke)
	}
	if w := ctx.DC().GetStroke().Width; w != 1 {
		t.Errorf("line width = %v after restore, want 1", w)
	}
}

func TestContext_DrawGeometryFill(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.SetFillStrokeStyle(paint.NewFill(gg.Red), nil)

	extent := geom.NewExtent(0, 0, 10, 10)
	if err := ctx.DrawGeometry(square(0, 0, 10, 10), extent); err != nil {
		t.Fatalf("DrawGeometry() error = %v", err)
	}

	px := ctx.Raster().RGBA().RGBAAt(5, 5)
	if px.R < 250 || px.G > 5 || px.B > 5 || px.A < 250 {
		t.Errorf("center pixel = %v, want opaque red", px)
	}
}

func TestContext_DrawGeometryTranslated(t *testing.T) {
	// Extent [-5,-5,5,5] mapped onto a 10x10 surface.
	ctx := NewContext(10, 10)
	ctx.Translate(5, 5)
	ctx.SetFillStrokeStyle(paint.NewFill(gg.Black), nil)

	if err := ctx.DrawGeometry(square(-5, -5, 0, 0), geom.NewExtent(-5, -5, 5, 5)); err != nil {
		t.Fatalf("DrawGeometry() error = %v", err)
	}
	r := ctx.Raster()
	if alphaAt(r, 2, 2) == 0 {
		t.Error("top-left quadrant should be covered")
	}
	if alphaAt(r, 7, 7) != 0 {
		t.Error("bottom-right quadrant should be empty")
	}
}

func TestContext_DrawGeometryPolygonHole(t *testing.T) {
	ctx := NewContext(12, 12)
	ctx.SetFillStrokeStyle(paint.NewFill(gg.Black), nil)

	// Both rings share orientation; the hole still shows through.
	poly := geom.NewPolygon([][]geom.Coordinate{
		{{0, 0}, {12, 0}, {12, 12}, {0, 12}},
		{{4, 4}, {8, 4}, {8, 8}, {4, 8}},
	})
	if err := ctx.DrawGeometry(poly, geom.NewExtent(0, 0, 12, 12)); err != nil {
		t.Fatalf("DrawGeometry() error = %v", err)
	}
	r := ctx.Raster()
	if alphaAt(r, 1, 1) == 0 {
		t.Error("exterior should be filled")
	}
	if alphaAt(r, 6, 6) != 0 {
		t.Error("hole should be empty")
	}
}

func TestContext_DrawGeometryMultiPolygonOverlap(t *testing.T) {
	ctx := NewContext(16, 16)
	ctx.SetFillStrokeStyle(paint.NewFill(gg.Red), nil)

	multi := geom.NewMultiPolygon([][][]geom.Coordinate{
		{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}},
		{{{4, 4}, {14, 4}, {14, 14}, {4, 14}}},
		{
			{{0, 12}, {4, 12}, {4, 16}, {0, 16}},
			{{1, 13}, {3, 13}, {3, 15}, {1, 15}},
		},
	})
	if err := ctx.DrawGeometry(multi, geom.NewExtent(0, 0, 16, 16)); err != nil {
		t.Fatalf("DrawGeometry() error = %v", err)
	}
	r := ctx.Raster()

	tests := []struct {
		name   string
		x, y   int
		filled bool
	}{
		{"first member only", 2, 2, true},
		{"overlap of two members", 6, 6, true},
		{"second member only", 12, 12, true},
		{"outside all members", 12, 2, false},
		{"hole of third member", 2, 14, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := alphaAt(r, tt.x, tt.y) != 0; got != tt.filled {
				t.Errorf("pixel (%d,%d) filled = %v, want %v", tt.x, tt.y, got, tt.filled)
			}
		})
	}
}

func TestContext_DrawGeometryLineStringNotFilled(t *testing.T) {
	ctx := NewContext(20, 20)
	ctx.SetFillStrokeStyle(paint.NewFill(gg.Black), paint.NewStroke(gg.Black, 1))

	line := geom.NewLineString([]geom.Coordinate{{1, 1}, {19, 1}, {19, 19}, {1, 19}})
	if err := ctx.DrawGeometry(line, geom.NewExtent(0, 0, 20, 20)); err != nil {
		t.Fatalf("DrawGeometry() error = %v", err)
	}
	r := ctx.Raster()
	if alphaAt(r, 10, 10) != 0 {
		t.Error("line string interior should not be filled")
	}
	if alphaAt(r, 10, 1) == 0 {
		t.Error("line string should be stroked")
	}
}

func TestContext_DrawGeometrySkipped(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		g      geom.Geometry
		extent geom.Extent
	}{
		{"nil geometry", 10, 10, nil, geom.NewExtent(0, 0, 10, 10)},
		{"outside extent", 10, 10, square(20, 20, 30, 30), geom.NewExtent(0, 0, 10, 10)},
		{"zero surface", 0, 10, square(0, 0, 10, 10), geom.NewExtent(0, 0, 0, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext(tt.w, tt.h)
			ctx.SetFillStrokeStyle(paint.NewFill(gg.Black), nil)
			if err := ctx.DrawGeometry(tt.g, tt.extent); err != nil {
				t.Fatalf("DrawGeometry() error = %v", err)
			}
			r := ctx.Raster()
			for y := 0; y < r.Height(); y++ {
				for x := 0; x < r.Width(); x++ {
					if alphaAt(r, x, y) != 0 {
						t.Fatalf("pixel (%d,%d) painted, want blank surface", x, y)
					}
				}
			}
		})
	}
}

type unknownGeometry struct{ geom.Observable }

func (unknownGeometry) Extent() geom.Extent     { return geom.NewExtent(0, 0, 1, 1) }
func (u *unknownGeometry) Clone() geom.Geometry { return &unknownGeometry{} }

func TestContext_DrawGeometryUnsupported(t *testing.T) {
	ctx := NewContext(4, 4)
	err := ctx.DrawGeometry(&unknownGeometry{}, geom.NewExtent(0, 0, 4, 4))
	if !errors.Is(err, ErrUnsupportedGeometry) {
		t.Errorf("DrawGeometry() = %v, want ErrUnsupportedGeometry", err)
	}
}

func TestContext_RasterIdentity(t *testing.T) {
	ctx := NewContext(3, 3)
	a, b := ctx.Raster(), ctx.Raster()
	if a == b {
		t.Error("each Raster call should produce a distinct snapshot")
	}
}

func TestContext_CloseIdempotent(t *testing.T) {
	ctx := NewContext(3, 3)
	ctx.Save()
	if err := ctx.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := ctx.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if ctx.Depth() != 0 {
		t.Errorf("Depth() = %d after Close, want 0", ctx.Depth())
	}
}

func TestRaster_Opaque(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.SetFillStrokeStyle(paint.NewFill(gg.Black), nil)
	_ = ctx.DrawGeometry(square(0, 0, 5, 10), geom.NewExtent(0, 0, 10, 10))
	r := ctx.Raster()

	if !r.Opaque(2, 5) {
		t.Error("Opaque(2,5) = false, want true")
	}
	if r.Opaque(8, 5) {
		t.Error("Opaque(8,5) = true, want false")
	}
	if r.Opaque(-1, 0) || r.Opaque(10, 0) {
		t.Error("points outside the raster must miss")
	}
}
