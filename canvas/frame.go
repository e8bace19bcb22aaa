// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/ggshape/geom"
)

// Sprite is an image style that can be placed on a Frame.
// Every shape style in ggshape implements it.
type Sprite interface {
	Image() (*Raster, error)
	Anchor() (geom.Coordinate, error)
	Opacity() float64
	Rotation() float64
	Scale() float64
	RotateWithView() bool
	SnapToPixel() bool
}

// Placement positions a sprite on a frame.
type Placement struct {
	// X, Y is the frame pixel the sprite's anchor lands on.
	X, Y float64

	// ViewRotation is the map rotation in radians, added to the sprite's
	// rotation when the sprite rotates with the view.
	ViewRotation float64
}

// Frame is a map canvas that sprites are composited onto.
//
// Frame is NOT safe for concurrent use.
type Frame struct {
	img *image.RGBA
}

// NewFrame creates a transparent frame.
func NewFrame(width, height int) *Frame {
	return &Frame{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// NewFrameFromImage creates a frame initialized with a copy of src,
// typically a rendered base map.
func NewFrameFromImage(src image.Image) *Frame {
	b := src.Bounds()
	f := NewFrame(b.Dx(), b.Dy())
	draw.Draw(f.img, f.img.Bounds(), src, b.Min, draw.Src)
	return f
}

// Image returns the frame pixels.
func (f *Frame) Image() *image.RGBA {
	return f.img
}

// Place draws the sprite's raster so that its anchor lands on (p.X, p.Y),
// scaled and rotated about the anchor. Sprites with zero opacity or an
// empty raster are skipped.
func (f *Frame) Place(s Sprite, p Placement) error {
	if s == nil {
		return ErrNilSprite
	}
	opacity := min(s.Opacity(), 1)
	if !(opacity > 0) {
		return nil
	}

	src, err := s.Image()
	if err != nil {
		return fmt.Errorf("canvas: place: %w", err)
	}
	anchor, err := s.Anchor()
	if err != nil {
		return fmt.Errorf("canvas: place: %w", err)
	}
	if src.Bounds().Empty() {
		return nil
	}

	rotation := s.Rotation()
	if s.RotateWithView() {
		rotation += p.ViewRotation
	}
	scale := s.Scale()

	var mask image.Image
	if opacity < 1 {
		mask = image.NewUniform(color.Alpha16{A: uint16(opacity * 0xffff)})
	}

	if rotation == 0 && scale == 1 {
		ox, oy := p.X-anchor.X(), p.Y-anchor.Y()
		if s.SnapToPixel() {
			ox, oy = math.Round(ox), math.Round(oy)
		}
		if ox == math.Trunc(ox) && oy == math.Trunc(oy) {
			f.blit(src, int(ox), int(oy), mask)
			return nil
		}
	}

	sin, cos := math.Sincos(rotation)
	a, b := scale*cos, -scale*sin
	d, e := scale*sin, scale*cos
	tx := p.X - (a*anchor.X() + b*anchor.Y())
	ty := p.Y - (d*anchor.X() + e*anchor.Y())
	if s.SnapToPixel() {
		tx, ty = math.Round(tx), math.Round(ty)
	}

	s2d := f64.Aff3{a, b, tx, d, e, ty}
	var opts *draw.Options
	if mask != nil {
		opts = &draw.Options{SrcMask: mask}
	}
	draw.BiLinear.Transform(f.img, s2d, src.RGBA(), src.Bounds(), draw.Over, opts)
	return nil
}

// blit copies src onto the frame at an integral offset.
func (f *Frame) blit(src *Raster, x, y int, mask image.Image) {
	r := src.Bounds().Add(image.Pt(x, y))
	if mask == nil {
		draw.Draw(f.img, r, src.RGBA(), image.Point{}, draw.Over)
		return
	}
	draw.DrawMask(f.img, r, src.RGBA(), image.Point{}, mask, image.Point{}, draw.Over)
}

// EncodePNG writes the frame as PNG.
func (f *Frame) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.img)
}

// SavePNG writes the frame to a PNG file.
func (f *Frame) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := f.EncodePNG(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
