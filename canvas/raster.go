// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Compile-time interface check.
var _ image.Image = (*Raster)(nil)

// Raster is a rendered shape: an immutable RGBA image with premultiplied
// alpha. Every rasterization produces a new Raster, so pointer identity
// tells whether a shape was rendered again.
type Raster struct {
	img *image.RGBA
}

func newRaster(img *image.RGBA) *Raster {
	return &Raster{img: img}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int {
	return r.img.Bounds().Dx()
}

// Height returns the raster height in pixels.
func (r *Raster) Height() int {
	return r.img.Bounds().Dy()
}

// Bounds implements image.Image.
func (r *Raster) Bounds() image.Rectangle {
	return r.img.Bounds()
}

// ColorModel implements image.Image.
func (r *Raster) ColorModel() color.Model {
	return color.RGBAModel
}

// At implements image.Image.
func (r *Raster) At(x, y int) color.Color {
	return r.img.At(x, y)
}

// RGBA returns the pixel buffer. Callers must treat it as read-only.
func (r *Raster) RGBA() *image.RGBA {
	return r.img
}

// Opaque reports whether the pixel at (x, y) has any coverage.
// It is the hit test for the shape; points outside the raster miss.
func (r *Raster) Opaque(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(r.img.Bounds()) {
		return false
	}
	return r.img.RGBAAt(x, y).A > 0
}

// EncodePNG writes the raster as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}
