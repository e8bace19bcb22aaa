// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas provides the drawing surfaces used by shape styles.
//
// Context is the 2D drawing context a shape renders into. It is backed by
// the gg software rasterizer and adds scoped save/restore of the full
// paint state and geometry drawing with fill and stroke paints:
//
//	ctx := canvas.NewContext(20, 20)
//	ctx.Translate(10, 10)
//	ctx.SetFillStrokeStyle(paint.NewFill(gg.Red), nil)
//	_ = ctx.DrawGeometry(geom.NewCircle(geom.Coordinate{0, 0}, 8), extent)
//	r := ctx.Raster()
//
// Raster is the immutable result. Frame is a map canvas onto which rasters
// are placed by their anchor, honoring rotation, scale and opacity.
package canvas
