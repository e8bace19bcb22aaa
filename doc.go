// Package ggshape renders vector shape styles into cached rasters for fast
// repeated placement on a map canvas.
//
// # Overview
//
// A ShapeStyle turns a vector description into a raster the first time its
// image, anchor or size is requested, and keeps that raster until the
// description changes. Two styles are provided:
//
//   - ExplicitDrawShape: a caller-supplied DrawFunc inside a fixed extent.
//   - OutlineShape: a geom.Geometry filled and stroked with paint
//     descriptors. The shape follows the geometry's change notifications.
//
// Drawing is done by the github.com/gogpu/gg software rasterizer through a
// canvas.Context.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/ggshape"
//	    "github.com/gogpu/ggshape/canvas"
//	    "github.com/gogpu/ggshape/geom"
//	    "github.com/gogpu/ggshape/paint"
//	)
//
//	square := geom.NewPolygon([][]geom.Coordinate{{{0, 0}, {16, 0}, {16, 16}, {0, 16}}})
//	style := ggshape.NewOutlineShape(square,
//	    ggshape.WithFill(paint.NewFill(gg.Red)),
//	    ggshape.WithStroke(paint.NewStroke(gg.Black, 2)),
//	    ggshape.WithCanvasAnchor(geom.Coordinate{8, 8}),
//	)
//	defer style.Close()
//
//	frame := canvas.NewFrame(256, 256)
//	_ = frame.Place(style, canvas.Placement{X: 128, Y: 128})
//	_ = frame.SavePNG("map.png")
//
// # Rasterization
//
// The extent of a shape is rounded outward to whole pixels. The raster
// covers exactly that box, and the origin is translated so the box's
// top-left corner is pixel (0, 0). The anchor is reported in raster pixels.
//
// # Coordinate System
//
// Extents are [minX, minY, maxX, maxY] in canvas coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// Shape styles are NOT safe for concurrent use. Only SetLogger and Logger
// may be called from any goroutine.
package ggshape
