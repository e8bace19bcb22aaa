// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package geom provides the geometric model read by shape styles:
// coordinates, extents, and a few mutable geometries that notify
// subscribers when they change.
//
// Coordinates are canvas coordinates (pixels, Y down), not geographic.
//
//	poly := geom.NewPolygon([][]geom.Coordinate{{{0, 0}, {8, 0}, {4, 6}}})
//	key := poly.Subscribe(func() { log.Println("changed") })
//	poly.Translate(1, 1) // prints "changed"
//	poly.Unsubscribe(key)
package geom
