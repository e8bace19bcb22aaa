package ggshape

import "errors"

// Sentinel errors returned when a shape cannot be rasterized.
var (
	// ErrNoExtent is returned when a shape has nothing to bound,
	// such as an OutlineShape without geometry.
	ErrNoExtent = errors.New("ggshape: shape has no extent")

	// ErrInvalidExtent is returned for extents that are inverted or not finite.
	ErrInvalidExtent = errors.New("ggshape: invalid extent")

	// ErrExtentTooLarge is returned for extents whose raster would exceed
	// MaxRasterPixels.
	ErrExtentTooLarge = errors.New("ggshape: extent too large")
)
