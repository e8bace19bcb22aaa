package ggshape

import (
	"github.com/gogpu/ggshape/geom"
	"github.com/gogpu/ggshape/paint"
)

// DefaultExtent is the canvas extent of an ExplicitDrawShape created
// without WithExtent: a 20×20 box centered on the origin.
var DefaultExtent = geom.Extent{-10, -10, 10, 10}

// Option configures a shape style during creation.
//
// Example:
//
//	pin := ggshape.NewExplicitDrawShape(drawPin,
//	    ggshape.WithExtent(geom.NewExtent(-6, -16, 6, 0)),
//	    ggshape.WithScale(1.5),
//	)
type Option func(*options)

// options holds the configuration shared by all shape variants.
// Variant-specific fields are ignored by the other variant.
type options struct {
	canvasAnchor   geom.Coordinate
	opacity        float64
	rotation       float64
	scale          float64
	rotateWithView bool
	snapToPixel    bool

	// ExplicitDrawShape only.
	extent geom.Extent

	// OutlineShape only.
	fill   *paint.Fill
	stroke *paint.Stroke
}

// defaultOptions returns the default shape options.
func defaultOptions() options {
	return options{
		opacity:     1,
		scale:       1,
		snapToPixel: true,
		extent:      DefaultExtent,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCanvasAnchor sets the anchor point in canvas coordinates.
// The anchor is the point placed on the feature position. Default: (0, 0).
func WithCanvasAnchor(anchor geom.Coordinate) Option {
	return func(o *options) {
		o.canvasAnchor = anchor
	}
}

// WithOpacity sets the opacity. Values outside [0, 1] are clamped. Default: 1.
func WithOpacity(opacity float64) Option {
	return func(o *options) {
		o.opacity = opacity
	}
}

// WithRotation sets the rotation in radians, clockwise on screen. Default: 0.
func WithRotation(rotation float64) Option {
	return func(o *options) {
		o.rotation = rotation
	}
}

// WithScale sets the placement scale factor. Default: 1.
func WithScale(scale float64) Option {
	return func(o *options) {
		o.scale = scale
	}
}

// WithRotateWithView makes the shape rotate along with the map view.
func WithRotateWithView(rotate bool) Option {
	return func(o *options) {
		o.rotateWithView = rotate
	}
}

// WithSnapToPixel controls whether placement offsets are rounded to whole
// pixels. Default: true.
func WithSnapToPixel(snap bool) Option {
	return func(o *options) {
		o.snapToPixel = snap
	}
}

// WithExtent sets the canvas extent of an ExplicitDrawShape.
// Default: DefaultExtent.
func WithExtent(extent geom.Extent) Option {
	return func(o *options) {
		o.extent = extent
	}
}

// WithFill sets the fill paint of an OutlineShape.
func WithFill(fill *paint.Fill) Option {
	return func(o *options) {
		o.fill = fill
	}
}

// WithStroke sets the stroke paint of an OutlineShape.
func WithStroke(stroke *paint.Stroke) Option {
	return func(o *options) {
		o.stroke = stroke
	}
}
