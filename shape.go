package ggshape

import (
	"fmt"
	"math"

	"github.com/gogpu/ggshape/canvas"
	"github.com/gogpu/ggshape/geom"
)

// ImageStyle is the placement contract shared by image-like styles.
// A style produces a raster and an anchor, and carries the presentation
// parameters a map renderer applies when it places the raster.
type ImageStyle interface {
	canvas.Sprite

	// HitDetectionImage returns the raster used for hit detection.
	HitDetectionImage() (*canvas.Raster, error)

	// Size returns the raster size as {width, height}.
	Size() ([2]int, error)

	// ImageSize returns the size of the display raster.
	ImageSize() ([2]int, error)

	// HitDetectionImageSize returns the size of the hit detection raster.
	HitDetectionImageSize() ([2]int, error)

	// Origin returns the top-left corner of the raster region to use.
	Origin() geom.Coordinate

	// ImageState reports whether the raster is available.
	ImageState() ImageState

	// Load starts loading the raster.
	Load()

	// ListenImageChange registers fn to be called when the raster
	// finishes loading.
	ListenImageChange(fn func()) geom.Key

	// UnlistenImageChange releases a registration made by ListenImageChange.
	UnlistenImageChange(k geom.Key)

	SetOpacity(opacity float64)
	SetRotation(rotation float64)
	SetScale(scale float64)
	SetRotateWithView(rotate bool)
	SetSnapToPixel(snap bool)
}

// ShapeStyle is an image style rendered from a vector description and
// cached as a raster until the description changes.
//
// The set of shape styles is closed: *ExplicitDrawShape and *OutlineShape.
//
// A ShapeStyle is NOT safe for concurrent use.
type ShapeStyle interface {
	ImageStyle

	// Extent returns the drawing bounds in canvas coordinates.
	// ok is false when there is nothing to bound.
	Extent() (extent geom.Extent, ok bool)

	// Render draws the shape into ctx. The caller has already translated
	// ctx so that the top-left of the rounded extent maps to (0, 0).
	Render(ctx *canvas.Context, extent geom.Extent) error

	// Changed invalidates the cached raster and anchor.
	Changed()

	// CanvasAnchor returns the anchor in canvas coordinates.
	CanvasAnchor() geom.Coordinate

	// SetCanvasAnchor sets the anchor in canvas coordinates.
	SetCanvasAnchor(anchor geom.Coordinate)

	// Clone returns an independent copy with an empty cache.
	Clone() ShapeStyle

	// Close releases resources held by the style.
	Close() error

	shapeStyle()
}

// Compile-time interface checks.
var (
	_ ShapeStyle = (*ExplicitDrawShape)(nil)
	_ ShapeStyle = (*OutlineShape)(nil)
)

// MaxRasterPixels is the largest raster, in pixels, a shape may allocate.
// Extents needing more are rejected with ErrExtentTooLarge.
const MaxRasterPixels = 1 << 26

// variant is the part of a shape style implemented by each concrete type.
type variant interface {
	Extent() (geom.Extent, bool)
	Render(ctx *canvas.Context, extent geom.Extent) error
	Changed()
}

// rasterCache holds the result of the last rasterization.
// raster and anchor are set together and cleared together.
type rasterCache struct {
	raster *canvas.Raster
	anchor geom.Coordinate
	valid  bool
}

// shape is the state and cache logic shared by all shape styles.
type shape struct {
	imageStyle

	canvasAnchor geom.Coordinate
	cache        rasterCache

	// variant dispatches Extent, Render and Changed to the concrete style.
	variant variant
}

func newShape(o options, v variant) shape {
	return shape{
		imageStyle:   newImageStyle(o),
		canvasAnchor: o.canvasAnchor,
		variant:      v,
	}
}

// cloneBase copies the presentation parameters and anchor, but not the cache.
func (s *shape) cloneBase(v variant) shape {
	return shape{
		imageStyle:   s.imageStyle,
		canvasAnchor: s.canvasAnchor,
		variant:      v,
	}
}

func (*shape) shapeStyle() {}

// invalidate drops the cached raster and anchor.
func (s *shape) invalidate() {
	s.cache.raster = nil
	s.cache.anchor = geom.Coordinate{}
	s.cache.valid = false
}

// Image returns the cached raster, rasterizing the shape on a cache miss.
// Calls between two invalidations return the same *canvas.Raster.
func (s *shape) Image() (*canvas.Raster, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}
	return s.cache.raster, nil
}

// HitDetectionImage returns the same raster as Image.
func (s *shape) HitDetectionImage() (*canvas.Raster, error) {
	return s.Image()
}

// Anchor returns the anchor in raster pixel coordinates, recomputed
// together with the raster.
func (s *shape) Anchor() (geom.Coordinate, error) {
	if err := s.ensure(); err != nil {
		return geom.Coordinate{}, err
	}
	return s.cache.anchor, nil
}

// Size returns {width, height} of the raster.
func (s *shape) Size() ([2]int, error) {
	if err := s.ensure(); err != nil {
		return [2]int{}, err
	}
	return [2]int{s.cache.raster.Width(), s.cache.raster.Height()}, nil
}

// ImageSize returns the same value as Size.
func (s *shape) ImageSize() ([2]int, error) { return s.Size() }

// HitDetectionImageSize returns the same value as Size.
func (s *shape) HitDetectionImageSize() ([2]int, error) { return s.Size() }

// Origin returns (0, 0): the whole raster is used.
func (s *shape) Origin() geom.Coordinate { return geom.Coordinate{} }

// ImageState always reports ImageStateLoaded. Rasterization happens
// synchronously on first access.
func (s *shape) ImageState() ImageState { return ImageStateLoaded }

// Load does nothing.
func (s *shape) Load() {}

// ListenImageChange does nothing and returns a zero key: the raster is
// never loaded asynchronously.
func (s *shape) ListenImageChange(func()) geom.Key { return geom.Key{} }

// UnlistenImageChange does nothing.
func (s *shape) UnlistenImageChange(geom.Key) {}

// CanvasAnchor returns the anchor in canvas coordinates.
func (s *shape) CanvasAnchor() geom.Coordinate {
	return s.canvasAnchor
}

// SetCanvasAnchor sets the anchor in canvas coordinates and invalidates
// the cache.
func (s *shape) SetCanvasAnchor(anchor geom.Coordinate) {
	s.canvasAnchor = anchor
	s.variant.Changed()
}

func (s *shape) ensure() error {
	if s.cache.valid {
		return nil
	}
	return s.rasterize()
}

// rasterize renders the variant into a surface covering its extent rounded
// outward to whole pixels. On failure the cache stays invalid.
func (s *shape) rasterize() error {
	extent, ok := s.variant.Extent()
	if !ok {
		return ErrNoExtent
	}
	if math.IsNaN(extent.Width()) || math.IsNaN(extent.Height()) || extent.IsEmpty() {
		return fmt.Errorf("%w: %v", ErrInvalidExtent, extent)
	}

	minX := math.Floor(extent.MinX())
	minY := math.Floor(extent.MinY())
	maxX := math.Ceil(extent.MaxX())
	maxY := math.Ceil(extent.MaxY())
	width, height := maxX-minX, maxY-minY
	if math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidExtent, extent)
	}
	if width > MaxRasterPixels || height > MaxRasterPixels || width*height > MaxRasterPixels {
		return fmt.Errorf("%w: %v needs a %.0fx%.0f raster", ErrExtentTooLarge, extent, width, height)
	}

	ctx := canvas.NewContext(int(width), int(height))
	defer func() { _ = ctx.Close() }()

	ctx.Translate(-minX, -minY)
	if err := s.variant.Render(ctx, extent); err != nil {
		Logger().Warn("ggshape: render failed",
			"extent", extent,
			"error", err)
		return fmt.Errorf("ggshape: render: %w", err)
	}

	s.cache.raster = ctx.Raster()
	s.cache.anchor = geom.Coordinate{s.canvasAnchor.X() - minX, s.canvasAnchor.Y() - minY}
	s.cache.valid = true

	Logger().Debug("ggshape: rasterized",
		"extent", extent,
		"width", int(width),
		"height", int(height))
	return nil
}
