package ggshape

// ImageState is the loading state of an image style.
type ImageState int

// Image states. Shapes rasterize synchronously and always report
// ImageStateLoaded.
const (
	ImageStateIdle ImageState = iota
	ImageStateLoading
	ImageStateLoaded
	ImageStateError
)

// String returns the state name.
func (s ImageState) String() string {
	switch s {
	case ImageStateIdle:
		return "idle"
	case ImageStateLoading:
		return "loading"
	case ImageStateLoaded:
		return "loaded"
	case ImageStateError:
		return "error"
	default:
		return "unknown"
	}
}

// imageStyle holds the presentation parameters applied when a raster is
// placed. They do not affect the raster itself, so changing them never
// invalidates a shape's cache.
type imageStyle struct {
	opacity        float64
	rotation       float64
	scale          float64
	rotateWithView bool
	snapToPixel    bool
}

func newImageStyle(o options) imageStyle {
	return imageStyle{
		opacity:        clampOpacity(o.opacity),
		rotation:       o.rotation,
		scale:          o.scale,
		rotateWithView: o.rotateWithView,
		snapToPixel:    o.snapToPixel,
	}
}

// clampOpacity limits opacity to [0, 1]. NaN counts as fully transparent.
func clampOpacity(opacity float64) float64 {
	if !(opacity > 0) {
		return 0
	}
	return min(opacity, 1)
}

// Opacity returns the placement opacity.
func (s *imageStyle) Opacity() float64 { return s.opacity }

// SetOpacity sets the placement opacity, clamped to [0, 1].
func (s *imageStyle) SetOpacity(opacity float64) { s.opacity = clampOpacity(opacity) }

// Rotation returns the rotation in radians.
func (s *imageStyle) Rotation() float64 { return s.rotation }

// SetRotation sets the rotation in radians.
func (s *imageStyle) SetRotation(rotation float64) { s.rotation = rotation }

// Scale returns the placement scale.
func (s *imageStyle) Scale() float64 { return s.scale }

// SetScale sets the placement scale.
func (s *imageStyle) SetScale(scale float64) { s.scale = scale }

// RotateWithView reports whether the shape rotates with the map view.
func (s *imageStyle) RotateWithView() bool { return s.rotateWithView }

// SetRotateWithView sets whether the shape rotates with the map view.
func (s *imageStyle) SetRotateWithView(rotate bool) { s.rotateWithView = rotate }

// SnapToPixel reports whether placement snaps to whole pixels.
func (s *imageStyle) SnapToPixel() bool { return s.snapToPixel }

// SetSnapToPixel sets whether placement snaps to whole pixels.
func (s *imageStyle) SetSnapToPixel(snap bool) { s.snapToPixel = snap }
