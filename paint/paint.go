// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package paint describes how an outline is filled and stroked.
//
// Fill and Stroke are plain descriptors. Shape styles share them by
// pointer and never mutate them; use Clone to obtain an independent copy.
package paint

import "github.com/gogpu/gg"

// Default stroke settings, matching the usual map-style defaults
// (round caps and joins, miter limit 10).
const (
	DefaultLineCap    = gg.LineCapRound
	DefaultLineJoin   = gg.LineJoinRound
	DefaultMiterLimit = 10.0
)

// Fill is a solid fill.
type Fill struct {
	Color gg.RGBA
}

// NewFill creates a fill with the given color.
func NewFill(c gg.RGBA) *Fill {
	return &Fill{Color: c}
}

// Clone returns a copy of the fill. Cloning nil returns nil.
func (f *Fill) Clone() *Fill {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

// Brush returns the gg brush painting this fill.
func (f *Fill) Brush() gg.Brush {
	return gg.Solid(f.Color)
}

// Stroke is a solid outline.
type Stroke struct {
	// Color of the line.
	Color gg.RGBA

	// Width is the line width in pixels. Half of it extends outside the
	// outline, which is why a stroked shape's extent grows by Width/2.
	Width float64

	Cap        gg.LineCap
	Join       gg.LineJoin
	MiterLimit float64

	// Dash holds alternating dash and gap lengths; nil draws a solid line.
	Dash       []float64
	DashOffset float64
}

// NewStroke creates a solid stroke with default caps, joins and miter limit.
func NewStroke(c gg.RGBA, width float64) *Stroke {
	return &Stroke{
		Color:      c,
		Width:      width,
		Cap:        DefaultLineCap,
		Join:       DefaultLineJoin,
		MiterLimit: DefaultMiterLimit,
	}
}

// Clone returns a deep copy of the stroke. Cloning nil returns nil.
func (s *Stroke) Clone() *Stroke {
	if s == nil {
		return nil
	}
	c := *s
	if s.Dash != nil {
		c.Dash = make([]float64, len(s.Dash))
		copy(c.Dash, s.Dash)
	}
	return &c
}

// Brush returns the gg brush painting this stroke.
func (s *Stroke) Brush() gg.Brush {
	return gg.Solid(s.Color)
}

// GG converts the stroke geometry settings to a gg.Stroke.
func (s *Stroke) GG() gg.Stroke {
	st := gg.DefaultStroke().
		WithWidth(s.Width).
		WithCap(s.Cap).
		WithJoin(s.Join)
	if s.MiterLimit > 0 {
		st = st.WithMiterLimit(s.MiterLimit)
	}
	if len(s.Dash) > 0 {
		st = st.WithDashPattern(s.Dash...).WithDashOffset(s.DashOffset)
	}
	return st
}
