// Command shapedemo renders shape styles onto a map frame and saves a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggshape"
	"github.com/gogpu/ggshape/canvas"
	"github.com/gogpu/ggshape/geom"
	"github.com/gogpu/ggshape/paint"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "shapes.png", "output file")
		verbose = flag.Bool("v", false, "log rasterization to stderr")
	)
	flag.Parse()

	if *verbose {
		ggshape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	dc := gg.NewContext(*width, *height)
	drawGradientBackground(dc, *width, *height)
	frame := canvas.NewFrameFromImage(dc.Image())
	_ = dc.Close()

	star := ggshape.NewExplicitDrawShape(drawStar,
		ggshape.WithExtent(geom.NewExtent(-16, -16, 16, 16)),
	)
	defer star.Close()

	pin := newPin()
	defer pin.Close()

	ring := ggshape.NewOutlineShape(geom.NewCircle(geom.Coordinate{0, 0}, 12),
		ggshape.WithFill(paint.NewFill(gg.RGBA{R: 0.2, G: 0.6, B: 1, A: 0.6})),
		ggshape.WithStroke(paint.NewStroke(gg.White, 3)),
		ggshape.WithOpacity(0.8),
	)
	defer ring.Close()

	// The same cached rasters are placed many times.
	for i := 0; i < 12; i++ {
		angle := float64(i) * math.Pi / 6
		x := float64(*width)/2 + 220*math.Cos(angle)
		y := float64(*height)/2 + 220*math.Sin(angle)

		star.SetRotation(angle)
		place(frame, star, x, y, 0)
		place(frame, ring, x, y-40, 0)
	}

	// Markers that rotate with a turned view keep pointing at their feature.
	for i, view := range []float64{0, math.Pi / 8, math.Pi / 4} {
		pin.SetRotateWithView(i > 0)
		place(frame, pin, float64(*width)/2+float64(i-1)*60, float64(*height)/2, view)
	}

	// Editing the geometry re-rasterizes the style on next use.
	if poly, ok := pin.Geometry().(*geom.Polygon); ok {
		poly.Translate(0, -8)
	}
	pin.SetScale(1.5)
	pin.SetRotateWithView(false)
	place(frame, pin, float64(*width)/2, float64(*height)/2+120, 0)

	if err := frame.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Shapes saved to %s (%dx%d)\n", *output, *width, *height)
}

func place(frame *canvas.Frame, s ggshape.ShapeStyle, x, y, view float64) {
	if err := frame.Place(s, canvas.Placement{X: x, Y: y, ViewRotation: view}); err != nil {
		log.Fatalf("Failed to place shape: %v", err)
	}
}

func drawGradientBackground(dc *gg.Context, w, h int) {
	steps := 100
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		dc.SetColor(gg.RGB(0.1+t*0.2, 0.25+t*0.3, 0.2+t*0.1))
		y := float64(h) * t
		dc.DrawRectangle(0, y, float64(w), float64(h)/float64(steps)+1)
		_ = dc.Fill()
	}
}

func drawStar(ctx *canvas.Context, _ geom.Extent) error {
	dc := ctx.DC()
	dc.SetRGB(1, 0.85, 0)

	points := 5
	outerR := 15.0
	innerR := 6.0
	for i := 0; i < points*2; i++ {
		angle := float64(i) * math.Pi / float64(points)
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		x := r * math.Cos(angle-math.Pi/2)
		y := r * math.Sin(angle-math.Pi/2)

		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetRGB(0.4, 0.2, 0)
	dc.SetLineWidth(1.5)
	return dc.Stroke()
}

// newPin returns a map pin whose tip is the anchor.
func newPin() *ggshape.OutlineShape {
	outline := geom.NewPolygon([][]geom.Coordinate{
		{{0, 0}, {-10, -18}, {-10, -28}, {10, -28}, {10, -18}},
		{{-4, -24}, {4, -24}, {4, -16}, {-4, -16}},
	})
	stroke := paint.NewStroke(gg.Black, 2)
	stroke.Join = gg.LineJoinMiter
	return ggshape.NewOutlineShape(outline,
		ggshape.WithFill(paint.NewFill(gg.Red)),
		ggshape.WithStroke(stroke),
	)
}
