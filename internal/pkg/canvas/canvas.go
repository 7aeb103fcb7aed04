package canvas

import (
	"image"
	"image/color"

	"github.com/ds124wfegd/dmg-background/internal/pkg/geometry"
	"golang.org/x/image/font"
)

// Canvas is the drawing surface the composer paints layers onto.
type Canvas interface {
	Bounds() image.Rectangle
	StrokePolyline(points []geometry.Point, width float64, c color.Color)
	FillPolygon(points []geometry.Point, c color.Color)
	StrokeCircle(center geometry.Point, radius, width float64, c color.Color)
	// MeasureText returns the pixel width of the rendered text.
	MeasureText(face font.Face, text string) int
	// DrawText draws text with its top line at y.
	DrawText(face font.Face, text string, x, y int, c color.Color)
	Image() image.Image
}

// Factory allocates a canvas of the given size filled with bg.
type Factory func(width, height int, bg color.Color) Canvas
