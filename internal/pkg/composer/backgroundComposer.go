package composer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ds124wfegd/dmg-background/internal/entity"
	"github.com/ds124wfegd/dmg-background/internal/pkg/canvas"
	"github.com/ds124wfegd/dmg-background/internal/pkg/fonts"
	"github.com/ds124wfegd/dmg-background/internal/pkg/geometry"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
)

// hintColor is the near-transparent outline of the optional icon rings.
func hintColor() color.NRGBA {
	return color.NRGBA{A: 10}
}

type Composer interface {
	Compose(layout entity.Layout) (image.Image, error)
}

type backgroundComposer struct {
	fonts     fonts.Source
	newCanvas canvas.Factory
	log       logrus.FieldLogger
}

func NewComposer(fontSource fonts.Source, newCanvas canvas.Factory, log logrus.FieldLogger) Composer {
	if newCanvas == nil {
		newCanvas = canvas.NewRaster
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &backgroundComposer{fonts: fontSource, newCanvas: newCanvas, log: log}
}

// Compose paints background, icon hints, arrow and text in that order.
func (c *backgroundComposer) Compose(layout entity.Layout) (image.Image, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	cv := c.newCanvas(layout.Width, layout.Height, layout.Background.NRGBA())
	if cv == nil {
		return nil, fmt.Errorf("failed to allocate %dx%d canvas", layout.Width, layout.Height)
	}

	if layout.IconHints {
		DrawIconHints(cv, layout)
	}

	DrawArrow(cv, layout)

	resolved := fonts.Resolve(c.fonts, layout.FontPaths, float64(layout.TextSize), c.log)
	defer resolved.Face.Close()
	if resolved.Default {
		c.log.Debug("No system font found, using built-in font")
	} else {
		c.log.WithField("font", resolved.Path).Debug("Using system font")
	}

	DrawText(cv, layout, resolved.Face)

	return cv.Image(), nil
}

// DrawIconHints outlines a faint ring around each icon box.
func DrawIconHints(cv canvas.Canvas, layout entity.Layout) {
	radius := float64(layout.HintRadius())
	for _, center := range []entity.Point{layout.AppIconCenter(), layout.AppsFolderCenter()} {
		cv.StrokeCircle(toGeometry(center), radius, 1, hintColor())
	}
}

// DrawArrow strokes the curved arrow from the app icon to the folder and
// caps it with a filled head. It does nothing when the arrow is disabled.
func DrawArrow(cv canvas.Canvas, layout entity.Layout) {
	if layout.Arrow == nil {
		return
	}

	start := toGeometry(layout.AppIconCenter())
	end := toGeometry(layout.ArrowTarget())
	curve := geometry.ArrowCurve(start, end)

	cv.StrokePolyline(curve, float64(layout.ArrowWidth), layout.Arrow.NRGBA())

	head := geometry.ArrowHead(curve[len(curve)-2], end, float64(layout.ArrowHeadSize))
	cv.FillPolygon(head[:], layout.Arrow.NRGBA())
}

// DrawText centres the text horizontally at the configured height.
func DrawText(cv canvas.Canvas, layout entity.Layout, face font.Face) {
	x := TextX(layout.Width, cv.MeasureText(face, layout.Text))
	cv.DrawText(face, layout.Text, x, layout.TextY, layout.TextColor.NRGBA())
}

// TextX is the left edge that centres text of the given width.
func TextX(canvasWidth, textWidth int) int {
	return (canvasWidth - textWidth) / 2
}

func toGeometry(p entity.Point) geometry.Point {
	return geometry.Pt(float64(p.X), float64(p.Y))
}
