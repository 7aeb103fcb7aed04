package canvas

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/dmg-background/internal/pkg/geometry"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const circleSegments = 96

// Raster is an anti-aliased in-memory canvas.
type Raster struct {
	img *image.NRGBA
}

func NewRaster(width, height int, bg color.Color) Canvas {
	return &Raster{img: imaging.New(width, height, color.NRGBAModel.Convert(bg))}
}

func (r *Raster) Bounds() image.Rectangle {
	return r.img.Bounds()
}

func (r *Raster) Image() image.Image {
	return r.img
}

func (r *Raster) StrokePolyline(points []geometry.Point, width float64, c color.Color) {
	if len(points) < 2 || width <= 0 {
		return
	}
	r.fill(geometry.StrokeOutline(points, width), c)
}

func (r *Raster) FillPolygon(points []geometry.Point, c color.Color) {
	if len(points) < 3 {
		return
	}
	r.fill([][]geometry.Point{points}, c)
}

// StrokeCircle draws a ring whose outer edge is radius and inner edge is
// radius-width.
func (r *Raster) StrokeCircle(center geometry.Point, radius, width float64, c color.Color) {
	if radius <= 0 || width <= 0 {
		return
	}

	rings := [][]geometry.Point{geometry.Oriented(geometry.Circle(center, radius, circleSegments), true)}
	if inner := radius - width; inner > 0 {
		rings = append(rings, geometry.Oriented(geometry.Circle(center, inner, circleSegments), false))
	}
	r.fill(rings, c)
}

func (r *Raster) MeasureText(face font.Face, text string) int {
	if text == "" {
		return 0
	}
	bounds, _ := font.BoundString(face, text)
	return (bounds.Max.X - bounds.Min.X).Ceil()
}

func (r *Raster) DrawText(face font.Face, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// fill rasterizes all polygons into one coverage mask so overlapping pieces
// of the same shape are painted once. Pixels the mask does not reach keep
// their stored value.
func (r *Raster) fill(polys [][]geometry.Point, c color.Color) {
	b := r.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Src

	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		z.MoveTo(float32(poly[0].X-float64(b.Min.X)), float32(poly[0].Y-float64(b.Min.Y)))
		for _, p := range poly[1:] {
			z.LineTo(float32(p.X-float64(b.Min.X)), float32(p.Y-float64(b.Min.Y)))
		}
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	src := color.NRGBAModel.Convert(c).(color.NRGBA)
	for y := 0; y < b.Dy(); y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+b.Dx()]
		for x, coverage := range row {
			if coverage == 0 {
				continue
			}
			r.blend(b.Min.X+x, b.Min.Y+y, src, coverage)
		}
	}
}

// blend composites c over the pixel at x, y with the given coverage, in
// non-premultiplied space.
func (r *Raster) blend(x, y int, c color.NRGBA, coverage uint8) {
	a := uint32(c.A) * uint32(coverage) / 255
	if a == 0 {
		return
	}

	i := r.img.PixOffset(x, y)
	p := r.img.Pix[i : i+4 : i+4]
	da := uint32(p[3]) * (255 - a) / 255
	out := a + da

	p[0] = uint8((uint32(c.R)*a + uint32(p[0])*da) / out)
	p[1] = uint8((uint32(c.G)*a + uint32(p[1])*da) / out)
	p[2] = uint8((uint32(c.B)*a + uint32(p[2])*da) / out)
	p[3] = uint8(out)
}
