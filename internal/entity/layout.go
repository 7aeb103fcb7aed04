package entity

import (
	"fmt"
	"image/color"
)

// Color is a non-premultiplied RGBA colour with 0-255 channels.
type Color struct {
	R, G, B, A uint8
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// Point is an anchor position in canvas coordinates.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Layout holds every tunable of a background image. It is built once from
// defaults plus overrides and passed by value; nothing mutates it afterwards.
type Layout struct {
	Width  int
	Height int

	AppIcon    Point
	AppsFolder Point
	IconSize   int
	IconHints  bool

	Background Color

	// Arrow is nil when the arrow layer is disabled.
	Arrow         *Color
	ArrowWidth    int
	ArrowHeadSize int

	Text      string
	TextColor Color
	TextSize  int
	TextY     int
	FontPaths []string

	OutputPath string
}

func (l Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidLayout, l.Width, l.Height)
	}
	if l.OutputPath == "" {
		return fmt.Errorf("%w: empty output path", ErrInvalidLayout)
	}
	return nil
}

// AppIconCenter is the centre of the application icon box.
func (l Layout) AppIconCenter() Point {
	return Point{X: l.AppIcon.X + l.IconSize/2, Y: l.AppIcon.Y + l.IconSize/2}
}

// AppsFolderCenter is the centre of the install-location icon box.
func (l Layout) AppsFolderCenter() Point {
	return Point{X: l.AppsFolder.X + l.IconSize/2, Y: l.AppsFolder.Y + l.IconSize/2}
}

// ArrowTarget is where the arrow ends: the folder's x at its vertical centre.
func (l Layout) ArrowTarget() Point {
	return Point{X: l.AppsFolder.X, Y: l.AppsFolder.Y + l.IconSize/2}
}

// HintRadius is the radius of the optional ring drawn around each icon.
func (l Layout) HintRadius() int {
	return l.IconSize/2 + 5
}

// Result describes a written background image.
type Result struct {
	Path   string `json:"path"`
	Bytes  int64  `json:"bytes"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
