package geometry

import "math"

const (
	// ArcHeight is how far above the higher endpoint the arrow arc peaks.
	ArcHeight = 50.0
	// CurveSteps is the number of segments the arrow curve is sampled into.
	CurveSteps = 100
	// HeadAngle is the half-angle of the arrowhead (30 degrees).
	HeadAngle = math.Pi / 6
)

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// CubicPoint evaluates the cubic Bezier p0..p3 at t in [0, 1].
func CubicPoint(t float64, p0, p1, p2, p3 Point) Point {
	mt := 1 - t
	w0 := mt * mt * mt
	w1 := 3 * mt * mt * t
	w2 := 3 * mt * t * t
	w3 := t * t * t

	return Point{
		X: w0*p0.X + w1*p1.X + w2*p2.X + w3*p3.X,
		Y: w0*p0.Y + w1*p1.Y + w2*p2.Y + w3*p3.Y,
	}
}

// SampleCubic returns steps+1 points at t = i/steps. The first and last
// samples are p0 and p3.
func SampleCubic(p0, p1, p2, p3 Point, steps int) []Point {
	if steps < 1 {
		steps = 1
	}

	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		points = append(points, CubicPoint(t, p0, p1, p2, p3))
	}
	return points
}

// ArcControls places both control points height units above the higher of
// start and end, each halfway between its endpoint and the horizontal midpoint.
func ArcControls(start, end Point, height float64) (Point, Point) {
	midX := (start.X + end.X) / 2
	controlY := math.Min(start.Y, end.Y) - height

	c1 := Point{X: start.X + (midX-start.X)*0.5, Y: controlY}
	c2 := Point{X: end.X - (end.X-midX)*0.5, Y: controlY}
	return c1, c2
}

// ArrowCurve samples the upward arc from start to end used for the arrow.
func ArrowCurve(start, end Point) []Point {
	c1, c2 := ArcControls(start, end, ArcHeight)
	return SampleCubic(start, c1, c2, end, CurveSteps)
}

// ArrowHead returns the tip followed by the two base vertices of a triangle
// pointing along prev->tip. Each base vertex is size away from the tip, at
// HeadAngle on either side of the shaft.
func ArrowHead(prev, tip Point, size float64) [3]Point {
	angle := math.Atan2(tip.Y-prev.Y, tip.X-prev.X)

	left := Point{
		X: tip.X - size*math.Cos(angle-HeadAngle),
		Y: tip.Y - size*math.Sin(angle-HeadAngle),
	}
	right := Point{
		X: tip.X - size*math.Cos(angle+HeadAngle),
		Y: tip.Y - size*math.Sin(angle+HeadAngle),
	}
	return [3]Point{tip, left, right}
}

// Circle approximates a circle by a closed polygon of n vertices.
func Circle(center Point, radius float64, n int) []Point {
	if n < 3 {
		n = 3
	}

	points := make([]Point, n)
	for i := range points {
		a := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return points
}

// SignedArea is the shoelace area of a closed polygon; its sign gives the
// winding direction.
func SignedArea(poly []Point) float64 {
	var area float64
	for i := range poly {
		j := (i + 1) % len(poly)
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return area / 2
}

// Oriented returns poly wound clockwise (positive area in y-down space) when
// cw is true and counter-clockwise otherwise.
func Oriented(poly []Point, cw bool) []Point {
	if (SignedArea(poly) >= 0) == cw {
		return poly
	}
	out := make([]Point, len(poly))
	for i := range poly {
		out[i] = poly[len(poly)-1-i]
	}
	return out
}

// StrokeOutline turns a polyline into closed polygons covering a stroke of the
// given width: one quad per segment plus a disc at each interior joint, all
// wound the same way so a non-zero fill unions them.
func StrokeOutline(points []Point, width float64) [][]Point {
	hw := width / 2
	var polys [][]Point

	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		d := b.Sub(a)
		length := math.Hypot(d.X, d.Y)
		if length == 0 {
			continue
		}
		nx, ny := -d.Y/length*hw, d.X/length*hw
		quad := []Point{
			{X: a.X + nx, Y: a.Y + ny},
			{X: b.X + nx, Y: b.Y + ny},
			{X: b.X - nx, Y: b.Y - ny},
			{X: a.X - nx, Y: a.Y - ny},
		}
		polys = append(polys, Oriented(quad, true))
	}

	for i := 1; i < len(points)-1; i++ {
		polys = append(polys, Oriented(Circle(points[i], hw, 16), true))
	}
	return polys
}
