package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/sketch-shapes/internal/geom"
)

// DefaultGridSpacing is the pixel distance between background grid lines.
const DefaultGridSpacing = 32

// ImageRenderer renders onto an in-memory RGBA image.
//
// It serves both as the visible canvas of the demo harness and as the
// scratch surface the contour pipeline rasterizes single strokes onto.
type ImageRenderer struct {
	// GridSpacing is the distance between grid lines in pixels. A spacing
	// of 0 disables the grid.
	GridSpacing int

	// GridColor is the grid line color.
	GridColor colorful.Color

	img        *image.RGBA
	background color.RGBA
}

// NewImageRenderer creates a renderer over a fresh white image of the
// given size. The grid color defaults to the ink color faded most of the
// way toward the background.
func NewImageRenderer(width, height int) *ImageRenderer {
	white := colorful.Color{R: 1, G: 1, B: 1}
	return &ImageRenderer{
		GridSpacing: DefaultGridSpacing,
		GridColor:   InkStyle().Color.BlendRgb(white, 0.85),
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		background:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Image returns the backing image.
func (r *ImageRenderer) Image() *image.RGBA { return r.img }

// Clear fills the whole surface with the background color.
func (r *ImageRenderer) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
}

// DrawGrid paints vertical and horizontal grid lines at GridSpacing
// intervals.
func (r *ImageRenderer) DrawGrid() {
	if r.GridSpacing <= 0 {
		return
	}
	bounds := r.img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	cr, cg, cb := r.GridColor.RGB255()
	gridColor := color.RGBA{R: cr, G: cg, B: cb, A: 255}

	for x := r.GridSpacing; x < width; x += r.GridSpacing {
		for y := 0; y < height; y++ {
			r.img.SetRGBA(x, y, gridColor)
		}
	}
	for y := r.GridSpacing; y < height; y += r.GridSpacing {
		for x := 0; x < width; x++ {
			r.img.SetRGBA(x, y, gridColor)
		}
	}
}

// StrokeSegment draws a straight segment at the style's width.
func (r *ImageRenderer) StrokeSegment(a, b geom.Point, style Style) {
	r.segment(a, b, style.RGBA(), style.Width)
}

// StrokePolyline draws connected segments through the points in order.
func (r *ImageRenderer) StrokePolyline(points []geom.Point, style Style) {
	col := style.RGBA()
	for i := 1; i < len(points); i++ {
		r.segment(points[i-1], points[i], col, style.Width)
	}
}

// StrokePolygon draws the polyline and closes it back to the first point.
func (r *ImageRenderer) StrokePolygon(points []geom.Point, style Style) {
	if len(points) < 2 {
		return
	}
	r.StrokePolyline(points, style)
	r.segment(points[len(points)-1], points[0], style.RGBA(), style.Width)
}

// StrokeCircle draws a circle outline by stamping the brush along the
// circumference. The angular step shrinks with the radius so adjacent
// stamps always overlap.
func (r *ImageRenderer) StrokeCircle(center geom.Point, radius float64, style Style) {
	if radius <= 0 {
		return
	}
	col := style.RGBA()
	step := 0.5 / radius
	for a := 0.0; a < 2*math.Pi; a += step {
		x := center.X + radius*math.Cos(a)
		y := center.Y + radius*math.Sin(a)
		r.stamp(x, y, col, style.Width)
	}
}

// segment stamps the brush along the line from a to b at unit intervals.
func (r *ImageRenderer) segment(a, b geom.Point, col color.RGBA, width float64) {
	length := geom.Distance(a, b)
	steps := int(math.Ceil(length))
	if steps == 0 {
		r.stamp(a.X, a.Y, col, width)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.stamp(a.X+t*(b.X-a.X), a.Y+t*(b.Y-a.Y), col, width)
	}
}

// stamp paints a filled disc of the brush width centered at (x, y),
// clipped to the image bounds.
func (r *ImageRenderer) stamp(x, y float64, col color.RGBA, width float64) {
	radius := width / 2
	if radius < 0.5 {
		radius = 0.5
	}
	bounds := r.img.Bounds()
	minX := int(math.Floor(x - radius))
	maxX := int(math.Ceil(x + radius))
	minY := int(math.Floor(y - radius))
	maxY := int(math.Ceil(y + radius))
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			if px < bounds.Min.X || px >= bounds.Max.X || py < bounds.Min.Y || py >= bounds.Max.Y {
				continue
			}
			dx := float64(px) + 0.5 - x
			dy := float64(py) + 0.5 - y
			if dx*dx+dy*dy <= radius*radius {
				r.img.SetRGBA(px, py, col)
			}
		}
	}
}
