package contour

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/sketch-shapes/internal/canvas"
	"github.com/ironsheep/sketch-shapes/internal/geom"
)

// RasterConfig controls how a stroke is painted onto the scratch surface.
type RasterConfig struct {
	// InkWidth is the brush width the stroke is painted at.
	InkWidth float64

	// Margin is the padding in pixels around the stroke's bounding box,
	// so the traced outline never touches the image border.
	Margin int
}

// DefaultRasterConfig returns the stock scratch-raster parameters.
func DefaultRasterConfig() RasterConfig {
	return RasterConfig{InkWidth: 4, Margin: 8}
}

// raster is a single-use scratch rendering of one stroke, together with
// the translation back to canvas coordinates.
type raster struct {
	img     *image.RGBA
	offsetX float64
	offsetY float64
}

// rasterize paints the stroke onto a fresh white surface sized to its
// bounding box plus margin. The surface is acquired for the duration of
// one classification and never shared across strokes.
func rasterize(s geom.Stroke, cfg RasterConfig) *raster {
	b := geom.BoundingBoxOf(s)
	width := int(math.Ceil(b.Width())) + 2*cfg.Margin
	height := int(math.Ceil(b.Height())) + 2*cfg.Margin

	r := canvas.NewImageRenderer(width, height)
	r.GridSpacing = 0 // scratch surface, no background grid
	r.Clear()

	offsetX := b.MinX - float64(cfg.Margin)
	offsetY := b.MinY - float64(cfg.Margin)
	translated := make(geom.Stroke, len(s))
	for i, p := range s {
		translated[i] = geom.Point{X: p.X - offsetX, Y: p.Y - offsetY}
	}
	ink := canvas.Style{Color: colorful.Color{}, Width: cfg.InkWidth}
	r.StrokePolyline(translated, ink)

	return &raster{img: r.Image(), offsetX: offsetX, offsetY: offsetY}
}

// toCanvas maps a raster pixel back to canvas coordinates.
func (r *raster) toCanvas(p image.Point) geom.Point {
	return geom.Point{X: float64(p.X) + r.offsetX, Y: float64(p.Y) + r.offsetY}
}

// toCanvasF maps a fractional raster position back to canvas coordinates.
func (r *raster) toCanvasF(p geom.Point) geom.Point {
	return geom.Point{X: p.X + r.offsetX, Y: p.Y + r.offsetY}
}
