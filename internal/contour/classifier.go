package contour

import (
	"math"

	"github.com/ironsheep/sketch-shapes/internal/geom"
	"github.com/ironsheep/sketch-shapes/internal/shape"
)

// Config holds the tuning parameters of the contour pipeline.
type Config struct {
	// Raster controls the scratch rendering of the stroke.
	Raster RasterConfig

	// EpsilonFactor is the polygon-approximation tolerance as a fraction
	// of the contour perimeter.
	EpsilonFactor float64

	// MinCircularity is the minimum 4·pi·area/perimeter² for a contour to
	// classify as a circle. A perfect circle scores 1.0.
	MinCircularity float64

	// SquareAspectMin and SquareAspectMax bound the bounding-box aspect
	// ratio within which a four-vertex contour is additionally labeled a
	// square. The distinction is cosmetic only.
	SquareAspectMin float64
	SquareAspectMax float64
}

// DefaultConfig returns the stock pipeline parameters.
func DefaultConfig() Config {
	return Config{
		Raster:          DefaultRasterConfig(),
		EpsilonFactor:   0.02,
		MinCircularity:  0.85,
		SquareAspectMin: 0.8,
		SquareAspectMax: 1.2,
	}
}

// Classifier runs the contour pipeline against finalized strokes.
//
// Availability is polled by the orchestrator once per stroke before
// consulting the pipeline; while unavailable the classifier is simply
// skipped, never blocked on.
type Classifier struct {
	cfg   Config
	probe func() bool
}

// New creates a contour classifier that reports itself available.
func New(cfg Config) *Classifier {
	return &Classifier{cfg: cfg, probe: func() bool { return true }}
}

// SetAvailability installs the availability probe. A nil probe restores
// the always-available default.
func (c *Classifier) SetAvailability(probe func() bool) {
	if probe == nil {
		probe = func() bool { return true }
	}
	c.probe = probe
}

// Available reports whether the pipeline can currently be consulted.
func (c *Classifier) Available() bool { return c.probe() }

// Classify rasterizes the stroke, traces its external outlines, and
// returns the first outline that classifies as a triangle, rectangle or
// circle, mapped back to canvas coordinates.
//
// The pipeline is fallible as a whole: any failure, including a panic in
// the raster or tracing stages, yields ("no result", false) rather than
// propagating to the caller.
func (c *Classifier) Classify(s geom.Stroke) (result shape.Shape, ok bool) {
	defer func() {
		if recover() != nil {
			result, ok = nil, false
		}
	}()

	r := rasterize(s, c.cfg.Raster)
	bin := Binarize(r.img)
	for _, ct := range TraceExternal(bin) {
		if sh, matched := c.classifyContour(ct, r); matched {
			return sh, true
		}
	}
	return nil, false
}

// classifyContour classifies one traced outline by vertex count, falling
// back to circularity. Unknown contours are discarded.
func (c *Classifier) classifyContour(ct Contour, r *raster) (shape.Shape, bool) {
	perimeter := ArcLength(ct, true)
	if perimeter == 0 {
		return nil, false
	}
	approx := ApproxPolygon(ct, c.cfg.EpsilonFactor*perimeter)

	switch len(approx) {
	case 3:
		return shape.Triangle{Vertices: [3]geom.Point{
			r.toCanvas(approx[0]),
			r.toCanvas(approx[1]),
			r.toCanvas(approx[2]),
		}}, true

	case 4:
		vertices := [4]geom.Point{
			r.toCanvas(approx[0]),
			r.toCanvas(approx[1]),
			r.toCanvas(approx[2]),
			r.toCanvas(approx[3]),
		}
		rect := shape.Rectangle{Vertices: vertices}
		if aspect, known := geom.BoundingBoxOf(vertices[:]).AspectRatio(); known {
			rect.Square = aspect > c.cfg.SquareAspectMin && aspect < c.cfg.SquareAspectMax
		}
		return rect, true

	default:
		circularity := 4 * math.Pi * Area(ct) / (perimeter * perimeter)
		if circularity > c.cfg.MinCircularity {
			center, radius := MinEnclosingCircle(ct)
			return shape.Circle{Center: r.toCanvasF(center), Radius: radius}, true
		}
	}
	return nil, false
}
