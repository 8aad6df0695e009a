// Package heuristic classifies strokes directly from their point sequence.
//
// The predicates here are fast, deterministic, and work on any stroke
// including open ones. They need no rasterization and no external
// capability, which makes them the guaranteed fallback tier when the
// contour pipeline is unavailable or fails.
package heuristic

import (
	"github.com/ironsheep/sketch-shapes/internal/geom"
	"github.com/ironsheep/sketch-shapes/internal/shape"
)

// Config holds the tuning thresholds for the heuristic predicates.
//
// The rectangle and circle defaults are deliberately lenient: corner
// detection on noisy freehand input under-counts true corners, so the
// acceptance thresholds are loosened rather than the detector tightened.
// Treat these as tuning constants open to recalibration, not contracts.
type Config struct {
	// MinStraightness is the minimum end-to-end distance over path length
	// ratio for a stroke to count as a line.
	MinStraightness float64

	// CloseThreshold is the maximum first-to-last point distance (canvas
	// units) for a stroke to count as closed.
	CloseThreshold float64

	// CornerAngle is the turning-angle threshold passed to corner finding.
	CornerAngle float64

	// MinRectCorners is the minimum detected corner count for a rectangle.
	MinRectCorners int

	// RectAspectMin and RectAspectMax bound the acceptable bounding-box
	// aspect ratio for rectangles.
	RectAspectMin float64
	RectAspectMax float64

	// MaxCircularity is the maximum variance-over-mean of center distances
	// for a circle. Lower values demand rounder strokes.
	MaxCircularity float64

	// CircleAspectMin and CircleAspectMax bound the roughly-square
	// bounding-box check for circles.
	CircleAspectMin float64
	CircleAspectMax float64

	// MinTriangleCorners is the minimum corner count for a triangle
	// sub-stroke (used by arrow head detection).
	MinTriangleCorners int

	// MinArrowPoints is the minimum stroke length for arrow detection.
	MinArrowPoints int

	// ArrowShaftFraction is the fraction of points assigned to the shaft
	// when splitting a candidate arrow stroke.
	ArrowShaftFraction float64
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		MinStraightness:    0.9,
		CloseThreshold:     10,
		CornerAngle:        geom.DefaultCornerAngle,
		MinRectCorners:     2,
		RectAspectMin:      0.2,
		RectAspectMax:      5.0,
		MaxCircularity:     0.5,
		CircleAspectMin:    0.5,
		CircleAspectMax:    2.0,
		MinTriangleCorners: 3,
		MinArrowPoints:     6,
		ArrowShaftFraction: 0.7,
	}
}

// Classifier evaluates the heuristic predicates against strokes.
type Classifier struct {
	cfg Config
}

// New returns a classifier using the given thresholds.
func New(cfg Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// IsLine reports whether the stroke is essentially straight.
//
// Straightness is the ratio of the first-to-last distance over the total
// path length. A zero-length path (all points identical) is not a line.
func (c *Classifier) IsLine(s geom.Stroke) bool {
	length := geom.PathLength(s)
	if length == 0 {
		return false
	}
	return geom.Distance(s[0], s[len(s)-1])/length > c.cfg.MinStraightness
}

// IsRectangle reports whether the stroke looks like a closed rectangle:
// first and last points close together, at least MinRectCorners detected
// corners, and a sane bounding-box aspect ratio.
func (c *Classifier) IsRectangle(s geom.Stroke) bool {
	if !c.closed(s) {
		return false
	}
	aspect, ok := geom.BoundingBoxOf(s).AspectRatio()
	if !ok {
		return false
	}
	if aspect <= c.cfg.RectAspectMin || aspect >= c.cfg.RectAspectMax {
		return false
	}
	return len(geom.FindCorners(s, c.cfg.CornerAngle)) >= c.cfg.MinRectCorners
}

// IsCircle reports whether the stroke looks like a closed circle: radial
// distances from the centroid have low variance relative to their mean,
// and the bounding box is roughly square.
func (c *Classifier) IsCircle(s geom.Stroke) bool {
	if !c.closed(s) {
		return false
	}
	aspect, ok := geom.BoundingBoxOf(s).AspectRatio()
	if !ok {
		return false
	}
	if aspect <= c.cfg.CircleAspectMin || aspect >= c.cfg.CircleAspectMax {
		return false
	}
	center := geom.Centroid(s)
	distances := make([]float64, len(s))
	for i, p := range s {
		distances[i] = geom.Distance(center, p)
	}
	mean := geom.Mean(distances)
	if mean == 0 {
		return false
	}
	return geom.Variance(distances)/mean < c.cfg.MaxCircularity
}

// IsTriangle reports whether the sub-stroke has enough corners to be a
// triangle. It exists as the arrow-head sub-predicate; the orchestration
// policy never consults it standalone.
func (c *Classifier) IsTriangle(s geom.Stroke) bool {
	return len(geom.FindCorners(s, c.cfg.CornerAngle)) >= c.cfg.MinTriangleCorners
}

// IsArrow reports whether the stroke splits into a straight shaft followed
// by a triangular head. The split point is ArrowShaftFraction of the point
// count; strokes shorter than MinArrowPoints never match.
func (c *Classifier) IsArrow(s geom.Stroke) bool {
	if len(s) < c.cfg.MinArrowPoints {
		return false
	}
	split := int(float64(len(s)) * c.cfg.ArrowShaftFraction)
	return c.IsLine(s[:split]) && c.IsTriangle(s[split:])
}

// Classify runs the predicates in order line, circle, rectangle, arrow and
// materializes the first match. The second return value is false when no
// predicate matched.
//
// Line is checked first because a degenerate straight stroke can also
// satisfy the lenient rectangle/circle thresholds; rectangle and circle
// both require closure and are mutually exclusive in practice.
func (c *Classifier) Classify(s geom.Stroke) (shape.Shape, bool) {
	switch {
	case c.IsLine(s):
		return c.Line(s), true
	case c.IsCircle(s):
		return c.Circle(s), true
	case c.IsRectangle(s):
		return c.Rectangle(s), true
	case c.IsArrow(s):
		return c.Arrow(s), true
	}
	return nil, false
}

// Line builds the line shape for a stroke that satisfied IsLine.
func (c *Classifier) Line(s geom.Stroke) shape.Line {
	return shape.Line{A: s[0], B: s[len(s)-1]}
}

// Circle builds the circle shape for a stroke that satisfied IsCircle:
// center at the centroid, radius the mean distance from it.
func (c *Classifier) Circle(s geom.Stroke) shape.Circle {
	center := geom.Centroid(s)
	var sum float64
	for _, p := range s {
		sum += geom.Distance(center, p)
	}
	return shape.Circle{Center: center, Radius: sum / float64(len(s))}
}

// Rectangle builds the rectangle shape for a stroke that satisfied
// IsRectangle, using its bounding-box corners in trace order.
func (c *Classifier) Rectangle(s geom.Stroke) shape.Rectangle {
	b := geom.BoundingBoxOf(s)
	return shape.Rectangle{Vertices: [4]geom.Point{
		{X: b.MinX, Y: b.MinY},
		{X: b.MaxX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY},
		{X: b.MinX, Y: b.MaxY},
	}}
}

// Arrow builds the arrow shape for a stroke that satisfied IsArrow.
func (c *Classifier) Arrow(s geom.Stroke) shape.Arrow {
	split := int(float64(len(s)) * c.cfg.ArrowShaftFraction)
	shaft := s[:split]
	head := make([]geom.Point, len(s)-split)
	copy(head, s[split:])
	return shape.Arrow{
		ShaftStart: shaft[0],
		ShaftEnd:   shaft[len(shaft)-1],
		Head:       head,
	}
}

// closed reports whether the stroke's first and last points are within the
// closing threshold.
func (c *Classifier) closed(s geom.Stroke) bool {
	return geom.Distance(s[0], s[len(s)-1]) < c.cfg.CloseThreshold
}
