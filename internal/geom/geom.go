// Package geom provides pure geometric helpers over captured stroke points.
//
// All functions are side-effect free and operate on plain point slices.
// Callers must not invoke them with empty strokes; an empty input is a
// precondition violation, not a runtime condition these functions defend
// against.
package geom

import "math"

// Point represents a 2D coordinate on the canvas.
//
// Coordinates use the standard canvas convention: origin at top-left,
// X increasing rightward, Y increasing downward. A Point is immutable
// once captured.
type Point struct {
	X float64 `json:"x"` // Horizontal position (0 = leftmost)
	Y float64 `json:"y"` // Vertical position (0 = topmost)
}

// Stroke is the ordered point sequence of one continuous pointer drag.
//
// Insertion order is temporal order. A stroke is finalized (and must no
// longer be mutated) once the pointer is released. Strokes with fewer than
// two points are never classified.
type Stroke []Point

// BoundingBox is the axis-aligned extent of a stroke.
//
// Width or Height may be zero for degenerate strokes (e.g. a perfectly
// horizontal line); consumers dividing by either must check first.
type BoundingBox struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// AspectRatio returns width/height. The second return value is false when
// the height is zero and no ratio exists.
func (b BoundingBox) AspectRatio() (float64, bool) {
	h := b.Height()
	if h == 0 {
		return 0, false
	}
	return b.Width() / h, true
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PathLength returns the sum of consecutive point distances along a stroke.
// A single-point stroke has path length 0.
func PathLength(s Stroke) float64 {
	var d float64
	for i := 1; i < len(s); i++ {
		d += Distance(s[i-1], s[i])
	}
	return d
}

// BoundingBoxOf computes the axis-aligned bounding box of a stroke.
func BoundingBoxOf(s Stroke) BoundingBox {
	b := BoundingBox{MinX: s[0].X, MaxX: s[0].X, MinY: s[0].Y, MaxY: s[0].Y}
	for _, p := range s[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// Centroid returns the arithmetic mean of all stroke points.
func Centroid(s Stroke) Point {
	var x, y float64
	for _, p := range s {
		x += p.X
		y += p.Y
	}
	n := float64(len(s))
	return Point{X: x / n, Y: y / n}
}

// Mean returns the arithmetic mean of the values.
func Mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance returns the population variance of the values.
func Variance(values []float64) float64 {
	mean := Mean(values)
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}

// DefaultCornerAngle is the turning-angle threshold (30 degrees) above which
// an interior stroke point counts as a corner.
const DefaultCornerAngle = math.Pi / 6

// FindCorners locates the interior points where the stroke turns sharply.
//
// For each interior point the turning angle between the incoming and
// outgoing segment directions is computed via atan2; the point is a corner
// when the absolute turning angle exceeds angleThreshold (radians).
//
// Corners are returned in stroke order. Adjacent corners are not
// deduplicated: noisy input can report several corners for one visual bend,
// and callers are expected to use only the count.
func FindCorners(s Stroke, angleThreshold float64) []Point {
	var corners []Point
	for i := 1; i < len(s)-1; i++ {
		in := math.Atan2(s[i].Y-s[i-1].Y, s[i].X-s[i-1].X)
		out := math.Atan2(s[i+1].Y-s[i].Y, s[i+1].X-s[i].X)
		turn := normalizeAngle(out - in)
		if math.Abs(turn) > angleThreshold {
			corners = append(corners, s[i])
		}
	}
	return corners
}

// normalizeAngle wraps an angle into (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
