package canvas

import "github.com/ironsheep/sketch-shapes/internal/geom"

// Renderer is the drawing surface the engine renders onto.
//
// Implementations are not required to be safe for concurrent use: the
// event model is single-threaded, and a multi-threaded host must
// serialize render calls itself.
type Renderer interface {
	// Clear erases the entire surface to the background.
	Clear()

	// DrawGrid paints the background grid over the cleared surface.
	DrawGrid()

	// StrokeSegment draws a single straight segment.
	StrokeSegment(a, b geom.Point, style Style)

	// StrokePolyline draws connected segments through the points in order,
	// without closing the path.
	StrokePolyline(points []geom.Point, style Style)

	// StrokePolygon draws connected segments through the points in order
	// and closes the path back to the first point.
	StrokePolygon(points []geom.Point, style Style)

	// StrokeCircle draws a circle outline.
	StrokeCircle(center geom.Point, radius float64, style Style)
}
