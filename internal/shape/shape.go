// Package shape defines the recognized-shape variants produced by stroke
// classification.
//
// Each variant carries exactly the geometric parameters needed to re-render
// it precisely; no variant keeps a back-reference to the originating stroke
// except Freehand (rendered as drawn) and Arrow (whose head legitimately
// renders from raw points).
package shape

import "github.com/ironsheep/sketch-shapes/internal/geom"

// Kind identifies the variant of a recognized shape.
type Kind int

const (
	// KindFreehand indicates an unrecognized stroke, rendered as drawn.
	KindFreehand Kind = iota

	// KindLine indicates a straight line segment.
	KindLine

	// KindRectangle indicates a four-vertex polygon (possibly a square).
	KindRectangle

	// KindCircle indicates a circle.
	KindCircle

	// KindTriangle indicates a three-vertex polygon.
	KindTriangle

	// KindArrow indicates a straight shaft ending in an arrow head.
	KindArrow
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	case KindTriangle:
		return "triangle"
	case KindArrow:
		return "arrow"
	default:
		return "freehand"
	}
}

// Shape is a recognized geometric primitive, self-sufficient for rendering.
type Shape interface {
	Kind() Kind
}

// Line is a straight segment between two endpoints.
type Line struct {
	A geom.Point `json:"a"` // Start point (first point of the stroke)
	B geom.Point `json:"b"` // End point (last point of the stroke)
}

// Rectangle is a four-vertex polygon. Vertices are ordered as traced and
// are not necessarily axis-aligned.
type Rectangle struct {
	Vertices [4]geom.Point `json:"vertices"`

	// Square marks rectangles whose bounding box aspect ratio is close to
	// 1; the distinction is cosmetic and rendering is identical.
	Square bool `json:"square,omitempty"`
}

// Circle is defined by its center and radius.
type Circle struct {
	Center geom.Point `json:"center"`
	Radius float64    `json:"radius"`
}

// Triangle is a three-vertex polygon.
type Triangle struct {
	Vertices [3]geom.Point `json:"vertices"`
}

// Arrow is a straight shaft ending in a freeform head.
type Arrow struct {
	ShaftStart geom.Point   `json:"shaft_start"`
	ShaftEnd   geom.Point   `json:"shaft_end"`
	Head       []geom.Point `json:"head"` // Head points, rendered as drawn
}

// Freehand wraps a stroke that no classifier matched. It is rendered as-is
// and never entered into the reconciled ledger.
type Freehand struct {
	Stroke geom.Stroke `json:"stroke"`
}

func (Line) Kind() Kind      { return KindLine }
func (Rectangle) Kind() Kind { return KindRectangle }
func (Circle) Kind() Kind    { return KindCircle }
func (Triangle) Kind() Kind  { return KindTriangle }
func (Arrow) Kind() Kind     { return KindArrow }
func (Freehand) Kind() Kind  { return KindFreehand }
