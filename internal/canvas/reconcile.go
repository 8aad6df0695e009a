package canvas

import (
	"github.com/ironsheep/sketch-shapes/internal/shape"
)

// Reconciler keeps the rendered surface in sync with the shape ledger.
//
// On each recognition it appends the shape and repaints the whole surface
// from scratch: clear, grid, then every ledger entry in insertion order at
// the recognized style. Freehand results never touch the ledger or the
// surface; the raw ink already painted during the drag simply stays.
type Reconciler struct {
	renderer Renderer
	ledger   Ledger
	style    Style
}

// NewReconciler creates a reconciler painting recognized shapes on the
// given renderer at the default recognized style.
func NewReconciler(r Renderer) *Reconciler {
	return &Reconciler{renderer: r, style: RecognizedStyle()}
}

// SetStyle overrides the style used for recognized shapes.
func (rc *Reconciler) SetStyle(s Style) { rc.style = s }

// Ledger exposes the reconciled shape list.
func (rc *Reconciler) Ledger() *Ledger { return &rc.ledger }

// OnRecognized records a classification result.
//
// Freehand shapes are left on the canvas as drawn and not tracked for
// future redraws. Everything else is appended to the ledger and the whole
// surface is repainted from it.
func (rc *Reconciler) OnRecognized(s shape.Shape) {
	if s.Kind() == shape.KindFreehand {
		return
	}
	rc.ledger.Append(s)
	rc.Redraw()
}

// Redraw repaints the surface as a pure function of the ledger: clear,
// background grid, then every entry in insertion order. Calling it twice
// in a row issues the identical sequence of render calls.
func (rc *Reconciler) Redraw() {
	rc.renderer.Clear()
	rc.renderer.DrawGrid()
	for _, s := range rc.ledger.Shapes() {
		rc.draw(s)
	}
}

func (rc *Reconciler) draw(s shape.Shape) {
	switch v := s.(type) {
	case shape.Line:
		rc.renderer.StrokeSegment(v.A, v.B, rc.style)
	case shape.Rectangle:
		rc.renderer.StrokePolygon(v.Vertices[:], rc.style)
	case shape.Circle:
		rc.renderer.StrokeCircle(v.Center, v.Radius, rc.style)
	case shape.Triangle:
		rc.renderer.StrokePolygon(v.Vertices[:], rc.style)
	case shape.Arrow:
		rc.renderer.StrokeSegment(v.ShaftStart, v.ShaftEnd, rc.style)
		rc.renderer.StrokePolyline(v.Head, rc.style)
	}
}
