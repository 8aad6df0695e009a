// Package recognizer decides, per completed stroke, which classification
// tier to consult and resolves the result into a single shape.
//
// The two-tier design exists because contour tracing gives exact geometry
// (good for redraw fidelity) but depends on a capability that may be
// unavailable or fail at runtime, while the heuristic tier always works
// and degrades the system gracefully to "good enough" classification.
package recognizer

import (
	"github.com/ironsheep/sketch-shapes/internal/geom"
	"github.com/ironsheep/sketch-shapes/internal/heuristic"
	"github.com/ironsheep/sketch-shapes/internal/shape"
)

// ContourTier is the optional exact-geometry classifier. Availability is
// polled once per stroke; an unavailable tier is skipped, not waited for.
type ContourTier interface {
	Available() bool
	Classify(geom.Stroke) (shape.Shape, bool)
}

// Recognizer orchestrates the classification tiers.
type Recognizer struct {
	heur    *heuristic.Classifier
	contour ContourTier
}

// New creates a recognizer. The contour tier may be nil, in which case
// only the heuristic tier is ever consulted.
func New(cfg heuristic.Config, contour ContourTier) *Recognizer {
	return &Recognizer{heur: heuristic.New(cfg), contour: contour}
}

// Classify resolves a finalized stroke to a shape.
//
// Strokes with fewer than two points are discarded: the second return
// value is false and nothing should enter the ledger. Every longer stroke
// resolves to some shape, with Freehand as the final fallback.
//
// The policy:
//
//  1. A straight stroke returns Line immediately. Line detection is cheap,
//     robust on open strokes, and contour tracing requires closure, so
//     this short-circuits the heavier pipeline.
//  2. The contour tier is consulted if it is currently available; a
//     classified contour wins.
//  3. Otherwise the remaining heuristic predicates run in order
//     rectangle, circle, arrow.
//  4. Otherwise the stroke stays freehand.
func (r *Recognizer) Classify(s geom.Stroke) (shape.Shape, bool) {
	if len(s) < 2 {
		return nil, false
	}

	if r.heur.IsLine(s) {
		return r.heur.Line(s), true
	}

	if r.contour != nil && r.contour.Available() {
		if sh, ok := r.contour.Classify(s); ok {
			return sh, true
		}
	}

	switch {
	case r.heur.IsRectangle(s):
		return r.heur.Rectangle(s), true
	case r.heur.IsCircle(s):
		return r.heur.Circle(s), true
	case r.heur.IsArrow(s):
		return r.heur.Arrow(s), true
	}

	return shape.Freehand{Stroke: s}, true
}
