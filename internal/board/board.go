// Package board wires the pointer-capture events to classification and
// reconciliation.
//
// The event model is single-threaded: one pointer down/move/up cycle
// produces at most one classification-and-reconcile cycle, and a new
// stroke cannot begin before the previous release handler returns. No
// locking is needed under that model; a multi-threaded host must
// serialize the event calls.
package board

import (
	"log"
	"os"

	"github.com/ironsheep/sketch-shapes/internal/canvas"
	"github.com/ironsheep/sketch-shapes/internal/geom"
	"github.com/ironsheep/sketch-shapes/internal/recognizer"
	"github.com/ironsheep/sketch-shapes/internal/shape"
)

// LogLevelEnv is the environment variable that enables debug logging.
const LogLevelEnv = "SKETCH_LOG_LEVEL"

// Board owns the in-progress stroke buffer and drives the pipeline.
type Board struct {
	renderer   canvas.Renderer
	recognizer *recognizer.Recognizer
	reconciler *canvas.Reconciler

	current geom.Stroke
	drawing bool
	ink     canvas.Style
	debug   bool
}

// New creates a board over the given renderer and recognizer and paints
// the initial empty surface (background plus grid).
func New(r canvas.Renderer, rec *recognizer.Recognizer) *Board {
	b := &Board{
		renderer:   r,
		recognizer: rec,
		reconciler: canvas.NewReconciler(r),
		ink:        canvas.InkStyle(),
		debug:      os.Getenv(LogLevelEnv) == "debug",
	}
	b.reconciler.Redraw()
	return b
}

// Reconciler exposes the board's reconciler (and through it the ledger).
func (b *Board) Reconciler() *canvas.Reconciler { return b.reconciler }

// StrokeStart begins a new stroke at the given point.
func (b *Board) StrokeStart(p geom.Point) {
	b.current = geom.Stroke{p}
	b.drawing = true
}

// StrokePoint extends the in-progress stroke and paints the live ink
// segment from the previous sample.
func (b *Board) StrokePoint(p geom.Point) {
	if !b.drawing {
		return
	}
	last := b.current[len(b.current)-1]
	b.current = append(b.current, p)
	b.renderer.StrokeSegment(last, p, b.ink)
}

// StrokeEnd finalizes the in-progress stroke and runs classification.
//
// Strokes with fewer than two points are silently dropped. A freehand
// result leaves the painted ink untouched; any other result is appended
// to the ledger and the surface is repainted from it.
func (b *Board) StrokeEnd() {
	if !b.drawing {
		return
	}
	stroke := b.current
	b.current = nil
	b.drawing = false

	result, ok := b.recognizer.Classify(stroke)
	if !ok {
		return
	}
	if b.debug {
		log.Printf("stroke with %d points classified as %s", len(stroke), result.Kind())
	}
	b.reconciler.OnRecognized(result)
}

// StrokeAbandoned discards the in-progress stroke without classification,
// e.g. when the pointer leaves the surface.
func (b *Board) StrokeAbandoned() {
	b.current = nil
	b.drawing = false
}

// Recognize pushes an already-captured stroke through classification and
// reconciliation, bypassing the live event methods. It returns the
// classification result.
func (b *Board) Recognize(s geom.Stroke) (shape.Shape, bool) {
	result, ok := b.recognizer.Classify(s)
	if ok {
		b.reconciler.OnRecognized(result)
	}
	return result, ok
}
