// Package canvas owns everything that reaches the drawing surface: the
// renderer abstraction, stroke styles, an image-backed renderer, and the
// shape ledger with its reconciler.
//
// # Reconciliation Model
//
// Recognized shapes are held in an append-only ledger, one entry per
// recognized stroke in recognition order. Every reconciliation clears the
// whole surface, redraws the background grid, and then redraws every
// ledger entry. Redrawing from the ledger rather than patching
// incrementally guarantees the canvas always exactly reflects the ledger:
// however many overlapping raw ink strokes were painted while drawing,
// the rough trail is fully erased and replaced.
//
// # Coordinate System
//
// Canvas coordinates follow the image convention: origin at top-left,
// X rightward, Y downward, in canvas units (pixels for ImageRenderer).
package canvas
