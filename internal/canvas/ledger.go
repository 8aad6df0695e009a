package canvas

import "github.com/ironsheep/sketch-shapes/internal/shape"

// Ledger is the authoritative ordered list of recognized shapes backing
// all redraws.
//
// It is append-only; insertion order is recognition order. The reconciler
// owns the ledger exclusively and keeps the invariant that it never
// contains a freehand entry.
type Ledger struct {
	entries []shape.Shape
}

// Append adds a recognized shape at the end of the ledger.
func (l *Ledger) Append(s shape.Shape) {
	l.entries = append(l.entries, s)
}

// Len returns the number of ledger entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Shapes returns the ledger entries in insertion order. The returned slice
// must not be mutated.
func (l *Ledger) Shapes() []shape.Shape { return l.entries }

// Reset drops every entry. It exists for the external reset collaborator;
// the reconciler itself never clears the ledger.
func (l *Ledger) Reset() { l.entries = nil }
