package canvas

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/ironsheep/sketch-shapes/internal/geom"
	"github.com/ironsheep/sketch-shapes/internal/shape"
)

// recordingRenderer captures the sequence of render calls as strings.
type recordingRenderer struct {
	calls []string
}

func (r *recordingRenderer) Clear()    { r.calls = append(r.calls, "clear") }
func (r *recordingRenderer) DrawGrid() { r.calls = append(r.calls, "grid") }

func (r *recordingRenderer) StrokeSegment(a, b geom.Point, _ Style) {
	r.calls = append(r.calls, fmt.Sprintf("segment %v %v", a, b))
}

func (r *recordingRenderer) StrokePolyline(points []geom.Point, _ Style) {
	r.calls = append(r.calls, fmt.Sprintf("polyline %v", points))
}

func (r *recordingRenderer) StrokePolygon(points []geom.Point, _ Style) {
	r.calls = append(r.calls, fmt.Sprintf("polygon %v", points))
}

func (r *recordingRenderer) StrokeCircle(center geom.Point, radius float64, _ Style) {
	r.calls = append(r.calls, fmt.Sprintf("circle %v %v", center, radius))
}

func (r *recordingRenderer) reset() { r.calls = nil }

func TestOnRecognized_AppendsAndRepaints(t *testing.T) {
	rr := &recordingRenderer{}
	rc := NewReconciler(rr)

	rc.OnRecognized(shape.Line{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 10, Y: 10}})

	if rc.Ledger().Len() != 1 {
		t.Fatalf("ledger length = %d, want 1", rc.Ledger().Len())
	}
	want := []string{"clear", "grid", "segment {0 0} {10 10}"}
	if !reflect.DeepEqual(rr.calls, want) {
		t.Errorf("calls = %v, want %v", rr.calls, want)
	}
}

func TestOnRecognized_FreehandNeverLedgered(t *testing.T) {
	rr := &recordingRenderer{}
	rc := NewReconciler(rr)

	recognized := []shape.Shape{
		shape.Line{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 5, Y: 5}},
		shape.Freehand{Stroke: geom.Stroke{{X: 1, Y: 1}, {X: 2, Y: 2}}},
		shape.Circle{Center: geom.Point{X: 30, Y: 30}, Radius: 10},
		shape.Freehand{Stroke: geom.Stroke{{X: 3, Y: 3}, {X: 4, Y: 4}}},
		shape.Freehand{Stroke: geom.Stroke{{X: 5, Y: 5}, {X: 6, Y: 6}}},
	}
	for _, s := range recognized {
		rc.OnRecognized(s)
	}

	// 2 recognized shapes, 3 freehand: the ledger holds exactly 2.
	if rc.Ledger().Len() != 2 {
		t.Fatalf("ledger length = %d, want 2", rc.Ledger().Len())
	}
	for _, s := range rc.Ledger().Shapes() {
		if s.Kind() == shape.KindFreehand {
			t.Fatal("freehand entry found in ledger")
		}
	}
}

func TestOnRecognized_FreehandTouchesNothing(t *testing.T) {
	rr := &recordingRenderer{}
	rc := NewReconciler(rr)
	rr.reset()

	rc.OnRecognized(shape.Freehand{Stroke: geom.Stroke{{X: 1, Y: 1}, {X: 2, Y: 2}}})

	if len(rr.calls) != 0 {
		t.Errorf("freehand result issued render calls: %v", rr.calls)
	}
}

func TestRedraw_Idempotent(t *testing.T) {
	rr := &recordingRenderer{}
	rc := NewReconciler(rr)

	rc.OnRecognized(shape.Rectangle{Vertices: [4]geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}})
	rc.OnRecognized(shape.Circle{Center: geom.Point{X: 50, Y: 50}, Radius: 20})

	rr.reset()
	rc.Redraw()
	first := append([]string(nil), rr.calls...)

	rr.reset()
	rc.Redraw()
	second := append([]string(nil), rr.calls...)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("redraw not idempotent:\n first: %v\nsecond: %v", first, second)
	}
}

func TestRedraw_InsertionOrder(t *testing.T) {
	rr := &recordingRenderer{}
	rc := NewReconciler(rr)

	rc.OnRecognized(shape.Circle{Center: geom.Point{X: 1, Y: 1}, Radius: 1})
	rc.OnRecognized(shape.Line{A: geom.Point{X: 2, Y: 2}, B: geom.Point{X: 3, Y: 3}})

	rr.reset()
	rc.Redraw()
	want := []string{"clear", "grid", "circle {1 1} 1", "segment {2 2} {3 3}"}
	if !reflect.DeepEqual(rr.calls, want) {
		t.Errorf("calls = %v, want %v", rr.calls, want)
	}
}

func TestDraw_AllVariants(t *testing.T) {
	rr := &recordingRenderer{}
	rc := NewReconciler(rr)

	rc.OnRecognized(shape.Triangle{Vertices: [3]geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 9},
	}})
	rc.OnRecognized(shape.Arrow{
		ShaftStart: geom.Point{X: 0, Y: 0},
		ShaftEnd:   geom.Point{X: 20, Y: 0},
		Head:       []geom.Point{{X: 25, Y: 5}, {X: 30, Y: -5}},
	})

	got := rr.calls[len(rr.calls)-2:]
	if got[0] != "segment {0 0} {20 0}" {
		t.Errorf("arrow shaft call = %q", got[0])
	}
	if got[1] != "polyline [{25 5} {30 -5}]" {
		t.Errorf("arrow head call = %q", got[1])
	}
}
