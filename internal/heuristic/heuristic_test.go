package heuristic

import (
	"math"
	"testing"

	"github.com/ironsheep/sketch-shapes/internal/geom"
	"github.com/ironsheep/sketch-shapes/internal/shape"
)

// circleStroke samples a full circle of the given radius.
func circleStroke(center geom.Point, radius float64, samples int) geom.Stroke {
	s := make(geom.Stroke, samples)
	for i := range s {
		a := 2 * math.Pi * float64(i) / float64(samples)
		s[i] = geom.Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return s
}

// nearClosedRectangle is the canonical almost-closed square stroke.
func nearClosedRectangle() geom.Stroke {
	return geom.Stroke{
		{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}, {X: 0, Y: 50}, {X: 0, Y: 2},
	}
}

// arrowStroke is a straight shaft followed by a zigzag head.
func arrowStroke() geom.Stroke {
	var s geom.Stroke
	for x := 0.0; x <= 130; x += 10 {
		s = append(s, geom.Point{X: x, Y: 0})
	}
	head := geom.Stroke{
		{X: 140, Y: 12}, {X: 152, Y: -12}, {X: 141, Y: 13},
		{X: 153, Y: -13}, {X: 142, Y: 14}, {X: 154, Y: -14},
	}
	return append(s, head...)
}

func TestIsLine(t *testing.T) {
	c := New(DefaultConfig())
	if !c.IsLine(geom.Stroke{{X: 0, Y: 0}, {X: 100, Y: 100}}) {
		t.Error("straight diagonal should be a line")
	}
	if c.IsLine(nearClosedRectangle()) {
		t.Error("closed rectangle stroke should not be a line")
	}
}

func TestIsLine_ZeroPath(t *testing.T) {
	c := New(DefaultConfig())
	if c.IsLine(geom.Stroke{{X: 5, Y: 5}, {X: 5, Y: 5}}) {
		t.Error("zero-length path should not be a line")
	}
}

func TestIsRectangle(t *testing.T) {
	c := New(DefaultConfig())
	if !c.IsRectangle(nearClosedRectangle()) {
		t.Error("near-closed square stroke should be a rectangle")
	}
	// Open stroke: first and last points far apart.
	open := geom.Stroke{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}}
	if c.IsRectangle(open) {
		t.Error("open stroke should not be a rectangle")
	}
}

func TestIsCircle(t *testing.T) {
	c := New(DefaultConfig())
	if !c.IsCircle(circleStroke(geom.Point{X: 100, Y: 100}, 40, 36)) {
		t.Error("sampled circle should be a circle")
	}
	if c.IsCircle(nearClosedRectangle()) {
		t.Error("square stroke should not pass the circularity check")
	}
}

func TestIsCircle_Degenerate(t *testing.T) {
	c := New(DefaultConfig())
	s := geom.Stroke{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}}
	if c.IsCircle(s) {
		t.Error("coincident points should not be a circle")
	}
}

func TestIsArrow(t *testing.T) {
	c := New(DefaultConfig())
	if !c.IsArrow(arrowStroke()) {
		t.Error("shaft-plus-zigzag stroke should be an arrow")
	}
	if c.IsArrow(geom.Stroke{{X: 0, Y: 0}, {X: 100, Y: 100}}) {
		t.Error("short stroke should never be an arrow")
	}
}

func TestClassify_Line(t *testing.T) {
	c := New(DefaultConfig())
	got, ok := c.Classify(geom.Stroke{{X: 0, Y: 0}, {X: 100, Y: 100}})
	if !ok {
		t.Fatal("Classify returned no match")
	}
	line, isLine := got.(shape.Line)
	if !isLine {
		t.Fatalf("Classify = %T, want shape.Line", got)
	}
	if line.A != (geom.Point{X: 0, Y: 0}) || line.B != (geom.Point{X: 100, Y: 100}) {
		t.Errorf("line endpoints = %+v, want stroke endpoints", line)
	}
}

func TestClassify_Rectangle(t *testing.T) {
	c := New(DefaultConfig())
	got, ok := c.Classify(nearClosedRectangle())
	if !ok {
		t.Fatal("Classify returned no match")
	}
	rect, isRect := got.(shape.Rectangle)
	if !isRect {
		t.Fatalf("Classify = %T, want shape.Rectangle", got)
	}
	b := geom.BoundingBoxOf(rect.Vertices[:])
	if b.Width() != 50 || b.Height() != 50 {
		t.Errorf("rectangle bounds = %vx%v, want 50x50", b.Width(), b.Height())
	}
}

func TestClassify_Circle(t *testing.T) {
	c := New(DefaultConfig())
	got, ok := c.Classify(circleStroke(geom.Point{X: 100, Y: 100}, 40, 36))
	if !ok {
		t.Fatal("Classify returned no match")
	}
	circ, isCircle := got.(shape.Circle)
	if !isCircle {
		t.Fatalf("Classify = %T, want shape.Circle", got)
	}
	if math.Abs(circ.Radius-40)/40 > 0.15 {
		t.Errorf("radius = %v, want within 15%% of 40", circ.Radius)
	}
	if math.Abs(circ.Center.X-100) > 1 || math.Abs(circ.Center.Y-100) > 1 {
		t.Errorf("center = %+v, want near (100,100)", circ.Center)
	}
}

func TestClassify_Arrow(t *testing.T) {
	c := New(DefaultConfig())
	got, ok := c.Classify(arrowStroke())
	if !ok {
		t.Fatal("Classify returned no match")
	}
	arrow, isArrow := got.(shape.Arrow)
	if !isArrow {
		t.Fatalf("Classify = %T, want shape.Arrow", got)
	}
	if arrow.ShaftStart != (geom.Point{X: 0, Y: 0}) {
		t.Errorf("shaft start = %+v, want (0,0)", arrow.ShaftStart)
	}
	if len(arrow.Head) == 0 {
		t.Error("arrow head should carry the raw head points")
	}
}

func TestClassify_NoMatch(t *testing.T) {
	c := New(DefaultConfig())
	// Open wavy scribble: not straight, not closed, head not triangular.
	var s geom.Stroke
	for i := 0; i < 40; i++ {
		u := float64(i)
		s = append(s, geom.Point{X: 3 * u, Y: 25 * math.Sin(u/2.5)})
	}
	if _, ok := c.Classify(s); ok {
		t.Error("scribble should not match any predicate")
	}
}
