// Command sketch-demo exercises the full recognition pipeline: it replays
// a scripted set of strokes through the capture interface as if a user had
// drawn them, and saves the reconciled canvas as a PNG.
package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/sketch-shapes/internal/board"
	"github.com/ironsheep/sketch-shapes/internal/canvas"
	"github.com/ironsheep/sketch-shapes/internal/contour"
	"github.com/ironsheep/sketch-shapes/internal/geom"
	"github.com/ironsheep/sketch-shapes/internal/heuristic"
	"github.com/ironsheep/sketch-shapes/internal/recognizer"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	output := "sketch.png"
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("sketch-demo %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("sketch-demo - stroke recognition demo harness")
			fmt.Println()
			fmt.Println("Usage: sketch-demo [output.png]")
			fmt.Println()
			fmt.Println("Replays a scripted set of freehand strokes through the")
			fmt.Println("recognition pipeline and saves the reconciled canvas.")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug    Enable debug logging\n", board.LogLevelEnv)
			return
		default:
			output = os.Args[1]
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	renderer := canvas.NewImageRenderer(640, 480)
	rec := recognizer.New(heuristic.DefaultConfig(), contour.New(contour.DefaultConfig()))
	b := board.New(renderer, rec)

	for _, stroke := range demoStrokes() {
		replay(b, stroke)
	}

	log.Printf("recognized %d shapes", b.Reconciler().Ledger().Len())
	if err := imaging.Save(renderer.Image(), output); err != nil {
		log.Fatalf("saving %s: %v", output, err)
	}
	fmt.Println(output)
}

// replay pushes a stroke through the capture interface one sample at a
// time, the way a pointer drag would deliver it.
func replay(b *board.Board, s geom.Stroke) {
	b.StrokeStart(s[0])
	for _, p := range s[1:] {
		b.StrokePoint(p)
	}
	b.StrokeEnd()
}

func demoStrokes() []geom.Stroke {
	return []geom.Stroke{
		lineStroke(geom.Point{X: 40, Y: 40}, geom.Point{X: 240, Y: 90}, 20),
		rectangleStroke(320, 40, 160, 110),
		circleStroke(geom.Point{X: 140, Y: 260}, 70),
		triangleStroke(geom.Point{X: 330, Y: 330}, geom.Point{X: 470, Y: 330}, geom.Point{X: 400, Y: 210}),
		scribbleStroke(geom.Point{X: 80, Y: 400}),
	}
}

func lineStroke(a, b geom.Point, samples int) geom.Stroke {
	s := make(geom.Stroke, samples)
	for i := range s {
		t := float64(i) / float64(samples-1)
		s[i] = geom.Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
	}
	return s
}

func rectangleStroke(x, y, w, h float64) geom.Stroke {
	corners := []geom.Point{
		{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h},
	}
	var s geom.Stroke
	for i, c := range corners {
		next := corners[(i+1)%len(corners)]
		edge := lineStroke(c, next, 12)
		s = append(s, edge[:len(edge)-1]...)
	}
	// close slightly short of the start, like a real hand would
	return append(s, geom.Point{X: x, Y: y + 3})
}

func circleStroke(center geom.Point, radius float64) geom.Stroke {
	const samples = 36
	s := make(geom.Stroke, samples)
	for i := range s {
		a := 2 * math.Pi * float64(i) / samples
		s[i] = geom.Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return s
}

func triangleStroke(a, b, c geom.Point) geom.Stroke {
	var s geom.Stroke
	for _, edge := range [][2]geom.Point{{a, b}, {b, c}, {c, a}} {
		pts := lineStroke(edge[0], edge[1], 12)
		s = append(s, pts[:len(pts)-1]...)
	}
	return append(s, geom.Point{X: a.X + 2, Y: a.Y + 2})
}

func scribbleStroke(origin geom.Point) geom.Stroke {
	var s geom.Stroke
	for i := 0; i < 40; i++ {
		t := float64(i)
		s = append(s, geom.Point{
			X: origin.X + 3*t,
			Y: origin.Y + 25*math.Sin(t/2.5) + 6*math.Sin(t*1.7),
		})
	}
	return s
}
