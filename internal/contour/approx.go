package contour

import (
	"image"
	"math"
	"math/rand"

	"github.com/ironsheep/sketch-shapes/internal/geom"
)

// ArcLength returns the length of the contour polyline. When closed is
// true the segment from the last point back to the first is included.
func ArcLength(c Contour, closed bool) float64 {
	var length float64
	for i := 1; i < len(c); i++ {
		length += pixelDistance(c[i-1], c[i])
	}
	if closed && len(c) > 1 {
		length += pixelDistance(c[len(c)-1], c[0])
	}
	return length
}

// Area returns the absolute shoelace area enclosed by the contour.
func Area(c Contour) float64 {
	if len(c) < 3 {
		return 0
	}
	var sum float64
	for i := range c {
		j := (i + 1) % len(c)
		sum += float64(c[i].X)*float64(c[j].Y) - float64(c[j].X)*float64(c[i].Y)
	}
	return math.Abs(sum) / 2
}

// ApproxPolygon simplifies a closed contour to a polygon using the
// Douglas-Peucker algorithm with the given distance tolerance.
//
// The contour is split at its point farthest from the first point, the two
// chains are simplified independently, and the simplified chains are
// joined. The returned vertices are in trace order; the closing edge back
// to the first vertex is implicit.
func ApproxPolygon(c Contour, epsilon float64) []image.Point {
	if len(c) < 3 {
		out := make([]image.Point, len(c))
		copy(out, c)
		return out
	}

	split := 0
	var maxDist float64
	for i, p := range c {
		if d := pixelDistance(c[0], p); d > maxDist {
			maxDist = d
			split = i
		}
	}

	chain1 := c[:split+1]
	chain2 := make([]image.Point, 0, len(c)-split+1)
	chain2 = append(chain2, c[split:]...)
	chain2 = append(chain2, c[0])

	dp1 := douglasPeucker(chain1, epsilon)
	dp2 := douglasPeucker(chain2, epsilon)

	// dp1 ends where dp2 starts, and dp2 ends back at the first vertex;
	// drop both duplicates when joining.
	out := make([]image.Point, 0, len(dp1)+len(dp2)-2)
	out = append(out, dp1[:len(dp1)-1]...)
	out = append(out, dp2[:len(dp2)-1]...)
	return out
}

// douglasPeucker recursively simplifies an open chain, always keeping the
// endpoints.
func douglasPeucker(pts []image.Point, epsilon float64) []image.Point {
	if len(pts) < 3 {
		out := make([]image.Point, len(pts))
		copy(out, pts)
		return out
	}

	a, b := pts[0], pts[len(pts)-1]
	idx := 0
	var maxDist float64
	for i := 1; i < len(pts)-1; i++ {
		if d := perpendicularDistance(pts[i], a, b); d > maxDist {
			maxDist = d
			idx = i
		}
	}

	if maxDist <= epsilon {
		return []image.Point{a, b}
	}

	left := douglasPeucker(pts[:idx+1], epsilon)
	right := douglasPeucker(pts[idx:], epsilon)
	out := make([]image.Point, 0, len(left)+len(right)-1)
	out = append(out, left[:len(left)-1]...)
	out = append(out, right...)
	return out
}

// perpendicularDistance is the distance from p to the infinite line
// through a and b. When a and b coincide it degrades to the point
// distance.
func perpendicularDistance(p, a, b image.Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	if dx == 0 && dy == 0 {
		return pixelDistance(p, a)
	}
	t := ((float64(p.X)-float64(a.X))*dx + (float64(p.Y)-float64(a.Y))*dy) / (dx*dx + dy*dy)
	px := float64(a.X) + t*dx
	py := float64(a.Y) + t*dy
	return math.Hypot(float64(p.X)-px, float64(p.Y)-py)
}

// MinEnclosingCircle computes the smallest circle containing every contour
// point (Welzl's algorithm over a shuffled copy; the shuffle uses a fixed
// seed so results are reproducible).
func MinEnclosingCircle(c Contour) (geom.Point, float64) {
	pts := make([]geom.Point, len(c))
	for i, p := range c {
		pts[i] = geom.Point{X: float64(p.X), Y: float64(p.Y)}
	}
	rng := rand.New(rand.NewSource(1))
	rng.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })
	circ := welzl(pts, nil)
	return circ.center, circ.radius
}

type boundingCircle struct {
	center geom.Point
	radius float64
}

func (c boundingCircle) contains(p geom.Point) bool {
	return geom.Distance(c.center, p) <= c.radius+1e-9
}

func welzl(pts, boundary []geom.Point) boundingCircle {
	if len(pts) == 0 || len(boundary) == 3 {
		return trivialCircle(boundary)
	}
	p := pts[len(pts)-1]
	c := welzl(pts[:len(pts)-1], boundary)
	if c.contains(p) {
		return c
	}
	extended := append(append([]geom.Point{}, boundary...), p)
	return welzl(pts[:len(pts)-1], extended)
}

func trivialCircle(boundary []geom.Point) boundingCircle {
	switch len(boundary) {
	case 1:
		return boundingCircle{center: boundary[0]}
	case 2:
		return diametral(boundary[0], boundary[1])
	case 3:
		if c, ok := circumcircle(boundary[0], boundary[1], boundary[2]); ok {
			return c
		}
		// Collinear triple: the widest pair's diametral circle covers all.
		best := diametral(boundary[0], boundary[1])
		for _, c := range []boundingCircle{
			diametral(boundary[0], boundary[2]),
			diametral(boundary[1], boundary[2]),
		} {
			if c.radius > best.radius {
				best = c
			}
		}
		return best
	}
	return boundingCircle{}
}

func diametral(a, b geom.Point) boundingCircle {
	center := geom.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	return boundingCircle{center: center, radius: geom.Distance(a, b) / 2}
}

func circumcircle(a, b, c geom.Point) (boundingCircle, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-12 {
		return boundingCircle{}, false
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	center := geom.Point{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}
	return boundingCircle{center: center, radius: geom.Distance(center, a)}, true
}

func pixelDistance(a, b image.Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}
