package contour

import "image"

// Contour is the ordered outline of a connected foreground region,
// as traced in raster pixel coordinates.
type Contour []image.Point

// minContourPoints is the noise floor: traced outlines shorter than this
// are discarded.
const minContourPoints = 10

// moore is the 8-neighbourhood in clockwise order starting east.
var moore = [8]image.Point{
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
}

// TraceExternal finds the external outlines of all connected foreground
// regions in a binary image.
//
// The image is scanned top-to-bottom, left-to-right. Each unvisited
// foreground pixel starts a Moore-neighbour boundary trace; the whole
// component is then flood-filled as visited so that its interior (and any
// holes) cannot start further traces. Only external outlines are produced.
func TraceExternal(bin *image.Gray) []Contour {
	bounds := bin.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}

	var contours []Contour
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if visited[y][x] || !foreground(bin, x, y) {
				continue
			}
			c := traceBoundary(bin, x, y)
			fillComponent(bin, visited, x, y)
			if len(c) >= minContourPoints {
				contours = append(contours, c)
			}
		}
	}
	return contours
}

// traceBoundary follows the outline of the component containing the start
// pixel, clockwise, using Moore-neighbour tracing with backtracking.
//
// The start pixel is the first of its component in scan order, so it is
// always entered from the west. The trace terminates when the start pixel
// is re-entered toward the same first move (Jacob's stopping criterion),
// or after a hard iteration cap for pathological inputs.
func traceBoundary(bin *image.Gray, sx, sy int) Contour {
	start := image.Pt(sx, sy)
	contour := Contour{start}
	cur := start
	backtrack := 4 // west
	firstMove := image.Pt(-1, -1)

	limit := 4 * bin.Bounds().Dx() * bin.Bounds().Dy()
	for step := 0; step < limit; step++ {
		found := -1
		for i := 1; i <= 8; i++ {
			d := (backtrack + i) % 8
			n := cur.Add(moore[d])
			if foreground(bin, n.X, n.Y) {
				found = d
				break
			}
		}
		if found < 0 {
			break // isolated pixel
		}
		next := cur.Add(moore[found])
		if cur == start {
			if firstMove == image.Pt(-1, -1) {
				firstMove = next
			} else if next == firstMove {
				break
			}
		}
		// The neighbour examined just before the hit is background and
		// adjacent to next; it becomes the new backtrack reference.
		bg := cur.Add(moore[(found+7)%8])
		backtrack = dirIndex(bg.Sub(next))
		contour = append(contour, next)
		cur = next
	}

	if len(contour) > 1 && contour[len(contour)-1] == start {
		contour = contour[:len(contour)-1]
	}
	return contour
}

// fillComponent marks every pixel of the 8-connected component containing
// (sx, sy) as visited, using an explicit stack to avoid deep recursion on
// large regions.
func fillComponent(bin *image.Gray, visited [][]bool, sx, sy int) {
	stack := []image.Point{image.Pt(sx, sy)}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !foreground(bin, p.X, p.Y) || visited[p.Y][p.X] {
			continue
		}
		visited[p.Y][p.X] = true

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := image.Pt(p.X+dx, p.Y+dy)
				if n.X >= 0 && n.X < len(visited[0]) && n.Y >= 0 && n.Y < len(visited) {
					stack = append(stack, n)
				}
			}
		}
	}
}

// foreground reports whether the pixel is part of the bright (ink) class.
// Out-of-bounds pixels are background.
func foreground(bin *image.Gray, x, y int) bool {
	bounds := bin.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return false
	}
	return bin.GrayAt(x, y).Y > 127
}

// dirIndex returns the Moore direction index of a unit offset.
func dirIndex(d image.Point) int {
	for i, o := range moore {
		if o == d {
			return i
		}
	}
	return 0
}
