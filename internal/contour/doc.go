// Package contour classifies a stroke by tracing the outline of its
// rasterized image.
//
// Unlike the heuristic tier, which reasons about the raw point sequence,
// this pipeline produces exact vertices, centers and radii suitable for
// clean re-rendering. It needs a closed-ish shape to produce anything
// useful, and it is treated as fallible as a whole: any failure inside the
// pipeline is reported as "no contour result", never as an error.
//
// # Pipeline
//
//  1. Rasterize: paint the single finalized stroke onto a scratch surface
//     (white background, fixed-width black ink). The surface is scoped to
//     one classification and never reused across strokes.
//  2. Binarize: Gaussian blur, grayscale, invert so ink is foreground,
//     then threshold at an automatically selected (Otsu) level.
//  3. Trace: follow the external outline of each connected foreground
//     region, producing ordered boundary contours.
//  4. Approximate: simplify each contour to a polygon with tolerance
//     proportional to its perimeter.
//  5. Classify: 3 vertices is a triangle, 4 a rectangle; otherwise a high
//     circularity (4·pi·area/perimeter²) makes a circle from the minimum
//     enclosing circle. Anything else is unknown and discarded.
//
// # Coordinate System
//
// Tracing happens in raster space; classified shapes are mapped back to
// canvas coordinates before being returned.
package contour
