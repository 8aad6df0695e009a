package contour

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// Binarize converts a scratch raster (dark ink on a light background) to a
// binary image with the ink as white foreground.
//
// The raster is lightly blurred to suppress aliasing noise, converted to
// grayscale, inverted so the ink becomes the bright class, and thresholded
// at an automatically selected global level.
func Binarize(img image.Image) *image.Gray {
	blurred := blur.Gaussian(img, 1.0)
	gray := imaging.Grayscale(blurred)
	inverted := imaging.Invert(gray)
	return segment.Threshold(inverted, otsuLevel(inverted))
}

// otsuLevel selects the global threshold maximizing the between-class
// variance of the luminance histogram (Otsu's method).
func otsuLevel(img image.Image) uint8 {
	var hist [256]int
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			hist[g.Y]++
		}
	}

	total := float64(bounds.Dx() * bounds.Dy())
	var sum float64
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	var sumB, weightB float64
	var best float64
	level := uint8(127)
	for t := 0; t < 256; t++ {
		weightB += float64(hist[t])
		if weightB == 0 {
			continue
		}
		weightF := total - weightB
		if weightF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		meanB := sumB / weightB
		meanF := (sum - sumB) / weightF
		between := weightB * weightF * (meanB - meanF) * (meanB - meanF)
		if between > best {
			best = between
			level = uint8(t)
		}
	}
	return level
}
