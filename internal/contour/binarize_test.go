package contour

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestOtsuLevel_Bimodal(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			v := uint8(20)
			if x >= 5 {
				v = 220
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}

	level := otsuLevel(img)
	if level < 20 || level >= 220 {
		t.Errorf("otsuLevel = %d, want a level separating 20 from 220", level)
	}
}

func TestBinarize_InkBecomesForeground(t *testing.T) {
	// Dark ink block on a white background, like a scratch raster.
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	ink := image.Rect(15, 15, 25, 25)
	draw.Draw(img, ink, image.NewUniform(color.Black), image.Point{}, draw.Src)

	bin := Binarize(img)

	if !foreground(bin, 20, 20) {
		t.Error("ink pixel should be foreground after binarization")
	}
	if foreground(bin, 2, 2) {
		t.Error("background pixel should not be foreground")
	}
}
