package canvas

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Style describes how a stroke is painted: its color and line width in
// canvas units.
type Style struct {
	Color colorful.Color
	Width float64
}

// StyleFromHex builds a style from a "#RRGGBB" hex color string.
func StyleFromHex(hex string, width float64) (Style, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Style{}, fmt.Errorf("invalid style color %q: %w", hex, err)
	}
	return Style{Color: c, Width: width}, nil
}

// InkStyle is the style of raw freehand ink while a stroke is in progress.
func InkStyle() Style {
	return Style{Color: colorful.Color{R: 0.2, G: 0.2, B: 0.2}, Width: 2}
}

// RecognizedStyle is the style of recognized shapes, visually distinct
// from freehand ink.
func RecognizedStyle() Style {
	return Style{Color: colorful.Color{R: 0.12, G: 0.4, B: 0.96}, Width: 3}
}

// RGBA converts the style color to a fully opaque 8-bit color.
func (s Style) RGBA() color.RGBA {
	r, g, b := s.Color.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
