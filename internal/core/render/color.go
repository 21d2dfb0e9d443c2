package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Luminance returns (0.299R + 0.587G + 0.114B) / 255 for c, in [0, 1].
func Luminance(c color.Color) float64 {
	cf, _ := colorful.MakeColor(c)
	return 0.299*cf.R + 0.587*cf.G + 0.114*cf.B
}

// TextColor picks black or white, whichever contrasts more with background.
func TextColor(background color.Color) color.Color {
	return contrastFor(Luminance(background))
}

func contrastFor(luminance float64) color.Color {
	if luminance > 0.5 {
		return Black
	}
	return White
}
