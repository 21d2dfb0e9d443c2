// Package render draws translated text back onto the source image.
package render

import (
	"context"
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"

	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/layout"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/ocr"
)

const (
	maxFontSize     = 60
	fontHeightRatio = 0.9
)

// Translator translates a single piece of text.
type Translator interface {
	Translate(ctx context.Context, text, target, source string) (string, error)
}

// Annotator overlays translated lines onto an image.
type Annotator struct {
	translator Translator
	fonts      *Fonts
}

func NewAnnotator(translator Translator, fonts *Fonts) *Annotator {
	return &Annotator{translator: translator, fonts: fonts}
}

// FontSize is 90% of the line height, capped at 60px.
func FontSize(lineHeight int) float64 {
	return min(fontHeightRatio*float64(lineHeight), maxFontSize)
}

// Annotate translates every line and draws the result onto img in place, at
// the line's position in original-image coordinates. The original glyphs are
// not erased. A line whose translation fails is drawn untranslated. It
// returns the number of lines drawn.
func (a *Annotator) Annotate(ctx context.Context, img *image.RGBA, lines []layout.Line, scale ocr.Scale, target string) int {
	dc := gg.NewContextForRGBA(img)
	drawn := 0

	for _, line := range lines {
		sentence := strings.TrimSpace(line.Sentence())
		if sentence == "" {
			continue
		}

		text, err := a.translator.Translate(ctx, sentence, target, "auto")
		if err != nil {
			log.Warn().Err(err).Int("line", line.Index).Msg("⚠️ line translation failed, drawing source text")
			text = sentence
		}

		box := line.ScaledBox(scale)
		dc.SetFontFace(a.fonts.Face(FontSize(box.Height)))
		dc.SetColor(TextColor(samplePixel(img, box.Left, box.Top)))
		dc.DrawStringAnchored(text, float64(box.Left), float64(box.Top), 0, 1)
		drawn++
	}

	return drawn
}

// samplePixel reads the pixel at (x, y) relative to the image origin,
// clamped into the image.
func samplePixel(img *image.RGBA, x, y int) color.Color {
	b := img.Bounds()
	x = min(max(x, 0), b.Dx()-1)
	y = min(max(y, 0), b.Dy()-1)
	return img.At(b.Min.X+x, b.Min.Y+y)
}

// ToRGBA returns img as an *image.RGBA, copying only when needed.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}
