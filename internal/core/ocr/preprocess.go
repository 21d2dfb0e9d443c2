package ocr

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const (
	binarizeThreshold = 128
	minDimension      = 300
	maxDimension      = 1000

	// MaxOCRDimension caps the working copy used for word-level OCR.
	MaxOCRDimension = 4000
)

// Preprocess prepares an image for whole-image OCR: grayscale, hard
// threshold at 128, then a 2x upscale when either side is under 300px or
// a 2x downscale when either side is over 1000px.
func Preprocess(img image.Image) *image.NRGBA {
	gray := imaging.Grayscale(img)

	bw := imaging.AdjustFunc(gray, func(c color.NRGBA) color.NRGBA {
		v := uint8(0)
		if c.R >= binarizeThreshold {
			v = 255
		}
		return color.NRGBA{R: v, G: v, B: v, A: c.A}
	})

	w, h := bw.Bounds().Dx(), bw.Bounds().Dy()
	switch {
	case w < minDimension || h < minDimension:
		return imaging.Resize(bw, w*2, h*2, imaging.Lanczos)
	case w > maxDimension || h > maxDimension:
		return imaging.Resize(bw, w/2, h/2, imaging.Lanczos)
	}
	return bw
}

// FitForOCR returns img unchanged when it already fits in
// MaxOCRDimension x MaxOCRDimension, otherwise a downscaled copy with the
// same aspect ratio.
func FitForOCR(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= MaxOCRDimension && b.Dy() <= MaxOCRDimension {
		return img
	}
	return imaging.Fit(img, MaxOCRDimension, MaxOCRDimension, imaging.Lanczos)
}
