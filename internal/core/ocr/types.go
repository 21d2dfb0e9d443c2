package ocr

import (
	"image"
	"math"
)

// Word is a single recognized word with its box in OCR-image pixels.
type Word struct {
	Text       string `json:"text"`
	Confidence int    `json:"confidence"` // 0-100
	Left       int    `json:"left"`
	Top        int    `json:"top"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Line       int    `json:"line"` // engine-assigned line index
}

// Box returns the word's bounding box.
func (w Word) Box() Box {
	return Box{Left: w.Left, Top: w.Top, Width: w.Width, Height: w.Height}
}

// Box is a rectangle given as offset plus size.
type Box struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Scale converts OCR-image coordinates into original-image coordinates.
type Scale struct {
	X float64
	Y float64
}

// Identity is the scale of an image that was not resized for OCR.
var Identity = Scale{X: 1, Y: 1}

// NewScale returns original/ocr ratios for both axes.
func NewScale(original, ocr image.Rectangle) Scale {
	if ocr.Dx() == 0 || ocr.Dy() == 0 {
		return Identity
	}
	return Scale{
		X: float64(original.Dx()) / float64(ocr.Dx()),
		Y: float64(original.Dy()) / float64(ocr.Dy()),
	}
}

// Apply scales a box into original-image coordinates.
func (s Scale) Apply(b Box) Box {
	return Box{
		Left:   scaleInt(b.Left, s.X),
		Top:    scaleInt(b.Top, s.Y),
		Width:  scaleInt(b.Width, s.X),
		Height: scaleInt(b.Height, s.Y),
	}
}

func scaleInt(v int, f float64) int {
	return int(math.Round(float64(v) * f))
}
