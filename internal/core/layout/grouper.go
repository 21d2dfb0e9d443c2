// Package layout groups OCR words into text lines.
package layout

import (
	"strings"

	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/ocr"
)

const (
	// MinConfidence is exclusive: a word needs confidence above it.
	MinConfidence = 40
	// MaxHeightRatio bounds a word's scaled height relative to the image
	// height. Taller boxes are usually table rules or noise.
	MaxHeightRatio = 0.1
)

// Line is a run of words that share an engine line index.
type Line struct {
	Index int
	Words []ocr.Word
}

// Sentence joins the line's words with single spaces.
func (l Line) Sentence() string {
	parts := make([]string, len(l.Words))
	for i, w := range l.Words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// Box returns the union of the word boxes in OCR space: minimum left,
// minimum top, and the height up to the lowest word bottom. The width runs
// to the rightmost word edge.
func (l Line) Box() ocr.Box {
	if len(l.Words) == 0 {
		return ocr.Box{}
	}

	first := l.Words[0]
	left, top := first.Left, first.Top
	right, bottom := first.Left+first.Width, first.Top+first.Height
	for _, w := range l.Words[1:] {
		left = min(left, w.Left)
		top = min(top, w.Top)
		right = max(right, w.Left+w.Width)
		bottom = max(bottom, w.Top+w.Height)
	}
	return ocr.Box{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

// ScaledBox is Box mapped into original-image coordinates.
func (l Line) ScaledBox(scale ocr.Scale) ocr.Box {
	return scale.Apply(l.Box())
}

// Keep reports whether a word survives the confidence, length and size
// filters. imageHeight is the original image height.
func Keep(w ocr.Word, scale ocr.Scale, imageHeight int) bool {
	if w.Confidence <= MinConfidence {
		return false
	}
	if len([]rune(strings.TrimSpace(w.Text))) <= 1 {
		return false
	}
	return float64(w.Height)*scale.Y < MaxHeightRatio*float64(imageHeight)
}

// Group clusters words by their engine line index. Words keep the order the
// engine produced them in and lines are ordered by first appearance. Lines
// with nothing but whitespace are dropped.
func Group(words []ocr.Word, scale ocr.Scale, imageHeight int) []Line {
	var lines []Line
	positions := make(map[int]int)

	for _, w := range words {
		if !Keep(w, scale, imageHeight) {
			continue
		}

		pos, ok := positions[w.Line]
		if !ok {
			pos = len(lines)
			positions[w.Line] = pos
			lines = append(lines, Line{Index: w.Line})
		}
		lines[pos].Words = append(lines[pos].Words, w)
	}

	out := lines[:0]
	for _, l := range lines {
		if strings.TrimSpace(l.Sentence()) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
