// Package tesseract provides the local Tesseract OCR provider. It needs
// libtesseract at build time (cgo), so it lives apart from the ocr core.
package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/ocr"
)

var (
	_ ocr.Provider     = (*Provider)(nil)
	_ ocr.WordProvider = (*Provider)(nil)
)

// Provider implements OCR using the Tesseract engine through gosseract
type Provider struct {
	languages     []string
	clientFactory func() *gosseract.Client
}

// NewProvider creates a new Tesseract OCR provider
// language can be "eng", "ind" (Indonesian), or "eng+ind" for both
func NewProvider(language string) *Provider {
	if language == "" {
		language = "eng" // Default to English
	}

	return &Provider{
		languages:     strings.Split(language, "+"),
		clientFactory: gosseract.NewClient,
	}
}

// ExtractText extracts text from an image using Tesseract
func (p *Provider) ExtractText(ctx context.Context, imageData []byte) (*ocr.OCRResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client, err := p.newClient(imageData)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("tesseract recognize: %w", err)
	}

	// Page confidence is the mean of the word confidences
	var confidence float64
	if boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD); err == nil && len(boxes) > 0 {
		var sum float64
		for _, b := range boxes {
			sum += b.Confidence
		}
		confidence = sum / float64(len(boxes)) / 100
	}

	return &ocr.OCRResult{
		Text:       strings.TrimSpace(text),
		Confidence: confidence,
	}, nil
}

type lineKey struct {
	block, paragraph, line int
}

// ExtractWords returns word boxes for img with engine line indexes.
func (p *Provider) ExtractWords(ctx context.Context, img image.Image) ([]ocr.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode image for tesseract: %w", err)
	}

	client, err := p.newClient(buf.Bytes())
	if err != nil {
		return nil, err
	}
	defer client.Close()

	boxes, err := client.GetBoundingBoxesVerbose()
	if err != nil {
		return nil, fmt.Errorf("tesseract word boxes: %w", err)
	}

	return toWords(boxes), nil
}

// toWords converts verbose boxes to words. Tesseract restarts line numbers in
// every paragraph, so each distinct (block, paragraph, line) triple gets its
// own index, numbered in first-seen order.
func toWords(boxes []gosseract.BoundingBox) []ocr.Word {
	lines := make(map[lineKey]int)
	words := make([]ocr.Word, 0, len(boxes))
	for _, b := range boxes {
		key := lineKey{block: b.BlockNum, paragraph: b.ParNum, line: b.LineNum}
		idx, ok := lines[key]
		if !ok {
			idx = len(lines)
			lines[key] = idx
		}

		words = append(words, ocr.Word{
			Text:       b.Word,
			Confidence: int(math.Round(b.Confidence)),
			Left:       b.Box.Min.X,
			Top:        b.Box.Min.Y,
			Width:      b.Box.Dx(),
			Height:     b.Box.Dy(),
			Line:       idx,
		})
	}
	return words
}

func (p *Provider) newClient(imageData []byte) (*gosseract.Client, error) {
	client := p.clientFactory()

	if err := client.SetLanguage(p.languages...); err != nil {
		client.Close()
		return nil, fmt.Errorf("tesseract set language: %w", err)
	}
	if err := client.SetImageFromBytes(imageData); err != nil {
		client.Close()
		return nil, fmt.Errorf("tesseract set image: %w", err)
	}
	return client, nil
}

// GetProviderName returns the name of the provider
func (p *Provider) GetProviderName() string {
	return "Tesseract OCR"
}
