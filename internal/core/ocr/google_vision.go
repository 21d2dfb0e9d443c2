package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"math"
	"strings"

	vision "cloud.google.com/go/vision/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/disintegration/imaging"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
)

// visionAnnotator is the part of *vision.ImageAnnotatorClient used here.
type visionAnnotator interface {
	DetectTexts(ctx context.Context, img *visionpb.Image, ictx *visionpb.ImageContext, maxResults int, opts ...gax.CallOption) ([]*visionpb.EntityAnnotation, error)
	DetectDocumentText(ctx context.Context, img *visionpb.Image, ictx *visionpb.ImageContext, opts ...gax.CallOption) (*visionpb.TextAnnotation, error)
	Close() error
}

// GoogleVisionProvider implements OCR using Google Cloud Vision API
type GoogleVisionProvider struct {
	client visionAnnotator
}

// NewGoogleVisionProvider creates a new Google Vision OCR provider
func NewGoogleVisionProvider(ctx context.Context, apiKey string, opts ...option.ClientOption) (*GoogleVisionProvider, error) {
	client, err := vision.NewImageAnnotatorClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("google vision client: %w", err)
	}
	return &GoogleVisionProvider{client: client}, nil
}

// GetProviderName returns the provider name
func (p *GoogleVisionProvider) GetProviderName() string {
	return "Google Cloud Vision"
}

// Close releases the Vision connection.
func (p *GoogleVisionProvider) Close() error {
	return p.client.Close()
}

// ExtractText extracts text from image using Google Cloud Vision API
func (p *GoogleVisionProvider) ExtractText(ctx context.Context, imageData []byte) (*OCRResult, error) {
	img, err := vision.NewImageFromReader(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("google vision image: %w", err)
	}

	annotations, err := p.client.DetectTexts(ctx, img, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("google vision text detection: %w", err)
	}
	if len(annotations) == 0 {
		return &OCRResult{}, nil
	}

	// First annotation contains the full text
	confidence := float64(annotations[0].GetScore())
	if confidence == 0 {
		confidence = 0.95
	}

	return &OCRResult{
		Text:       annotations[0].GetDescription(),
		Confidence: confidence,
	}, nil
}

// ExtractWords uses document text detection. Vision has no line numbers, so
// each paragraph becomes one line.
func (p *GoogleVisionProvider) ExtractWords(ctx context.Context, img image.Image) ([]Word, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode image for google vision: %w", err)
	}

	full, err := p.client.DetectDocumentText(ctx, &visionpb.Image{Content: buf.Bytes()}, nil)
	if err != nil {
		return nil, fmt.Errorf("google vision document detection: %w", err)
	}
	if full == nil {
		return nil, nil
	}

	var words []Word
	line := 0
	for _, page := range full.GetPages() {
		for _, block := range page.GetBlocks() {
			for _, paragraph := range block.GetParagraphs() {
				for _, w := range paragraph.GetWords() {
					words = append(words, visionWordToWord(w, line))
				}
				line++
			}
		}
	}
	return words, nil
}

func visionWordToWord(w *visionpb.Word, line int) Word {
	var sb strings.Builder
	for _, s := range w.GetSymbols() {
		sb.WriteString(s.GetText())
	}

	vertices := w.GetBoundingBox().GetVertices()
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := 0, 0
	for _, v := range vertices {
		minX = min(minX, int(v.GetX()))
		minY = min(minY, int(v.GetY()))
		maxX = max(maxX, int(v.GetX()))
		maxY = max(maxY, int(v.GetY()))
	}
	if len(vertices) == 0 {
		minX, minY = 0, 0
	}

	return Word{
		Text:       sb.String(),
		Confidence: int(math.Round(float64(w.GetConfidence()) * 100)),
		Left:       minX,
		Top:        minY,
		Width:      maxX - minX,
		Height:     maxY - minY,
		Line:       line,
	}
}

var (
	_ Provider     = (*GoogleVisionProvider)(nil)
	_ WordProvider = (*GoogleVisionProvider)(nil)
)
