package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
)

// Provider interface for OCR services
type Provider interface {
	// ExtractText extracts the whole text of an encoded image
	ExtractText(ctx context.Context, imageData []byte) (*OCRResult, error)

	// GetProviderName returns the provider name
	GetProviderName() string
}

// WordProvider is implemented by providers that can report word-level
// boxes, needed to redraw translated text in place.
type WordProvider interface {
	ExtractWords(ctx context.Context, img image.Image) ([]Word, error)
}

// OCRResult contains the extracted text and metadata
type OCRResult struct {
	Text       string  `json:"text"`       // Raw extracted text
	Confidence float64 `json:"confidence"` // OCR confidence score (0-1)
}

// WordResult is the outcome of a word-level extraction. Word coordinates are
// in OCR-image space; Scale maps them back onto the original image.
type WordResult struct {
	Words  []Word
	Scale  Scale
	Bounds image.Rectangle // original image bounds
}

// Service wraps the OCR provider
type Service struct {
	provider   Provider
	preprocess bool
}

// Option configures a Service
type Option func(*Service)

// WithPreprocessing toggles the grayscale/threshold/resize pass applied
// before whole-image text extraction.
func WithPreprocessing(enabled bool) Option {
	return func(s *Service) { s.preprocess = enabled }
}

// NewService creates a new OCR service with the given provider
func NewService(provider Provider, opts ...Option) *Service {
	s := &Service{provider: provider}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExtractText runs whole-image OCR. Every failure, including undecodable
// input, comes back as an *ExtractError.
func (s *Service) ExtractText(ctx context.Context, imageData []byte) (*OCRResult, error) {
	data := imageData
	if s.preprocess {
		img, err := imaging.Decode(bytes.NewReader(imageData), imaging.AutoOrientation(true))
		if err != nil {
			return nil, &ExtractError{Provider: s.GetProviderName(), Cause: fmt.Errorf("decode image: %w", err)}
		}

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, Preprocess(img), imaging.PNG); err != nil {
			return nil, &ExtractError{Provider: s.GetProviderName(), Cause: fmt.Errorf("encode preprocessed image: %w", err)}
		}
		data = buf.Bytes()
	}

	result, err := s.provider.ExtractText(ctx, data)
	if err != nil {
		return nil, &ExtractError{Provider: s.GetProviderName(), Cause: err}
	}
	return result, nil
}

// ExtractWords runs word-level OCR on a working copy no larger than
// 4000x4000. The original image is left untouched for rendering.
// Provider errors are returned as-is.
func (s *Service) ExtractWords(ctx context.Context, img image.Image) (*WordResult, error) {
	wp, ok := s.provider.(WordProvider)
	if !ok {
		return nil, fmt.Errorf("%s does not support word-level extraction", s.GetProviderName())
	}

	working := FitForOCR(img)
	words, err := wp.ExtractWords(ctx, working)
	if err != nil {
		return nil, err
	}

	scale := NewScale(img.Bounds(), working.Bounds())
	log.Debug().
		Str("provider", s.GetProviderName()).
		Int("words", len(words)).
		Float64("sx", scale.X).
		Float64("sy", scale.Y).
		Msg("🔍 word-level OCR done")

	return &WordResult{Words: words, Scale: scale, Bounds: img.Bounds()}, nil
}

// GetProviderName returns the name of the current provider
func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}

// SupportsWords reports whether the configured provider can return word boxes.
func (s *Service) SupportsWords() bool {
	_, ok := s.provider.(WordProvider)
	return ok
}
