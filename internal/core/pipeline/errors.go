package pipeline

import (
	"errors"
	"fmt"

	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/document"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/ocr"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/translate"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/upload"
)

// ErrNotImage marks files skipped by the image output because they are not
// png, jpg or jpeg.
var ErrNotImage = errors.New("not a png, jpg or jpeg image")

// DecodeError is returned when an uploaded image cannot be decoded.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return "Image Error: " + e.Cause.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Describe renders err for clients. Extraction and translation failures keep
// their "OCR Error: ", "PDF Error: " and "Translation failed after N
// attempts: " forms.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var (
		ocrErr    *ocr.ExtractError
		pdfErr    *document.ExtractError
		retryErr  *translate.RetryError
		decodeErr *DecodeError
	)
	switch {
	case errors.As(err, &ocrErr):
		return ocrErr.Error()
	case errors.As(err, &pdfErr):
		return pdfErr.Error()
	case errors.As(err, &retryErr):
		return retryErr.Error()
	case errors.As(err, &decodeErr):
		return decodeErr.Error()
	case errors.Is(err, upload.ErrTooLarge):
		return fmt.Sprintf("Upload Error: %v", err)
	default:
		return err.Error()
	}
}
