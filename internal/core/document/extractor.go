// Package document pulls the text layer out of PDF files.
package document

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/rs/zerolog/log"
)

// ExtractError wraps any failure to open or read a document.
type ExtractError struct {
	Path  string
	Cause error
}

func (e *ExtractError) Error() string {
	return "PDF Error: " + e.Cause.Error()
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// Extractor reads documents through MuPDF.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText concatenates the text of every page in page order, with no
// separator. A page without a text layer contributes nothing. Failures come
// back as *ExtractError.
func (e *Extractor) ExtractText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", &ExtractError{Path: path, Cause: err}
	}
	defer doc.Close()

	pages := doc.NumPage()
	text, err := concatPages(pages, doc.Text)
	if err != nil {
		return "", &ExtractError{Path: path, Cause: err}
	}

	log.Debug().Str("path", path).Int("pages", pages).Int("chars", len(text)).Msg("📄 PDF text extracted")
	return text, nil
}

// concatPages joins the text of pages 0..n-1 in order, with no separator.
func concatPages(n int, pageText func(int) (string, error)) (string, error) {
	var b strings.Builder
	for i := 0; i < n; i++ {
		text, err := pageText(i)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i+1, err)
		}
		b.WriteString(text)
	}
	return b.String(), nil
}
