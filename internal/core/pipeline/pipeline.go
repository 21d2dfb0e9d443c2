// Package pipeline runs uploaded files through OCR, translation and, for the
// image output, re-rendering. Text output and image output are two
// configurations of the same per-file flow.
package pipeline

import (
	"context"
	"image"

	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/layout"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/ocr"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/upload"
)

// UnsupportedFileText replaces the extracted text of files whose extension
// is not png, jpg, jpeg or pdf.
const UnsupportedFileText = "Unsupported file type."

// OCR is the slice of *ocr.Service the pipeline needs.
type OCR interface {
	ExtractText(ctx context.Context, imageData []byte) (*ocr.OCRResult, error)
	ExtractWords(ctx context.Context, img image.Image) (*ocr.WordResult, error)
}

// Translator translates one text, retrying as it sees fit.
type Translator interface {
	Translate(ctx context.Context, text, target, source string) (string, error)
}

// DocumentExtractor reads the text layer of a staged document.
type DocumentExtractor interface {
	ExtractText(path string) (string, error)
}

// Stager keeps a file on disk for the duration of fn.
type Stager interface {
	WithStaged(data []byte, filename string, fn func(*upload.StagedFile) error) error
}

// Annotator draws translated lines onto an image in place.
type Annotator interface {
	Annotate(ctx context.Context, img *image.RGBA, lines []layout.Line, scale ocr.Scale, target string) int
}

// Deps are the service handles a Pipeline works with. They are shared by
// all requests and must be safe for concurrent use.
type Deps struct {
	OCR        OCR
	Translator Translator
	Documents  DocumentExtractor
	Staging    Stager
	Annotator  Annotator
}

// File is an uploaded file held in memory.
type File struct {
	Name string
	Data []byte
}

// FileResult is the outcome for one file: Text on success, Err otherwise.
type FileResult struct {
	Name string
	Text string
	Err  error
}

// Message is the text reported to the client: the translation, or the
// error description.
func (r FileResult) Message() string {
	if r.Err != nil {
		return Describe(r.Err)
	}
	return r.Text
}

// Pipeline is stateless; one instance serves every request.
type Pipeline struct {
	deps Deps
}

func New(deps Deps) *Pipeline {
	return &Pipeline{deps: deps}
}

// TranslateText translates free text. An empty source means auto detection.
func (p *Pipeline) TranslateText(ctx context.Context, text, source, target string) (string, error) {
	return p.deps.Translator.Translate(ctx, text, target, source)
}
