package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/archive"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/layout"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/render"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/upload"
)

const jpegQuality = 95

// AnnotateImages redraws every image with its translated lines and returns
// one JPEG entry per image, named translated_<stem>.jpg. Everything happens
// in memory. Files that are not images, or that fail to decode or OCR, are
// returned as skipped and left out of the entries.
func (p *Pipeline) AnnotateImages(ctx context.Context, files []File, target string) ([]archive.Entry, []FileResult) {
	var (
		entries []archive.Entry
		skipped []FileResult
	)

	for _, f := range files {
		name := upload.SecureFilename(f.Name)
		if name == "" {
			name = f.Name
		}

		data, lines, err := p.annotateImage(ctx, f, target)
		if err != nil {
			log.Warn().Err(err).Str("file", name).Msg("⏭️ image skipped")
			skipped = append(skipped, FileResult{Name: name, Err: err})
			continue
		}

		log.Info().Str("file", name).Int("lines", lines).Msg("🖼️ image annotated")
		entries = append(entries, archive.Entry{
			Name: "translated_" + upload.Stem(name) + ".jpg",
			Data: data,
		})
	}

	return entries, skipped
}

func (p *Pipeline) annotateImage(ctx context.Context, f File, target string) ([]byte, int, error) {
	if !upload.IsImage(f.Name) {
		return nil, 0, ErrNotImage
	}

	decoded, err := imaging.Decode(bytes.NewReader(f.Data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, &DecodeError{Cause: err}
	}
	img := render.ToRGBA(decoded)

	result, err := p.deps.OCR.ExtractWords(ctx, img)
	if err != nil {
		return nil, 0, err
	}

	lines := layout.Group(result.Words, result.Scale, img.Bounds().Dy())
	drawn := p.deps.Annotator.Annotate(ctx, img, lines, result.Scale, target)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, 0, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), drawn, nil
}
