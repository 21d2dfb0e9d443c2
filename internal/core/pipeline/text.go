package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/translate"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/upload"
)

// TranslateFiles extracts and translates the text of every file, in order.
// Each file is staged on disk under a unique name for the duration of its
// processing. A failing file never stops the batch; its error is carried in
// its FileResult. Files with an unsupported extension get
// UnsupportedFileText, untranslated.
func (p *Pipeline) TranslateFiles(ctx context.Context, files []File, target string) []FileResult {
	results := make([]FileResult, 0, len(files))

	for _, f := range files {
		name := upload.SecureFilename(f.Name)
		if name == "" {
			name = f.Name
		}

		if !upload.AllowedFile(f.Name) {
			log.Info().Str("file", name).Msg("⏭️ unsupported file type")
			results = append(results, FileResult{Name: name, Text: UnsupportedFileText})
			continue
		}

		text, err := p.translateFile(ctx, f, target)
		if err != nil {
			log.Warn().Err(err).Str("file", name).Msg("⚠️ file translation failed")
		} else {
			log.Info().Str("file", name).Int("chars", len(text)).Msg("✅ file translated")
		}
		results = append(results, FileResult{Name: name, Text: text, Err: err})
	}

	return results
}

func (p *Pipeline) translateFile(ctx context.Context, f File, target string) (string, error) {
	var extracted string

	err := p.deps.Staging.WithStaged(f.Data, f.Name, func(staged *upload.StagedFile) error {
		var err error
		switch {
		case upload.IsImage(f.Name):
			extracted, err = p.extractImage(ctx, staged.Path)
		case upload.IsPDF(f.Name):
			extracted, err = p.deps.Documents.ExtractText(staged.Path)
		default:
			err = fmt.Errorf("no extractor for %q", f.Name)
		}
		return err
	})
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(extracted) == "" {
		return "", nil
	}
	return p.deps.Translator.Translate(ctx, extracted, target, translate.AutoDetect)
}

func (p *Pipeline) extractImage(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read staged image: %w", err)
	}
	result, err := p.deps.OCR.ExtractText(ctx, data)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}
