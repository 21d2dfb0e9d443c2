package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/timeout"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/archive"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/pipeline"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/upload"
)

// SkippedFilesHeader lists, comma separated, the uploads left out of an
// image archive.
const SkippedFilesHeader = "X-Skipped-Files"

var errNoFiles = errors.New("No files part")

// TranslateHandler handles file and text translation requests
type TranslateHandler struct {
	pipeline *pipeline.Pipeline
	archive  *archive.Service
	maxFiles int
	maxSize  int64
}

// NewTranslateHandler creates a new translate handler
func NewTranslateHandler(p *pipeline.Pipeline, archiveService *archive.Service, maxFiles int, maxSize int64) *TranslateHandler {
	return &TranslateHandler{
		pipeline: p,
		archive:  archiveService,
		maxFiles: maxFiles,
		maxSize:  maxSize,
	}
}

// Register mounts the translate routes. Each request gets a user context
// that expires after limit, which stops pending retries and engine calls.
func (h *TranslateHandler) Register(router fiber.Router, limit time.Duration) {
	router.Post("/translate_files", timeout.NewWithContext(h.TranslateFiles, limit))
	router.Post("/translate_text", timeout.NewWithContext(h.TranslateText, limit))
	router.Post("/translate_images", timeout.NewWithContext(h.TranslateImages, limit))
}

// TranslateFiles godoc
// @Summary Extract and translate text from files
// @Description Upload images (png, jpg, jpeg) or PDFs; the text of each file is extracted and translated. The response maps each sanitized filename to its translation or error description. Files with other extensions map to "Unsupported file type.".
// @Tags Translate
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files to translate (repeat the field for several files)"
// @Param targetLanguage formData string true "Target language code, e.g. es"
// @Success 200 {object} map[string]string
// @Router /translate_files [post]
func (h *TranslateHandler) TranslateFiles(c *fiber.Ctx) error {
	target := strings.TrimSpace(c.FormValue("targetLanguage"))
	if target == "" {
		return c.JSON(fiber.Map{"error": "targetLanguage is required"})
	}

	files, rejected, err := h.readFiles(c)
	if err != nil {
		return c.JSON(fiber.Map{"error": err.Error()})
	}

	log.Info().Int("files", len(files)).Str("target", target).Msg("📄 Translating files")

	translations := make(map[string]string, len(files)+len(rejected))
	for _, r := range rejected {
		translations[r.Name] = r.Message()
	}
	for _, r := range h.pipeline.TranslateFiles(c.UserContext(), files, target) {
		translations[r.Name] = r.Message()
	}

	return c.JSON(translations)
}

// TranslateText godoc
// @Summary Translate plain text
// @Tags Translate
// @Accept x-www-form-urlencoded
// @Produce json
// @Param text formData string true "Text to translate"
// @Param sourceLanguage formData string false "Source language code, auto when empty"
// @Param targetLanguage formData string true "Target language code"
// @Success 200 {object} map[string]string
// @Router /translate_text [post]
func (h *TranslateHandler) TranslateText(c *fiber.Ctx) error {
	text := c.FormValue("text")
	source := strings.TrimSpace(c.FormValue("sourceLanguage"))
	target := strings.TrimSpace(c.FormValue("targetLanguage"))

	if strings.TrimSpace(text) == "" {
		return c.JSON(fiber.Map{"error": "text is required"})
	}
	if target == "" {
		return c.JSON(fiber.Map{"error": "targetLanguage is required"})
	}

	translated, err := h.pipeline.TranslateText(c.UserContext(), text, source, target)
	if err != nil {
		log.Error().Err(err).Str("target", target).Msg("❌ Text translation failed")
		return c.JSON(fiber.Map{"error": pipeline.Describe(err)})
	}

	return c.JSON(fiber.Map{"translated_text": translated})
}

// TranslateImages godoc
// @Summary Translate text inside images
// @Description Upload png, jpg or jpeg images. Each image is returned with its translated lines drawn over the original text, as translated_<name>.jpg inside a ZIP archive. Uploads that could not be processed are listed in the X-Skipped-Files header.
// @Tags Translate
// @Accept multipart/form-data
// @Produce application/zip
// @Param files formData file true "Images to translate (repeat the field for several files)"
// @Param targetLanguage formData string true "Target language code, e.g. es"
// @Success 200 {file} file "ZIP archive"
// @Header 200 {string} X-Skipped-Files "Comma separated names of skipped uploads"
// @Router /translate_images [post]
func (h *TranslateHandler) TranslateImages(c *fiber.Ctx) error {
	target := strings.TrimSpace(c.FormValue("targetLanguage"))
	if target == "" {
		return c.JSON(fiber.Map{"error": "targetLanguage is required"})
	}

	files, rejected, err := h.readFiles(c)
	if err != nil {
		return c.JSON(fiber.Map{"error": err.Error()})
	}

	log.Info().Int("files", len(files)).Str("target", target).Msg("🖼️ Translating images")

	entries, skipped := h.pipeline.AnnotateImages(c.UserContext(), files, target)
	skipped = append(rejected, skipped...)

	if len(entries) == 0 {
		reasons := make(map[string]string, len(skipped))
		for _, s := range skipped {
			reasons[s.Name] = s.Message()
		}
		return c.JSON(fiber.Map{"error": "No image could be processed.", "skipped": reasons})
	}

	data, contentType, err := h.archive.Package(entries)
	if err != nil {
		log.Error().Err(err).Msg("❌ Failed to package images")
		return c.JSON(fiber.Map{"error": err.Error()})
	}

	if len(skipped) > 0 {
		names := make([]string, len(skipped))
		for i, s := range skipped {
			names[i] = s.Name
		}
		c.Set(SkippedFilesHeader, strings.Join(names, ","))
	}
	c.Attachment(h.archive.Filename("translated_images"))
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}

// readFiles loads the "files" parts into memory. Parts over the size limit
// are returned as rejected results instead of files.
func (h *TranslateHandler) readFiles(c *fiber.Ctx) ([]pipeline.File, []pipeline.FileResult, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, errNoFiles
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return nil, nil, errNoFiles
	}
	if h.maxFiles > 0 && len(headers) > h.maxFiles {
		return nil, nil, fmt.Errorf("You can only upload a maximum of %d files.", h.maxFiles)
	}

	files := make([]pipeline.File, 0, len(headers))
	var rejected []pipeline.FileResult
	for _, fh := range headers {
		if h.maxSize > 0 && fh.Size > h.maxSize {
			rejected = append(rejected, pipeline.FileResult{
				Name: displayName(fh.Filename),
				Err:  fmt.Errorf("%w: %d bytes", upload.ErrTooLarge, h.maxSize),
			})
			continue
		}

		data, err := readPart(fh)
		if err != nil {
			log.Error().Err(err).Str("file", fh.Filename).Msg("❌ Failed to read upload")
			rejected = append(rejected, pipeline.FileResult{Name: displayName(fh.Filename), Err: err})
			continue
		}
		files = append(files, pipeline.File{Name: fh.Filename, Data: data})
	}

	return files, rejected, nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return data, nil
}

func displayName(name string) string {
	if secure := upload.SecureFilename(name); secure != "" {
		return secure
	}
	return name
}
