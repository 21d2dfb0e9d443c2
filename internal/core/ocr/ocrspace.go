package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

const ocrSpaceEndpoint = "https://api.ocr.space/parse/image"

// overlayConfidence is given to every overlay word. OCR.space reports no
// scores and only returns words it accepted.
const overlayConfidence = 100

// OCRSpaceProvider runs OCR through the OCR.space parse API. Word boxes come
// from the text overlay, one line per overlay line.
type OCRSpaceProvider struct {
	apiKey   string
	language string
	endpoint string
	client   *http.Client
}

func NewOCRSpaceProvider(apiKey, language string) *OCRSpaceProvider {
	if language == "" {
		language = "eng"
	}
	return &OCRSpaceProvider{
		apiKey:   apiKey,
		language: language,
		endpoint: ocrSpaceEndpoint,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (p *OCRSpaceProvider) GetProviderName() string {
	return "OCR.space"
}

type ocrSpaceWord struct {
	WordText string  `json:"WordText"`
	Left     float64 `json:"Left"`
	Top      float64 `json:"Top"`
	Width    float64 `json:"Width"`
	Height   float64 `json:"Height"`
}

type ocrSpaceParsed struct {
	ParsedText  string `json:"ParsedText"`
	TextOverlay struct {
		Lines []struct {
			LineText string         `json:"LineText"`
			Words    []ocrSpaceWord `json:"Words"`
		} `json:"Lines"`
	} `json:"TextOverlay"`
	FileParseExitCode int    `json:"FileParseExitCode"`
	ErrorMessage      string `json:"ErrorMessage"`
}

type ocrSpaceResponse struct {
	ParsedResults         []ocrSpaceParsed `json:"ParsedResults"`
	OCRExitCode           int              `json:"OCRExitCode"`
	IsErroredOnProcessing bool             `json:"IsErroredOnProcessing"`
	ErrorMessage          []string         `json:"ErrorMessage,omitempty"`
}

// ExtractText joins the parsed text of every result. The API has no score,
// so Confidence stays zero.
func (p *OCRSpaceProvider) ExtractText(ctx context.Context, imageData []byte) (*OCRResult, error) {
	resp, err := p.parse(ctx, imageData, false)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(resp.ParsedResults))
	for _, r := range resp.ParsedResults {
		texts = append(texts, r.ParsedText)
	}
	return &OCRResult{Text: strings.Join(texts, "")}, nil
}

// ExtractWords asks for the text overlay and numbers its lines in order.
func (p *OCRSpaceProvider) ExtractWords(ctx context.Context, img image.Image) ([]Word, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode image for ocrspace: %w", err)
	}

	resp, err := p.parse(ctx, buf.Bytes(), true)
	if err != nil {
		return nil, err
	}

	var words []Word
	line := 0
	for _, r := range resp.ParsedResults {
		for _, l := range r.TextOverlay.Lines {
			for _, w := range l.Words {
				words = append(words, Word{
					Text:       w.WordText,
					Confidence: overlayConfidence,
					Left:       int(math.Round(w.Left)),
					Top:        int(math.Round(w.Top)),
					Width:      int(math.Round(w.Width)),
					Height:     int(math.Round(w.Height)),
					Line:       line,
				})
			}
			line++
		}
	}
	return words, nil
}

func (p *OCRSpaceProvider) parse(ctx context.Context, imageData []byte, overlay bool) (*ocrSpaceResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "image.png")
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, fmt.Errorf("failed to write image data: %w", err)
	}

	fields := [][2]string{
		{"apikey", p.apiKey},
		{"language", p.language},
		{"scale", "true"},
		{"isOverlayRequired", strconv.FormatBool(overlay)},
	}
	for _, f := range fields {
		if err := writer.WriteField(f[0], f[1]); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f[0], err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ocrspace request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ocrspace error (status: %d): %s", resp.StatusCode, string(body))
	}

	var out ocrSpaceResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if out.IsErroredOnProcessing {
		msg := "unknown error"
		if len(out.ErrorMessage) > 0 {
			msg = strings.Join(out.ErrorMessage, "; ")
		}
		return nil, fmt.Errorf("ocrspace processing error: %s", msg)
	}
	for _, r := range out.ParsedResults {
		if r.FileParseExitCode != 1 {
			return nil, fmt.Errorf("ocrspace parse exit code %d: %s", r.FileParseExitCode, r.ErrorMessage)
		}
	}

	return &out, nil
}

var (
	_ Provider     = (*OCRSpaceProvider)(nil)
	_ WordProvider = (*OCRSpaceProvider)(nil)
)
