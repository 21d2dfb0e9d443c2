package ocr

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

type fakeProvider struct {
	text     string
	err      error
	received []byte
}

func (f *fakeProvider) ExtractText(_ context.Context, data []byte) (*OCRResult, error) {
	f.received = data
	if f.err != nil {
		return nil, f.err
	}
	return &OCRResult{Text: f.text, Confidence: 0.9}, nil
}

func (f *fakeProvider) GetProviderName() string { return "fake" }

type fakeWordProvider struct {
	fakeProvider
	words []Word
	seen  image.Rectangle
}

func (f *fakeWordProvider) ExtractWords(_ context.Context, img image.Image) ([]Word, error) {
	f.seen = img.Bounds()
	return f.words, f.err
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestScaleApply(t *testing.T) {
	original := image.Rect(0, 0, 2000, 2000)
	downscaled := image.Rect(0, 0, 1000, 1000)

	scale := NewScale(original, downscaled)
	if scale.X != 2 || scale.Y != 2 {
		t.Fatalf("scale = %+v, want 2x2", scale)
	}

	got := scale.Apply(Box{Left: 100, Top: 100, Width: 50, Height: 50})
	want := Box{Left: 200, Top: 200, Width: 100, Height: 100}
	if got != want {
		t.Errorf("Apply = %+v, want %+v", got, want)
	}
}

func TestNewScaleEmptyOCRImage(t *testing.T) {
	if s := NewScale(image.Rect(0, 0, 10, 10), image.Rectangle{}); s != Identity {
		t.Errorf("got %+v, want identity", s)
	}
}

func TestPreprocessResize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"small is doubled", 120, 400, 240, 800},
		{"large is halved", 2400, 800, 1200, 400},
		{"medium unchanged", 500, 700, 500, 700},
		{"boundary 300 and 1000 unchanged", 300, 1000, 300, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			out := Preprocess(img)
			if out.Bounds().Dx() != tt.wantW || out.Bounds().Dy() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", out.Bounds().Dx(), out.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPreprocessBinarizes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 400))
	for y := 0; y < 400; y++ {
		for x := 0; x < 400; x++ {
			if x < 200 {
				img.Set(x, y, color.RGBA{R: 90, G: 90, B: 90, A: 255})
			} else {
				img.Set(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
			}
		}
	}

	out := Preprocess(img)
	if c := out.NRGBAAt(10, 10); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("dark pixel = %v, want black", c)
	}
	if c := out.NRGBAAt(390, 10); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("light pixel = %v, want white", c)
	}
}

func TestFitForOCR(t *testing.T) {
	small := image.NewRGBA(image.Rect(0, 0, 4000, 100))
	if FitForOCR(small) != image.Image(small) {
		t.Error("image within limits should be returned as-is")
	}

	big := image.NewRGBA(image.Rect(0, 0, 8000, 2000))
	fitted := FitForOCR(big)
	if fitted.Bounds().Dx() != 4000 || fitted.Bounds().Dy() != 1000 {
		t.Errorf("fitted = %v, want 4000x1000", fitted.Bounds())
	}
}

func TestServiceExtractTextWrapsErrors(t *testing.T) {
	provider := &fakeProvider{err: errors.New("engine crashed")}
	svc := NewService(provider)

	_, err := svc.ExtractText(context.Background(), []byte("raw"))
	var extractErr *ExtractError
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected *ExtractError, got %T", err)
	}
	if err.Error() != "OCR Error: engine crashed" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestServiceExtractTextWithoutPreprocessingPassesBytes(t *testing.T) {
	provider := &fakeProvider{text: "hello"}
	svc := NewService(provider, WithPreprocessing(false))

	res, err := svc.ExtractText(context.Background(), []byte("raw-bytes"))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if res.Text != "hello" {
		t.Errorf("text = %q", res.Text)
	}
	if string(provider.received) != "raw-bytes" {
		t.Errorf("provider got %q", provider.received)
	}
}

func TestServiceExtractTextPreprocessing(t *testing.T) {
	provider := &fakeProvider{text: "ok"}
	svc := NewService(provider, WithPreprocessing(true))

	data := encodePNG(t, image.NewRGBA(image.Rect(0, 0, 100, 100)))
	if _, err := svc.ExtractText(context.Background(), data); err != nil {
		t.Fatalf("ExtractText: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(provider.received))
	if err != nil {
		t.Fatalf("provider did not receive a PNG: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 200 {
		t.Errorf("preprocessed size = %dx%d, want 200x200", cfg.Width, cfg.Height)
	}
}

func TestServiceExtractTextUndecodable(t *testing.T) {
	svc := NewService(&fakeProvider{}, WithPreprocessing(true))

	_, err := svc.ExtractText(context.Background(), []byte("not an image"))
	if err == nil || !strings.HasPrefix(err.Error(), "OCR Error: ") {
		t.Fatalf("err = %v, want OCR Error prefix", err)
	}
}

func TestServiceExtractWords(t *testing.T) {
	words := []Word{{Text: "Hello", Confidence: 95, Left: 10, Top: 10, Width: 40, Height: 12}}
	provider := &fakeWordProvider{words: words}
	svc := NewService(provider)

	img := image.NewRGBA(image.Rect(0, 0, 8000, 8000))
	res, err := svc.ExtractWords(context.Background(), img)
	if err != nil {
		t.Fatalf("ExtractWords: %v", err)
	}
	if provider.seen.Dx() != 4000 || provider.seen.Dy() != 4000 {
		t.Errorf("provider saw %v, want 4000x4000 working copy", provider.seen)
	}
	if res.Scale.X != 2 || res.Scale.Y != 2 {
		t.Errorf("scale = %+v", res.Scale)
	}
	if res.Bounds != img.Bounds() {
		t.Errorf("bounds = %v", res.Bounds)
	}
	if len(res.Words) != 1 {
		t.Errorf("words = %d", len(res.Words))
	}
}

func TestServiceExtractWordsUnsupported(t *testing.T) {
	svc := NewService(&fakeProvider{})
	if svc.SupportsWords() {
		t.Fatal("fakeProvider should not support words")
	}
	if _, err := svc.ExtractWords(context.Background(), image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Fatal("expected error for provider without word support")
	}
}
