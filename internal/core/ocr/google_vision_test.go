package ocr

import (
	"context"
	"errors"
	"image"
	"testing"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"
)

type fakeVision struct {
	texts    []*visionpb.EntityAnnotation
	document *visionpb.TextAnnotation
	err      error
	images   []*visionpb.Image
	closed   bool
}

func (f *fakeVision) DetectTexts(_ context.Context, img *visionpb.Image, _ *visionpb.ImageContext, _ int, _ ...gax.CallOption) ([]*visionpb.EntityAnnotation, error) {
	f.images = append(f.images, img)
	return f.texts, f.err
}

func (f *fakeVision) DetectDocumentText(_ context.Context, img *visionpb.Image, _ *visionpb.ImageContext, _ ...gax.CallOption) (*visionpb.TextAnnotation, error) {
	f.images = append(f.images, img)
	return f.document, f.err
}

func (f *fakeVision) Close() error {
	f.closed = true
	return nil
}

func visionWord(text string, confidence float32, x0, y0, x1, y1 int32) *visionpb.Word {
	var symbols []*visionpb.Symbol
	for _, r := range text {
		symbols = append(symbols, &visionpb.Symbol{Text: string(r)})
	}
	return &visionpb.Word{
		Confidence: confidence,
		Symbols:    symbols,
		BoundingBox: &visionpb.BoundingPoly{Vertices: []*visionpb.Vertex{
			{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
		}},
	}
}

func TestGoogleVisionExtractWords(t *testing.T) {
	fake := &fakeVision{document: &visionpb.TextAnnotation{
		Pages: []*visionpb.Page{{
			Blocks: []*visionpb.Block{{
				Paragraphs: []*visionpb.Paragraph{
					{Words: []*visionpb.Word{visionWord("Hi", 0.97, 10, 20, 60, 40)}},
					{Words: []*visionpb.Word{visionWord("x", 0.5, 5, 50, 25, 58)}},
				},
			}},
		}},
	}}
	p := &GoogleVisionProvider{client: fake}

	words, err := p.ExtractWords(context.Background(), image.NewRGBA(image.Rect(0, 0, 100, 100)))
	if err != nil {
		t.Fatalf("ExtractWords: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("words = %d, want 2", len(words))
	}

	first := words[0]
	if first.Text != "Hi" || first.Confidence != 97 {
		t.Errorf("first word = %+v", first)
	}
	if first.Box() != (Box{Left: 10, Top: 20, Width: 50, Height: 20}) {
		t.Errorf("first box = %+v", first.Box())
	}
	if first.Line != 0 || words[1].Line != 1 {
		t.Errorf("line indexes = %d, %d", first.Line, words[1].Line)
	}
	if len(fake.images) != 1 || len(fake.images[0].GetContent()) == 0 {
		t.Error("image content not sent")
	}
}

func TestGoogleVisionExtractText(t *testing.T) {
	fake := &fakeVision{texts: []*visionpb.EntityAnnotation{
		{Description: "Hello world"},
		{Description: "Hello"},
	}}
	p := &GoogleVisionProvider{client: fake}

	result, err := p.ExtractText(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if result.Text != "Hello world" || result.Confidence != 0.95 {
		t.Errorf("result = %+v", result)
	}
	if string(fake.images[0].GetContent()) != "img" {
		t.Errorf("content = %q", fake.images[0].GetContent())
	}
}

func TestGoogleVisionNoText(t *testing.T) {
	p := &GoogleVisionProvider{client: &fakeVision{}}

	result, err := p.ExtractText(context.Background(), []byte("img"))
	if err != nil || result.Text != "" {
		t.Fatalf("result = %+v, err = %v", result, err)
	}
	words, err := p.ExtractWords(context.Background(), image.NewRGBA(image.Rect(0, 0, 10, 10)))
	if err != nil || len(words) != 0 {
		t.Fatalf("words = %v, err = %v", words, err)
	}
}

func TestGoogleVisionAPIError(t *testing.T) {
	denied := errors.New("permission denied")
	fake := &fakeVision{err: denied}
	p := &GoogleVisionProvider{client: fake}

	if _, err := p.ExtractText(context.Background(), []byte("img")); !errors.Is(err, denied) {
		t.Fatalf("ExtractText err = %v", err)
	}
	if _, err := p.ExtractWords(context.Background(), image.NewRGBA(image.Rect(0, 0, 10, 10))); !errors.Is(err, denied) {
		t.Fatalf("ExtractWords err = %v", err)
	}

	if err := p.Close(); err != nil || !fake.closed {
		t.Errorf("close: err = %v, closed = %v", err, fake.closed)
	}
}
