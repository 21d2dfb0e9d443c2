package ocr

import (
	"context"
	"image"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const ocrSpaceOverlayResponse = `{
  "ParsedResults": [{
    "ParsedText": "Hello world\r\nBye\r\n",
    "FileParseExitCode": 1,
    "ErrorMessage": "",
    "TextOverlay": {"Lines": [
      {"LineText": "Hello world", "Words": [
        {"WordText": "Hello", "Left": 10, "Top": 20.4, "Height": 15, "Width": 40},
        {"WordText": "world", "Left": 55.6, "Top": 21, "Height": 14, "Width": 42}
      ]},
      {"LineText": "Bye", "Words": [
        {"WordText": "Bye", "Left": 10, "Top": 50, "Height": 15, "Width": 30}
      ]}
    ]}
  }],
  "OCRExitCode": 1,
  "IsErroredOnProcessing": false
}`

func newOCRSpaceServer(t *testing.T, body string, fields map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse form: %v", err)
		}
		for k := range fields {
			fields[k] = r.FormValue(k)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("file part: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestOCRSpaceExtractWords(t *testing.T) {
	fields := map[string]string{"apikey": "", "language": "", "isOverlayRequired": ""}
	srv := newOCRSpaceServer(t, ocrSpaceOverlayResponse, fields)
	defer srv.Close()

	p := NewOCRSpaceProvider("k", "spa")
	p.endpoint = srv.URL

	words, err := p.ExtractWords(context.Background(), image.NewRGBA(image.Rect(0, 0, 100, 100)))
	if err != nil {
		t.Fatalf("ExtractWords: %v", err)
	}
	if fields["apikey"] != "k" || fields["language"] != "spa" || fields["isOverlayRequired"] != "true" {
		t.Errorf("form = %v", fields)
	}
	if len(words) != 3 {
		t.Fatalf("words = %d, want 3", len(words))
	}

	if words[0].Text != "Hello" || words[0].Box() != (Box{Left: 10, Top: 20, Width: 40, Height: 15}) {
		t.Errorf("first word = %+v", words[0])
	}
	if words[1].Left != 56 {
		t.Errorf("second word left = %d, want 56", words[1].Left)
	}
	if words[0].Line != 0 || words[1].Line != 0 || words[2].Line != 1 {
		t.Errorf("lines = %d, %d, %d", words[0].Line, words[1].Line, words[2].Line)
	}
	if words[0].Confidence != overlayConfidence {
		t.Errorf("confidence = %d", words[0].Confidence)
	}
}

func TestOCRSpaceExtractText(t *testing.T) {
	fields := map[string]string{"isOverlayRequired": ""}
	srv := newOCRSpaceServer(t, ocrSpaceOverlayResponse, fields)
	defer srv.Close()

	p := NewOCRSpaceProvider("k", "")
	p.endpoint = srv.URL

	result, err := p.ExtractText(context.Background(), []byte("png"))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if result.Text != "Hello world\r\nBye\r\n" {
		t.Errorf("text = %q", result.Text)
	}
	if result.Confidence != 0 {
		t.Errorf("confidence = %v, want 0 (not reported)", result.Confidence)
	}
	if fields["isOverlayRequired"] != "false" {
		t.Errorf("overlay requested for text extraction")
	}
}

func TestOCRSpaceProcessingError(t *testing.T) {
	srv := newOCRSpaceServer(t, `{"OCRExitCode":3,"IsErroredOnProcessing":true,"ErrorMessage":["Unable to recognize the file type"]}`, nil)
	defer srv.Close()

	p := NewOCRSpaceProvider("k", "")
	p.endpoint = srv.URL

	_, err := p.ExtractText(context.Background(), []byte("png"))
	if err == nil || !strings.Contains(err.Error(), "Unable to recognize the file type") {
		t.Fatalf("err = %v", err)
	}
}

func TestOCRSpaceParseFailure(t *testing.T) {
	srv := newOCRSpaceServer(t, `{"ParsedResults":[{"FileParseExitCode":-10,"ErrorMessage":"Parsing error"}],"OCRExitCode":2}`, nil)
	defer srv.Close()

	p := NewOCRSpaceProvider("k", "")
	p.endpoint = srv.URL

	if _, err := p.ExtractText(context.Background(), []byte("png")); err == nil || !strings.Contains(err.Error(), "Parsing error") {
		t.Fatalf("err = %v", err)
	}
}
