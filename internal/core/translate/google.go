package translate

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	translatev2 "google.golang.org/api/translate/v2"
)

// GoogleEngine calls the Cloud Translation v2 API.
type GoogleEngine struct {
	svc *translatev2.Service
}

// NewGoogleEngine builds the Translation client once. Extra options are
// appended after the API key.
func NewGoogleEngine(ctx context.Context, apiKey string, opts ...option.ClientOption) (*GoogleEngine, error) {
	svc, err := translatev2.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("google translate client: %w", err)
	}
	return &GoogleEngine{svc: svc}, nil
}

func (e *GoogleEngine) GetProviderName() string {
	return "Google Translate"
}

// Translate requests plain-text output, so the reply is returned verbatim.
func (e *GoogleEngine) Translate(ctx context.Context, req Request) (string, error) {
	call := e.svc.Translations.List([]string{req.Text}, req.Target).Format("text").Context(ctx)
	if !req.autoSource() {
		call = call.Source(req.Source)
	}

	resp, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("google translate error: %w", err)
	}
	if len(resp.Translations) == 0 {
		return "", errors.New("no translation returned")
	}
	return resp.Translations[0].TranslatedText, nil
}
