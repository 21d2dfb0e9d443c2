package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiEngine translates with Google Gemini through the genai SDK. The
// client is shared by every call; Close releases it.
type GeminiEngine struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

func NewGeminiEngine(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*GeminiEngine, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is empty")
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = "gemini-2.5-flash"
	}

	cl, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	m := cl.GenerativeModel(model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(0),
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	return &GeminiEngine{client: cl, model: m, name: model}, nil
}

func (e *GeminiEngine) GetProviderName() string {
	return "Google Gemini"
}

func (e *GeminiEngine) Translate(ctx context.Context, req Request) (string, error) {
	_, user := buildPrompt(req)

	resp, err := e.model.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", fmt.Errorf("gemini error (model: %s): %w", e.name, err)
	}

	txt := firstText(resp)
	if txt == "" {
		return "", fmt.Errorf("no response from Gemini")
	}
	return cleanReply(txt), nil
}

func (e *GeminiEngine) Close() error {
	return e.client.Close()
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
