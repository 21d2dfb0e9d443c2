package translate

import (
	"context"
	"fmt"
	"strings"
)

// ProviderType selects the engine in NewEngine.
type ProviderType string

const (
	ProviderGoogle   ProviderType = "google"
	ProviderOpenAI   ProviderType = "openai"
	ProviderGroq     ProviderType = "groq"
	ProviderDeepSeek ProviderType = "deepseek"
	ProviderGemini   ProviderType = "gemini"
	ProviderClaude   ProviderType = "claude"
)

// ProviderConfig carries the keys for every engine; only the selected one is
// required.
type ProviderConfig struct {
	Type  ProviderType
	Model string

	GoogleKey   string
	OpenAIKey   string
	GroqKey     string
	DeepSeekKey string
	GeminiKey   string
	ClaudeKey   string
}

// NewEngine is the factory for translation engines. Engines that hold a
// client connection implement io.Closer.
func NewEngine(ctx context.Context, cfg *ProviderConfig) (Engine, error) {
	switch ProviderType(strings.ToLower(string(cfg.Type))) {
	case ProviderGoogle, "":
		if cfg.GoogleKey == "" {
			return nil, fmt.Errorf("GOOGLE_TRANSLATE_API_KEY is required")
		}
		return wrap(NewGoogleEngine(ctx, cfg.GoogleKey))

	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
		return NewOpenAIEngine(cfg.OpenAIKey, cfg.Model), nil

	case ProviderGroq:
		if cfg.GroqKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required")
		}
		return NewGroqEngine(cfg.GroqKey, cfg.Model), nil

	case ProviderDeepSeek:
		if cfg.DeepSeekKey == "" {
			return nil, fmt.Errorf("DEEPSEEK_API_KEY is required")
		}
		return NewDeepSeekEngine(cfg.DeepSeekKey, cfg.Model), nil

	case ProviderGemini:
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required")
		}
		return wrap(NewGeminiEngine(ctx, cfg.GeminiKey, cfg.Model))

	case ProviderClaude:
		if cfg.ClaudeKey == "" {
			return nil, fmt.Errorf("CLAUDE_API_KEY is required")
		}
		return wrap(NewClaudeEngine(cfg.ClaudeKey, cfg.Model))

	default:
		return nil, fmt.Errorf("unknown translation provider type: %s", cfg.Type)
	}
}

// wrap keeps a failed constructor from leaking a typed nil into Engine.
func wrap[E Engine](e E, err error) (Engine, error) {
	if err != nil {
		return nil, err
	}
	return e, nil
}
