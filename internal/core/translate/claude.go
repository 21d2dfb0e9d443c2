package translate

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
)

const claudeMaxTokens = 2048

// ClaudeEngine translates with Anthropic Claude through langchaingo.
type ClaudeEngine struct {
	llm   llms.Model
	model string
}

func NewClaudeEngine(apiKey, model string, opts ...anthropic.Option) (*ClaudeEngine, error) {
	if model == "" {
		model = "claude-3-5-sonnet-20241022"
	}

	llm, err := anthropic.New(append([]anthropic.Option{
		anthropic.WithModel(model),
		anthropic.WithToken(apiKey),
	}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("claude client: %w", err)
	}
	return &ClaudeEngine{llm: llm, model: model}, nil
}

func (e *ClaudeEngine) GetProviderName() string {
	return "Anthropic Claude"
}

func (e *ClaudeEngine) Translate(ctx context.Context, req Request) (string, error) {
	system, user := buildPrompt(req)

	resp, err := e.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, user),
	}, llms.WithMaxTokens(claudeMaxTokens), llms.WithTemperature(0))
	if err != nil {
		return "", fmt.Errorf("claude error (model: %s): %w", e.model, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", errors.New("no response from Claude")
	}

	return cleanReply(resp.Choices[0].Content), nil
}
