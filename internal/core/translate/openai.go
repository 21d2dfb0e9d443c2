package translate

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	groqBaseURL     = "https://api.groq.com/openai/v1"
	deepSeekBaseURL = "https://api.deepseek.com/v1"
)

// ChatEngine translates through any OpenAI-compatible chat completion API.
type ChatEngine struct {
	name   string
	client *openai.Client
	model  string
}

// NewChatEngine builds an engine against baseURL. An empty baseURL targets
// api.openai.com.
func NewChatEngine(name, apiKey, baseURL, model string) *ChatEngine {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &ChatEngine{
		name:   name,
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func NewOpenAIEngine(apiKey, model string) *ChatEngine {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return NewChatEngine("OpenAI", apiKey, "", model)
}

// Groq uses OpenAI-compatible API with custom base URL
func NewGroqEngine(apiKey, model string) *ChatEngine {
	if model == "" {
		model = "llama-3.1-8b-instant"
	}
	return NewChatEngine("Groq", apiKey, groqBaseURL, model)
}

func NewDeepSeekEngine(apiKey, model string) *ChatEngine {
	if model == "" {
		model = "deepseek-chat"
	}
	return NewChatEngine("DeepSeek", apiKey, deepSeekBaseURL, model)
}

func (e *ChatEngine) GetProviderName() string {
	return e.name
}

func (e *ChatEngine) Translate(ctx context.Context, req Request) (string, error) {
	system, user := buildPrompt(req)

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("%s error: %w", e.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", e.name)
	}

	return cleanReply(resp.Choices[0].Message.Content), nil
}
