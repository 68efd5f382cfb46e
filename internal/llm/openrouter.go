package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
	"github.com/set-night/healthdash/internal/config"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouter calls any model exposed through OpenRouter's OpenAI-compatible API.
type OpenRouter struct {
	client *openai.Client
	model  string
}

func NewOpenRouter(apiKey, model string) *OpenRouter {
	return newOpenRouter(apiKey, model, openRouterBaseURL)
}

func newOpenRouter(apiKey, model, baseURL string) *OpenRouter {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{Timeout: config.RequestTimeout}
	return &OpenRouter{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (o *OpenRouter) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openrouter chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openrouter returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
