package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/set-night/healthdash/internal/config"
)

type Gemini struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGemini(apiKey, model string) *Gemini {
	return &Gemini{
		apiKey:     apiKey,
		model:      model,
		baseURL:    "https://generativelanguage.googleapis.com/v1beta",
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var gerr geminiError
		if json.Unmarshal(body, &gerr) == nil && gerr.Error.Message != "" {
			return "", fmt.Errorf("gemini error (status %d): %s", resp.StatusCode, gerr.Error.Message)
		}
		return "", fmt.Errorf("gemini error (status %d)", resp.StatusCode)
	}

	var gresp geminiResponse
	if err := json.Unmarshal(body, &gresp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	if len(gresp.Candidates) == 0 {
		if gresp.PromptFeedback != nil && gresp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("prompt blocked: %s", gresp.PromptFeedback.BlockReason)
		}
		return "", errors.New("no candidates in response")
	}

	var sb strings.Builder
	for _, part := range gresp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return "", errors.New("no content in response")
	}
	return sb.String(), nil
}
