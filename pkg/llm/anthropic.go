package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	anthropicBaseURL = "https://api.anthropic.com"

	// anthropicVersion is the pinned Messages API version header.
	anthropicVersion = "2023-06-01"
)

// anthropicAdapter talks to the Anthropic Messages API. The system prompt is
// a top-level field rather than a message, and the reply arrives as content
// blocks whose first text block must itself be the JSON payload.
type anthropicAdapter struct {
	info   Info
	apiKey string
	cfg    adapterConfig
}

func newAnthropicAdapter(info Info, apiKey string, opts ...Option) *anthropicAdapter {
	cfg := newAdapterConfig(opts...)
	if cfg.baseURL == "" {
		cfg.baseURL = anthropicBaseURL
	}
	if cfg.model != "" {
		info.Model = cfg.model
	}
	return &anthropicAdapter{info: info, apiKey: apiKey, cfg: cfg}
}

func (a *anthropicAdapter) Info() Info { return a.info }

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type anthropicErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *anthropicAdapter) Complete(ctx context.Context, system, user string) (*Completion, error) {
	body, err := json.Marshal(anthropicRequest{
		Model:     a.info.Model,
		MaxTokens: a.cfg.maxTokens,
		System:    system,
		Messages:  []anthropicMessage{{Role: "user", Content: user}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := a.cfg.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicErrorResponse
		if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrRequestFailed, errResp.Error.Message)
		}
		return nil, fmt.Errorf("%w: Anthropic API error: status %d", ErrRequestFailed, resp.StatusCode)
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(parsed.Content) == 0 {
		return nil, ErrEmptyCompletion
	}

	payload := []byte(parsed.Content[0].Text)
	if !json.Valid(payload) {
		return nil, fmt.Errorf("%w: completion text is not valid JSON", ErrMalformedResponse)
	}

	model := parsed.Model
	if model == "" {
		model = a.info.Model
	}

	return &Completion{
		JSON:  json.RawMessage(payload),
		Model: model,
		Usage: Usage{
			PromptTokens:     parsed.Usage.InputTokens,
			CompletionTokens: parsed.Usage.OutputTokens,
		},
	}, nil
}
