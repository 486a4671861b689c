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
	openAIBaseURL   = "https://api.openai.com"
	deepSeekBaseURL = "https://api.deepseek.com"
)

// chatAdapter covers the OpenAI Chat Completions wire format, which DeepSeek
// implements verbatim against a different host. JSON mode is requested so
// choices[0].message.content is contractually a JSON document.
type chatAdapter struct {
	info   Info
	apiKey string
	cfg    adapterConfig
}

func newChatAdapter(info Info, apiKey string, opts ...Option) *chatAdapter {
	cfg := newAdapterConfig(opts...)
	if cfg.baseURL == "" {
		switch info.Provider {
		case ProviderDeepSeek:
			cfg.baseURL = deepSeekBaseURL
		default:
			cfg.baseURL = openAIBaseURL
		}
	}
	if cfg.model != "" {
		info.Model = cfg.model
	}
	return &chatAdapter{info: info, apiKey: apiKey, cfg: cfg}
}

func (a *chatAdapter) Info() Info { return a.info }

type chatRequest struct {
	Model          string             `json:"model"`
	MaxTokens      int                `json:"max_tokens"`
	Messages       []chatMessage      `json:"messages"`
	ResponseFormat chatResponseFormat `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

type chatErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (a *chatAdapter) Complete(ctx context.Context, system, user string) (*Completion, error) {
	body, err := json.Marshal(chatRequest{
		Model:     a.info.Model,
		MaxTokens: a.cfg.maxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: chatResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

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
		var errResp chatErrorResponse
		if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrRequestFailed, errResp.Error.Message)
		}
		return nil, fmt.Errorf("%w: %s API error: status %d", ErrRequestFailed, a.info.DisplayName, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(parsed.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}

	payload := []byte(parsed.Choices[0].Message.Content)
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
			PromptTokens:     parsed.Usage.PromptTokens,
			CompletionTokens: parsed.Usage.CompletionTokens,
		},
	}, nil
}
