package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Provider identifies one of the supported LLM backends.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderDeepSeek  Provider = "deepseek"
)

// DefaultProvider is used when a generation request does not select one.
// DeepSeek is the cheapest entry in the catalog; the default is an explicit
// product decision, not a fallback path.
const DefaultProvider = ProviderDeepSeek

// Valid reports whether p is a supported provider.
func (p Provider) Valid() bool {
	_, ok := catalog[p]
	return ok
}

// Providers lists the supported providers in display order.
func Providers() []Provider {
	return []Provider{ProviderAnthropic, ProviderOpenAI, ProviderDeepSeek}
}

// Info describes a provider's catalog entry: display metadata, the wire
// model id, and per-1K-token prices used for usage estimates.
type Info struct {
	Provider        Provider `json:"provider"`
	DisplayName     string   `json:"display_name"`
	Model           string   `json:"model"`
	InputCostPer1K  float64  `json:"input_cost_per_1k"`
	OutputCostPer1K float64  `json:"output_cost_per_1k"`
}

var catalog = map[Provider]Info{
	ProviderAnthropic: {
		Provider:        ProviderAnthropic,
		DisplayName:     "Anthropic Claude",
		Model:           "claude-sonnet-4-20250514",
		InputCostPer1K:  0.003,
		OutputCostPer1K: 0.015,
	},
	ProviderOpenAI: {
		Provider:        ProviderOpenAI,
		DisplayName:     "OpenAI GPT-4o mini",
		Model:           "gpt-4o-mini",
		InputCostPer1K:  0.00015,
		OutputCostPer1K: 0.0006,
	},
	ProviderDeepSeek: {
		Provider:        ProviderDeepSeek,
		DisplayName:     "DeepSeek",
		Model:           "deepseek-chat",
		InputCostPer1K:  0.00014,
		OutputCostPer1K: 0.00028,
	},
}

// InfoFor returns the catalog entry for a provider.
func InfoFor(p Provider) (Info, error) {
	info, ok := catalog[p]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownProvider, p)
	}
	return info, nil
}

// Usage counts the tokens one completion consumed.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// EstimateCost prices a completion's token usage in USD from the catalog.
func EstimateCost(info Info, u Usage) float64 {
	return float64(u.PromptTokens)/1000*info.InputCostPer1K +
		float64(u.CompletionTokens)/1000*info.OutputCostPer1K
}

// Completion is the normalized result of one provider call. JSON holds the
// structured payload the model returned; it is guaranteed to be valid JSON.
type Completion struct {
	JSON  json.RawMessage
	Model string
	Usage Usage
}

// Adapter is the uniform interface over provider wire formats. Complete
// issues exactly one HTTP request; cancellation and deadlines come from ctx.
type Adapter interface {
	Complete(ctx context.Context, system, user string) (*Completion, error)
	Info() Info
}

// Option configures an adapter.
type Option func(*adapterConfig)

type adapterConfig struct {
	baseURL    string
	model      string
	maxTokens  int
	httpClient *http.Client
}

// WithBaseURL overrides the provider endpoint, primarily for tests running
// against local fake servers.
func WithBaseURL(u string) Option {
	return func(c *adapterConfig) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithModel overrides the catalog's wire model id.
func WithModel(m string) Option {
	return func(c *adapterConfig) {
		if m != "" {
			c.model = m
		}
	}
}

// WithMaxTokens caps the completion size.
func WithMaxTokens(n int) Option {
	return func(c *adapterConfig) {
		if n > 0 {
			c.maxTokens = n
		}
	}
}

// WithHTTPClient supplies a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *adapterConfig) {
		if client != nil {
			c.httpClient = client
		}
	}
}

const (
	// defaultMaxTokens leaves room for several subject lines and up to
	// three full variations.
	defaultMaxTokens = 4096

	// defaultHTTPTimeout is a hard stop behind the caller's context
	// deadline so a missing deadline cannot hang a worker forever.
	defaultHTTPTimeout = 120 * time.Second
)

func newAdapterConfig(opts ...Option) adapterConfig {
	cfg := adapterConfig{
		maxTokens:  defaultMaxTokens,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// New creates the adapter for a provider, failing fast when the provider is
// unknown or its API key is not configured.
func New(p Provider, creds Credentials, opts ...Option) (Adapter, error) {
	info, err := InfoFor(p)
	if err != nil {
		return nil, err
	}
	key := creds.KeyFor(p)
	if key == "" {
		return nil, fmt.Errorf("%w: %s", ErrAPIKeyRequired, p)
	}

	switch p {
	case ProviderAnthropic:
		return newAnthropicAdapter(info, key, opts...), nil
	case ProviderOpenAI, ProviderDeepSeek:
		return newChatAdapter(info, key, opts...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, p)
}
