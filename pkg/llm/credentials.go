package llm

// Credentials holds the per-organization provider API keys. They are
// threaded explicitly into adapter construction rather than read from the
// process environment at call time, so multi-tenant key isolation and tests
// stay straightforward. The env tags exist for single-tenant deployments
// that load keys via pkg/config.
type Credentials struct {
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	DeepSeekAPIKey  string `env:"DEEPSEEK_API_KEY"`
}

// KeyFor returns the key for a provider, empty when not configured.
func (c Credentials) KeyFor(p Provider) string {
	switch p {
	case ProviderAnthropic:
		return c.AnthropicAPIKey
	case ProviderOpenAI:
		return c.OpenAIAPIKey
	case ProviderDeepSeek:
		return c.DeepSeekAPIKey
	}
	return ""
}

// Configured reports whether a usable key exists for the provider.
func (c Credentials) Configured(p Provider) bool {
	return c.KeyFor(p) != ""
}
