// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (missing files are fine), then
// the environment is parsed into any Go struct using `env` field tags.
//
// # Usage
//
//	type ProviderConfig struct {
//	    AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
//	    OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
//	    DeepSeekAPIKey  string `env:"DEEPSEEK_API_KEY"`
//	}
//
//	var cfg ProviderConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// MustLoad panics on failure for configuration the service cannot start
// without.
package config
