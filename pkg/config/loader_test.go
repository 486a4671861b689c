package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanbrink/swayleo-app-sub000/pkg/config"
)

type testConfig struct {
	Name    string `env:"TEST_CONFIG_NAME" envDefault:"swayleo"`
	Retries int    `env:"TEST_CONFIG_RETRIES" envDefault:"3"`
	Token   string `env:"TEST_CONFIG_TOKEN"`
}

type requiredConfig struct {
	Secret string `env:"TEST_CONFIG_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "swayleo", cfg.Name)
		assert.Equal(t, 3, cfg.Retries)
		assert.Empty(t, cfg.Token)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_NAME", "acme")
		t.Setenv("TEST_CONFIG_RETRIES", "5")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "acme", cfg.Name)
		assert.Equal(t, 5, cfg.Retries)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid value type", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_RETRIES", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("does not panic on success", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}
