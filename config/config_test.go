package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8089", cfg.Server.Port)
	assert.Equal(t, 80, cfg.Extract.TitleMaxLength)
	assert.Equal(t, "m.media-amazon.com", cfg.Image.CDNHost)
	assert.Equal(t, 500, cfg.Image.SquareSide)
	assert.Equal(t, 95, cfg.Image.Quality)
	assert.Greater(t, cfg.Server.RateLimitRPS, 0.0)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:  ServerConfig{RateLimitRPS: 10},
			Extract: ExtractConfig{TitleMaxLength: 80},
			Image:   ImageConfig{Quality: 95},
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, validate(base()))
	})

	t.Run("tiny title budget rejected", func(t *testing.T) {
		cfg := base()
		cfg.Extract.TitleMaxLength = 5
		assert.Error(t, validate(cfg))
	})

	t.Run("quality out of range rejected", func(t *testing.T) {
		cfg := base()
		cfg.Image.Quality = 101
		assert.Error(t, validate(cfg))
	})

	t.Run("zero rate limit rejected", func(t *testing.T) {
		cfg := base()
		cfg.Server.RateLimitRPS = 0
		assert.Error(t, validate(cfg))
	})
}
