package config

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WEBHOOK_URL", "https://example.com/hook")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	assert.Equal(t, "https://example.com/hook", cfg.WebhookURL)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel)
}

func TestLoadRequiresWebhookURL(t *testing.T) {
	t.Setenv("WEBHOOK_URL", "")

	assert.Panics(t, func() { Load() })
}

func TestLoadLogLevel(t *testing.T) {
	t.Setenv("WEBHOOK_URL", "https://example.com/hook")
	t.Setenv("LOG_LEVEL", "debug")

	assert.Equal(t, log.DebugLevel, Load().LogLevel)
}

func TestParseAddress(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"8080", ":8080"},
		{":8080", ":8080"},
		{"127.0.0.1:8080", "127.0.0.1:8080"},
		{" 9000 ", ":9000"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAddress(tt.input))
		})
	}
}
