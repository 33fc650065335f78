package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/raywall/apigateway-kit/internal/config"
)

func TestNew(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := []struct {
		name      string
		cfg       config.Logging
		wantLevel zerolog.Level
		wantOut   bool
	}{
		{name: "json debug", cfg: config.Logging{Enabled: true, Level: "DEBUG", Format: "json"}, wantLevel: zerolog.DebugLevel, wantOut: true},
		{name: "invalid level", cfg: config.Logging{Enabled: true, Level: "loud", Format: "json"}, wantLevel: zerolog.InfoLevel, wantOut: true},
		{name: "disabled", cfg: config.Logging{Enabled: false, Level: "info"}, wantLevel: zerolog.InfoLevel, wantOut: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.cfg, &buf)
			log.Warn().Str("operation", "CreateApiKey").Msg("hello")

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			if tt.wantOut {
				assert.Contains(t, buf.String(), `"operation":"CreateApiKey"`)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNew_Console(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	log := New(config.Logging{Enabled: true, Format: "console"}, &buf)
	log.Info().Msg("ready")

	assert.Contains(t, buf.String(), "ready")
	assert.NotContains(t, buf.String(), `"message"`)
}
