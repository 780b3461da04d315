package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"pluma/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLogLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestParseLogLevel_Unknown(t *testing.T) {
	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNew_PrettyAndJSON(t *testing.T) {
	for _, pretty := range []bool{true, false} {
		cfg := &config.Config{}
		cfg.Env.Log.Level = "warn"
		cfg.Env.Log.Pretty = pretty

		logger, err := New(Params{Config: cfg})
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}

func TestNew_RedactsCredentials(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "pluma"
	cfg.Env.Env = "test"

	var buf bytes.Buffer
	logger, err := newLogger(cfg, &buf)
	require.NoError(t, err)

	logger.Info("sign-in attempt",
		slog.String("email", "leitor@pluma.com.br"),
		slog.String("password", "segredo123"),
		slog.Group("card", slog.String("card_number", "4111111111111111")),
	)

	out := buf.String()
	assert.Contains(t, out, "leitor@pluma.com.br")
	assert.Contains(t, out, `"service":"pluma"`)
	assert.NotContains(t, out, "segredo123")
	assert.NotContains(t, out, "4111111111111111")
	assert.Contains(t, out, "[REDACTED]")
}
