package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"swapmarket/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"DEBUG": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for input, want := range testCases {
		got, err := parseLogLevel(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNewLogger_JSONWithServiceAttrs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "swapmarket"
	cfg.Env.Env = "test"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("listed", slog.String("product_id", "p1"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "listed", line["msg"])
	assert.Equal(t, "swapmarket", line["service"])
	assert.Equal(t, "test", line["env"])
	assert.Equal(t, "p1", line["product_id"])
}
