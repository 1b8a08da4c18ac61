package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"sentinel/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "sentinel"
	cfg.Env.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("relay", "wss://relay.one"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "sentinel", line["service"])
	assert.Equal(t, "wss://relay.one", line["relay"])
}

func TestNewWithWriter_PrettyWithEnv(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "sentinel"
	cfg.Env.Env = "develop"
	cfg.Env.Log.Pretty = true

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("following", slog.String("target", "npub1x"))
	assert.Contains(t, buf.String(), "msg=following")
	assert.Contains(t, buf.String(), "env=develop")
	assert.Contains(t, buf.String(), "target=npub1x")
}

func TestNewWithWriter_UnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := NewWithWriter(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}
