package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"sentinel/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: develop
  log:
    level: debug
tracking:
  interval: 30s
  precision: 6
  encrypted: true
  dTag: phone
  relays:
    - wss://relay.one
    - wss://relay.two
follow:
  alertAfter: 5m
alert:
  providers: [webhook]
  webhook:
    url: http://localhost:9000/hook
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sentinel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_FromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.Env.Env)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 30*time.Second, cfg.Tracking.Interval)
	assert.Equal(t, 6, cfg.Tracking.Precision)
	assert.True(t, cfg.Tracking.Encrypted)
	assert.Equal(t, "phone", cfg.Tracking.DTag)
	assert.Equal(t, []string{"wss://relay.one", "wss://relay.two"}, cfg.Tracking.Relays)
	assert.Equal(t, "5m", cfg.Follow.AlertAfter)
	assert.Equal(t, []string{"webhook"}, cfg.Alert.Providers)
	require.NotNil(t, cfg.Alert.Webhook)
	assert.Equal(t, "http://localhost:9000/hook", cfg.Alert.Webhook.URL)
	assert.Equal(t, defaultWebhookTimeout, cfg.Alert.Webhook.Timeout)
	assert.Nil(t, cfg.Postgres)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("TRACKING_DTAG", "car")
	t.Setenv("TRACKING_PRECISION", "9")

	cfg, err := Load(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "car", cfg.Tracking.DTag)
	assert.Equal(t, 9, cfg.Tracking.Precision)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sentinel", cfg.Env.ServiceName)
	assert.Equal(t, entity.DefaultInterval, cfg.Tracking.Interval)
	assert.Equal(t, entity.DefaultPrecision, cfg.Tracking.Precision)
	assert.Equal(t, entity.DefaultDTag, cfg.Tracking.DTag)
	assert.Equal(t, []string{entity.DefaultRelay}, cfg.Tracking.Relays)
	assert.Equal(t, defaultCheckInterval, cfg.Follow.CheckInterval)
	assert.Equal(t, defaultDispatchTimeout, cfg.Alert.DispatchTimeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_TrackingOptions(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	recipient := "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	opts := cfg.TrackingOptions([]string{recipient})

	tracking, err := entity.NewTrackingConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, entity.KindEncryptedLocation, tracking.Kind())
	assert.Equal(t, 6, tracking.Precision())
	assert.Equal(t, []string{recipient}, tracking.Recipients())
}
