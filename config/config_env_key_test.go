package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"tracking": map[string]any{
			"dTag":         "default",
			"noExpiration": false,
		},
		"alert": map[string]any{
			"pubsub": map[string]any{
				"topicId": "",
			},
		},
		"secretKey": map[string]any{
			"device": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "TRACKING_DTAG", want: "tracking.dTag"},
		{envKey: "TRACKING_NOEXPIRATION", want: "tracking.noExpiration"},
		{envKey: "ALERT_PUBSUB_TOPICID", want: "alert.pubsub.topicId"},
		{envKey: "SECRETKEY_DEVICE", want: "secretKey.device"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
