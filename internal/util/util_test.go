package util

import (
	"testing"
	"time"

	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{in: "30s", want: 30 * time.Second},
		{in: "5m", want: 5 * time.Minute},
		{in: "2h", want: 2 * time.Hour},
		{in: "45", want: 45 * time.Second},
		{in: " 10m ", want: 10 * time.Minute},
		{in: "0s", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDuration_Malformed(t *testing.T) {
	for _, in := range []string{"", "m", "5x", "1h30m", "1.5h", "-5m", "+5m", "abc", "5 m", "99999999999999999999h"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDuration(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrMalformedDuration))
			assert.True(t, domainerrors.IsCategory(err, domainerrors.CategoryInputValidation))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 45 * time.Second, want: "45s"},
		{in: 5 * time.Minute, want: "5m"},
		{in: 5*time.Minute + 10*time.Second, want: "5m10s"},
		{in: time.Hour, want: "1h"},
		{in: 90 * time.Minute, want: "1h30m"},
		{in: 1500 * time.Millisecond, want: "2s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}
