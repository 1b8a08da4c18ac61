package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	domainerrors "sentinel/internal/domain/errors"
)

// ParseDuration parses the <number>[s|m|h] form used on the command line.
// A bare number is read as seconds. Fractions, signs and compound forms
// such as "1h30m" are rejected with ErrMalformedDuration.
func ParseDuration(s string) (time.Duration, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, domainerrors.ErrMalformedDuration.WithDetails(strconv.Quote(s))
	}

	unit := time.Second
	switch raw[len(raw)-1] {
	case 's':
		raw = raw[:len(raw)-1]
	case 'm':
		unit = time.Minute
		raw = raw[:len(raw)-1]
	case 'h':
		unit = time.Hour
		raw = raw[:len(raw)-1]
	}

	if raw == "" || raw[0] == '+' || raw[0] == '-' {
		return 0, domainerrors.ErrMalformedDuration.WithDetails(strconv.Quote(s))
	}

	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n > uint64(math.MaxInt64/int64(unit)) {
		return 0, domainerrors.ErrMalformedDuration.WithDetails(strconv.Quote(s))
	}

	return time.Duration(n) * unit, nil
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
// Trailing zero components are dropped, so 5 minutes formats as "5m".
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	return fmt.Sprintf("%dh%dm", h, m)
}
