package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"sentinel/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the agent logger on stdout.
func New(params Params) (*slog.Logger, error) {
	return NewWithWriter(params.Config, os.Stdout)
}

// NewWithWriter builds the logger on w. The CLI logs to stderr so stdout
// stays reserved for records. Debug mode adds the source position.
func NewWithWriter(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.Env.Debug}
	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	attrs := []any{slog.String("service", cfg.Env.ServiceName)}
	if cfg.Env.Env != "" {
		attrs = append(attrs, slog.String("env", cfg.Env.Env))
	}

	return slog.New(handler).With(attrs...), nil
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
