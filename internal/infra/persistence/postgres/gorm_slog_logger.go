package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger adapts slog to gorm's logger.Interface. Outside debug mode
// only failed and slow statements are logged; a missing row is not a
// failure for the history reads.
type gormSlogLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
	slow   time.Duration
}

func newGormSlogLogger(base *slog.Logger, debug bool) logger.Interface {
	l := &gormSlogLogger{level: logger.Warn, slow: slowQueryThreshold}
	if debug {
		l.level = logger.Info
	}
	if base != nil {
		l.logger = base.With(slog.String("component", "gorm"))
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) printf(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < min {
		return
	}
	l.logger.LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logger == nil || l.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logger.LogAttrs(ctx, slog.LevelError, "GORM query failed",
			append(statementAttrs(fc, elapsed), slog.String("error", err.Error()))...)
	case l.slow > 0 && elapsed > l.slow && l.level >= logger.Warn:
		l.logger.LogAttrs(ctx, slog.LevelWarn, "GORM slow query",
			append(statementAttrs(fc, elapsed), slog.Duration("threshold", l.slow))...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "GORM query", statementAttrs(fc, elapsed)...)
	}
}

func statementAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()

	return []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
}
