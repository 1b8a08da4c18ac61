package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }
	ctx := context.Background()

	quiet := newGormSlogLogger(base, false)
	quiet.Trace(ctx, time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	quiet.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	quiet.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
	buf.Reset()

	quiet.Trace(ctx, time.Now(), sqlFn, gorm.ErrInvalidData)
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "component=gorm")
	buf.Reset()

	verbose := newGormSlogLogger(base, true)
	verbose.Trace(ctx, time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "SELECT 1")
	buf.Reset()

	verbose.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn, gorm.ErrInvalidData)
	assert.Empty(t, buf.String())
}
