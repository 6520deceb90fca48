package lutris

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// catalogLogger routes GORM's logging through slog. Queries land on
// Debug so a normal run stays quiet; errors other than "record not
// found" land on Error.
type catalogLogger struct {
	level logger.LogLevel
}

func newCatalogLogger() logger.Interface {
	return &catalogLogger{level: logger.Warn}
}

func (l *catalogLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.level = level
	return &newLogger
}

func (l *catalogLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Info {
		slog.InfoContext(ctx, msg, args...)
	}
}

func (l *catalogLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Warn {
		slog.WarnContext(ctx, msg, args...)
	}
}

func (l *catalogLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Error {
		slog.ErrorContext(ctx, msg, args...)
	}
}

func (l *catalogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	sql, rows := fc()
	fields := []any{
		slog.Duration("elapsed", time.Since(begin)),
		slog.String("sql", sql),
		slog.Int64("rows", rows),
	}

	if err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound) {
		slog.ErrorContext(ctx, "Catalog query error", append(fields, slog.Any("error", err))...)
		return
	}

	slog.DebugContext(ctx, "Catalog query", fields...)
}
