package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pluma/config"
	deliverycontext "pluma/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output to the request logger so queries carry request_id and user_id.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	log := l.from(ctx)

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		// Missing products, carts and profiles are answered as domain errors.
	case err != nil && expectedConstraintViolation(err):
		if log.Enabled(ctx, slog.LevelDebug) {
			attrs := queryAttrs(sqlAndRowsFn, elapsed)
			attrs = append(attrs, slog.String("error", err.Error()))
			log.LogAttrs(ctx, slog.LevelDebug, "GORM constraint rejected write", attrs...)
		}
	case err != nil && l.level >= logger.Error:
		attrs := queryAttrs(sqlAndRowsFn, elapsed)
		attrs = append(attrs, slog.String("error", err.Error()))
		log.LogAttrs(ctx, slog.LevelError, "GORM query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := queryAttrs(sqlAndRowsFn, elapsed)
		attrs = append(attrs, slog.Duration("slowThreshold", l.slowThreshold))
		log.LogAttrs(ctx, slog.LevelWarn, "GORM slow query", attrs...)
	case l.level >= logger.Info:
		log.LogAttrs(ctx, slog.LevelInfo, "GORM query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *gormSlogLogger) logf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.from(ctx).LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) from(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.logger
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

// expectedConstraintViolation reports violations the repositories translate into domain errors:
// duplicate email or username, and cart or favorite rows pointing at unknown products.
func expectedConstraintViolation(err error) bool {
	return isUniqueConstraintViolation(err) || isForeignKeyConstraintViolation(err)
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
