// Package logs builds the process logger.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"pluma/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const redacted = "[REDACTED]"

// sensitiveKeys are never written in clear, whatever the level.
var sensitiveKeys = map[string]struct{}{
	"password":         {},
	"confirm_password": {},
	"new_password":     {},
	"access_token":     {},
	"refresh_token":    {},
	"reset_token":      {},
	"token":            {},
	"card_number":      {},
	"cvv":              {},
}

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the slog logger, JSON unless env.log.pretty is set.
func New(params Params) (*slog.Logger, error) {
	return newLogger(params.Config, os.Stdout)
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: redact}

	var handler slog.Handler
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	if name := cfg.Env.ServiceName; name != "" {
		logger = logger.With(slog.String("service", name), slog.String("env", cfg.Env.Env))
	}

	return logger, nil
}

func redact(_ []string, attr slog.Attr) slog.Attr {
	if _, ok := sensitiveKeys[strings.ToLower(attr.Key)]; ok {
		return slog.String(attr.Key, redacted)
	}

	return attr
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
