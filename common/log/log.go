package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"
	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/narender/product-console/common/config"
)

// Global slog logger instance
var L *slog.Logger

// ParseLevel maps a config level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewHandler builds the console handler for the configured format.
func NewHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	if strings.ToLower(format) == "json" {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     level,
		})
	}
	return tint.NewHandler(w, &tint.Options{
		AddSource:  true,
		Level:      level,
		TimeFormat: time.RFC3339,
	})
}

// Init builds the application logger and installs it as the slog default.
// Console output always goes to stderr so command output on stdout stays clean.
// With OTel enabled, records are also handed to the OTel logs bridge.
func Init(cfg *config.Config) *slog.Logger {
	level := ParseLevel(cfg.LogLevel)
	handler := NewHandler(os.Stderr, cfg.LogFormat, level)

	if cfg.OtelEnabled {
		handler = slogmulti.Fanout(handler, otelslog.NewHandler(cfg.ServiceName))
	}

	L = slog.New(handler).With(slog.String("service", cfg.ServiceName))
	slog.SetDefault(L)

	SetupLogrus(cfg)

	L.Debug("Logger initialized", slog.String("environment", cfg.Environment), slog.String("level", level.String()))
	return L
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
