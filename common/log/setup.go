package log

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/narender/product-console/common/config"
)

// SetupLogrus configures the standard logrus logger used by the bootstrap and
// shutdown code paths to the same level and format as the slog logger. With OTel
// enabled its entries are exported alongside the slog records.
func SetupLogrus(cfg *config.Config) *logrus.Logger {
	logger := logrus.StandardLogger()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', defaulting to 'info': %v", cfg.LogLevel, err)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		})
	}
	logger.SetOutput(os.Stderr)

	logger.ReplaceHooks(make(logrus.LevelHooks))
	if cfg.OtelEnabled {
		logger.AddHook(NewOtelHook(nil))
	}
	return logger
}
