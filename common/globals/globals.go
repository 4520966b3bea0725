package globals

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/joho/godotenv"

	"github.com/narender/product-console/common/config"
	"github.com/narender/product-console/common/log"
	"github.com/narender/product-console/common/telemetry"
)

var (
	cfg               *config.Config
	logger            *slog.Logger
	telemetryShutdown func(context.Context) error
	// once ensures that initialization logic runs exactly once.
	once sync.Once
	err  error
)

// Init loads .env (when present), configuration, logging and telemetry exactly once.
// Options are applied on top of the loaded configuration, e.g. command line overrides.
func Init(configFile string, opts ...config.Option) error {
	once.Do(func() {
		if loadErr := godotenv.Load(); loadErr != nil && !errors.Is(loadErr, os.ErrNotExist) {
			err = fmt.Errorf("failed to load .env: %w", loadErr)
			return
		}

		cfg, err = config.LoadConfig(configFile)
		if err != nil {
			err = fmt.Errorf("failed to load config during init: %w", err)
			return
		}
		cfg.Apply(opts...)
		if errs := cfg.Validate(); len(errs) > 0 {
			err = fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
			return
		}

		logger = log.Init(cfg)
		cfg.Log()

		telemetryShutdown, err = telemetry.Setup(context.Background(), cfg)
		if err != nil {
			err = fmt.Errorf("failed to initialize telemetry setup during init: %w", err)
			logger.Error("Telemetry initialization failed", slog.Any("error", err))
			return
		}
	})

	return err
}

// Cfg returns the loaded configuration, panicking if Init hasn't been successfully called.
func Cfg() *config.Config {
	if cfg == nil {
		panic("configuration not initialized: call globals.Init() first and check error")
	}
	return cfg
}

// Logger returns the initialized logger, panicking if Init hasn't been successfully called.
func Logger() *slog.Logger {
	if logger == nil {
		panic("logger not initialized: call globals.Init() first and check error")
	}
	return logger
}

// TelemetryShutdown returns the telemetry flush function; never nil.
func TelemetryShutdown() func(context.Context) error {
	if telemetryShutdown == nil {
		return func(context.Context) error { return nil }
	}
	return telemetryShutdown
}
