package config

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Initialize a minimal logger for config loading phase
var configLogger = logrus.New()

func init() {
	configLogger.SetOutput(os.Stderr)
	configLogger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	configLogger.SetLevel(logrus.WarnLevel)
}

// Config keys as seen by viper (config file keys)
const (
	keyServiceName            = "service_name"
	keyServiceVersion         = "service_version"
	keyEnvironment            = "environment"
	keyProductAPIURL          = "product_api_url"
	keyRequestTimeout         = "request_timeout"
	keyConsolePort            = "console_port"
	keyLogLevel               = "log_level"
	keyLogFormat              = "log_format"
	keyOtelEnabled            = "otel_enabled"
	keyOtelEndpoint           = "otel_endpoint"
	keyOtelInsecure           = "otel_insecure"
	keyOtelSampleRatio        = "otel_sample_ratio"
	keyShutdownTotalTimeout   = "shutdown_total_timeout_sec"
	keyShutdownServerTimeout  = "shutdown_server_timeout_sec"
	keyShutdownOtelMinTimeout = "shutdown_otel_min_timeout_sec"
)

// envBindings maps config keys to the environment variables that override them.
var envBindings = map[string]string{
	keyServiceName:            "OTEL_SERVICE_NAME",
	keyServiceVersion:         "SERVICE_VERSION",
	keyEnvironment:            "ENVIRONMENT",
	keyProductAPIURL:          "PRODUCT_API_URL",
	keyRequestTimeout:       "PRODUCT_API_TIMEOUT_MS",
	keyConsolePort:            "CONSOLE_PORT",
	keyLogLevel:               "LOG_LEVEL",
	keyLogFormat:              "LOG_FORMAT",
	keyOtelEnabled:            "OTEL_ENABLED",
	keyOtelEndpoint:           "OTEL_EXPORTER_OTLP_ENDPOINT",
	keyOtelInsecure:           "OTEL_EXPORTER_INSECURE",
	keyOtelSampleRatio:        "OTEL_SAMPLE_RATIO",
	keyShutdownTotalTimeout:   "SHUTDOWN_TOTAL_TIMEOUT_SEC",
	keyShutdownServerTimeout:  "SHUTDOWN_SERVER_TIMEOUT_SEC",
	keyShutdownOtelMinTimeout: "SHUTDOWN_OTEL_MIN_TIMEOUT_SEC",
}

var (
	allowedLogLevels  = []string{"debug", "info", "warn", "error"}
	allowedLogFormats = []string{"text", "json"}
)

// Config holds all configuration settings
type Config struct {
	// Service information
	ServiceName    string
	ServiceVersion string
	Environment    string

	// Product API the console drives
	ProductAPIURL  string
	RequestTimeout time.Duration

	// Web console
	ConsolePort string

	// OpenTelemetry configuration
	OtelEnabled     bool
	OtelEndpoint    string
	OtelInsecure    bool
	OtelSampleRatio float64

	// Logging configuration
	LogLevel  string
	LogFormat string

	// Shutdown timeouts
	ShutdownTotalTimeout   time.Duration
	ShutdownServerTimeout  time.Duration
	ShutdownOtelMinTimeout time.Duration
}

// NewConfig creates a new Config from the defaults with the provided options applied
func NewConfig(opts ...Option) *Config {
	return NewDefaultConfig().Apply(opts...)
}

// Apply applies options in order and returns the same Config
func (c *Config) Apply(opts ...Option) *Config {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadConfig reads defaults, an optional config file and the environment, in increasing
// order of precedence. Validation is left to the caller so overrides can be applied first.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v, NewDefaultConfig())

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		configLogger.WithField("file", v.ConfigFileUsed()).Debug("Config file loaded")
	}

	cfg := &Config{
		ServiceName:            v.GetString(keyServiceName),
		ServiceVersion:         v.GetString(keyServiceVersion),
		Environment:            v.GetString(keyEnvironment),
		ProductAPIURL:          v.GetString(keyProductAPIURL),
		RequestTimeout:         time.Duration(v.GetInt(keyRequestTimeout)) * time.Millisecond,
		ConsolePort:            v.GetString(keyConsolePort),
		LogLevel:               v.GetString(keyLogLevel),
		LogFormat:              v.GetString(keyLogFormat),
		OtelEnabled:            v.GetBool(keyOtelEnabled),
		OtelEndpoint:           v.GetString(keyOtelEndpoint),
		OtelInsecure:           v.GetBool(keyOtelInsecure),
		OtelSampleRatio:        v.GetFloat64(keyOtelSampleRatio),
		ShutdownTotalTimeout:   time.Duration(v.GetInt(keyShutdownTotalTimeout)) * time.Second,
		ShutdownServerTimeout:  time.Duration(v.GetInt(keyShutdownServerTimeout)) * time.Second,
		ShutdownOtelMinTimeout: time.Duration(v.GetInt(keyShutdownOtelMinTimeout)) * time.Second,
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault(keyServiceName, d.ServiceName)
	v.SetDefault(keyServiceVersion, d.ServiceVersion)
	v.SetDefault(keyEnvironment, d.Environment)
	v.SetDefault(keyProductAPIURL, d.ProductAPIURL)
	v.SetDefault(keyRequestTimeout, d.RequestTimeout.Milliseconds())
	v.SetDefault(keyConsolePort, d.ConsolePort)
	v.SetDefault(keyLogLevel, d.LogLevel)
	v.SetDefault(keyLogFormat, d.LogFormat)
	v.SetDefault(keyOtelEnabled, d.OtelEnabled)
	v.SetDefault(keyOtelEndpoint, d.OtelEndpoint)
	v.SetDefault(keyOtelInsecure, d.OtelInsecure)
	v.SetDefault(keyOtelSampleRatio, d.OtelSampleRatio)
	v.SetDefault(keyShutdownTotalTimeout, int(d.ShutdownTotalTimeout/time.Second))
	v.SetDefault(keyShutdownServerTimeout, int(d.ShutdownServerTimeout/time.Second))
	v.SetDefault(keyShutdownOtelMinTimeout, int(d.ShutdownOtelMinTimeout/time.Second))
}

// Validate validates the configuration
func (c *Config) Validate() []error {
	validator := NewValidator()

	validator.RequireNonEmpty("ServiceName", c.ServiceName)
	validator.RequireNonEmpty("ServiceVersion", c.ServiceVersion)
	validator.RequireNonEmpty("ProductAPIURL", c.ProductAPIURL)
	validator.RequireNonEmpty("ConsolePort", c.ConsolePort)

	validator.RequireOneOf("LogLevel", c.LogLevel, allowedLogLevels)
	validator.RequireOneOf("LogFormat", c.LogFormat, allowedLogFormats)

	validator.RequireHTTPURL("ProductAPIURL", c.ProductAPIURL)
	validator.RequirePort("ConsolePort", c.ConsolePort)

	if c.RequestTimeout <= 0 {
		validator.AddError("RequestTimeout", "must be positive")
	}

	RequireInRange(validator, "OtelSampleRatio", c.OtelSampleRatio, 0.0, 1.0)
	if c.OtelEnabled {
		validator.RequireNonEmpty("OtelEndpoint", c.OtelEndpoint)
	}

	return validator.Errors()
}

// Log logs the current configuration
func (c *Config) Log() {
	logrus.WithFields(logrus.Fields{
		"service_name":      c.ServiceName,
		"service_version":   c.ServiceVersion,
		"environment":       c.Environment,
		"product_api_url":   c.ProductAPIURL,
		"request_timeout":   c.RequestTimeout,
		"console_port":      c.ConsolePort,
		"otel_enabled":      c.OtelEnabled,
		"otel_endpoint":     c.OtelEndpoint,
		"otel_insecure":     c.OtelInsecure,
		"otel_sample_ratio": c.OtelSampleRatio,
		"log_level":         c.LogLevel,
		"log_format":        c.LogFormat,
		"shutdown_total":    c.ShutdownTotalTimeout,
		"shutdown_server":   c.ShutdownServerTimeout,
		"shutdown_otel":     c.ShutdownOtelMinTimeout,
	}).Debug("Configuration loaded")
}
