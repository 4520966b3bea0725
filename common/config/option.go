package config

import "time"

// Option is a function that configures a Config
type Option func(*Config)

// WithServiceName sets the service name
func WithServiceName(name string) Option {
	return func(c *Config) {
		c.ServiceName = name
	}
}

// WithProductAPIURL sets the product endpoint
func WithProductAPIURL(url string) Option {
	return func(c *Config) {
		c.ProductAPIURL = url
	}
}

// WithRequestTimeout sets the per-request timeout against the product API
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.RequestTimeout = d
	}
}

// WithConsolePort sets the web console port
func WithConsolePort(port string) Option {
	return func(c *Config) {
		c.ConsolePort = port
	}
}

// WithOtelEnabled toggles OTLP export
func WithOtelEnabled(enabled bool) Option {
	return func(c *Config) {
		c.OtelEnabled = enabled
	}
}

// WithOtelEndpoint sets the OpenTelemetry exporter endpoint
func WithOtelEndpoint(endpoint string) Option {
	return func(c *Config) {
		c.OtelEndpoint = endpoint
	}
}

// WithOtelSampleRatio sets the OpenTelemetry sampling ratio
func WithOtelSampleRatio(ratio float64) Option {
	return func(c *Config) {
		c.OtelSampleRatio = ratio
	}
}

// WithLogLevel sets the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithLogFormat sets the log format
func WithLogFormat(format string) Option {
	return func(c *Config) {
		c.LogFormat = format
	}
}
