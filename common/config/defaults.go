package config

import "time"

// DefaultProductAPIURL is the product endpoint the console talks to unless configured otherwise.
const DefaultProductAPIURL = "http://localhost:8080/api/product"

// NewDefaultConfig provides a configuration with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		// Service information
		ServiceName:    "product-console",
		ServiceVersion: "dev",
		Environment:    "development",

		// Product API
		ProductAPIURL:  DefaultProductAPIURL,
		RequestTimeout: 10 * time.Second,

		// Web console
		ConsolePort: "3000",

		// OpenTelemetry configuration
		OtelEnabled:     false,
		OtelEndpoint:    "localhost:4317",
		OtelInsecure:    true,
		OtelSampleRatio: 1.0,

		// Logging configuration
		LogLevel:  "info",
		LogFormat: "text",

		// Shutdown timeouts
		ShutdownTotalTimeout:   30 * time.Second,
		ShutdownServerTimeout:  10 * time.Second,
		ShutdownOtelMinTimeout: 5 * time.Second,
	}
}
