package telemetry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/host"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/narender/product-console/common/config"
	"github.com/narender/product-console/common/telemetry/propagator"
)

// shutdownFunc defines the signature for shutdown functions returned by initializers.
type shutdownFunc func(context.Context) error

// Setup installs the global tracer, meter and logger providers. With export disabled only
// the propagators are installed and the OTel globals stay no-op.
// The returned shutdown function flushes and stops whatever was started.
func Setup(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	propagator.SetupPropagators()

	if !cfg.OtelEnabled {
		logrus.Debug("OpenTelemetry export disabled")
		return func(context.Context) error { return nil }, nil
	}

	logrus.WithFields(logrus.Fields{
		"service":  cfg.ServiceName,
		"endpoint": cfg.OtelEndpoint,
		"insecure": cfg.OtelInsecure,
	}).Info("Initializing OpenTelemetry")

	res, err := NewResource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	shutdownFuncs := make([]shutdownFunc, 0, 3)
	var initErr error

	if fn, err := initTracerProvider(ctx, cfg, res); err != nil {
		initErr = errors.Join(initErr, fmt.Errorf("tracer init failed: %w", err))
	} else {
		shutdownFuncs = append(shutdownFuncs, fn)
	}

	if fn, err := initMeterProvider(ctx, cfg, res); err != nil {
		initErr = errors.Join(initErr, fmt.Errorf("meter init failed: %w", err))
	} else {
		shutdownFuncs = append(shutdownFuncs, fn)
	}

	if fn, err := initLoggerProvider(ctx, cfg, res); err != nil {
		initErr = errors.Join(initErr, fmt.Errorf("logger init failed: %w", err))
	} else {
		shutdownFuncs = append(shutdownFuncs, fn)
	}

	masterShutdown := createMasterShutdown(shutdownFuncs, cfg.ShutdownOtelMinTimeout)
	if initErr != nil {
		logrus.WithError(initErr).Error("OpenTelemetry initialization failed")
		return masterShutdown, initErr
	}

	logrus.Debug("OpenTelemetry initialization complete")
	return masterShutdown, nil
}

func initTracerProvider(ctx context.Context, cfg *config.Config, res *resource.Resource) (shutdownFunc, error) {
	exporter, err := newTraceExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.OtelSampleRatio))),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

func initMeterProvider(ctx context.Context, cfg *config.Config, res *resource.Resource) (shutdownFunc, error) {
	exporter, err := newMetricExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)
	otel.SetMeterProvider(mp)

	if err := runtime.Start(runtime.WithMeterProvider(mp)); err != nil {
		logrus.WithError(err).Warn("Runtime metrics not started")
	}
	if err := host.Start(host.WithMeterProvider(mp)); err != nil {
		logrus.WithError(err).Warn("Host metrics not started")
	}
	return mp.Shutdown, nil
}

func initLoggerProvider(ctx context.Context, cfg *config.Config, res *resource.Resource) (shutdownFunc, error) {
	exporter, err := newLogExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}
	lp := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)
	global.SetLoggerProvider(lp)
	return lp.Shutdown, nil
}

// createMasterShutdown creates a function that calls all individual shutdown functions concurrently.
func createMasterShutdown(shutdownFuncs []shutdownFunc, individualTimeout time.Duration) func(context.Context) error {
	return func(shutdownCtx context.Context) error {
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			multiErr error
		)

		wg.Add(len(shutdownFuncs))
		for _, fn := range shutdownFuncs {
			go func(shutdown shutdownFunc) {
				defer wg.Done()
				ctx, cancel := context.WithTimeout(shutdownCtx, individualTimeout)
				defer cancel()

				if err := shutdown(ctx); err != nil {
					mu.Lock()
					multiErr = errors.Join(multiErr, err)
					mu.Unlock()
				}
			}(fn)
		}
		wg.Wait()

		if multiErr != nil {
			logrus.WithError(multiErr).Error("OpenTelemetry shutdown finished with errors")
		}
		return multiErr
	}
}
