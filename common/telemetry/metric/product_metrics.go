package metric

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	mutationsTotal  metric.Int64Counter
	listedProducts  metric.Int64Gauge
	validationFails metric.Int64Counter
)

func init() {
	var err error

	mutationsTotal, err = meter.Int64Counter(
		"product.mutations.total",
		metric.WithDescription("Create, update and delete requests sent to the product API"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		slog.Error("Failed to initialize product.mutations.total counter", slog.Any("error", err))
	}

	listedProducts, err = meter.Int64Gauge(
		"product.list.size",
		metric.WithDescription("Number of products returned by the last successful list fetch"),
		metric.WithUnit("{product}"),
	)
	if err != nil {
		slog.Error("Failed to initialize product.list.size gauge", slog.Any("error", err))
	}

	validationFails, err = meter.Int64Counter(
		"product.form.validation_failures.total",
		metric.WithDescription("Form submissions rejected before any request was sent"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		slog.Error("Failed to initialize product.form.validation_failures.total counter", slog.Any("error", err))
	}
}

// RecordMutation counts one create/update/delete attempt and its outcome.
func RecordMutation(ctx context.Context, kind string, succeeded bool) {
	if mutationsTotal == nil {
		return
	}
	mutationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("product.mutation", kind),
		attribute.Bool("product.mutation.succeeded", succeeded),
	))
}

// RecordListSize records how many products the last fetch returned.
func RecordListSize(ctx context.Context, n int) {
	if listedProducts == nil {
		return
	}
	listedProducts.Record(ctx, int64(n))
}

// RecordValidationFailure counts a rejected form submission.
func RecordValidationFailure(ctx context.Context) {
	if validationFails == nil {
		return
	}
	validationFails.Add(ctx, 1)
}
