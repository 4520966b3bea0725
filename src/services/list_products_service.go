package services

import (
	"context"
	"log/slog"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	apierrors "github.com/narender/product-console/common/apierrors"
	commonmetric "github.com/narender/product-console/common/telemetry/metric"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
	"github.com/narender/product-console/src/models"
)

func (s *productConsole) List(ctx context.Context) (appErr *apierrors.AppError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, span := commontrace.StartSpan(ctx)
	defer func() {
		var telemetryErr error
		if appErr != nil {
			telemetryErr = appErr
		}
		commontrace.EndSpan(span, &telemetryErr, nil)
	}()

	appErr = s.refreshLocked(ctx)
	span.SetAttributes(attribute.Int("products.count", len(s.products)))
	return appErr
}

// refreshLocked replaces the product list wholesale. On failure the previous list stays.
// Callers hold s.mu.
func (s *productConsole) refreshLocked(ctx context.Context) (appErr *apierrors.AppError) {
	timer := commonmetric.StartMetricsTimer("service", "List")
	defer func() {
		var telemetryErr error
		if appErr != nil {
			telemetryErr = appErr
		}
		timer.End(ctx, &telemetryErr)
	}()

	s.logger.DebugContext(ctx, "Product Console: Refreshing product list")
	products, appErr := s.repo.GetAll(ctx)
	if appErr != nil {
		s.logger.ErrorContext(ctx, "Product Console: Failed to fetch products", slog.String("error", appErr.Error()))
		s.errMsg = MsgFetchFailed
		return appErr
	}
	if products == nil {
		products = []models.Product{}
	}

	s.products = products
	s.errMsg = ""
	commonmetric.RecordListSize(ctx, len(products))
	s.logger.InfoContext(ctx, "Product Console: Showing "+strconv.Itoa(len(products))+" products")
	return nil
}

func (s *productConsole) Get(ctx context.Context, id int64) (*models.Product, *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attribute.Int64("product.id", id))
	product, appErr := s.repo.GetByID(ctx, id)
	var telemetryErr error
	if appErr != nil {
		telemetryErr = appErr
		s.logger.WarnContext(ctx, "Product Console: Failed to fetch product", slog.Int64("product_id", id), slog.String("error", appErr.Error()))
	}
	commontrace.EndSpan(span, &telemetryErr, nil)
	return product, appErr
}
