package services

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	apierrors "github.com/narender/product-console/common/apierrors"
	commonmetric "github.com/narender/product-console/common/telemetry/metric"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
)

// Delete asks the confirmer first. A declined or unanswered prompt sends nothing and returns a
// DELETE_DECLINED error without touching the error message.
func (s *productConsole) Delete(ctx context.Context, id int64, confirmer Confirmer) (appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attribute.Int64("product.id", id))
	defer func() {
		var telemetryErr error
		if appErr != nil && appErr.Code != apierrors.ErrCodeDeleteDeclined {
			telemetryErr = appErr
		}
		commontrace.EndSpan(span, &telemetryErr, nil)
	}()

	if confirmer == nil || !confirmer.Confirm(ctx, DeletePrompt) {
		s.logger.InfoContext(ctx, "Product Console: Delete declined", slog.Int64("product_id", id))
		span.SetAttributes(attribute.Bool("product.delete.confirmed", false))
		return apierrors.NewAppError(apierrors.ErrCodeDeleteDeclined, "Delete was not confirmed", nil)
	}
	span.SetAttributes(attribute.Bool("product.delete.confirmed", true))

	s.mu.Lock()
	defer s.mu.Unlock()

	timer := commonmetric.StartMetricsTimer("service", "Delete")
	defer func() {
		var telemetryErr error
		if appErr != nil {
			telemetryErr = appErr
		}
		timer.End(ctx, &telemetryErr)
	}()

	if appErr = s.repo.Delete(ctx, id); appErr != nil {
		commonmetric.RecordMutation(ctx, "delete", false)
		s.logger.ErrorContext(ctx, "Product Console: Failed to delete product",
			slog.Int64("product_id", id), slog.String("error", appErr.Error()))
		s.errMsg = failureMessage(appErr, MsgDeleteFailed)
		return appErr
	}

	commonmetric.RecordMutation(ctx, "delete", true)
	s.logger.InfoContext(ctx, "Product Console: Product deleted", slog.Int64("product_id", id))
	s.errMsg = ""
	_ = s.refreshLocked(ctx)
	return nil
}
