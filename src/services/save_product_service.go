package services

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	apierrors "github.com/narender/product-console/common/apierrors"
	commonmetric "github.com/narender/product-console/common/telemetry/metric"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
	"github.com/narender/product-console/common/validator"
	"github.com/narender/product-console/src/models"
)

// Submit sends the form as a create, or as an update while editing. An invalid form sets the
// validation message and sends nothing. A successful save clears the error, resets the form and
// refetches the list.
func (s *productConsole) Submit(ctx context.Context) (appErr *apierrors.AppError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kind := "create"
	if s.form.Editing {
		kind = "update"
	}

	ctx, span := commontrace.StartSpan(ctx, attribute.String("product.mutation", kind))
	timer := commonmetric.StartMetricsTimer("service", "Submit")
	defer func() {
		var telemetryErr error
		if appErr != nil {
			telemetryErr = appErr
		}
		timer.End(ctx, &telemetryErr, attribute.String("product.mutation", kind))
		commontrace.EndSpan(span, &telemetryErr, nil)
	}()

	if vErr := validator.ValidateRequest(s.form.Input()); vErr != nil {
		s.logger.WarnContext(ctx, "Product Console: Form rejected", slog.String("error", vErr.Message))
		commonmetric.RecordValidationFailure(ctx)
		s.errMsg = MsgInvalidProduct
		return apierrors.NewAppError(apierrors.ErrCodeInvalidProductData, MsgInvalidProduct, vErr)
	}

	payload, err := s.form.Payload()
	if err != nil {
		commonmetric.RecordValidationFailure(ctx)
		s.errMsg = MsgInvalidProduct
		return apierrors.NewAppError(apierrors.ErrCodeInvalidProductData, MsgInvalidProduct, err)
	}
	if kind == "update" && payload.ID == nil {
		s.errMsg = MsgInvalidProduct
		return apierrors.NewAppError(apierrors.ErrCodeInvalidProductData, "Product being edited has no id", nil)
	}

	send := s.repo.Create
	if kind == "update" {
		send = s.repo.Update
	}
	if appErr = send(ctx, payload); appErr != nil {
		commonmetric.RecordMutation(ctx, kind, false)
		s.logger.ErrorContext(ctx, "Product Console: Failed to save product",
			slog.String("mutation", kind), slog.String("error", appErr.Error()))
		s.errMsg = failureMessage(appErr, MsgSaveFailed)
		return appErr
	}

	commonmetric.RecordMutation(ctx, kind, true)
	s.logger.InfoContext(ctx, "Product Console: Product saved",
		slog.String("mutation", kind), slog.String("name", payload.Name), slog.String("price", payload.Price.String()))

	s.errMsg = ""
	s.form = models.FormState{}
	// The save stands even if the refetch fails; refreshLocked sets the fetch message then.
	_ = s.refreshLocked(ctx)
	return nil
}
