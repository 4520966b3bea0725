package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	oteltrace "go.opentelemetry.io/otel/trace"

	apierrors "github.com/narender/product-console/common/apierrors"
	apiresponses "github.com/narender/product-console/common/apiresponses"
)

// statusForCode maps application error codes onto the console's own HTTP answers.
func statusForCode(code string) int {
	switch code {
	case apierrors.ErrCodeProductNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeRequestValidation, apierrors.ErrCodeInvalidProductData:
		return http.StatusBadRequest
	case apierrors.ErrCodeRequestTimeout:
		return http.StatusGatewayTimeout
	case apierrors.ErrCodeNetworkError, apierrors.ErrCodeUpstreamStatus,
		apierrors.ErrCodeMalformedData, apierrors.ErrCodeServiceUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// statusForError is the status the error handler will answer with for err.
func statusForError(err error) int {
	var appErr *apierrors.AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		return statusForCode(appErr.Code)
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders errors that escape the console handlers as JSON and logs them.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		statusCode := statusForError(err)
		userMessage := "An unexpected error occurred. Please try again later."
		code := apierrors.ErrCodeUnknown

		var appErr *apierrors.AppError
		var fiberErr *fiber.Error
		if errors.As(err, &appErr) {
			userMessage = appErr.Message
			code = appErr.Code
		} else if errors.As(err, &fiberErr) {
			userMessage = fiberErr.Message
			code = ""
		}

		logLevel := slog.LevelInfo
		if statusCode >= 500 {
			logLevel = slog.LevelError
		} else if statusCode >= 400 {
			logLevel = slog.LevelWarn
		}

		ctx := c.UserContext()
		span := oteltrace.SpanFromContext(ctx)
		if span.IsRecording() {
			span.RecordError(err)
		}

		logger.LogAttrs(ctx, logLevel, fmt.Sprintf("HTTP Error: %s %s -> %d", c.Method(), c.Path(), statusCode),
			slog.Any("error", err),
			slog.String("code", code),
			slog.Int("status_code", statusCode),
			slog.String("user_message", userMessage),
			slog.String("ip", c.IP()),
		)

		return c.Status(statusCode).JSON(apiresponses.ErrorResponse{
			StatusCode: statusCode,
			Code:       code,
			Message:    userMessage,
		})
	}
}
