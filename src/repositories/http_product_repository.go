package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	apierrors "github.com/narender/product-console/common/apierrors"
	commonmetric "github.com/narender/product-console/common/telemetry/metric"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
	"github.com/narender/product-console/src/models"
)

type httpProductRepository struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewHTTPProductRepository creates a repository that talks to the product API at baseURL,
// e.g. http://localhost:8080/api/product.
func NewHTTPProductRepository(baseURL string, client *http.Client, logger *slog.Logger) ProductRepository {
	return &httpProductRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

func (r *httpProductRepository) itemURL(id int64) string {
	return r.baseURL + "/" + strconv.FormatInt(id, 10)
}

func (r *httpProductRepository) GetAll(ctx context.Context) (products []models.Product, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, semconv.HTTPRequestMethodKey.String(http.MethodGet))
	timer := commonmetric.StartMetricsTimer("repository", "GetAll")
	defer func() {
		var telemetryErr error
		if appErr != nil {
			telemetryErr = appErr
		}
		timer.End(ctx, &telemetryErr)
		commontrace.EndSpan(span, &telemetryErr, nil)
	}()

	r.logger.DebugContext(ctx, "Product API: Requesting product list", slog.String("url", r.baseURL))

	resp, appErr := r.do(ctx, http.MethodGet, r.baseURL, nil, "Failed to fetch products")
	if appErr != nil {
		return nil, appErr
	}
	defer resp.Body.Close()

	products = []models.Product{}
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		r.logger.ErrorContext(ctx, "Product API: Failed to decode product list", slog.String("error", err.Error()))
		return nil, apierrors.NewAppError(apierrors.ErrCodeMalformedData, "Failed to understand product list from product API", err)
	}
	if products == nil {
		// A literal null body is treated as an empty list.
		products = []models.Product{}
	}

	span.SetAttributes(attribute.Int("products.count", len(products)))
	r.logger.DebugContext(ctx, "Product API: Retrieved "+strconv.Itoa(len(products))+" products")
	return products, nil
}

func (r *httpProductRepository) GetByID(ctx context.Context, id int64) (product *models.Product, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attribute.Int64("product.id", id))
	timer := commonmetric.StartMetricsTimer("repository", "GetByID")
	defer func() {
		var telemetryErr error
		if appErr != nil {
			telemetryErr = appErr
		}
		timer.End(ctx, &telemetryErr)
		commontrace.EndSpan(span, &telemetryErr, nil)
	}()

	resp, appErr := r.do(ctx, http.MethodGet, r.itemURL(id), nil, "Failed to fetch product")
	if appErr != nil {
		return nil, appErr
	}
	defer resp.Body.Close()

	var p models.Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		r.logger.ErrorContext(ctx, "Product API: Failed to decode product", slog.Int64("product_id", id), slog.String("error", err.Error()))
		return nil, apierrors.NewAppError(apierrors.ErrCodeMalformedData, "Failed to understand product from product API", err)
	}
	return &p, nil
}

func (r *httpProductRepository) Create(ctx context.Context, payload models.ProductPayload) *apierrors.AppError {
	return r.send(ctx, http.MethodPost, payload)
}

func (r *httpProductRepository) Update(ctx context.Context, payload models.ProductPayload) *apierrors.AppError {
	return r.send(ctx, http.MethodPut, payload)
}

// send posts or puts the payload to the collection URL; create and update share it.
func (r *httpProductRepository) send(ctx context.Context, method string, payload models.ProductPayload) (appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx,
		semconv.HTTPRequestMethodKey.String(method),
		attribute.String("product.name", payload.Name),
		attribute.String("product.price", payload.Price.String()),
	)
	timer := commonmetric.StartMetricsTimer("repository", method)
	defer func() {
		var telemetryErr error
		if appErr != nil {
			telemetryErr = appErr
		}
		timer.End(ctx, &telemetryErr)
		commontrace.EndSpan(span, &telemetryErr, nil)
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		r.logger.ErrorContext(ctx, "Product API: Failed to encode product", slog.String("error", err.Error()))
		return apierrors.NewAppError(apierrors.ErrCodeInternalProcessing, "Failed to prepare product for the product API", err)
	}

	r.logger.InfoContext(ctx, "Product API: Saving product",
		slog.String("method", method),
		slog.String("name", payload.Name),
		slog.String("price", payload.Price.String()))

	resp, appErr := r.do(ctx, method, r.baseURL, body, "Failed to save product")
	if appErr != nil {
		return appErr
	}
	drain(resp)
	return nil
}

func (r *httpProductRepository) Delete(ctx context.Context, id int64) (appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx,
		semconv.HTTPRequestMethodKey.String(http.MethodDelete),
		attribute.Int64("product.id", id),
	)
	timer := commonmetric.StartMetricsTimer("repository", "Delete")
	defer func() {
		var telemetryErr error
		if appErr != nil {
			telemetryErr = appErr
		}
		timer.End(ctx, &telemetryErr)
		commontrace.EndSpan(span, &telemetryErr, nil)
	}()

	r.logger.InfoContext(ctx, "Product API: Deleting product", slog.Int64("product_id", id))

	resp, appErr := r.do(ctx, http.MethodDelete, r.itemURL(id), nil, "Failed to delete product")
	if appErr != nil {
		return appErr
	}
	drain(resp)
	return nil
}

// do sends one request and turns transport failures and non-2xx answers into AppErrors.
// On success the caller owns resp.Body.
func (r *httpProductRepository) do(ctx context.Context, method, url string, body []byte, failMsg string) (*http.Response, *apierrors.AppError) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		r.logger.ErrorContext(ctx, "Product API: Failed to create HTTP request", slog.String("error", err.Error()))
		return nil, apierrors.NewAppError(apierrors.ErrCodeInternalProcessing, "Failed to prepare network request to product API", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		code := apierrors.ErrCodeNetworkError
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			code = apierrors.ErrCodeRequestTimeout
		}
		r.logger.WarnContext(ctx, "Product API: Request failed",
			slog.String("method", method),
			slog.String("url", url),
			slog.String("error", err.Error()))
		return nil, apierrors.NewAppError(code, "Product API is currently unreachable", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		drain(resp)
		r.logger.WarnContext(ctx, "Product API: Non-success status",
			slog.String("method", method),
			slog.String("url", url),
			slog.Int("status_code", resp.StatusCode))
		return nil, apierrors.NewStatusError(resp.StatusCode, fmt.Sprintf("%s (status code: %d)", failMsg, resp.StatusCode))
	}
	return resp, nil
}

type timeoutError interface {
	Timeout() bool
}

func isTimeout(err error) bool {
	var te timeoutError
	return errors.As(err, &te) && te.Timeout()
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
