package log

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/trace"
)

const hookScope = "github.com/narender/product-console/common/log"

// OtelHook forwards logrus entries to the OTel logs pipeline and stamps them with the
// active trace and span ids.
type OtelHook struct {
	provider otellog.LoggerProvider
}

// NewOtelHook emits through provider, or through the global provider when nil.
func NewOtelHook(provider otellog.LoggerProvider) *OtelHook {
	return &OtelHook{provider: provider}
}

func (h *OtelHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *OtelHook) Fire(entry *logrus.Entry) error {
	ctx := entry.Context
	if ctx == nil {
		ctx = context.Background()
	}

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		entry.Data["trace_id"] = spanCtx.TraceID().String()
		entry.Data["span_id"] = spanCtx.SpanID().String()
	}

	provider := h.provider
	if provider == nil {
		provider = global.GetLoggerProvider()
	}

	var record otellog.Record
	record.SetTimestamp(entry.Time)
	record.SetObservedTimestamp(time.Now())
	record.SetSeverity(severityOf(entry.Level))
	record.SetSeverityText(entry.Level.String())
	record.SetBody(otellog.StringValue(entry.Message))
	for k, v := range entry.Data {
		record.AddAttributes(keyValue(k, v))
	}

	provider.Logger(hookScope).Emit(ctx, record)
	return nil
}

func keyValue(k string, v interface{}) otellog.KeyValue {
	switch val := v.(type) {
	case string:
		return otellog.String(k, val)
	case int:
		return otellog.Int(k, val)
	case int64:
		return otellog.Int64(k, val)
	case float64:
		return otellog.Float64(k, val)
	case bool:
		return otellog.Bool(k, val)
	case time.Duration:
		return otellog.String(k, val.String())
	case error:
		return otellog.String(k, val.Error())
	default:
		return otellog.String(k, fmt.Sprintf("%+v", val))
	}
}

func severityOf(level logrus.Level) otellog.Severity {
	switch level {
	case logrus.TraceLevel:
		return otellog.SeverityTrace
	case logrus.DebugLevel:
		return otellog.SeverityDebug
	case logrus.InfoLevel:
		return otellog.SeverityInfo
	case logrus.WarnLevel:
		return otellog.SeverityWarn
	case logrus.ErrorLevel:
		return otellog.SeverityError
	default:
		// Fatal and panic
		return otellog.SeverityFatal
	}
}
