package propagator

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// SetupPropagators installs W3C trace context and baggage propagation so outgoing
// product API requests carry the console's trace.
func SetupPropagators() {
	prop := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	otel.SetTextMapPropagator(prop)
}
