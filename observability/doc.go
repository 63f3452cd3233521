// Package observability provides OpenTelemetry tracing and metrics for
// outgoing HTTP requests.
//
// Tracing and metrics export over OTLP/HTTP:
//
//	shutdown, err := observability.Setup(ctx, "netlayer", observability.Config{Enabled: true})
//	defer shutdown(ctx)
//
// Per-request instrumentation:
//
//	metrics, err := observability.NewMetrics(observability.Meter("netlayer"))
//	oc := observability.NewOperationContext("netlayer", "GET api.example.com", requestID, metrics)
//	ctx, span := oc.StartSpanForOperation(ctx, observability.SpanHTTPRequest)
//	defer oc.EndOperation(ctx, span, "ok", nil)
package observability
