// Package observability provides logging, metrics, and tracing
// functionality for the negotiation service.
//
// # Logging
//
// The Logger interface provides structured logging backed by zap:
//
//	logger, err := observability.NewLogger(observability.DefaultLogConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer logger.Sync()
//
//	logger.Info("format negotiated",
//	    observability.String("accept", accept),
//	    observability.String("selected", "application/json"),
//	)
//
// # Metrics
//
// HTTP request metrics on a dedicated Prometheus registry:
//
//	metrics := observability.NewMetrics("negotiator")
//	handler := metrics.Handler()
//
// # Tracing
//
// OpenTelemetry tracing with optional OTLP gRPC export:
//
//	tracer, err := observability.NewTracer(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tracer.Shutdown(ctx)
package observability
