package main

import (
	"fmt"

	"github.com/vyrodovalexey/avanegotiate/internal/config"
	"github.com/vyrodovalexey/avanegotiate/internal/encoding"
	"github.com/vyrodovalexey/avanegotiate/internal/negotiate"
	"github.com/vyrodovalexey/avanegotiate/internal/observability"
	"github.com/vyrodovalexey/avanegotiate/internal/server"
)

// metricsNamespace prefixes every exported metric.
const metricsNamespace = "negotiator"

// application holds all application components.
type application struct {
	server   *server.Server
	registry *encoding.Registry
	metrics  *observability.Metrics
	tracer   *observability.Tracer
	config   *config.Config
}

// initApplication builds the codec registry once and wires the server.
func initApplication(cfg *config.Config, logger observability.Logger) (*application, error) {
	registry, err := encoding.NewRegistry(cfg.Formats, encoding.WithRegistryLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to build codec registry: %w", err)
	}

	tracer, err := observability.NewTracer(observability.TracerConfig{
		ServiceName:  cfg.Tracing.ServiceName,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SamplingRate: cfg.Tracing.SamplingRate,
		Enabled:      cfg.Tracing.Enabled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracer: %w", err)
	}

	metrics := observability.NewMetrics(metricsNamespace)
	metrics.SetBuildInfo(version, gitCommit, buildTime)

	pipeline := negotiate.New(registry,
		negotiate.WithLogger(logger),
		negotiate.WithMetrics(encoding.NewEncodingMetrics(metricsNamespace, metrics.Registry())),
		negotiate.WithTracer(tracer.Tracer()),
	)

	opts := []server.Option{
		server.WithLogger(logger),
		server.WithMetrics(metrics),
	}
	if tracer.Enabled() {
		opts = append(opts, server.WithTracerProvider(tracer.Provider()))
	}

	return &application{
		server:   server.New(cfg, pipeline, opts...),
		registry: registry,
		metrics:  metrics,
		tracer:   tracer,
		config:   cfg,
	}, nil
}
