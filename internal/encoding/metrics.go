package encoding

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Negotiation and codec operation results used as metric labels.
const (
	ResultSuccess       = "success"
	ResultDefault       = "default"
	ResultNotAcceptable = "not_acceptable"
	ResultUnsupported   = "unsupported"
	ResultError         = "error"
)

// EncodingMetrics contains Prometheus metrics for negotiation and codec
// operations. A nil *EncodingMetrics records nothing.
type EncodingMetrics struct {
	negotiationsTotal *prometheus.CounterVec
	encodeTotal       *prometheus.CounterVec
	decodeTotal       *prometheus.CounterVec
	errorsTotal       *prometheus.CounterVec
}

// NewEncodingMetrics creates encoding metrics registered with registerer.
// A nil registerer uses the default Prometheus registerer.
func NewEncodingMetrics(namespace string, registerer prometheus.Registerer) *EncodingMetrics {
	if namespace == "" {
		namespace = "negotiator"
	}
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &EncodingMetrics{
		negotiationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "encoding",
				Name:      "negotiations_total",
				Help:      "Total number of content type negotiations",
			},
			[]string{"content_type", "result"},
		),
		encodeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "encoding",
				Name:      "encode_total",
				Help:      "Total number of encode operations",
			},
			[]string{"content_type", "result"},
		),
		decodeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "encoding",
				Name:      "decode_total",
				Help:      "Total number of decode operations",
			},
			[]string{"content_type", "result"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "encoding",
				Name:      "errors_total",
				Help:      "Total number of encoding/decoding errors",
			},
			[]string{"content_type", "operation"},
		),
	}
}

// RecordNegotiation records a content type negotiation result.
func (m *EncodingMetrics) RecordNegotiation(contentType, result string) {
	if m == nil {
		return
	}
	m.negotiationsTotal.WithLabelValues(contentType, result).Inc()
}

// RecordEncode records an encode operation.
func (m *EncodingMetrics) RecordEncode(contentType, result string) {
	if m == nil {
		return
	}
	m.encodeTotal.WithLabelValues(contentType, result).Inc()
}

// RecordDecode records a decode operation.
func (m *EncodingMetrics) RecordDecode(contentType, result string) {
	if m == nil {
		return
	}
	m.decodeTotal.WithLabelValues(contentType, result).Inc()
}

// RecordError records an encoding/decoding error.
func (m *EncodingMetrics) RecordError(contentType, operation string) {
	if m == nil {
		return
	}
	m.errorsTotal.WithLabelValues(contentType, operation).Inc()
}
