package negotiate

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vyrodovalexey/avanegotiate/internal/config"
	"github.com/vyrodovalexey/avanegotiate/internal/encoding"
	"github.com/vyrodovalexey/avanegotiate/internal/mediatype"
	"github.com/vyrodovalexey/avanegotiate/internal/observability"
)

const tracerName = "github.com/vyrodovalexey/avanegotiate/internal/negotiate"

// Header names touched by the pipeline.
const (
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
)

// Encoded is the result of the encode path.
type Encoded struct {
	// Body is the encoded payload.
	Body []byte

	// ContentType is the canonical media type of Body.
	ContentType string

	// Codec is the codec that produced Body.
	Codec encoding.Codec
}

// Apply sets the Content-Type, replacing any previous value, and removes
// Content-Length so the transport computes it from Body.
func (e *Encoded) Apply(h http.Header) {
	h.Set(HeaderContentType, e.ContentType)
	h.Del(HeaderContentLength)
}

// Pipeline decodes request payloads and encodes response payloads using a
// codec registry. It is safe for concurrent use.
type Pipeline struct {
	registry   *encoding.Registry
	negotiator *encoding.Negotiator
	logger     observability.Logger
	metrics    *encoding.EncodingMetrics
	tracer     trace.Tracer
}

// Option is a functional option for configuring the pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger for the pipeline.
func WithLogger(logger observability.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithMetrics sets the metrics for the pipeline.
func WithMetrics(metrics *encoding.EncodingMetrics) Option {
	return func(p *Pipeline) {
		p.metrics = metrics
	}
}

// WithTracer sets the tracer for the pipeline.
func WithTracer(tracer trace.Tracer) Option {
	return func(p *Pipeline) {
		p.tracer = tracer
	}
}

// New creates a pipeline over reg. Without WithLogger it logs to the
// global logger.
func New(reg *encoding.Registry, opts ...Option) *Pipeline {
	p := &Pipeline{
		registry: reg,
		logger:   observability.GetGlobalLogger(),
		tracer:   otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.negotiator = encoding.NewNegotiator(reg,
		encoding.WithNegotiatorLogger(p.logger),
		encoding.WithNegotiatorMetrics(p.metrics))

	return p
}

// Registry returns the registry used by the pipeline.
func (p *Pipeline) Registry() *encoding.Registry {
	return p.registry
}

// Negotiate selects the response codec for an Accept header value without
// encoding anything.
func (p *Pipeline) Negotiate(accept string) (encoding.Codec, error) {
	return p.negotiator.Negotiate(accept)
}

// ResolveContentType returns the codec for a request Content-Type. A blank
// value resolves to the default codec. Parameters never affect the result.
func (p *Pipeline) ResolveContentType(contentType string) (encoding.Codec, mediatype.MediaType, error) {
	if strings.TrimSpace(contentType) == "" {
		def := p.registry.Default()
		mt, _ := mediatype.ParseContentType(def.ContentType())
		return def, mt, nil
	}

	mt, ok := mediatype.ParseContentType(contentType)
	if !ok || mt.IsWildcard() {
		return nil, mt, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, contentType)
	}

	codec, ok := p.registry.Lookup(mt.Canonical())
	if !ok {
		return nil, mt, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mt.Canonical())
	}
	return codec, mt, nil
}

// Decode decodes body into v using the codec named by contentType and
// returns that codec. JSON bodies in a charset other than UTF-8 are
// transcoded first.
func (p *Pipeline) Decode(ctx context.Context, contentType string, body []byte, v interface{}) (encoding.Codec, error) {
	ctx, span := p.tracer.Start(ctx, "negotiate.Decode",
		trace.WithAttributes(
			attribute.String("http.request.header.content_type", contentType),
			attribute.Int("http.request.body.size", len(body)),
		))
	defer span.End()

	logger := p.logger.WithContext(ctx)

	codec, mt, err := p.ResolveContentType(contentType)
	if err != nil {
		label := ""
		if mt.Type != "" {
			label = mt.Canonical()
		}
		p.metrics.RecordDecode(label, encoding.ResultUnsupported)
		recordSpanError(span, err)
		logger.Debug("unsupported request content type",
			observability.String("content_type", contentType))
		return nil, err
	}
	span.SetAttributes(attribute.String("negotiate.codec", codec.ContentType()))

	if codec.ContentType() == config.ContentTypeJSON {
		data, transcoded, terr := toUTF8(mt, body)
		if terr != nil {
			return nil, p.decodeFailed(span, logger, codec, fmt.Errorf("%w: %w", ErrBadRequestBody, terr))
		}
		if transcoded {
			logger.Debug("request body transcoded to utf-8",
				observability.String("content_type", contentType))
		}
		body = data
	}

	if err := codec.Decode(body, v); err != nil {
		return nil, p.decodeFailed(span, logger, codec, fmt.Errorf("%w: %w", ErrBadRequestBody, err))
	}

	p.metrics.RecordDecode(codec.ContentType(), encoding.ResultSuccess)
	logger.Debug("request body decoded",
		observability.String("content_type", codec.ContentType()),
		observability.String("engine", codec.Engine()))

	return codec, nil
}

func (p *Pipeline) decodeFailed(span trace.Span, logger observability.Logger, codec encoding.Codec, err error) error {
	p.metrics.RecordDecode(codec.ContentType(), encoding.ResultError)
	p.metrics.RecordError(codec.ContentType(), "decode")
	recordSpanError(span, err)
	logger.Debug("request body rejected",
		observability.String("content_type", codec.ContentType()),
		observability.Error(err))
	return err
}

// Encode selects a codec from accept and encodes v with it.
func (p *Pipeline) Encode(ctx context.Context, accept string, v interface{}) (*Encoded, error) {
	codec, err := p.negotiator.Negotiate(accept)
	if err != nil {
		_, span := p.tracer.Start(ctx, "negotiate.Encode",
			trace.WithAttributes(attribute.String("http.request.header.accept", accept)))
		recordSpanError(span, err)
		span.End()
		return nil, err
	}
	return p.EncodeWith(ctx, codec, v)
}

// EncodeWith encodes v with an already negotiated codec.
func (p *Pipeline) EncodeWith(ctx context.Context, codec encoding.Codec, v interface{}) (*Encoded, error) {
	ctx, span := p.tracer.Start(ctx, "negotiate.Encode",
		trace.WithAttributes(attribute.String("negotiate.codec", codec.ContentType())))
	defer span.End()

	body, err := codec.Encode(v)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrEncodeFailed, err)
		p.metrics.RecordEncode(codec.ContentType(), encoding.ResultError)
		p.metrics.RecordError(codec.ContentType(), "encode")
		recordSpanError(span, err)
		p.logger.WithContext(ctx).Error("failed to encode response",
			observability.String("content_type", codec.ContentType()),
			observability.Error(err))
		return nil, err
	}

	p.metrics.RecordEncode(codec.ContentType(), encoding.ResultSuccess)
	span.SetAttributes(attribute.Int("http.response.body.size", len(body)))

	return &Encoded{
		Body:        body,
		ContentType: codec.ContentType(),
		Codec:       codec,
	}, nil
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
