package encoding

import (
	"fmt"
	"strings"

	"github.com/vyrodovalexey/avanegotiate/internal/mediatype"
	"github.com/vyrodovalexey/avanegotiate/internal/observability"
)

// candidate is a registered format together with the Accept entry that
// governs it.
type candidate struct {
	entry       mediatype.MediaType
	specificity mediatype.Specificity
	canonical   string
	codec       Codec
	isDefault   bool
}

// Select picks the codec that best satisfies the Accept list.
//
// Each registered format is governed by the most specific entry matching it,
// the earlier entry winning equal specificity. A governing entry with q=0
// rejects the format. Survivors are ranked by quality, then specificity, then
// header position; a tie within one entry goes to the registry default and
// then to the lexicographically smaller media type. An empty list selects the
// default. ErrNotAcceptable is returned when nothing survives.
func Select(list mediatype.AcceptList, reg *Registry) (Codec, error) {
	if len(list) == 0 {
		return reg.Default(), nil
	}

	var best *candidate
	for _, e := range reg.entries {
		c, ok := governingEntry(list, e.canonical)
		if !ok || c.entry.Quality <= 0 {
			continue
		}
		c.codec = e.codec
		c.isDefault = e.canonical == reg.defType
		if best == nil || c.outranks(best) {
			picked := c
			best = &picked
		}
	}

	if best == nil {
		return nil, ErrNotAcceptable
	}
	return best.codec, nil
}

// governingEntry returns the most specific entry in list matching canonical.
func governingEntry(list mediatype.AcceptList, canonical string) (candidate, bool) {
	c := candidate{canonical: canonical}
	for _, entry := range list {
		s := entry.Match(canonical)
		if s > c.specificity {
			c.entry = entry
			c.specificity = s
		}
	}
	return c, c.specificity != mediatype.SpecificityNone
}

// outranks reports whether c ranks strictly above other.
func (c candidate) outranks(other *candidate) bool {
	if c.entry.Quality != other.entry.Quality {
		return c.entry.Quality > other.entry.Quality
	}
	if c.specificity != other.specificity {
		return c.specificity > other.specificity
	}
	if c.entry.Index != other.entry.Index {
		return c.entry.Index < other.entry.Index
	}
	if c.isDefault != other.isDefault {
		return c.isDefault
	}
	return c.canonical < other.canonical
}

// Negotiator selects response codecs from Accept header values.
type Negotiator struct {
	registry *Registry
	logger   observability.Logger
	metrics  *EncodingMetrics
}

// NegotiatorOption is a functional option for configuring the negotiator.
type NegotiatorOption func(*Negotiator)

// WithNegotiatorLogger sets the logger for the negotiator.
func WithNegotiatorLogger(logger observability.Logger) NegotiatorOption {
	return func(n *Negotiator) {
		n.logger = logger
	}
}

// WithNegotiatorMetrics sets the metrics for the negotiator.
func WithNegotiatorMetrics(metrics *EncodingMetrics) NegotiatorOption {
	return func(n *Negotiator) {
		n.metrics = metrics
	}
}

// NewNegotiator creates a new content type negotiator over reg.
func NewNegotiator(reg *Registry, opts ...NegotiatorOption) *Negotiator {
	n := &Negotiator{
		registry: reg,
		logger:   observability.NopLogger(),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Registry returns the registry the negotiator selects from.
func (n *Negotiator) Registry() *Registry {
	return n.registry
}

// Negotiate selects the codec for an Accept header value. A blank header
// selects the default codec. A header in which every entry is malformed is
// not acceptable.
func (n *Negotiator) Negotiate(acceptHeader string) (Codec, error) {
	if strings.TrimSpace(acceptHeader) == "" {
		codec := n.registry.Default()
		n.metrics.RecordNegotiation(codec.ContentType(), ResultDefault)
		return codec, nil
	}

	list := mediatype.Parse(acceptHeader)
	if len(list) == 0 {
		n.logger.Debug("accept header has no usable entries",
			observability.String("accept", acceptHeader))
		n.metrics.RecordNegotiation("", ResultNotAcceptable)
		return nil, fmt.Errorf("%w: %q", ErrNotAcceptable, acceptHeader)
	}

	codec, err := n.NegotiateList(list)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, acceptHeader)
	}
	return codec, nil
}

// NegotiateList selects the codec for an already parsed Accept list.
func (n *Negotiator) NegotiateList(list mediatype.AcceptList) (Codec, error) {
	codec, err := Select(list, n.registry)
	if err != nil {
		n.logger.Debug("no acceptable content type",
			observability.Strings("accept", list.Canonicals()),
			observability.Strings("supported", n.registry.SupportedTypes()))
		n.metrics.RecordNegotiation("", ResultNotAcceptable)
		return nil, err
	}

	n.logger.Debug("content type negotiated",
		observability.Strings("accept", list.Canonicals()),
		observability.String("selected", codec.ContentType()))
	n.metrics.RecordNegotiation(codec.ContentType(), ResultSuccess)

	return codec, nil
}
