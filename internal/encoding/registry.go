package encoding

import (
	"fmt"
	"sort"

	"github.com/vyrodovalexey/avanegotiate/internal/config"
	"github.com/vyrodovalexey/avanegotiate/internal/mediatype"
	"github.com/vyrodovalexey/avanegotiate/internal/observability"
)

// Registry maps canonical media types to codecs. It is built once by
// NewRegistry and never modified afterwards.
type Registry struct {
	codecs  map[string]Codec
	entries []registryEntry
	def     Codec
	defType string
}

// registryEntry pairs a codec with its canonical media type.
type registryEntry struct {
	canonical string
	codec     Codec
}

// registryBuilder collects options before the registry is frozen.
type registryBuilder struct {
	logger observability.Logger
	extra  []Codec
}

// RegistryOption is a functional option for configuring the registry.
type RegistryOption func(*registryBuilder)

// WithRegistryLogger sets the logger used while building the registry.
func WithRegistryLogger(logger observability.Logger) RegistryOption {
	return func(b *registryBuilder) {
		b.logger = logger
	}
}

// WithCodec registers an additional codec under its content type.
func WithCodec(codec Codec) RegistryOption {
	return func(b *registryBuilder) {
		b.extra = append(b.extra, codec)
	}
}

// NewRegistry builds the registry from the formats configuration. It fails
// when no format is enabled, when the default is unknown or disabled, or when
// a configured engine was not compiled in.
func NewRegistry(cfg config.FormatsConfig, opts ...RegistryOption) (*Registry, error) {
	b := &registryBuilder{logger: observability.NopLogger()}
	for _, opt := range opts {
		opt(b)
	}

	enabled := cfg.EnabledFormats()
	if len(enabled) == 0 {
		return nil, ErrNoFormats
	}

	switch cfg.Default {
	case config.FormatJSON, config.FormatCBOR:
	default:
		return nil, fmt.Errorf("%w: default %q", ErrUnknownFormat, cfg.Default)
	}
	if !cfg.IsEnabled(cfg.Default) {
		return nil, fmt.Errorf("%w: %s", ErrDefaultNotEnabled, cfg.Default)
	}

	r := &Registry{codecs: make(map[string]Codec, len(enabled)+len(b.extra))}

	for _, format := range enabled {
		engine := config.EngineStandard
		if format == config.FormatJSON {
			engine = cfg.JSON.JSONEngine()
		}

		factory, err := lookupEngine(format, engine)
		if err != nil {
			return nil, err
		}
		codec, err := factory(cfg)
		if err != nil {
			return nil, fmt.Errorf("building %s codec: %w", format, err)
		}
		if err := r.add(codec); err != nil {
			return nil, err
		}

		b.logger.Debug("format registered",
			observability.String("content_type", codec.ContentType()),
			observability.String("engine", codec.Engine()))
	}

	for _, codec := range b.extra {
		if err := r.add(codec); err != nil {
			return nil, err
		}
		b.logger.Debug("custom format registered",
			observability.String("content_type", codec.ContentType()),
			observability.String("engine", codec.Engine()))
	}

	r.def = r.codecs[config.FormatToContentType(cfg.Default)]
	r.defType = config.FormatToContentType(cfg.Default)

	sort.Slice(r.entries, func(i, j int) bool {
		return r.entries[i].canonical < r.entries[j].canonical
	})

	b.logger.Info("codec registry built",
		observability.Strings("formats", r.SupportedTypes()),
		observability.String("default", r.def.ContentType()))

	return r, nil
}

func (r *Registry) add(codec Codec) error {
	ct := mediatype.Canonicalize(codec.ContentType())
	if _, exists := r.codecs[ct]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateFormat, ct)
	}
	r.codecs[ct] = codec
	r.entries = append(r.entries, registryEntry{canonical: ct, codec: codec})
	return nil
}

// Lookup returns the codec registered for the canonical media type. Matching
// is exact apart from case; wildcards are resolved by Select.
func (r *Registry) Lookup(canonical string) (Codec, bool) {
	codec, ok := r.codecs[mediatype.Canonicalize(canonical)]
	return codec, ok
}

// Default returns the default codec.
func (r *Registry) Default() Codec {
	return r.def
}

// DefaultType returns the canonical media type of the default codec.
func (r *Registry) DefaultType() string {
	return r.defType
}

// Codecs returns the registered codecs ordered by content type.
func (r *Registry) Codecs() []Codec {
	out := make([]Codec, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.codec
	}
	return out
}

// SupportedTypes returns the registered canonical media types, sorted.
func (r *Registry) SupportedTypes() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.canonical
	}
	return out
}

// Len returns the number of registered codecs.
func (r *Registry) Len() int {
	return len(r.entries)
}
