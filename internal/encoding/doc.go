// Package encoding provides the codec registry and the Accept header
// priority selector.
//
// The encoding package implements codecs for:
//
//   - JSON (application/json), standard or accelerated engine
//   - CBOR (application/cbor)
//
// Engines are compiled in by default. Build with -tags noaccelerated to drop
// the accelerated JSON engine and with -tags nocbor to drop CBOR. Which
// compiled engines are active is decided once, when the Registry is built
// from configuration.
//
// # Example Usage
//
//	reg, err := encoding.NewRegistry(cfg.Formats)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	negotiator := encoding.NewNegotiator(reg)
//	codec, err := negotiator.Negotiate(r.Header.Get("Accept"))
//	if errors.Is(err, encoding.ErrNotAcceptable) {
//	    // 406
//	}
//	data, err := codec.Encode(payload)
//
// # Thread Safety
//
// A Registry is immutable once built. Registries, codecs and negotiators are
// safe for concurrent use.
package encoding
