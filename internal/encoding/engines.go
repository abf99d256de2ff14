package encoding

import (
	"fmt"
	"sort"

	"github.com/vyrodovalexey/avanegotiate/internal/config"
)

// engineFactory builds a codec from the formats configuration.
type engineFactory func(cfg config.FormatsConfig) (Codec, error)

// engineKey identifies a compiled engine.
type engineKey struct {
	format string
	engine string
}

func (k engineKey) String() string {
	return k.format + "/" + k.engine
}

// engines holds the engines compiled into the binary. It is filled by init
// functions of the build-tagged codec files and never written afterwards.
var engines = map[engineKey]engineFactory{}

// registerEngine adds a compiled engine. Registering the same key twice is a
// programming error.
func registerEngine(format, engine string, factory engineFactory) {
	key := engineKey{format: format, engine: engine}
	if _, exists := engines[key]; exists {
		panic(fmt.Sprintf("encoding: engine %s registered twice", key))
	}
	engines[key] = factory
}

// lookupEngine returns the factory for a compiled engine.
func lookupEngine(format, engine string) (engineFactory, error) {
	factory, ok := engines[engineKey{format: format, engine: engine}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrEngineUnavailable, format, engine)
	}
	return factory, nil
}

// AvailableEngines lists the compiled engines as "format/engine", sorted.
func AvailableEngines() []string {
	out := make([]string, 0, len(engines))
	for key := range engines {
		out = append(out, key.String())
	}
	sort.Strings(out)
	return out
}
