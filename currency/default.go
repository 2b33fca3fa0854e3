package currency

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/Reservix/money/internal/env"
)

// RegistryPathEnv names a YAML file that replaces the embedded registry.
const RegistryPathEnv = "MONEY_CURRENCY_REGISTRY"

//go:embed currencies.yaml
var embeddedRegistry []byte

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
	errDefault      error
)

// Default returns the process-wide registry, loading it on first use.
// Loading happens at most once even under concurrent first use; a load
// failure is returned on every call.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, errDefault = loadDefault()
	})

	return defaultRegistry, errDefault
}

// Embedded returns a fresh registry built from the embedded ISO 4217 table.
func Embedded(opts ...Option) (*Registry, error) {
	return LoadRegistry(bytes.NewReader(embeddedRegistry), append([]Option{WithSource("embedded")}, opts...)...)
}

func loadDefault() (*Registry, error) {
	if path := env.GetenvOrDefault(RegistryPathEnv, ""); path != "" {
		return LoadRegistryFile(path)
	}

	return Embedded()
}
