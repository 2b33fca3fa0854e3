package currency

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/Reservix/money/log"
	xcurrency "golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

// defaultMinorUnits is used when neither the registry data nor CLDR know the
// scale of a currency.
const defaultMinorUnits = 2

// Definition is the registry metadata of one currency.
type Definition struct {
	Code       string
	Numeric    string
	Name       string
	MinorUnits int
}

// Registry is an immutable lookup table of known currencies.
// It is safe for concurrent use.
type Registry struct {
	definitions map[string]Definition
	codes       []string
}

// Option configures registry construction.
type Option func(*options)

type options struct {
	logger log.Logger
	source string
}

// WithLogger sets the logger used while building a registry.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSource names the data source in log entries.
func WithSource(source string) Option {
	return func(o *options) {
		o.source = source
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: log.NewNop(), source: "inline"}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// NewRegistry builds a registry from definitions.
// Codes must be non-empty, free of whitespace and unique; minor units must not
// be negative.
func NewRegistry(definitions []Definition, opts ...Option) (*Registry, error) {
	o := buildOptions(opts)

	registry := &Registry{
		definitions: make(map[string]Definition, len(definitions)),
		codes:       make([]string, 0, len(definitions)),
	}

	for i, def := range definitions {
		if def.Code == "" || strings.ContainsFunc(def.Code, unicode.IsSpace) {
			return nil, fmt.Errorf("%w: entry %d has invalid code %q", ErrInvalidRegistry, i, def.Code)
		}

		if def.MinorUnits < 0 {
			return nil, fmt.Errorf("%w: %s has negative minor units", ErrInvalidRegistry, def.Code)
		}

		if _, exists := registry.definitions[def.Code]; exists {
			return nil, fmt.Errorf("%w: duplicate code %s", ErrInvalidRegistry, def.Code)
		}

		registry.definitions[def.Code] = def
		registry.codes = append(registry.codes, def.Code)
	}

	sort.Strings(registry.codes)

	o.logger.Log(context.Background(), log.LevelInfo, "currency registry loaded",
		log.String("source", o.source),
		log.Int("currencies", len(registry.codes)),
	)

	return registry, nil
}

type registryDocument struct {
	Currencies []registryEntry `yaml:"currencies"`
}

type registryEntry struct {
	Code       string `yaml:"code"`
	Numeric    string `yaml:"numeric"`
	Name       string `yaml:"name"`
	MinorUnits *int   `yaml:"minorUnits"`
}

// LoadRegistry reads a YAML registry document of the form
//
//	currencies:
//	  - {code: USD, numeric: "840", name: US Dollar, minorUnits: 2}
//
// Entries without minorUnits take the CLDR standard scale.
func LoadRegistry(r io.Reader, opts ...Option) (*Registry, error) {
	o := buildOptions(opts)

	var doc registryDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrInvalidRegistry, o.source, err)
	}

	if len(doc.Currencies) == 0 {
		return nil, fmt.Errorf("%w: %s lists no currencies", ErrInvalidRegistry, o.source)
	}

	definitions := make([]Definition, len(doc.Currencies))
	for i, entry := range doc.Currencies {
		definitions[i] = Definition{
			Code:    strings.TrimSpace(entry.Code),
			Numeric: entry.Numeric,
			Name:    entry.Name,
		}

		if entry.MinorUnits != nil {
			definitions[i].MinorUnits = *entry.MinorUnits

			continue
		}

		definitions[i].MinorUnits = cldrMinorUnits(o.logger, definitions[i].Code)
	}

	return NewRegistry(definitions, opts...)
}

// LoadRegistryFile reads a YAML registry document from path.
func LoadRegistryFile(path string, opts ...Option) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
	}
	defer f.Close()

	return LoadRegistry(f, append([]Option{WithSource(path)}, opts...)...)
}

func cldrMinorUnits(logger log.Logger, code string) int {
	unit, err := xcurrency.ParseISO(code)
	if err != nil {
		logger.Log(context.Background(), log.LevelWarn, "no CLDR data for currency, using default minor units",
			log.String("code", code),
			log.Int("minor_units", defaultMinorUnits),
		)

		return defaultMinorUnits
	}

	scale, _ := xcurrency.Standard.Rounding(unit)

	logger.Log(context.Background(), log.LevelDebug, "minor units resolved from CLDR",
		log.String("code", code),
		log.Int("minor_units", scale),
	)

	return scale
}

// Currency returns the Currency for code, or an *UnknownCurrencyError.
func (r *Registry) Currency(code string) (Currency, error) {
	if !r.Contains(code) {
		return Currency{}, &UnknownCurrencyError{Code: code}
	}

	return Currency{code: code}, nil
}

// Contains reports whether code is registered.
func (r *Registry) Contains(code string) bool {
	if r == nil {
		return false
	}

	_, ok := r.definitions[code]

	return ok
}

// Lookup returns the metadata registered for code.
func (r *Registry) Lookup(code string) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}

	def, ok := r.definitions[code]

	return def, ok
}

// Codes returns the registered codes in lexical order.
func (r *Registry) Codes() []string {
	if r == nil {
		return nil
	}

	return append([]string(nil), r.codes...)
}

// Len returns the number of registered currencies.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.codes)
}
