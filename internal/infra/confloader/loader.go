package confloader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the prefix of the fsm environment variables.
const DefaultEnvPrefix = "FSM_"

var (
	// ErrSource is returned when a file or the environment cannot be read.
	ErrSource = errors.New("confloader: read source")

	// ErrDecode is returned when the merged values do not fit the target.
	ErrDecode = errors.New("confloader: decode")
)

// Loader merges configuration layers, lowest priority first: defaults,
// file, environment, overrides.
type Loader struct {
	k         *koanf.Koanf
	defaults  map[string]any
	filePath  string
	envPrefix string
	overrides map[string]any
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithDefaults sets the values used for keys no other layer provides.
func WithDefaults(values map[string]any) Option {
	return func(l *Loader) {
		l.defaults = values
	}
}

// WithConfigFile sets the configuration file path.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// WithEnvPrefix enables the environment layer for variables starting
// with prefix. FSM_WINDOW_DELAY maps to window_delay.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithOverrides sets values that win over every other layer.
func WithOverrides(values map[string]any) Option {
	return func(l *Loader) {
		l.overrides = values
	}
}

// NewLoader creates a new configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k: koanf.New("."),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load merges the configured layers and unmarshals the result into target
// using koanf tags.
func (l *Loader) Load(target any) error {
	if len(l.defaults) > 0 {
		if err := l.k.Load(mapProvider(l.defaults), nil); err != nil {
			return fmt.Errorf("%w: defaults: %v", ErrSource, err)
		}
	}

	if l.filePath != "" {
		if err := l.k.Load(file.Provider(l.filePath), parserFor(l.filePath)); err != nil {
			return fmt.Errorf("%w: file %s: %v", ErrSource, l.filePath, err)
		}
	}

	if l.envPrefix != "" {
		if err := l.k.Load(l.envProvider(), nil); err != nil {
			return fmt.Errorf("%w: env: %v", ErrSource, err)
		}
	}

	if len(l.overrides) > 0 {
		if err := l.k.Load(mapProvider(l.overrides), nil); err != nil {
			return fmt.Errorf("%w: overrides: %v", ErrSource, err)
		}
	}

	if err := l.k.Unmarshal("", target); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// envProvider reads prefixed variables. Empty variables are ignored.
func (l *Loader) envProvider() *env.Env {
	return env.ProviderWithValue(l.envPrefix, ".", func(key, value string) (string, any) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(strings.TrimPrefix(key, l.envPrefix)), value
	})
}

// IsYAML reports whether path is parsed as YAML. Every other file is JSON.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func parserFor(path string) koanf.Parser {
	if IsYAML(path) {
		return yaml.Parser()
	}
	return json.Parser()
}
