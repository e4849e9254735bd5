package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yndnr/fsm-go/internal/core/domain"
	"github.com/yndnr/fsm-go/internal/infra/confloader"
)

// Overrides carries optional values given on the command line. A nil
// field means the flag was not supplied.
type Overrides struct {
	SessionsFile *string
	WindowDelay  *int
	TabsDelay    *int
}

// Any reports whether at least one override is set.
func (o Overrides) Any() bool {
	return o.SessionsFile != nil || o.WindowDelay != nil || o.TabsDelay != nil
}

func (o Overrides) toMap() map[string]any {
	m := make(map[string]any, 3)
	if o.SessionsFile != nil {
		m["sessions_file"] = *o.SessionsFile
	}
	if o.WindowDelay != nil {
		m["window_delay"] = *o.WindowDelay
	}
	if o.TabsDelay != nil {
		m["tabs_delay"] = *o.TabsDelay
	}
	return m
}

func (o Overrides) apply(c *Config) error {
	if o.SessionsFile != nil {
		path, err := ExpandHome(*o.SessionsFile)
		if err != nil {
			return err
		}
		c.SessionsFile = path
	}
	if o.WindowDelay != nil {
		c.WindowDelay = *o.WindowDelay
	}
	if o.TabsDelay != nil {
		c.TabsDelay = *o.TabsDelay
	}
	return nil
}

// LoadResult is the outcome of Bootstrap.
type LoadResult struct {
	Config *Config

	// CreatedDir is set when the config directory had to be created.
	CreatedDir bool

	// Created is set when the config file did not exist.
	Created bool

	// Updated is set when persisted overrides were written back.
	Updated bool
}

// Bootstrap loads the config file at path, creating it from defaults when
// it does not exist. Overrides in persist are applied and written back.
func Bootstrap(path string, defaults *Config, persist Overrides) (*LoadResult, error) {
	res := &LoadResult{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		dir := filepath.Dir(path)
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, domain.ErrConfigIO.WithDetails(dir).WithCause(err)
			}
			res.CreatedDir = true
		}

		cfg := *defaults
		if err := persist.apply(&cfg); err != nil {
			return nil, err
		}
		if err := Validate(&cfg); err != nil {
			return nil, err
		}
		if err := Save(&cfg, path); err != nil {
			return nil, err
		}
		res.Config = &cfg
		res.Created = true
		return res, nil

	case err != nil:
		return nil, domain.ErrConfigIO.WithDetails(path).WithCause(err)
	}

	cfg, err := loadFile(path, defaults)
	if err != nil {
		return nil, err
	}
	if err := persist.apply(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	if persist.Any() {
		if err := Save(cfg, path); err != nil {
			return nil, err
		}
		res.Updated = true
	}

	res.Config = cfg
	return res, nil
}

// loadFile reads path with defaults filling keys the file leaves out.
func loadFile(path string, defaults *Config) (*Config, error) {
	l := confloader.NewLoader(
		confloader.WithDefaults(defaults.toMap()),
		confloader.WithConfigFile(path),
	)

	var cfg Config
	if err := l.Load(&cfg); err != nil {
		if errors.Is(err, confloader.ErrDecode) {
			return nil, domain.ErrConfigInvalid.WithDetails(path).WithCause(err)
		}
		return nil, domain.ErrConfigIO.WithDetails(path).WithCause(err)
	}
	return &cfg, nil
}

// Resolve layers FSM_* environment variables and runtime flag overrides
// on top of cfg. cfg itself is left untouched.
func Resolve(cfg *Config, runtime Overrides) (*Config, error) {
	l := confloader.NewLoader(
		confloader.WithDefaults(cfg.toMap()),
		confloader.WithEnvPrefix(confloader.DefaultEnvPrefix),
		confloader.WithOverrides(runtime.toMap()),
	)

	var out Config
	if err := l.Load(&out); err != nil {
		return nil, domain.ErrConfigInvalid.WithDetails("environment").WithCause(err)
	}
	if err := Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Save writes cfg to path as indented JSON, or YAML for .yaml/.yml paths.
func Save(cfg *Config, path string) error {
	data, err := Marshal(cfg, path)
	if err != nil {
		return domain.ErrConfigIO.WithDetails(path).WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return domain.ErrConfigIO.WithDetails(path).WithCause(err)
	}
	return nil
}

// Marshal encodes cfg in the format implied by path.
func Marshal(cfg *Config, path string) ([]byte, error) {
	if confloader.IsYAML(path) {
		return yaml.Marshal(cfg)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExpandHome replaces a leading ~ with the user home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", domain.ErrConfigIO.WithDetails("resolve home directory").WithCause(err)
	}
	return filepath.Join(home, path[1:]), nil
}
