package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yndnr/fsm-go/internal/core/domain"
	"github.com/yndnr/fsm-go/internal/platform"
)

// Config is the persisted fsm configuration.
type Config struct {
	SessionsFile string `json:"sessions_file" yaml:"sessions_file" koanf:"sessions_file" validate:"required"`
	WindowDelay  int    `json:"window_delay" yaml:"window_delay" koanf:"window_delay" validate:"gte=0"`
	TabsDelay    int    `json:"tabs_delay" yaml:"tabs_delay" koanf:"tabs_delay" validate:"gte=0"`
}

// Default returns the configuration a fresh install starts from.
func Default(sessionsFile string, delays platform.Delays) *Config {
	return &Config{
		SessionsFile: sessionsFile,
		WindowDelay:  delays.Window,
		TabsDelay:    delays.Tabs,
	}
}

// PlatformDefault builds the default configuration for adapter.
func PlatformDefault(adapter platform.Adapter) (*Config, error) {
	sessionsFile, err := adapter.DefaultSessionsFile()
	if err != nil {
		return nil, err
	}
	return Default(sessionsFile, adapter.DefaultDelays()), nil
}

// Delays returns the configured delays.
func (c *Config) Delays() platform.Delays {
	return platform.Delays{Window: c.WindowDelay, Tabs: c.TabsDelay}
}

func (c *Config) toMap() map[string]any {
	return map[string]any{
		"sessions_file": c.SessionsFile,
		"window_delay":  c.WindowDelay,
		"tabs_delay":    c.TabsDelay,
	}
}

// Validate checks c and returns ErrConfigInvalid describing every failed field.
func Validate(c *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})

	err := v.Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ErrConfigInvalid.WithCause(err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be >= %s, got %v", fe.Field(), fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return domain.ErrConfigInvalid.WithDetails(strings.Join(msgs, "; "))
}
