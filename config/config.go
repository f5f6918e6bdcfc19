package config

import (
	"github.com/nodejs-spain/atlas.js/logger"
)

// Settings is the atlas-reserved configuration section: the orchestrator's
// own defaults, currently its logger name and level.
type Settings struct {
	Log logger.Config `yaml:"log" mapstructure:"log"`
}

// Config carries per-alias configuration sections for every registered
// component, plus the atlas-reserved section.
type Config struct {
	Atlas    Settings                  `yaml:"atlas" mapstructure:"atlas"`
	Hooks    map[string]map[string]any `yaml:"hooks" mapstructure:"hooks"`
	Services map[string]map[string]any `yaml:"services" mapstructure:"services"`
	Actions  map[string]map[string]any `yaml:"actions" mapstructure:"actions"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	c.Atlas.Log.ApplyDefaults()
	if c.Hooks == nil {
		c.Hooks = make(map[string]map[string]any)
	}
	if c.Services == nil {
		c.Services = make(map[string]map[string]any)
	}
	if c.Actions == nil {
		c.Actions = make(map[string]map[string]any)
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return c.Atlas.Log.Validate()
}

// Section returns the user-supplied overrides for one component, or nil if
// none were provided. kind is one of "hook", "service", "action".
func (c *Config) Section(kind, alias string) map[string]any {
	switch kind {
	case "hook":
		return c.Hooks[alias]
	case "service":
		return c.Services[alias]
	case "action":
		return c.Actions[alias]
	}
	return nil
}
