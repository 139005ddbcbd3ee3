// Package config handles loading and validating wheel configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"spinwheel/internal/expr"
	"spinwheel/internal/pathutil"
	"spinwheel/internal/spin"
	"spinwheel/internal/wheel"

	"gopkg.in/yaml.v3"
)

const DefaultFrameInterval = 16 * time.Millisecond

// Config is the top-level wheel configuration.
type Config struct {
	Version  string    `yaml:"version"`
	Items    []ItemDef `yaml:"items,omitempty"`
	Spin     Spin      `yaml:"spin,omitempty"`
	Palette  []string  `yaml:"palette,omitempty"`
	Announce Announce  `yaml:"announce,omitempty"`
}

// ItemDef is one configured wheel entry. When is an optional expr condition;
// items whose condition is false are left off the wheel.
type ItemDef struct {
	Label string `yaml:"label"`
	When  string `yaml:"when,omitempty"`

	cond *expr.Condition
}

// UnmarshalYAML accepts either a bare label or a {label, when} mapping.
func (d *ItemDef) UnmarshalYAML(unmarshal func(any) error) error {
	var label string
	if err := unmarshal(&label); err == nil {
		d.Label = label
		return nil
	}

	type plain ItemDef
	var p plain
	if err := unmarshal(&p); err != nil {
		return err
	}
	*d = ItemDef(p)
	return nil
}

// Spin holds the animation timing. Zero values fall back to defaults.
type Spin struct {
	CruiseSpeed   float64       `yaml:"cruise_speed,omitempty"`
	Deceleration  time.Duration `yaml:"deceleration,omitempty"`
	DisplayDelay  time.Duration `yaml:"display_delay,omitempty"`
	FrameInterval time.Duration `yaml:"frame_interval,omitempty"`
}

type Announce struct {
	MQTT MQTT `yaml:"mqtt,omitempty"`
}

// MQTT configures the optional winner announcer. Empty Host disables it.
type MQTT struct {
	Host     string `yaml:"host,omitempty"`
	Port     int    `yaml:"port,omitempty"`
	Topic    string `yaml:"topic,omitempty"`
	ClientID string `yaml:"client_id,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{Version: "1"}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses a config file from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(pathutil.Expand(path))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates raw YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Version == "" {
		return nil, errors.New("config missing version field")
	}
	if cfg.Version != "1" {
		return nil, fmt.Errorf("unsupported config version: %s", cfg.Version)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) validate() error {
	for i := range c.Items {
		item := &c.Items[i]
		item.Label = strings.TrimSpace(item.Label)
		if item.Label == "" {
			return fmt.Errorf("item %d: label cannot be empty", i+1)
		}

		cond, err := expr.Compile(item.When)
		if err != nil {
			return fmt.Errorf("item %d (%s): %w", i+1, item.Label, err)
		}
		item.cond = cond
	}

	if c.Spin.CruiseSpeed < 0 {
		return errors.New("spin.cruise_speed cannot be negative")
	}
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"spin.deceleration", c.Spin.Deceleration},
		{"spin.display_delay", c.Spin.DisplayDelay},
		{"spin.frame_interval", c.Spin.FrameInterval},
	}
	for _, d := range durations {
		if d.d < 0 {
			return fmt.Errorf("%s cannot be negative", d.name)
		}
	}

	for i, color := range c.Palette {
		if !isHexColor(color) {
			return fmt.Errorf("palette %d: %q is not a #RGB or #RRGGBB color", i+1, color)
		}
	}

	if c.Announce.MQTT.Port < 0 || c.Announce.MQTT.Port > 65535 {
		return fmt.Errorf("announce.mqtt.port out of range: %d", c.Announce.MQTT.Port)
	}
	return nil
}

func (c *Config) applyDefaults() {
	defaults := spin.DefaultSettings()
	if c.Spin.CruiseSpeed == 0 {
		c.Spin.CruiseSpeed = defaults.CruiseSpeed
	}
	if c.Spin.Deceleration == 0 {
		c.Spin.Deceleration = defaults.Deceleration
	}
	if c.Spin.DisplayDelay == 0 {
		c.Spin.DisplayDelay = defaults.DisplayDelay
	}
	if c.Spin.FrameInterval == 0 {
		c.Spin.FrameInterval = DefaultFrameInterval
	}
	if len(c.Palette) == 0 {
		c.Palette = wheel.DefaultPalette
	}
	if c.Announce.MQTT.Host != "" {
		if c.Announce.MQTT.Port == 0 {
			c.Announce.MQTT.Port = 1883
		}
		if c.Announce.MQTT.Topic == "" {
			c.Announce.MQTT.Topic = "spinwheel/winner"
		}
		if c.Announce.MQTT.ClientID == "" {
			c.Announce.MQTT.ClientID = "spinwheel"
		}
	}
}

// SpinSettings converts the spin section for the controller.
func (c *Config) SpinSettings() spin.Settings {
	return spin.Settings{
		CruiseSpeed:  c.Spin.CruiseSpeed,
		Deceleration: c.Spin.Deceleration,
		DisplayDelay: c.Spin.DisplayDelay,
	}
}

// ActiveItems returns the labels whose conditions hold in ctx, in order.
func (c *Config) ActiveItems(ctx *expr.Context) ([]string, error) {
	var labels []string
	for i, item := range c.Items {
		ok, err := item.cond.Eval(ctx)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i+1, item.Label, err)
		}
		if ok {
			labels = append(labels, item.Label)
		}
	}
	return labels, nil
}

func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
