// Package config loads the settings of the gridscroll demos from defaults, an
// optional YAML file and GRIDSCROLL_ environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"git.sr.ht/~rockorager/gridscroll/demo"
	"git.sr.ht/~rockorager/gridscroll/log"
	"git.sr.ht/~rockorager/gridscroll/widgets/overlay"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates nested keys: GRIDSCROLL_HOVER__AUTOHIDE_DELAY sets
// hover.autohide_delay
const EnvPrefix = "GRIDSCROLL_"

type Config struct {
	Log    LogConfig    `yaml:"log" koanf:"log"`
	Seed   uint64       `yaml:"seed" koanf:"seed"`
	Hover  DemoConfig   `yaml:"hover" koanf:"hover"`
	Synced SyncedConfig `yaml:"synced" koanf:"synced"`
}

type LogConfig struct {
	Level string `yaml:"level" koanf:"level"`
	// File receives the log while the UI runs. Empty means the log is
	// buffered and written to stderr on exit
	File string `yaml:"file" koanf:"file"`
}

// ScrollbarConfig holds the overlay scrollbar settings of a demo
type ScrollbarConfig struct {
	AutoHide      string `yaml:"autohide" koanf:"autohide"`
	AutoHideDelay string `yaml:"autohide_delay" koanf:"autohide_delay"`
	Visibility    string `yaml:"visibility" koanf:"visibility"`
	Theme         string `yaml:"theme" koanf:"theme"`
	DragScroll    bool   `yaml:"drag_scroll" koanf:"drag_scroll"`
	ClickScroll   bool   `yaml:"click_scroll" koanf:"click_scroll"`
}

type DemoConfig struct {
	Rows      int             `yaml:"rows" koanf:"rows"`
	Scrollbar ScrollbarConfig `yaml:"scrollbar" koanf:"scrollbar"`
}

type SyncedConfig struct {
	DemoConfig `yaml:",inline" koanf:",squash"`
	Virtualize bool `yaml:"virtualize" koanf:"virtualize"`
}

func scrollbarConfig(o overlay.Options) ScrollbarConfig {
	return ScrollbarConfig{
		AutoHide:      o.AutoHide.String(),
		AutoHideDelay: o.AutoHideDelay.String(),
		Visibility:    o.Visibility.String(),
		Theme:         o.Theme.String(),
		DragScroll:    o.DragScroll,
		ClickScroll:   o.ClickScroll,
	}
}

// DefaultConfig returns the settings the demos use when nothing is
// configured
func DefaultConfig() *Config {
	hover := demo.DefaultHoverOptions()
	synced := demo.DefaultSyncedOptions()
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Hover: DemoConfig{
			Rows:      hover.Rows,
			Scrollbar: scrollbarConfig(hover.Scrollbar),
		},
		Synced: SyncedConfig{
			DemoConfig: DemoConfig{
				Rows:      synced.Rows,
				Scrollbar: scrollbarConfig(synced.Scrollbar),
			},
			Virtualize: synced.Virtualize,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides. A
// missing file is not an error
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
			log.Debug("config: loaded %s", path)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to path as YAML
func (c *Config) Save(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

func (c *Config) YAML() ([]byte, error) {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// Validate checks that every value can be used to build the demos
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Hover.Rows < 0 {
		return fmt.Errorf("hover.rows must be non-negative")
	}
	if c.Synced.Rows < 0 {
		return fmt.Errorf("synced.rows must be non-negative")
	}
	if _, err := c.Hover.Scrollbar.Options(); err != nil {
		return fmt.Errorf("hover.scrollbar: %w", err)
	}
	if _, err := c.Synced.Scrollbar.Options(); err != nil {
		return fmt.Errorf("synced.scrollbar: %w", err)
	}
	return nil
}

// options converts the settings over base
func (s ScrollbarConfig) options(base overlay.Options) (overlay.Options, error) {
	opts := base
	var err error
	if opts.AutoHide, err = overlay.ParseAutoHide(s.AutoHide); err != nil {
		return opts, err
	}
	if opts.Visibility, err = overlay.ParseVisibility(s.Visibility); err != nil {
		return opts, err
	}
	if opts.Theme, err = overlay.ParseTheme(s.Theme); err != nil {
		return opts, err
	}
	d, err := time.ParseDuration(s.AutoHideDelay)
	if err != nil {
		return opts, fmt.Errorf("invalid autohide_delay %q: %w", s.AutoHideDelay, err)
	}
	if d < 0 {
		return opts, fmt.Errorf("autohide_delay must be non-negative")
	}
	opts.AutoHideDelay = d
	opts.DragScroll = s.DragScroll
	opts.ClickScroll = s.ClickScroll
	return opts, nil
}

// Options returns the scrollbar options described by s
func (s ScrollbarConfig) Options() (overlay.Options, error) {
	return s.options(overlay.DefaultOptions())
}

// HoverOptions returns the options of the hover demo
func (c *Config) HoverOptions() (demo.HoverOptions, error) {
	opts := demo.DefaultHoverOptions()
	sb, err := c.Hover.Scrollbar.options(opts.Scrollbar)
	if err != nil {
		return opts, fmt.Errorf("hover.scrollbar: %w", err)
	}
	opts.Rows = c.Hover.Rows
	opts.Scrollbar = sb
	return opts, nil
}

// SyncedOptions returns the options of the synced demo. The axis overflow
// settings of the synced scrollbar are fixed
func (c *Config) SyncedOptions() (demo.SyncedOptions, error) {
	opts := demo.DefaultSyncedOptions()
	sb, err := c.Synced.Scrollbar.options(opts.Scrollbar)
	if err != nil {
		return opts, fmt.Errorf("synced.scrollbar: %w", err)
	}
	opts.Rows = c.Synced.Rows
	opts.Virtualize = c.Synced.Virtualize
	opts.Scrollbar = sb
	return opts, nil
}
