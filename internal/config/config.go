package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all gohow configuration.
type Config struct {
	// Pager selection
	Pager PagerConfig `yaml:"pager"`

	// Report layout
	Render RenderConfig `yaml:"render"`

	// Marker and routine discovery
	Extract ExtractConfig `yaml:"extract"`

	// Routine execution
	Execution ExecutionConfig `yaml:"execution"`

	// Sample unit sources
	Samples SamplesConfig `yaml:"samples"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// PagerConfig configures how the report is displayed.
type PagerConfig struct {
	Mode    string `yaml:"mode"`    // auto, tui, external, plain
	Command string `yaml:"command"` // external pager command line
}

// RenderConfig configures report styling.
type RenderConfig struct {
	Style    string `yaml:"style"`     // overstrike, plain
	TabWidth int    `yaml:"tab_width"` // spaces per tab in code lines
}

// ExtractConfig configures category markers and routine filtering.
type ExtractConfig struct {
	CategoryTag string   `yaml:"category_tag"`
	Reserved    []string `yaml:"reserved"`
}

// ExecutionConfig configures the interpreter.
type ExecutionConfig struct {
	Timeout string `yaml:"timeout"`
}

// SamplesConfig configures extra sample unit locations.
type SamplesConfig struct {
	ExtraDir string `yaml:"extra_dir"`
}

// Pager modes.
const (
	PagerAuto     = "auto"
	PagerTUI      = "tui"
	PagerExternal = "external"
	PagerPlain    = "plain"
)

// Render styles.
const (
	StyleOverstrike = "overstrike"
	StylePlain      = "plain"
)

// ValidPagerModes lists all supported pager modes.
var ValidPagerModes = []string{PagerAuto, PagerTUI, PagerExternal, PagerPlain}

// ValidStyles lists all supported render styles.
var ValidStyles = []string{StyleOverstrike, StylePlain}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Pager: PagerConfig{
			Mode:    PagerAuto,
			Command: "less -R",
		},
		Render: RenderConfig{
			Style:    StyleOverstrike,
			TabWidth: 4,
		},
		Extract: ExtractConfig{
			CategoryTag: "// category: ",
			Reserved:    []string{"main", "init"},
		},
		Execution: ExecutionConfig{
			Timeout: "10s",
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   filepath.Join(defaultStateDir(), "logs"),
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/gohow/config.yaml (or the OS equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "gohow", "config.yaml")
}

func defaultStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "gohow")
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".gohow"
	}
	return filepath.Join(dir, "gohow")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Defaults if config file doesn't exist
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if cmd := os.Getenv("PAGER"); cmd != "" {
		c.Pager.Command = cmd
	}
	if mode := os.Getenv("GOHOW_PAGER"); mode != "" {
		c.Pager.Mode = mode
	}
	if style := os.Getenv("GOHOW_STYLE"); style != "" {
		c.Render.Style = style
	}
	if dir := os.Getenv("GOHOW_SAMPLES_DIR"); dir != "" {
		c.Samples.ExtraDir = dir
	}
	if os.Getenv("GOHOW_DEBUG") == "1" {
		c.Logging.DebugMode = true
		c.Logging.Level = "debug"
	}
}

// GetExecutionTimeout returns the per-routine timeout, defaulting to 10s.
func (c *Config) GetExecutionTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Execution.Timeout); err == nil && d > 0 {
		return d
	}
	return 10 * time.Second
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidPagerModes, c.Pager.Mode) {
		return fmt.Errorf("%w: pager mode %q (valid: %v)", ErrInvalidConfig, c.Pager.Mode, ValidPagerModes)
	}
	if !contains(ValidStyles, c.Render.Style) {
		return fmt.Errorf("%w: render style %q (valid: %v)", ErrInvalidConfig, c.Render.Style, ValidStyles)
	}
	if c.Render.TabWidth < 0 {
		return fmt.Errorf("%w: tab_width must not be negative", ErrInvalidConfig)
	}
	if c.Extract.CategoryTag == "" {
		return fmt.Errorf("%w: category_tag is empty", ErrInvalidConfig)
	}
	if c.Execution.Timeout != "" {
		d, err := time.ParseDuration(c.Execution.Timeout)
		if err != nil {
			return fmt.Errorf("%w: execution timeout: %v", ErrInvalidConfig, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: execution timeout must be positive", ErrInvalidConfig)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
