package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`       // debug, info, warn, error
	JSONFormat bool            `yaml:"json_format"` // JSON lines instead of console text
	DebugMode  bool            `yaml:"debug_mode"`  // Master toggle - false = no logging (production)
	Categories map[string]bool `yaml:"categories"`  // Per-category toggles
	Dir        string          `yaml:"dir"`         // Log file directory
}

