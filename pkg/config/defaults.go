package config

import "github.com/sbnative/sbnative/pkg/linebreak"

// DefaultConfig returns a Config with the settings the installer used to write
func DefaultConfig() *Config {
	return &Config{
		Format: FormatConfig{
			IndentSize:       linebreak.DefaultIndent,
			MaxWidthFraction: linebreak.DefaultFraction,
			Pairs:            []string{"()", "[]", "{}"},
		},
		Log: LogConfig{
			Stacking:       false,
			Color:          false,
			HighlightStyle: "solarized-dark",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}
