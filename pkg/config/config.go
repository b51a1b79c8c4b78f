package config

import (
	"github.com/sbnative/sbnative/pkg/linebreak"
)

// Config represents the complete sbnative configuration
type Config struct {
	Format  FormatConfig  `mapstructure:"format" yaml:"format"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// FormatConfig contains the argument formatter settings
type FormatConfig struct {
	IndentSize       int      `mapstructure:"indent_size" yaml:"indent_size"`
	MaxWidthFraction float64  `mapstructure:"max_width_fraction" yaml:"max_width_fraction"`
	Pairs            []string `mapstructure:"pairs" yaml:"pairs"` // each entry is an opening and a closing character, e.g. "()"
}

// LogConfig contains the debug log output settings
type LogConfig struct {
	Stacking       bool   `mapstructure:"stacking" yaml:"stacking"`
	Color          bool   `mapstructure:"color" yaml:"color"`
	HighlightStyle string `mapstructure:"highlight_style" yaml:"highlight_style"`
}

// LoggingConfig contains settings for the library's own diagnostics
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"` // empty disables the log file
}

// Options converts the format settings into renderer options. Invalid pairs
// fall back to the default table; Load rejects them before this is reached.
func (f FormatConfig) Options() linebreak.Options {
	pairs, err := linebreak.ParsePairs(f.Pairs)
	if err != nil || len(f.Pairs) == 0 {
		pairs = linebreak.DefaultPairs()
	}
	indent := f.IndentSize
	if indent < 1 {
		indent = linebreak.DefaultIndent
	}
	return linebreak.Options{Pairs: pairs, IndentUnit: indent}
}
