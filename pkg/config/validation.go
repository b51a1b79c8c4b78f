package config

import (
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/sbnative/sbnative/pkg/linebreak"
)

// validate validates the configuration
func validate(cfg *Config) error {
	if err := validateFormat(cfg.Format); err != nil {
		return err
	}

	if err := validateLog(cfg.Log); err != nil {
		return err
	}

	if err := validateLogLevel(cfg.Logging.Level); err != nil {
		return err
	}

	return nil
}

// validateFormat validates indentation, width fraction and delimiter pairs
func validateFormat(f FormatConfig) error {
	if f.IndentSize < 1 {
		return errors.Newf("invalid indent_size %d: must be at least 1", f.IndentSize)
	}

	if f.MaxWidthFraction <= 0 || f.MaxWidthFraction > 1 {
		return errors.Newf("invalid max_width_fraction %v: must be greater than 0 and at most 1", f.MaxWidthFraction)
	}

	if len(f.Pairs) == 0 {
		return errors.New("pairs must contain at least one delimiter pair")
	}
	pairs, err := linebreak.ParsePairs(f.Pairs)
	if err != nil {
		return err
	}

	// A character may only appear once across the table, otherwise
	// pairing by position becomes ambiguous.
	seen := make(map[rune]string)
	for _, p := range pairs {
		for _, r := range []rune{p.Open, p.Close} {
			if existing, exists := seen[r]; exists {
				return errors.Newf("delimiter conflict: %q is used by both %q and %q", r, existing, p.String())
			}
			seen[r] = p.String()
		}
	}

	return nil
}

// validateLog validates the debug log output settings
func validateLog(l LogConfig) error {
	if l.HighlightStyle == "" {
		return nil
	}
	if _, ok := styles.Registry[strings.ToLower(l.HighlightStyle)]; !ok {
		return errors.Newf("unknown highlight_style '%s'", l.HighlightStyle)
	}
	return nil
}

// validateLogLevel validates the diagnostics log level
func validateLogLevel(level string) error {
	if level == "" {
		return nil
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(level)); err != nil {
		return errors.Wrapf(err, "invalid log level '%s'", level)
	}
	return nil
}
