package main

import (
	"regexp"
	"strconv"

	"github.com/sbnative/sbnative/pkg/linebreak"
	"github.com/sbnative/sbnative/pkg/runtimetools"
)

var namedArg = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)=(.*)$`)

// parseArgs splits command line words into positional values and name=value
// pairs. Decimal numbers and booleans are converted so they print as such.
func parseArgs(words []string) ([]any, linebreak.Named) {
	var (
		args  []any
		named linebreak.Named
	)
	for _, w := range words {
		if m := namedArg.FindStringSubmatch(w); m != nil {
			named = append(named, linebreak.KV{Name: m[1], Value: parseValue(m[2])})
			continue
		}
		args = append(args, parseValue(w))
	}
	return args, named
}

// parseValue converts plain decimal literals and booleans. Anything that
// would not print back as the same word (hex, leading zeros, exponents, the
// empty string) stays text.
func parseValue(s string) any {
	if s == "" {
		return s
	}
	if n, err := runtimetools.Cast[int64](s); err == nil && strconv.FormatInt(n, 10) == s {
		return n
	}
	if f, err := runtimetools.Cast[float64](s); err == nil && strconv.FormatFloat(f, 'f', -1, 64) == s {
		return f
	}
	if s == "true" || s == "false" {
		return s == "true"
	}
	return s
}
