// Package linebreak renders argument lists as a parenthesized, comma separated
// string and, when that string is too wide for the terminal, re-flows it over
// several lines indented by bracket nesting.
package linebreak

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// SplitSign marks a place where an expanded rendering may break the line.
// It is a private-use rune so it never collides with real text.
const SplitSign = '\uF8FF'

const splitSign = string(SplitSign)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 4

// Mode selects between the single line and the multi-line rendering.
type Mode int

const (
	ModeCompact Mode = iota
	ModeExpanded
)

// KV is one named argument.
type KV struct {
	Name  string
	Value any
}

// Named is an ordered mapping of named arguments. A Named value nested inside
// another Named is flattened recursively.
type Named []KV

// Marker is implemented by values whose textual form already carries
// SplitSign break markers, like describable objects rendered for logging.
type Marker interface {
	MarkedString() string
}

// Options configures the expanded rendering.
type Options struct {
	Pairs      []Pair
	IndentUnit int
}

// DefaultOptions returns the (), [], {} pair table and a 4 space indent.
func DefaultOptions() Options {
	return Options{
		Pairs:      DefaultPairs(),
		IndentUnit: DefaultIndent,
	}
}

// Render flattens args and named and renders them in the given mode.
// An empty argument list is always "()".
func Render(args []any, named Named, mode Mode, opts Options) string {
	parts := FlattenMarked(args, named)
	if len(parts) == 0 || mode == ModeCompact {
		return Compact(parts)
	}
	return Expand(parts, opts)
}

// Flatten converts positional values to text and named values to
// "name = value", positional entries first. The parts are plain text, so
// joining them with ", " inside parentheses gives the compact rendering.
func Flatten(args []any, named Named) []string {
	parts := FlattenMarked(args, named)
	for i, p := range parts {
		parts[i] = Plain(p)
	}
	return parts
}

// FlattenMarked is Flatten keeping the break markers of nested mappings,
// slices and Marker values. Pass its parts to Expand so nested values open
// over several lines.
func FlattenMarked(args []any, named Named) []string {
	parts := make([]string, 0, len(args)+len(named))
	for _, a := range args {
		parts = append(parts, Text(a))
	}
	for _, kv := range named {
		parts = append(parts, kv.Name+" = "+Text(kv.Value))
	}
	return parts
}

// Text is the textual representation used for every argument. Nested mappings
// render tuple-like as "(a = 1, b = 2)" and slices as "[1, 2]", both carrying
// break markers so an expanded rendering can open them up. Everything else
// prints the way fmt.Sprint does.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case string:
		return t
	case Marker:
		if isNilPointer(v) {
			return "<nil>"
		}
		return t.MarkedString()
	case fmt.Stringer, error:
		// fmt recovers from nil receivers and prints <nil>
		return fmt.Sprint(v)
	case Named:
		return group("(", ")", FlattenMarked(nil, t))
	case map[string]any:
		return group("(", ")", FlattenMarked(nil, sortedNamed(t)))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			// []byte prints the way fmt does
			break
		}
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = elemText(rv.Index(i).Interface())
		}
		return group("[", "]", items)
	}
	return fmt.Sprint(v)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// elemText quotes strings inside containers so "a, b" stays one element.
func elemText(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return Text(v)
}

func group(open, close string, items []string) string {
	if len(items) == 0 {
		return open + close
	}
	return open + splitSign + strings.Join(items, ", "+splitSign) + splitSign + close
}

func sortedNamed(m map[string]any) Named {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	named := make(Named, 0, len(keys))
	for _, k := range keys {
		named = append(named, KV{Name: k, Value: m[k]})
	}
	return named
}

// Compact joins parts with ", " inside one pair of parentheses. Break markers
// carried by the parts are dropped.
func Compact(parts []string) string {
	return Plain("(" + strings.Join(parts, ", ") + ")")
}

// Plain removes break markers from s.
func Plain(s string) string {
	return strings.ReplaceAll(s, splitSign, "")
}

// Expand renders parts one per line and indents every line by the number of
// brackets that were left open right before a line break.
//
// A bracket counts as open only when a break follows it directly, and a
// closing bracket dedents only when a break precedes it directly and it pairs
// with the innermost open bracket. Pairing is by position in opts.Pairs.
// Unbalanced input is not rejected; it just indents badly. No parts give "()".
func Expand(parts []string, opts Options) string {
	if len(parts) == 0 {
		return "()"
	}
	if opts.IndentUnit <= 0 {
		opts.IndentUnit = DefaultIndent
	}
	if opts.Pairs == nil {
		opts.Pairs = DefaultPairs()
	}

	content := "(" + splitSign + strings.Join(parts, ", "+splitSign) + splitSign + ")"
	content = strings.ReplaceAll(content, splitSign, "\n")
	runes := []rune(content)

	indent := 0
	var stack []rune
	out := make([]rune, 0, len(runes)*2)

	for idx, c := range runes {
		if opener(opts.Pairs, c) >= 0 && idx+1 < len(runes) && isBreak(runes[idx+1]) {
			indent++
			stack = append(stack, c)
		} else if pos := closer(opts.Pairs, c); pos >= 0 && len(stack) > 0 && idx > 2 &&
			isBreak(runes[idx-1]) && opts.Pairs[pos].Open == stack[len(stack)-1] {
			indent--
			stack = stack[:len(stack)-1]
			out = out[:max(len(out)-opts.IndentUnit, 0)]
		}

		out = append(out, c)
		if isBreak(c) {
			for range indent * opts.IndentUnit {
				out = append(out, ' ')
			}
		}
	}

	return string(out)
}

func isBreak(r rune) bool {
	return r == '\n' || r == SplitSign
}
