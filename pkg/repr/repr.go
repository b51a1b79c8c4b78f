// Package repr renders objects as TypeName(field = value, ...) from the
// fields they choose to expose.
package repr

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/sbnative/sbnative/pkg/linebreak"
)

// Describable is implemented by types that want a clean representation.
type Describable interface {
	Describe() Description
}

// Description lists what an object exposes. Fields named in Exclude are left
// out of the rendering.
type Description struct {
	Type    string
	Fields  linebreak.Named
	Exclude []string
}

// Clean renders d as Type(a = 1, b = "x"). With expanded set, break markers
// are placed after "(", after every ", " and before ")" so an expanded
// argument rendering opens the object over several lines.
func Clean(d Describable, expanded bool) string {
	desc := d.Describe()

	fields := make([]string, 0, len(desc.Fields))
	for _, f := range desc.Fields {
		if slices.Contains(desc.Exclude, f.Name) {
			continue
		}
		fields = append(fields, f.Name+" = "+valueText(f.Value, expanded))
	}

	if len(fields) == 0 {
		return desc.Type + "()"
	}

	if !expanded {
		return desc.Type + "(" + strings.Join(fields, ", ") + ")"
	}

	sep := string(linebreak.SplitSign)
	return desc.Type + "(" + sep + strings.Join(fields, ", "+sep) + sep + ")"
}

// Quote is the representation of a single value: strings are quoted,
// describable values are rendered compactly, everything else is text.
func Quote(v any) string {
	return valueText(v, false)
}

func valueText(v any, expanded bool) string {
	switch t := v.(type) {
	case string:
		return strconv.Quote(t)
	case Describable:
		return Clean(t, expanded)
	case Value:
		return Clean(t.D, expanded)
	}
	text := linebreak.Text(Deep(v))
	if !expanded {
		return linebreak.Plain(text)
	}
	return text
}

// Value wraps a Describable for use as a log argument. Its String form is
// compact, its marked form carries break markers.
type Value struct {
	D Describable
}

// Of wraps v when it is Describable and returns it unchanged otherwise.
// A nil pointer is never wrapped.
func Of(v any) any {
	if d, ok := v.(Describable); ok && !isNilPointer(v) {
		return Value{D: d}
	}
	return v
}

// Deep is Of applied through slices, arrays, named arguments and string keyed
// maps, so describable values nested in them render as Type(...) as well.
func Deep(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case Describable, linebreak.Marker, fmt.Stringer, error:
		return Of(v)
	case linebreak.Named:
		out := make(linebreak.Named, len(t))
		for i, kv := range t {
			out[i] = linebreak.KV{Name: kv.Name, Value: Deep(kv.Value)}
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Deep(e)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Deep(rv.Index(i).Interface())
		}
		return out
	}
	return v
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (v Value) String() string {
	return Clean(v.D, false)
}

// MarkedString implements linebreak.Marker.
func (v Value) MarkedString() string {
	return Clean(v.D, true)
}
