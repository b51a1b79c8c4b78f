// Package geometrics holds a point type with named axes for any number of
// dimensions.
package geometrics

import (
	"strconv"

	"github.com/sbnative/sbnative/pkg/linebreak"
	"github.com/sbnative/sbnative/pkg/repr"
)

// prefixes is a through w; with the suffixes x, y and z it gives 69 names.
const (
	prefixes  = "abcdefghijklmnopqrstuvw"
	suffixes  = "xyz"
	smallAxes = "xyzw"
)

// Point is a position with one named axis per value.
type Point struct {
	axes   []string
	values []float64
}

// NewPoint names values by axis. Up to four values use x, y, z and w. Larger
// points use ax through wx, then ay through wy, then az through wz. Once the
// values reach that count the list repeats and every name carries the number
// of its block of 23: a0x ... w0x, a1y ... w2z, a3x ...
func NewPoint(values ...float64) Point {
	return Point{
		axes:   AxisNames(len(values)),
		values: append([]float64(nil), values...),
	}
}

// AxisNames returns the axis names for a point of n values.
func AxisNames(n int) []string {
	if n <= len(smallAxes) {
		names := make([]string, n)
		for i := range n {
			names[i] = string(smallAxes[i])
		}
		return names
	}

	base := make([]string, 0, len(prefixes)*len(suffixes))
	for _, s := range suffixes {
		for _, p := range prefixes {
			base = append(base, string(p)+string(s))
		}
	}
	if n < len(base) {
		return base[:n]
	}

	repeat := (n + len(base) - 1) / len(base)
	names := make([]string, 0, repeat*len(base))
	for range repeat {
		names = append(names, base...)
	}
	for i, name := range names {
		names[i] = name[:1] + strconv.Itoa(i/len(prefixes)) + name[len(name)-1:]
	}
	return names[:n]
}

// Get returns the value of axis.
func (p Point) Get(axis string) (float64, bool) {
	for i, a := range p.axes {
		if a == axis {
			return p.values[i], true
		}
	}
	return 0, false
}

// Axes returns the axis names in order.
func (p Point) Axes() []string {
	return append([]string(nil), p.axes...)
}

// Values returns the values in axis order.
func (p Point) Values() []float64 {
	return append([]float64(nil), p.values...)
}

// Dim is the number of axes.
func (p Point) Dim() int {
	return len(p.values)
}

// Describe implements repr.Describable.
func (p Point) Describe() repr.Description {
	fields := make(linebreak.Named, len(p.axes))
	for i, a := range p.axes {
		fields[i] = linebreak.KV{Name: a, Value: p.values[i]}
	}
	return repr.Description{Type: "Point", Fields: fields}
}

func (p Point) String() string {
	return repr.Clean(p, false)
}
