package linebreak

import (
	"github.com/muesli/reflow/ansi"
)

// DefaultFraction is the share of the terminal a single log line may occupy.
const DefaultFraction = 0.9

// Measure holds the display widths of everything that ends up on the line of
// a compact log record.
type Measure struct {
	Args     int // compact rendering
	Location int // file:line suffix
	Arrow    int
	Label    int
	End      int
}

// Total is the width of the whole line.
func (m Measure) Total() int {
	return m.Args + m.Location + m.Arrow + m.Label + m.End
}

// Overflows reports whether the line does not fit into width*fraction
// columns. width is expected to be read live by the caller on every call.
func Overflows(m Measure, width int, fraction float64) bool {
	return float64(m.Total()) > float64(width)*fraction
}

// Width is the number of terminal columns s occupies, ignoring ANSI escape
// sequences and counting wide runes twice.
func Width(s string) int {
	return ansi.PrintableRuneWidth(s)
}
