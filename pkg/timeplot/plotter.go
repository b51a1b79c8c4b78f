// Package timeplot times the calls of a function and writes the timings as
// an HTML table.
package timeplot

import (
	_ "embed"
	"html"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/sbnative/sbnative/pkg/linebreak"
)

// OutputFile is the name of the page written by Show.
const OutputFile = "graphdisplay.html"

// MaxLabelWidth bounds the label of a call in display columns.
const MaxLabelWidth = 60

const (
	beginRow = "{BEGIN-TBL-ELM}"
	endRow   = "{END-TBL-ELM}"
)

//go:embed graph.html
var graphTemplate string

var (
	ErrAlreadyTracking = errors.New("plotter already tracks a function")
	ErrNothingTracked  = errors.New("no function was tracked with this plotter")
)

// SortKey selects what the points are ordered by and which value goes on
// the x axis.
type SortKey int

const (
	ByTime SortKey = iota + 1
	ByArgs
)

func (k SortKey) String() string {
	switch k {
	case ByTime:
		return "time"
	case ByArgs:
		return "args"
	}
	return "SortKey(" + strconv.Itoa(int(k)) + ")"
}

// Point is the timing of one call labelled with its tracked arguments.
type Point struct {
	Label  string
	Millis float64
}

// Plotter records how long each call of one function takes.
type Plotter struct {
	SortAfter SortKey
	TrackArgs []int // positions of the arguments shown in labels
	Reverse   bool

	mu       sync.Mutex
	tracking bool
	store    *Store
}

// New creates a plotter. Only the arguments at the positions in trackArgs
// appear in the labels.
func New(sortAfter SortKey, trackArgs []int, reverse bool) *Plotter {
	return NewWithLogger(sortAfter, trackArgs, reverse, zerolog.Nop())
}

// NewWithLogger is New with a logger for recorded calls.
func NewWithLogger(sortAfter SortKey, trackArgs []int, reverse bool, logger zerolog.Logger) *Plotter {
	return &Plotter{
		SortAfter: sortAfter,
		TrackArgs: trackArgs,
		Reverse:   reverse,
		store:     NewStore(logger),
	}
}

// Track wraps fn so every call is timed. A plotter tracks one function.
func (p *Plotter) Track(fn func(args ...any) any) (func(args ...any) any, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tracking {
		return nil, ErrAlreadyTracking
	}
	p.tracking = true

	return func(args ...any) any {
		begin := time.Now()
		ret := fn(args...)
		p.store.Add(args, time.Since(begin))
		return ret
	}, nil
}

// Calls returns the recorded calls in call order.
func (p *Plotter) Calls() []Call {
	return p.store.GetAll()
}

// Points returns one point per call, ordered by time or by label. Reverse
// turns the order around.
func (p *Plotter) Points() ([]Point, error) {
	if !p.isTracking() {
		return nil, ErrNothingTracked
	}

	calls := p.store.GetAll()
	points := make([]Point, len(calls))
	for i, c := range calls {
		points[i] = Point{Label: p.label(c.Args), Millis: c.Millis()}
	}

	switch p.SortAfter {
	case ByTime:
		slices.SortStableFunc(points, func(a, b Point) int {
			switch {
			case a.Millis < b.Millis:
				return -1
			case a.Millis > b.Millis:
				return 1
			}
			return 0
		})
	case ByArgs:
		slices.SortStableFunc(points, func(a, b Point) int {
			return strings.Compare(a.Label, b.Label)
		})
	default:
		return nil, errors.Newf("unknown sort key %s", p.SortAfter)
	}

	if p.Reverse {
		slices.Reverse(points)
	}
	return points, nil
}

// Render returns the HTML page for the recorded calls.
func (p *Plotter) Render() (string, error) {
	points, err := p.Points()
	if err != nil {
		return "", err
	}

	xLabel, yLabel := "arguments", "milliseconds"
	rows := make([][2]string, len(points))
	for i, pt := range points {
		ms := strconv.FormatFloat(pt.Millis, 'f', 3, 64)
		rows[i] = [2]string{pt.Label, ms}
		if p.SortAfter == ByTime {
			rows[i] = [2]string{ms, pt.Label}
		}
	}
	if p.SortAfter == ByTime {
		xLabel, yLabel = yLabel, xLabel
	}

	page := strings.NewReplacer("{XLABEL}", xLabel, "{YLABEL}", yLabel).Replace(graphTemplate)
	return inject(page, rows), nil
}

// Show writes the page to dir on fs and returns its path. Opening it is left
// to the caller.
func (p *Plotter) Show(fs afero.Fs, dir string) (string, error) {
	page, err := p.Render()
	if err != nil {
		return "", err
	}

	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating %s", dir)
	}
	path := filepath.Join(dir, OutputFile)
	if err := afero.WriteFile(fs, path, []byte(page), 0o644); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	return path, nil
}

func (p *Plotter) isTracking() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tracking
}

func (p *Plotter) label(args []any) string {
	var tracked []any
	for i, a := range args {
		if slices.Contains(p.TrackArgs, i) {
			tracked = append(tracked, a)
		}
	}
	if len(tracked) == 0 {
		return ""
	}
	return runewidth.Truncate(linebreak.Compact(linebreak.Flatten(tracked, nil)), MaxLabelWidth, "…")
}

// inject repeats the row between the row markers once per value pair.
func inject(page string, rows [][2]string) string {
	begin := strings.Index(page, beginRow)
	end := strings.Index(page, endRow)
	if begin < 0 || end < begin {
		return page
	}
	row := page[begin+len(beginRow) : end]

	elems := make([]string, len(rows))
	for i, r := range rows {
		elems[i] = strings.NewReplacer(
			"{XVALUE}", html.EscapeString(r[0]),
			"{YVALUE}", html.EscapeString(r[1]),
		).Replace(row)
	}

	return page[:begin] + strings.Join(elems, "\n") + page[end+len(endRow):]
}
