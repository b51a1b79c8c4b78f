package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/rs/zerolog"

	"github.com/sbnative/sbnative/pkg/config"
	"github.com/sbnative/sbnative/pkg/highlight"
	"github.com/sbnative/sbnative/pkg/linebreak"
	"github.com/sbnative/sbnative/pkg/repr"
	"github.com/sbnative/sbnative/pkg/term"
)

const arrow = " --> "

var (
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Session prints debug records and holds the stacking toggle and the last
// emitted record. The zero value prints to stdout using the live terminal
// width.
type Session struct {
	Out       io.Writer
	Width     func() int
	Format    linebreak.Options
	Fraction  float64
	Color     bool
	Highlight string          // chroma style used when Color is set
	Mirror    *zerolog.Logger // optional structured copy of every record

	mu       sync.Mutex
	stacking bool
	last     *record
	held     string // full text of the last record while stacking
	count    int
}

// Entry is one call to the logger.
type Entry struct {
	Info    any
	HasInfo bool
	End     string
	Args    []any
	Named   linebreak.Named
}

type record struct {
	label    string
	end      string
	parts    []string
	location string
}

func (r record) equal(o record) bool {
	return r.label == o.label && r.end == o.end && r.location == o.location && slices.Equal(r.parts, o.parts)
}

// NewSession creates a session configured by cfg that writes to out.
func NewSession(cfg *config.Config, out io.Writer) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Session{
		Out:       out,
		Format:    cfg.Format.Options(),
		Fraction:  cfg.Format.MaxWidthFraction,
		Color:     cfg.Log.Color,
		Highlight: cfg.Log.HighlightStyle,
		stacking:  cfg.Log.Stacking,
	}
}

// Log prints args and the file and line of the call.
func (s *Session) Log(args ...any) {
	s.Emit(1, Entry{Args: args})
}

// LogKV prints positional and named arguments.
func (s *Session) LogKV(args []any, named linebreak.Named) {
	s.Emit(1, Entry{Args: args, Named: named})
}

// ILog prints args labelled with info.
func (s *Session) ILog(info any, args ...any) {
	s.Emit(1, Entry{Info: info, HasInfo: true, Args: args})
}

// ILogKV prints positional and named arguments labelled with info, followed
// by end.
func (s *Session) ILogKV(info any, end string, args []any, named linebreak.Named) {
	s.Emit(1, Entry{Info: info, HasInfo: true, End: end, Args: args, Named: named})
}

// Emit prints e. skip is the number of stack frames between the caller of
// Emit and the call site that should be reported, so wrappers pass 1.
func (s *Session) Emit(skip int, e Entry) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		file, line = "???", 0
	}
	rec := record{
		label:    label(e),
		end:      e.End,
		parts:    linebreak.FlattenMarked(wrapArgs(e.Args), wrapNamed(e.Named)),
		location: filepath.ToSlash(file) + ":" + strconv.Itoa(line),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.mirror(rec)
	out := s.out()

	if s.stacking {
		if s.last != nil && s.last.equal(rec) {
			s.count++
			fmt.Fprint(out, s.statusLine(s.held, s.count)+"\r")
			return
		}
		s.flushHeld(false)
	}

	text := s.render(rec)

	if s.stacking {
		s.last = &rec
		s.held = text
		s.count = 1
		fmt.Fprint(out, s.statusLine(text, 1)+"\r")
		return
	}

	fmt.Fprintln(out, text)
}

// ToggleStacking switches terminal stacking and returns the new state.
// While stacking is on, a record identical to the previous one (same
// arguments, label and call site) is not printed again; the previous line is
// rewritten with a repeat counter instead.
func (s *Session) ToggleStacking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stacking = !s.stacking
	if !s.stacking {
		s.flushHeld(true)
	}
	return s.stacking
}

// Stacking reports whether terminal stacking is on.
func (s *Session) Stacking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stacking
}

// Close ends the status line left behind by stacking.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stacking {
		_, err := fmt.Fprintln(s.out())
		return err
	}
	return nil
}

// flushHeld prints the held record in full. The repeat counter is added when
// the record repeated or always is set.
func (s *Session) flushHeld(always bool) {
	if s.last == nil {
		return
	}
	text := s.held
	if always || s.count > 1 {
		text += fmt.Sprintf(" [%dx]", s.count)
	}
	fmt.Fprintln(s.out(), text)
	s.last = nil
	s.held = ""
	s.count = 0
}

// statusLine is the last line of text with the repeat counter, cut to fit
// the terminal so the carriage return rewrites it in place.
func (s *Session) statusLine(text string, count int) string {
	last := text[strings.LastIndexByte(text, '\n')+1:]
	suffix := ""
	if count > 1 {
		suffix = fmt.Sprintf(" [%dx]", count)
	}
	room := s.width() - 1 - linebreak.Width(suffix)
	if room < 0 {
		room = 0
	}
	if linebreak.Width(last) > room {
		last = truncate.String(last, uint(room))
	}
	return last + suffix
}

func (s *Session) render(rec record) string {
	label, arr := rec.label, arrow
	args := linebreak.Compact(rec.parts)

	m := linebreak.Measure{
		Args:     linebreak.Width(args),
		Location: linebreak.Width(rec.location),
		Arrow:    linebreak.Width(arr),
		Label:    linebreak.Width(label),
		End:      linebreak.Width(rec.end),
	}
	if linebreak.Overflows(m, s.width(), s.fraction()) {
		label += "\n"
		arr = "\n" + arr[1:]
		args = linebreak.Expand(rec.parts, s.Format)
	}

	location := rec.location
	if s.Color {
		label = labelStyle.Render(strings.TrimRight(label, " \n")) + label[len(strings.TrimRight(label, " \n")):]
		args = highlight.Args(args, s.Highlight, 0)
		location = locationStyle.Render(location)
	}

	return label + args + rec.end + arr + location
}

func (s *Session) mirror(rec record) {
	if s.Mirror == nil {
		return
	}
	plain := make([]string, len(rec.parts))
	for i, p := range rec.parts {
		plain[i] = linebreak.Plain(p)
	}
	s.Mirror.Debug().
		Str("location", rec.location).
		Strs("args", plain).
		Str("end", rec.end).
		Msg(strings.TrimSpace(rec.label))
}

func (s *Session) out() io.Writer {
	if s.Out == nil {
		return os.Stdout
	}
	return s.Out
}

func (s *Session) width() int {
	if s.Width == nil {
		return term.Width()
	}
	return s.Width()
}

func (s *Session) fraction() float64 {
	if s.Fraction <= 0 || s.Fraction > 1 {
		return linebreak.DefaultFraction
	}
	return s.Fraction
}

func label(e Entry) string {
	if !e.HasInfo {
		return "LOG: "
	}
	return "LOG (" + repr.Quote(e.Info) + "): "
}

func wrapArgs(args []any) []any {
	wrapped := make([]any, len(args))
	for i, a := range args {
		wrapped[i] = repr.Deep(a)
	}
	return wrapped
}

func wrapNamed(named linebreak.Named) linebreak.Named {
	if len(named) == 0 {
		return nil
	}
	wrapped := make(linebreak.Named, len(named))
	for i, kv := range named {
		wrapped[i] = linebreak.KV{Name: kv.Name, Value: repr.Deep(kv.Value)}
	}
	return wrapped
}
