// Package debug prints arguments together with the file and line they were
// logged from, opening long argument lists over several indented lines.
package debug

import (
	"sync"
	"time"

	"github.com/sbnative/sbnative/pkg/linebreak"
)

var (
	stdMu sync.RWMutex
	std   = &Session{}
)

// Default returns the session used by the package level functions.
func Default() *Session {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

// SetDefault replaces the session used by the package level functions.
func SetDefault(s *Session) {
	stdMu.Lock()
	defer stdMu.Unlock()
	std = s
}

// Log prints args and the file and line of the call.
func Log(args ...any) {
	Default().Emit(1, Entry{Args: args})
}

// LogKV prints positional and named arguments.
func LogKV(args []any, named linebreak.Named) {
	Default().Emit(1, Entry{Args: args, Named: named})
}

// ILog prints args labelled with info.
func ILog(info any, args ...any) {
	Default().Emit(1, Entry{Info: info, HasInfo: true, Args: args})
}

// ILogKV prints positional and named arguments labelled with info, followed
// by end.
func ILogKV(info any, end string, args []any, named linebreak.Named) {
	Default().Emit(1, Entry{Info: info, HasInfo: true, End: end, Args: args, Named: named})
}

// ToggleStacking switches terminal stacking of the default session.
func ToggleStacking() bool {
	return Default().ToggleStacking()
}

// Timer runs fn and logs how long it took in seconds. A nil session means
// the default one.
func Timer[T any](s *Session, name string, fn func() T) T {
	if s == nil {
		s = Default()
	}

	begin := time.Now()
	ret := fn()
	elapsed := time.Since(begin).Seconds()

	s.Emit(1, Entry{
		Info:    "Executing `" + name + "` took",
		HasInfo: true,
		End:     " seconds",
		Args:    []any{elapsed},
	})
	return ret
}
