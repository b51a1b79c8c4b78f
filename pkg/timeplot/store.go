package timeplot

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Call is one timed invocation of a tracked function.
type Call struct {
	Seq      uint64
	Args     []any
	Duration time.Duration
}

// Millis is the duration of the call in milliseconds.
func (c Call) Millis() float64 {
	return float64(c.Duration) / float64(time.Millisecond)
}

// Store holds timed calls in memory with thread-safe access, in call order.
type Store struct {
	mu     sync.RWMutex
	calls  map[uint64]Call
	seqs   []uint64
	next   uint64
	logger zerolog.Logger
}

// NewStore creates a new in-memory store
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		calls:  make(map[uint64]Call),
		seqs:   make([]uint64, 0),
		next:   1,
		logger: logger,
	}
}

// Add records a call and returns it with its sequence number set.
func (s *Store) Add(args []any, d time.Duration) Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	call := Call{Seq: s.next, Args: append([]any(nil), args...), Duration: d}
	s.next++

	s.calls[call.Seq] = call
	s.seqs = append(s.seqs, call.Seq)
	s.logger.Debug().Uint64("seq", call.Seq).Dur("duration", d).Int("totalCalls", len(s.calls)).Msg("Call recorded")
	return call
}

// GetAll returns all calls in call order
func (s *Store) GetAll() []Call {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Call, 0, len(s.calls))
	for _, seq := range s.seqs {
		if call, ok := s.calls[seq]; ok {
			result = append(result, call)
		}
	}
	return result
}

// GetLatest returns the most recent n calls
func (s *Store) GetLatest(n int) []Call {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 {
		return []Call{}
	}
	start := max(len(s.seqs)-n, 0)

	result := make([]Call, 0, len(s.seqs)-start)
	for _, seq := range s.seqs[start:] {
		if call, ok := s.calls[seq]; ok {
			result = append(result, call)
		}
	}
	return result
}

// GetBySeq returns a call by its sequence number
func (s *Store) GetBySeq(seq uint64) *Call {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if call, ok := s.calls[seq]; ok {
		result := call
		return &result
	}
	return nil
}

// Count returns the number of recorded calls
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seqs)
}

// Clear removes all recorded calls. Sequence numbers keep counting.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = make(map[uint64]Call)
	s.seqs = make([]uint64, 0)
}
