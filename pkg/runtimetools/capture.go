package runtimetools

import (
	"io"
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// CaptureOutput runs fn with a writer backed by a temporary file on fs and
// returns everything fn wrote along with its result. The file is removed
// afterwards.
func CaptureOutput[T any](fs afero.Fs, fn func(w io.Writer) (T, error)) (string, T, error) {
	var zero T

	f, err := afero.TempFile(fs, "", "sbnative-capture-*")
	if err != nil {
		return "", zero, errors.Wrap(err, "creating capture file")
	}
	name := f.Name()
	defer func() { _ = fs.Remove(name) }()

	ret, fnErr := fn(f)
	if err := f.Close(); err != nil {
		return "", zero, errors.Wrap(err, "closing capture file")
	}

	data, err := afero.ReadFile(fs, name)
	if err != nil {
		return "", zero, errors.Wrap(err, "reading capture file")
	}
	return string(data), ret, fnErr
}

// SafeIter iterates over a snapshot of s, so the loop body may append to or
// remove from s without disturbing the iteration.
func SafeIter[T any](s []T) iter.Seq2[int, T] {
	snapshot := slices.Clone(s)
	return func(yield func(int, T) bool) {
		for i, v := range snapshot {
			if !yield(i, v) {
				return
			}
		}
	}
}
