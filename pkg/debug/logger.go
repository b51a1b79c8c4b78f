package debug

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// MirrorFile is the default file for structured copies of debug records.
const MirrorFile = "sbnative-debug.log"

// NewMirror opens path on fs for appending and returns a JSON logger writing
// to it, for use as Session.Mirror.
func NewMirror(fs afero.Fs, path string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		path = MirrorFile
	}
	file, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, errors.Wrapf(err, "opening debug mirror %s", path)
	}

	return zerolog.New(file).With().Timestamp().Logger().Level(zerolog.DebugLevel), file, nil
}
