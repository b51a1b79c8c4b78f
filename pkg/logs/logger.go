package logs

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/sbnative/sbnative/pkg/config"
)

// NewLogger creates a zerolog logger with human readable console output.
func NewLogger(out io.Writer, noColor bool) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}

	return zerolog.New(consoleWriter).
		With().
		Timestamp().
		Logger()
}

// NewLoggerWithFile creates a zerolog logger that writes to both out and a
// log file. The returned closer closes the file.
func NewLoggerWithFile(out io.Writer, fs afero.Fs, logFilePath string) (zerolog.Logger, io.Closer, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	logFile, err := fs.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, errors.Wrapf(err, "opening log file %s", logFilePath)
	}

	// The file gets plain text, the console keeps its colours.
	fileWriter := zerolog.ConsoleWriter{
		Out:        logFile,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}
	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(consoleWriter, fileWriter)).
		With().
		Timestamp().
		Logger()

	return logger, logFile, nil
}

// FromConfig builds the diagnostics logger described by cfg.
func FromConfig(cfg config.LoggingConfig, out io.Writer, fs afero.Fs) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Logger{}, nil, errors.Wrapf(err, "invalid log level '%s'", cfg.Level)
		}
		level = parsed
	}

	if cfg.File == "" {
		return NewLogger(out, false).Level(level), nopCloser{}, nil
	}

	logger, closer, err := NewLoggerWithFile(out, fs, cfg.File)
	if err != nil {
		return zerolog.Logger{}, nil, err
	}
	return logger.Level(level), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
