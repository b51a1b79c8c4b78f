package logs

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbnative/sbnative/pkg/config"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	logger.Info().Str("key", "value").Msg("hello")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "key=value")
	assert.Contains(t, out, "INF")
}

func TestNewLoggerWithFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	var buf bytes.Buffer

	logger, closer, err := NewLoggerWithFile(&buf, fs, "/var/log/sbnative.log")
	require.NoError(t, err)

	logger.Warn().Msg("written twice")
	require.NoError(t, closer.Close())

	data, err := afero.ReadFile(fs, "/var/log/sbnative.log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "written twice")
	assert.NotContains(t, string(data), "\x1b[", "the file gets no colour codes")
	assert.Contains(t, buf.String(), "written twice")
}

func TestNewLoggerWithFile_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, _, err := NewLoggerWithFile(&bytes.Buffer{}, fs, "/nope.log")
	assert.Error(t, err)
}

func TestFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		want    zerolog.Level
		wantErr bool
	}{
		{name: "default level", cfg: config.LoggingConfig{}, want: zerolog.InfoLevel},
		{name: "debug", cfg: config.LoggingConfig{Level: "debug"}, want: zerolog.DebugLevel},
		{name: "upper case", cfg: config.LoggingConfig{Level: "WARN"}, want: zerolog.WarnLevel},
		{name: "with file", cfg: config.LoggingConfig{Level: "error", File: "/tmp/x.log"}, want: zerolog.ErrorLevel},
		{name: "invalid", cfg: config.LoggingConfig{Level: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, closer, err := FromConfig(tt.cfg, &bytes.Buffer{}, afero.NewMemMapFs())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer closer.Close()
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}
