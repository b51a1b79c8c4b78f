package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sbnative/sbnative/pkg/linebreak"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Format.IndentSize != 4 {
		t.Errorf("expected indent size 4, got %d", cfg.Format.IndentSize)
	}

	if cfg.Format.MaxWidthFraction != 0.9 {
		t.Errorf("expected max width fraction 0.9, got %v", cfg.Format.MaxWidthFraction)
	}

	if cfg.Log.Stacking {
		t.Error("expected terminal stacking to be off by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}

	if err := validate(cfg); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	cfg, err := Load("", afero.NewMemMapFs(), zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.Format.IndentSize != 4 {
		t.Errorf("expected default indent size 4, got %d", cfg.Format.IndentSize)
	}
}

func TestLoadWithConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	configPath := "/etc/sbnative/sbnative.yaml"

	configContent := `
format:
  indent_size: 2
  max_width_fraction: 0.5
  pairs: ["()", "<>"]
log:
  stacking: true
logging:
  level: debug
`
	require.NoError(t, afero.WriteFile(fs, configPath, []byte(configContent), 0o644))

	cfg, err := Load(configPath, fs, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Format.IndentSize)
	assert.Equal(t, 0.5, cfg.Format.MaxWidthFraction)
	assert.Equal(t, []string{"()", "<>"}, cfg.Format.Pairs)
	assert.True(t, cfg.Log.Stacking)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// untouched values keep their defaults
	assert.Equal(t, "solarized-dark", cfg.Log.HighlightStyle)
	assert.False(t, cfg.Log.Color)
}

func TestLoadFromSearchPath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.Join(wd, "sbnative.yaml"), []byte("format:\n  indent_size: 8\n"), 0o644))

	cfg, err := Load("", fs, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Format.IndentSize)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load("/nope/sbnative.yaml", afero.NewMemMapFs(), zerolog.Nop())
	assert.Error(t, err)
}

func TestLoadInvalidFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg.yaml", []byte("format:\n  max_width_fraction: 1.5\n"), 0o644))

	_, err := Load("/cfg.yaml", fs, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_width_fraction")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SBNATIVE_FORMAT_INDENT_SIZE", "3")
	t.Setenv("SBNATIVE_LOG_STACKING", "true")

	cfg, err := Load("", afero.NewMemMapFs(), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Format.IndentSize)
	assert.True(t, cfg.Log.Stacking)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "zero indent",
			modify: func(c *Config) {
				c.Format.IndentSize = 0
			},
			wantErr: true,
		},
		{
			name: "fraction of zero",
			modify: func(c *Config) {
				c.Format.MaxWidthFraction = 0
			},
			wantErr: true,
		},
		{
			name: "fraction of one is allowed",
			modify: func(c *Config) {
				c.Format.MaxWidthFraction = 1
			},
			wantErr: false,
		},
		{
			name: "no pairs",
			modify: func(c *Config) {
				c.Format.Pairs = nil
			},
			wantErr: true,
		},
		{
			name: "malformed pair",
			modify: func(c *Config) {
				c.Format.Pairs = []string{"(", "[]"}
			},
			wantErr: true,
		},
		{
			name: "pair conflict",
			modify: func(c *Config) {
				c.Format.Pairs = []string{"()", "(]"}
			},
			wantErr: true,
		},
		{
			name: "unknown highlight style",
			modify: func(c *Config) {
				c.Log.HighlightStyle = "no-such-style"
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			modify: func(c *Config) {
				c.Logging.Level = "invalid"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatOptions(t *testing.T) {
	opts := FormatConfig{IndentSize: 2, Pairs: []string{"<>"}}.Options()
	assert.Equal(t, 2, opts.IndentUnit)
	assert.Equal(t, []linebreak.Pair{{Open: '<', Close: '>'}}, opts.Pairs)

	opts = FormatConfig{}.Options()
	assert.Equal(t, linebreak.DefaultOptions(), opts)
}

func TestWriteDefault(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/home/me/.config/sbnative/sbnative.yaml"

	written, err := WriteDefault(fs, path)
	require.NoError(t, err)
	assert.True(t, written)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	var got Config
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, *DefaultConfig(), got)

	// an existing file is left alone
	require.NoError(t, afero.WriteFile(fs, path, []byte("format:\n  indent_size: 2\n"), 0o644))
	written, err = WriteDefault(fs, path)
	require.NoError(t, err)
	assert.False(t, written)

	cfg, err := Load(path, fs, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Format.IndentSize)
}
