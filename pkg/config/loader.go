package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name without extension.
const FileName = "sbnative"

// Load loads configuration from file with the following priority:
// 1. Explicit path via configPath parameter
// 2. ./sbnative.yaml (current directory)
// 3. ./config/sbnative.yaml
// 4. <user config dir>/sbnative/sbnative.yaml
// Falls back to defaults if no config file is found. A nil fs means the OS
// filesystem.
func Load(configPath string, fs afero.Fs, logger zerolog.Logger) (*Config, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	v := viper.New()
	v.SetFs(fs)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, FileName))
		}
	}

	// Environment variables use the SBNATIVE_ prefix and underscores
	// Example: SBNATIVE_FORMAT_INDENT_SIZE=2, SBNATIVE_LOG_STACKING=true
	v.SetEnvPrefix("SBNATIVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults are registered with viper so env overrides also apply to
	// keys missing from the file.
	setDefaults(v, DefaultConfig())

	configFileUsed := ""
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && configPath == "" {
			logger.Debug().
				Str("searchPaths", "., ./config, <user config dir>/sbnative").
				Msg("No config file found in search paths, using defaults")
		} else {
			return nil, errors.Wrap(err, "error reading config file")
		}
	} else {
		configFileUsed = v.ConfigFileUsed()
		logger.Debug().Str("configFile", configFileUsed).Msg("Config file loaded")
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling config")
	}

	logger.Debug().
		Bool("configFileFound", configFileUsed != "").
		Str("configFile", configFileUsed).
		Interface("format", cfg.Format).
		Interface("log", cfg.Log).
		Interface("logging", cfg.Logging).
		Msg("Complete effective configuration")

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("format.indent_size", cfg.Format.IndentSize)
	v.SetDefault("format.max_width_fraction", cfg.Format.MaxWidthFraction)
	v.SetDefault("format.pairs", cfg.Format.Pairs)
	v.SetDefault("log.stacking", cfg.Log.Stacking)
	v.SetDefault("log.color", cfg.Log.Color)
	v.SetDefault("log.highlight_style", cfg.Log.HighlightStyle)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
}

// DefaultPath returns <user config dir>/sbnative/sbnative.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locating user config dir")
	}
	return filepath.Join(dir, FileName, FileName+".yaml"), nil
}

// WriteDefault writes the default configuration as YAML to path unless a file
// already exists there. It reports whether a file was written.
func WriteDefault(fs afero.Fs, path string) (bool, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return false, errors.Wrapf(err, "checking %s", path)
	}
	if exists {
		return false, nil
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return false, errors.Wrap(err, "failed to marshal config")
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, errors.Wrapf(err, "creating %s", filepath.Dir(path))
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return false, errors.Wrap(err, "failed to write config")
	}
	return true, nil
}
