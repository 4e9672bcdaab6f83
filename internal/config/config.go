package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/abhisek/futureme/internal/logger"
	"github.com/abhisek/futureme/internal/sound"
)

// EnvPrefix prefixes every environment override, e.g. FUTUREME_MUTE.
const EnvPrefix = "FUTUREME"

// Keys shared by viper, flags and environment variables.
const (
	KeyMute       = "mute"
	KeyVolume     = "volume"
	KeySampleRate = "sample_rate"
	KeyLogFile    = "log.file"
	KeyLogLevel   = "log.level"
)

const (
	minSampleRate = 8000
	maxSampleRate = 192000
)

// Config holds all application configuration.
type Config struct {
	Audio sound.Config
	Log   logger.Config
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Audio: sound.DefaultConfig(),
		Log:   logger.DefaultConfig(),
	}
}

// NewViper returns a viper instance carrying the defaults and bound to
// FUTUREME_* environment variables ("log.file" reads FUTUREME_LOG_FILE).
func NewViper() *viper.Viper {
	d := Default()
	v := viper.New()
	v.SetDefault(KeyMute, d.Audio.Mute)
	v.SetDefault(KeyVolume, d.Audio.Volume)
	v.SetDefault(KeySampleRate, d.Audio.SampleRate)
	v.SetDefault(KeyLogFile, d.Log.File)
	v.SetDefault(KeyLogLevel, d.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// DefaultPath returns $XDG_CONFIG_HOME/futureme/config.yaml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "futureme", "config.yaml"), nil
}

// ReadFile merges a YAML config file into v. An explicit path must exist;
// with an empty path the default location is tried and may be absent.
func ReadFile(v *viper.Viper, path string) error {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load resolves the configuration from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Audio: sound.Config{
			Mute:       v.GetBool(KeyMute),
			Volume:     v.GetFloat64(KeyVolume),
			SampleRate: v.GetInt(KeySampleRate),
		},
		Log: logger.Config{
			File:  v.GetString(KeyLogFile),
			Level: strings.ToLower(v.GetString(KeyLogLevel)),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("volume %.2f out of range [0, 1]", c.Audio.Volume))
	}
	if c.Audio.SampleRate < minSampleRate || c.Audio.SampleRate > maxSampleRate {
		errs = append(errs, fmt.Errorf("sample_rate %d out of range [%d, %d]", c.Audio.SampleRate, minSampleRate, maxSampleRate))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
