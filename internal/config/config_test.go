package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewViper())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.Audio.Mute)
	assert.Equal(t, 1.0, cfg.Audio.Volume)
	assert.Equal(t, 44100, cfg.Audio.SampleRate)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FUTUREME_MUTE", "true")
	t.Setenv("FUTUREME_VOLUME", "0.25")
	t.Setenv("FUTUREME_LOG_FILE", "/tmp/futureme.log")
	t.Setenv("FUTUREME_LOG_LEVEL", "DEBUG")

	cfg, err := Load(NewViper())
	require.NoError(t, err)
	assert.True(t, cfg.Audio.Mute)
	assert.Equal(t, 0.25, cfg.Audio.Volume)
	assert.Equal(t, "/tmp/futureme.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestReadFile_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("volume: 0.5\nsample_rate: 22050\nlog:\n  level: warn\n"), 0o644))

	v := NewViper()
	require.NoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Audio.Volume)
	assert.Equal(t, 22050, cfg.Audio.SampleRate)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestReadFile_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("volume: 0.5\n"), 0o644))
	t.Setenv("FUTUREME_VOLUME", "0.75")

	v := NewViper()
	require.NoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 0.75, cfg.Audio.Volume)
}

func TestReadFile_MissingExplicitPath(t *testing.T) {
	err := ReadFile(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestReadFile_MissingDefaultIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	assert.NoError(t, ReadFile(NewViper(), ""))
}

func TestDefaultPath_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "futureme", "config.yaml"), p)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"volume too high", func(c *Config) { c.Audio.Volume = 1.5 }, "volume 1.50 out of range"},
		{"negative volume", func(c *Config) { c.Audio.Volume = -0.1 }, "volume -0.10 out of range"},
		{"sample rate too low", func(c *Config) { c.Audio.SampleRate = 100 }, "sample_rate 100 out of range"},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }, `unknown log level "chatty"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("FUTUREME_VOLUME", "3")
	_, err := Load(NewViper())
	assert.Error(t, err)
}
