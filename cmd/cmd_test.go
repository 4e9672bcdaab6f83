package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime/debug"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/futureme/internal/catalog"
	"github.com/abhisek/futureme/internal/config"
)

// execute runs the root command with args, isolated from any user config.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// configFor parses args into a standalone command and loads its config.
func configFor(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()

	var cfg config.Config
	var loadErr error
	c := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, loadErr = loadConfig(cmd)
			return nil
		},
	}
	addConfigFlags(c.Flags())
	c.SetArgs(append([]string{}, args...))
	require.NoError(t, c.Execute())
	return cfg, loadErr
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "futureme "+currentVersion()+"\n", out)
}

func TestResolveVersion(t *testing.T) {
	installed := &debug.BuildInfo{Main: debug.Module{Version: "v1.2.0"}}

	assert.Equal(t, "v1.3.0", resolveVersion("v1.3.0", installed, true))
	assert.Equal(t, "v1.2.0", resolveVersion("(devel)", installed, true))
	assert.Equal(t, "(devel)", resolveVersion("(devel)", &debug.BuildInfo{}, true))
	assert.Equal(t, "(devel)", resolveVersion("(devel)", nil, false))
}

func TestCareersListsEveryProfile(t *testing.T) {
	out, _, err := execute(t, "careers")
	require.NoError(t, err)

	for _, p := range catalog.Profiles() {
		assert.Contains(t, out, p.DisplayName())
		for _, c := range p.Careers {
			assert.Contains(t, out, c.Name)
		}
	}
}

func TestCareersSingleCategory(t *testing.T) {
	out, _, err := execute(t, "careers", "Creative")
	require.NoError(t, err)

	creative := catalog.MustLookup(catalog.Creative)
	analytical := catalog.MustLookup(catalog.Analytical)
	assert.Contains(t, out, creative.DisplayName())
	assert.Contains(t, out, "1. "+creative.Careers[0].Icon+" "+creative.Careers[0].Name)
	assert.NotContains(t, out, analytical.DisplayName())
}

func TestCareersUnknownCategory(t *testing.T) {
	_, _, err := execute(t, "careers", "wizard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "wizard"`)
}

func TestQuestionsPrintsBank(t *testing.T) {
	out, _, err := execute(t, "questions")
	require.NoError(t, err)

	assert.Contains(t, out, "Q1. It's a holiday! What do you do first?")
	assert.Contains(t, out, "Solve a riddle book")
	assert.Contains(t, out, "6 questions\n")
}

func TestSoundUnknownTone(t *testing.T) {
	_, _, err := execute(t, "sound", "boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown tone "boom"`)
}

func TestSoundMutedSkipsDevice(t *testing.T) {
	t.Setenv("FUTUREME_MUTE", "true")

	_, stderr, err := execute(t, "sound", "chime")
	require.NoError(t, err)
	assert.Contains(t, stderr, "sound is muted")
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := configFor(t)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfigFlagBeatsEnvAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("volume: 0.2\nmute: true\nlog:\n  level: warn\n"), 0o644))
	t.Setenv("FUTUREME_VOLUME", "0.4")

	cfg, err := configFor(t, "--config", path, "--volume", "0.7")
	require.NoError(t, err)

	assert.InDelta(t, 0.7, cfg.Audio.Volume, 1e-9)
	assert.True(t, cfg.Audio.Mute, "file value survives an unchanged flag")
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfigRejectsBadFlag(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := configFor(t, "--volume", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volume 3.00 out of range")
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := configFor(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
