package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/futureme/internal/app"
	"github.com/abhisek/futureme/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "futureme",
	Short: "Career discovery quiz for kids",
	Long:  "Future Me: answer six quick questions in the terminal and meet the career archetype that fits you best.",
	// main prints the error once.
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.Options{})
	},
}

// ExecuteContext runs the command tree; ctx is cancelled on interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	addConfigFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(careersCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(soundCmd)
	rootCmd.AddCommand(versionCmd)
}

// addConfigFlags registers the flags that override configuration keys.
func addConfigFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Path to a YAML config file (default $XDG_CONFIG_HOME/futureme/config.yaml)")
	flags.Bool("mute", false, "Disable sound effects (overrides FUTUREME_MUTE)")
	flags.Float64("volume", 1.0, "Sound volume between 0 and 1 (overrides FUTUREME_VOLUME)")
	flags.String("log-file", "", "Append debug logs to this file (overrides FUTUREME_LOG_FILE)")
	flags.String("log-level", "info", "Log level: debug, info, warn or error (overrides FUTUREME_LOG_LEVEL)")
}

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"mute":      config.KeyMute,
	"volume":    config.KeyVolume,
	"log-file":  config.KeyLogFile,
	"log-level": config.KeyLogLevel,
}

// loadConfig resolves the configuration for cmd: flags win over the
// environment, which wins over the config file and the defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := config.NewViper()
	if err := bindFlags(v, cmd); err != nil {
		return config.Config{}, err
	}

	path, _ := cmd.Flags().GetString("config")
	if err := config.ReadFile(v, path); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}
