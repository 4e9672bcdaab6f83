package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/futureme/internal/logger"
	"github.com/abhisek/futureme/internal/sound"
)

var soundCmd = &cobra.Command{
	Use:       "sound <pop|whoosh|chime>",
	Short:     "Play one sound effect and wait for it to finish",
	Args:      cobra.ExactArgs(1),
	ValidArgs: toneNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		tone, err := sound.ParseTone(args[0])
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Audio.Mute {
			fmt.Fprintln(cmd.ErrOrStderr(), "sound is muted; nothing to play")
			return nil
		}

		log, cleanup, err := logger.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer cleanup()

		player := sound.NewPlayer(cfg.Audio, log)
		if err := player.PlayAndWait(cmd.Context(), tone); err != nil {
			return fmt.Errorf("play %s: %w", tone, err)
		}
		return nil
	},
}

func toneNames() []string {
	tones := sound.AllTones()
	names := make([]string, len(tones))
	for i, t := range tones {
		names[i] = t.String()
	}
	return names
}

func init() {
	soundCmd.Long = "Synthesizes and plays one of the quiz sound effects: " +
		strings.Join(toneNames(), ", ") + "."
}
