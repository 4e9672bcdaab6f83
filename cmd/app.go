package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/futureme/internal/app"
	"github.com/abhisek/futureme/internal/logger"
	"github.com/abhisek/futureme/internal/sound"
)

// runApp loads the configuration, builds the logger and the tone player,
// and launches the TUI.
func runApp(cmd *cobra.Command, opts app.Options) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, cleanup, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer cleanup()

	log.Info("starting",
		zap.String("version", currentVersion()),
		zap.Bool("mute", cfg.Audio.Mute),
		zap.Float64("volume", cfg.Audio.Volume),
		zap.Bool("skip_welcome", opts.SkipWelcome),
	)

	opts.Log = log
	opts.Tones = sound.NewPlayer(cfg.Audio, log)

	if err := app.Run(cmd.Context(), opts); err != nil {
		log.Error("terminal UI failed", zap.Error(err))
		return err
	}
	log.Info("exited")
	return nil
}
