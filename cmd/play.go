package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/futureme/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the quiz on the first question, skipping the splash",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if plain, _ := cmd.Flags().GetBool("no-tui"); plain {
			return runPlain(cmd)
		}
		return runApp(cmd, app.Options{SkipWelcome: true})
	},
}

func init() {
	playCmd.Flags().Bool("no-tui", false, "Ask the questions line by line instead of opening the full-screen UI")
}
