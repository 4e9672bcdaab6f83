package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/futureme/internal/catalog"
	"github.com/abhisek/futureme/internal/ui/components"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the question bank and the category each answer scores",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		questions := catalog.Questions()

		for i, q := range questions {
			fmt.Fprintf(out, "Q%d. %s\n", i+1, q.Prompt)
			for j, opt := range q.Options {
				fmt.Fprintf(out, "  %s  %-44s  %s\n",
					components.Letter(j), opt.Icon+" "+opt.Label, opt.Category)
			}
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%d questions\n", len(questions))
	},
}
