package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/futureme/internal/catalog"
)

var careersCmd = &cobra.Command{
	Use:       "careers [category]",
	Short:     "List the career archetypes (optionally just one category)",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: categoryNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles := catalog.Profiles()
		if len(args) == 1 {
			p, ok := catalog.Lookup(catalog.Category(strings.ToLower(args[0])))
			if !ok {
				return fmt.Errorf("unknown category %q: must be one of %s", args[0], strings.Join(categoryNames(), ", "))
			}
			profiles = []catalog.Profile{p}
		}

		out := cmd.OutOrStdout()
		for i, p := range profiles {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printProfile(out, p)
		}
		return nil
	},
}

func categoryNames() []string {
	cats := catalog.All()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return names
}

func printProfile(w io.Writer, p catalog.Profile) {
	fmt.Fprintf(w, "%s  (%s)\n", p.DisplayName(), p.ID)
	fmt.Fprintf(w, "  %s\n", p.Subtitle)
	fmt.Fprintln(w, "  "+strings.Repeat("─", 40))

	for rank, c := range p.Careers {
		fmt.Fprintf(w, "  %d. %s %s\n", rank+1, c.Icon, c.Name)
	}
	fmt.Fprintf(w, "  Skills: %s\n", strings.Join(p.Skills, ", "))
	fmt.Fprintf(w, "  %q\n", p.Motivation)
}
