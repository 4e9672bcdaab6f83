package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/futureme/internal/catalog"
	"github.com/abhisek/futureme/internal/logger"
	"github.com/abhisek/futureme/internal/quiz"
	"github.com/abhisek/futureme/internal/sound"
	"github.com/abhisek/futureme/internal/ui/components"
	"github.com/abhisek/futureme/internal/ui/keys"
)

// errInputClosed is returned when stdin ends before the last answer.
var errInputClosed = errors.New("input closed before the quiz finished")

// runPlain plays the quiz line by line on stdin and stdout, for terminals
// that cannot host the full-screen UI.
func runPlain(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, cleanup, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer cleanup()
	log.Info("starting plain quiz", zap.String("version", currentVersion()))

	ctrl := quiz.NewController(catalog.Questions(), sound.NewPlayer(cfg.Audio, log), log.Named("quiz"))
	return playPlain(ctrl, cmd.InOrStdin(), cmd.OutOrStdout())
}

// playPlain starts ctrl and reads one answer per line: a letter or digit
// picks an option, "p" goes back, and an empty line keeps the previous
// answer.
func playPlain(ctrl *quiz.Controller, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	ctrl.Start()

	for ctrl.State().Phase == quiz.PhaseInProgress {
		st := ctrl.State()
		printQuestion(out, st, ctrl.Question())

		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			ctrl.Reset()
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			return errInputClosed
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))

		switch {
		case answer == "p":
			if !ctrl.Retreat() {
				fmt.Fprintln(out, "(already on the first question)")
			}
		case answer == "" && st.CanAdvance:
			ctrl.Advance()
		default:
			i, ok := keys.OptionIndex(answer)
			if !ok || !ctrl.Select(i) {
				fmt.Fprintf(out, "(pick one of A-%s)\n", components.Letter(len(ctrl.Question().Options)-1))
				continue
			}
			ctrl.Advance()
		}
		fmt.Fprintln(out)
	}

	res, ok := ctrl.Result()
	if !ok {
		return errors.New("quiz ended without a result")
	}
	printResult(out, res)
	return nil
}

func printQuestion(out io.Writer, st quiz.State, q catalog.Question) {
	fmt.Fprintf(out, "── Question %d/%d ──\n", st.Index+1, st.Total)
	fmt.Fprintln(out, q.Prompt)
	for j, opt := range q.Options {
		mark := " "
		if j == st.Selected {
			mark = "✓"
		}
		fmt.Fprintf(out, " %s %s) %s %s\n", mark, components.Letter(j), opt.Icon, opt.Label)
	}

	hint := "A-E"
	if st.CanRetreat {
		hint += ", p = back"
	}
	if st.CanAdvance {
		hint += ", Enter = keep"
	}
	fmt.Fprintf(out, "\nYour answer (%s): ", hint)
}

func printResult(out io.Writer, res quiz.Result) {
	top := res.TopProfile
	fmt.Fprintf(out, "── Your future self: %s ──\n", top.DisplayName())
	fmt.Fprintln(out, top.Subtitle)
	fmt.Fprintln(out)

	for _, cat := range catalog.All() {
		fmt.Fprintf(out, "  %-14s %3d%%\n", catalog.MustLookup(cat).Label, res.Percentages[cat])
	}
	fmt.Fprintln(out)

	var top3, also []string
	for _, c := range res.Careers {
		if c.Highlighted {
			top3 = append(top3, c.Icon+" "+c.Name)
		} else {
			also = append(also, c.Icon+" "+c.Name)
		}
	}
	fmt.Fprintf(out, "Careers: %s\n", strings.Join(top3, ", "))
	if len(also) > 0 {
		fmt.Fprintf(out, "Also:    %s\n", strings.Join(also, ", "))
	}
	fmt.Fprintf(out, "Skills:  %s\n\n", strings.Join(top.Skills, ", "))
	fmt.Fprintln(out, top.Motivation)
}
