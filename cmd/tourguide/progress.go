package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/tourguide/internal/domain/tour"
)

var progressCmd = &cobra.Command{
	Use:   "progress [tour-id]",
	Short: "Show or reset tour progress",
	Long: `Progress lists every recorded tour with its runs, seen steps and outcome.

With --reset the record for the given tour (or every tour) is cleared, so
the next "tourguide run" plays it again.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgress,
}

var progressReset bool

func init() {
	rootCmd.AddCommand(progressCmd)

	progressCmd.Flags().BoolVar(&progressReset, "reset", false, "Clear recorded progress")
}

func runProgress(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	tg := newApp(out)

	id := ""
	if len(args) > 0 {
		id = args[0]
	}

	if progressReset {
		if err := tg.ResetProgress(id); err != nil {
			return err
		}
		if id == "" {
			_, _ = fmt.Fprintln(out, "✓ Progress cleared")
		} else {
			_, _ = fmt.Fprintf(out, "✓ Progress for %s cleared\n", id)
		}
		return nil
	}

	p, err := tg.Progress()
	if err != nil {
		return err
	}
	if id != "" {
		tp := p.Get(id)
		if tp == nil {
			_, _ = fmt.Fprintf(out, "No progress recorded for %s\n", id)
			return nil
		}
		p.Tours = map[string]*tour.TourProgress{id: tp}
	}
	tg.PrintProgress(p)
	return nil
}
