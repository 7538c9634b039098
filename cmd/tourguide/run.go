package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/tourguide/internal/adapters/filewatch"
	"github.com/felixgeelhaar/tourguide/internal/app"
	"github.com/felixgeelhaar/tourguide/internal/domain/config"
	"github.com/felixgeelhaar/tourguide/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Play a tour in the terminal",
	Long: `Run plays a tour over the terminal layout described in the definition.

Dialog targets name layout regions ("#sidebar" points at the region with
id "sidebar"). Tours that were completed before are skipped unless --force
is given.

Keys:
  →/enter next    ← previous    1-9 jump    s skip    esc close
  f finish        r restart     ? help      q quit

Examples:
  tourguide run
  tourguide run docs/onboarding.yaml --watch
  tourguide run --force --step 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

var (
	runWatch     bool
	runForce     bool
	runStep      int
	runStay      bool
	runAltScreen bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "Reload the tour when the definition changes")
	runCmd.Flags().BoolVarP(&runForce, "force", "f", false, "Run a tour that was already completed")
	runCmd.Flags().IntVar(&runStep, "step", -1, "Open at this step instead of the definition's initial step")
	runCmd.Flags().BoolVar(&runStay, "stay", false, "Keep the screen open after the tour ends")
	runCmd.Flags().BoolVar(&runAltScreen, "alt-screen", true, "Use the terminal's alternate screen")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := definitionPath(args)
	out := cmd.OutOrStdout()
	tg := newApp(out)

	def, err := tg.Load(path)
	if err != nil {
		return err
	}
	if runStep >= def.StepCount() {
		return config.NewUserError(config.ErrCodeStepOutOfRange,
			fmt.Sprintf("step %d is outside the %d dialog step(s)", runStep, def.StepCount())).
			WithContext("--step").
			WithSuggestion(fmt.Sprintf("Use a value between 0 and %d.", max(def.StepCount()-1, 0)))
	}

	screen := app.Screen(def)
	sessOpts := app.SessionOptions{Document: screen, Active: true}
	if runStep >= 0 {
		sessOpts.InitialStep = &runStep
	}

	session, err := tg.Open(def, app.OpenOptions{SessionOptions: sessOpts, Force: runForce})
	if errors.Is(err, app.ErrAlreadyCompleted) {
		_, _ = fmt.Fprintf(out, "%s was already completed. Use --force to run it again.\n", def)
		return nil
	}
	if err != nil {
		return err
	}
	defer session.Unmount()

	opts := tui.TourOptions{
		Session:      session,
		Screen:       screen,
		ExitOnFinish: !runStay && !runWatch,
		AltScreen:    runAltScreen,
	}

	if runWatch {
		w, err := filewatch.New(path, filewatch.WithLogger(newLogger()))
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		defer func() { _ = w.Close() }()
		go w.Run(ctx)

		opts.Changes = w.Changes()
		opts.Reload = func() (*config.Definition, error) {
			return tg.Load(path)
		}
	}

	result, err := tui.RunTour(ctx, opts)
	if err != nil {
		return err
	}

	switch {
	case result.Completed:
		_, _ = fmt.Fprintf(out, "✓ %s completed\n", def)
	case result.Active:
		_, _ = fmt.Fprintf(out, "Left %s at step %d of %d\n", def, result.Step+1, def.StepCount())
	default:
		_, _ = fmt.Fprintf(out, "Closed %s at step %d of %d\n", def, result.Step+1, def.StepCount())
	}
	return nil
}
