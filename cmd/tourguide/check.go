package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/tourguide/internal/adapters/browser"
	"github.com/felixgeelhaar/tourguide/internal/app"
	"github.com/felixgeelhaar/tourguide/internal/ports"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Resolve every step against a live page or the terminal layout",
	Long: `Check looks up the target of every dialog step and prints its bounding box.

With --url the targets are CSS selectors resolved in a headless Chrome
tab. Without it they are resolved against the definition's layout.

Examples:
  tourguide check
  tourguide check --url http://localhost:3000
  tourguide check web-tour.yaml --url https://example.com --timeout 30s`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

var (
	checkURL      string
	checkTimeout  time.Duration
	checkHeadless bool
	checkChrome   string
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkURL, "url", "", "Page to resolve targets against")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 15*time.Second, "Page load and lookup timeout")
	checkCmd.Flags().BoolVar(&checkHeadless, "headless", true, "Run Chrome without a window")
	checkCmd.Flags().StringVar(&checkChrome, "chrome", "", "Path to the Chrome binary")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tg := newApp(cmd.OutOrStdout())
	def, err := tg.Load(definitionPath(args))
	if err != nil {
		return err
	}

	doc, closeDoc, err := openDocument(ctx, app.Screen(def))
	if err != nil {
		return err
	}
	defer closeDoc()

	if missing := tg.PrintCheck(app.Check(def, doc)); missing > 0 {
		return exitError{msg: fmt.Sprintf("%d target(s) not found", missing)}
	}
	return nil
}

// openDocument returns the page for --url, or the layout screen.
func openDocument(ctx context.Context, screen ports.Document) (ports.Document, func(), error) {
	if checkURL == "" {
		return screen, func() {}, nil
	}
	page, err := browser.Open(ctx, checkURL, browser.Options{
		Headless: checkHeadless,
		Timeout:  checkTimeout,
		ExecPath: checkChrome,
		Logger:   newLogger(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", checkURL, err)
	}
	return page, page.Close, nil
}
