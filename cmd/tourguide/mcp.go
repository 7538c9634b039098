package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/tourguide/internal/adapters/filewatch"
	"github.com/felixgeelhaar/tourguide/internal/app"
	mcptools "github.com/felixgeelhaar/tourguide/internal/mcp"
	"github.com/felixgeelhaar/tourguide/internal/ports"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp [file]",
	Short: "Start MCP server for AI agent integration",
	Long: `Start a Model Context Protocol (MCP) server that drives one tour.

The server mounts the tour headlessly and exposes its controls as tools, so
an agent can walk a user through an interface step by step.

Available tools:
  - tour_status    Current phase, step and target box
  - tour_steps     Every dialog step with its target
  - tour_start     Rewind to the initial step and activate
  - tour_next      Advance (completes from the last step)
  - tour_prev      Go back one step
  - tour_goto      Jump to a step
  - tour_dismiss   Close the tour
  - tour_complete  Mark the tour completed

Targets resolve against the definition's layout, or against a live page
with --url.

Examples:
  tourguide mcp                         # Start stdio MCP server
  tourguide mcp --http :8080            # Start HTTP MCP server
  tourguide mcp --url http://localhost:3000 web-tour.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMCP,
}

var (
	mcpHTTP  string
	mcpURL   string
	mcpForce bool
	mcpWatch bool
)

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().StringVar(&mcpHTTP, "http", "", "Start HTTP server on address (e.g., :8080)")
	mcpCmd.Flags().StringVar(&mcpURL, "url", "", "Resolve targets in this page with headless Chrome")
	mcpCmd.Flags().BoolVarP(&mcpForce, "force", "f", false, "Serve a tour that was already completed")
	mcpCmd.Flags().BoolVarP(&mcpWatch, "watch", "w", false, "Reload the tour when the definition changes")
}

func runMCP(_ *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// stdout carries the protocol in stdio mode
	path := definitionPath(args)
	logger := newLogger()
	tg := newApp(os.Stderr)

	def, err := tg.Load(path)
	if err != nil {
		return err
	}

	checkURL = mcpURL
	doc, closeDoc, err := openDocument(ctx, app.Screen(def))
	if err != nil {
		return err
	}
	defer closeDoc()

	session, err := tg.Open(def, app.OpenOptions{
		SessionOptions: app.SessionOptions{Document: doc},
		Force:          mcpForce,
	})
	if errors.Is(err, app.ErrAlreadyCompleted) {
		return fmt.Errorf("%w; pass --force to serve it again", err)
	}
	if err != nil {
		return err
	}
	defer session.Unmount()

	if mcpWatch {
		w, err := filewatch.New(path, filewatch.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		defer func() { _ = w.Close() }()
		go w.Run(ctx)
		go reloadOnChange(ctx, tg, session, path, w.Changes(), logger)
	}

	srv := mcp.NewServer(mcp.ServerInfo{
		Name:    "tourguide",
		Version: version,
	})

	versionInfo := mcptools.VersionInfo{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
	}
	mcptools.RegisterAll(srv, session, versionInfo, logger)

	if mcpHTTP != "" {
		return mcp.ServeHTTP(ctx, srv, mcpHTTP)
	}
	return mcp.ServeStdio(ctx, srv)
}

// reloadOnChange swaps the session's definition whenever the file changes.
// A definition that fails to load leaves the running tour untouched.
func reloadOnChange(ctx context.Context, tg *app.Tourguide, session *app.Session, path string, changes <-chan struct{}, logger ports.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			def, err := tg.Load(path)
			if err != nil {
				logger.Warn(ctx, "reload failed", ports.F("error", err.Error()))
				continue
			}
			session.Reload(def)
		}
	}
}
