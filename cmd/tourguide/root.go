package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/tourguide/internal/adapters/logging"
	"github.com/felixgeelhaar/tourguide/internal/app"
	"github.com/felixgeelhaar/tourguide/internal/domain/config"
	"github.com/felixgeelhaar/tourguide/internal/domain/tour"
	"github.com/felixgeelhaar/tourguide/internal/ports"
)

var (
	// Global flags
	cfgFile      string
	verbose      bool
	logJSON      bool
	progressPath string
)

var rootCmd = &cobra.Command{
	Use:   "tourguide",
	Short: "Guided tours for terminal and web interfaces",
	Long: `Tourguide plays step-by-step product tours described in a YAML or TOML file.

Each dialog step points at a target: a region of a terminal layout or an
element of a live web page. The tour highlights the target, explains it,
and remembers how far each user got.`,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "tour definition (default: "+config.DefaultDefinitionFile+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON lines")
	rootCmd.PersistentFlags().StringVar(&progressPath, "progress", "", "progress file (default: "+tour.DefaultProgressPath+")")

	_ = rootCmd.RegisterFlagCompletionFunc("config", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml", "toml"}, cobra.ShellCompDirectiveFilterFileExt
	})

	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the stderr logger for the global flags.
func newLogger() ports.Logger {
	level := ports.LevelWarn
	if verbose {
		level = ports.LevelDebug
	}
	return logging.NewConsoleLogger(
		logging.WithOutput(os.Stderr),
		logging.WithLevel(level),
		logging.WithJSONFormat(logJSON),
		logging.WithTimestamp(logJSON),
		logging.WithName("tourguide"),
	)
}

// newApp creates the application service writing to out.
func newApp(out io.Writer) *app.Tourguide {
	opts := []app.Option{app.WithLogger(newLogger())}
	if progressPath != "" {
		opts = append(opts, app.WithProgressPath(progressPath))
	}
	return app.New(out, opts...)
}

// definitionPath picks the definition from the first argument, --config or
// the default file name.
func definitionPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultDefinitionFile
}

// formatError returns a user-friendly error message.
// With verbose=false: shows only the user message and suggestion.
// With verbose=true: also shows the underlying technical error.
func formatError(err error) string {
	var list *config.ErrorList
	if errors.As(err, &list) {
		return list.Format()
	}

	var userErr *config.UserError
	if errors.As(err, &userErr) {
		msg := userErr.Message
		if userErr.Context != "" {
			msg += fmt.Sprintf(" (at %s)", userErr.Context)
		}
		if userErr.Suggestion != "" {
			msg += fmt.Sprintf("\n\nSuggestion: %s", userErr.Suggestion)
		}
		if verbose && userErr.Underlying != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", userErr.Underlying)
		}
		return msg
	}
	return err.Error()
}

// printError prints an error message to stderr with proper formatting.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", formatError(err))
}

// exitError signals a failure whose details were already printed.
type exitError struct {
	msg string
}

func (e exitError) Error() string {
	return e.msg
}
