package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate tour definitions",
	Long: `Validate checks tour definitions for errors without running them.

Files are checked concurrently. Every problem is reported with its location
and, for misspelled values, the closest valid one.

Exit codes:
  0 - All definitions are valid
  1 - At least one definition is invalid or unreadable

Examples:
  tourguide validate
  tourguide validate tours/*.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{definitionPath(nil)}
	}

	tg := newApp(cmd.OutOrStdout())
	results, err := tg.Validate(context.Background(), paths)
	if err != nil {
		return err
	}

	if failed := tg.PrintValidation(results, verbose); failed > 0 {
		return exitError{msg: fmt.Sprintf("%d of %d definition(s) failed validation", failed, len(results))}
	}
	return nil
}
