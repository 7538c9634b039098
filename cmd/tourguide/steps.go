package main

import (
	"github.com/spf13/cobra"
)

var stepsCmd = &cobra.Command{
	Use:   "steps [file]",
	Short: "List the steps of a tour",
	Long: `Steps prints every dialog step in order with its target and placement.
The initial step is marked with ▸.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSteps,
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}

func runSteps(cmd *cobra.Command, args []string) error {
	tg := newApp(cmd.OutOrStdout())
	def, err := tg.Load(definitionPath(args))
	if err != nil {
		return err
	}
	tg.PrintSteps(def)
	return nil
}
