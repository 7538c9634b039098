package main

import (
	"bytes"
	"path/filepath"
	"slices"
	"testing"
)

// executeCommand runs the root command with args and returns its output.
// Package-level flags are restored afterwards.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(resetFlags)

	if !slices.Contains(args, "--progress") {
		args = append(args, "--progress", filepath.Join(t.TempDir(), "progress.json"))
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags() {
	cfgFile = ""
	verbose = false
	logJSON = false
	progressPath = ""

	initYes = false
	initID = "getting-started"
	initTitle = "Getting started"
	initTargets = "#sidebar,#main"
	initForce = false
	initLayout = false

	progressReset = false
	checkURL = ""
	runStep = -1
}
