// Package main provides the entry point for the tourguide CLI.
package main

import (
	"errors"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		var printed exitError
		if !errors.As(err, &printed) {
			printError(err)
		}
		os.Exit(1)
	}
}
