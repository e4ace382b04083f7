// Package main is the entry point for the taskpad CLI.
package main

import (
	"fmt"
	"os"

	"github.com/knakagawa/taskpad/internal/app"
	"github.com/knakagawa/taskpad/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Create dependency injection container; this loads the persisted
	// collection once for the lifetime of the process.
	container, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
