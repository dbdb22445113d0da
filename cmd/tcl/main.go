package main

import (
	"os"

	"tcl/internal/cli"
	"tcl/internal/cli/commands"
	"tcl/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "tcl",
		Short:         "Lists the test cases in a specific test suite",
		Long:          `Walks a Robot Framework test suite (file or folder) and prints the full name, tags and documentation of every test case. No test is executed.`,
		Version:       config.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
