package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"tcl/internal/collector"
	"tcl/internal/config"
	"tcl/internal/discovery"
)

// ListCommand loads the suite and prints its test cases
type ListCommand struct {
	config *config.Config
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config) *ListCommand {
	return &ListCommand{
		config: cfg,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	loader := discovery.NewLoader(lc.config)
	suite, err := loader.Load(lc.config.GetSuitePath())
	if err != nil {
		return err
	}

	if suite.CountTests() == 0 {
		// stdout carries records only
		color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "No tests found in %s\n", suite.Source)
		return nil
	}

	return collector.New(cmd.OutOrStdout()).Collect(suite)
}
