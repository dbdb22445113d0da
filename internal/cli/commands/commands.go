package commands

import (
	"tcl/internal/cli"
	"tcl/internal/config"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	List *ListCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	return &Commands{
		List: NewListCommand(cfg),
	}
}

// Register wires the list command into the root command.
// The tool has no subcommands: the root command itself lists the suite.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = c.List.Execute
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		// Reload config with flags, .env and config file after parsing
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		return nil
	}
	rootCmd.SetVersionTemplate(config.ToolName + " {{.Version}}\n")

	rootCmd.Flags().StringVarP(&flags.Suite, "suite", "s", "", "Path to the test suite (folder or file)")
	_ = rootCmd.MarkFlagRequired("suite")
}
