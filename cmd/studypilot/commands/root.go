// ABOUTME: Root command wiring for the studypilot CLI
// ABOUTME: Registers subcommands and global flags
package commands

import (
	"github.com/spf13/cobra"
)

var (
	quiet   bool
	verbose bool
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "studypilot",
		Short: "Turn documents into study material",
		Long: `studypilot turns course documents into study material.

Upload a PDF or text file and get grounded answers, multiple-choice
quizzes, and day-by-day study schedules. Run it as an HTTP API, an
MCP server for LLM agents, or directly from the command line.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(
		NewServeCmd(),
		NewMCPCmd(),
		NewAskCmd(),
		NewQuizCmd(),
		NewScheduleCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
