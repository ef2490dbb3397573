// ABOUTME: CLI command to answer a question from a document
// ABOUTME: Retrieval-grounded Q&A over a local PDF or text file
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <file> <question>",
		Short: "Answer a question from a document",
		Long: `Answer a question using only the content of a document.

The document is chunked and indexed, the most relevant passages are
retrieved, and the answer is generated from those passages alone.

Examples:
  studypilot ask notes.pdf "What is backpropagation?"
  studypilot ask chapter3.txt "Define entropy"`,
		Args: cobra.ExactArgs(2),
		RunE: runAsk,
	}

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	study, _, err := buildStudy()
	if err != nil {
		return err
	}

	text, err := readDocument(args[0])
	if err != nil {
		return err
	}

	answer, err := study.AnswerQuestion(cmd.Context(), text, args[1])
	if err != nil {
		return fmt.Errorf("answering question: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}
