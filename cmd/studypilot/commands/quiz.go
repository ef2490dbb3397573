// ABOUTME: CLI command to generate a quiz from a document
// ABOUTME: Prints questions as readable text or JSON
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"studypilot/internal/models"
)

var (
	quizCount      int
	quizDifficulty string
	quizJSON       bool
)

// NewQuizCmd creates the quiz command
func NewQuizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz <file>",
		Short: "Generate a quiz from a document",
		Long: `Generate multiple-choice quiz questions from a document.

Examples:
  studypilot quiz notes.pdf
  studypilot quiz --count 10 --difficulty difficult chapter3.txt
  studypilot quiz --json notes.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: runQuiz,
	}

	cmd.Flags().IntVar(&quizCount, "count", 5, "Number of questions to generate")
	cmd.Flags().StringVar(&quizDifficulty, "difficulty", "", "Difficulty hint: easy, medium, or difficult")
	cmd.Flags().BoolVar(&quizJSON, "json", false, "Output questions as JSON")

	return cmd
}

func runQuiz(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if err := validatePositiveInt(quizCount, "count"); err != nil {
		return err
	}

	study, _, err := buildStudy()
	if err != nil {
		return err
	}

	text, err := readDocument(args[0])
	if err != nil {
		return err
	}

	quiz, err := study.GenerateQuiz(cmd.Context(), text, quizCount, models.Difficulty(quizDifficulty))
	if err != nil {
		return fmt.Errorf("generating quiz: %w", err)
	}

	if quizJSON {
		data, err := json.MarshalIndent(quiz, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	for i, q := range quiz {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, q.Question)
		for _, opt := range q.Options {
			fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", opt)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "   Answer: %s\n", q.Answer)
		if q.Explanation != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", q.Explanation)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Generated %d question(s)\n", len(quiz))
	}
	return nil
}
