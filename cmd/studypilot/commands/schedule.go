// ABOUTME: CLI command to build a study schedule from a document
// ABOUTME: Always produces a schedule, falling back to a generic plan on failure
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"studypilot/internal/models"
)

var (
	scheduleDays  int
	scheduleHours float64
	scheduleJSON  bool
)

// NewScheduleCmd creates the schedule command
func NewScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule <file>",
		Short: "Build a study schedule from a document",
		Long: `Build a day-by-day study schedule from a document.

Each day lists topics, activities, and a duration. When schedule
generation fails, a generic plan covering the requested days is
returned instead of an error.

Examples:
  studypilot schedule notes.pdf
  studypilot schedule --days 7 --hours 3 chapter3.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runSchedule,
	}

	cmd.Flags().IntVar(&scheduleDays, "days", 14, "Number of study days")
	cmd.Flags().Float64Var(&scheduleHours, "hours", 2.0, "Hours available per day")
	cmd.Flags().BoolVar(&scheduleJSON, "json", false, "Output schedule as JSON")

	return cmd
}

func runSchedule(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if err := validatePositiveInt(scheduleDays, "days"); err != nil {
		return err
	}
	if scheduleHours <= 0 {
		return fmt.Errorf("--hours must be positive, got %g", scheduleHours)
	}

	study, _, err := buildStudy()
	if err != nil {
		return err
	}

	text, err := readDocument(args[0])
	if err != nil {
		return err
	}

	schedule := study.GenerateSchedule(cmd.Context(), text, scheduleDays, scheduleHours)

	if scheduleJSON {
		data, err := json.MarshalIndent(schedule, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	printSchedule(cmd.OutOrStdout(), schedule)
	return nil
}

// printSchedule writes the plain-text rendering of a schedule. Day labels
// arrive fully formed ("Day 1"), so they are printed as-is.
func printSchedule(w io.Writer, schedule []models.ScheduleDay) {
	for _, day := range schedule {
		fmt.Fprintf(w, "%s\n", day.Day)
		if day.Topics != "" {
			fmt.Fprintf(w, "  Topics:     %s\n", day.Topics)
		}
		if day.Activities != "" {
			fmt.Fprintf(w, "  Activities: %s\n", day.Activities)
		}
		if day.Duration != "" {
			fmt.Fprintf(w, "  Duration:   %s\n", day.Duration)
		}
	}
}
