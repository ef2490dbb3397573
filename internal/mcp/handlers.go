// ABOUTME: MCP tool handler implementations for the study server
// ABOUTME: Each handler validates arguments, runs one pipeline, and returns JSON text
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"studypilot/internal/core"
	"studypilot/internal/models"
)

// Handlers contains the handler functions for all MCP tools.
type Handlers struct {
	study *core.Study
}

// AskDocument handles the ask_document tool.
func (h *Handlers) AskDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	document, err := request.RequireString("document")
	if err != nil {
		return mcp.NewToolResultError("document argument is required and must be a string"), nil
	}
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	answer, err := h.study.AnswerQuestion(ctx, document, question)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("answering failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{"answer": answer})
}

// GenerateQuiz handles the generate_quiz tool.
func (h *Handlers) GenerateQuiz(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	document, err := request.RequireString("document")
	if err != nil {
		return mcp.NewToolResultError("document argument is required and must be a string"), nil
	}

	numQuestions := request.GetInt("num_questions", 5)
	if numQuestions <= 0 {
		return mcp.NewToolResultError("num_questions must be positive"), nil
	}
	difficulty := models.Difficulty(request.GetString("difficulty", ""))

	quiz, err := h.study.GenerateQuiz(ctx, document, numQuestions, difficulty)
	if err != nil {
		if errors.Is(err, core.ErrNoQuestions) {
			return jsonResult(map[string]interface{}{
				"quiz":  []models.QuizQuestion{},
				"error": err.Error(),
			})
		}
		return mcp.NewToolResultError(fmt.Sprintf("quiz generation failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{"quiz": quiz, "difficulty": difficulty})
}

// GenerateStudySchedule handles the generate_study_schedule tool.
func (h *Handlers) GenerateStudySchedule(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	document, err := request.RequireString("document")
	if err != nil {
		return mcp.NewToolResultError("document argument is required and must be a string"), nil
	}

	durationDays := request.GetInt("duration_days", 14)
	hoursPerDay := request.GetFloat("hours_per_day", 2.0)
	if durationDays <= 0 || hoursPerDay <= 0 {
		return mcp.NewToolResultError("duration_days and hours_per_day must be positive"), nil
	}

	schedule := h.study.GenerateSchedule(ctx, document, durationDays, hoursPerDay)

	return jsonResult(map[string]interface{}{
		"schedule":      schedule,
		"duration_days": durationDays,
		"hours_per_day": hoursPerDay,
	})
}

func jsonResult(response map[string]interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
