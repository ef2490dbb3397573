// ABOUTME: MCP tool definitions and registration for the study server
// ABOUTME: Defines JSON schemas for the document Q&A, quiz, and schedule tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"studypilot/internal/core"
)

// RegisterTools registers all MCP tools with the server.
func RegisterTools(server *mcpserver.MCPServer, study *core.Study) *Handlers {
	handlers := &Handlers{study: study}

	server.AddTool(mcp.Tool{
		Name:        "ask_document",
		Description: "Answer a question using only the content of the provided document. Returns a grounded answer or a statement that the answer is not in the document.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document": map[string]interface{}{
					"type":        "string",
					"description": "Full text of the document to search",
				},
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question to answer from the document",
				},
			},
			Required: []string{"document", "question"},
		},
	}, handlers.AskDocument)

	server.AddTool(mcp.Tool{
		Name:        "generate_quiz",
		Description: "Generate multiple-choice quiz questions from the provided document text.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document": map[string]interface{}{
					"type":        "string",
					"description": "Full text of the document to quiz on",
				},
				"num_questions": map[string]interface{}{
					"type":        "number",
					"description": "Number of questions to generate (default: 5)",
					"default":     5,
				},
				"difficulty": map[string]interface{}{
					"type":        "string",
					"description": "Optional difficulty hint: easy, medium, or difficult",
				},
			},
			Required: []string{"document"},
		},
	}, handlers.GenerateQuiz)

	server.AddTool(mcp.Tool{
		Name:        "generate_study_schedule",
		Description: "Build a day-by-day study schedule for the provided document text. Always returns a usable schedule, substituting a generic plan when generation fails.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document": map[string]interface{}{
					"type":        "string",
					"description": "Full text of the course material",
				},
				"duration_days": map[string]interface{}{
					"type":        "number",
					"description": "Number of study days (default: 14)",
					"default":     14,
				},
				"hours_per_day": map[string]interface{}{
					"type":        "number",
					"description": "Hours available per day (default: 2)",
					"default":     2,
				},
			},
			Required: []string{"document"},
		},
	}, handlers.GenerateStudySchedule)

	return handlers
}
