// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Builds the study pipeline from config and reads documents from disk
package commands

import (
	"fmt"
	"os"

	"studypilot/internal/config"
	"studypilot/internal/core"
	"studypilot/internal/extract"
	"studypilot/internal/llm"
)

// buildStudy loads config and wires the LLM gateway into a study pipeline.
func buildStudy() (*core.Study, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	client, err := llm.NewClient(llm.ClientConfig{
		APIKey:         cfg.APIKey,
		BaseURL:        cfg.BaseURL,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: cfg.EmbeddingModel,
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("initializing LLM client: %w", err)
	}

	chunker := core.NewChunker(cfg.ChunkSize, cfg.ChunkOverlap)
	return core.NewStudy(client, client, chunker, cfg.ContextTopK), cfg, nil
}

// readDocument loads a file from disk and extracts its text.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	text, err := extract.Text(path, data)
	if err != nil {
		return "", fmt.Errorf("extracting text from %s: %w", path, err)
	}
	return text, nil
}

func validatePositiveInt(value int, name string) error {
	if value <= 0 {
		return fmt.Errorf("--%s must be positive, got %d", name, value)
	}
	return nil
}
