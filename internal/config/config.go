// ABOUTME: Centralized configuration for the StudyPilot backend
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration for the service.
type Config struct {
	// HTTP settings
	Addr string

	// LLM gateway settings
	APIKey         string
	BaseURL        string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Pipeline settings
	ChunkSize    int
	ChunkOverlap int
	ContextTopK  int

	// Storage settings
	DBPath string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:           getEnv("STUDYPILOT_ADDR", ":5000"),
		APIKey:         os.Getenv("OPENAI_API_KEY"),
		BaseURL:        os.Getenv("STUDYPILOT_BASE_URL"),
		ChatModel:      getEnv("STUDYPILOT_CHAT_MODEL", "Meta-Llama-3.1-8B-Instruct"),
		EmbeddingModel: getEnv("STUDYPILOT_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:        getEnvDuration("STUDYPILOT_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("STUDYPILOT_MAX_RETRIES", 3),
		RetryDelay:     getEnvDuration("STUDYPILOT_RETRY_DELAY", 2*time.Second),
		ChunkSize:      getEnvInt("STUDYPILOT_CHUNK_SIZE", 1000),
		ChunkOverlap:   getEnvInt("STUDYPILOT_CHUNK_OVERLAP", 200),
		ContextTopK:    getEnvInt("STUDYPILOT_CONTEXT_TOP_K", 3),
		DBPath:         getEnv("STUDYPILOT_DB", DefaultDBPath()),
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges. The API key is checked at command startup
// instead, so read-only commands keep working without one.
func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("STUDYPILOT_CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("STUDYPILOT_CHUNK_OVERLAP must be in [0, chunk size), got %d", c.ChunkOverlap)
	}
	if c.ContextTopK <= 0 {
		return fmt.Errorf("STUDYPILOT_CONTEXT_TOP_K must be positive, got %d", c.ContextTopK)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("STUDYPILOT_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// DefaultDataDir returns the data directory following the XDG spec.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".local/share/studypilot"
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, "studypilot")
}

// DefaultDBPath returns the default database file path.
func DefaultDBPath() string {
	return filepath.Join(DefaultDataDir(), "studypilot.db")
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
