// ABOUTME: Typed pipeline errors so callers can tell which stage failed
// ABOUTME: Extraction and embedding failures are fatal; generation failures may fall back
package core

import (
	"errors"
	"fmt"
)

// ErrNoQuestions signals that quiz generation succeeded but the extractor
// produced zero question records. Callers must surface this explicitly
// rather than treating an empty quiz as success.
var ErrNoQuestions = errors.New("no questions could be extracted from the generated text")

// ExtractionError indicates document text extraction failed or came back empty.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("text extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// EmbeddingError indicates the embedding gateway failed for a chunk or query.
// There is no safe fallback: a partial index would silently degrade grounding.
type EmbeddingError struct {
	Stage string // "index" or "query"
	Err   error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding failed during %s: %v", e.Stage, e.Err)
}

func (e *EmbeddingError) Unwrap() error { return e.Err }

// GenerationError indicates the completion gateway call failed.
type GenerationError struct {
	Op  string // "answer", "quiz", "schedule", "summary", "flashcards"
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
