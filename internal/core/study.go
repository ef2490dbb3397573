// ABOUTME: Study orchestrates the retrieval and extraction pipeline per request
// ABOUTME: chunk, embed, index, retrieve, generate, extract, strictly in that order
package core

import (
	"context"
	"errors"
	"strings"

	"studypilot/internal/models"
)

// Completer sends a prompt to the hosted model and returns free-form text.
// The output is never guaranteed to match the requested structural format.
type Completer interface {
	Complete(ctx context.Context, system, prompt string, maxTokens int, temperature float32) (string, error)
}

// Study runs the document pipelines. It holds no mutable state, so one
// value can serve any number of concurrent requests; each invocation
// builds and discards its own similarity index.
type Study struct {
	completer Completer
	embedder  Embedder
	chunker   *Chunker
	topK      int
}

// NewStudy wires the gateways into a pipeline. topK <= 0 falls back to
// DefaultContextChunks.
func NewStudy(completer Completer, embedder Embedder, chunker *Chunker, topK int) *Study {
	if chunker == nil {
		chunker = NewChunker(DefaultChunkSize, DefaultChunkOverlap)
	}
	if topK <= 0 {
		topK = DefaultContextChunks
	}
	return &Study{
		completer: completer,
		embedder:  embedder,
		chunker:   chunker,
		topK:      topK,
	}
}

// AnswerQuestion answers a question grounded in the document: the text is
// chunked and indexed, the best-matching chunks become the prompt context,
// and the completion gateway produces the answer.
func (s *Study) AnswerQuestion(ctx context.Context, text, question string) (string, error) {
	chunks := s.chunker.Split(text)

	ix, err := BuildIndex(ctx, chunks, s.embedder)
	if err != nil {
		return "", err
	}

	contextText, err := AssembleContext(ctx, ix, s.embedder, question, s.topK)
	if err != nil {
		return "", err
	}

	answer, err := s.completer.Complete(ctx, answerSystemPrompt, answerPrompt(question, contextText), answerMaxTokens, answerTemperature)
	if err != nil {
		return "", &GenerationError{Op: "answer", Err: err}
	}
	return answer, nil
}

// GenerateQuiz produces up to count questions from the document. A
// non-empty difficulty is injected into the prompt as a hint; it does not
// change chunking or retrieval. Generation failures are surfaced (there is
// no meaningful fallback quiz), and a generation that parses to zero
// questions returns ErrNoQuestions rather than an empty success.
func (s *Study) GenerateQuiz(ctx context.Context, text string, count int, difficulty models.Difficulty) ([]models.QuizQuestion, error) {
	raw, err := s.completer.Complete(ctx, quizSystemPrompt, quizPrompt(text, count, difficulty), quizMaxTokens, quizTemperature)
	if err != nil {
		return nil, &GenerationError{Op: "quiz", Err: err}
	}

	questions := ParseQuiz(raw)
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}

// GenerateSchedule produces a day-by-day study plan from the document.
// If the gateway fails or the output parses to zero days, the
// deterministic fallback plan is returned instead; schedule generation
// never fails outright.
func (s *Study) GenerateSchedule(ctx context.Context, text string, days int, hoursPerDay float64) []models.ScheduleDay {
	raw, err := s.completer.Complete(ctx, scheduleSystemPrompt, schedulePrompt(text, days, hoursPerDay), scheduleMaxTokens, scheduleTemperature)
	if err != nil {
		return FallbackSchedule(days, hoursPerDay)
	}

	schedule := ParseSchedule(raw)
	if len(schedule) == 0 {
		return FallbackSchedule(days, hoursPerDay)
	}
	return schedule
}

// Summarize produces a concise summary of the document.
func (s *Study) Summarize(ctx context.Context, text string) (string, error) {
	summary, err := s.completer.Complete(ctx, summarySystemPrompt, text, summaryMaxTokens, summaryTemperature)
	if err != nil {
		return "", &GenerationError{Op: "summary", Err: err}
	}
	return summary, nil
}

// Flashcards produces a set of flashcards from the document. The output
// stays free-form text; the original tool renders it as-is.
func (s *Study) Flashcards(ctx context.Context, text string) (string, error) {
	cards, err := s.completer.Complete(ctx, flashcardSystemPrompt, flashcardPrompt(text), flashcardMaxTokens, flashcardTemperature)
	if err != nil {
		return "", &GenerationError{Op: "flashcards", Err: err}
	}
	return cards, nil
}

// ValidateDocument rejects empty extracted text before any pipeline runs.
func ValidateDocument(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ExtractionError{Err: errEmptyDocument}
	}
	return nil
}

var errEmptyDocument = errors.New("document contains no extractable text")
