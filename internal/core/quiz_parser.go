// ABOUTME: Quiz extractor: line-oriented state machine over generated quiz text
// ABOUTME: Converts free-form model output into ordered QuizQuestion records
package core

import (
	"strings"

	"studypilot/internal/models"
)

// quizParseState tracks whether a question record is being accumulated.
type quizParseState int

const (
	awaitingQuestion quizParseState = iota
	inQuestion
)

// questionMarkers are the numbered prefixes that open a question. Only
// ordinals 1 through 10 are recognized; the generation prompt asks for at
// most that many, and the limit is kept explicit rather than extended.
var questionMarkers = []string{
	"1.", "2.", "3.", "4.", "5.", "6.", "7.", "8.", "9.", "10.",
}

// optionMarkers label the answer choices, in the order the prompt requests.
var optionMarkers = []string{"A)", "B)", "C)", "D)", "E)"}

const (
	questionTag    = "Question:"
	answerTag      = "Correct Answer:"
	explanationTag = "Explanation:"
)

// partialQuestion accumulates fields until the record is flushed.
type partialQuestion struct {
	question    string
	options     []string
	answer      string
	explanation string
}

// complete reports whether the record may be emitted.
func (p *partialQuestion) complete() bool {
	return p.question != ""
}

func (p *partialQuestion) toModel() models.QuizQuestion {
	return models.QuizQuestion{
		Question:    p.question,
		Options:     p.options,
		Answer:      p.answer,
		Explanation: p.explanation,
	}
}

// ParseQuiz scans generated quiz text line by line and returns question
// records in generation order. Unrecognized lines are ignored: free-form
// model output is an unreliable wire format, so the parser is defensive
// rather than strict. Text with no question markers yields zero records.
func ParseQuiz(raw string) []models.QuizQuestion {
	var (
		questions []models.QuizQuestion
		current   partialQuestion
		state     = awaitingQuestion
	)

	flush := func() {
		if current.complete() {
			questions = append(questions, current.toModel())
		}
		current = partialQuestion{}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isQuestionLine(line) {
			flush()
			_, rest, _ := strings.Cut(line, questionTag)
			current.question = strings.TrimSpace(rest)
			state = inQuestion
			continue
		}

		if state != inQuestion {
			continue
		}

		switch {
		case isOptionLine(line):
			current.options = append(current.options, line)
		case strings.HasPrefix(line, answerTag):
			current.answer = strings.TrimSpace(strings.TrimPrefix(line, answerTag))
		case strings.HasPrefix(line, explanationTag):
			current.explanation = strings.TrimSpace(strings.TrimPrefix(line, explanationTag))
		}
	}
	flush()

	return questions
}

// isQuestionLine matches "<n>. ... Question: ..." for n in 1..10.
func isQuestionLine(line string) bool {
	if !strings.Contains(line, questionTag) {
		return false
	}
	for _, m := range questionMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

func isOptionLine(line string) bool {
	for _, m := range optionMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}
