// ABOUTME: Tests for the quiz text extractor
// ABOUTME: Well-formed output, junk tolerance, flush at EOF, and the ordinal limit
package core

import (
	"fmt"
	"strings"
	"testing"
)

const sampleQuiz = `1. Question: What is the powerhouse of the cell?
A) Nucleus
B) Mitochondria
C) Ribosome
D) Golgi apparatus
Correct Answer: B) Mitochondria
Explanation: Mitochondria produce ATP through cellular respiration.

2. Question: Which process converts light to chemical energy?
A) Respiration
B) Fermentation
C) Photosynthesis
D) Osmosis
Correct Answer: C) Photosynthesis
Explanation: Chloroplasts capture light energy to synthesize glucose.`

func TestParseQuizWellFormed(t *testing.T) {
	questions := ParseQuiz(sampleQuiz)
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}

	q := questions[0]
	if q.Question != "What is the powerhouse of the cell?" {
		t.Errorf("question = %q", q.Question)
	}
	if len(q.Options) != 4 {
		t.Fatalf("got %d options, want 4", len(q.Options))
	}
	if q.Options[1] != "B) Mitochondria" {
		t.Errorf("option[1] = %q", q.Options[1])
	}
	if q.Answer != "B) Mitochondria" {
		t.Errorf("answer = %q", q.Answer)
	}
	if q.Explanation != "Mitochondria produce ATP through cellular respiration." {
		t.Errorf("explanation = %q", q.Explanation)
	}

	if questions[1].Question != "Which process converts light to chemical energy?" {
		t.Errorf("second question = %q", questions[1].Question)
	}
}

func TestParseQuizNoMarkers(t *testing.T) {
	raw := "I could not generate questions from this document.\nPlease try another file."
	if got := ParseQuiz(raw); len(got) != 0 {
		t.Errorf("got %d questions from markerless text, want 0", len(got))
	}
}

func TestParseQuizEmptyInput(t *testing.T) {
	if got := ParseQuiz(""); len(got) != 0 {
		t.Errorf("got %d questions from empty input, want 0", len(got))
	}
}

func TestParseQuizIgnoresJunkLines(t *testing.T) {
	raw := `Here are your quiz questions:

1. Question: What color is the sky?
Some rambling the model added.
A) Blue
B) Green
Note: options may vary.
Correct Answer: A) Blue
Explanation: Rayleigh scattering.

Hope this helps!`

	questions := ParseQuiz(raw)
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	if len(questions[0].Options) != 2 {
		t.Errorf("got %d options, want 2", len(questions[0].Options))
	}
	if questions[0].Answer != "A) Blue" {
		t.Errorf("answer = %q", questions[0].Answer)
	}
}

func TestParseQuizFlushesLastQuestionAtEOF(t *testing.T) {
	raw := "1. Question: Lone question with no trailing blank line?\nA) Yes\nCorrect Answer: A) Yes"
	questions := ParseQuiz(raw)
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	if questions[0].Answer != "A) Yes" {
		t.Errorf("answer = %q", questions[0].Answer)
	}
}

func TestParseQuizPartialRecord(t *testing.T) {
	// Answer and explanation are optional; only the question text is required.
	raw := "3. Question: Incomplete but still a question?"
	questions := ParseQuiz(raw)
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	q := questions[0]
	if q.Answer != "" || q.Explanation != "" || len(q.Options) != 0 {
		t.Errorf("expected empty optional fields, got %+v", q)
	}
}

func TestParseQuizOrdinalLimit(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 12; i++ {
		fmt.Fprintf(&b, "%d. Question: Question number %d?\nA) Option\nCorrect Answer: A) Option\n", i, i)
	}

	questions := ParseQuiz(b.String())
	// Ordinals beyond 10 are not recognized as question starts, so their
	// header lines are treated as junk inside question 10.
	if len(questions) != 10 {
		t.Fatalf("got %d questions, want 10", len(questions))
	}
	if questions[9].Question != "Question number 10?" {
		t.Errorf("last question = %q", questions[9].Question)
	}
}

func TestParseQuizTenNotMistakenForOne(t *testing.T) {
	raw := "10. Question: Only the tenth?\nA) Sure\nCorrect Answer: A) Sure"
	questions := ParseQuiz(raw)
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	if questions[0].Question != "Only the tenth?" {
		t.Errorf("question = %q", questions[0].Question)
	}
}
