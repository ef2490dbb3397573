// ABOUTME: Prompt templates and completion parameters for every pipeline operation
// ABOUTME: The quiz format example here is what the quiz extractor's markers rely on
package core

import (
	"fmt"
	"strings"

	"studypilot/internal/models"
)

// scheduleInputLimit caps how much document text goes into the schedule
// prompt. This is a policy of the schedule pipeline, not of the gateway.
const scheduleInputLimit = 8000

// Completion parameters per operation.
const (
	answerMaxTokens   = 500
	answerTemperature = 0.5

	quizMaxTokens   = 1500
	quizTemperature = 0.1

	scheduleMaxTokens   = 3000
	scheduleTemperature = 0.7

	summaryMaxTokens   = 300
	summaryTemperature = 0.3

	flashcardMaxTokens   = 500
	flashcardTemperature = 0.3
)

const answerSystemPrompt = "You are a helpful assistant that answers questions based on provided context."

// quizSystemPrompt fixes the output format. The extractor recognizes
// exactly these markers, so the example must not drift from the parser.
const quizSystemPrompt = `You are a helpful assistant who generates quizzes from input text.
Ensure questions, options, and answers are accurate, unique, and formatted as requested.
Format the output like this example:

1. Question: What is the capital of France?
   Options:
   A) Berlin
   B) Madrid
   C) Paris
   D) Rome
   Correct Answer: C) Paris
   Explanation: Paris is the capital and largest city of France.`

const scheduleSystemPrompt = "You are an expert study planner who creates effective learning schedules tailored to content and time constraints."

const summarySystemPrompt = "Generate a concise summary of the following text."

const flashcardSystemPrompt = "Create flashcards with question on front and answer on back."

func answerPrompt(question, context string) string {
	return fmt.Sprintf(`Answer the following question based on the provided context. If the answer cannot be found in the context, say "I cannot find the answer in the provided text."

Context: %s

Question: %s`, context, question)
}

func quizPrompt(text string, count int, difficulty models.Difficulty) string {
	var b strings.Builder
	b.WriteString("Generate a quiz from the following text.\n\n")
	b.WriteString(text)
	b.WriteString("\n\n")
	if difficulty != "" {
		fmt.Fprintf(&b, "Make sure the questions are at %s difficulty level.", difficulty)
	}
	fmt.Fprintf(&b, "\nPlease generate %d questions.", count)
	return b.String()
}

func schedulePrompt(text string, days int, hoursPerDay float64) string {
	if len(text) > scheduleInputLimit {
		text = text[:scheduleInputLimit]
	}
	return fmt.Sprintf(`Create a %d-day study schedule for the following content, with approximately %s of study per day.
The schedule should:
1. Break down the content logically across the days
2. Include specific topics to cover each day
3. Suggest learning activities (reading, note-taking, practice problems, etc.)
4. Specify approximate duration for each day's study

Format each day of the schedule as:
Day 1:
- Topics: [list main topics/concepts to study]
- Activities: [list specific learning activities]
- Duration: [specify time duration]

Continue this format for all days. Be specific about the content from the document.

Content to schedule:
%s`, days, FormatHours(hoursPerDay), text)
}

func flashcardPrompt(text string) string {
	return fmt.Sprintf("Create 5 flashcards from: %s", text)
}
