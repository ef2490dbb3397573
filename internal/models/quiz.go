// ABOUTME: Quiz data types shared by the extractor, storage, and API layers
// ABOUTME: Defines QuizQuestion, Difficulty tiers, and Score history entries
package models

// QuizQuestion is one extracted multiple-choice question. Options keep their
// generation order because each entry carries its own label (A) through E)).
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// Difficulty is the adaptive difficulty tier injected into quiz prompts.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyDifficult Difficulty = "difficult"
)

// Score is one past quiz result, used for adaptive difficulty selection.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}
