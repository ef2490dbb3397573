// ABOUTME: Persistent account and history records stored in SQLite
// ABOUTME: Defines User, QuizAttempt, Note, and CustomQuiz
package models

import "time"

// User is a registered account. No credentials; usernames only.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// QuizAttempt records one completed quiz.
type QuizAttempt struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Topic          string    `json:"quiz_topic"`
	TimeTaken      int       `json:"time_taken"`
	CreatedAt      time.Time `json:"created_at"`
}

// Percentage returns the attempt score as a 0-100 percentage.
func (a QuizAttempt) Percentage() float64 {
	if a.TotalQuestions == 0 {
		return 0
	}
	return float64(a.Score) / float64(a.TotalQuestions) * 100
}

// Note is a user-authored note attached to a quiz or question.
type Note struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Content    string    `json:"content"`
	QuizID     string    `json:"quiz_id,omitempty"`
	QuestionID int       `json:"question_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CustomQuiz is a user-authored quiz. Questions are stored as JSON.
type CustomQuiz struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []QuizQuestion `json:"questions,omitempty"`
	IsPublic    bool           `json:"is_public"`
	CreatedAt   time.Time      `json:"created_at"`
}
