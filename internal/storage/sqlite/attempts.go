// ABOUTME: Quiz attempt storage: history, recent scores, performance metrics
// ABOUTME: RecentScores feeds the adaptive difficulty selector
package sqlite

import (
	"time"

	"github.com/google/uuid"

	"studypilot/internal/models"
)

// AttemptStore handles quiz attempt persistence.
type AttemptStore struct {
	db *DB
}

// NewAttemptStore creates a new AttemptStore.
func NewAttemptStore(db *DB) *AttemptStore {
	return &AttemptStore{db: db}
}

// Save records a completed quiz attempt.
func (s *AttemptStore) Save(attempt *models.QuizAttempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.New().String()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO quiz_attempts (id, user_id, score, total_questions, quiz_topic, time_taken, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, attempt.ID, attempt.UserID, attempt.Score, attempt.TotalQuestions,
		attempt.Topic, attempt.TimeTaken, attempt.CreatedAt)
	return err
}

// HistoryByUser returns all attempts for a user, newest first.
func (s *AttemptStore) HistoryByUser(userID string) ([]models.QuizAttempt, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, score, total_questions, COALESCE(quiz_topic, ''), COALESCE(time_taken, 0), created_at
		FROM quiz_attempts
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var attempts []models.QuizAttempt
	for rows.Next() {
		var a models.QuizAttempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.Score, &a.TotalQuestions, &a.Topic, &a.TimeTaken, &a.CreatedAt); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// RecentScores returns up to limit (correct, total) pairs, newest first.
func (s *AttemptStore) RecentScores(userID string, limit int) ([]models.Score, error) {
	rows, err := s.db.Query(`
		SELECT score, total_questions
		FROM quiz_attempts
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scores []models.Score
	for rows.Next() {
		var sc models.Score
		if err := rows.Scan(&sc.Correct, &sc.Total); err != nil {
			return nil, err
		}
		scores = append(scores, sc)
	}
	return scores, rows.Err()
}

// OverallStats summarizes all attempts for a user.
type OverallStats struct {
	TotalQuizzes   int     `json:"total_quizzes"`
	AvgScore       float64 `json:"avg_score"`
	TotalCorrect   int     `json:"total_correct"`
	TotalQuestions int     `json:"total_questions"`
}

// TopicStats summarizes attempts for one quiz topic.
type TopicStats struct {
	Topic    string  `json:"topic"`
	Attempts int     `json:"attempts"`
	AvgScore float64 `json:"avg_score"`
}

// TrendPoint is one attempt's percentage on the recency trend.
type TrendPoint struct {
	Date       time.Time `json:"date"`
	Percentage float64   `json:"percentage"`
}

// Overall returns aggregate statistics across all of a user's attempts.
func (s *AttemptStore) Overall(userID string) (*OverallStats, error) {
	var stats OverallStats
	err := s.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(AVG(score * 100.0 / total_questions), 0),
			COALESCE(SUM(score), 0),
			COALESCE(SUM(total_questions), 0)
		FROM quiz_attempts
		WHERE user_id = ?
	`, userID).Scan(&stats.TotalQuizzes, &stats.AvgScore, &stats.TotalCorrect, &stats.TotalQuestions)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ByTopic returns per-topic averages, best topics first.
func (s *AttemptStore) ByTopic(userID string) ([]TopicStats, error) {
	rows, err := s.db.Query(`
		SELECT quiz_topic, COUNT(*), AVG(score * 100.0 / total_questions)
		FROM quiz_attempts
		WHERE user_id = ? AND quiz_topic IS NOT NULL AND quiz_topic != ''
		GROUP BY quiz_topic
		ORDER BY AVG(score * 100.0 / total_questions) DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var topics []TopicStats
	for rows.Next() {
		var t TopicStats
		if err := rows.Scan(&t.Topic, &t.Attempts, &t.AvgScore); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// Trend returns up to limit recent attempt percentages, newest first.
func (s *AttemptStore) Trend(userID string, limit int) ([]TrendPoint, error) {
	rows, err := s.db.Query(`
		SELECT created_at, score * 100.0 / total_questions
		FROM quiz_attempts
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var trend []TrendPoint
	for rows.Next() {
		var p TrendPoint
		if err := rows.Scan(&p.Date, &p.Percentage); err != nil {
			return nil, err
		}
		trend = append(trend, p)
	}
	return trend, rows.Err()
}
