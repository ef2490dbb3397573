// ABOUTME: Custom quiz storage operations for SQLite
// ABOUTME: Questions are serialized as JSON in a single column
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"studypilot/internal/models"
)

// ErrQuizNotFound is returned when a quiz ID does not exist.
var ErrQuizNotFound = fmt.Errorf("quiz not found")

// QuizStore handles custom quiz persistence.
type QuizStore struct {
	db *DB
}

// NewQuizStore creates a new QuizStore.
func NewQuizStore(db *DB) *QuizStore {
	return &QuizStore{db: db}
}

// Create stores a custom quiz and fills in its generated ID.
func (s *QuizStore) Create(quiz *models.CustomQuiz) error {
	if quiz.ID == "" {
		quiz.ID = uuid.New().String()
	}
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = time.Now()
	}

	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("failed to encode questions: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO custom_quizzes (id, user_id, title, description, questions, is_public, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, quiz.ID, quiz.UserID, quiz.Title, quiz.Description, string(questions), quiz.IsPublic, quiz.CreatedAt)
	return err
}

// GetByID returns one quiz including its questions.
func (s *QuizStore) GetByID(id string) (*models.CustomQuiz, error) {
	var quiz models.CustomQuiz
	var questions string
	err := s.db.QueryRow(`
		SELECT id, user_id, title, COALESCE(description, ''), questions, is_public, created_at
		FROM custom_quizzes
		WHERE id = ?
	`, id).Scan(&quiz.ID, &quiz.UserID, &quiz.Title, &quiz.Description, &questions, &quiz.IsPublic, &quiz.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(questions), &quiz.Questions); err != nil {
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}
	return &quiz, nil
}

// List returns quiz summaries (no questions) visible to userID. An empty
// userID lists public quizzes only; includePublic adds public quizzes from
// other users to a user's own.
func (s *QuizStore) List(userID string, includePublic bool) ([]models.CustomQuiz, error) {
	var (
		query string
		args  []interface{}
	)
	switch {
	case userID != "" && includePublic:
		query = `SELECT id, user_id, title, COALESCE(description, ''), is_public, created_at
			FROM custom_quizzes WHERE user_id = ? OR is_public = 1 ORDER BY created_at DESC`
		args = []interface{}{userID}
	case userID != "":
		query = `SELECT id, user_id, title, COALESCE(description, ''), is_public, created_at
			FROM custom_quizzes WHERE user_id = ? ORDER BY created_at DESC`
		args = []interface{}{userID}
	default:
		query = `SELECT id, user_id, title, COALESCE(description, ''), is_public, created_at
			FROM custom_quizzes WHERE is_public = 1 ORDER BY created_at DESC`
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var quizzes []models.CustomQuiz
	for rows.Next() {
		var q models.CustomQuiz
		if err := rows.Scan(&q.ID, &q.UserID, &q.Title, &q.Description, &q.IsPublic, &q.CreatedAt); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

// ListByUser returns all of a user's quizzes including questions.
func (s *QuizStore) ListByUser(userID string) ([]models.CustomQuiz, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, title, COALESCE(description, ''), questions, is_public, created_at
		FROM custom_quizzes
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var quizzes []models.CustomQuiz
	for rows.Next() {
		var q models.CustomQuiz
		var questions string
		if err := rows.Scan(&q.ID, &q.UserID, &q.Title, &q.Description, &questions, &q.IsPublic, &q.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(questions), &q.Questions); err != nil {
			return nil, fmt.Errorf("failed to decode questions: %w", err)
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

// Delete removes a quiz. Fails with ErrQuizNotFound if it doesn't exist.
func (s *QuizStore) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM custom_quizzes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrQuizNotFound
	}
	return nil
}
