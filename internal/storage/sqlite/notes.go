// ABOUTME: Note storage operations for SQLite
// ABOUTME: Notes attach to a user and optionally a quiz attempt and question
package sqlite

import (
	"time"

	"github.com/google/uuid"

	"studypilot/internal/models"
)

// NoteStore handles note persistence.
type NoteStore struct {
	db *DB
}

// NewNoteStore creates a new NoteStore.
func NewNoteStore(db *DB) *NoteStore {
	return &NoteStore{db: db}
}

// Save stores a note and fills in its generated ID.
func (s *NoteStore) Save(note *models.Note) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO user_notes (id, user_id, note_content, quiz_id, question_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, note.ID, note.UserID, note.Content, nullString(note.QuizID), note.QuestionID, note.CreatedAt)
	return err
}

// ByUser returns all notes for a user, newest first.
func (s *NoteStore) ByUser(userID string) ([]models.Note, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, note_content, COALESCE(quiz_id, ''), COALESCE(question_id, 0), created_at
		FROM user_notes
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Content, &n.QuizID, &n.QuestionID, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// nullString maps "" to NULL for optional foreign keys.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
