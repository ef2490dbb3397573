// ABOUTME: Unified Storage facade over all SQLite stores
// ABOUTME: The surface the HTTP handlers, MCP tools, and CLI talk to
package sqlite

import (
	"fmt"

	"studypilot/internal/models"
)

// trendLimit caps how many attempts feed the performance trend.
const trendLimit = 10

// Storage manages all persistent data for the study service.
type Storage struct {
	db       *DB
	users    *UserStore
	attempts *AttemptStore
	notes    *NoteStore
	quizzes  *QuizStore
}

// NewStorage opens (or creates) the database at dbPath.
func NewStorage(dbPath string) (*Storage, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return newStorage(db), nil
}

// NewStorageInMemory creates an in-memory storage (for testing).
func NewStorageInMemory() (*Storage, error) {
	db, err := OpenInMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	return newStorage(db), nil
}

func newStorage(db *DB) *Storage {
	return &Storage{
		db:       db,
		users:    NewUserStore(db),
		attempts: NewAttemptStore(db),
		notes:    NewNoteStore(db),
		quizzes:  NewQuizStore(db),
	}
}

// Close closes the underlying database.
func (s *Storage) Close() error {
	return s.db.Close()
}

// RegisterUser creates a new account. ErrUsernameTaken on conflict.
func (s *Storage) RegisterUser(username string) (*models.User, error) {
	return s.users.Create(username)
}

// LoginUser returns the account for username, auto-registering when absent.
func (s *Storage) LoginUser(username string) (*models.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}
	return s.users.Create(username)
}

// GetUser returns the user with the given ID, or nil.
func (s *Storage) GetUser(id string) (*models.User, error) {
	return s.users.GetByID(id)
}

// SaveAttempt records a completed quiz.
func (s *Storage) SaveAttempt(attempt *models.QuizAttempt) error {
	return s.attempts.Save(attempt)
}

// History returns a user's attempts, newest first.
func (s *Storage) History(userID string) ([]models.QuizAttempt, error) {
	return s.attempts.HistoryByUser(userID)
}

// RecentScores returns up to limit recent (correct, total) pairs,
// newest first, for the difficulty selector.
func (s *Storage) RecentScores(userID string, limit int) ([]models.Score, error) {
	return s.attempts.RecentScores(userID, limit)
}

// PerformanceReport bundles a user's aggregate quiz statistics.
type PerformanceReport struct {
	Overall *OverallStats `json:"overall"`
	Topics  []TopicStats  `json:"topics"`
	Trend   []TrendPoint  `json:"trend"`
}

// Performance computes overall, per-topic, and trend statistics.
func (s *Storage) Performance(userID string) (*PerformanceReport, error) {
	overall, err := s.attempts.Overall(userID)
	if err != nil {
		return nil, err
	}
	topics, err := s.attempts.ByTopic(userID)
	if err != nil {
		return nil, err
	}
	trend, err := s.attempts.Trend(userID, trendLimit)
	if err != nil {
		return nil, err
	}
	return &PerformanceReport{Overall: overall, Topics: topics, Trend: trend}, nil
}

// SaveNote stores a user note.
func (s *Storage) SaveNote(note *models.Note) error {
	return s.notes.Save(note)
}

// NotesByUser returns a user's notes, newest first.
func (s *Storage) NotesByUser(userID string) ([]models.Note, error) {
	return s.notes.ByUser(userID)
}

// CreateCustomQuiz stores a user-authored quiz.
func (s *Storage) CreateCustomQuiz(quiz *models.CustomQuiz) error {
	return s.quizzes.Create(quiz)
}

// ListCustomQuizzes lists quiz summaries visible to userID.
func (s *Storage) ListCustomQuizzes(userID string, includePublic bool) ([]models.CustomQuiz, error) {
	return s.quizzes.List(userID, includePublic)
}

// GetCustomQuiz returns one quiz with questions. ErrQuizNotFound if absent.
func (s *Storage) GetCustomQuiz(id string) (*models.CustomQuiz, error) {
	return s.quizzes.GetByID(id)
}

// ListUserQuizzes returns all of a user's quizzes with questions.
func (s *Storage) ListUserQuizzes(userID string) ([]models.CustomQuiz, error) {
	return s.quizzes.ListByUser(userID)
}

// DeleteCustomQuiz removes a quiz. ErrQuizNotFound if absent.
func (s *Storage) DeleteCustomQuiz(id string) error {
	return s.quizzes.Delete(id)
}
