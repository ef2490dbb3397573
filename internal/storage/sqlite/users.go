// ABOUTME: User account storage operations for SQLite
// ABOUTME: Username-keyed lookup and creation, no credentials involved
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"studypilot/internal/models"
)

// ErrUsernameTaken is returned when registering an existing username.
var ErrUsernameTaken = fmt.Errorf("username already exists")

// UserStore handles account persistence.
type UserStore struct {
	db *DB
}

// NewUserStore creates a new UserStore.
func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

// Create registers a new user. Fails with ErrUsernameTaken on conflict.
func (s *UserStore) Create(username string) (*models.User, error) {
	existing, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now(),
	}
	_, err = s.db.Exec(`
		INSERT INTO users (id, username, created_at)
		VALUES (?, ?, ?)
	`, user.ID, user.Username, user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByUsername returns the user with the given username, or nil.
func (s *UserStore) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(`
		SELECT id, username, created_at
		FROM users
		WHERE username = ?
	`, username).Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given ID, or nil.
func (s *UserStore) GetByID(id string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(`
		SELECT id, username, created_at
		FROM users
		WHERE id = ?
	`, id).Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
