// ABOUTME: SQLite schema for accounts, quiz history, notes, and custom quizzes
// ABOUTME: Creates all tables and indexes for the study service
package sqlite

// Schema contains all SQL statements for database initialization.
const Schema = `
-- Registered accounts (username only, no credentials)
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT UNIQUE NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Completed quiz attempts
CREATE TABLE IF NOT EXISTS quiz_attempts (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    score INTEGER NOT NULL,
    total_questions INTEGER NOT NULL,
    quiz_topic TEXT,
    time_taken INTEGER,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- User notes attached to quizzes or questions
CREATE TABLE IF NOT EXISTS user_notes (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    note_content TEXT NOT NULL,
    quiz_id TEXT,
    question_id INTEGER,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- User-authored quizzes, questions stored as JSON
CREATE TABLE IF NOT EXISTS custom_quizzes (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    description TEXT,
    questions TEXT NOT NULL,
    is_public INTEGER DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_attempts_user ON quiz_attempts(user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_notes_user ON user_notes(user_id);
CREATE INDEX IF NOT EXISTS idx_custom_quizzes_user ON custom_quizzes(user_id, created_at DESC);
`
