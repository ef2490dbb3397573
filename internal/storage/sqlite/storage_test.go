// ABOUTME: Tests for the Storage facade against an in-memory database
// ABOUTME: Users, attempts, performance, notes, and custom quiz CRUD
package sqlite

import (
	"errors"
	"testing"
	"time"

	"studypilot/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := NewStorageInMemory()
	if err != nil {
		t.Fatalf("NewStorageInMemory: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRegisterUser(t *testing.T) {
	store := newTestStorage(t)

	user, err := store.RegisterUser("alice")
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if user.ID == "" {
		t.Error("expected generated user ID")
	}
	if user.Username != "alice" {
		t.Errorf("username = %q", user.Username)
	}

	got, err := store.GetUser(user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got == nil || got.Username != "alice" {
		t.Errorf("GetUser = %+v", got)
	}
}

func TestRegisterUserDuplicate(t *testing.T) {
	store := newTestStorage(t)

	if _, err := store.RegisterUser("alice"); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	_, err := store.RegisterUser("alice")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLoginUserAutoRegisters(t *testing.T) {
	store := newTestStorage(t)

	first, err := store.LoginUser("bob")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected generated user ID")
	}

	second, err := store.LoginUser("bob")
	if err != nil {
		t.Fatalf("LoginUser again: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second login ID %q differs from first %q", second.ID, first.ID)
	}
}

func TestGetUserUnknown(t *testing.T) {
	store := newTestStorage(t)
	got, err := store.GetUser("no-such-id")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown user, got %+v", got)
	}
}

func TestSaveAttemptAndHistory(t *testing.T) {
	store := newTestStorage(t)
	user, _ := store.RegisterUser("carol")

	base := time.Now().Add(-time.Hour)
	for i, score := range []int{3, 7, 9} {
		attempt := &models.QuizAttempt{
			UserID:         user.ID,
			Score:          score,
			TotalQuestions: 10,
			Topic:          "Biology",
			TimeTaken:      60 + i,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.SaveAttempt(attempt); err != nil {
			t.Fatalf("SaveAttempt: %v", err)
		}
		if attempt.ID == "" {
			t.Error("expected generated attempt ID")
		}
	}

	history, err := store.History(user.ID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("got %d attempts, want 3", len(history))
	}
	// Newest first.
	if history[0].Score != 9 || history[2].Score != 3 {
		t.Errorf("history order = %d, %d, %d", history[0].Score, history[1].Score, history[2].Score)
	}
	if history[0].Topic != "Biology" {
		t.Errorf("topic = %q", history[0].Topic)
	}
}

func TestRecentScoresLimitAndOrder(t *testing.T) {
	store := newTestStorage(t)
	user, _ := store.RegisterUser("dave")

	base := time.Now().Add(-time.Hour)
	for i := 1; i <= 7; i++ {
		_ = store.SaveAttempt(&models.QuizAttempt{
			UserID:         user.ID,
			Score:          i,
			TotalQuestions: 10,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		})
	}

	scores, err := store.RecentScores(user.ID, 5)
	if err != nil {
		t.Fatalf("RecentScores: %v", err)
	}
	if len(scores) != 5 {
		t.Fatalf("got %d scores, want 5", len(scores))
	}
	if scores[0].Correct != 7 || scores[4].Correct != 3 {
		t.Errorf("scores = %+v, want newest first", scores)
	}
}

func TestPerformance(t *testing.T) {
	store := newTestStorage(t)
	user, _ := store.RegisterUser("erin")

	base := time.Now().Add(-time.Hour)
	attempts := []struct {
		score int
		topic string
	}{
		{8, "Biology"},
		{6, "Biology"},
		{4, "History"},
	}
	for i, a := range attempts {
		_ = store.SaveAttempt(&models.QuizAttempt{
			UserID:         user.ID,
			Score:          a.score,
			TotalQuestions: 10,
			Topic:          a.topic,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		})
	}

	report, err := store.Performance(user.ID)
	if err != nil {
		t.Fatalf("Performance: %v", err)
	}

	if report.Overall.TotalQuizzes != 3 {
		t.Errorf("TotalQuizzes = %d, want 3", report.Overall.TotalQuizzes)
	}
	if report.Overall.TotalCorrect != 18 || report.Overall.TotalQuestions != 30 {
		t.Errorf("totals = %d/%d, want 18/30", report.Overall.TotalCorrect, report.Overall.TotalQuestions)
	}
	if report.Overall.AvgScore != 60 {
		t.Errorf("AvgScore = %v, want 60", report.Overall.AvgScore)
	}

	if len(report.Topics) != 2 {
		t.Fatalf("got %d topics, want 2", len(report.Topics))
	}
	// Best topic first.
	if report.Topics[0].Topic != "Biology" || report.Topics[0].Attempts != 2 {
		t.Errorf("topics[0] = %+v", report.Topics[0])
	}

	if len(report.Trend) != 3 {
		t.Fatalf("got %d trend points, want 3", len(report.Trend))
	}
	if report.Trend[0].Percentage != 40 {
		t.Errorf("newest trend percentage = %v, want 40", report.Trend[0].Percentage)
	}
}

func TestPerformanceEmptyHistory(t *testing.T) {
	store := newTestStorage(t)
	user, _ := store.RegisterUser("frank")

	report, err := store.Performance(user.ID)
	if err != nil {
		t.Fatalf("Performance: %v", err)
	}
	if report.Overall.TotalQuizzes != 0 || report.Overall.AvgScore != 0 {
		t.Errorf("overall = %+v, want zeros", report.Overall)
	}
	if len(report.Topics) != 0 || len(report.Trend) != 0 {
		t.Errorf("expected empty topics and trend, got %d/%d", len(report.Topics), len(report.Trend))
	}
}

func TestSaveAndListNotes(t *testing.T) {
	store := newTestStorage(t)
	user, _ := store.RegisterUser("grace")

	note := &models.Note{
		UserID:     user.ID,
		Content:    "remember the Krebs cycle",
		QuestionID: 2,
	}
	if err := store.SaveNote(note); err != nil {
		t.Fatalf("SaveNote: %v", err)
	}
	if note.ID == "" {
		t.Error("expected generated note ID")
	}

	notes, err := store.NotesByUser(user.ID)
	if err != nil {
		t.Fatalf("NotesByUser: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("got %d notes, want 1", len(notes))
	}
	if notes[0].Content != "remember the Krebs cycle" {
		t.Errorf("content = %q", notes[0].Content)
	}
	if notes[0].QuestionID != 2 {
		t.Errorf("question id = %d", notes[0].QuestionID)
	}
}

func TestCustomQuizCRUD(t *testing.T) {
	store := newTestStorage(t)
	owner, _ := store.RegisterUser("henry")
	other, _ := store.RegisterUser("iris")

	questions := []models.QuizQuestion{
		{Question: "What is 2+2?", Options: []string{"A) 3", "B) 4"}, Answer: "B) 4"},
	}
	quiz := &models.CustomQuiz{
		UserID:      owner.ID,
		Title:       "Arithmetic basics",
		Description: "warm-up",
		Questions:   questions,
		IsPublic:    false,
	}
	if err := store.CreateCustomQuiz(quiz); err != nil {
		t.Fatalf("CreateCustomQuiz: %v", err)
	}
	if quiz.ID == "" {
		t.Fatal("expected generated quiz ID")
	}

	got, err := store.GetCustomQuiz(quiz.ID)
	if err != nil {
		t.Fatalf("GetCustomQuiz: %v", err)
	}
	if got.Title != "Arithmetic basics" {
		t.Errorf("title = %q", got.Title)
	}
	if len(got.Questions) != 1 || got.Questions[0].Answer != "B) 4" {
		t.Errorf("questions = %+v", got.Questions)
	}

	// Private quizzes only show for their owner.
	mine, err := store.ListCustomQuizzes(owner.ID, true)
	if err != nil {
		t.Fatalf("ListCustomQuizzes: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("owner sees %d quizzes, want 1", len(mine))
	}
	theirs, err := store.ListCustomQuizzes(other.ID, true)
	if err != nil {
		t.Fatalf("ListCustomQuizzes: %v", err)
	}
	if len(theirs) != 0 {
		t.Errorf("other user sees %d private quizzes, want 0", len(theirs))
	}

	// Public quizzes show for everyone.
	public := &models.CustomQuiz{
		UserID:    owner.ID,
		Title:     "Shared quiz",
		Questions: questions,
		IsPublic:  true,
	}
	if err := store.CreateCustomQuiz(public); err != nil {
		t.Fatalf("CreateCustomQuiz: %v", err)
	}
	theirs, err = store.ListCustomQuizzes(other.ID, true)
	if err != nil {
		t.Fatalf("ListCustomQuizzes: %v", err)
	}
	if len(theirs) != 1 || theirs[0].Title != "Shared quiz" {
		t.Errorf("other user sees %+v", theirs)
	}

	byOwner, err := store.ListUserQuizzes(owner.ID)
	if err != nil {
		t.Fatalf("ListUserQuizzes: %v", err)
	}
	if len(byOwner) != 2 {
		t.Errorf("owner has %d quizzes, want 2", len(byOwner))
	}

	if err := store.DeleteCustomQuiz(quiz.ID); err != nil {
		t.Fatalf("DeleteCustomQuiz: %v", err)
	}
	if _, err := store.GetCustomQuiz(quiz.ID); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("expected ErrQuizNotFound after delete, got %v", err)
	}
}

func TestDeleteCustomQuizMissing(t *testing.T) {
	store := newTestStorage(t)
	if err := store.DeleteCustomQuiz("no-such-quiz"); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("expected ErrQuizNotFound, got %v", err)
	}
}
