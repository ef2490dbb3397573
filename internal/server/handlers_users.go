// ABOUTME: Handlers for accounts, quiz submissions, history, and notes
// ABOUTME: Thin JSON shims over the storage facade
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studypilot/internal/models"
	"studypilot/internal/storage/sqlite"
)

func (s *Server) registerUser(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	user, err := s.store.RegisterUser(req.Username)
	if err != nil {
		if errors.Is(err, sqlite.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
			return
		}
		s.log.Errorw("user registration failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user_id": user.ID, "username": user.Username})
}

// loginUser logs in a user, auto-registering unknown usernames.
func (s *Server) loginUser(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	user, err := s.store.LoginUser(req.Username)
	if err != nil {
		s.log.Errorw("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user_id": user.ID, "username": user.Username})
}

func (s *Server) submitQuiz(c *gin.Context) {
	var req struct {
		UserID         string `json:"user_id"`
		Score          *int   `json:"score"`
		TotalQuestions int    `json:"total_questions"`
		QuizTopic      string `json:"quiz_topic"`
		TimeTaken      int    `json:"time_taken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.Score == nil || req.TotalQuestions == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	topic := req.QuizTopic
	if topic == "" {
		topic = "General"
	}
	attempt := &models.QuizAttempt{
		UserID:         req.UserID,
		Score:          *req.Score,
		TotalQuestions: req.TotalQuestions,
		Topic:          topic,
		TimeTaken:      req.TimeTaken,
	}
	if err := s.store.SaveAttempt(attempt); err != nil {
		s.log.Errorw("failed to save attempt", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"attempt_id": attempt.ID,
		"performance": gin.H{
			"score":      attempt.Score,
			"total":      attempt.TotalQuestions,
			"percentage": attempt.Percentage(),
		},
	})
}

func (s *Server) quizHistory(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	attempts, err := s.store.History(userID)
	if err != nil {
		s.log.Errorw("failed to load history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	history := make([]gin.H, 0, len(attempts))
	for _, a := range attempts {
		history = append(history, gin.H{
			"id":              a.ID,
			"score":           a.Score,
			"total_questions": a.TotalQuestions,
			"percentage":      a.Percentage(),
			"quiz_topic":      a.Topic,
			"created_at":      a.CreatedAt,
			"time_taken":      a.TimeTaken,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "history": history})
}

func (s *Server) quizPerformance(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	report, err := s.store.Performance(userID)
	if err != nil {
		s.log.Errorw("failed to compute performance", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"overall": report.Overall,
		"topics":  report.Topics,
		"trend":   report.Trend,
	})
}

func (s *Server) saveNotes(c *gin.Context) {
	var req struct {
		UserID     string `json:"user_id"`
		Notes      string `json:"notes"`
		QuizID     string `json:"quiz_id"`
		QuestionID int    `json:"question_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.Notes == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	note := &models.Note{
		UserID:     req.UserID,
		Content:    req.Notes,
		QuizID:     req.QuizID,
		QuestionID: req.QuestionID,
	}
	if err := s.store.SaveNote(note); err != nil {
		s.log.Errorw("failed to save note", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "note_id": note.ID})
}
