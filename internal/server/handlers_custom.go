// ABOUTME: Handlers for user-authored custom quizzes
// ABOUTME: Create, list, fetch, per-user listing, and delete
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studypilot/internal/models"
	"studypilot/internal/storage/sqlite"
)

func (s *Server) createCustomQuiz(c *gin.Context) {
	var req struct {
		UserID      string                `json:"user_id"`
		Title       string                `json:"title"`
		Description string                `json:"description"`
		Questions   []models.QuizQuestion `json:"questions"`
		IsPublic    bool                  `json:"is_public"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.Title == "" || len(req.Questions) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	quiz := &models.CustomQuiz{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Questions:   req.Questions,
		IsPublic:    req.IsPublic,
	}
	if err := s.store.CreateCustomQuiz(quiz); err != nil {
		s.log.Errorw("failed to create custom quiz", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "quiz_id": quiz.ID})
}

func (s *Server) listCustomQuizzes(c *gin.Context) {
	userID := c.Query("user_id")
	includePublic := c.DefaultQuery("include_public", "true") == "true"

	quizzes, err := s.store.ListCustomQuizzes(userID, includePublic)
	if err != nil {
		s.log.Errorw("failed to list custom quizzes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "quizzes": quizzes})
}

func (s *Server) getCustomQuiz(c *gin.Context) {
	quiz, err := s.store.GetCustomQuiz(c.Param("id"))
	if err != nil {
		if errors.Is(err, sqlite.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
			return
		}
		s.log.Errorw("failed to load custom quiz", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "quiz": quiz})
}

func (s *Server) listUserQuizzes(c *gin.Context) {
	quizzes, err := s.store.ListUserQuizzes(c.Param("user_id"))
	if err != nil {
		s.log.Errorw("failed to list user quizzes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user quizzes"})
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

func (s *Server) deleteCustomQuiz(c *gin.Context) {
	if err := s.store.DeleteCustomQuiz(c.Param("id")); err != nil {
		if errors.Is(err, sqlite.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
			return
		}
		s.log.Errorw("failed to delete custom quiz", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete quiz"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Quiz deleted successfully"})
}
