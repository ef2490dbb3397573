// ABOUTME: Handlers for the document pipelines: quiz, Q&A, schedules, summary, flashcards
// ABOUTME: Each request extracts its document, runs one pipeline, and returns JSON
package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studypilot/internal/core"
	"studypilot/internal/extract"
	"studypilot/internal/models"
)

// documentText pulls the uploaded file out of the multipart form and
// extracts its text. Writes the error response itself on failure.
func (s *Server) documentText(c *gin.Context) (string, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return "", false
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open upload"})
		return "", false
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return "", false
	}

	text, err := extract.Text(file.Filename, data)
	if err != nil {
		s.log.Warnw("text extraction failed", "file", file.Filename, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not extract text from the document"})
		return "", false
	}
	return text, true
}

// uploadQuiz generates a quiz from an uploaded document. With adaptive=true
// and a user_id, the difficulty hint comes from that user's recent scores.
func (s *Server) uploadQuiz(c *gin.Context) {
	text, ok := s.documentText(c)
	if !ok {
		return
	}

	numQuestions := 5
	if v := c.PostForm("num_questions"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "num_questions must be a positive number"})
			return
		}
		numQuestions = n
	}
	userID := c.PostForm("user_id")
	adaptive := c.PostForm("adaptive") == "true"

	var difficulty models.Difficulty
	if adaptive && userID != "" {
		scores, err := s.store.RecentScores(userID, core.ScoreWindow)
		if err != nil {
			// Proceed without adaptation rather than failing the quiz.
			s.log.Warnw("failed to load score history", "user_id", userID, "error", err)
		} else if tier, ok := core.SelectDifficulty(scores); ok {
			difficulty = tier
		}
	}

	quiz, err := s.study.GenerateQuiz(c.Request.Context(), text, numQuestions, difficulty)
	if err != nil {
		if errors.Is(err, core.ErrNoQuestions) {
			// Explicitly signaled empty result, not a silent zero-question success.
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"quiz":  []models.QuizQuestion{},
				"error": err.Error(),
			})
			return
		}
		s.log.Errorw("quiz generation failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quiz":       quiz,
		"difficulty": difficulty,
		"adaptive":   adaptive,
	})
}

// askDocument answers a question grounded in the uploaded document.
func (s *Server) askDocument(c *gin.Context) {
	question := c.PostForm("question")
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No question provided"})
		return
	}

	text, ok := s.documentText(c)
	if !ok {
		return
	}

	answer, err := s.study.AnswerQuestion(c.Request.Context(), text, question)
	if err != nil {
		s.log.Errorw("question answering failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// generateStudySchedule builds an AI study plan from the uploaded document.
// Generation failures fall back internally, so this never returns an
// upstream error to the client.
func (s *Server) generateStudySchedule(c *gin.Context) {
	durationDays := 14
	if v := c.PostForm("duration_days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parameters. Please provide valid numbers for duration and hours."})
			return
		}
		durationDays = n
	}
	hoursPerDay := 2.0
	if v := c.PostForm("hours_per_day"); v != "" {
		h, err := strconv.ParseFloat(v, 64)
		if err != nil || h <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parameters. Please provide valid numbers for duration and hours."})
			return
		}
		hoursPerDay = h
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	text, ok := s.documentText(c)
	if !ok {
		return
	}

	schedule := s.study.GenerateSchedule(c.Request.Context(), text, durationDays, hoursPerDay)
	c.JSON(http.StatusOK, gin.H{
		"schedule":      schedule,
		"file_name":     file.Filename,
		"duration_days": durationDays,
		"hours_per_day": hoursPerDay,
	})
}

// generateLessonPlan splits a fixed lesson count across study days.
func (s *Server) generateLessonPlan(c *gin.Context) {
	req := struct {
		TotalLessons int     `json:"total_lessons"`
		HoursPerDay  float64 `json:"hours_per_day"`
		StudyDays    int     `json:"study_days"`
	}{TotalLessons: 10, HoursPerDay: 2.0, StudyDays: 5}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.StudyDays <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "study_days must be positive"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schedule": core.SplitLessons(req.TotalLessons, req.StudyDays, req.HoursPerDay),
	})
}

// summary returns a concise summary of the uploaded document.
func (s *Server) summary(c *gin.Context) {
	text, ok := s.documentText(c)
	if !ok {
		return
	}

	summary, err := s.study.Summarize(c.Request.Context(), text)
	if err != nil {
		s.log.Errorw("summary generation failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// flashcards returns generated flashcards for the uploaded document.
func (s *Server) flashcards(c *gin.Context) {
	text, ok := s.documentText(c)
	if !ok {
		return
	}

	cards, err := s.study.Flashcards(c.Request.Context(), text)
	if err != nil {
		s.log.Errorw("flashcard generation failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flashcards": cards})
}
