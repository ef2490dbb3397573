// ABOUTME: HTTP server wiring: gin router, CORS, and handler registration
// ABOUTME: Routes mirror the public study API; all payloads are JSON
package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studypilot/internal/models"
	"studypilot/internal/storage/sqlite"
)

// StudyService is the pipeline surface the handlers call. The concrete
// implementation lives in internal/core.
type StudyService interface {
	AnswerQuestion(ctx context.Context, text, question string) (string, error)
	GenerateQuiz(ctx context.Context, text string, count int, difficulty models.Difficulty) ([]models.QuizQuestion, error)
	GenerateSchedule(ctx context.Context, text string, days int, hoursPerDay float64) []models.ScheduleDay
	Summarize(ctx context.Context, text string) (string, error)
	Flashcards(ctx context.Context, text string) (string, error)
}

// Server bundles the handler dependencies.
type Server struct {
	study StudyService
	store *sqlite.Storage
	log   *zap.SugaredLogger
}

// New creates a Server.
func New(study StudyService, store *sqlite.Storage, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Server{study: study, store: store, log: log}
}

// Router builds the gin engine with CORS and every route registered.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: false,
	}))

	router.GET("/healthcheck", s.healthCheck)

	api := router.Group("/api")
	{
		// Document pipelines
		api.POST("/upload-pdf", s.uploadQuiz)
		api.POST("/ask-pdf", s.askDocument)
		api.POST("/generate-study-schedule", s.generateStudySchedule)
		api.POST("/generate-schedule", s.generateLessonPlan)
		api.POST("/summary", s.summary)
		api.POST("/flashcards", s.flashcards)
		api.POST("/export-results", s.exportResults)

		// Accounts and history
		api.POST("/user/register", s.registerUser)
		api.POST("/user/login", s.loginUser)
		api.POST("/quiz/submit", s.submitQuiz)
		api.GET("/quiz/history", s.quizHistory)
		api.GET("/quiz/performance", s.quizPerformance)
		api.POST("/save-notes", s.saveNotes)

		// Custom quizzes
		api.POST("/custom-quiz/create", s.createCustomQuiz)
		api.GET("/custom-quiz/list", s.listCustomQuizzes)
		api.GET("/custom-quiz/:id", s.getCustomQuiz)
		api.GET("/custom-quizzes/user/:user_id", s.listUserQuizzes)
		api.DELETE("/custom-quizzes/:id", s.deleteCustomQuiz)
	}

	return router
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
