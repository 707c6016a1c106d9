package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-api/internal/handler/dto"
	"github.com/yourusername/quiz-api/internal/service"
)

// QuizHandler обрабатывает запросы, связанные с викторинами
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// Generate обрабатывает запрос на генерацию викторины
// POST /api/quizzes/generate
func (h *QuizHandler) Generate(c *gin.Context) {
	var req dto.GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.quizService.GenerateQuiz(req.Topic, req.Difficulty, req.QuestionCount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuizResponse(quiz))
}

// Get возвращает викторину по внешнему идентификатору без правильных ответов
// GET /api/quizzes/:id
func (h *QuizHandler) Get(c *gin.Context) {
	publicID := c.MustGet("quizPublicID").(string) // Получаем из контекста

	quiz, err := h.quizService.GetQuizByPublicID(publicID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(quiz))
}

// Submit принимает ответы пользователя и возвращает счёт
// POST /api/quizzes/submit
func (h *QuizHandler) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.quizService.SubmitQuiz(userID, req.QuizID, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SubmitQuizResponse{
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Message:        "Quiz submitted successfully",
	})
}

// Leaderboard возвращает страницу лидерборда
// GET /api/leaderboard
func (h *QuizHandler) Leaderboard(c *gin.Context) {
	page, pageSize := paginationParams(c)

	users, total, err := h.quizService.GetLeaderboard(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLeaderboardResponse(users, total, page, pageSize))
}
