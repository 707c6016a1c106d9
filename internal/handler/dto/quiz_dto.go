package dto

import (
	"time"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/service"
)

// GenerateQuizRequest представляет запрос на генерацию викторины
type GenerateQuizRequest struct {
	Topic         string `json:"topic" binding:"required,min=1,max=200"`
	Difficulty    string `json:"difficulty" binding:"required"`
	QuestionCount int    `json:"question_count" binding:"required"`
}

// QuestionResponse — вопрос без правильного ответа
type QuestionResponse struct {
	ID      uint           `json:"id"`
	Text    string         `json:"text"`
	Options entity.Options `json:"options"`
}

// QuizResponse — викторина в ответах API. Правильные ответы не отдаются.
type QuizResponse struct {
	QuizID     string             `json:"quiz_id"`
	Topic      string             `json:"topic"`
	Difficulty string             `json:"difficulty"`
	Questions  []QuestionResponse `json:"questions"`
	CreatedAt  time.Time          `json:"created_at"`
}

// NewQuizResponse создает ответ с викториной
func NewQuizResponse(quiz *entity.Quiz) *QuizResponse {
	questions := make([]QuestionResponse, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = QuestionResponse{
			ID:      q.ID,
			Text:    q.Text,
			Options: q.Options,
		}
	}
	return &QuizResponse{
		QuizID:     quiz.PublicID,
		Topic:      quiz.Topic,
		Difficulty: string(quiz.Difficulty),
		Questions:  questions,
		CreatedAt:  quiz.CreatedAt,
	}
}

// SubmitQuizRequest представляет запрос на сабмит ответов.
// Answers — отображение ID вопроса в метку варианта a..d.
type SubmitQuizRequest struct {
	QuizID  string          `json:"quiz_id" binding:"required,uuid"`
	Answers map[uint]string `json:"answers" binding:"required"`
}

// SubmitQuizResponse — итог прохождения викторины
type SubmitQuizResponse struct {
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Message        string `json:"message"`
}

// HistoryResponse — страница истории пользователя
type HistoryResponse struct {
	Results  []service.HistoryItem `json:"results"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// NewHistoryResponse создает страницу истории
func NewHistoryResponse(items []service.HistoryItem, total int64, page, pageSize int) *HistoryResponse {
	return &HistoryResponse{
		Results:  items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
