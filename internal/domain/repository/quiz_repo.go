package repository

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// QuizRepository определяет методы для работы с викторинами
type QuizRepository interface {
	// Create сохраняет викторину вместе с вопросами (GORM-ассоциация)
	Create(quiz *entity.Quiz) error
	GetByID(id uint) (*entity.Quiz, error)
	// GetByPublicID возвращает викторину по внешнему идентификатору (uuid)
	GetByPublicID(publicID string) (*entity.Quiz, error)
	GetWithQuestions(id uint) (*entity.Quiz, error)
	// GetByIDs возвращает викторины по набору внутренних ID.
	// Отсутствующие ID молча пропускаются — вызывающий код сам решает,
	// что делать с результатами, чья викторина не нашлась.
	GetByIDs(ids []uint) ([]entity.Quiz, error)
}
