package repository

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// BasicAggregate — результат set-based агрегации по результатам пользователя.
// Среднее здесь арифметическое (float), в отличие от усечённых средних
// развёрнутой статистики.
type BasicAggregate struct {
	TotalQuizzes int64   `json:"total_quizzes"`
	AverageScore float64 `json:"average_score"`
	HighestScore int     `json:"highest_score"`
	LowestScore  int     `json:"lowest_score"`
}

// ResultRepository определяет методы для работы с результатами викторин
type ResultRepository interface {
	Create(result *entity.QuizResult) error
	// GetAllByUser возвращает все результаты пользователя без пагинации.
	// Пустой слайс — валидный результат, не ошибка.
	GetAllByUser(userID uint) ([]entity.QuizResult, error)
	// GetUserResults возвращает результаты пользователя с пагинацией и общим количеством
	GetUserResults(userID uint, limit, offset int) ([]entity.QuizResult, int64, error)
	// AggregateBasic выполняет COUNT/AVG/MAX/MIN одним запросом.
	// Возвращает (nil, nil), если у пользователя нет ни одного результата.
	AggregateBasic(userID uint) (*BasicAggregate, error)
}
