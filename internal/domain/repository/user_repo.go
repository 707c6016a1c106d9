package repository

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id uint) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	// UpdatePassword безопасно обновляет хеш пароля одной записью
	UpdatePassword(userID uint, newPassword string) error
	// ApplyQuizResult атомарно увеличивает total_score и quizzes_taken после сабмита
	ApplyQuizResult(userID uint, score int) error
	// GetLeaderboard возвращает пользователей для лидерборда с пагинацией и общим количеством
	GetLeaderboard(limit, offset int) ([]entity.User, int64, error)
}
