package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
)

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Create сохраняет результат викторины
func (r *ResultRepo) Create(result *entity.QuizResult) error {
	return r.db.Create(result).Error
}

// GetAllByUser возвращает все результаты пользователя, от новых к старым
func (r *ResultRepo) GetAllByUser(userID uint) ([]entity.QuizResult, error) {
	var results []entity.QuizResult
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetUserResults возвращает результаты пользователя с пагинацией и общим количеством
func (r *ResultRepo) GetUserResults(userID uint, limit, offset int) ([]entity.QuizResult, int64, error) {
	var results []entity.QuizResult
	var total int64

	if err := r.db.Model(&entity.QuizResult{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// AggregateBasic выполняет агрегацию COUNT/AVG/MAX/MIN одним запросом.
// Если у пользователя нет результатов, возвращает (nil, nil): отсутствие
// статистики — не ошибка, и её нельзя путать с нулевой статистикой.
func (r *ResultRepo) AggregateBasic(userID uint) (*repository.BasicAggregate, error) {
	var agg repository.BasicAggregate
	err := r.db.Model(&entity.QuizResult{}).
		Select("COUNT(*) AS total_quizzes, COALESCE(AVG(score), 0) AS average_score, COALESCE(MAX(score), 0) AS highest_score, COALESCE(MIN(score), 0) AS lowest_score").
		Where("user_id = ?", userID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	if agg.TotalQuizzes == 0 {
		return nil, nil
	}
	return &agg, nil
}
