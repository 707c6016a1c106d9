package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// QuizRepo реализует repository.QuizRepository
type QuizRepo struct {
	db *gorm.DB
}

// NewQuizRepo создает новый репозиторий викторин
func NewQuizRepo(db *gorm.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// Create создает новую викторину вместе с вопросами
func (r *QuizRepo) Create(quiz *entity.Quiz) error {
	return r.db.Create(quiz).Error
}

// GetByID возвращает викторину по ID без вопросов
func (r *QuizRepo) GetByID(id uint) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.First(&quiz, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// GetByPublicID возвращает викторину по внешнему идентификатору вместе с вопросами
func (r *QuizRepo) GetByPublicID(publicID string) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.Preload("Questions").Where("public_id = ?", publicID).First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// GetWithQuestions возвращает викторину вместе с вопросами
func (r *QuizRepo) GetWithQuestions(id uint) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.Preload("Questions").First(&quiz, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// GetByIDs возвращает викторины по набору внутренних ID.
// Отсутствующие ID не считаются ошибкой: результат содержит только найденные записи.
func (r *QuizRepo) GetByIDs(ids []uint) ([]entity.Quiz, error) {
	if len(ids) == 0 {
		return []entity.Quiz{}, nil
	}

	var quizzes []entity.Quiz
	if err := r.db.Where("id IN ?", ids).Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}
