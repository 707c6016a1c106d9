package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
	"github.com/yourusername/quiz-api/internal/service/generator"
)

// Границы количества вопросов в одной викторине
const (
	MinQuestionCount = 1
	MaxQuestionCount = 10
)

// HistoryItem — один результат в истории пользователя, обогащённый
// атрибутами викторины. Если викторина удалена, Topic и Difficulty пустые.
type HistoryItem struct {
	QuizID         string    `json:"quiz_id"`
	Topic          string    `json:"topic"`
	Difficulty     string    `json:"difficulty"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

// SubmitResult — итог сабмита викторины
type SubmitResult struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"total_questions"`
}

// QuizService предоставляет генерацию, прохождение и историю викторин
type QuizService struct {
	quizRepo   repository.QuizRepository
	resultRepo repository.ResultRepository
	userRepo   repository.UserRepository
	statsSvc   *StatsService
	questions  generator.QuestionGenerator
}

// NewQuizService создает новый сервис викторин
func NewQuizService(
	quizRepo repository.QuizRepository,
	resultRepo repository.ResultRepository,
	userRepo repository.UserRepository,
	statsSvc *StatsService,
	questions generator.QuestionGenerator,
) *QuizService {
	return &QuizService{
		quizRepo:   quizRepo,
		resultRepo: resultRepo,
		userRepo:   userRepo,
		statsSvc:   statsSvc,
		questions:  questions,
	}
}

// GenerateQuiz создает новую викторину по теме и сложности.
// Количество вопросов ограничено диапазоном [MinQuestionCount, MaxQuestionCount].
func (s *QuizService) GenerateQuiz(topic, difficulty string, questionCount int) (*entity.Quiz, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("topic must not be empty: %w", apperrors.ErrValidation)
	}

	diff, ok := entity.ParseDifficulty(difficulty)
	if !ok {
		return nil, fmt.Errorf("difficulty must be one of easy, medium, hard: %w", apperrors.ErrValidation)
	}

	if questionCount < MinQuestionCount || questionCount > MaxQuestionCount {
		return nil, fmt.Errorf("question count must be between %d and %d: %w",
			MinQuestionCount, MaxQuestionCount, apperrors.ErrValidation)
	}

	questions, err := s.questions.Generate(topic, diff, questionCount)
	if err != nil {
		log.Printf("[QuizService] Ошибка генерации вопросов topic=%s: %v", topic, err)
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	quiz := &entity.Quiz{
		PublicID:      uuid.NewString(),
		Topic:         topic,
		Difficulty:    diff,
		QuestionCount: len(questions),
		Questions:     questions,
	}
	if err := s.quizRepo.Create(quiz); err != nil {
		log.Printf("[QuizService] Ошибка сохранения викторины topic=%s: %v", topic, err)
		return nil, fmt.Errorf("failed to save quiz: %w", err)
	}

	log.Printf("[QuizService] Сгенерирована викторина ID=%d topic=%s difficulty=%s questions=%d",
		quiz.ID, quiz.Topic, quiz.Difficulty, quiz.QuestionCount)
	return quiz, nil
}

// GetQuizByPublicID возвращает викторину с вопросами по внешнему идентификатору
func (s *QuizService) GetQuizByPublicID(publicID string) (*entity.Quiz, error) {
	return s.quizRepo.GetByPublicID(publicID)
}

// SubmitQuiz принимает ответы пользователя, подсчитывает счёт и сохраняет
// неизменяемый результат. Ответ — отображение ID вопроса в метку варианта;
// неотвеченные вопросы и неизвестные ID очков не дают. После сохранения
// обновляются счётчики пользователя и сбрасывается кеш статистики.
func (s *QuizService) SubmitQuiz(userID uint, quizPublicID string, answers map[uint]string) (*SubmitResult, error) {
	quiz, err := s.quizRepo.GetByPublicID(quizPublicID)
	if err != nil {
		return nil, err
	}

	score := 0
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		if label, ok := answers[q.ID]; ok && q.IsCorrect(label) {
			score++
		}
	}

	result := &entity.QuizResult{
		UserID:         userID,
		QuizID:         quiz.ID,
		Score:          score,
		TotalQuestions: len(quiz.Questions),
	}
	if err := s.resultRepo.Create(result); err != nil {
		log.Printf("[QuizService] Ошибка сохранения результата userID=%d quizID=%d: %v", userID, quiz.ID, err)
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	if err := s.userRepo.ApplyQuizResult(userID, score); err != nil {
		// Результат уже сохранён, счётчики разъехались. Фиксируем в логах.
		log.Printf("[QuizService] Ошибка обновления счётчиков userID=%d: %v", userID, err)
		return nil, fmt.Errorf("failed to update user counters: %w", err)
	}

	s.statsSvc.InvalidateUser(userID)

	log.Printf("[QuizService] Пользователь ID=%d прошёл викторину ID=%d: %d/%d",
		userID, quiz.ID, score, len(quiz.Questions))
	return &SubmitResult{Score: score, TotalQuestions: len(quiz.Questions)}, nil
}

// GetUserHistory возвращает страницу истории пользователя, от новых к старым
func (s *QuizService) GetUserHistory(userID uint, page, pageSize int) ([]HistoryItem, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	results, total, err := s.resultRepo.GetUserResults(userID, pageSize, offset)
	if err != nil {
		log.Printf("[QuizService] Ошибка загрузки истории userID=%d: %v", userID, err)
		return nil, 0, fmt.Errorf("failed to load history: %w", err)
	}

	items, err := s.enrichResults(results)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetFullHistory возвращает всю историю пользователя для экспорта
func (s *QuizService) GetFullHistory(userID uint) ([]HistoryItem, error) {
	results, err := s.resultRepo.GetAllByUser(userID)
	if err != nil {
		log.Printf("[QuizService] Ошибка загрузки истории для экспорта userID=%d: %v", userID, err)
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return s.enrichResults(results)
}

// GetLeaderboard возвращает страницу лидерборда по суммарному счёту
func (s *QuizService) GetLeaderboard(page, pageSize int) ([]entity.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	users, total, err := s.userRepo.GetLeaderboard(pageSize, offset)
	if err != nil {
		log.Printf("[QuizService] Ошибка загрузки лидерборда: %v", err)
		return nil, 0, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return users, total, nil
}

// enrichResults дополняет результаты атрибутами викторин, подгруженными
// одним запросом. Результаты удалённых викторин остаются в истории с
// пустыми Topic и Difficulty.
func (s *QuizService) enrichResults(results []entity.QuizResult) ([]HistoryItem, error) {
	seen := make(map[uint]bool, len(results))
	ids := make([]uint, 0, len(results))
	for i := range results {
		if !seen[results[i].QuizID] {
			seen[results[i].QuizID] = true
			ids = append(ids, results[i].QuizID)
		}
	}

	quizzes, err := s.quizRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load quizzes: %w", err)
	}
	byID := make(map[uint]*entity.Quiz, len(quizzes))
	for i := range quizzes {
		byID[quizzes[i].ID] = &quizzes[i]
	}

	items := make([]HistoryItem, 0, len(results))
	for i := range results {
		res := &results[i]
		item := HistoryItem{
			Score:          res.Score,
			TotalQuestions: res.TotalQuestions,
			CreatedAt:      res.CreatedAt,
		}
		if quiz, ok := byID[res.QuizID]; ok {
			item.QuizID = quiz.PublicID
			item.Topic = quiz.Topic
			item.Difficulty = string(quiz.Difficulty)
		}
		items = append(items, item)
	}
	return items, nil
}
