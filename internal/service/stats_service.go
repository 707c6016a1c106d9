package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// recentActivityWindow — окно "недавней активности" в развёрнутой статистике
const recentActivityWindow = 7 * 24 * time.Hour

// comprehensiveStatsTTL — TTL кеша развёрнутого отчёта.
// Отчёт дорогой (загружает всю историю пользователя), но быстро устаревает.
const comprehensiveStatsTTL = 5 * time.Minute

// GroupStats — статистика по одной группе (сложность или тема).
// AverageScore усечён до целого делением суммы на количество.
type GroupStats struct {
	Quizzes      int `json:"quizzes"`
	AverageScore int `json:"average_score"`
}

// ComprehensiveStats — развёрнутый отчёт по истории пользователя.
// Итоговые поля считаются по ВСЕМ результатам; разбивки по сложности и теме
// включают только результаты, чья викторина ещё существует.
type ComprehensiveStats struct {
	Username               string                `json:"username"`
	TotalQuizzesTaken      int                   `json:"total_quizzes_taken"`
	AverageScore           int                   `json:"average_score"`
	BestScore              int                   `json:"best_score"`
	TotalQuestionsAnswered int                   `json:"total_questions_answered"`
	ByDifficulty           map[string]GroupStats `json:"by_difficulty"`
	ByTopic                map[string]GroupStats `json:"by_topic"`
	RecentActivity         int                   `json:"recent_activity"`
}

// StatsService предоставляет агрегированную статистику по результатам викторин.
// Единственная реализация подсчёта в системе: и эндпоинт статистики, и любые
// будущие потребители обязаны идти через этот сервис.
type StatsService struct {
	userRepo   repository.UserRepository
	quizRepo   repository.QuizRepository
	resultRepo repository.ResultRepository
	cacheRepo  repository.CacheRepository

	// now подменяется в тестах для проверки окна недавней активности
	now func() time.Time
}

// NewStatsService создает новый сервис статистики.
// cacheRepo может быть nil, тогда кеширование отключено.
func NewStatsService(
	userRepo repository.UserRepository,
	quizRepo repository.QuizRepository,
	resultRepo repository.ResultRepository,
	cacheRepo repository.CacheRepository,
) *StatsService {
	return &StatsService{
		userRepo:   userRepo,
		quizRepo:   quizRepo,
		resultRepo: resultRepo,
		cacheRepo:  cacheRepo,
		now:        time.Now,
	}
}

// BasicStats возвращает базовую статистику пользователя одной set-based
// агрегацией. Если результатов нет, возвращает (nil, nil): отсутствие
// статистики — валидное состояние, а не ошибка и не нулевой отчёт.
func (s *StatsService) BasicStats(userID uint) (*repository.BasicAggregate, error) {
	agg, err := s.resultRepo.AggregateBasic(userID)
	if err != nil {
		log.Printf("[StatsService] Ошибка агрегации для пользователя ID=%d: %v", userID, err)
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}
	return agg, nil
}

// ComprehensiveStats строит развёрнутый отчёт одним проходом по всем
// результатам пользователя. Викторины подгружаются заранее одним запросом
// по набору ID. Результат, чья викторина удалена, исключается из обеих
// разбивок, но учитывается во всех итоговых полях.
func (s *StatsService) ComprehensiveStats(userID uint) (*ComprehensiveStats, error) {
	cacheKey := comprehensiveStatsKey(userID)
	if s.cacheRepo != nil {
		var cached ComprehensiveStats
		err := s.cacheRepo.GetJSON(cacheKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			// Кеш не критичен: считаем заново
			log.Printf("[StatsService] Ошибка чтения кеша для пользователя ID=%d: %v", userID, err)
		}
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	results, err := s.resultRepo.GetAllByUser(userID)
	if err != nil {
		log.Printf("[StatsService] Ошибка загрузки результатов пользователя ID=%d: %v", userID, err)
		return nil, fmt.Errorf("failed to load results: %w", err)
	}

	stats := &ComprehensiveStats{
		Username:     user.Username,
		ByDifficulty: make(map[string]GroupStats),
		ByTopic:      make(map[string]GroupStats),
	}
	if len(results) == 0 {
		return stats, nil
	}

	quizzes, err := s.preloadQuizzes(results)
	if err != nil {
		log.Printf("[StatsService] Ошибка загрузки викторин для пользователя ID=%d: %v", userID, err)
		return nil, fmt.Errorf("failed to load quizzes: %w", err)
	}

	type groupAcc struct {
		count int
		sum   int
	}
	byDifficulty := make(map[string]*groupAcc)
	byTopic := make(map[string]*groupAcc)

	var totalScore int
	recentSince := s.now().Add(-recentActivityWindow)

	for i := range results {
		res := &results[i]

		// Итоги считаются по каждому результату без исключений
		stats.TotalQuizzesTaken++
		totalScore += res.Score
		stats.TotalQuestionsAnswered += res.TotalQuestions
		if res.Score > stats.BestScore {
			stats.BestScore = res.Score
		}
		if !res.CreatedAt.Before(recentSince) {
			stats.RecentActivity++
		}

		// Разбивки требуют атрибутов викторины. Осиротевший результат
		// (викторина удалена) пропускается в обеих разбивках сразу.
		quiz, ok := quizzes[res.QuizID]
		if !ok {
			continue
		}

		diffKey := string(quiz.Difficulty)
		if acc, exists := byDifficulty[diffKey]; exists {
			acc.count++
			acc.sum += res.Score
		} else {
			byDifficulty[diffKey] = &groupAcc{count: 1, sum: res.Score}
		}

		if acc, exists := byTopic[quiz.Topic]; exists {
			acc.count++
			acc.sum += res.Score
		} else {
			byTopic[quiz.Topic] = &groupAcc{count: 1, sum: res.Score}
		}
	}

	// Все средние усекаются целочисленным делением
	stats.AverageScore = totalScore / stats.TotalQuizzesTaken
	for key, acc := range byDifficulty {
		stats.ByDifficulty[key] = GroupStats{Quizzes: acc.count, AverageScore: acc.sum / acc.count}
	}
	for key, acc := range byTopic {
		stats.ByTopic[key] = GroupStats{Quizzes: acc.count, AverageScore: acc.sum / acc.count}
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(cacheKey, stats, comprehensiveStatsTTL); err != nil {
			log.Printf("[StatsService] Ошибка записи кеша для пользователя ID=%d: %v", userID, err)
		}
	}

	return stats, nil
}

// InvalidateUser сбрасывает кешированный отчёт пользователя.
// Вызывается после сабмита викторины. Ошибки кеша не фатальны.
func (s *StatsService) InvalidateUser(userID uint) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Delete(comprehensiveStatsKey(userID)); err != nil {
		log.Printf("[StatsService] Ошибка инвалидации кеша для пользователя ID=%d: %v", userID, err)
	}
}

// preloadQuizzes загружает все викторины, на которые ссылаются результаты,
// одним запросом и индексирует их по ID.
func (s *StatsService) preloadQuizzes(results []entity.QuizResult) (map[uint]*entity.Quiz, error) {
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
		return nil, err
	}

	byID := make(map[uint]*entity.Quiz, len(quizzes))
	for i := range quizzes {
		byID[quizzes[i].ID] = &quizzes[i]
	}
	return byID, nil
}

func comprehensiveStatsKey(userID uint) string {
	return fmt.Sprintf("stats:comprehensive:%d", userID)
}
