package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
	"github.com/yourusername/quiz-api/internal/service/generator"
)

// MockQuestionGenerator реализует generator.QuestionGenerator
type MockQuestionGenerator struct {
	mock.Mock
}

func (m *MockQuestionGenerator) Generate(topic string, difficulty entity.Difficulty, n int) ([]entity.Question, error) {
	args := m.Called(topic, difficulty, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func createTestQuizService(
	quizRepo *MockQuizRepo,
	resultRepo *MockResultRepo,
	userRepo *MockUserRepo,
	questionGen generator.QuestionGenerator,
) *QuizService {
	// StatsService без кеша: инвалидация становится no-op
	statsService := NewStatsService(userRepo, quizRepo, resultRepo, nil)
	return NewQuizService(quizRepo, resultRepo, userRepo, statsService, questionGen)
}

func threeQuestionQuiz() *entity.Quiz {
	return &entity.Quiz{
		ID:            10,
		PublicID:      "3f1b9a52-0000-0000-0000-000000000000",
		Topic:         "go",
		Difficulty:    entity.DifficultyMedium,
		QuestionCount: 3,
		Questions: []entity.Question{
			{ID: 101, QuizID: 10, CorrectOption: entity.OptionLabelA, Options: entity.Options{A: "a", B: "b", C: "c", D: "d"}},
			{ID: 102, QuizID: 10, CorrectOption: entity.OptionLabelB, Options: entity.Options{A: "a", B: "b", C: "c", D: "d"}},
			{ID: 103, QuizID: 10, CorrectOption: entity.OptionLabelC, Options: entity.Options{A: "a", B: "b", C: "c", D: "d"}},
		},
	}
}

// ============================================================================
// GenerateQuiz
// ============================================================================

func TestQuizService_GenerateQuiz_Success(t *testing.T) {
	// Arrange
	mockQuizRepo := new(MockQuizRepo)
	mockGen := new(MockQuestionGenerator)

	questions := []entity.Question{
		{Text: "q1", CorrectOption: entity.OptionLabelA},
		{Text: "q2", CorrectOption: entity.OptionLabelB},
		{Text: "q3", CorrectOption: entity.OptionLabelD},
	}
	mockGen.On("Generate", "go", entity.DifficultyMedium, 3).Return(questions, nil)
	mockQuizRepo.On("Create", mock.MatchedBy(func(q *entity.Quiz) bool {
		return q.Topic == "go" && q.Difficulty == entity.DifficultyMedium &&
			q.QuestionCount == 3 && q.PublicID != ""
	})).Return(nil)

	quizService := createTestQuizService(mockQuizRepo, new(MockResultRepo), new(MockUserRepo), mockGen)

	// Act
	quiz, err := quizService.GenerateQuiz("go", "medium", 3)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, quiz)
	assert.Len(t, quiz.Questions, 3)
	assert.NotEmpty(t, quiz.PublicID, "Викторина должна получить внешний идентификатор")
	mockQuizRepo.AssertExpectations(t)
	mockGen.AssertExpectations(t)
}

func TestQuizService_GenerateQuiz_QuestionCountBounds(t *testing.T) {
	// Arrange
	mockGen := new(MockQuestionGenerator)
	quizService := createTestQuizService(new(MockQuizRepo), new(MockResultRepo), new(MockUserRepo), mockGen)

	// Act / Assert: границы диапазона 1..10
	for _, n := range []int{0, -1, 11, 100} {
		quiz, err := quizService.GenerateQuiz("go", "easy", n)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "Количество %d должно отклоняться", n)
		assert.Nil(t, quiz)
	}
	mockGen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuizService_GenerateQuiz_InvalidDifficulty(t *testing.T) {
	// Arrange
	mockGen := new(MockQuestionGenerator)
	quizService := createTestQuizService(new(MockQuizRepo), new(MockResultRepo), new(MockUserRepo), mockGen)

	// Act
	quiz, err := quizService.GenerateQuiz("go", "impossible", 5)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Nil(t, quiz)
	mockGen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuizService_GenerateQuiz_EmptyTopic(t *testing.T) {
	// Arrange
	mockGen := new(MockQuestionGenerator)
	quizService := createTestQuizService(new(MockQuizRepo), new(MockResultRepo), new(MockUserRepo), mockGen)

	// Act
	quiz, err := quizService.GenerateQuiz("   ", "easy", 5)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Nil(t, quiz)
}

// ============================================================================
// SubmitQuiz
// ============================================================================

func TestQuizService_SubmitQuiz_ScoresOnlyCorrectAnswers(t *testing.T) {
	// Arrange
	mockQuizRepo := new(MockQuizRepo)
	mockResultRepo := new(MockResultRepo)
	mockUserRepo := new(MockUserRepo)
	quiz := threeQuestionQuiz()

	mockQuizRepo.On("GetByPublicID", quiz.PublicID).Return(quiz, nil)
	mockResultRepo.On("Create", mock.MatchedBy(func(r *entity.QuizResult) bool {
		return r.UserID == 1 && r.QuizID == 10 && r.Score == 2 && r.TotalQuestions == 3
	})).Return(nil)
	mockUserRepo.On("ApplyQuizResult", uint(1), 2).Return(nil)

	quizService := createTestQuizService(mockQuizRepo, mockResultRepo, mockUserRepo, new(MockQuestionGenerator))

	// Act: два верных ответа, один неверный
	answers := map[uint]string{
		101: entity.OptionLabelA, // верно
		102: entity.OptionLabelB, // верно
		103: entity.OptionLabelD, // неверно
	}
	result, err := quizService.SubmitQuiz(1, quiz.PublicID, answers)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 3, result.TotalQuestions)
	mockQuizRepo.AssertExpectations(t)
	mockResultRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestQuizService_SubmitQuiz_UnansweredAndUnknownGiveNoPoints(t *testing.T) {
	// Arrange
	mockQuizRepo := new(MockQuizRepo)
	mockResultRepo := new(MockResultRepo)
	mockUserRepo := new(MockUserRepo)
	quiz := threeQuestionQuiz()

	mockQuizRepo.On("GetByPublicID", quiz.PublicID).Return(quiz, nil)
	mockResultRepo.On("Create", mock.MatchedBy(func(r *entity.QuizResult) bool {
		return r.Score == 1 && r.TotalQuestions == 3
	})).Return(nil)
	mockUserRepo.On("ApplyQuizResult", uint(1), 1).Return(nil)

	quizService := createTestQuizService(mockQuizRepo, mockResultRepo, mockUserRepo, new(MockQuestionGenerator))

	// Act: один верный ответ, один неизвестный ID вопроса, остальные без ответа
	answers := map[uint]string{
		101: entity.OptionLabelA, // верно
		999: entity.OptionLabelA, // вопрос не из этой викторины
	}
	result, err := quizService.SubmitQuiz(1, quiz.PublicID, answers)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score, "Неотвеченные вопросы и чужие ID не дают очков")
}

func TestQuizService_SubmitQuiz_QuizNotFound(t *testing.T) {
	// Arrange
	mockQuizRepo := new(MockQuizRepo)
	mockResultRepo := new(MockResultRepo)
	mockQuizRepo.On("GetByPublicID", "missing").Return(nil, apperrors.ErrNotFound)

	quizService := createTestQuizService(mockQuizRepo, mockResultRepo, new(MockUserRepo), new(MockQuestionGenerator))

	// Act
	result, err := quizService.SubmitQuiz(1, "missing", map[uint]string{})

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, result)
	mockResultRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// ============================================================================
// GetUserHistory
// ============================================================================

func TestQuizService_GetUserHistory_EnrichesWithQuizAttributes(t *testing.T) {
	// Arrange: второй результат ссылается на удалённую викторину
	mockQuizRepo := new(MockQuizRepo)
	mockResultRepo := new(MockResultRepo)

	now := time.Now()
	results := []entity.QuizResult{
		{ID: 1, UserID: 1, QuizID: 10, Score: 8, TotalQuestions: 10, CreatedAt: now},
		{ID: 2, UserID: 1, QuizID: 20, Score: 4, TotalQuestions: 10, CreatedAt: now},
	}
	quizzes := []entity.Quiz{
		{ID: 10, PublicID: "pub-10", Topic: "go", Difficulty: entity.DifficultyHard},
	}

	mockResultRepo.On("GetUserResults", uint(1), 20, 0).Return(results, int64(2), nil)
	mockQuizRepo.On("GetByIDs", []uint{10, 20}).Return(quizzes, nil)

	quizService := createTestQuizService(mockQuizRepo, mockResultRepo, new(MockUserRepo), new(MockQuestionGenerator))

	// Act
	items, total, err := quizService.GetUserHistory(1, 1, 20)

	// Assert: результат удалённой викторины остаётся в истории
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "go", items[0].Topic)
	assert.Equal(t, "hard", items[0].Difficulty)
	assert.Equal(t, "pub-10", items[0].QuizID)
	assert.Empty(t, items[1].Topic, "Удалённая викторина оставляет пустые атрибуты")
	assert.Equal(t, 4, items[1].Score)
}

// ============================================================================
// GetLeaderboard
// ============================================================================

func TestQuizService_GetLeaderboard_Pagination(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepo)
	users := []entity.User{
		{ID: 1, Username: "alice", TotalScore: 100},
		{ID: 2, Username: "bob", TotalScore: 80},
	}
	// page=2, pageSize=2 -> offset=2, limit=2
	mockUserRepo.On("GetLeaderboard", 2, 2).Return(users, int64(10), nil)

	quizService := createTestQuizService(new(MockQuizRepo), new(MockResultRepo), mockUserRepo, new(MockQuestionGenerator))

	// Act
	result, total, err := quizService.GetLeaderboard(2, 2)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)
	assert.Len(t, result, 2)
	mockUserRepo.AssertExpectations(t)
}
