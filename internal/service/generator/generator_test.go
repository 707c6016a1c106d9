package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-api/internal/domain/entity"
)

func TestTemplateGenerator_Generate_StructurallyValid(t *testing.T) {
	// Arrange
	gen := NewTemplateGenerator(42)

	// Act
	questions, err := gen.Generate("история", entity.DifficultyMedium, 10)

	// Assert
	require.NoError(t, err)
	require.Len(t, questions, 10, "Должно быть ровно запрошенное количество вопросов")

	for i, q := range questions {
		assert.NotEmpty(t, q.Text, "Вопрос %d должен иметь текст", i)
		assert.NotEmpty(t, q.Options.A)
		assert.NotEmpty(t, q.Options.B)
		assert.NotEmpty(t, q.Options.C)
		assert.NotEmpty(t, q.Options.D)

		_, ok := q.Options.ByLabel(q.CorrectOption)
		assert.True(t, ok, "Правильная метка вопроса %d должна входить в a..d", i)
	}
}

func TestTemplateGenerator_Generate_RejectsNonPositiveCount(t *testing.T) {
	gen := NewTemplateGenerator(1)

	questions, err := gen.Generate("go", entity.DifficultyEasy, 0)

	assert.Error(t, err)
	assert.Nil(t, questions)
}

func TestTemplateGenerator_Generate_DeterministicWithSeed(t *testing.T) {
	// Один и тот же seed даёт одинаковый набор правильных меток
	genA := NewTemplateGenerator(7)
	genB := NewTemplateGenerator(7)

	qa, err := genA.Generate("go", entity.DifficultyHard, 5)
	require.NoError(t, err)
	qb, err := genB.Generate("go", entity.DifficultyHard, 5)
	require.NoError(t, err)

	for i := range qa {
		assert.Equal(t, qa[i].CorrectOption, qb[i].CorrectOption)
	}
}
