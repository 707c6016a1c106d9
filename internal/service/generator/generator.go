// Package generator отвечает за производство вопросов для викторин.
// Источник вопросов — внешний коллаборатор сервиса викторин: его можно
// заменить на интеграцию с LLM или банком вопросов, не трогая сервисы.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// QuestionGenerator производит n вопросов по теме и сложности.
// Каждый вопрос должен иметь четыре варианта a..d и одну правильную метку.
type QuestionGenerator interface {
	Generate(topic string, difficulty entity.Difficulty, n int) ([]entity.Question, error)
}

// TemplateGenerator — локальная реализация на шаблонах.
// Детерминированного качества вопросов не гарантирует, но всегда выдаёт
// структурно корректный набор: ровно n вопросов, у каждого четыре варианта
// и правильная метка из a..d.
type TemplateGenerator struct {
	rng *rand.Rand
}

// NewTemplateGenerator создает генератор вопросов на шаблонах
func NewTemplateGenerator(seed int64) *TemplateGenerator {
	return &TemplateGenerator{rng: rand.New(rand.NewSource(seed))}
}

var questionTemplates = []string{
	"Какое утверждение о теме %q является верным?",
	"Что из перечисленного лучше всего описывает %q?",
	"Какой факт о %q подтверждён?",
	"Выберите правильное утверждение про %q.",
	"Что относится к %q?",
}

var optionLabels = []string{
	entity.OptionLabelA,
	entity.OptionLabelB,
	entity.OptionLabelC,
	entity.OptionLabelD,
}

// Generate производит n вопросов по теме
func (g *TemplateGenerator) Generate(topic string, difficulty entity.Difficulty, n int) ([]entity.Question, error) {
	if n <= 0 {
		return nil, fmt.Errorf("question count must be positive, got %d", n)
	}

	questions := make([]entity.Question, 0, n)
	for i := 0; i < n; i++ {
		tmpl := questionTemplates[i%len(questionTemplates)]
		correct := optionLabels[g.rng.Intn(len(optionLabels))]

		q := entity.Question{
			Text: fmt.Sprintf(tmpl, topic),
			Options: entity.Options{
				A: g.optionText(topic, difficulty, i, entity.OptionLabelA, correct),
				B: g.optionText(topic, difficulty, i, entity.OptionLabelB, correct),
				C: g.optionText(topic, difficulty, i, entity.OptionLabelC, correct),
				D: g.optionText(topic, difficulty, i, entity.OptionLabelD, correct),
			},
			CorrectOption: correct,
		}
		questions = append(questions, q)
	}

	return questions, nil
}

func (g *TemplateGenerator) optionText(topic string, difficulty entity.Difficulty, idx int, label, correct string) string {
	if label == correct {
		return fmt.Sprintf("Верное утверждение о %s (уровень %s, вопрос %d)", topic, difficulty, idx+1)
	}
	return fmt.Sprintf("Вариант %s для %s (вопрос %d)", label, topic, idx+1)
}
