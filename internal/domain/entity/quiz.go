package entity

import (
	"time"
)

// Difficulty — закрытое перечисление сложности викторины.
// Хранится в БД строкой, но в коде используется только через константы ниже.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IsValid проверяет, является ли значение допустимой сложностью
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// ParseDifficulty преобразует строку в Difficulty.
// Возвращает false, если значение не входит в перечисление.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(s)
	return d, d.IsValid()
}

// Quiz представляет сгенерированную викторину.
// После генерации викторина неизменяема: вопросы и атрибуты не редактируются.
type Quiz struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	PublicID      string     `gorm:"size:36;not null;uniqueIndex" json:"public_id"`
	Topic         string     `gorm:"size:200;not null;index" json:"topic"`
	Difficulty    Difficulty `gorm:"size:20;not null" json:"difficulty"`
	QuestionCount int        `gorm:"not null;default:0" json:"question_count"`
	Questions     []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Quiz) TableName() string {
	return "quizzes"
}
