package entity

import (
	"time"
)

// QuizResult представляет одну завершённую попытку пользователя пройти викторину.
// Запись создаётся при сабмите и после этого неизменяема.
// Инвариант: 0 <= Score <= TotalQuestions, TotalQuestions > 0.
type QuizResult struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	QuizID         uint      `gorm:"not null;index" json:"quiz_id"`
	Score          int       `gorm:"not null;default:0" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (QuizResult) TableName() string {
	return "quiz_results"
}
