package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Метки вариантов ответа. Каждый вопрос имеет ровно четыре варианта a..d.
const (
	OptionLabelA = "a"
	OptionLabelB = "b"
	OptionLabelC = "c"
	OptionLabelD = "d"
)

// Options - пользовательский тип для работы с JSONB.
// Хранит четыре помеченных варианта ответа.
type Options struct {
	A string `json:"a"`
	B string `json:"b"`
	C string `json:"c"`
	D string `json:"d"`
}

// Scan реализует интерфейс sql.Scanner для Options
// Используется GORM для чтения JSONB данных из базы
func (o *Options) Scan(value interface{}) error {
	if value == nil {
		*o = Options{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*o = Options{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для Options
// Используется GORM для записи Options в JSONB в базе
func (o Options) Value() (driver.Value, error) {
	return json.Marshal(o)
}

// ByLabel возвращает текст варианта по метке и признак её существования
func (o Options) ByLabel(label string) (string, bool) {
	switch label {
	case OptionLabelA:
		return o.A, true
	case OptionLabelB:
		return o.B, true
	case OptionLabelC:
		return o.C, true
	case OptionLabelD:
		return o.D, true
	default:
		return "", false
	}
}

// Question представляет вопрос в викторине
type Question struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	QuizID        uint      `gorm:"not null;index" json:"quiz_id"`
	Text          string    `gorm:"size:500;not null" json:"text"`
	Options       Options   `gorm:"type:jsonb;not null" json:"options"`
	CorrectOption string    `gorm:"size:1;not null" json:"-"` // Метка правильного варианта, скрыта от клиента
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsCorrect проверяет, является ли выбранная метка правильной
func (q *Question) IsCorrect(label string) bool {
	return label != "" && label == q.CorrectOption
}

// IsValidOption проверяет, что метка входит в a..d
func (q *Question) IsValidOption(label string) bool {
	_, ok := q.Options.ByLabel(label)
	return ok
}
