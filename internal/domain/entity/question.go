package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// StringArray - пользовательский тип для работы с JSONB
type StringArray []string

// Scan реализует интерфейс sql.Scanner для StringArray
// Используется GORM для чтения JSONB данных из базы
func (o *StringArray) Scan(value interface{}) error {
	// Обработка NULL значений из базы данных
	if value == nil {
		*o = StringArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	// Обработка пустого массива байтов
	if len(bytes) == 0 {
		*o = StringArray{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для StringArray
// Используется GORM для записи StringArray в JSONB в базе
func (o StringArray) Value() (driver.Value, error) {
	if o == nil || len(o) == 0 {
		return []byte("[]"), nil // Возвращаем пустой JSON массив вместо null
	}
	return json.Marshal(o)
}

// Question представляет вопрос в банке вопросов.
// Правильный ответ хранится отдельно от неправильных: клиенты получают
// варианты в каноническом порядке (правильный — первым) и перемешивают
// их на своей стороне.
type Question struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Text          string      `gorm:"size:500;not null" json:"text"`
	CorrectAnswer string      `gorm:"size:255;not null" json:"-"` // Скрыто от клиента
	WrongAnswers  StringArray `gorm:"type:jsonb;not null" json:"-"`
	Topic         string      `gorm:"size:100;not null;index" json:"topic"`
	Difficulty    string      `gorm:"size:20;not null;index" json:"difficulty"`
	QualityScore  int         `gorm:"not null;default:0" json:"quality_score"`
	OriginAgent   *string     `gorm:"size:64" json:"origin_agent,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// Options возвращает варианты ответа в каноническом порядке:
// правильный ответ всегда под индексом 0.
func (q *Question) Options() []string {
	options := make([]string, 0, 1+len(q.WrongAnswers))
	options = append(options, q.CorrectAnswer)
	options = append(options, q.WrongAnswers...)
	return options
}

// OptionsCount возвращает количество вариантов ответа
func (q *Question) OptionsCount() int {
	return 1 + len(q.WrongAnswers)
}

// IsValidOption проверяет, является ли выбранный вариант допустимым
func (q *Question) IsValidOption(selectedOption int) bool {
	return selectedOption >= 0 && selectedOption < q.OptionsCount()
}

// Validate проверяет полноту вопроса: текст, правильный ответ, тема и
// сложность не пусты, есть хотя бы один непустой неправильный вариант.
func (q *Question) Validate() bool {
	if strings.TrimSpace(q.Text) == "" ||
		strings.TrimSpace(q.CorrectAnswer) == "" ||
		strings.TrimSpace(q.Topic) == "" ||
		strings.TrimSpace(q.Difficulty) == "" {
		return false
	}
	if len(q.WrongAnswers) == 0 {
		return false
	}
	for _, wa := range q.WrongAnswers {
		if strings.TrimSpace(wa) == "" {
			return false
		}
	}
	return true
}
