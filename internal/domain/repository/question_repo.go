package repository

import (
	"github.com/yourusername/trivia-lobby/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с банком вопросов
type QuestionRepository interface {
	Create(question *entity.Question) error
	CreateBatch(questions []entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	Count() (int64, error)
	// GetByOffset возвращает n-й вопрос в стабильном порядке по id.
	// Используется для равномерного выбора вопроса по индексу в [0, Count).
	GetByOffset(offset int64) (*entity.Question, error)
	List(limit, offset int) ([]entity.Question, error)
}
