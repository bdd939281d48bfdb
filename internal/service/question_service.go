package service

import (
	"github.com/yourusername/trivia-lobby/internal/domain/entity"
	"github.com/yourusername/trivia-lobby/internal/domain/repository"
)

// QuestionService предоставляет методы для работы с банком вопросов
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// GetQuestion возвращает вопрос по ID
func (s *QuestionService) GetQuestion(id uint) (*entity.Question, error) {
	return s.questionRepo.GetByID(id)
}

// ListQuestions возвращает вопросы с пагинацией
func (s *QuestionService) ListQuestions(page, pageSize int) ([]entity.Question, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.questionRepo.List(pageSize, offset)
}

// ExportQuestions возвращает весь банк вопросов постранично для выгрузки
func (s *QuestionService) ExportQuestions() ([]entity.Question, error) {
	const batchSize = 500

	var all []entity.Question
	offset := 0
	for {
		batch, err := s.questionRepo.List(batchSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < batchSize {
			return all, nil
		}
		offset += batchSize
	}
}
