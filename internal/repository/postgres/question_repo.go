package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-lobby/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-lobby/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// CreateBatch создает несколько вопросов за одну вставку
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Create(&questions).Error
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Count возвращает размер банка вопросов
func (r *QuestionRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Count(&count).Error
	return count, err
}

// GetByOffset возвращает n-й вопрос в стабильном порядке по id.
// Используется для равномерного выбора вопроса по индексу в [0, Count).
func (r *QuestionRepo) GetByOffset(offset int64) (*entity.Question, error) {
	var question entity.Question
	err := r.db.Order("id").Offset(int(offset)).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// List возвращает вопросы с пагинацией
func (r *QuestionRepo) List(limit, offset int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Limit(limit).Offset(offset).Order("id").Find(&questions).Error
	return questions, err
}
