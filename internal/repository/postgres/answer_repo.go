package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-lobby/internal/domain/entity"
	"github.com/yourusername/trivia-lobby/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-lobby/internal/pkg/errors"
)

// AnswerRepo реализует repository.AnswerRepository
type AnswerRepo struct {
	db *gorm.DB
}

// NewAnswerRepo создает новый репозиторий ответов
func NewAnswerRepo(db *gorm.DB) *AnswerRepo {
	return &AnswerRepo{db: db}
}

// Create вставляет ответ игрока.
// Уникальный индекс (round_id, player_id) защищает от двойной отправки:
// 23505 транслируется в ErrDuplicateSubmission, а не во вторую запись.
func (r *AnswerRepo) Create(answer *entity.Answer) error {
	if err := r.db.Create(answer).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: round #%d", apperrors.ErrDuplicateSubmission, answer.RoundID)
		}
		return err
	}
	return nil
}

// GetByRoundAndPlayer возвращает ответ игрока в раунде
func (r *AnswerRepo) GetByRoundAndPlayer(roundID uint, playerID string) (*entity.Answer, error) {
	var answer entity.Answer
	err := r.db.Where("round_id = ? AND player_id = ?", roundID, playerID).First(&answer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &answer, nil
}

// GetByRoundID возвращает все ответы раунда
func (r *AnswerRepo) GetByRoundID(roundID uint) ([]entity.Answer, error) {
	var answers []entity.Answer
	err := r.db.Where("round_id = ?", roundID).Order("id").Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

// GetByRoundIDs возвращает ответы сразу для набора раундов (для финализации игры)
func (r *AnswerRepo) GetByRoundIDs(roundIDs []uint) ([]entity.Answer, error) {
	if len(roundIDs) == 0 {
		return nil, nil
	}
	var answers []entity.Answer
	err := r.db.Where("round_id IN ?", roundIDs).Order("id").Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

// SetScore выставляет очки ответа ровно один раз.
// Обновляются только записи со score IS NULL:
// - RowsAffected == 0 при существующей записи → ErrScoreAlreadySet
// - запись отсутствует → ErrNotFound
func (r *AnswerRepo) SetScore(answerID uint, score int) error {
	result := r.db.Model(&entity.Answer{}).
		Where("id = ? AND score IS NULL", answerID).
		Update("score", score)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&entity.Answer{}).Where("id = ?", answerID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.ErrNotFound
		}
		return repository.ErrScoreAlreadySet
	}
	return nil
}
