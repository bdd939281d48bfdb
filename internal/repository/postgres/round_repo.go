package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-lobby/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-lobby/internal/pkg/errors"
)

// RoundRepo реализует repository.RoundRepository
type RoundRepo struct {
	db *gorm.DB
}

// NewRoundRepo создает новый репозиторий раундов
func NewRoundRepo(db *gorm.DB) *RoundRepo {
	return &RoundRepo{db: db}
}

// Create создает новый раунд
func (r *RoundRepo) Create(round *entity.ActiveRound) error {
	return r.db.Create(round).Error
}

// GetByID возвращает раунд по ID
func (r *RoundRepo) GetByID(id uint) (*entity.ActiveRound, error) {
	var round entity.ActiveRound
	err := r.db.First(&round, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &round, nil
}

// GetByLobbyID возвращает все раунды лобби через индекс по lobby_id
func (r *RoundRepo) GetByLobbyID(lobbyID uint) ([]entity.ActiveRound, error) {
	var rounds []entity.ActiveRound
	err := r.db.Where("lobby_id = ?", lobbyID).Order("id").Find(&rounds).Error
	if err != nil {
		return nil, err
	}
	return rounds, nil
}

// UpdateStatus переводит раунд в новый статус. Обновление условно по version:
// - RowsAffected == 0 при существующей записи → ErrVersionConflict
// - запись отсутствует → ErrNotFound
func (r *RoundRepo) UpdateStatus(roundID uint, version int, status entity.RoundStatus) error {
	result := r.db.Model(&entity.ActiveRound{}).
		Where("id = ? AND version = ?", roundID, version).
		Updates(map[string]interface{}{
			"status":  status,
			"version": version + 1,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&entity.ActiveRound{}).Where("id = ?", roundID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrVersionConflict
	}
	return nil
}
