package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-lobby/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-lobby/internal/pkg/errors"
)

// LobbyRepo реализует repository.LobbyRepository
type LobbyRepo struct {
	db *gorm.DB
}

// NewLobbyRepo создает новый репозиторий лобби
func NewLobbyRepo(db *gorm.DB) *LobbyRepo {
	return &LobbyRepo{db: db}
}

// Create создает новое лобби
func (r *LobbyRepo) Create(lobby *entity.Lobby) error {
	return r.db.Create(lobby).Error
}

// GetByID возвращает лобби по ID
func (r *LobbyRepo) GetByID(id uint) (*entity.Lobby, error) {
	var lobby entity.Lobby
	err := r.db.First(&lobby, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &lobby, nil
}

// FindWaiting возвращает лобби, принимающее игроков, через индекс по статусу.
// Берется самое старое waiting-лобби, чтобы выбор был детерминированным.
func (r *LobbyRepo) FindWaiting() (*entity.Lobby, error) {
	var lobby entity.Lobby
	err := r.db.Where("status = ?", entity.LobbyStatusWaiting).
		Order("id ASC").
		First(&lobby).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &lobby, nil
}

// UpdateState переводит лобби в новый статус и записывает флаг молниеносного
// раунда. Обновление условно по version:
// - RowsAffected == 0 при существующей записи → ErrVersionConflict
// - запись отсутствует → ErrNotFound
func (r *LobbyRepo) UpdateState(lobbyID uint, version int, status entity.LobbyStatus, nextRoundIsLightning bool) error {
	result := r.db.Model(&entity.Lobby{}).
		Where("id = ? AND version = ?", lobbyID, version).
		Updates(map[string]interface{}{
			"status":                  status,
			"next_round_is_lightning": nextRoundIsLightning,
			"version":                 version + 1,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.versionConflictOrNotFound(lobbyID)
	}
	return nil
}

// SetLightningFlag записывает только флаг молниеносного раунда (условно по version)
func (r *LobbyRepo) SetLightningFlag(lobbyID uint, version int, flag bool) error {
	result := r.db.Model(&entity.Lobby{}).
		Where("id = ? AND version = ?", lobbyID, version).
		Updates(map[string]interface{}{
			"next_round_is_lightning": flag,
			"version":                 version + 1,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.versionConflictOrNotFound(lobbyID)
	}
	return nil
}

func (r *LobbyRepo) versionConflictOrNotFound(lobbyID uint) error {
	var count int64
	if err := r.db.Model(&entity.Lobby{}).Where("id = ?", lobbyID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrVersionConflict
}
