package repository

import (
	"github.com/yourusername/trivia-lobby/internal/domain/entity"
)

// LobbyRepository определяет методы для работы с лобби
type LobbyRepository interface {
	Create(lobby *entity.Lobby) error
	GetByID(id uint) (*entity.Lobby, error)
	// FindWaiting возвращает лобби в статусе waiting через индекс по статусу
	// (apperrors.ErrNotFound, если такого лобби нет)
	FindWaiting() (*entity.Lobby, error)
	// UpdateState переводит лобби в новый статус и записывает флаг
	// молниеносного раунда. Обновление условно по version.
	UpdateState(lobbyID uint, version int, status entity.LobbyStatus, nextRoundIsLightning bool) error
	// SetLightningFlag записывает только флаг молниеносного раунда (условно по version)
	SetLightningFlag(lobbyID uint, version int, flag bool) error
}
