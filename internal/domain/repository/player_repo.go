package repository

import (
	"github.com/yourusername/trivia-lobby/internal/domain/entity"
)

// PlayerRepository определяет методы для работы с игроками
type PlayerRepository interface {
	// Create вставляет нового игрока. Нарушение уникальности имени
	// транслируется в apperrors.ErrNameConflict.
	Create(player *entity.Player) error
	GetByID(playerID string) (*entity.Player, error)
	GetByName(name string) (*entity.Player, error)
	// AddScore атомарно прибавляет очки к накопленному счету игрока
	AddScore(playerID string, points int64) error
	// UpdateRating записывает новый Elo и сбрасывает накопленный счет.
	// Обновление условно по version; несовпадение — apperrors.ErrVersionConflict.
	UpdateRating(playerID string, version int, elo int) error
	// GetLeaderboard возвращает игроков по убыванию Elo с пагинацией и общим количеством
	GetLeaderboard(limit, offset int) ([]entity.Player, int64, error)
}
