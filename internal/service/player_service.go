package service

import (
	"github.com/yourusername/trivia-lobby/internal/domain/entity"
	"github.com/yourusername/trivia-lobby/internal/domain/repository"
)

// PlayerService предоставляет методы для работы с игроками
type PlayerService struct {
	playerRepo repository.PlayerRepository
}

// NewPlayerService создает новый сервис игроков
func NewPlayerService(playerRepo repository.PlayerRepository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

// GetPlayer возвращает игрока по идентификатору
func (s *PlayerService) GetPlayer(playerID string) (*entity.Player, error) {
	return s.playerRepo.GetByID(playerID)
}

// GetLeaderboard возвращает игроков по убыванию Elo с пагинацией
func (s *PlayerService) GetLeaderboard(page, pageSize int) ([]entity.Player, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.playerRepo.GetLeaderboard(pageSize, offset)
}
