package repository

import (
	"github.com/yourusername/trivia-lobby/internal/domain/entity"
)

// RoundRepository определяет методы для работы с раундами
type RoundRepository interface {
	Create(round *entity.ActiveRound) error
	GetByID(id uint) (*entity.ActiveRound, error)
	// GetByLobbyID возвращает все раунды лобби через индекс по lobby_id
	GetByLobbyID(lobbyID uint) ([]entity.ActiveRound, error)
	// UpdateStatus переводит раунд в новый статус (условно по version)
	UpdateStatus(roundID uint, version int, status entity.RoundStatus) error
}

// AnswerRepository определяет методы для работы с ответами игроков
type AnswerRepository interface {
	// Create вставляет ответ. Нарушение уникальности (round_id, player_id)
	// транслируется в apperrors.ErrDuplicateSubmission.
	Create(answer *entity.Answer) error
	GetByRoundAndPlayer(roundID uint, playerID string) (*entity.Answer, error)
	GetByRoundID(roundID uint) ([]entity.Answer, error)
	// GetByRoundIDs возвращает ответы сразу для набора раундов (для финализации игры)
	GetByRoundIDs(roundIDs []uint) ([]entity.Answer, error)
	// SetScore выставляет очки ответа ровно один раз: обновляются только
	// записи со score IS NULL, повторная попытка — ErrScoreAlreadySet.
	SetScore(answerID uint, score int) error
}

// CrowdMeterRepository определяет методы для работы со счетчиками вариантов
type CrowdMeterRepository interface {
	// Increment увеличивает счетчик пары (round_id, answer_index),
	// создавая запись со значением 1 при первом ответе
	Increment(roundID uint, answerIndex int) error
	GetByRound(roundID uint) ([]entity.CrowdMeterStat, error)
}
