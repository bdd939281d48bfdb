package entity

import (
	"time"
)

// LobbyStatus — замкнутое перечисление статусов лобби
type LobbyStatus string

// Константы статусов лобби
const (
	LobbyStatusWaiting  LobbyStatus = "waiting"
	LobbyStatusInGame   LobbyStatus = "in_game"
	LobbyStatusFinished LobbyStatus = "finished"
)

// Valid проверяет, что статус входит в перечисление
func (s LobbyStatus) Valid() bool {
	switch s {
	case LobbyStatusWaiting, LobbyStatusInGame, LobbyStatusFinished:
		return true
	}
	return false
}

// CanTransitionTo проверяет допустимость перехода waiting → in_game → finished.
// Обратных переходов и пропусков нет; finished — терминальный статус.
func (s LobbyStatus) CanTransitionTo(next LobbyStatus) bool {
	switch s {
	case LobbyStatusWaiting:
		return next == LobbyStatusInGame
	case LobbyStatusInGame:
		return next == LobbyStatusFinished
	case LobbyStatusFinished:
		return false
	}
	return false
}

// Lobby представляет комнату ожидания, принадлежащую игроку-хосту
type Lobby struct {
	ID                   uint        `gorm:"primaryKey" json:"id"`
	Name                 *string     `gorm:"size:100" json:"name,omitempty"`
	Status               LobbyStatus `gorm:"size:20;not null;default:'waiting';index" json:"status"`
	HostID               string      `gorm:"size:64;not null;index" json:"host_id"`
	NextRoundIsLightning bool        `gorm:"not null;default:false" json:"next_round_is_lightning"`

	// Version — счетчик оптимистической блокировки
	Version int `gorm:"not null;default:1" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Lobby) TableName() string {
	return "lobbies"
}

// IsWaiting проверяет, принимает ли лобби новых игроков
func (l *Lobby) IsWaiting() bool {
	return l.Status == LobbyStatusWaiting
}

// IsInGame проверяет, идет ли в лобби игра
func (l *Lobby) IsInGame() bool {
	return l.Status == LobbyStatusInGame
}

// IsHost проверяет, является ли игрок хостом лобби
func (l *Lobby) IsHost(playerID string) bool {
	return l.HostID == playerID
}
