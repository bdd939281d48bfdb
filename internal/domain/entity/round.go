package entity

import (
	"time"
)

// RoundStatus — замкнутое перечисление статусов раунда
type RoundStatus string

// Константы статусов раунда
const (
	RoundStatusWaiting    RoundStatus = "waiting"
	RoundStatusInProgress RoundStatus = "in_progress"
	RoundStatusScoring    RoundStatus = "scoring"
	RoundStatusFinished   RoundStatus = "finished"
)

// Valid проверяет, что статус входит в перечисление
func (s RoundStatus) Valid() bool {
	switch s {
	case RoundStatusWaiting, RoundStatusInProgress, RoundStatusScoring, RoundStatusFinished:
		return true
	}
	return false
}

// CanTransitionTo проверяет допустимость перехода
// waiting → in_progress → scoring → finished: строго вперед, без пропусков.
func (s RoundStatus) CanTransitionTo(next RoundStatus) bool {
	switch s {
	case RoundStatusWaiting:
		return next == RoundStatusInProgress
	case RoundStatusInProgress:
		return next == RoundStatusScoring
	case RoundStatusScoring:
		return next == RoundStatusFinished
	case RoundStatusFinished:
		return false
	}
	return false
}

// ActiveRound представляет один цикл «вопрос-ответ» внутри игры лобби
type ActiveRound struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	LobbyID     uint        `gorm:"not null;index" json:"lobby_id"`
	QuestionID  uint        `gorm:"not null" json:"question_id"`
	StartTime   time.Time   `gorm:"not null" json:"start_time"`
	Status      RoundStatus `gorm:"size:20;not null;default:'waiting';index" json:"status"`
	IsLightning bool        `gorm:"not null;default:false" json:"is_lightning"`

	// Version — счетчик оптимистической блокировки
	Version int `gorm:"not null;default:1" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (ActiveRound) TableName() string {
	return "active_rounds"
}

// IsInProgress проверяет, принимает ли раунд ответы
func (r *ActiveRound) IsInProgress() bool {
	return r.Status == RoundStatusInProgress
}
