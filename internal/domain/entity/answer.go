package entity

import (
	"time"
)

// Answer представляет ответ игрока в раунде.
// Пара (round_id, player_id) уникальна: повторная отправка невозможна.
// Score остается NULL до подсчета результатов раунда и выставляется
// ровно один раз.
type Answer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	RoundID     uint   `gorm:"not null;uniqueIndex:idx_answers_round_player" json:"round_id"`
	PlayerID    string `gorm:"size:64;not null;uniqueIndex:idx_answers_round_player;index" json:"player_id"`
	ChosenIndex int    `gorm:"not null" json:"chosen_index"`
	Score       *int   `json:"score,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Answer) TableName() string {
	return "answers"
}

// IsScored проверяет, был ли ответ уже оценен
func (a *Answer) IsScored() bool {
	return a.Score != nil
}
