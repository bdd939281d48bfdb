package entity

import (
	"time"
)

// DefaultElo — стартовый рейтинг нового игрока.
const DefaultElo = 1200

// Player представляет игрока в системе.
// PlayerID — непрозрачный идентификатор вызывающего (выдаётся транспортом),
// он же постоянный первичный ключ.
type Player struct {
	PlayerID string `gorm:"primaryKey;size:64;column:player_id" json:"player_id"`
	Name     string `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Score    int64  `gorm:"not null;default:0" json:"score"`
	Elo      int    `gorm:"not null;default:1200;index:idx_players_leaderboard" json:"elo"`

	// Version — счетчик оптимистической блокировки
	Version int `gorm:"not null;default:1" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Player) TableName() string {
	return "players"
}
