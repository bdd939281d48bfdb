package entity

import (
	"time"
)

// AgentRegistration представляет регистрацию внешнего агента-генератора.
// Запись создается один раз и после этого не изменяется.
type AgentRegistration struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	OwnerID      string      `gorm:"size:64;not null;index" json:"owner_id"`
	ContentHash  string      `gorm:"size:128;not null" json:"content_hash"`
	Capabilities StringArray `gorm:"type:jsonb;not null" json:"capabilities"`
	EnergyQuota  int64       `gorm:"not null;default:0" json:"energy_quota"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (AgentRegistration) TableName() string {
	return "agent_registrations"
}
