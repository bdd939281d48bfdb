package entity

import (
	"time"
)

// AgentJobStatus — замкнутое перечисление статусов задания агента
type AgentJobStatus string

// Константы статусов задания
const (
	AgentJobStatusPending    AgentJobStatus = "pending"
	AgentJobStatusProcessing AgentJobStatus = "processing"
	AgentJobStatusCompleted  AgentJobStatus = "completed"
	AgentJobStatusFailed     AgentJobStatus = "failed"
)

// Valid проверяет, что статус входит в перечисление
func (s AgentJobStatus) Valid() bool {
	switch s {
	case AgentJobStatusPending, AgentJobStatusProcessing, AgentJobStatusCompleted, AgentJobStatusFailed:
		return true
	}
	return false
}

// AgentJob представляет задание на генерацию вопросов для внешнего агента
type AgentJob struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	AgentID      uint           `gorm:"not null;index" json:"agent_id"`
	Payload      string         `gorm:"type:text;not null" json:"payload"`
	Status       AgentJobStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	ErrorMessage *string        `gorm:"size:500" json:"error_message,omitempty"`

	// Version — счетчик оптимистической блокировки
	Version int `gorm:"not null;default:1" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (AgentJob) TableName() string {
	return "agent_jobs"
}
