package repository

import (
	"github.com/yourusername/trivia-lobby/internal/domain/entity"
)

// AgentJobRepository определяет методы для работы с очередью заданий агентов
type AgentJobRepository interface {
	Create(job *entity.AgentJob) error
	GetByID(id uint) (*entity.AgentJob, error)
	// UpdateStatus перезаписывает статус и сообщение об ошибке (условно по version)
	UpdateStatus(jobID uint, version int, status entity.AgentJobStatus, errorMessage *string) error
	// ListByStatus возвращает задания в указанном статусе (для воркеров-агентов)
	ListByStatus(status entity.AgentJobStatus, limit int) ([]entity.AgentJob, error)
}

// AgentRegistrationRepository определяет методы для регистрации агентов
type AgentRegistrationRepository interface {
	Create(registration *entity.AgentRegistration) error
	GetByID(id uint) (*entity.AgentRegistration, error)
}
