package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-lobby/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-lobby/internal/pkg/errors"
)

// AgentJobRepo реализует repository.AgentJobRepository
type AgentJobRepo struct {
	db *gorm.DB
}

// NewAgentJobRepo создает новый репозиторий заданий агентов
func NewAgentJobRepo(db *gorm.DB) *AgentJobRepo {
	return &AgentJobRepo{db: db}
}

// Create ставит задание в очередь
func (r *AgentJobRepo) Create(job *entity.AgentJob) error {
	return r.db.Create(job).Error
}

// GetByID возвращает задание по ID
func (r *AgentJobRepo) GetByID(id uint) (*entity.AgentJob, error) {
	var job entity.AgentJob
	err := r.db.First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// UpdateStatus перезаписывает статус и сообщение об ошибке задания
// (условно по version)
func (r *AgentJobRepo) UpdateStatus(jobID uint, version int, status entity.AgentJobStatus, errorMessage *string) error {
	result := r.db.Model(&entity.AgentJob{}).
		Where("id = ? AND version = ?", jobID, version).
		Updates(map[string]interface{}{
			"status":        status,
			"error_message": errorMessage,
			"version":       version + 1,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&entity.AgentJob{}).Where("id = ?", jobID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrVersionConflict
	}
	return nil
}

// ListByStatus возвращает задания в указанном статусе (для воркеров-агентов)
func (r *AgentJobRepo) ListByStatus(status entity.AgentJobStatus, limit int) ([]entity.AgentJob, error) {
	var jobs []entity.AgentJob
	err := r.db.Where("status = ?", status).Order("id").Limit(limit).Find(&jobs).Error
	return jobs, err
}

// AgentRegistrationRepo реализует repository.AgentRegistrationRepository
type AgentRegistrationRepo struct {
	db *gorm.DB
}

// NewAgentRegistrationRepo создает новый репозиторий регистраций агентов
func NewAgentRegistrationRepo(db *gorm.DB) *AgentRegistrationRepo {
	return &AgentRegistrationRepo{db: db}
}

// Create создает регистрацию агента
func (r *AgentRegistrationRepo) Create(registration *entity.AgentRegistration) error {
	return r.db.Create(registration).Error
}

// GetByID возвращает регистрацию по ID
func (r *AgentRegistrationRepo) GetByID(id uint) (*entity.AgentRegistration, error) {
	var registration entity.AgentRegistration
	err := r.db.First(&registration, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &registration, nil
}
