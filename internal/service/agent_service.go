package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/trivia-lobby/internal/domain/entity"
	"github.com/yourusername/trivia-lobby/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-lobby/internal/pkg/errors"
)

// AgentService управляет регистрацией внешних агентов-генераторов,
// очередью их заданий и приемом сгенерированных вопросов
type AgentService struct {
	registrationRepo repository.AgentRegistrationRepository
	jobRepo          repository.AgentJobRepository
	questionRepo     repository.QuestionRepository
}

// NewAgentService создает новый сервис агентов
func NewAgentService(
	registrationRepo repository.AgentRegistrationRepository,
	jobRepo repository.AgentJobRepository,
	questionRepo repository.QuestionRepository,
) *AgentService {
	return &AgentService{
		registrationRepo: registrationRepo,
		jobRepo:          jobRepo,
		questionRepo:     questionRepo,
	}
}

// RegisterAgent создает неизменяемую регистрацию агента
func (s *AgentService) RegisterAgent(ownerID, contentHash string, capabilities []string, energyQuota int64) (*entity.AgentRegistration, error) {
	if strings.TrimSpace(contentHash) == "" {
		return nil, fmt.Errorf("%w: content hash is required", apperrors.ErrValidation)
	}
	if len(capabilities) == 0 {
		return nil, fmt.Errorf("%w: at least one capability is required", apperrors.ErrValidation)
	}
	for _, c := range capabilities {
		if strings.TrimSpace(c) == "" {
			return nil, fmt.Errorf("%w: capability must not be empty", apperrors.ErrValidation)
		}
	}
	if energyQuota < 0 {
		return nil, fmt.Errorf("%w: energy quota must not be negative", apperrors.ErrValidation)
	}

	registration := &entity.AgentRegistration{
		OwnerID:      ownerID,
		ContentHash:  contentHash,
		Capabilities: capabilities,
		EnergyQuota:  energyQuota,
	}
	if err := s.registrationRepo.Create(registration); err != nil {
		return nil, fmt.Errorf("failed to register agent: %w", err)
	}

	log.Printf("[AgentService] Зарегистрирован агент #%d владельца %s", registration.ID, ownerID)
	return registration, nil
}

// RequestWork ставит задание на генерацию вопросов в очередь агента
func (s *AgentService) RequestWork(agentID uint, payload string) (*entity.AgentJob, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, fmt.Errorf("%w: job payload is required", apperrors.ErrValidation)
	}

	if _, err := s.registrationRepo.GetByID(agentID); err != nil {
		return nil, err
	}

	job := &entity.AgentJob{
		AgentID: agentID,
		Payload: payload,
		Status:  entity.AgentJobStatusPending,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, fmt.Errorf("failed to enqueue agent job: %w", err)
	}

	log.Printf("[AgentService] Задание #%d поставлено в очередь агента #%d", job.ID, agentID)
	return job, nil
}

// UpdateJobStatus перезаписывает статус задания.
// Статус проверяется на принадлежность перечислению; сообщение об ошибке
// имеет смысл только для статуса failed.
func (s *AgentService) UpdateJobStatus(jobID uint, status entity.AgentJobStatus, errorMessage *string) (*entity.AgentJob, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown job status %q", apperrors.ErrValidation, status)
	}
	if status != entity.AgentJobStatusFailed {
		errorMessage = nil
	}

	job, err := s.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.UpdateStatus(jobID, job.Version, status, errorMessage); err != nil {
		return nil, err
	}

	job.Status = status
	job.ErrorMessage = errorMessage
	job.Version++
	log.Printf("[AgentService] Задание #%d переведено в статус %s", jobID, status)
	return job, nil
}

// ListJobs возвращает задания в указанном статусе
func (s *AgentService) ListJobs(status entity.AgentJobStatus, limit int) ([]entity.AgentJob, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown job status %q", apperrors.ErrValidation, status)
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.jobRepo.ListByStatus(status, limit)
}

// SubmitGeneratedQuestions принимает пакет вопросов, сгенерированных агентом
// по заданию. Пустой пакет отклоняется; задание должно существовать и
// принадлежать агенту. Неполные вопросы пропускаются; возвращается
// количество принятых.
func (s *AgentService) SubmitGeneratedQuestions(jobID, agentID uint, questions []entity.Question) (int, error) {
	if len(questions) == 0 {
		return 0, fmt.Errorf("%w: draft list is empty", apperrors.ErrValidation)
	}

	registration, err := s.registrationRepo.GetByID(agentID)
	if err != nil {
		return 0, err
	}

	job, err := s.jobRepo.GetByID(jobID)
	if err != nil {
		return 0, err
	}
	if job.AgentID != agentID {
		return 0, fmt.Errorf("%w: job #%d does not belong to agent #%d", apperrors.ErrValidation, jobID, agentID)
	}

	origin := fmt.Sprintf("agent-%d", registration.ID)
	accepted := make([]entity.Question, 0, len(questions))
	for i := range questions {
		q := questions[i]
		if !q.Validate() {
			log.Printf("[AgentService] Агент #%d: вопрос %d пакета неполон, пропущен", agentID, i)
			continue
		}
		q.ID = 0
		q.OriginAgent = &origin
		accepted = append(accepted, q)
	}

	if len(accepted) == 0 {
		return 0, nil
	}
	if err := s.questionRepo.CreateBatch(accepted); err != nil {
		return 0, fmt.Errorf("failed to store generated questions: %w", err)
	}

	log.Printf("[AgentService] Агент #%d: задание #%d, принято %d из %d вопросов",
		agentID, jobID, len(accepted), len(questions))
	return len(accepted), nil
}
