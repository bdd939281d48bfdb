package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-lobby/internal/domain/entity"
	"github.com/yourusername/trivia-lobby/internal/handler/dto"
	"github.com/yourusername/trivia-lobby/internal/middleware"
	"github.com/yourusername/trivia-lobby/internal/service"
)

// AgentHandler обрабатывает запросы агентов-генераторов вопросов
type AgentHandler struct {
	agentService *service.AgentService
}

// NewAgentHandler создает новый обработчик агентов
func NewAgentHandler(agentService *service.AgentService) *AgentHandler {
	return &AgentHandler{agentService: agentService}
}

// RegisterAgentRequest — запрос на регистрацию агента
type RegisterAgentRequest struct {
	ContentHash  string   `json:"content_hash" binding:"required"`
	Capabilities []string `json:"capabilities" binding:"required"`
	EnergyQuota  int64    `json:"energy_quota"`
}

// RegisterAgent создает неизменяемую регистрацию агента
func (h *AgentHandler) RegisterAgent(c *gin.Context) {
	playerID := c.MustGet(middleware.PlayerIDKey).(string)

	var req RegisterAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registration, err := h.agentService.RegisterAgent(playerID, req.ContentHash, req.Capabilities, req.EnergyQuota)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAgentRegistrationResponse(registration))
}

// RequestWorkRequest — запрос на постановку задания в очередь
type RequestWorkRequest struct {
	Payload string `json:"payload" binding:"required"`
}

// RequestWork ставит задание на генерацию вопросов в очередь агента
func (h *AgentHandler) RequestWork(c *gin.Context) {
	agentID := c.MustGet("agentID").(uint)

	var req RequestWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.agentService.RequestWork(agentID, req.Payload)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAgentJobResponse(job))
}

// UpdateJobStatusRequest — запрос на смену статуса задания
type UpdateJobStatusRequest struct {
	Status       string  `json:"status" binding:"required"`
	ErrorMessage *string `json:"error_message"`
}

// UpdateJobStatus переводит задание в новый статус
func (h *AgentHandler) UpdateJobStatus(c *gin.Context) {
	jobID := c.MustGet("jobID").(uint)

	var req UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.agentService.UpdateJobStatus(jobID, entity.AgentJobStatus(req.Status), req.ErrorMessage)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAgentJobResponse(job))
}

// ListJobs возвращает задания в указанном статусе
func (h *AgentHandler) ListJobs(c *gin.Context) {
	status := c.DefaultQuery("status", string(entity.AgentJobStatusPending))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	jobs, err := h.agentService.ListJobs(entity.AgentJobStatus(status), limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAgentJobListResponse(jobs))
}

// SubmitQuestionsRequest — пакет сгенерированных вопросов по заданию.
// Полнота отдельных вопросов проверяется сервисом, а не валидатором.
type SubmitQuestionsRequest struct {
	JobID     uint `json:"job_id" binding:"required"`
	Questions []struct {
		Text          string   `json:"text"`
		CorrectAnswer string   `json:"correct_answer"`
		WrongAnswers  []string `json:"wrong_answers"`
		Topic         string   `json:"topic"`
		Difficulty    string   `json:"difficulty"`
		QualityScore  int      `json:"quality_score"`
	} `json:"questions" binding:"required,min=1"`
}

// SubmitQuestions принимает пакет сгенерированных агентом вопросов.
// Неполные вопросы пропускаются; возвращается количество принятых.
func (h *AgentHandler) SubmitQuestions(c *gin.Context) {
	agentID := c.MustGet("agentID").(uint)

	var req SubmitQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	questions := make([]entity.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, entity.Question{
			Text:          q.Text,
			CorrectAnswer: q.CorrectAnswer,
			WrongAnswers:  q.WrongAnswers,
			Topic:         q.Topic,
			Difficulty:    q.Difficulty,
			QualityScore:  q.QualityScore,
		})
	}

	accepted, err := h.agentService.SubmitGeneratedQuestions(req.JobID, agentID, questions)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"job_id":    req.JobID,
		"accepted":  accepted,
		"submitted": len(req.Questions),
	})
}
