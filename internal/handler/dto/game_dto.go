package dto

import (
	"time"

	"github.com/yourusername/trivia-lobby/internal/domain/entity"
	"github.com/yourusername/trivia-lobby/internal/service"
)

// PlayerResponse представляет игрока в ответе API
type PlayerResponse struct {
	PlayerID  string    `json:"player_id"`
	Name      string    `json:"name"`
	Score     int64     `json:"score"`
	Elo       int       `json:"elo"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPlayerResponse создает DTO из сущности игрока
func NewPlayerResponse(player *entity.Player) PlayerResponse {
	return PlayerResponse{
		PlayerID:  player.PlayerID,
		Name:      player.Name,
		Score:     player.Score,
		Elo:       player.Elo,
		CreatedAt: player.CreatedAt,
	}
}

// LobbyResponse представляет лобби в ответе API
type LobbyResponse struct {
	ID                   uint               `json:"id"`
	Name                 *string            `json:"name,omitempty"`
	Status               entity.LobbyStatus `json:"status"`
	HostID               string             `json:"host_id"`
	NextRoundIsLightning bool               `json:"next_round_is_lightning"`
	CreatedAt            time.Time          `json:"created_at"`
}

// NewLobbyResponse создает DTO из сущности лобби
func NewLobbyResponse(lobby *entity.Lobby) LobbyResponse {
	return LobbyResponse{
		ID:                   lobby.ID,
		Name:                 lobby.Name,
		Status:               lobby.Status,
		HostID:               lobby.HostID,
		NextRoundIsLightning: lobby.NextRoundIsLightning,
		CreatedAt:            lobby.CreatedAt,
	}
}

// JoinLobbyResponse — результат присоединения к лобби
type JoinLobbyResponse struct {
	Lobby  LobbyResponse  `json:"lobby"`
	Player PlayerResponse `json:"player"`
}

// RoundResponse представляет раунд в ответе API
type RoundResponse struct {
	ID          uint               `json:"id"`
	LobbyID     uint               `json:"lobby_id"`
	QuestionID  uint               `json:"question_id"`
	Status      entity.RoundStatus `json:"status"`
	IsLightning bool               `json:"is_lightning"`
	StartTime   time.Time          `json:"start_time"`
}

// NewRoundResponse создает DTO из сущности раунда
func NewRoundResponse(round *entity.ActiveRound) RoundResponse {
	return RoundResponse{
		ID:          round.ID,
		LobbyID:     round.LobbyID,
		QuestionID:  round.QuestionID,
		Status:      round.Status,
		IsLightning: round.IsLightning,
		StartTime:   round.StartTime,
	}
}

// AnswerResponse представляет принятый ответ игрока.
// Warnings перечисляют best-effort шаги, которые не удались.
type AnswerResponse struct {
	ID          uint     `json:"id"`
	RoundID     uint     `json:"round_id"`
	PlayerID    string   `json:"player_id"`
	ChosenIndex int      `json:"chosen_index"`
	Warnings    []string `json:"warnings,omitempty"`
}

// NewAnswerResponse создает DTO из сущности ответа
func NewAnswerResponse(answer *entity.Answer, warnings []string) AnswerResponse {
	return AnswerResponse{
		ID:          answer.ID,
		RoundID:     answer.RoundID,
		PlayerID:    answer.PlayerID,
		ChosenIndex: answer.ChosenIndex,
		Warnings:    warnings,
	}
}

// CrowdMeterResponse представляет счетчики вариантов раунда
type CrowdMeterResponse struct {
	RoundID uint                  `json:"round_id"`
	Options []CrowdMeterOptionDTO `json:"options"`
}

// CrowdMeterOptionDTO — счетчик одного варианта
type CrowdMeterOptionDTO struct {
	AnswerIndex int   `json:"answer_index"`
	Count       int64 `json:"count"`
}

// NewCrowdMeterResponse создает DTO из счетчиков раунда
func NewCrowdMeterResponse(roundID uint, stats []entity.CrowdMeterStat) CrowdMeterResponse {
	options := make([]CrowdMeterOptionDTO, 0, len(stats))
	for _, s := range stats {
		options = append(options, CrowdMeterOptionDTO{
			AnswerIndex: s.AnswerIndex,
			Count:       s.Count,
		})
	}
	return CrowdMeterResponse{RoundID: roundID, Options: options}
}

// FinalizeGameResponse — итог завершенной игры
type FinalizeGameResponse struct {
	LobbyID   uint                     `json:"lobby_id"`
	Standings []service.PlayerStanding `json:"standings,omitempty"`
	Warnings  []string                 `json:"warnings,omitempty"`
}

// LeaderboardResponse — страница лидерборда
type LeaderboardResponse struct {
	Players []PlayerResponse `json:"players"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
}

// NewLeaderboardResponse создает DTO страницы лидерборда
func NewLeaderboardResponse(players []entity.Player, total int64, page int) LeaderboardResponse {
	items := make([]PlayerResponse, 0, len(players))
	for i := range players {
		items = append(items, NewPlayerResponse(&players[i]))
	}
	return LeaderboardResponse{Players: items, Total: total, Page: page}
}

// AgentRegistrationResponse представляет регистрацию агента
type AgentRegistrationResponse struct {
	ID           uint      `json:"id"`
	OwnerID      string    `json:"owner_id"`
	ContentHash  string    `json:"content_hash"`
	Capabilities []string  `json:"capabilities"`
	EnergyQuota  int64     `json:"energy_quota"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewAgentRegistrationResponse создает DTO из регистрации агента
func NewAgentRegistrationResponse(r *entity.AgentRegistration) AgentRegistrationResponse {
	return AgentRegistrationResponse{
		ID:           r.ID,
		OwnerID:      r.OwnerID,
		ContentHash:  r.ContentHash,
		Capabilities: r.Capabilities,
		EnergyQuota:  r.EnergyQuota,
		CreatedAt:    r.CreatedAt,
	}
}

// AgentJobResponse представляет задание агента
type AgentJobResponse struct {
	ID           uint                  `json:"id"`
	AgentID      uint                  `json:"agent_id"`
	Payload      string                `json:"payload"`
	Status       entity.AgentJobStatus `json:"status"`
	ErrorMessage *string               `json:"error_message,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

// NewAgentJobResponse создает DTO из задания агента
func NewAgentJobResponse(job *entity.AgentJob) AgentJobResponse {
	return AgentJobResponse{
		ID:           job.ID,
		AgentID:      job.AgentID,
		Payload:      job.Payload,
		Status:       job.Status,
		ErrorMessage: job.ErrorMessage,
		CreatedAt:    job.CreatedAt,
	}
}

// NewAgentJobListResponse создает список DTO заданий
func NewAgentJobListResponse(jobs []entity.AgentJob) []AgentJobResponse {
	items := make([]AgentJobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, NewAgentJobResponse(&jobs[i]))
	}
	return items
}

// QuestionResponse представляет вопрос без правильного ответа:
// клиент видит только текст и метаданные
type QuestionResponse struct {
	ID           uint      `json:"id"`
	Text         string    `json:"text"`
	Topic        string    `json:"topic"`
	Difficulty   string    `json:"difficulty"`
	QualityScore int       `json:"quality_score"`
	OptionsCount int       `json:"options_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewQuestionResponse создает DTO из вопроса
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:           q.ID,
		Text:         q.Text,
		Topic:        q.Topic,
		Difficulty:   q.Difficulty,
		QualityScore: q.QualityScore,
		OptionsCount: q.OptionsCount(),
		CreatedAt:    q.CreatedAt,
	}
}
