package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-lobby/internal/handler/dto"
	"github.com/yourusername/trivia-lobby/internal/middleware"
	"github.com/yourusername/trivia-lobby/internal/service"
)

// GameHandler обрабатывает игровые операции: старт игры, раунды,
// ответы, подсчет очков и финализацию
type GameHandler struct {
	roundService  *service.RoundService
	gameFinalizer *service.GameFinalizer
}

// NewGameHandler создает новый игровой обработчик
func NewGameHandler(roundService *service.RoundService, gameFinalizer *service.GameFinalizer) *GameHandler {
	return &GameHandler{
		roundService:  roundService,
		gameFinalizer: gameFinalizer,
	}
}

// StartGame стартует игру в лобби (только хост)
func (h *GameHandler) StartGame(c *gin.Context) {
	lobbyID := c.MustGet("lobbyID").(uint)
	playerID := c.MustGet(middleware.PlayerIDKey).(string)

	round, err := h.roundService.StartGame(lobbyID, playerID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewRoundResponse(round))
}

// FinalizeGame завершает игру лобби и пересчитывает рейтинги (только хост)
func (h *GameHandler) FinalizeGame(c *gin.Context) {
	lobbyID := c.MustGet("lobbyID").(uint)
	playerID := c.MustGet(middleware.PlayerIDKey).(string)

	standings, warnings, err := h.gameFinalizer.FinalizeGame(lobbyID, playerID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FinalizeGameResponse{
		LobbyID:   lobbyID,
		Standings: standings,
		Warnings:  warnings,
	})
}

// GetStandings возвращает итоговую таблицу завершенной игры
func (h *GameHandler) GetStandings(c *gin.Context) {
	lobbyID := c.MustGet("lobbyID").(uint)

	standings, err := h.gameFinalizer.GetStandings(lobbyID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FinalizeGameResponse{
		LobbyID:   lobbyID,
		Standings: standings,
	})
}

// GetRound возвращает раунд по ID
func (h *GameHandler) GetRound(c *gin.Context) {
	roundID := c.MustGet("roundID").(uint)

	round, err := h.roundService.GetRound(roundID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRoundResponse(round))
}

// BeginRound открывает прием ответов в раунде (только хост)
func (h *GameHandler) BeginRound(c *gin.Context) {
	roundID := c.MustGet("roundID").(uint)
	playerID := c.MustGet(middleware.PlayerIDKey).(string)

	round, err := h.roundService.BeginRound(roundID, playerID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRoundResponse(round))
}

// SubmitAnswerRequest — запрос на отправку ответа
type SubmitAnswerRequest struct {
	ChosenIndex *int `json:"chosen_index" binding:"required"`
}

// SubmitAnswer принимает ответ игрока в идущем раунде
func (h *GameHandler) SubmitAnswer(c *gin.Context) {
	roundID := c.MustGet("roundID").(uint)
	playerID := c.MustGet(middleware.PlayerIDKey).(string)

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, warnings, err := h.roundService.SubmitAnswer(roundID, playerID, *req.ChosenIndex)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAnswerResponse(answer, warnings))
}

// ScoreRound подсчитывает очки всех ответов раунда (только хост)
func (h *GameHandler) ScoreRound(c *gin.Context) {
	roundID := c.MustGet("roundID").(uint)
	playerID := c.MustGet(middleware.PlayerIDKey).(string)

	warnings, err := h.roundService.ScoreRound(roundID, playerID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"round_id": roundID, "warnings": warnings})
}

// GetCrowdMeter возвращает счетчики выбора вариантов раунда
func (h *GameHandler) GetCrowdMeter(c *gin.Context) {
	roundID := c.MustGet("roundID").(uint)

	stats, err := h.roundService.GetCrowdMeter(roundID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCrowdMeterResponse(roundID, stats))
}
