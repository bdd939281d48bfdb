package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-lobby/internal/handler/dto"
	"github.com/yourusername/trivia-lobby/internal/middleware"
	"github.com/yourusername/trivia-lobby/internal/service"
)

// LobbyHandler обрабатывает запросы, связанные с лобби и игроками
type LobbyHandler struct {
	lobbyService  *service.LobbyService
	playerService *service.PlayerService
}

// NewLobbyHandler создает новый обработчик лобби
func NewLobbyHandler(lobbyService *service.LobbyService, playerService *service.PlayerService) *LobbyHandler {
	return &LobbyHandler{
		lobbyService:  lobbyService,
		playerService: playerService,
	}
}

// JoinLobbyRequest — необязательное тело запроса на присоединение:
// имя применяется, только если создается новое лобби
type JoinLobbyRequest struct {
	Name *string `json:"name"`
}

// JoinLobby присоединяет вызывающего к открытому лобби
// (или создает новое, делая его хостом)
func (h *LobbyHandler) JoinLobby(c *gin.Context) {
	playerID := c.MustGet(middleware.PlayerIDKey).(string)

	// Тело запроса необязательно
	var req JoinLobbyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lobby, player, err := h.lobbyService.JoinLobby(playerID, req.Name)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.JoinLobbyResponse{
		Lobby:  dto.NewLobbyResponse(lobby),
		Player: dto.NewPlayerResponse(player),
	})
}

// GetLobby возвращает лобби по ID
func (h *LobbyHandler) GetLobby(c *gin.Context) {
	lobbyID := c.MustGet("lobbyID").(uint)

	lobby, err := h.lobbyService.GetLobby(lobbyID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLobbyResponse(lobby))
}

// SetLightningRequest — запрос на установку флага молниеносного раунда
type SetLightningRequest struct {
	Lightning *bool `json:"lightning" binding:"required"`
}

// SetLightning выставляет флаг молниеносного следующего раунда (только хост)
func (h *LobbyHandler) SetLightning(c *gin.Context) {
	lobbyID := c.MustGet("lobbyID").(uint)
	playerID := c.MustGet(middleware.PlayerIDKey).(string)

	var req SetLightningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lobby, err := h.lobbyService.SetLightning(lobbyID, playerID, *req.Lightning)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLobbyResponse(lobby))
}

// GetMe возвращает профиль вызывающего игрока
func (h *LobbyHandler) GetMe(c *gin.Context) {
	playerID := c.MustGet(middleware.PlayerIDKey).(string)

	player, err := h.playerService.GetPlayer(playerID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPlayerResponse(player))
}

// GetLeaderboard возвращает игроков по убыванию Elo
func (h *LobbyHandler) GetLeaderboard(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	players, total, err := h.playerService.GetLeaderboard(page, pageSize)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLeaderboardResponse(players, total, page))
}
