package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-lobby/pkg/auth"
)

// AuthHandler выдает гостевые токены
type AuthHandler struct {
	tokenService *auth.GuestTokenService
}

// NewAuthHandler создает новый обработчик аутентификации
func NewAuthHandler(tokenService *auth.GuestTokenService) *AuthHandler {
	return &AuthHandler{tokenService: tokenService}
}

// GuestTokenResponse — выданный гостевой токен
type GuestTokenResponse struct {
	Token    string `json:"token"`
	PlayerID string `json:"player_id"`
}

// IssueGuestToken выдает новый гостевой токен со свежим идентификатором
func (h *AuthHandler) IssueGuestToken(c *gin.Context) {
	token, playerID, err := h.tokenService.IssueToken()
	if err != nil {
		log.Printf("[AuthHandler] Не удалось выдать гостевой токен: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue guest token"})
		return
	}

	c.JSON(http.StatusCreated, GuestTokenResponse{Token: token, PlayerID: playerID})
}
