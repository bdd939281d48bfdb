package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-lobby/pkg/auth"
)

// PlayerIDKey — ключ контекста Gin с идентификатором вызывающего
const PlayerIDKey = "player_id"

// IdentityMiddleware извлекает идентификатор игрока из гостевого токена
type IdentityMiddleware struct {
	tokenService *auth.GuestTokenService
}

// NewIdentityMiddleware создает новый middleware идентификации
func NewIdentityMiddleware(tokenService *auth.GuestTokenService) *IdentityMiddleware {
	return &IdentityMiddleware{tokenService: tokenService}
}

// RequireIdentity проверяет гостевой токен в заголовке Authorization
// и кладет идентификатор игрока в контекст Gin
func (m *IdentityMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required", "error_type": "token_missing"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}", "error_type": "token_format"})
			c.Abort()
			return
		}

		playerID, err := m.tokenService.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token", "error_type": "token_invalid"})
			c.Abort()
			return
		}

		c.Set(PlayerIDKey, playerID)
		c.Next()
	}
}
