package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// GuestClaims содержит поля гостевого токена
type GuestClaims struct {
	PlayerID string `json:"player_id"`
	jwt.RegisteredClaims
}

// GuestTokenService выдает и проверяет гостевые токены.
// Идентификатор вызывающего — непрозрачный uuid, зашитый в подписанный
// HMAC токен; никакой регистрации и паролей нет.
type GuestTokenService struct {
	secret        []byte
	expirationHrs int
}

// NewGuestTokenService создает новый сервис гостевых токенов
func NewGuestTokenService(secret string, expirationHrs int) (*GuestTokenService, error) {
	if secret == "" {
		return nil, errors.New("guest token secret is required")
	}
	if expirationHrs <= 0 {
		expirationHrs = 24 * 7
	}
	return &GuestTokenService{
		secret:        []byte(secret),
		expirationHrs: expirationHrs,
	}, nil
}

// IssueToken выдает новый гостевой токен со свежим идентификатором игрока
func (s *GuestTokenService) IssueToken() (string, string, error) {
	playerID := uuid.NewString()
	token, err := s.IssueTokenFor(playerID)
	if err != nil {
		return "", "", err
	}
	return token, playerID, nil
}

// IssueTokenFor выдает токен для уже известного идентификатора
// (продление сессии без потери прогресса)
func (s *GuestTokenService) IssueTokenFor(playerID string) (string, error) {
	now := time.Now()
	claims := GuestClaims{
		PlayerID: playerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   playerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expirationHrs) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign guest token: %w", err)
	}
	return signed, nil
}

// ParseToken проверяет подпись и срок действия токена и возвращает
// идентификатор игрока
func (s *GuestTokenService) ParseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &GuestClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid guest token: %w", err)
	}

	claims, ok := token.Claims.(*GuestClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid guest token claims")
	}
	if claims.PlayerID == "" {
		return "", errors.New("guest token has no player id")
	}
	return claims.PlayerID, nil
}
