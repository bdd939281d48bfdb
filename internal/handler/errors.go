package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-lobby/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-lobby/internal/pkg/errors"
)

// handleError переводит ошибки сервисного слоя в HTTP статусы
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrVersionConflict),
		errors.Is(err, apperrors.ErrDuplicateSubmission),
		errors.Is(err, apperrors.ErrNameConflict),
		errors.Is(err, repository.ErrScoreAlreadySet):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrNoContent):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.Printf("[Handler] Внутренняя ошибка: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
