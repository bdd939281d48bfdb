package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-lobby/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-lobby/internal/pkg/errors"
)

// PlayerRepo реализует repository.PlayerRepository
type PlayerRepo struct {
	db *gorm.DB
}

// NewPlayerRepo создает новый репозиторий игроков
func NewPlayerRepo(db *gorm.DB) *PlayerRepo {
	return &PlayerRepo{db: db}
}

// Create вставляет нового игрока.
// Гонка за уникальное имя (23505) транслируется в ErrNameConflict,
// а не перезаписывает чужую запись.
func (r *PlayerRepo) Create(player *entity.Player) error {
	if err := r.db.Create(player).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", apperrors.ErrNameConflict, player.Name)
		}
		return err
	}
	return nil
}

// GetByID возвращает игрока по идентификатору вызывающего
func (r *PlayerRepo) GetByID(playerID string) (*entity.Player, error) {
	var player entity.Player
	err := r.db.Where("player_id = ?", playerID).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &player, nil
}

// GetByName возвращает игрока по имени (уникальный индекс)
func (r *PlayerRepo) GetByName(name string) (*entity.Player, error) {
	var player entity.Player
	err := r.db.Where("name = ?", name).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &player, nil
}

// AddScore атомарно прибавляет очки к накопленному счету игрока через gorm.Expr
func (r *PlayerRepo) AddScore(playerID string, points int64) error {
	result := r.db.Model(&entity.Player{}).
		Where("player_id = ?", playerID).
		Update("score", gorm.Expr("score + ?", points))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRating записывает новый Elo и сбрасывает накопленный счет игрока.
// Обновление условно по version:
// - RowsAffected == 0 при существующей записи → ErrVersionConflict
// - запись отсутствует → ErrNotFound
func (r *PlayerRepo) UpdateRating(playerID string, version int, elo int) error {
	result := r.db.Model(&entity.Player{}).
		Where("player_id = ? AND version = ?", playerID, version).
		Updates(map[string]interface{}{
			"elo":     elo,
			"score":   0,
			"version": version + 1,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.versionConflictOrNotFound(playerID)
	}
	return nil
}

func (r *PlayerRepo) versionConflictOrNotFound(playerID string) error {
	var count int64
	if err := r.db.Model(&entity.Player{}).Where("player_id = ?", playerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrVersionConflict
}

// GetLeaderboard возвращает игроков для лидерборда с пагинацией и общим количеством,
// отсортированных по Elo и стабильно по player_id.
func (r *PlayerRepo) GetLeaderboard(limit, offset int) ([]entity.Player, int64, error) {
	var players []entity.Player
	var total int64

	// Используем транзакцию для согласованности чтения данных и общего количества
	tx := r.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	if err := tx.Model(&entity.Player{}).Count(&total).Error; err != nil {
		tx.Rollback()
		return nil, 0, err
	}

	err := tx.Order("elo DESC, player_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&players).Error
	if err != nil {
		tx.Rollback()
		return nil, 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, 0, err
	}

	return players, total, nil
}
