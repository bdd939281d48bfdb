package postgres

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/trivia-lobby/internal/domain/entity"
)

// CrowdMeterRepo реализует repository.CrowdMeterRepository
type CrowdMeterRepo struct {
	db *gorm.DB
}

// NewCrowdMeterRepo создает новый репозиторий счетчиков вариантов
func NewCrowdMeterRepo(db *gorm.DB) *CrowdMeterRepo {
	return &CrowdMeterRepo{db: db}
}

// Increment увеличивает счетчик пары (round_id, answer_index) через upsert:
// первая вставка создает запись с count = 1, конфликт по составному ключу
// превращается в атомарный инкремент.
func (r *CrowdMeterRepo) Increment(roundID uint, answerIndex int) error {
	stat := entity.CrowdMeterStat{
		RoundID:     roundID,
		AnswerIndex: answerIndex,
		Count:       1,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "round_id"}, {Name: "answer_index"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count": gorm.Expr("crowd_meter_stats.count + 1"),
		}),
	}).Create(&stat).Error
}

// GetByRound возвращает счетчики всех вариантов раунда
func (r *CrowdMeterRepo) GetByRound(roundID uint) ([]entity.CrowdMeterStat, error) {
	var stats []entity.CrowdMeterStat
	err := r.db.Where("round_id = ?", roundID).Order("answer_index").Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
