package entity

// CrowdMeterStat — живой счетчик выбора вариантов ответа в раунде.
// Составной первичный ключ (round_id, answer_index); count равен числу
// ответов с этой парой и не бывает отрицательным.
type CrowdMeterStat struct {
	RoundID     uint  `gorm:"primaryKey;autoIncrement:false" json:"round_id"`
	AnswerIndex int   `gorm:"primaryKey;autoIncrement:false" json:"answer_index"`
	Count       int64 `gorm:"not null;default:0" json:"count"`
}

// TableName определяет имя таблицы для GORM
func (CrowdMeterStat) TableName() string {
	return "crowd_meter_stats"
}
