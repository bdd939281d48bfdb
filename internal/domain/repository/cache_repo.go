package repository

import "time"

// CacheRepository определяет методы для работы с кешем (Redis).
// Все обновления через кеш — сугубо рекомендательные (best-effort):
// отказ кеша никогда не прерывает игровую операцию.
type CacheRepository interface {
	Get(key string) (string, error)
	Set(key string, value interface{}, expiration time.Duration) error
	Delete(key string) error
	// Increment увеличивает числовое значение ключа на 1 и возвращает результат
	Increment(key string) (int64, error)
	SetJSON(key string, value interface{}, expiration time.Duration) error
	GetJSON(key string, dest interface{}) error
}
