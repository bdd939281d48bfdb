package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden используется, когда действие доступно только хосту лобби.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidState используется, когда сущность не находится в статусе,
	// который требуется для перехода (например, раунд не in_progress).
	ErrInvalidState = errors.New("invalid state for requested transition")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateSubmission используется при повторной отправке ответа
	// одним и тем же игроком в рамках одного раунда.
	ErrDuplicateSubmission = errors.New("answer already submitted for this round")

	// ErrNameConflict используется при гонке за уникальное имя игрока.
	ErrNameConflict = errors.New("player name already taken")

	// ErrNoContent используется, когда операция требует непустого ресурса
	// (например, пустой банк вопросов при старте игры).
	ErrNoContent = errors.New("required resource is empty")

	// ErrVersionConflict используется при несовпадении версии записи
	// (оптимистическая блокировка: запись успели изменить параллельно).
	ErrVersionConflict = errors.New("record version conflict")

	// ErrStoreFailure используется, когда запись в хранилище не удалась
	// по причинам, непрозрачным для игрового ядра.
	ErrStoreFailure = errors.New("store operation failed")
)
