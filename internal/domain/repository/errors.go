package repository

import "errors"

var (
	// ErrScoreAlreadySet означает, что очки ответа уже были выставлены ранее:
	// score выставляется ровно один раз за время жизни ответа.
	ErrScoreAlreadySet = errors.New("answer score already set")
)
