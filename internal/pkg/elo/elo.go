package elo

import "math"

// DefaultKFactor — коэффициент чувствительности рейтинга по умолчанию.
const DefaultKFactor = 24.0

// ExpectedScore возвращает ожидаемый результат игрока против соперника:
// P(A) = 1 / (1 + 10^((RatingB - RatingA) / 400)).
// Значение лежит в (0, 1) и равно 0.5 при равных рейтингах.
func ExpectedScore(rating, opponentRating int) float64 {
	return 1.0 / (1.0 + math.Pow(10, float64(opponentRating-rating)/400.0))
}

// Delta вычисляет изменение рейтинга игрока.
//
// actualScore — фактический результат: 1.0 (победа), 0.5 (ничья), 0.0 (поражение).
// kFactor — коэффициент чувствительности; неположительное значение — ошибка
// программирования на стороне вызывающего, а не ошибка времени выполнения.
//
// Округление — стандартное, половина от нуля (math.Round).
func Delta(rating, opponentRating int, actualScore, kFactor float64) int {
	return int(math.Round(kFactor * (actualScore - ExpectedScore(rating, opponentRating))))
}
