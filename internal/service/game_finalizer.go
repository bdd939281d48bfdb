package service

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/yourusername/trivia-lobby/internal/domain/entity"
	"github.com/yourusername/trivia-lobby/internal/domain/repository"
	"github.com/yourusername/trivia-lobby/internal/pkg/elo"
	apperrors "github.com/yourusername/trivia-lobby/internal/pkg/errors"
)

const (
	standingsKeyPattern = "lobby:%d:standings"
	standingsCacheTTL   = 24 * time.Hour
)

// PlayerStanding — итоговая позиция игрока в завершенной игре
type PlayerStanding struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Score    int64  `json:"score"`
	OldElo   int    `json:"old_elo"`
	NewElo   int    `json:"new_elo"`
	Delta    int    `json:"delta"`
}

// GameFinalizer завершает игру лобби и пересчитывает рейтинги Elo участников
type GameFinalizer struct {
	lobbyRepo  repository.LobbyRepository
	roundRepo  repository.RoundRepository
	answerRepo repository.AnswerRepository
	playerRepo repository.PlayerRepository
	cacheRepo  repository.CacheRepository
}

// NewGameFinalizer создает новый финализатор игр
func NewGameFinalizer(
	lobbyRepo repository.LobbyRepository,
	roundRepo repository.RoundRepository,
	answerRepo repository.AnswerRepository,
	playerRepo repository.PlayerRepository,
	cacheRepo repository.CacheRepository,
) *GameFinalizer {
	return &GameFinalizer{
		lobbyRepo:  lobbyRepo,
		roundRepo:  roundRepo,
		answerRepo: answerRepo,
		playerRepo: playerRepo,
		cacheRepo:  cacheRepo,
	}
}

// FinalizeGame завершает игру лобби. Доступно только хосту.
// Участники определяются по ответам в раундах лобби; при менее чем двух
// участниках лобби завершается без пересчета рейтингов. Новый Elo каждого
// игрока считается против среднего рейтинга соперников; дельты берутся от
// снимка рейтингов до обновления. Отказ обновления по отдельному игроку
// не прерывает финализацию, а попадает в предупреждения.
func (s *GameFinalizer) FinalizeGame(lobbyID uint, callerID string) ([]PlayerStanding, []string, error) {
	lobby, err := s.lobbyRepo.GetByID(lobbyID)
	if err != nil {
		return nil, nil, err
	}

	if !lobby.IsHost(callerID) {
		return nil, nil, fmt.Errorf("%w: only the lobby host can finalize the game", apperrors.ErrForbidden)
	}
	if !lobby.IsInGame() {
		return nil, nil, fmt.Errorf("%w: lobby #%d is not in game", apperrors.ErrInvalidState, lobbyID)
	}

	participants, err := s.collectParticipants(lobbyID)
	if err != nil {
		return nil, nil, err
	}

	var warnings []string
	if len(participants) < 2 {
		if err := s.lobbyRepo.UpdateState(lobbyID, lobby.Version, entity.LobbyStatusFinished, false); err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, "not enough participants for rating update")
		log.Printf("[GameFinalizer] Лобби #%d завершено без пересчета рейтингов: %d участников",
			lobbyID, len(participants))
		return nil, warnings, nil
	}

	// Сортировка по убыванию накопленного счета; стабильный tie-break по player_id
	sort.Slice(participants, func(i, j int) bool {
		if participants[i].Score != participants[j].Score {
			return participants[i].Score > participants[j].Score
		}
		return participants[i].PlayerID < participants[j].PlayerID
	})

	n := len(participants)
	totalElo := 0
	for _, p := range participants {
		totalElo += p.Elo
	}

	// Дельты считаются от снимка рейтингов до какого-либо обновления
	standings := make([]PlayerStanding, 0, n)
	for i, p := range participants {
		actual := 0.0
		switch {
		case i == 0:
			actual = 1.0
		case i == 1 && n > 2:
			actual = 0.5
		}

		avgOpponentElo := (totalElo - p.Elo) / (n - 1)
		delta := elo.Delta(p.Elo, avgOpponentElo, actual, elo.DefaultKFactor)

		standings = append(standings, PlayerStanding{
			Rank:     i + 1,
			PlayerID: p.PlayerID,
			Name:     p.Name,
			Score:    p.Score,
			OldElo:   p.Elo,
			NewElo:   p.Elo + delta,
			Delta:    delta,
		})
	}

	for i, st := range standings {
		if err := s.playerRepo.UpdateRating(st.PlayerID, participants[i].Version, st.NewElo); err != nil {
			log.Printf("[GameFinalizer] Не удалось обновить рейтинг игрока %s: %v", st.PlayerID, err)
			warnings = append(warnings, fmt.Sprintf("rating update skipped for player %s", st.PlayerID))
		}
	}

	if err := s.lobbyRepo.UpdateState(lobbyID, lobby.Version, entity.LobbyStatusFinished, false); err != nil {
		return standings, warnings, err
	}

	// Итоговая таблица кешируется best-effort
	key := fmt.Sprintf(standingsKeyPattern, lobbyID)
	if err := s.cacheRepo.SetJSON(key, standings, standingsCacheTTL); err != nil {
		log.Printf("[GameFinalizer] Не удалось закешировать итоги лобби #%d: %v", lobbyID, err)
		warnings = append(warnings, "standings cache update failed")
	}

	log.Printf("[GameFinalizer] Лобби #%d завершено: %d участников, %d предупреждений",
		lobbyID, n, len(warnings))
	return standings, warnings, nil
}

// GetStandings возвращает закешированную итоговую таблицу завершенной игры
func (s *GameFinalizer) GetStandings(lobbyID uint) ([]PlayerStanding, error) {
	lobby, err := s.lobbyRepo.GetByID(lobbyID)
	if err != nil {
		return nil, err
	}
	if lobby.Status != entity.LobbyStatusFinished {
		return nil, fmt.Errorf("%w: lobby #%d is not finished", apperrors.ErrInvalidState, lobbyID)
	}

	var standings []PlayerStanding
	key := fmt.Sprintf(standingsKeyPattern, lobbyID)
	if err := s.cacheRepo.GetJSON(key, &standings); err != nil {
		return nil, fmt.Errorf("%w: standings for lobby #%d expired or missing", apperrors.ErrNotFound, lobbyID)
	}
	return standings, nil
}

// collectParticipants собирает игроков, отправивших хотя бы один ответ
// в раундах лобби
func (s *GameFinalizer) collectParticipants(lobbyID uint) ([]entity.Player, error) {
	rounds, err := s.roundRepo.GetByLobbyID(lobbyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lobby rounds: %w", err)
	}

	roundIDs := make([]uint, 0, len(rounds))
	for _, r := range rounds {
		roundIDs = append(roundIDs, r.ID)
	}

	answers, err := s.answerRepo.GetByRoundIDs(roundIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load lobby answers: %w", err)
	}

	seen := make(map[string]bool)
	participants := make([]entity.Player, 0)
	for _, a := range answers {
		if seen[a.PlayerID] {
			continue
		}
		seen[a.PlayerID] = true

		player, err := s.playerRepo.GetByID(a.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load participant %s: %w", a.PlayerID, err)
		}
		participants = append(participants, *player)
	}

	return participants, nil
}
