package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/trivia-lobby/internal/domain/entity"
	"github.com/yourusername/trivia-lobby/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-lobby/internal/pkg/errors"
)

// Базовые очки за правильный ответ; молниеносный раунд удваивает их.
const (
	baseRoundPoints      = 10
	lightningMultiplier  = 2
	crowdMeterCacheTTL   = time.Hour
	crowdMeterKeyPattern = "round:%d:option:%d"
)

// RoundService управляет жизненным циклом раундов: старт игры, прием
// ответов, подсчет очков и агрегация счетчиков вариантов.
type RoundService struct {
	lobbyRepo    repository.LobbyRepository
	roundRepo    repository.RoundRepository
	answerRepo   repository.AnswerRepository
	crowdRepo    repository.CrowdMeterRepository
	questionRepo repository.QuestionRepository
	playerRepo   repository.PlayerRepository
	cacheRepo    repository.CacheRepository

	// randSource дает число для выбора вопроса; подменяется в тестах
	randSource func() int64
}

// NewRoundService создает новый сервис раундов
func NewRoundService(
	lobbyRepo repository.LobbyRepository,
	roundRepo repository.RoundRepository,
	answerRepo repository.AnswerRepository,
	crowdRepo repository.CrowdMeterRepository,
	questionRepo repository.QuestionRepository,
	playerRepo repository.PlayerRepository,
	cacheRepo repository.CacheRepository,
) *RoundService {
	return &RoundService{
		lobbyRepo:    lobbyRepo,
		roundRepo:    roundRepo,
		answerRepo:   answerRepo,
		crowdRepo:    crowdRepo,
		questionRepo: questionRepo,
		playerRepo:   playerRepo,
		cacheRepo:    cacheRepo,
		randSource: func() int64 {
			return time.Now().UnixNano()
		},
	}
}

// StartGame переводит лобби в игру и создает первый раунд.
// Доступно только хосту. Вопрос выбирается равномерно по модулю размера
// банка; флаг молниеносного раунда потребляется при старте.
func (s *RoundService) StartGame(lobbyID uint, callerID string) (*entity.ActiveRound, error) {
	lobby, err := s.lobbyRepo.GetByID(lobbyID)
	if err != nil {
		return nil, err
	}

	if !lobby.IsHost(callerID) {
		return nil, fmt.Errorf("%w: only the lobby host can start the game", apperrors.ErrForbidden)
	}
	if !lobby.IsWaiting() {
		return nil, fmt.Errorf("%w: lobby #%d is not waiting", apperrors.ErrInvalidState, lobbyID)
	}

	count, err := s.questionRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: question bank is empty", apperrors.ErrNoContent)
	}

	offset := s.randSource() % count
	if offset < 0 {
		offset += count
	}
	question, err := s.questionRepo.GetByOffset(offset)
	if err != nil {
		return nil, fmt.Errorf("failed to pick question: %w", err)
	}

	isLightning := lobby.NextRoundIsLightning

	// Переход лобби в игру потребляет флаг молниеносного раунда
	if err := s.lobbyRepo.UpdateState(lobbyID, lobby.Version, entity.LobbyStatusInGame, false); err != nil {
		return nil, err
	}

	round := &entity.ActiveRound{
		LobbyID:     lobbyID,
		QuestionID:  question.ID,
		StartTime:   time.Now(),
		Status:      entity.RoundStatusWaiting,
		IsLightning: isLightning,
	}
	if err := s.roundRepo.Create(round); err != nil {
		return nil, fmt.Errorf("failed to create round: %w", err)
	}

	log.Printf("[RoundService] Лобби #%d: игра началась, раунд #%d, вопрос #%d (lightning=%t)",
		lobbyID, round.ID, question.ID, isLightning)
	return round, nil
}

// BeginRound открывает прием ответов: раунд переходит из waiting в in_progress.
// Доступно только хосту лобби.
func (s *RoundService) BeginRound(roundID uint, callerID string) (*entity.ActiveRound, error) {
	round, err := s.roundRepo.GetByID(roundID)
	if err != nil {
		return nil, err
	}

	lobby, err := s.lobbyRepo.GetByID(round.LobbyID)
	if err != nil {
		return nil, err
	}
	if !lobby.IsHost(callerID) {
		return nil, fmt.Errorf("%w: only the lobby host can begin the round", apperrors.ErrForbidden)
	}

	if !round.Status.CanTransitionTo(entity.RoundStatusInProgress) {
		return nil, fmt.Errorf("%w: round #%d is %s", apperrors.ErrInvalidState, roundID, round.Status)
	}

	if err := s.roundRepo.UpdateStatus(roundID, round.Version, entity.RoundStatusInProgress); err != nil {
		return nil, err
	}

	round.Status = entity.RoundStatusInProgress
	round.Version++
	log.Printf("[RoundService] Раунд #%d открыт для ответов", roundID)
	return round, nil
}

// SubmitAnswer принимает ответ игрока в идущем раунде.
// Повторная отправка отклоняется уникальным индексом (round_id, player_id).
// Счетчики вариантов обновляются best-effort: их отказ не откатывает ответ,
// а возвращается предупреждениями.
func (s *RoundService) SubmitAnswer(roundID uint, playerID string, chosenIndex int) (*entity.Answer, []string, error) {
	round, err := s.roundRepo.GetByID(roundID)
	if err != nil {
		return nil, nil, err
	}
	if !round.IsInProgress() {
		return nil, nil, fmt.Errorf("%w: round #%d is not accepting answers", apperrors.ErrInvalidState, roundID)
	}

	if _, err := s.playerRepo.GetByID(playerID); err != nil {
		return nil, nil, err
	}

	question, err := s.questionRepo.GetByID(round.QuestionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load round question: %w", err)
	}
	if !question.IsValidOption(chosenIndex) {
		return nil, nil, fmt.Errorf("%w: option index %d out of range", apperrors.ErrValidation, chosenIndex)
	}

	answer := &entity.Answer{
		RoundID:     roundID,
		PlayerID:    playerID,
		ChosenIndex: chosenIndex,
	}
	if err := s.answerRepo.Create(answer); err != nil {
		return nil, nil, err
	}

	var warnings []string
	if err := s.crowdRepo.Increment(roundID, chosenIndex); err != nil {
		log.Printf("[RoundService] Не удалось обновить счетчик варианта (раунд #%d, индекс %d): %v",
			roundID, chosenIndex, err)
		warnings = append(warnings, "crowd meter update failed")
	}
	if _, err := s.cacheRepo.Increment(fmt.Sprintf(crowdMeterKeyPattern, roundID, chosenIndex)); err != nil {
		log.Printf("[RoundService] Не удалось обновить кеш счетчика (раунд #%d, индекс %d): %v",
			roundID, chosenIndex, err)
		warnings = append(warnings, "crowd meter cache update failed")
	}

	return answer, warnings, nil
}

// ScoreRound подсчитывает очки всех ответов раунда.
// Доступно только хосту. Правильным считается выбор канонического первого
// варианта; молниеносный раунд удваивает очки. Отказ по отдельному ответу
// не прерывает подсчет: такой ответ пропускается с предупреждением.
func (s *RoundService) ScoreRound(roundID uint, callerID string) ([]string, error) {
	round, err := s.roundRepo.GetByID(roundID)
	if err != nil {
		return nil, err
	}

	lobby, err := s.lobbyRepo.GetByID(round.LobbyID)
	if err != nil {
		return nil, err
	}
	if !lobby.IsHost(callerID) {
		return nil, fmt.Errorf("%w: only the lobby host can score the round", apperrors.ErrForbidden)
	}

	if !round.Status.CanTransitionTo(entity.RoundStatusScoring) {
		return nil, fmt.Errorf("%w: round #%d is %s", apperrors.ErrInvalidState, roundID, round.Status)
	}

	// Вопрос раунда должен существовать до перевода в scoring
	if _, err := s.questionRepo.GetByID(round.QuestionID); err != nil {
		return nil, fmt.Errorf("failed to load round question: %w", err)
	}

	if err := s.roundRepo.UpdateStatus(roundID, round.Version, entity.RoundStatusScoring); err != nil {
		return nil, err
	}
	round.Version++

	answers, err := s.answerRepo.GetByRoundID(roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to load round answers: %w", err)
	}

	points := baseRoundPoints
	if round.IsLightning {
		points *= lightningMultiplier
	}

	var warnings []string
	for _, answer := range answers {
		score := 0
		if answer.ChosenIndex == 0 {
			score = points
		}

		if err := s.answerRepo.SetScore(answer.ID, score); err != nil {
			if errors.Is(err, repository.ErrScoreAlreadySet) {
				// Ответ уже оценен ранее, пропускаем без повторного начисления
				continue
			}
			log.Printf("[RoundService] Не удалось записать очки ответа #%d: %v", answer.ID, err)
			warnings = append(warnings, fmt.Sprintf("answer %d skipped: score write failed", answer.ID))
			continue
		}

		if score > 0 {
			if err := s.playerRepo.AddScore(answer.PlayerID, int64(score)); err != nil {
				log.Printf("[RoundService] Не удалось начислить очки игроку %s: %v", answer.PlayerID, err)
				warnings = append(warnings, fmt.Sprintf("answer %d skipped: player score update failed", answer.ID))
				continue
			}
		}
	}

	if err := s.roundRepo.UpdateStatus(roundID, round.Version, entity.RoundStatusFinished); err != nil {
		return warnings, err
	}

	log.Printf("[RoundService] Раунд #%d подсчитан: %d ответов, %d предупреждений",
		roundID, len(answers), len(warnings))
	return warnings, nil
}

// GetCrowdMeter возвращает счетчики выбора вариантов раунда
func (s *RoundService) GetCrowdMeter(roundID uint) ([]entity.CrowdMeterStat, error) {
	if _, err := s.roundRepo.GetByID(roundID); err != nil {
		return nil, err
	}
	return s.crowdRepo.GetByRound(roundID)
}

// GetRound возвращает раунд по ID
func (s *RoundService) GetRound(roundID uint) (*entity.ActiveRound, error) {
	return s.roundRepo.GetByID(roundID)
}
