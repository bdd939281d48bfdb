package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-lobby/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-lobby/internal/pkg/errors"
)

func newRoundService(
	lobbyRepo *MockLobbyRepo,
	roundRepo *MockRoundRepo,
	answerRepo *MockAnswerRepo,
	crowdRepo *MockCrowdMeterRepo,
	questionRepo *MockQuestionRepo,
	playerRepo *MockPlayerRepo,
	cacheRepo *MockCacheRepo,
) *RoundService {
	return NewRoundService(lobbyRepo, roundRepo, answerRepo, crowdRepo, questionRepo, playerRepo, cacheRepo)
}

func TestRoundService_StartGame_Success(t *testing.T) {
	// Arrange
	lobbyRepo := new(MockLobbyRepo)
	roundRepo := new(MockRoundRepo)
	answerRepo := new(MockAnswerRepo)
	crowdRepo := new(MockCrowdMeterRepo)
	questionRepo := new(MockQuestionRepo)
	playerRepo := new(MockPlayerRepo)
	cacheRepo := new(MockCacheRepo)
	svc := newRoundService(lobbyRepo, roundRepo, answerRepo, crowdRepo, questionRepo, playerRepo, cacheRepo)
	// Детерминированный выбор вопроса
	svc.randSource = func() int64 { return 12 }

	lobby := &entity.Lobby{ID: 5, Status: entity.LobbyStatusWaiting, HostID: "host-1", NextRoundIsLightning: true, Version: 1}
	question := &entity.Question{ID: 42, Text: "q", CorrectAnswer: "a", WrongAnswers: entity.StringArray{"b"}}

	lobbyRepo.On("GetByID", uint(5)).Return(lobby, nil)
	questionRepo.On("Count").Return(int64(10), nil)
	// 12 % 10 = 2
	questionRepo.On("GetByOffset", int64(2)).Return(question, nil)
	lobbyRepo.On("UpdateState", uint(5), 1, entity.LobbyStatusInGame, false).Return(nil)
	roundRepo.On("Create", mock.MatchedBy(func(r *entity.ActiveRound) bool {
		return r.LobbyID == 5 && r.QuestionID == 42 && r.IsLightning && r.Status == entity.RoundStatusWaiting
	})).Return(nil)

	// Act
	round, err := svc.StartGame(5, "host-1")

	// Assert
	require.NoError(t, err)
	assert.True(t, round.IsLightning, "флаг молниеносного раунда должен быть перенесен в раунд")
	assert.Equal(t, uint(42), round.QuestionID, "вопрос выбирается по модулю размера банка")
	lobbyRepo.AssertExpectations(t)
	roundRepo.AssertExpectations(t)
}

func TestRoundService_StartGame_ForbiddenForNonHost(t *testing.T) {
	// Arrange
	lobbyRepo := new(MockLobbyRepo)
	svc := newRoundService(lobbyRepo, new(MockRoundRepo), new(MockAnswerRepo), new(MockCrowdMeterRepo), new(MockQuestionRepo), new(MockPlayerRepo), new(MockCacheRepo))

	lobby := &entity.Lobby{ID: 5, Status: entity.LobbyStatusWaiting, HostID: "host-1", Version: 1}
	lobbyRepo.On("GetByID", uint(5)).Return(lobby, nil)

	// Act
	_, err := svc.StartGame(5, "someone-else")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrForbidden, "старт игры доступен только хосту")
}

func TestRoundService_StartGame_EmptyQuestionBank(t *testing.T) {
	// Arrange
	lobbyRepo := new(MockLobbyRepo)
	questionRepo := new(MockQuestionRepo)
	svc := newRoundService(lobbyRepo, new(MockRoundRepo), new(MockAnswerRepo), new(MockCrowdMeterRepo), questionRepo, new(MockPlayerRepo), new(MockCacheRepo))

	lobby := &entity.Lobby{ID: 5, Status: entity.LobbyStatusWaiting, HostID: "host-1", Version: 1}
	lobbyRepo.On("GetByID", uint(5)).Return(lobby, nil)
	questionRepo.On("Count").Return(int64(0), nil)

	// Act
	_, err := svc.StartGame(5, "host-1")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNoContent, "при пустом банке вопросов игра не стартует")
	lobbyRepo.AssertNotCalled(t, "UpdateState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRoundService_StartGame_NotWaiting(t *testing.T) {
	// Arrange
	lobbyRepo := new(MockLobbyRepo)
	svc := newRoundService(lobbyRepo, new(MockRoundRepo), new(MockAnswerRepo), new(MockCrowdMeterRepo), new(MockQuestionRepo), new(MockPlayerRepo), new(MockCacheRepo))

	lobby := &entity.Lobby{ID: 5, Status: entity.LobbyStatusInGame, HostID: "host-1", Version: 1}
	lobbyRepo.On("GetByID", uint(5)).Return(lobby, nil)

	// Act
	_, err := svc.StartGame(5, "host-1")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState, "повторный старт уже идущей игры невозможен")
}

func TestRoundService_BeginRound_Success(t *testing.T) {
	// Arrange
	lobbyRepo := new(MockLobbyRepo)
	roundRepo := new(MockRoundRepo)
	svc := newRoundService(lobbyRepo, roundRepo, new(MockAnswerRepo), new(MockCrowdMeterRepo), new(MockQuestionRepo), new(MockPlayerRepo), new(MockCacheRepo))

	round := &entity.ActiveRound{ID: 9, LobbyID: 5, Status: entity.RoundStatusWaiting, Version: 1}
	lobby := &entity.Lobby{ID: 5, Status: entity.LobbyStatusInGame, HostID: "host-1", Version: 2}

	roundRepo.On("GetByID", uint(9)).Return(round, nil)
	lobbyRepo.On("GetByID", uint(5)).Return(lobby, nil)
	roundRepo.On("UpdateStatus", uint(9), 1, entity.RoundStatusInProgress).Return(nil)

	// Act
	updated, err := svc.BeginRound(9, "host-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entity.RoundStatusInProgress, updated.Status, "раунд должен перейти в in_progress")
	roundRepo.AssertExpectations(t)
}

func TestRoundService_BeginRound_InvalidTransition(t *testing.T) {
	// Arrange
	lobbyRepo := new(MockLobbyRepo)
	roundRepo := new(MockRoundRepo)
	svc := newRoundService(lobbyRepo, roundRepo, new(MockAnswerRepo), new(MockCrowdMeterRepo), new(MockQuestionRepo), new(MockPlayerRepo), new(MockCacheRepo))

	round := &entity.ActiveRound{ID: 9, LobbyID: 5, Status: entity.RoundStatusFinished, Version: 3}
	lobby := &entity.Lobby{ID: 5, Status: entity.LobbyStatusInGame, HostID: "host-1", Version: 2}

	roundRepo.On("GetByID", uint(9)).Return(round, nil)
	lobbyRepo.On("GetByID", uint(5)).Return(lobby, nil)

	// Act
	_, err := svc.BeginRound(9, "host-1")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState, "завершенный раунд нельзя открыть заново")
	roundRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestRoundService_SubmitAnswer_Success(t *testing.T) {
	// Arrange
	roundRepo := new(MockRoundRepo)
	answerRepo := new(MockAnswerRepo)
	crowdRepo := new(MockCrowdMeterRepo)
	questionRepo := new(MockQuestionRepo)
	playerRepo := new(MockPlayerRepo)
	cacheRepo := new(MockCacheRepo)
	svc := newRoundService(new(MockLobbyRepo), roundRepo, answerRepo, crowdRepo, questionRepo, playerRepo, cacheRepo)

	round := &entity.ActiveRound{ID: 9, LobbyID: 5, QuestionID: 42, Status: entity.RoundStatusInProgress, Version: 2}
	question := &entity.Question{ID: 42, CorrectAnswer: "a", WrongAnswers: entity.StringArray{"b", "c", "d"}}
	player := &entity.Player{PlayerID: "p-1"}

	roundRepo.On("GetByID", uint(9)).Return(round, nil)
	playerRepo.On("GetByID", "p-1").Return(player, nil)
	questionRepo.On("GetByID", uint(42)).Return(question, nil)
	answerRepo.On("Create", mock.MatchedBy(func(a *entity.Answer) bool {
		return a.RoundID == 9 && a.PlayerID == "p-1" && a.ChosenIndex == 2
	})).Return(nil)
	crowdRepo.On("Increment", uint(9), 2).Return(nil)
	cacheRepo.On("Increment", "round:9:option:2").Return(int64(1), nil)

	// Act
	answer, warnings, err := svc.SubmitAnswer(9, "p-1", 2)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, warnings, "при успешных счетчиках предупреждений нет")
	assert.Equal(t, 2, answer.ChosenIndex)
	answerRepo.AssertExpectations(t)
	crowdRepo.AssertExpectations(t)
}

func TestRoundService_SubmitAnswer_DuplicateRejected(t *testing.T) {
	// Arrange
	roundRepo := new(MockRoundRepo)
	answerRepo := new(MockAnswerRepo)
	questionRepo := new(MockQuestionRepo)
	playerRepo := new(MockPlayerRepo)
	crowdRepo := new(MockCrowdMeterRepo)
	svc := newRoundService(new(MockLobbyRepo), roundRepo, answerRepo, crowdRepo, questionRepo, playerRepo, new(MockCacheRepo))

	round := &entity.ActiveRound{ID: 9, QuestionID: 42, Status: entity.RoundStatusInProgress, Version: 2}
	question := &entity.Question{ID: 42, CorrectAnswer: "a", WrongAnswers: entity.StringArray{"b"}}
	player := &entity.Player{PlayerID: "p-1"}

	roundRepo.On("GetByID", uint(9)).Return(round, nil)
	playerRepo.On("GetByID", "p-1").Return(player, nil)
	questionRepo.On("GetByID", uint(42)).Return(question, nil)
	answerRepo.On("Create", mock.Anything).Return(apperrors.ErrDuplicateSubmission)

	// Act
	_, _, err := svc.SubmitAnswer(9, "p-1", 0)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateSubmission, "повторный ответ в раунде отклоняется")
	crowdRepo.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything)
}

func TestRoundService_SubmitAnswer_CrowdMeterFailureIsBestEffort(t *testing.T) {
	// Arrange
	roundRepo := new(MockRoundRepo)
	answerRepo := new(MockAnswerRepo)
	crowdRepo := new(MockCrowdMeterRepo)
	questionRepo := new(MockQuestionRepo)
	playerRepo := new(MockPlayerRepo)
	cacheRepo := new(MockCacheRepo)
	svc := newRoundService(new(MockLobbyRepo), roundRepo, answerRepo, crowdRepo, questionRepo, playerRepo, cacheRepo)

	round := &entity.ActiveRound{ID: 9, QuestionID: 42, Status: entity.RoundStatusInProgress, Version: 2}
	question := &entity.Question{ID: 42, CorrectAnswer: "a", WrongAnswers: entity.StringArray{"b"}}
	player := &entity.Player{PlayerID: "p-1"}

	roundRepo.On("GetByID", uint(9)).Return(round, nil)
	playerRepo.On("GetByID", "p-1").Return(player, nil)
	questionRepo.On("GetByID", uint(42)).Return(question, nil)
	answerRepo.On("Create", mock.Anything).Return(nil)
	crowdRepo.On("Increment", uint(9), 0).Return(assert.AnError)
	cacheRepo.On("Increment", "round:9:option:0").Return(int64(0), assert.AnError)

	// Act
	answer, warnings, err := svc.SubmitAnswer(9, "p-1", 0)

	// Assert
	require.NoError(t, err, "отказ счетчиков не откатывает ответ")
	assert.NotNil(t, answer)
	assert.Len(t, warnings, 2, "оба отказа счетчиков попадают в предупреждения")
}

func TestRoundService_SubmitAnswer_InvalidOption(t *testing.T) {
	// Arrange
	roundRepo := new(MockRoundRepo)
	questionRepo := new(MockQuestionRepo)
	playerRepo := new(MockPlayerRepo)
	answerRepo := new(MockAnswerRepo)
	svc := newRoundService(new(MockLobbyRepo), roundRepo, answerRepo, new(MockCrowdMeterRepo), questionRepo, playerRepo, new(MockCacheRepo))

	round := &entity.ActiveRound{ID: 9, QuestionID: 42, Status: entity.RoundStatusInProgress, Version: 2}
	// 4 варианта: индексы 0..3
	question := &entity.Question{ID: 42, CorrectAnswer: "a", WrongAnswers: entity.StringArray{"b", "c", "d"}}
	player := &entity.Player{PlayerID: "p-1"}

	roundRepo.On("GetByID", uint(9)).Return(round, nil)
	playerRepo.On("GetByID", "p-1").Return(player, nil)
	questionRepo.On("GetByID", uint(42)).Return(question, nil)

	// Act
	_, _, err := svc.SubmitAnswer(9, "p-1", 4)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation, "индекс вне диапазона вариантов отклоняется")
	answerRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRoundService_SubmitAnswer_RoundNotInProgress(t *testing.T) {
	// Arrange
	roundRepo := new(MockRoundRepo)
	svc := newRoundService(new(MockLobbyRepo), roundRepo, new(MockAnswerRepo), new(MockCrowdMeterRepo), new(MockQuestionRepo), new(MockPlayerRepo), new(MockCacheRepo))

	round := &entity.ActiveRound{ID: 9, QuestionID: 42, Status: entity.RoundStatusWaiting, Version: 1}
	roundRepo.On("GetByID", uint(9)).Return(round, nil)

	// Act
	_, _, err := svc.SubmitAnswer(9, "p-1", 0)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState, "ответы принимаются только в идущем раунде")
}

func TestRoundService_ScoreRound_CorrectAnswersGetPoints(t *testing.T) {
	// Arrange
	lobbyRepo := new(MockLobbyRepo)
	roundRepo := new(MockRoundRepo)
	answerRepo := new(MockAnswerRepo)
	playerRepo := new(MockPlayerRepo)
	questionRepo := new(MockQuestionRepo)
	svc := newRoundService(lobbyRepo, roundRepo, answerRepo, new(MockCrowdMeterRepo), questionRepo, playerRepo, new(MockCacheRepo))

	round := &entity.ActiveRound{ID: 9, LobbyID: 5, QuestionID: 42, Status: entity.RoundStatusInProgress, Version: 2}
	lobby := &entity.Lobby{ID: 5, Status: entity.LobbyStatusInGame, HostID: "host-1", Version: 2}
	question := &entity.Question{ID: 42, CorrectAnswer: "yes", WrongAnswers: entity.StringArray{"no", "maybe"}}
	answers := []entity.Answer{
		{ID: 1, RoundID: 9, PlayerID: "p-1", ChosenIndex: 0}, // правильный
		{ID: 2, RoundID: 9, PlayerID: "p-2", ChosenIndex: 2}, // неправильный
	}

	roundRepo.On("GetByID", uint(9)).Return(round, nil)
	lobbyRepo.On("GetByID", uint(5)).Return(lobby, nil)
	questionRepo.On("GetByID", uint(42)).Return(question, nil)
	roundRepo.On("UpdateStatus", uint(9), 2, entity.RoundStatusScoring).Return(nil)
	answerRepo.On("GetByRoundID", uint(9)).Return(answers, nil)
	answerRepo.On("SetScore", uint(1), 10).Return(nil)
	answerRepo.On("SetScore", uint(2), 0).Return(nil)
	playerRepo.On("AddScore", "p-1", int64(10)).Return(nil)
	roundRepo.On("UpdateStatus", uint(9), 3, entity.RoundStatusFinished).Return(nil)

	// Act
	warnings, err := svc.ScoreRound(9, "host-1")

	// Assert
	require.NoError(t, err)
	assert.Empty(t, warnings)
	// Неправильный ответ не дает очков игроку
	playerRepo.AssertNotCalled(t, "AddScore", "p-2", mock.Anything)
	answerRepo.AssertExpectations(t)
	roundRepo.AssertExpectations(t)
}

func TestRoundService_ScoreRound_LightningDoublesPoints(t *testing.T) {
	// Arrange
	lobbyRepo := new(MockLobbyRepo)
	roundRepo := new(MockRoundRepo)
	answerRepo := new(MockAnswerRepo)
	playerRepo := new(MockPlayerRepo)
	questionRepo := new(MockQuestionRepo)
	svc := newRoundService(lobbyRepo, roundRepo, answerRepo, new(MockCrowdMeterRepo), questionRepo, playerRepo, new(MockCacheRepo))

	round := &entity.ActiveRound{ID: 9, LobbyID: 5, QuestionID: 42, Status: entity.RoundStatusInProgress, IsLightning: true, Version: 2}
	lobby := &entity.Lobby{ID: 5, Status: entity.LobbyStatusInGame, HostID: "host-1", Version: 2}
	question := &entity.Question{ID: 42, CorrectAnswer: "yes", WrongAnswers: entity.StringArray{"no"}}
	answers := []entity.Answer{
		{ID: 1, RoundID: 9, PlayerID: "p-1", ChosenIndex: 0},
	}

	roundRepo.On("GetByID", uint(9)).Return(round, nil)
	lobbyRepo.On("GetByID", uint(5)).Return(lobby, nil)
	questionRepo.On("GetByID", uint(42)).Return(question, nil)
	roundRepo.On("UpdateStatus", uint(9), 2, entity.RoundStatusScoring).Return(nil)
	answerRepo.On("GetByRoundID", uint(9)).Return(answers, nil)
	answerRepo.On("SetScore", uint(1), 20).Return(nil)
	playerRepo.On("AddScore", "p-1", int64(20)).Return(nil)
	roundRepo.On("UpdateStatus", uint(9), 3, entity.RoundStatusFinished).Return(nil)

	// Act
	warnings, err := svc.ScoreRound(9, "host-1")

	// Assert
	require.NoError(t, err)
	assert.Empty(t, warnings)
	answerRepo.AssertExpectations(t)
	playerRepo.AssertExpectations(t)
}

func TestRoundService_ScoreRound_PerAnswerFailureSkipped(t *testing.T) {
	// Arrange
	lobbyRepo := new(MockLobbyRepo)
	roundRepo := new(MockRoundRepo)
	answerRepo := new(MockAnswerRepo)
	playerRepo := new(MockPlayerRepo)
	questionRepo := new(MockQuestionRepo)
	svc := newRoundService(lobbyRepo, roundRepo, answerRepo, new(MockCrowdMeterRepo), questionRepo, playerRepo, new(MockCacheRepo))

	round := &entity.ActiveRound{ID: 9, LobbyID: 5, QuestionID: 42, Status: entity.RoundStatusInProgress, Version: 2}
	lobby := &entity.Lobby{ID: 5, Status: entity.LobbyStatusInGame, HostID: "host-1", Version: 2}
	question := &entity.Question{ID: 42, CorrectAnswer: "yes", WrongAnswers: entity.StringArray{"no"}}
	answers := []entity.Answer{
		{ID: 1, RoundID: 9, PlayerID: "p-1", ChosenIndex: 0},
		{ID: 2, RoundID: 9, PlayerID: "p-2", ChosenIndex: 0},
	}

	roundRepo.On("GetByID", uint(9)).Return(round, nil)
	lobbyRepo.On("GetByID", uint(5)).Return(lobby, nil)
	questionRepo.On("GetByID", uint(42)).Return(question, nil)
	roundRepo.On("UpdateStatus", uint(9), 2, entity.RoundStatusScoring).Return(nil)
	answerRepo.On("GetByRoundID", uint(9)).Return(answers, nil)
	// Первый ответ ломается на записи очков, второй проходит
	answerRepo.On("SetScore", uint(1), 10).Return(assert.AnError)
	answerRepo.On("SetScore", uint(2), 10).Return(nil)
	playerRepo.On("AddScore", "p-2", int64(10)).Return(nil)
	roundRepo.On("UpdateStatus", uint(9), 3, entity.RoundStatusFinished).Return(nil)

	// Act
	warnings, err := svc.ScoreRound(9, "host-1")

	// Assert
	require.NoError(t, err, "отказ по отдельному ответу не прерывает подсчет")
	assert.Len(t, warnings, 1)
	playerRepo.AssertNotCalled(t, "AddScore", "p-1", mock.Anything)
	roundRepo.AssertExpectations(t)
}

func TestRoundService_ScoreRound_MissingQuestionLeavesRoundUntouched(t *testing.T) {
	// Arrange
	lobbyRepo := new(MockLobbyRepo)
	roundRepo := new(MockRoundRepo)
	questionRepo := new(MockQuestionRepo)
	svc := newRoundService(lobbyRepo, roundRepo, new(MockAnswerRepo), new(MockCrowdMeterRepo), questionRepo, new(MockPlayerRepo), new(MockCacheRepo))

	round := &entity.ActiveRound{ID: 9, LobbyID: 5, QuestionID: 42, Status: entity.RoundStatusInProgress, Version: 2}
	lobby := &entity.Lobby{ID: 5, Status: entity.LobbyStatusInGame, HostID: "host-1", Version: 2}

	roundRepo.On("GetByID", uint(9)).Return(round, nil)
	lobbyRepo.On("GetByID", uint(5)).Return(lobby, nil)
	questionRepo.On("GetByID", uint(42)).Return(nil, apperrors.ErrNotFound)

	// Act
	_, err := svc.ScoreRound(9, "host-1")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "подсчет требует существующего вопроса раунда")
	// Статус раунда не меняется, пока вопрос не найден
	roundRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestRoundService_ScoreRound_ForbiddenForNonHost(t *testing.T) {
	// Arrange
	lobbyRepo := new(MockLobbyRepo)
	roundRepo := new(MockRoundRepo)
	svc := newRoundService(lobbyRepo, roundRepo, new(MockAnswerRepo), new(MockCrowdMeterRepo), new(MockQuestionRepo), new(MockPlayerRepo), new(MockCacheRepo))

	round := &entity.ActiveRound{ID: 9, LobbyID: 5, Status: entity.RoundStatusInProgress, Version: 2}
	lobby := &entity.Lobby{ID: 5, Status: entity.LobbyStatusInGame, HostID: "host-1", Version: 2}

	roundRepo.On("GetByID", uint(9)).Return(round, nil)
	lobbyRepo.On("GetByID", uint(5)).Return(lobby, nil)

	// Act
	_, err := svc.ScoreRound(9, "p-1")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrForbidden, "подсчет очков доступен только хосту")
}

func TestRoundService_GetCrowdMeter(t *testing.T) {
	// Arrange
	roundRepo := new(MockRoundRepo)
	crowdRepo := new(MockCrowdMeterRepo)
	svc := newRoundService(new(MockLobbyRepo), roundRepo, new(MockAnswerRepo), crowdRepo, new(MockQuestionRepo), new(MockPlayerRepo), new(MockCacheRepo))

	round := &entity.ActiveRound{ID: 9, Status: entity.RoundStatusInProgress, Version: 2}
	stats := []entity.CrowdMeterStat{
		{RoundID: 9, AnswerIndex: 0, Count: 3},
		{RoundID: 9, AnswerIndex: 1, Count: 1},
	}

	roundRepo.On("GetByID", uint(9)).Return(round, nil)
	crowdRepo.On("GetByRound", uint(9)).Return(stats, nil)

	// Act
	got, err := svc.GetCrowdMeter(9)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}
