package service

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/yourusername/trivia-lobby/internal/domain/entity"
)

// ============================================================================
// Общие моки репозиториев для тестов сервисов
// ============================================================================

// MockPlayerRepo реализует repository.PlayerRepository
type MockPlayerRepo struct {
	mock.Mock
}

func (m *MockPlayerRepo) Create(player *entity.Player) error {
	args := m.Called(player)
	return args.Error(0)
}

func (m *MockPlayerRepo) GetByID(playerID string) (*entity.Player, error) {
	args := m.Called(playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Player), args.Error(1)
}

func (m *MockPlayerRepo) GetByName(name string) (*entity.Player, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Player), args.Error(1)
}

func (m *MockPlayerRepo) AddScore(playerID string, points int64) error {
	args := m.Called(playerID, points)
	return args.Error(0)
}

func (m *MockPlayerRepo) UpdateRating(playerID string, version int, elo int) error {
	args := m.Called(playerID, version, elo)
	return args.Error(0)
}

func (m *MockPlayerRepo) GetLeaderboard(limit, offset int) ([]entity.Player, int64, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Player), args.Get(1).(int64), args.Error(2)
}

// MockLobbyRepo реализует repository.LobbyRepository
type MockLobbyRepo struct {
	mock.Mock
}

func (m *MockLobbyRepo) Create(lobby *entity.Lobby) error {
	args := m.Called(lobby)
	return args.Error(0)
}

func (m *MockLobbyRepo) GetByID(id uint) (*entity.Lobby, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lobby), args.Error(1)
}

func (m *MockLobbyRepo) FindWaiting() (*entity.Lobby, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lobby), args.Error(1)
}

func (m *MockLobbyRepo) UpdateState(lobbyID uint, version int, status entity.LobbyStatus, nextRoundIsLightning bool) error {
	args := m.Called(lobbyID, version, status, nextRoundIsLightning)
	return args.Error(0)
}

func (m *MockLobbyRepo) SetLightningFlag(lobbyID uint, version int, flag bool) error {
	args := m.Called(lobbyID, version, flag)
	return args.Error(0)
}

// MockRoundRepo реализует repository.RoundRepository
type MockRoundRepo struct {
	mock.Mock
}

func (m *MockRoundRepo) Create(round *entity.ActiveRound) error {
	args := m.Called(round)
	return args.Error(0)
}

func (m *MockRoundRepo) GetByID(id uint) (*entity.ActiveRound, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ActiveRound), args.Error(1)
}

func (m *MockRoundRepo) GetByLobbyID(lobbyID uint) ([]entity.ActiveRound, error) {
	args := m.Called(lobbyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ActiveRound), args.Error(1)
}

func (m *MockRoundRepo) UpdateStatus(roundID uint, version int, status entity.RoundStatus) error {
	args := m.Called(roundID, version, status)
	return args.Error(0)
}

// MockAnswerRepo реализует repository.AnswerRepository
type MockAnswerRepo struct {
	mock.Mock
}

func (m *MockAnswerRepo) Create(answer *entity.Answer) error {
	args := m.Called(answer)
	return args.Error(0)
}

func (m *MockAnswerRepo) GetByRoundAndPlayer(roundID uint, playerID string) (*entity.Answer, error) {
	args := m.Called(roundID, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Answer), args.Error(1)
}

func (m *MockAnswerRepo) GetByRoundID(roundID uint) ([]entity.Answer, error) {
	args := m.Called(roundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Answer), args.Error(1)
}

func (m *MockAnswerRepo) GetByRoundIDs(roundIDs []uint) ([]entity.Answer, error) {
	args := m.Called(roundIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Answer), args.Error(1)
}

func (m *MockAnswerRepo) SetScore(answerID uint, score int) error {
	args := m.Called(answerID, score)
	return args.Error(0)
}

// MockCrowdMeterRepo реализует repository.CrowdMeterRepository
type MockCrowdMeterRepo struct {
	mock.Mock
}

func (m *MockCrowdMeterRepo) Increment(roundID uint, answerIndex int) error {
	args := m.Called(roundID, answerIndex)
	return args.Error(0)
}

func (m *MockCrowdMeterRepo) GetByRound(roundID uint) ([]entity.CrowdMeterStat, error) {
	args := m.Called(roundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CrowdMeterStat), args.Error(1)
}

// MockQuestionRepo реализует repository.QuestionRepository
type MockQuestionRepo struct {
	mock.Mock
}

func (m *MockQuestionRepo) Create(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepo) CreateBatch(questions []entity.Question) error {
	args := m.Called(questions)
	return args.Error(0)
}

func (m *MockQuestionRepo) GetByID(id uint) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepo) GetByOffset(offset int64) (*entity.Question, error) {
	args := m.Called(offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepo) List(limit, offset int) ([]entity.Question, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

// MockAgentJobRepo реализует repository.AgentJobRepository
type MockAgentJobRepo struct {
	mock.Mock
}

func (m *MockAgentJobRepo) Create(job *entity.AgentJob) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockAgentJobRepo) GetByID(id uint) (*entity.AgentJob, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AgentJob), args.Error(1)
}

func (m *MockAgentJobRepo) UpdateStatus(jobID uint, version int, status entity.AgentJobStatus, errorMessage *string) error {
	args := m.Called(jobID, version, status, errorMessage)
	return args.Error(0)
}

func (m *MockAgentJobRepo) ListByStatus(status entity.AgentJobStatus, limit int) ([]entity.AgentJob, error) {
	args := m.Called(status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AgentJob), args.Error(1)
}

// MockAgentRegistrationRepo реализует repository.AgentRegistrationRepository
type MockAgentRegistrationRepo struct {
	mock.Mock
}

func (m *MockAgentRegistrationRepo) Create(registration *entity.AgentRegistration) error {
	args := m.Called(registration)
	return args.Error(0)
}

func (m *MockAgentRegistrationRepo) GetByID(id uint) (*entity.AgentRegistration, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AgentRegistration), args.Error(1)
}

// MockCacheRepo реализует repository.CacheRepository
type MockCacheRepo struct {
	mock.Mock
}

func (m *MockCacheRepo) Get(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepo) Set(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepo) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockCacheRepo) Increment(key string) (int64, error) {
	args := m.Called(key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCacheRepo) SetJSON(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepo) GetJSON(key string, dest interface{}) error {
	args := m.Called(key, dest)
	return args.Error(0)
}
