package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/trivia-lobby/internal/domain/entity"
	"github.com/yourusername/trivia-lobby/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-lobby/internal/pkg/errors"
)

// LobbyService предоставляет методы для работы с лобби
type LobbyService struct {
	lobbyRepo  repository.LobbyRepository
	playerRepo repository.PlayerRepository
}

// NewLobbyService создает новый сервис лобби
func NewLobbyService(
	lobbyRepo repository.LobbyRepository,
	playerRepo repository.PlayerRepository,
) *LobbyService {
	return &LobbyService{
		lobbyRepo:  lobbyRepo,
		playerRepo: playerRepo,
	}
}

// maxNameProbes ограничивает количество попыток подобрать свободное имя
const maxNameProbes = 10

// ResolveOrCreatePlayer возвращает игрока по идентификатору вызывающего,
// создавая запись при первом обращении. Базовое имя строится из префикса
// идентификатора; при занятом имени пробуются суффиксы _1, _2 и так далее.
func (s *LobbyService) ResolveOrCreatePlayer(playerID string) (*entity.Player, error) {
	player, err := s.playerRepo.GetByID(playerID)
	if err == nil {
		return player, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	prefix := playerID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	baseName := "Player_" + prefix

	name := baseName
	for i := 0; i <= maxNameProbes; i++ {
		if i > 0 {
			name = fmt.Sprintf("%s_%d", baseName, i)
		}
		player = &entity.Player{
			PlayerID: playerID,
			Name:     name,
			Elo:      entity.DefaultElo,
		}
		err = s.playerRepo.Create(player)
		if err == nil {
			log.Printf("[LobbyService] Создан новый игрок %s с именем %s", playerID, name)
			return player, nil
		}
		if !errors.Is(err, apperrors.ErrNameConflict) {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
	}

	return nil, fmt.Errorf("%w: could not find a free name for %s", apperrors.ErrNameConflict, baseName)
}

// JoinLobby присоединяет вызывающего к лобби, принимающему игроков.
// Если открытого лобби нет, создается новое, и вызывающий становится хостом;
// необязательное имя применяется только к создаваемому лобби.
func (s *LobbyService) JoinLobby(playerID string, lobbyName *string) (*entity.Lobby, *entity.Player, error) {
	player, err := s.ResolveOrCreatePlayer(playerID)
	if err != nil {
		return nil, nil, err
	}

	lobby, err := s.lobbyRepo.FindWaiting()
	if err == nil {
		log.Printf("[LobbyService] Игрок %s присоединился к лобби #%d", playerID, lobby.ID)
		return lobby, player, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, fmt.Errorf("failed to find waiting lobby: %w", err)
	}

	lobby = &entity.Lobby{
		Name:   normalizeLobbyName(lobbyName),
		Status: entity.LobbyStatusWaiting,
		HostID: playerID,
	}
	if err := s.lobbyRepo.Create(lobby); err != nil {
		return nil, nil, fmt.Errorf("failed to create lobby: %w", err)
	}

	log.Printf("[LobbyService] Игрок %s создал лобби #%d и стал хостом", playerID, lobby.ID)
	return lobby, player, nil
}

// normalizeLobbyName обрезает пробелы; пустое имя приравнивается к отсутствующему
func normalizeLobbyName(name *string) *string {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// GetLobby возвращает лобби по ID
func (s *LobbyService) GetLobby(lobbyID uint) (*entity.Lobby, error) {
	return s.lobbyRepo.GetByID(lobbyID)
}

// SetLightning выставляет флаг молниеносного следующего раунда.
// Доступно только хосту и только пока лобби принимает игроков:
// флаг потребляется при старте игры.
func (s *LobbyService) SetLightning(lobbyID uint, callerID string, flag bool) (*entity.Lobby, error) {
	lobby, err := s.lobbyRepo.GetByID(lobbyID)
	if err != nil {
		return nil, err
	}

	if !lobby.IsHost(callerID) {
		return nil, fmt.Errorf("%w: only the lobby host can set the lightning flag", apperrors.ErrForbidden)
	}
	if !lobby.IsWaiting() {
		return nil, fmt.Errorf("%w: lobby #%d is not waiting", apperrors.ErrInvalidState, lobbyID)
	}

	if err := s.lobbyRepo.SetLightningFlag(lobbyID, lobby.Version, flag); err != nil {
		return nil, err
	}

	lobby.NextRoundIsLightning = flag
	lobby.Version++
	log.Printf("[LobbyService] Хост %s выставил флаг молниеносного раунда лобби #%d: %t", callerID, lobbyID, flag)
	return lobby, nil
}
