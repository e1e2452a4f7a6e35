package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/corkedgame/corked/internal/common/clock"
	"github.com/corkedgame/corked/internal/common/gamecode"
	"github.com/corkedgame/corked/internal/common/uuid"
	"github.com/corkedgame/corked/internal/models"
	gameRepo "github.com/corkedgame/corked/internal/repositories/game"
	playerRepo "github.com/corkedgame/corked/internal/repositories/player"
	submissionRepo "github.com/corkedgame/corked/internal/repositories/submission"
	wineRepo "github.com/corkedgame/corked/internal/repositories/wine"
)

const defaultMaxPlayers = 12

// service implements the Service interface
type service struct {
	config         *Config
	gameRepo       gameRepo.Repository
	playerRepo     playerRepo.Repository
	wineRepo       wineRepo.Repository
	submissionRepo submissionRepo.Repository
	clock          clock.Clock
	uuidGenerator  uuid.UUID
	codeGenerator  gamecode.Generator

	// gameLocks serializes mutations per game so a late submission and a
	// host's close/advance/finish never interleave. Different games
	// never contend
	gameLocks sync.Map
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.WineRepo == nil {
		return nil, ErrNilWineRepo
	}
	if cfg.SubmissionRepo == nil {
		return nil, ErrNilSubmissionRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.CodeGenerator == nil {
		return nil, ErrNilCodeGenerator
	}

	if cfg.MaxPlayers == 0 {
		cfg.MaxPlayers = defaultMaxPlayers
	}

	return &service{
		config:         cfg,
		gameRepo:       cfg.GameRepo,
		playerRepo:     cfg.PlayerRepo,
		wineRepo:       cfg.WineRepo,
		submissionRepo: cfg.SubmissionRepo,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		codeGenerator:  cfg.CodeGenerator,
	}, nil
}

// lockGame takes the per-game mutation lock and returns the unlock func.
// Codes are case-insensitive, so the key is normalized
func (s *service) lockGame(code string) func() {
	v, _ := s.gameLocks.LoadOrStore(strings.ToUpper(code), &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// getGameByCode fetches a game, mapping the repository's not-found error
// to the service error kind
func (s *service) getGameByCode(ctx context.Context, code string) (*models.Game, error) {
	game, err := s.gameRepo.GetGameByCode(ctx, &gameRepo.GetGameByCodeInput{
		Code: code,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return game, nil
}

// getSeatedPlayer fetches a seated player, mapping not-found to ErrNotInGame
func (s *service) getSeatedPlayer(ctx context.Context, gameID, playerID string) (*models.Player, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		GameID:   gameID,
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrNotInGame
		}
		return nil, err
	}
	return player, nil
}

// CreateGame creates a new tasting game, its rounds, its wine slots and
// their round assignments, and seats the host
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.HostName == "" {
		return nil, errors.New("host name is required")
	}
	if input.BottleCount < 1 || input.BottlesPerRound < 1 {
		return nil, ErrRoundNotConfigured
	}
	// Rounds must deal the bottle list out evenly
	if input.BottleCount%input.BottlesPerRound != 0 {
		return nil, ErrRoundNotConfigured
	}

	maxPlayers := input.MaxPlayers
	if maxPlayers == 0 {
		maxPlayers = s.config.MaxPlayers
	}

	now := s.clock.Now()
	totalRounds := input.BottleCount / input.BottlesPerRound

	rounds := make([]*models.Round, 0, totalRounds)
	for i := 1; i <= totalRounds; i++ {
		rounds = append(rounds, &models.Round{
			ID:    i,
			State: models.RoundStateClosed,
		})
	}

	game := &models.Game{
		ID:              s.uuidGenerator.NewUUID(),
		Code:            s.codeGenerator.NewCode(),
		HostID:          s.uuidGenerator.NewUUID(),
		Status:          models.GameStatusSetup,
		CurrentRound:    0,
		TotalRounds:     totalRounds,
		MaxPlayers:      maxPlayers,
		BottleCount:     input.BottleCount,
		BottlesPerRound: input.BottlesPerRound,
		Rounds:          rounds,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Save the game first so the code resolves while setup continues
	err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	// Create the wine slots, unpriced until the host fills them in
	wines := make([]*models.Wine, 0, input.BottleCount)
	for i := 1; i <= input.BottleCount; i++ {
		w := &models.Wine{
			ID:       s.uuidGenerator.NewUUID(),
			GameID:   game.ID,
			Label:    fmt.Sprintf("Wine %d", i),
			Position: i,
		}

		err = s.wineRepo.SaveWine(ctx, &wineRepo.SaveWineInput{
			Wine: w,
		})
		if err != nil {
			return nil, err
		}

		wines = append(wines, w)
	}

	// Deal the wines to rounds in slot order
	assignments := make([]*models.RoundWineAssignment, 0, input.BottleCount)
	for i, w := range wines {
		assignments = append(assignments, &models.RoundWineAssignment{
			GameID:   game.ID,
			RoundID:  i/input.BottlesPerRound + 1,
			WineID:   w.ID,
			Position: i%input.BottlesPerRound + 1,
		})
	}

	err = s.wineRepo.SaveAssignments(ctx, &wineRepo.SaveAssignmentsInput{
		Assignments: assignments,
	})
	if err != nil {
		return nil, err
	}

	// Seat the host as a normal playing player
	host := &models.Player{
		ID:       game.HostID,
		GameID:   game.ID,
		Name:     input.HostName,
		JoinedAt: now,
	}

	err = s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: host,
	})
	if err != nil {
		return nil, err
	}

	// The first player is seated, so the game moves to the lobby
	game.Status = models.GameStatusLobby

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &CreateGameOutput{
		Game: game,
		Host: host,
	}, nil
}

// JoinGame seats a player in a game
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.GameCode == "" {
		return nil, errors.New("game code is required")
	}
	if input.PlayerName == "" && input.PlayerID == "" {
		return nil, errors.New("player name is required")
	}

	unlock := s.lockGame(input.GameCode)
	defer unlock()

	game, err := s.getGameByCode(ctx, input.GameCode)
	if err != nil {
		return nil, err
	}

	// Late joins during round play are allowed; the close backfill
	// covers any rounds they miss. Joining a finished tasting is not
	switch game.Status {
	case models.GameStatusSetup, models.GameStatusLobby, models.GameStatusInProgress:
	default:
		return nil, ErrGameWrongStatus
	}

	// A returning player rejoins their existing seat
	if input.PlayerID != "" {
		existing, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
			GameID:   game.ID,
			PlayerID: input.PlayerID,
		})
		if err == nil {
			return &JoinGameOutput{
				Game:   game,
				Player: existing,
			}, nil
		}
		if !errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, err
		}
	}

	players, err := s.playerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}

	if len(players.Players) >= game.MaxPlayers {
		return nil, ErrGameFull
	}

	playerID := input.PlayerID
	if playerID == "" {
		playerID = s.uuidGenerator.NewUUID()
	}

	now := s.clock.Now()
	player := &models.Player{
		ID:       playerID,
		GameID:   game.ID,
		Name:     input.PlayerName,
		JoinedAt: now,
	}

	err = s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: player,
	})
	if err != nil {
		return nil, err
	}

	if game.Status == models.GameStatusSetup {
		game.Status = models.GameStatusLobby
		game.UpdatedAt = now

		err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
			Game: game,
		})
		if err != nil {
			return nil, err
		}
	}

	return &JoinGameOutput{
		Game:   game,
		Player: player,
	}, nil
}

// UpdateWine edits a wine's label, nickname or price
func (s *service) UpdateWine(ctx context.Context, input *UpdateWineInput) (*UpdateWineOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.WineID == "" {
		return nil, errors.New("wine ID is required")
	}

	unlock := s.lockGame(input.GameCode)
	defer unlock()

	game, err := s.getGameByCode(ctx, input.GameCode)
	if err != nil {
		return nil, err
	}

	if game.HostID != input.HostID {
		return nil, ErrNotHost
	}

	// Prices stay editable through round play; once the game is
	// finished the record is settled
	if game.Status == models.GameStatusFinished {
		return nil, ErrGameWrongStatus
	}

	w, err := s.wineRepo.GetWine(ctx, &wineRepo.GetWineInput{
		GameID: game.ID,
		WineID: input.WineID,
	})
	if err != nil {
		if errors.Is(err, wineRepo.ErrWineNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Label != nil {
		w.Label = *input.Label
	}
	if input.Nickname != nil {
		w.Nickname = *input.Nickname
	}
	if input.Price != nil {
		price := *input.Price
		w.Price = &price
	}
	if input.ClearPrice {
		w.Price = nil
	}

	err = s.wineRepo.SaveWine(ctx, &wineRepo.SaveWineInput{
		Wine: w,
	})
	if err != nil {
		return nil, err
	}

	return &UpdateWineOutput{
		Wine: w,
	}, nil
}

// StartGame moves a fully priced game into round play
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	unlock := s.lockGame(input.GameCode)
	defer unlock()

	game, err := s.getGameByCode(ctx, input.GameCode)
	if err != nil {
		return nil, err
	}

	if game.HostID != input.HostID {
		return nil, ErrNotHost
	}

	switch game.Status {
	case models.GameStatusSetup, models.GameStatusLobby:
	default:
		return nil, ErrGameWrongStatus
	}

	// Every configured slot must exist and carry a price, or neither
	// round scoring nor the gambit is defined
	wines, err := s.wineRepo.GetWinesForGame(ctx, &wineRepo.GetWinesForGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}

	if len(wines.Wines) < game.BottleCount {
		return nil, ErrWineListIncomplete
	}
	for _, w := range wines.Wines {
		if !w.Priced() {
			return nil, ErrWineListIncomplete
		}
	}

	game.Status = models.GameStatusInProgress
	game.CurrentRound = 1
	game.Rounds[0].State = models.RoundStateOpen
	game.UpdatedAt = s.clock.Now()

	// A single save, so a failure never leaves the status half moved
	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &StartGameOutput{
		Game: game,
	}, nil
}

// BootPlayer removes a player from the game. The booted player's past
// submissions are left untouched
func (s *service) BootPlayer(ctx context.Context, input *BootPlayerInput) (*BootPlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	unlock := s.lockGame(input.GameCode)
	defer unlock()

	game, err := s.getGameByCode(ctx, input.GameCode)
	if err != nil {
		return nil, err
	}

	if game.HostID != input.HostID {
		return nil, ErrNotHost
	}

	if input.PlayerID == game.HostID {
		return nil, ErrCannotBootHost
	}

	if _, err := s.getSeatedPlayer(ctx, game.ID, input.PlayerID); err != nil {
		return nil, err
	}

	err = s.playerRepo.RemovePlayer(ctx, &playerRepo.RemovePlayerInput{
		GameID:   game.ID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	return &BootPlayerOutput{
		Success: true,
	}, nil
}

// GetGame returns the game, its seated players and its wines
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.getGameByCode(ctx, input.GameCode)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}

	wines, err := s.wineRepo.GetWinesForGame(ctx, &wineRepo.GetWinesForGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Game:    game,
		Players: players.Players,
		Wines:   wines.Wines,
	}, nil
}
