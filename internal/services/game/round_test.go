package game

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/corkedgame/corked/internal/common/clock/mocks"
	codeMocks "github.com/corkedgame/corked/internal/common/gamecode/mocks"
	uuidMocks "github.com/corkedgame/corked/internal/common/uuid/mocks"
	"github.com/corkedgame/corked/internal/models"
	gameRepo "github.com/corkedgame/corked/internal/repositories/game"
	gameMocks "github.com/corkedgame/corked/internal/repositories/game/mocks"
	playerRepo "github.com/corkedgame/corked/internal/repositories/player"
	playerMocks "github.com/corkedgame/corked/internal/repositories/player/mocks"
	submissionRepo "github.com/corkedgame/corked/internal/repositories/submission"
	submissionMocks "github.com/corkedgame/corked/internal/repositories/submission/mocks"
	wineRepo "github.com/corkedgame/corked/internal/repositories/wine"
	wineMocks "github.com/corkedgame/corked/internal/repositories/wine/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoundServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockGameRepo       *gameMocks.MockRepository
	mockPlayerRepo     *playerMocks.MockRepository
	mockWineRepo       *wineMocks.MockRepository
	mockSubmissionRepo *submissionMocks.MockRepository
	mockClock          *clockMocks.MockClock
	mockUUID           *uuidMocks.MockUUID
	mockCodeGen        *codeMocks.MockGenerator
	gameService        Service
	ctx                context.Context

	// Test data
	testTime     time.Time
	testGameID   string
	testGameCode string
	testHostID   string
	testPlayerID string

	// Reusable test fixtures
	activeGame *models.Game
	testWines  []*models.Wine
	testHost   *models.Player
	testPlayer *models.Player
}

func (s *RoundServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockWineRepo = wineMocks.NewMockRepository(s.mockCtrl)
	s.mockSubmissionRepo = submissionMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockCodeGen = codeMocks.NewMockGenerator(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"
	s.testGameCode = "TASTE2"
	s.testHostID = "test-host-id"
	s.testPlayerID = "test-player-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	// Round 1 is open and being played
	s.activeGame = &models.Game{
		ID:              s.testGameID,
		Code:            s.testGameCode,
		HostID:          s.testHostID,
		Status:          models.GameStatusInProgress,
		CurrentRound:    1,
		TotalRounds:     2,
		MaxPlayers:      8,
		BottleCount:     4,
		BottlesPerRound: 2,
		Rounds: []*models.Round{
			{ID: 1, State: models.RoundStateOpen},
			{ID: 2, State: models.RoundStateClosed},
		},
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}

	s.testWines = []*models.Wine{
		{ID: "wine-1", GameID: s.testGameID, Label: "Wine 1", Position: 1, Price: price(40)},
		{ID: "wine-2", GameID: s.testGameID, Label: "Wine 2", Position: 2, Price: price(30)},
		{ID: "wine-3", GameID: s.testGameID, Label: "Wine 3", Position: 3, Price: price(20)},
		{ID: "wine-4", GameID: s.testGameID, Label: "Wine 4", Position: 4, Price: price(10)},
	}

	s.testHost = &models.Player{
		ID:       s.testHostID,
		GameID:   s.testGameID,
		Name:     "Test Host",
		JoinedAt: s.testTime,
	}

	s.testPlayer = &models.Player{
		ID:       s.testPlayerID,
		GameID:   s.testGameID,
		Name:     "Test Player",
		JoinedAt: s.testTime.Add(time.Minute),
	}

	svc, err := New(&Config{
		GameRepo:       s.mockGameRepo,
		PlayerRepo:     s.mockPlayerRepo,
		WineRepo:       s.mockWineRepo,
		SubmissionRepo: s.mockSubmissionRepo,
		Clock:          s.mockClock,
		UUIDGenerator:  s.mockUUID,
		CodeGenerator:  s.mockCodeGen,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *RoundServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RoundServiceTestSuite) expectGetGameByCode(game *models.Game) {
	s.mockGameRepo.EXPECT().
		GetGameByCode(gomock.Any(), &gameRepo.GetGameByCodeInput{
			Code: s.testGameCode,
		}).
		Return(game, nil)
}

func (s *RoundServiceTestSuite) expectSeated(player *models.Player) {
	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), &playerRepo.GetPlayerInput{
			GameID:   s.testGameID,
			PlayerID: player.ID,
		}).
		Return(player, nil)
}

// expectRound1Wines sets up the assignment and wine fetches that resolve
// round 1 to wine-1, wine-2 in pour order
func (s *RoundServiceTestSuite) expectRound1Wines() {
	s.mockWineRepo.EXPECT().
		GetAssignmentsForRound(gomock.Any(), &wineRepo.GetAssignmentsForRoundInput{
			GameID:  s.testGameID,
			RoundID: 1,
		}).
		Return(&wineRepo.GetAssignmentsForRoundOutput{
			Assignments: []*models.RoundWineAssignment{
				{GameID: s.testGameID, RoundID: 1, WineID: "wine-1", Position: 1},
				{GameID: s.testGameID, RoundID: 1, WineID: "wine-2", Position: 2},
			},
		}, nil)

	s.mockWineRepo.EXPECT().
		GetWinesForGame(gomock.Any(), &wineRepo.GetWinesForGameInput{
			GameID: s.testGameID,
		}).
		Return(&wineRepo.GetWinesForGameOutput{
			Wines: s.testWines,
		}, nil)
}

// SubmitRanking Tests

func (s *RoundServiceTestSuite) TestSubmitRanking_HappyPath() {
	s.expectGetGameByCode(s.activeGame)
	s.expectSeated(s.testPlayer)
	s.expectRound1Wines()

	s.mockSubmissionRepo.EXPECT().
		SaveRoundSubmission(gomock.Any(), &submissionRepo.SaveRoundSubmissionInput{
			Submission: &models.RoundSubmission{
				GameID:      s.testGameID,
				RoundID:     1,
				PlayerID:    s.testPlayerID,
				Notes:       "oaky",
				Ranking:     []string{"wine-2", "wine-1"},
				SubmittedAt: s.testTime,
			},
		}).
		Return(nil)

	output, err := s.gameService.SubmitRanking(s.ctx, &SubmitRankingInput{
		GameCode: s.testGameCode,
		RoundID:  1,
		PlayerID: s.testPlayerID,
		Notes:    "oaky",
		Ranking:  []string{"wine-2", "wine-1"},
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.False(output.Submission.Draft)
}

func (s *RoundServiceTestSuite) TestSubmitRanking_InvalidRanking() {
	s.expectGetGameByCode(s.activeGame)
	s.expectSeated(s.testPlayer)
	s.expectRound1Wines()

	// wine-3 belongs to round 2
	output, err := s.gameService.SubmitRanking(s.ctx, &SubmitRankingInput{
		GameCode: s.testGameCode,
		RoundID:  1,
		PlayerID: s.testPlayerID,
		Ranking:  []string{"wine-1", "wine-3"},
	})

	s.Require().Error(err)
	s.Equal(ErrInvalidRanking, err)
	s.Nil(output)
}

func (s *RoundServiceTestSuite) TestSubmitRanking_DuplicateWine() {
	s.expectGetGameByCode(s.activeGame)
	s.expectSeated(s.testPlayer)
	s.expectRound1Wines()

	output, err := s.gameService.SubmitRanking(s.ctx, &SubmitRankingInput{
		GameCode: s.testGameCode,
		RoundID:  1,
		PlayerID: s.testPlayerID,
		Ranking:  []string{"wine-1", "wine-1"},
	})

	s.Require().Error(err)
	s.Equal(ErrInvalidRanking, err)
	s.Nil(output)
}

func (s *RoundServiceTestSuite) TestSubmitRanking_RoundClosed() {
	closedGame := *s.activeGame
	closedGame.Rounds = []*models.Round{
		{ID: 1, State: models.RoundStateClosed},
		{ID: 2, State: models.RoundStateClosed},
	}
	s.expectGetGameByCode(&closedGame)

	output, err := s.gameService.SubmitRanking(s.ctx, &SubmitRankingInput{
		GameCode: s.testGameCode,
		RoundID:  1,
		PlayerID: s.testPlayerID,
		Ranking:  []string{"wine-1", "wine-2"},
	})

	s.Require().Error(err)
	s.Equal(ErrRoundWrongState, err)
	s.Nil(output)
}

func (s *RoundServiceTestSuite) TestSubmitRanking_NotCurrentRound() {
	s.expectGetGameByCode(s.activeGame)

	output, err := s.gameService.SubmitRanking(s.ctx, &SubmitRankingInput{
		GameCode: s.testGameCode,
		RoundID:  2,
		PlayerID: s.testPlayerID,
		Ranking:  []string{"wine-3", "wine-4"},
	})

	s.Require().Error(err)
	s.Equal(ErrRoundWrongState, err)
	s.Nil(output)
}

func (s *RoundServiceTestSuite) TestSubmitRanking_NotSeated() {
	s.expectGetGameByCode(s.activeGame)

	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), &playerRepo.GetPlayerInput{
			GameID:   s.testGameID,
			PlayerID: "ghost-player",
		}).
		Return(nil, playerRepo.ErrPlayerNotFound)

	output, err := s.gameService.SubmitRanking(s.ctx, &SubmitRankingInput{
		GameCode: s.testGameCode,
		RoundID:  1,
		PlayerID: "ghost-player",
		Ranking:  []string{"wine-1", "wine-2"},
	})

	s.Require().Error(err)
	s.Equal(ErrNotInGame, err)
	s.Nil(output)
}

// SaveDraft Tests

func (s *RoundServiceTestSuite) TestSaveDraft_HappyPath() {
	s.expectGetGameByCode(s.activeGame)
	s.expectSeated(s.testPlayer)

	// Drafts take partial rankings without validation
	s.mockSubmissionRepo.EXPECT().
		SaveRoundSubmission(gomock.Any(), &submissionRepo.SaveRoundSubmissionInput{
			Submission: &models.RoundSubmission{
				GameID:      s.testGameID,
				RoundID:     1,
				PlayerID:    s.testPlayerID,
				Notes:       "still deciding",
				Ranking:     []string{"wine-2"},
				Draft:       true,
				SubmittedAt: s.testTime,
			},
		}).
		Return(nil)

	output, err := s.gameService.SaveDraft(s.ctx, &SaveDraftInput{
		GameCode: s.testGameCode,
		RoundID:  1,
		PlayerID: s.testPlayerID,
		Notes:    "still deciding",
		Ranking:  []string{"wine-2"},
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.True(output.Submission.Draft)
}

// CloseRound Tests

func (s *RoundServiceTestSuite) TestCloseRound_BackfillsMissingPlayer() {
	s.expectGetGameByCode(s.activeGame)

	s.mockPlayerRepo.EXPECT().
		GetPlayersInGame(gomock.Any(), &playerRepo.GetPlayersInGameInput{
			GameID: s.testGameID,
		}).
		Return(&playerRepo.GetPlayersInGameOutput{
			Players: []*models.Player{s.testHost, s.testPlayer},
		}, nil)

	s.expectRound1Wines()

	// The host submitted, the player never did
	s.mockSubmissionRepo.EXPECT().
		GetSubmissionsForRound(gomock.Any(), &submissionRepo.GetSubmissionsForRoundInput{
			GameID:  s.testGameID,
			RoundID: 1,
		}).
		Return(&submissionRepo.GetSubmissionsForRoundOutput{
			Submissions: []*models.RoundSubmission{
				{
					GameID:   s.testGameID,
					RoundID:  1,
					PlayerID: s.testHostID,
					Ranking:  []string{"wine-2", "wine-1"},
				},
			},
		}, nil)

	// Exactly one backfill, in pour order, marked synthesized
	s.mockSubmissionRepo.EXPECT().
		SaveRoundSubmission(gomock.Any(), &submissionRepo.SaveRoundSubmissionInput{
			Submission: &models.RoundSubmission{
				GameID:      s.testGameID,
				RoundID:     1,
				PlayerID:    s.testPlayerID,
				Ranking:     []string{"wine-1", "wine-2"},
				Backfilled:  true,
				SubmittedAt: s.testTime,
			},
		}).
		Return(nil)

	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), gomock.Any()).
		Return(nil)

	output, err := s.gameService.CloseRound(s.ctx, &CloseRoundInput{
		GameCode: s.testGameCode,
		RoundID:  1,
		HostID:   s.testHostID,
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.False(output.AlreadyClosed)
	s.Equal(1, output.Backfilled)
	s.Equal(models.RoundStateClosed, s.activeGame.Rounds[0].State)
}

func (s *RoundServiceTestSuite) TestCloseRound_PromotesValidDraft() {
	s.expectGetGameByCode(s.activeGame)

	s.mockPlayerRepo.EXPECT().
		GetPlayersInGame(gomock.Any(), &playerRepo.GetPlayersInGameInput{
			GameID: s.testGameID,
		}).
		Return(&playerRepo.GetPlayersInGameOutput{
			Players: []*models.Player{s.testPlayer},
		}, nil)

	s.expectRound1Wines()

	s.mockSubmissionRepo.EXPECT().
		GetSubmissionsForRound(gomock.Any(), &submissionRepo.GetSubmissionsForRoundInput{
			GameID:  s.testGameID,
			RoundID: 1,
		}).
		Return(&submissionRepo.GetSubmissionsForRoundOutput{
			Submissions: []*models.RoundSubmission{
				{
					GameID:   s.testGameID,
					RoundID:  1,
					PlayerID: s.testPlayerID,
					Notes:    "went back and forth",
					Ranking:  []string{"wine-2", "wine-1"},
					Draft:    true,
				},
			},
		}, nil)

	// The complete draft becomes the player's real answer, not a
	// synthesized one
	s.mockSubmissionRepo.EXPECT().
		SaveRoundSubmission(gomock.Any(), &submissionRepo.SaveRoundSubmissionInput{
			Submission: &models.RoundSubmission{
				GameID:      s.testGameID,
				RoundID:     1,
				PlayerID:    s.testPlayerID,
				Notes:       "went back and forth",
				Ranking:     []string{"wine-2", "wine-1"},
				SubmittedAt: s.testTime,
			},
		}).
		Return(nil)

	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), gomock.Any()).
		Return(nil)

	output, err := s.gameService.CloseRound(s.ctx, &CloseRoundInput{
		GameCode: s.testGameCode,
		RoundID:  1,
		HostID:   s.testHostID,
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal(0, output.Backfilled)
}

func (s *RoundServiceTestSuite) TestCloseRound_PartialDraftBackfilled() {
	s.expectGetGameByCode(s.activeGame)

	s.mockPlayerRepo.EXPECT().
		GetPlayersInGame(gomock.Any(), &playerRepo.GetPlayersInGameInput{
			GameID: s.testGameID,
		}).
		Return(&playerRepo.GetPlayersInGameOutput{
			Players: []*models.Player{s.testPlayer},
		}, nil)

	s.expectRound1Wines()

	s.mockSubmissionRepo.EXPECT().
		GetSubmissionsForRound(gomock.Any(), &submissionRepo.GetSubmissionsForRoundInput{
			GameID:  s.testGameID,
			RoundID: 1,
		}).
		Return(&submissionRepo.GetSubmissionsForRoundOutput{
			Submissions: []*models.RoundSubmission{
				{
					GameID:   s.testGameID,
					RoundID:  1,
					PlayerID: s.testPlayerID,
					Notes:    "ran out of time",
					Ranking:  []string{"wine-2"},
					Draft:    true,
				},
			},
		}, nil)

	// An incomplete draft gets the default ranking but keeps its notes
	s.mockSubmissionRepo.EXPECT().
		SaveRoundSubmission(gomock.Any(), &submissionRepo.SaveRoundSubmissionInput{
			Submission: &models.RoundSubmission{
				GameID:      s.testGameID,
				RoundID:     1,
				PlayerID:    s.testPlayerID,
				Notes:       "ran out of time",
				Ranking:     []string{"wine-1", "wine-2"},
				Backfilled:  true,
				SubmittedAt: s.testTime,
			},
		}).
		Return(nil)

	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), gomock.Any()).
		Return(nil)

	output, err := s.gameService.CloseRound(s.ctx, &CloseRoundInput{
		GameCode: s.testGameCode,
		RoundID:  1,
		HostID:   s.testHostID,
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal(1, output.Backfilled)
}

func (s *RoundServiceTestSuite) TestCloseRound_AlreadyClosed() {
	closedGame := *s.activeGame
	closedGame.Rounds = []*models.Round{
		{ID: 1, State: models.RoundStateClosed},
		{ID: 2, State: models.RoundStateClosed},
	}
	s.expectGetGameByCode(&closedGame)

	// No backfill, no save
	output, err := s.gameService.CloseRound(s.ctx, &CloseRoundInput{
		GameCode: s.testGameCode,
		RoundID:  1,
		HostID:   s.testHostID,
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.True(output.AlreadyClosed)
	s.Equal(0, output.Backfilled)
}

func (s *RoundServiceTestSuite) TestCloseRound_FutureRound() {
	s.expectGetGameByCode(s.activeGame)

	output, err := s.gameService.CloseRound(s.ctx, &CloseRoundInput{
		GameCode: s.testGameCode,
		RoundID:  2,
		HostID:   s.testHostID,
	})

	s.Require().Error(err)
	s.Equal(ErrRoundWrongState, err)
	s.Nil(output)
}

func (s *RoundServiceTestSuite) TestCloseRound_NotHost() {
	s.expectGetGameByCode(s.activeGame)

	output, err := s.gameService.CloseRound(s.ctx, &CloseRoundInput{
		GameCode: s.testGameCode,
		RoundID:  1,
		HostID:   s.testPlayerID,
	})

	s.Require().Error(err)
	s.Equal(ErrNotHost, err)
	s.Nil(output)
}

// AdvanceRound Tests

func (s *RoundServiceTestSuite) TestAdvanceRound_OpensNextRound() {
	s.activeGame.Rounds[0].State = models.RoundStateClosed
	s.expectGetGameByCode(s.activeGame)

	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), gomock.Any()).
		Return(nil)

	output, err := s.gameService.AdvanceRound(s.ctx, &AdvanceRoundInput{
		GameCode: s.testGameCode,
		HostID:   s.testHostID,
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.False(output.AlreadyFinished)
	s.Equal(2, output.Game.CurrentRound)
	s.Equal(models.RoundStateOpen, output.Game.Rounds[1].State)
	s.Equal(models.GameStatusInProgress, output.Game.Status)
}

func (s *RoundServiceTestSuite) TestAdvanceRound_MovesToGambit() {
	s.activeGame.CurrentRound = 2
	s.activeGame.Rounds[0].State = models.RoundStateClosed
	s.activeGame.Rounds[1].State = models.RoundStateClosed
	s.expectGetGameByCode(s.activeGame)

	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), gomock.Any()).
		Return(nil)

	output, err := s.gameService.AdvanceRound(s.ctx, &AdvanceRoundInput{
		GameCode: s.testGameCode,
		HostID:   s.testHostID,
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal(models.GameStatusGambit, output.Game.Status)
	s.Equal(2, output.Game.CurrentRound)
}

func (s *RoundServiceTestSuite) TestAdvanceRound_CurrentRoundStillOpen() {
	s.expectGetGameByCode(s.activeGame)

	output, err := s.gameService.AdvanceRound(s.ctx, &AdvanceRoundInput{
		GameCode: s.testGameCode,
		HostID:   s.testHostID,
	})

	s.Require().Error(err)
	s.Equal(ErrRoundWrongState, err)
	s.Nil(output)
}

func (s *RoundServiceTestSuite) TestAdvanceRound_AlreadyInGambit() {
	gambitGame := *s.activeGame
	gambitGame.Status = models.GameStatusGambit
	s.expectGetGameByCode(&gambitGame)

	output, err := s.gameService.AdvanceRound(s.ctx, &AdvanceRoundInput{
		GameCode: s.testGameCode,
		HostID:   s.testHostID,
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.True(output.AlreadyFinished)
}

// RevealRound Tests

func (s *RoundServiceTestSuite) TestRevealRound_HappyPath() {
	s.activeGame.Rounds[0].State = models.RoundStateClosed
	s.expectGetGameByCode(s.activeGame)
	s.expectSeated(s.testPlayer)

	s.mockSubmissionRepo.EXPECT().
		GetRoundSubmission(gomock.Any(), &submissionRepo.GetRoundSubmissionInput{
			GameID:   s.testGameID,
			RoundID:  1,
			PlayerID: s.testPlayerID,
		}).
		Return(&models.RoundSubmission{
			GameID:   s.testGameID,
			RoundID:  1,
			PlayerID: s.testPlayerID,
			Notes:    "oaky",
			Ranking:  []string{"wine-2", "wine-1"},
		}, nil)

	s.expectRound1Wines()

	output, err := s.gameService.RevealRound(s.ctx, &RevealRoundInput{
		GameCode: s.testGameCode,
		RoundID:  1,
		PlayerID: s.testPlayerID,
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Require().Len(output.Positions, 2)

	// wine-1 is $40, wine-2 is $30: the player swapped them
	s.Equal("wine-2", output.Positions[0].WineID)
	s.False(output.Positions[0].Correct)
	s.Equal([]string{"wine-1"}, output.Positions[0].AcceptableWineIDs)
	s.False(output.Positions[0].Tied)
	s.False(output.Positions[1].Correct)
	s.Equal(0, output.TotalPoints)
	s.Equal(2, output.MaxPoints)
	s.Equal("oaky", output.Notes)
}

func (s *RoundServiceTestSuite) TestRevealRound_TiedPrices() {
	s.activeGame.Rounds[0].State = models.RoundStateClosed
	s.expectGetGameByCode(s.activeGame)
	s.expectSeated(s.testPlayer)

	s.mockSubmissionRepo.EXPECT().
		GetRoundSubmission(gomock.Any(), gomock.Any()).
		Return(&models.RoundSubmission{
			GameID:   s.testGameID,
			RoundID:  1,
			PlayerID: s.testPlayerID,
			Ranking:  []string{"wine-2", "wine-1"},
		}, nil)

	s.mockWineRepo.EXPECT().
		GetAssignmentsForRound(gomock.Any(), gomock.Any()).
		Return(&wineRepo.GetAssignmentsForRoundOutput{
			Assignments: []*models.RoundWineAssignment{
				{GameID: s.testGameID, RoundID: 1, WineID: "wine-1", Position: 1},
				{GameID: s.testGameID, RoundID: 1, WineID: "wine-2", Position: 2},
			},
		}, nil)

	// Both bottles cost the same, so either order scores
	tied := []*models.Wine{
		{ID: "wine-1", GameID: s.testGameID, Position: 1, Price: price(25)},
		{ID: "wine-2", GameID: s.testGameID, Position: 2, Price: price(25)},
	}
	s.mockWineRepo.EXPECT().
		GetWinesForGame(gomock.Any(), gomock.Any()).
		Return(&wineRepo.GetWinesForGameOutput{
			Wines: tied,
		}, nil)

	output, err := s.gameService.RevealRound(s.ctx, &RevealRoundInput{
		GameCode: s.testGameCode,
		RoundID:  1,
		PlayerID: s.testPlayerID,
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal(2, output.TotalPoints)
	s.True(output.Positions[0].Correct)
	s.True(output.Positions[0].Tied)
	s.True(output.Positions[1].Correct)
	s.True(output.Positions[1].Tied)
}

func (s *RoundServiceTestSuite) TestRevealRound_RoundStillOpen() {
	s.expectGetGameByCode(s.activeGame)

	output, err := s.gameService.RevealRound(s.ctx, &RevealRoundInput{
		GameCode: s.testGameCode,
		RoundID:  1,
		PlayerID: s.testPlayerID,
	})

	s.Require().Error(err)
	s.Equal(ErrRoundWrongState, err)
	s.Nil(output)
}

func (s *RoundServiceTestSuite) TestRevealRound_NoSubmission() {
	s.activeGame.Rounds[0].State = models.RoundStateClosed
	s.expectGetGameByCode(s.activeGame)
	s.expectSeated(s.testPlayer)

	s.mockSubmissionRepo.EXPECT().
		GetRoundSubmission(gomock.Any(), gomock.Any()).
		Return(nil, submissionRepo.ErrSubmissionNotFound)

	output, err := s.gameService.RevealRound(s.ctx, &RevealRoundInput{
		GameCode: s.testGameCode,
		RoundID:  1,
		PlayerID: s.testPlayerID,
	})

	s.Require().Error(err)
	s.Equal(ErrRoundWrongState, err)
	s.Nil(output)
}

// GetRoundStatus Tests

func (s *RoundServiceTestSuite) TestGetRoundStatus_ExcludesDrafts() {
	s.expectGetGameByCode(s.activeGame)
	s.expectRound1Wines()

	s.mockPlayerRepo.EXPECT().
		GetPlayersInGame(gomock.Any(), &playerRepo.GetPlayersInGameInput{
			GameID: s.testGameID,
		}).
		Return(&playerRepo.GetPlayersInGameOutput{
			Players: []*models.Player{s.testHost, s.testPlayer},
		}, nil)

	s.mockSubmissionRepo.EXPECT().
		GetSubmissionsForRound(gomock.Any(), &submissionRepo.GetSubmissionsForRoundInput{
			GameID:  s.testGameID,
			RoundID: 1,
		}).
		Return(&submissionRepo.GetSubmissionsForRoundOutput{
			Submissions: []*models.RoundSubmission{
				{GameID: s.testGameID, RoundID: 1, PlayerID: s.testHostID, Ranking: []string{"wine-1", "wine-2"}},
				{GameID: s.testGameID, RoundID: 1, PlayerID: s.testPlayerID, Ranking: []string{"wine-2"}, Draft: true},
			},
		}, nil)

	output, err := s.gameService.GetRoundStatus(s.ctx, &GetRoundStatusInput{
		GameCode: s.testGameCode,
		RoundID:  1,
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal([]string{s.testHostID}, output.SubmittedPlayerIDs)
	s.Equal(2, output.SeatedCount)
	s.Len(output.Wines, 2)
	s.Equal("wine-1", output.Wines[0].ID)
}

func TestRoundServiceSuite(t *testing.T) {
	suite.Run(t, new(RoundServiceTestSuite))
}
