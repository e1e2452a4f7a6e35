package game

import (
	"context"
	"errors"
	"log"
	"sort"

	"github.com/corkedgame/corked/internal/models"
	"github.com/corkedgame/corked/internal/scoring"
	gameRepo "github.com/corkedgame/corked/internal/repositories/game"
	playerRepo "github.com/corkedgame/corked/internal/repositories/player"
	submissionRepo "github.com/corkedgame/corked/internal/repositories/submission"
	wineRepo "github.com/corkedgame/corked/internal/repositories/wine"
)

// SubmitGambit records a player's gambit picks. Resubmitting before the
// game finishes replaces the earlier picks.
func (s *service) SubmitGambit(ctx context.Context, input *SubmitGambitInput) (*SubmitGambitOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.New("player ID is required")
	}

	unlock := s.lockGame(input.GameCode)
	defer unlock()

	game, err := s.getGameByCode(ctx, input.GameCode)
	if err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusGambit {
		return nil, ErrGameWrongStatus
	}

	if _, err := s.getSeatedPlayer(ctx, game.ID, input.PlayerID); err != nil {
		return nil, err
	}

	if input.CheapestWineID == "" || input.MostExpensiveWineID == "" {
		return nil, ErrInvalidGambitPick
	}
	// One bottle can't be both the cheapest and the most expensive pick
	if input.CheapestWineID == input.MostExpensiveWineID {
		return nil, ErrInvalidGambitPick
	}
	if len(input.FavoriteWineIDs) == 0 {
		return nil, ErrInvalidGambitPick
	}

	wines, err := s.wineRepo.GetWinesForGame(ctx, &wineRepo.GetWinesForGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(wines.Wines))
	for _, w := range wines.Wines {
		known[w.ID] = true
	}

	if !known[input.CheapestWineID] || !known[input.MostExpensiveWineID] {
		return nil, ErrInvalidGambitPick
	}
	for _, id := range input.FavoriteWineIDs {
		if !known[id] {
			return nil, ErrInvalidGambitPick
		}
	}

	sub := &models.GambitSubmission{
		GameID:              game.ID,
		PlayerID:            input.PlayerID,
		CheapestWineID:      input.CheapestWineID,
		MostExpensiveWineID: input.MostExpensiveWineID,
		FavoriteWineIDs:     input.FavoriteWineIDs,
		SubmittedAt:         s.clock.Now(),
	}

	err = s.submissionRepo.SaveGambitSubmission(ctx, &submissionRepo.SaveGambitSubmissionInput{
		Submission: sub,
	})
	if err != nil {
		return nil, err
	}

	return &SubmitGambitOutput{
		Submission: sub,
	}, nil
}

// FinishGame ends the gambit phase and reveals final scores. Seated
// players who never made picks get a blank gambit submission so every
// player has a record. Finishing twice is a silent success.
func (s *service) FinishGame(ctx context.Context, input *FinishGameInput) (*FinishGameOutput, error) {
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

	if game.Status == models.GameStatusFinished {
		return &FinishGameOutput{
			AlreadyFinished: true,
		}, nil
	}

	if game.Status != models.GameStatusGambit {
		return nil, ErrGameWrongStatus
	}

	players, err := s.playerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}

	existing, err := s.submissionRepo.GetGambitSubmissionsForGame(ctx, &submissionRepo.GetGambitSubmissionsForGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}

	hasGambit := make(map[string]bool, len(existing.Submissions))
	for _, sub := range existing.Submissions {
		hasGambit[sub.PlayerID] = true
	}

	now := s.clock.Now()
	backfilled := 0

	// A blank submission scores zero but keeps every player's record
	// uniform for the final reveal
	for _, p := range players.Players {
		if hasGambit[p.ID] {
			continue
		}

		err = s.submissionRepo.SaveGambitSubmission(ctx, &submissionRepo.SaveGambitSubmissionInput{
			Submission: &models.GambitSubmission{
				GameID:      game.ID,
				PlayerID:    p.ID,
				Backfilled:  true,
				SubmittedAt: now,
			},
		})
		if err != nil {
			log.Printf("Error backfilling gambit submission for player %s: %v", p.ID, err)
			continue
		}

		backfilled++
	}

	game.Status = models.GameStatusFinished
	game.UpdatedAt = now

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &FinishGameOutput{
		Backfilled: backfilled,
	}, nil
}

// GetLeaderboard returns the current standings: one entry per seated
// player, totals over completed rounds, gambit points folded in only
// once the game is finished.
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
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

	totals := make(map[string]int, len(players.Players))
	lastRoundPoints := make(map[string]int, len(players.Players))

	seated := make(map[string]bool, len(players.Players))
	for _, p := range players.Players {
		seated[p.ID] = true
	}

	// Score every completed round. A round counts once it is closed and
	// was actually played; the pre-created closed rounds ahead of the
	// current one have no submissions and contribute nothing.
	haveCompleted := false
	for _, round := range game.Rounds {
		if round.State != models.RoundStateClosed || round.ID > game.CurrentRound {
			continue
		}

		subs, err := s.submissionRepo.GetSubmissionsForRound(ctx, &submissionRepo.GetSubmissionsForRoundInput{
			GameID:  game.ID,
			RoundID: round.ID,
		})
		if err != nil {
			return nil, err
		}
		if len(subs.Submissions) == 0 {
			continue
		}

		wines, err := s.roundWines(ctx, game, round.ID)
		if err != nil {
			return nil, err
		}
		acceptable := scoring.AcceptableByPosition(rankedWines(wines))

		haveCompleted = true
		roundPoints := make(map[string]int, len(subs.Submissions))
		for _, sub := range subs.Submissions {
			if sub.Draft || !seated[sub.PlayerID] {
				continue
			}
			roundPoints[sub.PlayerID] = scoring.ScoreRanking(acceptable, sub.Ranking)
		}

		for id, pts := range roundPoints {
			totals[id] += pts
		}
		lastRoundPoints = roundPoints
	}

	// Gambit points stay hidden until the host finishes the game
	gambitRevealed := false
	gambitPoints := make(map[string]int)
	if game.Status == models.GameStatusFinished {
		gambitSubs, err := s.submissionRepo.GetGambitSubmissionsForGame(ctx, &submissionRepo.GetGambitSubmissionsForGameInput{
			GameID: game.ID,
		})
		if err != nil {
			return nil, err
		}

		if len(gambitSubs.Submissions) > 0 {
			all, err := s.wineRepo.GetWinesForGame(ctx, &wineRepo.GetWinesForGameInput{
				GameID: game.ID,
			})
			if err != nil {
				return nil, err
			}
			sets := scoring.MinMaxSets(rankedWines(all.Wines))

			gambitRevealed = true
			for _, sub := range gambitSubs.Submissions {
				if !seated[sub.PlayerID] {
					continue
				}
				score := scoring.ScoreGambit(scoring.GambitPicks{
					CheapestWineID:      sub.CheapestWineID,
					MostExpensiveWineID: sub.MostExpensiveWineID,
				}, sets)
				gambitPoints[sub.PlayerID] = score.TotalPoints
				totals[sub.PlayerID] += score.TotalPoints
			}
		}
	}

	entries := make([]*models.LeaderboardEntry, 0, len(players.Players))
	for _, p := range players.Players {
		delta := 0
		if gambitRevealed {
			delta = gambitPoints[p.ID]
		} else if haveCompleted {
			delta = lastRoundPoints[p.ID]
		}

		entries = append(entries, &models.LeaderboardEntry{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Score:      totals[p.ID],
			Delta:      delta,
		})
	}

	// Stable over join order, so tied players keep a deterministic order
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	// Tied scores share a rank: 1, 1, 3
	for i, e := range entries {
		if i > 0 && e.Score == entries[i-1].Score {
			e.Rank = entries[i-1].Rank
			continue
		}
		e.Rank = i + 1
	}

	return &GetLeaderboardOutput{
		Leaderboard: &models.Leaderboard{
			GameCode:       game.Code,
			Entries:        entries,
			GambitRevealed: gambitRevealed,
		},
	}, nil
}

// GetGambitResult returns the caller's scored gambit picks. Only
// available once the game is finished, so picks stay secret until the
// final reveal.
func (s *service) GetGambitResult(ctx context.Context, input *GetGambitResultInput) (*GetGambitResultOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.getGameByCode(ctx, input.GameCode)
	if err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusFinished {
		return nil, ErrGameWrongStatus
	}

	if _, err := s.getSeatedPlayer(ctx, game.ID, input.PlayerID); err != nil {
		return nil, err
	}

	sub, err := s.submissionRepo.GetGambitSubmission(ctx, &submissionRepo.GetGambitSubmissionInput{
		GameID:   game.ID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, submissionRepo.ErrSubmissionNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	all, err := s.wineRepo.GetWinesForGame(ctx, &wineRepo.GetWinesForGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}

	sets := scoring.MinMaxSets(rankedWines(all.Wines))
	score := scoring.ScoreGambit(scoring.GambitPicks{
		CheapestWineID:      sub.CheapestWineID,
		MostExpensiveWineID: sub.MostExpensiveWineID,
	}, sets)

	return &GetGambitResultOutput{
		Submission: sub,
		Sets:       sets,
		Score:      score,
	}, nil
}
