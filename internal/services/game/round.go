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

// roundWines returns a round's wines in pour order
func (s *service) roundWines(ctx context.Context, game *models.Game, roundID int) ([]*models.Wine, error) {
	assignments, err := s.wineRepo.GetAssignmentsForRound(ctx, &wineRepo.GetAssignmentsForRoundInput{
		GameID:  game.ID,
		RoundID: roundID,
	})
	if err != nil {
		return nil, err
	}
	if len(assignments.Assignments) == 0 {
		return nil, ErrRoundNotConfigured
	}

	all, err := s.wineRepo.GetWinesForGame(ctx, &wineRepo.GetWinesForGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Wine, len(all.Wines))
	for _, w := range all.Wines {
		byID[w.ID] = w
	}

	wines := make([]*models.Wine, 0, len(assignments.Assignments))
	for _, a := range assignments.Assignments {
		w, ok := byID[a.WineID]
		if !ok {
			return nil, ErrRoundNotConfigured
		}
		wines = append(wines, w)
	}

	return wines, nil
}

func wineIDs(wines []*models.Wine) []string {
	ids := make([]string, 0, len(wines))
	for _, w := range wines {
		ids = append(ids, w.ID)
	}
	return ids
}

func rankedWines(wines []*models.Wine) []scoring.RankedWine {
	ranked := make([]scoring.RankedWine, 0, len(wines))
	for _, w := range wines {
		ranked = append(ranked, scoring.RankedWine{
			ID:    w.ID,
			Price: w.Price,
		})
	}
	return ranked
}

// SubmitRanking records a player's ranking for the current round.
// Resubmitting before the round closes replaces the earlier answer.
func (s *service) SubmitRanking(ctx context.Context, input *SubmitRankingInput) (*SubmitRankingOutput, error) {
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

	if game.Status != models.GameStatusInProgress {
		return nil, ErrGameWrongStatus
	}

	// Only the current round takes submissions
	if input.RoundID != game.CurrentRound {
		return nil, ErrRoundWrongState
	}

	round := game.Round(input.RoundID)
	if round == nil {
		return nil, ErrNotFound
	}
	if round.State != models.RoundStateOpen {
		return nil, ErrRoundWrongState
	}

	if _, err := s.getSeatedPlayer(ctx, game.ID, input.PlayerID); err != nil {
		return nil, err
	}

	wines, err := s.roundWines(ctx, game, input.RoundID)
	if err != nil {
		return nil, err
	}

	if !scoring.ValidRanking(wineIDs(wines), input.Ranking) {
		return nil, ErrInvalidRanking
	}

	sub := &models.RoundSubmission{
		GameID:      game.ID,
		RoundID:     input.RoundID,
		PlayerID:    input.PlayerID,
		Notes:       input.Notes,
		Ranking:     input.Ranking,
		Draft:       false,
		SubmittedAt: s.clock.Now(),
	}

	err = s.submissionRepo.SaveRoundSubmission(ctx, &submissionRepo.SaveRoundSubmissionInput{
		Submission: sub,
	})
	if err != nil {
		return nil, err
	}

	return &SubmitRankingOutput{
		Submission: sub,
	}, nil
}

// SaveDraft stores in-progress notes and ranking without counting as a
// submission. Drafts are not validated; a valid draft is promoted when
// the round closes.
func (s *service) SaveDraft(ctx context.Context, input *SaveDraftInput) (*SaveDraftOutput, error) {
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

	if game.Status != models.GameStatusInProgress {
		return nil, ErrGameWrongStatus
	}

	if input.RoundID != game.CurrentRound {
		return nil, ErrRoundWrongState
	}

	round := game.Round(input.RoundID)
	if round == nil {
		return nil, ErrNotFound
	}
	if round.State != models.RoundStateOpen {
		return nil, ErrRoundWrongState
	}

	if _, err := s.getSeatedPlayer(ctx, game.ID, input.PlayerID); err != nil {
		return nil, err
	}

	sub := &models.RoundSubmission{
		GameID:      game.ID,
		RoundID:     input.RoundID,
		PlayerID:    input.PlayerID,
		Notes:       input.Notes,
		Ranking:     input.Ranking,
		Draft:       true,
		SubmittedAt: s.clock.Now(),
	}

	err = s.submissionRepo.SaveRoundSubmission(ctx, &submissionRepo.SaveRoundSubmissionInput{
		Submission: sub,
	})
	if err != nil {
		return nil, err
	}

	return &SaveDraftOutput{
		Submission: sub,
	}, nil
}

// CloseRound closes the current round. Every seated player without a
// submission gets one backfilled: a valid draft is promoted, anyone else
// gets the round's wines in pour order. Closing an already-closed round
// is a silent success.
func (s *service) CloseRound(ctx context.Context, input *CloseRoundInput) (*CloseRoundOutput, error) {
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

	round := game.Round(input.RoundID)
	if round == nil {
		return nil, ErrNotFound
	}

	switch game.Status {
	case models.GameStatusInProgress:
	case models.GameStatusGambit, models.GameStatusFinished:
		// Every round is closed once round play is over
		return &CloseRoundOutput{
			AlreadyClosed: true,
		}, nil
	default:
		return nil, ErrGameWrongStatus
	}

	// A future round hasn't opened yet; closed-but-unplayed is not the
	// same as already closed
	if input.RoundID > game.CurrentRound {
		return nil, ErrRoundWrongState
	}

	// A past round, or a double close of the current one, is a no-op
	if input.RoundID < game.CurrentRound || round.State == models.RoundStateClosed {
		return &CloseRoundOutput{
			AlreadyClosed: true,
		}, nil
	}

	players, err := s.playerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}

	wines, err := s.roundWines(ctx, game, input.RoundID)
	if err != nil {
		return nil, err
	}
	assignedIDs := wineIDs(wines)

	existing, err := s.submissionRepo.GetSubmissionsForRound(ctx, &submissionRepo.GetSubmissionsForRoundInput{
		GameID:  game.ID,
		RoundID: input.RoundID,
	})
	if err != nil {
		return nil, err
	}

	byPlayer := make(map[string]*models.RoundSubmission, len(existing.Submissions))
	for _, sub := range existing.Submissions {
		byPlayer[sub.PlayerID] = sub
	}

	now := s.clock.Now()
	backfilled := 0

	for _, p := range players.Players {
		sub, ok := byPlayer[p.ID]
		if ok && !sub.Draft {
			continue
		}

		fill := &models.RoundSubmission{
			GameID:      game.ID,
			RoundID:     input.RoundID,
			PlayerID:    p.ID,
			SubmittedAt: now,
		}

		if ok && scoring.ValidRanking(assignedIDs, sub.Ranking) {
			// A complete draft is the player's real answer
			fill.Notes = sub.Notes
			fill.Ranking = sub.Ranking
		} else {
			if ok {
				fill.Notes = sub.Notes
			}
			fill.Ranking = assignedIDs
			fill.Backfilled = true
			backfilled++
		}

		err = s.submissionRepo.SaveRoundSubmission(ctx, &submissionRepo.SaveRoundSubmissionInput{
			Submission: fill,
		})
		if err != nil {
			// One player's backfill failing must not block the close
			log.Printf("Error backfilling round %d submission for player %s: %v", input.RoundID, p.ID, err)
			continue
		}
	}

	round.State = models.RoundStateClosed
	game.UpdatedAt = now

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &CloseRoundOutput{
		Backfilled: backfilled,
	}, nil
}

// AdvanceRound opens the next round, or moves the game into the gambit
// phase after the final round. The current round must be closed first.
func (s *service) AdvanceRound(ctx context.Context, input *AdvanceRoundInput) (*AdvanceRoundOutput, error) {
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

	// Advancing past the end is a no-op, not an error
	if game.Status == models.GameStatusGambit || game.Status == models.GameStatusFinished {
		return &AdvanceRoundOutput{
			Game:            game,
			AlreadyFinished: true,
		}, nil
	}

	if game.Status != models.GameStatusInProgress {
		return nil, ErrGameWrongStatus
	}

	round := game.Round(game.CurrentRound)
	if round == nil || round.State != models.RoundStateClosed {
		return nil, ErrRoundWrongState
	}

	if game.CurrentRound >= game.TotalRounds {
		game.Status = models.GameStatusGambit
	} else {
		game.CurrentRound++
		game.Round(game.CurrentRound).State = models.RoundStateOpen
	}
	game.UpdatedAt = s.clock.Now()

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &AdvanceRoundOutput{
		Game: game,
	}, nil
}

// RevealRound scores the caller's submission for a closed round,
// position by position, against the round's actual price order.
func (s *service) RevealRound(ctx context.Context, input *RevealRoundInput) (*RevealRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.getGameByCode(ctx, input.GameCode)
	if err != nil {
		return nil, err
	}

	round := game.Round(input.RoundID)
	if round == nil {
		return nil, ErrNotFound
	}
	if round.State != models.RoundStateClosed {
		return nil, ErrRoundWrongState
	}

	if _, err := s.getSeatedPlayer(ctx, game.ID, input.PlayerID); err != nil {
		return nil, err
	}

	sub, err := s.submissionRepo.GetRoundSubmission(ctx, &submissionRepo.GetRoundSubmissionInput{
		GameID:   game.ID,
		RoundID:  input.RoundID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		// A closed round with nothing to reveal means the round was
		// never played
		if errors.Is(err, submissionRepo.ErrSubmissionNotFound) {
			return nil, ErrRoundWrongState
		}
		return nil, err
	}

	wines, err := s.roundWines(ctx, game, input.RoundID)
	if err != nil {
		return nil, err
	}

	acceptable := scoring.AcceptableByPosition(rankedWines(wines))
	correct, total := scoring.RankingBreakdown(acceptable, sub.Ranking)

	positions := make([]RevealPosition, 0, len(correct))
	for i := range correct {
		positions = append(positions, RevealPosition{
			Position:          i + 1,
			WineID:            sub.Ranking[i],
			AcceptableWineIDs: acceptable[i],
			Correct:           correct[i],
			Tied:              len(acceptable[i]) > 1,
		})
	}

	return &RevealRoundOutput{
		Positions:   positions,
		Notes:       sub.Notes,
		TotalPoints: total,
		MaxPoints:   len(acceptable),
	}, nil
}

// GetRoundStatus returns a round's wines and submission progress
func (s *service) GetRoundStatus(ctx context.Context, input *GetRoundStatusInput) (*GetRoundStatusOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.getGameByCode(ctx, input.GameCode)
	if err != nil {
		return nil, err
	}

	round := game.Round(input.RoundID)
	if round == nil {
		return nil, ErrNotFound
	}

	wines, err := s.roundWines(ctx, game, input.RoundID)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}

	subs, err := s.submissionRepo.GetSubmissionsForRound(ctx, &submissionRepo.GetSubmissionsForRoundInput{
		GameID:  game.ID,
		RoundID: input.RoundID,
	})
	if err != nil {
		return nil, err
	}

	// Drafts are private and don't count as submitted
	submitted := make([]string, 0, len(subs.Submissions))
	for _, sub := range subs.Submissions {
		if !sub.Draft {
			submitted = append(submitted, sub.PlayerID)
		}
	}
	sort.Strings(submitted)

	return &GetRoundStatusOutput{
		Round:              round,
		Wines:              wines,
		SubmittedPlayerIDs: submitted,
		SeatedCount:        len(players.Players),
	}, nil
}
