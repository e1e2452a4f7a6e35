package httpapi

import (
	"time"

	"github.com/corkedgame/corked/internal/models"
	"github.com/corkedgame/corked/internal/services/game"
)

type createGameRequest struct {
	HostName        string `json:"hostName"`
	MaxPlayers      int    `json:"maxPlayers"`
	BottleCount     int    `json:"bottleCount"`
	BottlesPerRound int    `json:"bottlesPerRound"`
}

type joinGameRequest struct {
	PlayerName string `json:"playerName"`
	PlayerID   string `json:"playerId,omitempty"`
}

// hostRequest covers the host-only operations that need nothing but the
// caller's identity
type hostRequest struct {
	HostID string `json:"hostId"`
}

type updateWineRequest struct {
	HostID     string   `json:"hostId"`
	Label      *string  `json:"label,omitempty"`
	Nickname   *string  `json:"nickname,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	ClearPrice bool     `json:"clearPrice,omitempty"`
}

type submitRankingRequest struct {
	PlayerID string   `json:"playerId"`
	Notes    string   `json:"notes"`
	Ranking  []string `json:"ranking"`
}

type submitGambitRequest struct {
	PlayerID            string   `json:"playerId"`
	CheapestWineID      string   `json:"cheapestWineId"`
	MostExpensiveWineID string   `json:"mostExpensiveWineId"`
	FavoriteWineIDs     []string `json:"favoriteWineIds"`
}

type roundView struct {
	ID    int    `json:"id"`
	State string `json:"state"`
}

type gameView struct {
	ID           string      `json:"id"`
	Code         string      `json:"code"`
	HostID       string      `json:"hostId"`
	Status       string      `json:"status"`
	CurrentRound int         `json:"currentRound"`
	TotalRounds  int         `json:"totalRounds"`
	MaxPlayers   int         `json:"maxPlayers"`
	Rounds       []roundView `json:"rounds"`
}

type playerView struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joinedAt"`
}

// wineView is the player-facing shape: the price stays hidden until the
// game is finished, this being a blind tasting
type wineView struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Nickname string   `json:"nickname,omitempty"`
	Position int      `json:"position"`
	Priced   bool     `json:"priced"`
	Price    *float64 `json:"price,omitempty"`
}

func newGameView(g *models.Game) gameView {
	rounds := make([]roundView, 0, len(g.Rounds))
	for _, r := range g.Rounds {
		rounds = append(rounds, roundView{
			ID:    r.ID,
			State: string(r.State),
		})
	}

	return gameView{
		ID:           g.ID,
		Code:         g.Code,
		HostID:       g.HostID,
		Status:       string(g.Status),
		CurrentRound: g.CurrentRound,
		TotalRounds:  g.TotalRounds,
		MaxPlayers:   g.MaxPlayers,
		Rounds:       rounds,
	}
}

func newPlayerView(p *models.Player) playerView {
	return playerView{
		ID:       p.ID,
		Name:     p.Name,
		JoinedAt: p.JoinedAt,
	}
}

func newWineView(w *models.Wine, revealPrice bool) wineView {
	view := wineView{
		ID:       w.ID,
		Label:    w.Label,
		Nickname: w.Nickname,
		Position: w.Position,
		Priced:   w.Priced(),
	}
	if revealPrice {
		view.Price = w.Price
	}
	return view
}

func newHostWineView(w *models.Wine) wineView {
	return newWineView(w, true)
}

type createGameResponse struct {
	Game   gameView   `json:"game"`
	Player playerView `json:"player"`
}

type joinGameResponse struct {
	Game   gameView   `json:"game"`
	Player playerView `json:"player"`
}

type gameResponse struct {
	Game gameView `json:"game"`
}

type gameDetailResponse struct {
	Game    gameView     `json:"game"`
	Players []playerView `json:"players"`
	Wines   []wineView   `json:"wines"`
}

func newGameDetailResponse(output *game.GetGameOutput) gameDetailResponse {
	players := make([]playerView, 0, len(output.Players))
	for _, p := range output.Players {
		players = append(players, newPlayerView(p))
	}

	revealPrice := output.Game.Status == models.GameStatusFinished
	wines := make([]wineView, 0, len(output.Wines))
	for _, w := range output.Wines {
		wines = append(wines, newWineView(w, revealPrice))
	}

	return gameDetailResponse{
		Game:    newGameView(output.Game),
		Players: players,
		Wines:   wines,
	}
}

type updateWineResponse struct {
	Wine wineView `json:"wine"`
}

type submissionResponse struct {
	RoundID     int       `json:"roundId"`
	PlayerID    string    `json:"playerId"`
	Draft       bool      `json:"draft"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type closeRoundResponse struct {
	AlreadyClosed bool `json:"alreadyClosed"`
	Backfilled    int  `json:"backfilled"`
}

type advanceRoundResponse struct {
	Game            gameView `json:"game"`
	AlreadyFinished bool     `json:"alreadyFinished"`
}

type finishGameResponse struct {
	AlreadyFinished bool `json:"alreadyFinished"`
	Backfilled      int  `json:"backfilled"`
}

type roundStatusResponse struct {
	Round              roundView  `json:"round"`
	Wines              []wineView `json:"wines"`
	SubmittedPlayerIDs []string   `json:"submittedPlayerIds"`
	SubmittedCount     int        `json:"submittedCount"`
	SeatedCount        int        `json:"seatedCount"`
}

func newRoundStatusResponse(output *game.GetRoundStatusOutput) roundStatusResponse {
	wines := make([]wineView, 0, len(output.Wines))
	for _, w := range output.Wines {
		wines = append(wines, newWineView(w, false))
	}

	return roundStatusResponse{
		Round: roundView{
			ID:    output.Round.ID,
			State: string(output.Round.State),
		},
		Wines:              wines,
		SubmittedPlayerIDs: output.SubmittedPlayerIDs,
		SubmittedCount:     len(output.SubmittedPlayerIDs),
		SeatedCount:        output.SeatedCount,
	}
}

type revealPositionView struct {
	Position          int      `json:"position"`
	WineID            string   `json:"wineId"`
	AcceptableWineIDs []string `json:"acceptableWineIds"`
	Correct           bool     `json:"correct"`
	Tied              bool     `json:"tied"`
}

type revealResponse struct {
	Positions   []revealPositionView `json:"positions"`
	Notes       string               `json:"notes"`
	TotalPoints int                  `json:"totalPoints"`
	MaxPoints   int                  `json:"maxPoints"`
}

func newRevealResponse(output *game.RevealRoundOutput) revealResponse {
	positions := make([]revealPositionView, 0, len(output.Positions))
	for _, p := range output.Positions {
		positions = append(positions, revealPositionView{
			Position:          p.Position,
			WineID:            p.WineID,
			AcceptableWineIDs: p.AcceptableWineIDs,
			Correct:           p.Correct,
			Tied:              p.Tied,
		})
	}

	return revealResponse{
		Positions:   positions,
		Notes:       output.Notes,
		TotalPoints: output.TotalPoints,
		MaxPoints:   output.MaxPoints,
	}
}

type gambitSubmissionResponse struct {
	PlayerID    string    `json:"playerId"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type gambitResultResponse struct {
	CheapestWineID      string   `json:"cheapestWineId"`
	MostExpensiveWineID string   `json:"mostExpensiveWineId"`
	FavoriteWineIDs     []string `json:"favoriteWineIds"`
	Backfilled          bool     `json:"backfilled"`
	CheapestIDs         []string `json:"cheapestIds"`
	MostExpensiveIDs    []string `json:"mostExpensiveIds"`
	CheapestPoints      int      `json:"cheapestPoints"`
	MostExpensivePoints int      `json:"mostExpensivePoints"`
	TotalPoints         int      `json:"totalPoints"`
	MaxPoints           int      `json:"maxPoints"`
}

func newGambitResultResponse(output *game.GetGambitResultOutput) gambitResultResponse {
	return gambitResultResponse{
		CheapestWineID:      output.Submission.CheapestWineID,
		MostExpensiveWineID: output.Submission.MostExpensiveWineID,
		FavoriteWineIDs:     output.Submission.FavoriteWineIDs,
		Backfilled:          output.Submission.Backfilled,
		CheapestIDs:         output.Sets.CheapestIDs,
		MostExpensiveIDs:    output.Sets.MostExpensiveIDs,
		CheapestPoints:      output.Score.CheapestPoints,
		MostExpensivePoints: output.Score.MostExpensivePoints,
		TotalPoints:         output.Score.TotalPoints,
		MaxPoints:           output.Score.MaxPoints,
	}
}

type leaderboardEntryView struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
	Delta      int    `json:"delta"`
	Rank       int    `json:"rank"`
}

type leaderboardResponse struct {
	GameCode       string                 `json:"gameCode"`
	Entries        []leaderboardEntryView `json:"entries"`
	GambitRevealed bool                   `json:"gambitRevealed"`
}

func newLeaderboardResponse(lb *models.Leaderboard) leaderboardResponse {
	entries := make([]leaderboardEntryView, 0, len(lb.Entries))
	for _, e := range lb.Entries {
		entries = append(entries, leaderboardEntryView{
			PlayerID:   e.PlayerID,
			PlayerName: e.PlayerName,
			Score:      e.Score,
			Delta:      e.Delta,
			Rank:       e.Rank,
		})
	}

	return leaderboardResponse{
		GameCode:       lb.GameCode,
		Entries:        entries,
		GambitRevealed: lb.GambitRevealed,
	}
}
