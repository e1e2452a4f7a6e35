package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/corkedgame/corked/internal/services/game"
	"github.com/gorilla/mux"
)

const apiPrefix = "/api/v1"

// Handler is the HTTP boundary over the game service
type Handler struct {
	gameService game.Service
}

// Config holds the configuration for the HTTP handler
type Config struct {
	// Game service
	GameService game.Service
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	return &Handler{
		gameService: cfg.GameService,
	}, nil
}

// Router builds the route table
func (h *Handler) Router() *mux.Router {
	router := mux.NewRouter().PathPrefix(apiPrefix).Subrouter()

	router.HandleFunc("/games", h.CreateGame).Methods(http.MethodPost)
	router.HandleFunc("/games/{code}", h.GetGame).Methods(http.MethodGet)
	router.HandleFunc("/games/{code}/join", h.JoinGame).Methods(http.MethodPost)
	router.HandleFunc("/games/{code}/start", h.StartGame).Methods(http.MethodPost)
	router.HandleFunc("/games/{code}/advance", h.AdvanceRound).Methods(http.MethodPost)
	router.HandleFunc("/games/{code}/finish", h.FinishGame).Methods(http.MethodPost)
	router.HandleFunc("/games/{code}/wines/{wineID}", h.UpdateWine).Methods(http.MethodPatch)
	router.HandleFunc("/games/{code}/players/{playerID}", h.BootPlayer).Methods(http.MethodDelete)
	router.HandleFunc("/games/{code}/rounds/{round:[0-9]+}", h.GetRoundStatus).Methods(http.MethodGet)
	router.HandleFunc("/games/{code}/rounds/{round:[0-9]+}/submit", h.SubmitRanking).Methods(http.MethodPost)
	router.HandleFunc("/games/{code}/rounds/{round:[0-9]+}/draft", h.SaveDraft).Methods(http.MethodPost)
	router.HandleFunc("/games/{code}/rounds/{round:[0-9]+}/close", h.CloseRound).Methods(http.MethodPost)
	router.HandleFunc("/games/{code}/rounds/{round:[0-9]+}/reveal", h.RevealRound).Methods(http.MethodGet)
	router.HandleFunc("/games/{code}/gambit", h.SubmitGambit).Methods(http.MethodPost)
	router.HandleFunc("/games/{code}/gambit/result", h.GetGambitResult).Methods(http.MethodGet)
	router.HandleFunc("/games/{code}/leaderboard", h.GetLeaderboard).Methods(http.MethodGet)

	return router
}

func pathCode(r *http.Request) string {
	return mux.Vars(r)["code"]
}

func pathRound(r *http.Request) int {
	// The route pattern guarantees digits
	round, _ := strconv.Atoi(mux.Vars(r)["round"])
	return round
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if !h.decode(w, r, &req) {
		return
	}

	output, err := h.gameService.CreateGame(r.Context(), &game.CreateGameInput{
		HostName:        req.HostName,
		MaxPlayers:      req.MaxPlayers,
		BottleCount:     req.BottleCount,
		BottlesPerRound: req.BottlesPerRound,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createGameResponse{
		Game:   newGameView(output.Game),
		Player: newPlayerView(output.Host),
	})
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	output, err := h.gameService.GetGame(r.Context(), &game.GetGameInput{
		GameCode: pathCode(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newGameDetailResponse(output))
}

func (h *Handler) JoinGame(w http.ResponseWriter, r *http.Request) {
	var req joinGameRequest
	if !h.decode(w, r, &req) {
		return
	}

	output, err := h.gameService.JoinGame(r.Context(), &game.JoinGameInput{
		GameCode:   pathCode(r),
		PlayerName: req.PlayerName,
		PlayerID:   req.PlayerID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, joinGameResponse{
		Game:   newGameView(output.Game),
		Player: newPlayerView(output.Player),
	})
}

func (h *Handler) StartGame(w http.ResponseWriter, r *http.Request) {
	var req hostRequest
	if !h.decode(w, r, &req) {
		return
	}

	output, err := h.gameService.StartGame(r.Context(), &game.StartGameInput{
		GameCode: pathCode(r),
		HostID:   req.HostID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gameResponse{
		Game: newGameView(output.Game),
	})
}

func (h *Handler) UpdateWine(w http.ResponseWriter, r *http.Request) {
	var req updateWineRequest
	if !h.decode(w, r, &req) {
		return
	}

	output, err := h.gameService.UpdateWine(r.Context(), &game.UpdateWineInput{
		GameCode:   pathCode(r),
		HostID:     req.HostID,
		WineID:     mux.Vars(r)["wineID"],
		Label:      req.Label,
		Nickname:   req.Nickname,
		Price:      req.Price,
		ClearPrice: req.ClearPrice,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	// The host edits prices, so this view shows them
	writeJSON(w, http.StatusOK, updateWineResponse{
		Wine: newHostWineView(output.Wine),
	})
}

func (h *Handler) BootPlayer(w http.ResponseWriter, r *http.Request) {
	var req hostRequest
	if !h.decode(w, r, &req) {
		return
	}

	_, err := h.gameService.BootPlayer(r.Context(), &game.BootPlayerInput{
		GameCode: pathCode(r),
		HostID:   req.HostID,
		PlayerID: mux.Vars(r)["playerID"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetRoundStatus(w http.ResponseWriter, r *http.Request) {
	output, err := h.gameService.GetRoundStatus(r.Context(), &game.GetRoundStatusInput{
		GameCode: pathCode(r),
		RoundID:  pathRound(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newRoundStatusResponse(output))
}

func (h *Handler) SubmitRanking(w http.ResponseWriter, r *http.Request) {
	var req submitRankingRequest
	if !h.decode(w, r, &req) {
		return
	}

	output, err := h.gameService.SubmitRanking(r.Context(), &game.SubmitRankingInput{
		GameCode: pathCode(r),
		RoundID:  pathRound(r),
		PlayerID: req.PlayerID,
		Notes:    req.Notes,
		Ranking:  req.Ranking,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, submissionResponse{
		RoundID:     output.Submission.RoundID,
		PlayerID:    output.Submission.PlayerID,
		Draft:       output.Submission.Draft,
		SubmittedAt: output.Submission.SubmittedAt,
	})
}

func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var req submitRankingRequest
	if !h.decode(w, r, &req) {
		return
	}

	output, err := h.gameService.SaveDraft(r.Context(), &game.SaveDraftInput{
		GameCode: pathCode(r),
		RoundID:  pathRound(r),
		PlayerID: req.PlayerID,
		Notes:    req.Notes,
		Ranking:  req.Ranking,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, submissionResponse{
		RoundID:     output.Submission.RoundID,
		PlayerID:    output.Submission.PlayerID,
		Draft:       output.Submission.Draft,
		SubmittedAt: output.Submission.SubmittedAt,
	})
}

func (h *Handler) CloseRound(w http.ResponseWriter, r *http.Request) {
	var req hostRequest
	if !h.decode(w, r, &req) {
		return
	}

	output, err := h.gameService.CloseRound(r.Context(), &game.CloseRoundInput{
		GameCode: pathCode(r),
		RoundID:  pathRound(r),
		HostID:   req.HostID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, closeRoundResponse{
		AlreadyClosed: output.AlreadyClosed,
		Backfilled:    output.Backfilled,
	})
}

func (h *Handler) AdvanceRound(w http.ResponseWriter, r *http.Request) {
	var req hostRequest
	if !h.decode(w, r, &req) {
		return
	}

	output, err := h.gameService.AdvanceRound(r.Context(), &game.AdvanceRoundInput{
		GameCode: pathCode(r),
		HostID:   req.HostID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, advanceRoundResponse{
		Game:            newGameView(output.Game),
		AlreadyFinished: output.AlreadyFinished,
	})
}

func (h *Handler) RevealRound(w http.ResponseWriter, r *http.Request) {
	output, err := h.gameService.RevealRound(r.Context(), &game.RevealRoundInput{
		GameCode: pathCode(r),
		RoundID:  pathRound(r),
		PlayerID: r.URL.Query().Get("playerId"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newRevealResponse(output))
}

func (h *Handler) SubmitGambit(w http.ResponseWriter, r *http.Request) {
	var req submitGambitRequest
	if !h.decode(w, r, &req) {
		return
	}

	output, err := h.gameService.SubmitGambit(r.Context(), &game.SubmitGambitInput{
		GameCode:            pathCode(r),
		PlayerID:            req.PlayerID,
		CheapestWineID:      req.CheapestWineID,
		MostExpensiveWineID: req.MostExpensiveWineID,
		FavoriteWineIDs:     req.FavoriteWineIDs,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gambitSubmissionResponse{
		PlayerID:    output.Submission.PlayerID,
		SubmittedAt: output.Submission.SubmittedAt,
	})
}

func (h *Handler) FinishGame(w http.ResponseWriter, r *http.Request) {
	var req hostRequest
	if !h.decode(w, r, &req) {
		return
	}

	output, err := h.gameService.FinishGame(r.Context(), &game.FinishGameInput{
		GameCode: pathCode(r),
		HostID:   req.HostID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, finishGameResponse{
		AlreadyFinished: output.AlreadyFinished,
		Backfilled:      output.Backfilled,
	})
}

func (h *Handler) GetGambitResult(w http.ResponseWriter, r *http.Request) {
	output, err := h.gameService.GetGambitResult(r.Context(), &game.GetGambitResultInput{
		GameCode: pathCode(r),
		PlayerID: r.URL.Query().Get("playerId"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newGambitResultResponse(output))
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	output, err := h.gameService.GetLeaderboard(r.Context(), &game.GetLeaderboardInput{
		GameCode: pathCode(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newLeaderboardResponse(output.Leaderboard))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
