package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/corkedgame/corked/internal/services/game"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusForError maps service error kinds to HTTP status codes. Anything
// that isn't a GameError is an infrastructure failure.
func statusForError(err error) int {
	var gameErr game.GameError
	if !errors.As(err, &gameErr) {
		return http.StatusInternalServerError
	}

	switch gameErr {
	case game.ErrNotFound:
		return http.StatusNotFound
	case game.ErrNotHost, game.ErrNotInGame:
		return http.StatusForbidden
	case game.ErrGameFull:
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		writeErrorMessage(w, status, "internal error")
		return
	}
	writeErrorMessage(w, status, err.Error())
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: msg}); err != nil {
		log.Printf("Error writing error response: %v", err)
	}
}
