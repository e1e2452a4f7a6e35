package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotFound           GameError = "game or round not found"
	ErrNotHost            GameError = "caller is not the host"
	ErrNotInGame          GameError = "player is not seated in this game"
	ErrGameWrongStatus    GameError = "operation is not valid in the game's current status"
	ErrRoundWrongState    GameError = "operation is not valid for this round"
	ErrRoundNotConfigured GameError = "round has no wines assigned"
	ErrInvalidRanking     GameError = "ranking is not a permutation of the round's wines"
	ErrInvalidGambitPick  GameError = "gambit picks are invalid"
	ErrWineListIncomplete GameError = "wine list has missing or unpriced wines"
	ErrGameFull           GameError = "game is at maximum capacity"
	ErrCannotBootHost     GameError = "the host cannot be booted"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilGameRepo        GameError = "game repository cannot be nil"
	ErrNilPlayerRepo      GameError = "player repository cannot be nil"
	ErrNilWineRepo        GameError = "wine repository cannot be nil"
	ErrNilSubmissionRepo  GameError = "submission repository cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
	ErrNilCodeGenerator   GameError = "code generator cannot be nil"
)
