package models

// Wine represents one bottle in a tasting
type Wine struct {
	// ID is the unique identifier for the wine
	ID string

	// GameID is the game the wine belongs to
	GameID string

	// Label is the display label for the wine
	Label string

	// Nickname is an optional player-facing nickname
	Nickname string

	// Position is the 1-based slot of the wine in the tasting order
	Position int

	// Price is the bottle price. A nil price means unpriced, which
	// excludes the wine from scoring
	Price *float64
}

// Priced reports whether the wine has a price set
func (w *Wine) Priced() bool {
	return w.Price != nil
}
