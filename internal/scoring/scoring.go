package scoring

import (
	"math"
	"sort"
)

// RankedWine is the scoring engine's view of a wine: an id and a price.
// A nil price means unpriced and always ranks last.
type RankedWine struct {
	ID    string
	Price *float64
}

// GambitSets holds the tie-aware answer sets for the gambit side bet
type GambitSets struct {
	// HasPrices is false when no wine in the list is priced, in which
	// case both sets are empty and every pick scores zero
	HasPrices bool

	// CheapestIDs are the ids tied at the lowest price
	CheapestIDs []string

	// MostExpensiveIDs are the ids tied at the highest price
	MostExpensiveIDs []string
}

// GambitPicks is a player's gambit answer
type GambitPicks struct {
	CheapestWineID      string
	MostExpensiveWineID string
}

// GambitScore is the result of scoring a set of gambit picks
type GambitScore struct {
	CheapestPoints      int
	MostExpensivePoints int
	TotalPoints         int
	MaxPoints           int
}

// GambitMaxPoints is the fixed ceiling for gambit scoring: 1 for the
// cheapest pick plus 2 for the most expensive pick.
const GambitMaxPoints = 3

// unpricedCents sorts unpriced wines below every real price
const unpricedCents = math.MinInt64

// cents normalizes a price to integer cents so equal prices compare
// equal regardless of floating point representation
func cents(price *float64) int64 {
	if price == nil {
		return unpricedCents
	}
	return int64(math.Round(*price * 100))
}

// AcceptableByPosition computes, for each position in the descending
// price order, the set of wine ids that may correctly occupy it. Wines
// sharing a price form a run, and every position in the run accepts
// every id in the run. Unpriced wines group together at the end. The
// result has one entry per wine with a non-empty id.
func AcceptableByPosition(wines []RankedWine) [][]string {
	sorted := make([]RankedWine, 0, len(wines))
	for _, w := range wines {
		if w.ID == "" {
			continue
		}
		sorted = append(sorted, w)
	}

	// Descending by price, id as a cosmetic tiebreak only
	sort.Slice(sorted, func(i, j int) bool {
		ci, cj := cents(sorted[i].Price), cents(sorted[j].Price)
		if ci != cj {
			return ci > cj
		}
		return sorted[i].ID < sorted[j].ID
	})

	acceptable := make([][]string, len(sorted))
	for start := 0; start < len(sorted); {
		end := start
		for end < len(sorted) && cents(sorted[end].Price) == cents(sorted[start].Price) {
			end++
		}

		run := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			run = append(run, sorted[i].ID)
		}

		// Every position in the run shares the run's id set
		for i := start; i < end; i++ {
			acceptable[i] = run
		}

		start = end
	}

	return acceptable
}

// ScoreRanking scores a submitted ranking against per-position
// acceptable sets. One point per position whose id is acceptable there,
// walking left to right; an id only ever earns credit once.
func ScoreRanking(acceptable [][]string, submitted []string) int {
	_, total := RankingBreakdown(acceptable, submitted)
	return total
}

// RankingBreakdown scores a submitted ranking and reports which
// positions earned the point. The slice is as long as the shorter of
// the two inputs.
func RankingBreakdown(acceptable [][]string, submitted []string) ([]bool, int) {
	n := len(acceptable)
	if len(submitted) < n {
		n = len(submitted)
	}

	correct := make([]bool, n)
	used := make(map[string]bool, n)
	total := 0

	for i := 0; i < n; i++ {
		id := submitted[i]
		if id == "" || used[id] {
			continue
		}
		if containsID(acceptable[i], id) {
			correct[i] = true
			used[id] = true
			total++
		}
	}

	return correct, total
}

// MinMaxSets computes the tie-aware cheapest and most expensive id sets
// across a wine list. Unpriced wines are ignored; with no priced wines
// both sets are empty and HasPrices is false.
func MinMaxSets(wines []RankedWine) GambitSets {
	sets := GambitSets{
		CheapestIDs:      []string{},
		MostExpensiveIDs: []string{},
	}

	var minCents, maxCents int64
	for _, w := range wines {
		if w.ID == "" || w.Price == nil {
			continue
		}
		c := cents(w.Price)
		if !sets.HasPrices {
			sets.HasPrices = true
			minCents, maxCents = c, c
		}
		if c < minCents {
			minCents = c
		}
		if c > maxCents {
			maxCents = c
		}
	}

	if !sets.HasPrices {
		return sets
	}

	for _, w := range wines {
		if w.ID == "" || w.Price == nil {
			continue
		}
		switch cents(w.Price) {
		case minCents:
			sets.CheapestIDs = append(sets.CheapestIDs, w.ID)
		case maxCents:
			sets.MostExpensiveIDs = append(sets.MostExpensiveIDs, w.ID)
		}
	}

	// A single shared price puts every wine in both sets
	if minCents == maxCents {
		sets.MostExpensiveIDs = append([]string{}, sets.CheapestIDs...)
	}

	sort.Strings(sets.CheapestIDs)
	sort.Strings(sets.MostExpensiveIDs)

	return sets
}

// ScoreGambit scores a player's gambit picks against the answer sets.
// The cheapest pick is worth 1 point, the most expensive pick 2.
func ScoreGambit(picks GambitPicks, sets GambitSets) GambitScore {
	score := GambitScore{MaxPoints: GambitMaxPoints}

	if containsID(sets.CheapestIDs, picks.CheapestWineID) && picks.CheapestWineID != "" {
		score.CheapestPoints = 1
	}
	if containsID(sets.MostExpensiveIDs, picks.MostExpensiveWineID) && picks.MostExpensiveWineID != "" {
		score.MostExpensivePoints = 2
	}
	score.TotalPoints = score.CheapestPoints + score.MostExpensivePoints

	return score
}

// ValidRanking reports whether submitted is an exact permutation of the
// assigned wine ids: same length, same ids, no duplicates.
func ValidRanking(assigned, submitted []string) bool {
	if len(assigned) != len(submitted) {
		return false
	}

	remaining := make(map[string]int, len(assigned))
	for _, id := range assigned {
		remaining[id]++
	}
	for _, id := range submitted {
		if remaining[id] == 0 {
			return false
		}
		remaining[id]--
	}

	return true
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
