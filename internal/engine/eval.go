package engine

import (
	"math"

	"checkers/internal/checkers"
)

// Sentinel costs for a side with no material left. They double as the
// search's infinities.
const (
	MinCost = math.MinInt32
	MaxCost = math.MaxInt32
)

// Cost is the material balance from black's point of view:
// black score minus white score, saturated when either side is wiped out.
func Cost(b *checkers.Board) int {
	black := b.Score(checkers.Black)
	white := b.Score(checkers.White)
	if black == 0 {
		return MinCost
	}
	if white == 0 {
		return MaxCost
	}
	return black - white
}
