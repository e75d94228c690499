package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
)

// SearchConfig tunes a single search. The zero value searches TreeDepth plies.
type SearchConfig struct {
	MaxDepth int // plies; <= 0 means TreeDepth
}

type SearchResult struct {
	BestMove checkers.Move
	Score    int  // Cost scale: positive favours black
	Found    bool // false when the side to move had nothing to play
	Depth    int
	Nodes    int64
	TimeUsed time.Duration
}

// Search picks a move for side on b. b is not modified.
func (e *Engine) Search(b checkers.Board, side checkers.Side, cfg SearchConfig) SearchResult {
	depth := cfg.MaxDepth
	if depth <= 0 {
		depth = TreeDepth
	}

	start := time.Now()
	e.nodes = 0
	move, score, found := e.minimax(b, depth, side)

	res := SearchResult{
		BestMove: move,
		Score:    score,
		Found:    found,
		Depth:    depth,
		Nodes:    e.nodes,
		TimeUsed: time.Since(start),
	}
	log.Debug().
		Stringer("side", side).
		Str("move", move.String()).
		Bool("found", found).
		Int("score", score).
		Int("depth", depth).
		Int64("nodes", res.Nodes).
		Dur("elapsed", res.TimeUsed).
		Msg("search finished")
	return res
}

// Minimax searches depth plies from b with side to act and returns the best
// move, its value and whether a move was found at all.
func Minimax(b checkers.Board, depth int, side checkers.Side) (checkers.Move, int, bool) {
	return NewEngine().minimax(b, depth, side)
}

// Black maximises and white minimises. Only a strictly better value replaces
// the current best, so among equal values the first move generated wins.
// Every child is searched on its own copy of the board.
func (e *Engine) minimax(b checkers.Board, depth int, side checkers.Side) (checkers.Move, int, bool) {
	e.nodes++

	if depth <= 0 || checkers.Status(&b) != checkers.Ongoing {
		return checkers.Move{}, Cost(&b), false
	}

	moves := checkers.LegalMoves(&b, side)
	if len(moves) == 0 {
		return checkers.Move{}, Cost(&b), false
	}

	best := moves[0]
	_, bestScore, _ := e.minimax(b.Play(best), depth-1, side.Opposite())
	for _, mv := range moves[1:] {
		_, score, _ := e.minimax(b.Play(mv), depth-1, side.Opposite())
		if side == checkers.Black {
			// maximising
			if score > bestScore {
				best, bestScore = mv, score
			}
		} else {
			// minimising
			if score < bestScore {
				best, bestScore = mv, score
			}
		}
	}
	return best, bestScore, true
}
