package game

import (
	"time"

	"checkers/internal/checkers"
)

type GameState struct {
	ID        string
	Board     checkers.Board
	Action    int // number of the next action, starting at 1
	Status    checkers.GameStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SideToMove is derived from the action number: black plays odd actions.
func (g *GameState) SideToMove() checkers.Side {
	return checkers.SideForAction(g.Action)
}
