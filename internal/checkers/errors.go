package checkers

import "errors"

// Validation failures, in the order Validate checks them.
var (
	ErrSourceOutside  = errors.New("source cell is outside of the board")
	ErrTargetOutside  = errors.New("target cell is outside of the board")
	ErrSourceEmpty    = errors.New("source cell is empty")
	ErrTargetOccupied = errors.New("target cell is not empty")
	ErrWrongOwner     = errors.New("source cell holds opponent's piece/tower")
	ErrIllegalAction  = errors.New("illegal action")
)

var (
	ErrBadNotation   = errors.New("bad move notation")
	ErrInvalidLayout = errors.New("invalid board layout")
)
