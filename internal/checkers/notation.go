package checkers

import "fmt"

// ParseMove reads "<col><row>-<col><row>", e.g. "A3-B4". Letters and digits
// outside A-H / 1-8 still parse; they land off the board and Validate
// reports them.
func ParseMove(tok string) (Move, error) {
	if len(tok) != 5 || tok[2] != '-' {
		return Move{}, fmt.Errorf("%w: %q", ErrBadNotation, tok)
	}
	return Move{
		From: parseSquare(tok[0], tok[1]),
		To:   parseSquare(tok[3], tok[4]),
	}, nil
}

func parseSquare(letter, digit byte) Square {
	return Square{Row: int(digit) - '1', Col: int(letter) - 'A'}
}
