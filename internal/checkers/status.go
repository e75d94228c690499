package checkers

type GameStatus int8

const (
	Ongoing GameStatus = iota
	BlackWins
	WhiteWins
)

func (s GameStatus) String() string {
	switch s {
	case BlackWins:
		return "black_wins"
	case WhiteWins:
		return "white_wins"
	}
	return "ongoing"
}

func (s GameStatus) Winner() Side {
	switch s {
	case BlackWins:
		return Black
	case WhiteWins:
		return White
	}
	return NoSide
}

// Status decides whether the game is over. A side that has no pieces or no
// legal move has lost; white is examined first.
func Status(b *Board) GameStatus {
	if b.Count(White) == 0 || !HasLegalMove(b, White) {
		return BlackWins
	}
	if b.Count(Black) == 0 || !HasLegalMove(b, Black) {
		return WhiteWins
	}
	return Ongoing
}
