package checkers

import "strings"

const (
	Size           = 8
	RowsWithPieces = 3

	PieceValue = 1
	TowerValue = 3
)

// Board is indexed [row][col]; row 0 is white's home edge, row 7 black's.
// It is a value type: assigning a Board copies every cell.
type Board [Size][Size]Cell

// Starting layout, row 0 first. Pieces sit where row+col is odd.
const initialBoardString = `.w.w.w.w
w.w.w.w.
.w.w.w.w
........
........
b.b.b.b.
.b.b.b.b
b.b.b.b.`

func NewBoard() Board {
	b, err := DecodeBoard(strings.ReplaceAll(initialBoardString, "\n", "/"))
	if err != nil {
		panic("initialBoardString: " + err.Error())
	}
	return b
}

// At returns Empty for squares off the board.
func (b *Board) At(sq Square) Cell {
	if !sq.OnBoard() {
		return Empty
	}
	return b[sq.Row][sq.Col]
}

func (b *Board) Set(sq Square, c Cell) {
	b[sq.Row][sq.Col] = c
}

// Score is the material of side: one per piece, three per tower.
func (b *Board) Score(side Side) int {
	score := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if c := b[row][col]; c.Side() == side {
				score += c.Value()
			}
		}
	}
	return score
}

// Count returns how many pieces and towers side still has.
func (b *Board) Count(side Side) int {
	n := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col].Side() == side {
				n++
			}
		}
	}
	return n
}

// Play returns a copy of b with m applied; b itself is left alone.
func (b Board) Play(m Move) Board {
	Apply(&b, m)
	return b
}
