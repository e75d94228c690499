package checkers

type Side int8

const (
	NoSide Side = -1
	Black  Side = 0
	White  Side = 1
)

func (s Side) Opposite() Side {
	switch s {
	case Black:
		return White
	case White:
		return Black
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Black:
		return "BLACK"
	case White:
		return "WHITE"
	}
	return "NONE"
}

// SideForAction maps a 1-based action number to the side that plays it:
// odd actions belong to black, even ones to white.
func SideForAction(action int) Side {
	if action%2 != 0 {
		return Black
	}
	return White
}

type Cell int8 // 0=empty; plain pieces and towers per side

const (
	Empty Cell = iota
	WhitePiece
	WhiteTower
	BlackPiece
	BlackTower
)

func (c Cell) IsEmpty() bool { return c == Empty }

func (c Cell) IsTower() bool { return c == WhiteTower || c == BlackTower }

func (c Cell) Side() Side {
	switch c {
	case WhitePiece, WhiteTower:
		return White
	case BlackPiece, BlackTower:
		return Black
	}
	return NoSide
}

// Value is the material worth of the cell.
func (c Cell) Value() int {
	switch c {
	case WhitePiece, BlackPiece:
		return PieceValue
	case WhiteTower, BlackTower:
		return TowerValue
	}
	return 0
}

// Crowned returns the tower of the same side. Towers and empty cells are returned unchanged.
func (c Cell) Crowned() Cell {
	switch c {
	case WhitePiece:
		return WhiteTower
	case BlackPiece:
		return BlackTower
	}
	return c
}

var cellChars = [...]byte{
	Empty:      '.',
	WhitePiece: 'w',
	WhiteTower: 'W',
	BlackPiece: 'b',
	BlackTower: 'B',
}

func (c Cell) Char() byte {
	if c < 0 || int(c) >= len(cellChars) {
		return '?'
	}
	return cellChars[c]
}

func cellFromChar(ch byte) (Cell, bool) {
	for c, v := range cellChars {
		if v == ch {
			return Cell(c), true
		}
	}
	return Empty, false
}

type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

// String renders the square in move notation, e.g. "A3".
func (s Square) String() string {
	return string([]byte{byte('A' + s.Col), byte('1' + s.Row)})
}

type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

func (m Move) IsStep() bool {
	return abs(m.From.Row-m.To.Row) == 1 && abs(m.From.Col-m.To.Col) == 1
}

func (m Move) IsJump() bool {
	return abs(m.From.Row-m.To.Row) == 2 && abs(m.From.Col-m.To.Col) == 2
}

// Midpoint is the cell jumped over; only meaningful for jumps.
func (m Move) Midpoint() Square {
	return Square{Row: (m.From.Row + m.To.Row) / 2, Col: (m.From.Col + m.To.Col) / 2}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
