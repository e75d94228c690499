package checkers

import (
	"fmt"
	"strings"
)

// Encode writes the board as eight '/'-separated rows, row 0 first,
// one character per cell ('.', 'w', 'W', 'b', 'B').
func (b *Board) Encode() string {
	var sb strings.Builder
	sb.Grow(Size*Size + Size - 1)
	for row := 0; row < Size; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := 0; col < Size; col++ {
			sb.WriteByte(b[row][col].Char())
		}
	}
	return sb.String()
}

// DecodeBoard parses the format written by Encode. Newlines are accepted as
// row separators too, and surrounding whitespace is ignored.
func DecodeBoard(s string) (Board, error) {
	var b Board
	s = strings.ReplaceAll(strings.TrimSpace(s), "\n", "/")
	rows := strings.Split(s, "/")
	if len(rows) != Size {
		return b, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidLayout, Size, len(rows))
	}
	for row, line := range rows {
		line = strings.TrimSpace(line)
		if len(line) != Size {
			return b, fmt.Errorf("%w: row %d has %d cells", ErrInvalidLayout, row+1, len(line))
		}
		for col := 0; col < Size; col++ {
			c, ok := cellFromChar(line[col])
			if !ok {
				return b, fmt.Errorf("%w: unknown cell %q at row %d", ErrInvalidLayout, line[col], row+1)
			}
			b[row][col] = c
		}
	}
	return b, nil
}
