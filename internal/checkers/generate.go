package checkers

// Candidate offsets {dRow, dCol} tried from every source cell, in this order.
// Search keeps the first of equally scored moves, so the order is part of
// the engine's observable behaviour.
var moveDirs = [8][2]int{
	{-1, +1}, {-2, +2},
	{+1, +1}, {+2, +2},
	{+1, -1}, {+2, -2},
	{-1, -1}, {-2, -2},
}

// LegalMoves lists every move side may make on b: sources row-major, then
// moveDirs order per source. The slice is fresh on every call.
func LegalMoves(b *Board, side Side) []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col].Side() != side {
				continue
			}
			genCellMoves(b, Square{Row: row, Col: col}, side, &moves)
		}
	}
	return moves
}

func genCellMoves(b *Board, from Square, side Side, moves *[]Move) {
	for _, d := range moveDirs {
		m := Move{From: from, To: Square{Row: from.Row + d[0], Col: from.Col + d[1]}}
		if Validate(b, m, side) == nil {
			*moves = append(*moves, m)
		}
	}
}

// HasLegalMove reports whether side can move at all; it stops at the first hit.
func HasLegalMove(b *Board, side Side) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col].Side() != side {
				continue
			}
			var moves []Move
			genCellMoves(b, Square{Row: row, Col: col}, side, &moves)
			if len(moves) > 0 {
				return true
			}
		}
	}
	return false
}
