package checkers

// Apply plays m on b in place. m must already have passed Validate; nothing
// is re-checked here.
func Apply(b *Board, m Move) {
	pc := b.At(m.From)

	// crowned on landing at the far edge
	if pc == BlackPiece && m.To.Row == 0 {
		pc = pc.Crowned()
	} else if pc == WhitePiece && m.To.Row == Size-1 {
		pc = pc.Crowned()
	}

	if m.IsJump() {
		b.Set(m.Midpoint(), Empty)
	}
	b.Set(m.To, pc)
	b.Set(m.From, Empty)
}
