package checkers

// Validate checks m for side on b. Only the first failing check is reported.
// Order: source bounds, target bounds, empty source, occupied target,
// ownership, then shape and direction.
func Validate(b *Board, m Move, side Side) error {
	if !m.From.OnBoard() {
		return ErrSourceOutside
	}
	if !m.To.OnBoard() {
		return ErrTargetOutside
	}
	src := b.At(m.From)
	if src.IsEmpty() {
		return ErrSourceEmpty
	}
	if !b.At(m.To).IsEmpty() {
		return ErrTargetOccupied
	}
	if src.Side() != side {
		return ErrWrongOwner
	}
	if !legalShape(b, m, src) {
		return ErrIllegalAction
	}
	return nil
}

func legalShape(b *Board, m Move, src Cell) bool {
	// plain pieces only advance: black toward row 0, white toward row 7
	dRow := m.To.Row - m.From.Row
	if src == WhitePiece && dRow < 0 {
		return false
	}
	if src == BlackPiece && dRow > 0 {
		return false
	}

	switch {
	case m.IsStep():
		return true
	case m.IsJump():
		captured := b.At(m.Midpoint())
		return captured.Side() == src.Side().Opposite()
	}
	return false
}
