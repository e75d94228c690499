package checkers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mv(t *testing.T, tok string) Move {
	t.Helper()
	m, err := ParseMove(tok)
	require.NoError(t, err)
	return m
}

func TestValidateErrorKinds(t *testing.T) {
	start := NewBoard()

	tests := []struct {
		name string
		move string
		side Side
		want error
	}{
		{"source outside", "I6-B5", Black, ErrSourceOutside},
		{"source row zero", "B0-C1", White, ErrSourceOutside},
		{"target outside", "A6-B9", Black, ErrTargetOutside},
		{"target left edge", "A6-@5", Black, ErrTargetOutside},
		{"source empty", "A4-B5", Black, ErrSourceEmpty},
		{"target occupied", "A6-B7", Black, ErrTargetOccupied},
		{"wrong owner black turn", "B3-A4", Black, ErrWrongOwner},
		{"wrong owner white turn", "A6-B5", White, ErrWrongOwner},
		{"straight step", "A6-A5", Black, ErrIllegalAction},
		{"sideways", "B3-B4", White, ErrIllegalAction},
		{"not a diagonal", "A6-C5", Black, ErrIllegalAction},
		{"jump over nothing", "C6-E4", Black, ErrIllegalAction},
		{"legal black step", "A6-B5", Black, nil},
		{"legal white step", "B3-A4", White, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&start, mv(t, tt.move), tt.side)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateReportsFirstFailure(t *testing.T) {
	start := NewBoard()
	// both cells off the board: the source wins
	require.ErrorIs(t, Validate(&start, mv(t, "I9-J9"), Black), ErrSourceOutside)
	// empty source and occupied target: the source wins
	require.ErrorIs(t, Validate(&start, mv(t, "A4-B3"), Black), ErrSourceEmpty)
	// opponent's piece moving illegally: ownership wins
	require.ErrorIs(t, Validate(&start, mv(t, "B3-B4"), Black), ErrWrongOwner)
}

func TestValidateStartingBoardA3B4(t *testing.T) {
	start := NewBoard()
	// A3 is a light square and starts empty.
	require.ErrorIs(t, Validate(&start, mv(t, "A3-B4"), Black), ErrSourceEmpty)
	// The white piece on B3 may not slide straight ahead.
	require.ErrorIs(t, Validate(&start, mv(t, "B3-B4"), White), ErrIllegalAction)
}

func TestValidateDirection(t *testing.T) {
	b := mustBoard(t,
		"........",
		".w......",
		"........",
		"...b....",
		"........",
		".....B..",
		"...W....",
		"........",
	)
	// plain black pieces only move toward row 0
	require.ErrorIs(t, Validate(&b, mv(t, "D4-E5"), Black), ErrIllegalAction)
	require.NoError(t, Validate(&b, mv(t, "D4-C3"), Black))
	require.ErrorIs(t, Validate(&b, mv(t, "D4-A1"), Black), ErrIllegalAction)
	// towers go both ways
	require.NoError(t, Validate(&b, mv(t, "F6-G7"), Black))
	require.NoError(t, Validate(&b, mv(t, "F6-G5"), Black))
	require.NoError(t, Validate(&b, mv(t, "D7-E8"), White))
	require.NoError(t, Validate(&b, mv(t, "D7-C6"), White))
	// plain white pieces only move toward row 7
	require.ErrorIs(t, Validate(&b, mv(t, "B2-A1"), White), ErrIllegalAction)
	require.NoError(t, Validate(&b, mv(t, "B2-C3"), White))
}

func TestValidateJumps(t *testing.T) {
	b := mustBoard(t,
		"........",
		"........",
		"........",
		"...w....",
		"....b...",
		".....b..",
		"........",
		"........",
	)
	// black E5 over white D4
	require.NoError(t, Validate(&b, mv(t, "E5-C3"), Black))
	// white D4 over black E5 onto F6 is blocked, F6 holds a piece
	require.ErrorIs(t, Validate(&b, mv(t, "D4-F6"), White), ErrTargetOccupied)
	// black F6 onto the white piece
	require.ErrorIs(t, Validate(&b, mv(t, "F6-D4"), Black), ErrTargetOccupied)

	b.Set(Square{Row: 5, Col: 5}, Empty)
	require.NoError(t, Validate(&b, mv(t, "D4-F6"), White))

	// a plain piece may not capture backwards
	b = mustBoard(t,
		"........",
		"........",
		"........",
		"...w....",
		"....b...",
		"........",
		"........",
		"........",
	)
	require.ErrorIs(t, Validate(&b, mv(t, "D4-B2"), White), ErrIllegalAction)
	b.Set(Square{Row: 4, Col: 4}, Empty)
	b.Set(Square{Row: 2, Col: 2}, BlackPiece)
	require.ErrorIs(t, Validate(&b, mv(t, "D4-B2"), White), ErrIllegalAction)
	// a tower may
	b.Set(Square{Row: 3, Col: 3}, WhiteTower)
	require.NoError(t, Validate(&b, mv(t, "D4-B2"), White))
}

func TestValidateJumpOverOwnPiece(t *testing.T) {
	b := mustBoard(t,
		"........",
		"........",
		"........",
		"...b....",
		"....b...",
		"........",
		"........",
		"........",
	)
	require.ErrorIs(t, Validate(&b, mv(t, "E5-C3"), Black), ErrIllegalAction)
}

func TestReverseMoveIsNotFree(t *testing.T) {
	b := NewBoard()
	m := mv(t, "B3-C4")
	require.NoError(t, Validate(&b, m, White))
	Apply(&b, m)

	reverse := Move{From: m.To, To: m.From}
	require.ErrorIs(t, Validate(&b, reverse, White), ErrIllegalAction)

	// a tower may step back the way it came
	b.Set(m.To, WhiteTower)
	require.NoError(t, Validate(&b, reverse, White))
}
