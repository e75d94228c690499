package checkers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func moveStrings(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func TestLegalMovesStartingBoardOrder(t *testing.T) {
	b := NewBoard()

	require.Equal(t, []string{
		"A6-B5",
		"C6-D5", "C6-B5",
		"E6-F5", "E6-D5",
		"G6-H5", "G6-F5",
	}, moveStrings(LegalMoves(&b, Black)))

	require.Equal(t, []string{
		"B3-C4", "B3-A4",
		"D3-E4", "D3-C4",
		"F3-G4", "F3-E4",
		"H3-G4",
	}, moveStrings(LegalMoves(&b, White)))
}

func TestLegalMovesIncludeJumps(t *testing.T) {
	b := mustBoard(t,
		"........",
		"........",
		"........",
		"...w....",
		"....b...",
		"........",
		"........",
		"........",
	)
	// E5: north-east step, then the north-west jump over D4
	require.Equal(t, []string{"E5-F4", "E5-C3"}, moveStrings(LegalMoves(&b, Black)))
	// D4: the south-east jump comes before the south-west step
	require.Equal(t, []string{"D4-F6", "D4-C5"}, moveStrings(LegalMoves(&b, White)))
}

func TestLegalMovesEveryResultValidates(t *testing.T) {
	b := NewBoard()
	side := Black
	for ply := 0; ply < 30; ply++ {
		moves := LegalMoves(&b, side)
		if len(moves) == 0 {
			break
		}
		for _, m := range moves {
			require.NoError(t, Validate(&b, m, side), "ply %d move %s", ply, m)
		}
		require.True(t, HasLegalMove(&b, side))
		Apply(&b, moves[len(moves)/2])
		side = side.Opposite()
	}
}

func TestLegalMovesFreshSlice(t *testing.T) {
	b := NewBoard()
	first := LegalMoves(&b, Black)
	first[0] = Move{}
	second := LegalMoves(&b, Black)
	require.Equal(t, "A6-B5", second[0].String())
}
