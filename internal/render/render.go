// Package render prints boards and game events in the plain-text transcript
// format.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"checkers/internal/checkers"
)

const (
	actionSeparator = "====================================="
	computedMarker  = "*** "
)

var horizontalBreak = "   " + strings.Repeat("+---", checkers.Size) + "+"

// One line per validation failure.
var errorLines = []struct {
	err  error
	line string
}{
	{checkers.ErrSourceOutside, "Source cell is outside of the board."},
	{checkers.ErrTargetOutside, "Target cell is outside of the board."},
	{checkers.ErrSourceEmpty, "Source cell is empty."},
	{checkers.ErrTargetOccupied, "Target cell is not empty."},
	{checkers.ErrWrongOwner, "Source cell holds opponent's piece/tower."},
	{checkers.ErrIllegalAction, "Illegal action."},
}

// Renderer writes to w. Write errors are sticky: the first one is kept and
// later calls become no-ops.
type Renderer struct {
	w   io.Writer
	err error
}

func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Err returns the first write error, if any.
func (r *Renderer) Err() error {
	return r.err
}

func (r *Renderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Details prints the board size and both sides' material.
func (r *Renderer) Details(b *checkers.Board) {
	r.printf("BOARD SIZE: %dx%d\n", checkers.Size, checkers.Size)
	r.printf("#BLACK PIECES: %d\n", b.Score(checkers.Black))
	r.printf("#WHITE PIECES: %d\n", b.Score(checkers.White))
}

func (r *Renderer) Board(b *checkers.Board) {
	r.printf("%s", BoardString(b))
}

// BoardString lays the board out with column letters, row numbers and borders.
func BoardString(b *checkers.Board) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < checkers.Size; col++ {
		fmt.Fprintf(&sb, "   %c", 'A'+col)
	}
	sb.WriteString("\n" + horizontalBreak + "\n")
	for row := 0; row < checkers.Size; row++ {
		fmt.Fprintf(&sb, " %d |", row+1)
		for col := 0; col < checkers.Size; col++ {
			fmt.Fprintf(&sb, " %c |", b[row][col].Char())
		}
		sb.WriteString("\n" + horizontalBreak + "\n")
	}
	return sb.String()
}

// ActionLine is "BLACK ACTION #n: <move>" or "WHITE ACTION #n: <move>".
func ActionLine(action int, m checkers.Move) string {
	return fmt.Sprintf("%s ACTION #%d: %s", checkers.SideForAction(action), action, m)
}

// Action prints one applied action followed by the board cost and the board.
// Computed actions carry the "*** " marker.
func (r *Renderer) Action(action int, m checkers.Move, computed bool, cost int, b *checkers.Board) {
	r.printf("%s\n", actionSeparator)
	if computed {
		r.printf("%s", computedMarker)
	}
	r.printf("%s\n", ActionLine(action, m))
	r.printf("BOARD COST: %d\n", cost)
	r.Board(b)
}

// Error prints the line for a validation failure. Unknown errors are printed
// as they are.
func (r *Renderer) Error(err error) {
	r.printf("ERROR: %s\n", ErrorLine(err))
}

func ErrorLine(err error) string {
	for _, el := range errorLines {
		if errors.Is(err, el.err) {
			return el.line
		}
	}
	return err.Error()
}

// Winner prints the result line; it prints nothing while the game is on.
func (r *Renderer) Winner(status checkers.GameStatus) {
	if w := status.Winner(); w != checkers.NoSide {
		r.printf("%s WIN!\n", w)
	}
}
