package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

// Dumps a position and everything the rules and the engine derive from it.
// The position is the starting board unless a layout is given as argument.
func main() {
	b := checkers.NewBoard()
	if len(os.Args) > 1 {
		var err error
		if b, err = checkers.DecodeBoard(os.Args[1]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	cfg := spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}
	fmt.Println("Layout:", b.Encode())
	fmt.Println("Status:", checkers.Status(&b))
	fmt.Println("Cost:", engine.Cost(&b))
	for _, side := range []checkers.Side{checkers.Black, checkers.White} {
		moves := checkers.LegalMoves(&b, side)
		fmt.Printf("%s legal moves: %d\n", side, len(moves))
		cfg.Dump(moves)
	}
}
