package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/urfave/cli/v2"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

type benchRow struct {
	Depth   int
	Nodes   int64
	Elapsed time.Duration
}

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "time searches of increasing depth",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "max-depth", Value: 6},
			&cli.IntFlag{Name: "positions", Value: 5, Usage: "random positions searched per depth"},
			&cli.IntFlag{Name: "plies", Value: 10, Usage: "random actions used to reach each position"},
			&cli.Uint64Flag{Name: "seed", Value: 1},
		},
		Action: func(c *cli.Context) error {
			positions := benchPositions(c.Int("positions"), c.Int("plies"), c.Uint64("seed"))
			rows := runBench(positions, c.Int("max-depth"))
			printBench(c.App.Writer, rows)
			return nil
		},
	}
}

type benchPosition struct {
	board checkers.Board
	side  checkers.Side
}

// benchPositions plays random games from the start and keeps the position
// reached after plies actions. The starting position is always first.
func benchPositions(n, plies int, seed uint64) []benchPosition {
	out := []benchPosition{{board: checkers.NewBoard(), side: checkers.Black}}
	rng := rand.New(rand.NewPCG(seed, 0))
	for len(out) < n {
		b := checkers.NewBoard()
		side := checkers.Black
		for range plies {
			if checkers.Status(&b) != checkers.Ongoing {
				break
			}
			moves := checkers.LegalMoves(&b, side)
			checkers.Apply(&b, moves[rng.IntN(len(moves))])
			side = side.Opposite()
		}
		if checkers.Status(&b) == checkers.Ongoing {
			out = append(out, benchPosition{board: b, side: side})
		}
	}
	return out
}

func runBench(positions []benchPosition, maxDepth int) []benchRow {
	e := engine.NewEngine()
	var rows []benchRow
	for depth := 1; depth <= maxDepth; depth++ {
		row := benchRow{Depth: depth}
		for _, p := range positions {
			res := e.Search(p.board, p.side, engine.SearchConfig{MaxDepth: depth})
			row.Nodes += res.Nodes
			row.Elapsed += res.TimeUsed
		}
		rows = append(rows, row)
	}
	return rows
}

func printBench(w io.Writer, rows []benchRow) {
	fmt.Fprintf(w, "%-6s %12s %14s %12s\n", "Depth", "Nodes", "Time", "NPS")
	for _, r := range rows {
		nps := int64(0)
		if r.Elapsed > 0 {
			nps = int64(float64(r.Nodes) / r.Elapsed.Seconds())
		}
		fmt.Fprintf(w, "%-6d %12d %14v %12d\n", r.Depth, r.Nodes, r.Elapsed.Round(time.Microsecond), nps)
	}
}
