package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

// TestCase is one position from a random game, with what the move generator
// and the evaluator say about it.
type TestCase struct {
	Layout string   `json:"layout"`
	Action int      `json:"action"`
	Side   string   `json:"side"`
	Moves  []string `json:"moves"`
	Cost   int      `json:"cost"`
	Status string   `json:"status"`
}

func main() {
	app := &cli.App{
		Name:  "gen_test_json",
		Usage: "dump move generation fixtures from random games",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "games", Value: 10},
			&cli.IntFlag{Name: "max-actions", Value: 200, Usage: "stop a game after this many actions"},
			&cli.Uint64Flag{Name: "seed", Value: 1},
			&cli.StringFlag{Name: "out", Value: "move_gen_test_data.json"},
		},
		Action: func(c *cli.Context) error {
			cases := generate(c.Int("games"), c.Int("max-actions"), c.Uint64("seed"))
			data, err := json.MarshalIndent(cases, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(c.String("out"), data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Generated %d test cases from %d random games to %s\n", len(cases), c.Int("games"), c.String("out"))
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("gen_test_json failed")
	}
}

// generate records every position of games random games, including the
// final one.
func generate(games, maxActions int, seed uint64) []TestCase {
	var cases []TestCase
	for g := range games {
		rng := rand.New(rand.NewPCG(seed, uint64(g)))
		b := checkers.NewBoard()
		for action := 1; action <= maxActions+1; action++ {
			side := checkers.SideForAction(action)
			status := checkers.Status(&b)
			moves := checkers.LegalMoves(&b, side)

			tc := TestCase{
				Layout: b.Encode(),
				Action: action,
				Side:   side.String(),
				Moves:  make([]string, len(moves)),
				Cost:   engine.Cost(&b),
				Status: status.String(),
			}
			for i, m := range moves {
				tc.Moves[i] = m.String()
			}
			cases = append(cases, tc)

			if status != checkers.Ongoing || action > maxActions {
				break
			}
			checkers.Apply(&b, moves[rng.IntN(len(moves))])
		}
	}
	return cases
}
