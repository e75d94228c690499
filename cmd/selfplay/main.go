package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/game"
	"checkers/internal/logx"
)

type PlayerConfig struct {
	Name string
	Cfg  engine.SearchConfig
}

type matchConfig struct {
	games      int
	maxActions int
	openings   int
	parallel   int
	seed       uint64
	transcript io.Writer
}

type gameResult struct {
	aIsBlack bool
	status   checkers.GameStatus
	actions  int
}

func main() {
	app := &cli.App{
		Name:  "selfplay",
		Usage: "play engine against engine",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "games", Value: 10, Usage: "number of games to play"},
			&cli.IntFlag{Name: "a-depth", Value: engine.TreeDepth, Usage: "search depth of player A"},
			&cli.IntFlag{Name: "b-depth", Value: 1, Usage: "search depth of player B"},
			&cli.IntFlag{Name: "max-actions", Value: 200, Usage: "actions before a game is scored as a draw"},
			&cli.IntFlag{Name: "openings", Value: 4, Usage: "random actions played before the engines take over"},
			&cli.IntFlag{Name: "parallel", Value: 4, Usage: "games played at once"},
			&cli.Uint64Flag{Name: "seed", Value: 1, Usage: "seed for the random openings"},
			&cli.BoolFlag{Name: "transcript", Usage: "print every game to stdout"},
			&cli.StringFlag{Name: "log-level", Value: "info"},
		},
		Before: func(c *cli.Context) error {
			return logx.Setup(c.String("log-level"), "console", c.App.ErrWriter)
		},
		Action: func(c *cli.Context) error {
			a := PlayerConfig{
				Name: fmt.Sprintf("Minimax (Depth %d)", c.Int("a-depth")),
				Cfg:  engine.SearchConfig{MaxDepth: c.Int("a-depth")},
			}
			b := PlayerConfig{
				Name: fmt.Sprintf("Minimax (Depth %d)", c.Int("b-depth")),
				Cfg:  engine.SearchConfig{MaxDepth: c.Int("b-depth")},
			}
			mc := matchConfig{
				games:      c.Int("games"),
				maxActions: c.Int("max-actions"),
				openings:   c.Int("openings"),
				parallel:   c.Int("parallel"),
				seed:       c.Uint64("seed"),
			}
			if c.Bool("transcript") {
				// Parallel transcripts would interleave.
				mc.transcript = c.App.Writer
				mc.parallel = 1
			}

			mgr := game.NewManager()
			results, err := playMatch(c.Context, mgr, a, b, mc)
			if err != nil {
				return err
			}
			report(c.App.Writer, a, b, results)
			return nil
		},
		Commands: []*cli.Command{benchCommand()},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("selfplay failed")
	}
}

// playMatch plays mc.games games between a and b, swapping colours every
// game. Results are in game order.
func playMatch(ctx context.Context, mgr *game.Manager, a, b PlayerConfig, mc matchConfig) ([]gameResult, error) {
	results := make([]gameResult, mc.games)

	eg, ctx := errgroup.WithContext(ctx)
	if mc.parallel > 0 {
		eg.SetLimit(mc.parallel)
	}
	for i := range mc.games {
		black, white := a, b
		if i%2 == 1 {
			black, white = b, a
		}
		rng := rand.New(rand.NewPCG(mc.seed, uint64(i)))
		eg.Go(func() error {
			status, actions, err := playGame(ctx, mgr, black, white, rng, mc)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = gameResult{aIsBlack: i%2 == 0, status: status, actions: actions}
			log.Info().
				Int("game", i+1).
				Str("black", black.Name).
				Str("white", white.Name).
				Stringer("status", status).
				Int("actions", actions).
				Msg("game finished")
			return nil
		})
	}
	return results, eg.Wait()
}

// playGame plays one game to the end or to mc.maxActions. It returns the
// final status and the number of actions played.
func playGame(ctx context.Context, mgr *game.Manager, black, white PlayerConfig, rng *rand.Rand, mc matchConfig) (checkers.GameStatus, int, error) {
	g := mgr.NewGame()
	s := game.NewSession(g, engine.NewEngine(), mc.transcript)
	s.SetSearch(checkers.Black, black.Cfg)
	s.SetSearch(checkers.White, white.Cfg)

	for i := 0; i < mc.openings && s.State().Status == checkers.Ongoing; i++ {
		st := s.State()
		moves := checkers.LegalMoves(&st.Board, st.SideToMove())
		if err := s.PlayMove(moves[rng.IntN(len(moves))]); err != nil {
			return st.Status, st.Action - 1, err
		}
	}

	limit := mc.maxActions - (s.State().Action - 1)
	status, err := s.Autoplay(ctx, limit)
	st := s.State()
	if uerr := mgr.Update(st.ID, st.Board, st.Action, st.Status); uerr != nil && err == nil {
		err = uerr
	}
	return status, st.Action - 1, err
}

func report(w io.Writer, a, b PlayerConfig, results []gameResult) {
	var aWins, bWins, draws, actions int
	for _, r := range results {
		actions += r.actions
		switch r.status.Winner() {
		case checkers.Black:
			if r.aIsBlack {
				aWins++
			} else {
				bWins++
			}
		case checkers.White:
			if r.aIsBlack {
				bWins++
			} else {
				aWins++
			}
		default:
			draws++
		}
	}

	fmt.Fprintf(w, "\n=== Final Score ===\n")
	fmt.Fprintf(w, "A %s: %d\n", a.Name, aWins)
	fmt.Fprintf(w, "B %s: %d\n", b.Name, bWins)
	fmt.Fprintf(w, "Draws: %d\n", draws)
	if len(results) > 0 {
		fmt.Fprintf(w, "Average length: %.1f actions\n", float64(actions)/float64(len(results)))
	}
}
